package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-fb-metrics/internal/report"
	"github.com/pable/go-fb-metrics/internal/storage"
)

// playerCmd is the cobra command for the per-game score breakdown of one or more players.
var playerCmd = &cobra.Command{
	Use:   "player <name> [<name>...]",
	Short: "Per-game score breakdown for one or more players",
	Long: `Run every category and print, for each named player, the score of each
record they contributed and their totals. Names must match the stat tables
exactly (no trimming or case folding).`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPlayer,
}

func runPlayer(cmd *cobra.Command, args []string) error {
	run, err := execute(runOptions{})
	if err != nil {
		return err
	}
	db, err := run.openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	for _, name := range args {
		if err := printPlayer(os.Stdout, db, run, name); err != nil {
			return err
		}
	}
	return nil
}

// printPlayer writes name's contributions and per-category totals.
func printPlayer(w io.Writer, db *storage.DB, run *runState, name string) error {
	contribs, err := db.PlayerContributions(name)
	if err != nil {
		return fmt.Errorf("query %s: %w", name, err)
	}
	if len(contribs) == 0 {
		fmt.Fprintf(os.Stderr, "No records found for %q\n", name)
		return nil
	}

	fmt.Fprintf(w, "\n=== %s ===\n\n", name)
	report.PrintContributionTable(w, contribs)

	fmt.Fprintln(w)
	for _, res := range run.results {
		if res.Err != nil {
			continue
		}
		t, ok := res.Totals.Get(name)
		if !ok {
			continue
		}
		full := res.Totals.Rank(res.Totals.Len())
		pos := 0
		for i, e := range full {
			if e.Player == name {
				pos = i + 1
				break
			}
		}
		fmt.Fprintf(w, "  %-8s total %.3f over %d records, rank %d of %d\n",
			res.Category.Name(), t.Sum, t.Count, pos, len(full))
	}
	return nil
}
