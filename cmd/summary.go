package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-fb-metrics/internal/report"
)

// summaryCmd is the cobra command for a high-level overview of one run.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show a high-level overview of a run",
	Long: `Run every category and display how many games were listed, how many
each category could score, how many distinct players it saw and why any game
was skipped.`,
	Args: cobra.NoArgs,
	RunE: runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	run, err := execute(runOptions{})
	if err != nil {
		return err
	}
	printSummary(run)
	return nil
}

func printSummary(run *runState) {
	fmt.Fprintf(os.Stdout, "\n=== Run Summary ===\n\n")
	fmt.Fprintf(os.Stdout, "  Team table    : %s\n", run.cfg.TeamStats)
	fmt.Fprintf(os.Stdout, "  Data dir      : %s\n", run.cfg.DataDir)
	fmt.Fprintf(os.Stdout, "  Games listed  : %d\n\n", len(run.games))

	report.PrintRunTable(os.Stdout, run.results, len(run.games))
	fmt.Fprintln(os.Stdout)
	report.PrintDiagnostics(os.Stderr, run.results, len(run.games))
}
