package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pable/go-fb-metrics/internal/report"
	"github.com/pable/go-fb-metrics/internal/storage"
)

var sqlCmd = &cobra.Command{
	Use:   "sql <query>",
	Short: "Run a SQL query against the scored data of a run",
	Long: `Run every category, load the results into an in-memory SQLite database
and print the result of an arbitrary query as a table. The database is
discarded when the command exits.

Schema overview:
  games(seq, game_id)
  contributions(id, category, game_id, player, score)
  totals(category, player, total, appearances, rank)
  failures(category, game_id, path, error)
  weights(category, feature, weight, matched)

Example:
  fbmetrics sql "SELECT player, total/appearances AS mean FROM totals
                 WHERE category = 'passing' ORDER BY mean DESC LIMIT 5"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSQL,
}

func runSQL(cmd *cobra.Command, args []string) error {
	run, err := execute(runOptions{})
	if err != nil {
		return err
	}
	db, err := run.openStore()
	if err != nil {
		return err
	}
	defer db.Close()
	return printQuery(db, strings.Join(args, " "))
}

func printQuery(db *storage.DB, query string) error {
	cols, rows, err := db.QueryRaw(query)
	if err != nil {
		return err
	}
	report.PrintQuery(os.Stdout, cols, rows)
	return nil
}
