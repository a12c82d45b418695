package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-fb-metrics/internal/pipeline"
	"github.com/pable/go-fb-metrics/internal/report"
)

var (
	rankCategories []string
	rankTop        int
	rankFormat     string
	rankParallel   bool
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Score every game and print the top players per category",
	Long: `Load each category's weight table, score every game listed in the team
table, sum the scores per player and print the best players.

Games whose stat table is missing or malformed are skipped and logged to
stderr; a category whose weight table cannot be loaded is aborted without
affecting the others.`,
	Args: cobra.NoArgs,
	RunE: runRank,
}

func init() {
	rankCmd.Flags().StringSliceVarP(&rankCategories, "category", "c", nil, "categories to rank (default all)")
	rankCmd.Flags().IntVar(&rankTop, "top", 0, "players per category (default 4 defense, 3 attack, 3 passing)")
	rankCmd.Flags().StringVarP(&rankFormat, "format", "f", "lines", "output format: lines, table or json")
	rankCmd.Flags().BoolVar(&rankParallel, "parallel", false, "run categories concurrently")
}

func runRank(cmd *cobra.Command, args []string) error {
	switch rankFormat {
	case "lines", "table", "json":
	default:
		return fmt.Errorf("unknown format %q (want lines, table or json)", rankFormat)
	}

	run, err := execute(runOptions{categories: rankCategories, top: rankTop, parallel: rankParallel})
	if err != nil {
		return err
	}

	switch rankFormat {
	case "table":
		report.PrintTables(os.Stdout, run.results)
	case "json":
		if err := report.WriteJSON(os.Stdout, run.results); err != nil {
			return fmt.Errorf("write json: %w", err)
		}
	default:
		report.PrintLines(os.Stdout, run.results)
	}

	if pipeline.Failed(run.results) {
		return fmt.Errorf("one or more categories were aborted")
	}
	return nil
}
