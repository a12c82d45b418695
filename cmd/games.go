package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-fb-metrics/internal/category"
	"github.com/pable/go-fb-metrics/internal/pipeline"
)

var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "List the games in the team table and which stat files exist",
	Args:  cobra.NoArgs,
	RunE:  runGames,
}

func runGames(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	games, err := pipeline.LoadGames(cfg)
	if err != nil {
		return err
	}
	if len(games) == 0 {
		fmt.Fprintf(os.Stdout, "No games listed in %s.\n", cfg.TeamStats)
		return nil
	}

	cats := category.All()
	fmt.Fprintf(os.Stdout, "%-4s  %-12s", "#", "GAME")
	for _, c := range cats {
		fmt.Fprintf(os.Stdout, "  %-7s", c.Tag())
	}
	fmt.Fprintln(os.Stdout)
	fmt.Fprintf(os.Stdout, "%-4s  %-12s", "────", "────────────")
	for range cats {
		fmt.Fprintf(os.Stdout, "  %-7s", "───────")
	}
	fmt.Fprintln(os.Stdout)

	for i, g := range games {
		fmt.Fprintf(os.Stdout, "%-4d  %-12s", i+1, g.ID)
		for _, c := range cats {
			mark := "-"
			if _, err := os.Stat(cfg.GamePath(c, g.ID)); err == nil {
				mark = "ok"
			}
			fmt.Fprintf(os.Stdout, "  %-7s", mark)
		}
		fmt.Fprintln(os.Stdout)
	}
	return nil
}
