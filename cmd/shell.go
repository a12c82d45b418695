package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pable/go-fb-metrics/internal/category"
	"github.com/pable/go-fb-metrics/internal/report"
	"github.com/pable/go-fb-metrics/internal/storage"
)

var (
	cPrompt   = color.New(color.FgCyan, color.Bold)
	cMuted    = color.New(color.Faint)
	cError    = color.New(color.FgRed, color.Bold)
	cWarn     = color.New(color.FgYellow)
	cHeader   = color.New(color.FgCyan, color.Bold)
	cCmd      = color.New(color.FgYellow, color.Bold)
	cGreeting = color.New(color.Bold)
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive session over one run",
	Long: `Run every category once, then explore the results interactively.
The run is held in memory and discarded on exit. Type 'help' for commands.`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func runShell(_ *cobra.Command, _ []string) error {
	run, err := execute(runOptions{})
	if err != nil {
		return err
	}
	db, err := run.openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	cGreeting.Println("fbmetrics shell")
	cMuted.Printf("%d games loaded from %s\n", len(run.games), run.cfg.TeamStats)
	cMuted.Println("type 'help' or 'exit'")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		cPrompt.Print("fbmetrics")
		cMuted.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		cmd, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)

		switch cmd {
		case "exit", "quit":
			return nil
		case "help":
			shellHelp()
		case "rank":
			shellRank(db, strings.Fields(rest))
		case "player":
			if rest == "" {
				cError.Fprintln(os.Stderr, "usage: player <name>")
				continue
			}
			if err := printPlayer(os.Stdout, db, run, rest); err != nil {
				cError.Fprintf(os.Stderr, "error: %v\n", err)
			}
		case "sql":
			if rest == "" {
				cError.Fprintln(os.Stderr, "usage: sql <query>")
				continue
			}
			if err := printQuery(db, rest); err != nil {
				cError.Fprintf(os.Stderr, "error: %v\n", err)
			}
		case "summary":
			printSummary(run)
		case "failures":
			shellFailures(db)
		default:
			cWarn.Fprintf(os.Stderr, "unknown command %q, type 'help'\n", cmd)
		}
	}
	return nil
}

func shellHelp() {
	fmt.Println()
	type entry struct{ cmd, desc string }
	rows := []entry{
		{"rank [category] [n]", "top players, all categories or one"},
		{"player <name>", "per-game scores for a player (name may contain spaces)"},
		{"sql <query>", "query the run (tables: games, contributions, totals, failures, weights)"},
		{"summary", "overview of the run"},
		{"failures", "games skipped per category"},
		{"help", "show this message"},
		{"exit / quit", "close the session"},
	}
	for _, r := range rows {
		fmt.Print("  ")
		cCmd.Printf("%-24s", r.cmd)
		fmt.Println(r.desc)
	}
	fmt.Println()
}

// shellRank prints stored rankings. With no category every category is
// shown at its configured size; n overrides the size.
func shellRank(db *storage.DB, args []string) {
	cats := category.All()
	n := 0
	for _, a := range args {
		if v, err := strconv.Atoi(a); err == nil {
			n = v
			continue
		}
		c, err := category.Lookup(a)
		if err != nil {
			cError.Fprintf(os.Stderr, "error: %v\n", err)
			return
		}
		cats = []category.Category{c}
	}

	cfg, err := loadConfig()
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	for _, c := range cats {
		limit := n
		if limit == 0 {
			limit = cfg.For(c).Top
		}
		ranking, err := db.CategoryTotals(c.Name(), limit)
		if err != nil {
			cError.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		fmt.Println()
		cHeader.Printf("--- %s (%s) ---\n", c.Name(), c.Tag())
		if len(ranking) == 0 {
			cMuted.Println("no scored players")
			continue
		}
		report.PrintRankingTable(os.Stdout, ranking)
	}
	fmt.Println()
}

func shellFailures(db *storage.DB) {
	_, rows, err := db.QueryRaw(`SELECT category, game_id, error FROM failures ORDER BY category, rowid`)
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	if len(rows) == 0 {
		cMuted.Println("every game was scored")
		return
	}
	for _, r := range rows {
		cWarn.Printf("%-8s %-12s ", r[0], r[1])
		cMuted.Println(r[2])
	}
}
