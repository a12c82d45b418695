package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/pable/go-fb-metrics/internal/model"
	"github.com/pable/go-fb-metrics/internal/pipeline"
	"github.com/pable/go-fb-metrics/internal/weights"
)

var (
	cWarn  = color.New(color.FgYellow)
	cError = color.New(color.FgRed, color.Bold)
	cMuted = color.New(color.Faint)
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
}

// PrintLines writes one "tag:player, player, ..." line per category.
// Scores are not printed. An aborted category prints its tag alone.
func PrintLines(w io.Writer, results []pipeline.Result) {
	for _, res := range results {
		names := make([]string, len(res.Ranking))
		for i, e := range res.Ranking {
			names[i] = e.Player
		}
		fmt.Fprintf(w, "%s:%s\n", res.Category.Tag(), strings.Join(names, ", "))
	}
}

// PrintTables writes one ranking table per category.
func PrintTables(w io.Writer, results []pipeline.Result) {
	for _, res := range results {
		fmt.Fprintf(w, "\n%s (%s)\n\n", strings.ToUpper(res.Category.Name()), res.Category.Tag())
		if res.Err != nil {
			fmt.Fprintf(w, "  aborted: %v\n", res.Err)
			continue
		}
		PrintRankingTable(w, res.Ranking)
	}
}

// PrintRankingTable prints rank, player, total, games and mean per entry.
func PrintRankingTable(w io.Writer, ranking []model.RankedEntry) {
	table := newTable(w)
	table.Header("#", "PLAYER", "TOTAL", "GAMES", "MEAN")
	for i, e := range ranking {
		table.Append(
			strconv.Itoa(i+1),
			e.Player,
			formatScore(e.Total),
			strconv.Itoa(e.Count),
			formatScore(e.Mean()),
		)
	}
	table.Render()
}

// PrintContributionTable prints one row per scored record.
func PrintContributionTable(w io.Writer, contribs []model.Contribution) {
	table := newTable(w)
	table.Header("CATEGORY", "GAME", "SCORE")
	for _, c := range contribs {
		table.Append(c.Category, c.Game, formatScore(c.Score))
	}
	table.Render()
}

// PrintWeightTable lists a category's weights, flagging those no feature matches.
func PrintWeightTable(w io.Writer, t weights.Table, matched func(string) bool) {
	table := newTable(w)
	table.Header("FEATURE", "WEIGHT", "MATCHED")
	for _, k := range t.Keys() {
		m := "yes"
		if !matched(k) {
			m = "ignored"
		}
		table.Append(k, strconv.FormatFloat(t[k], 'g', -1, 64), m)
	}
	table.Render()
}

// PrintRunTable prints one overview row per category of a run.
func PrintRunTable(w io.Writer, results []pipeline.Result, games int) {
	table := newTable(w)
	table.Header("CATEGORY", "TAG", "WEIGHTS", "SCORED", "SKIPPED", "PLAYERS", "RECORDS", "STATUS")
	for _, res := range results {
		status := "ok"
		if res.Err != nil {
			status = "aborted"
		} else if len(res.Ambiguous) > 0 {
			status = "ambiguous"
		}
		scored := res.GamesScored(games)
		if res.Err != nil {
			scored = 0
		}
		table.Append(
			res.Category.Name(),
			res.Category.Tag(),
			strconv.Itoa(len(res.Weights)),
			strconv.Itoa(scored),
			strconv.Itoa(len(res.Failures)),
			strconv.Itoa(res.Totals.Len()),
			strconv.Itoa(len(res.Contributions)),
			status,
		)
	}
	table.Render()
}

// PrintQuery renders the result of an ad-hoc query, or "(no rows)".
func PrintQuery(w io.Writer, cols []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "(no rows)")
		return
	}
	table := newTable(w)
	header := make([]any, len(cols))
	for i, c := range cols {
		header[i] = c
	}
	table.Header(header...)
	for _, row := range rows {
		cells := make([]any, len(row))
		for i, v := range row {
			cells[i] = v
		}
		table.Append(cells...)
	}
	table.Render()
	fmt.Fprintf(w, "\n(%d rows)\n", len(rows))
}

func formatScore(f float64) string {
	if math.IsNaN(f) {
		return "NaN"
	}
	return fmt.Sprintf("%.3f", f)
}

// ---- JSON ----

type jsonEntry struct {
	Rank   int      `json:"rank"`
	Player string   `json:"player"`
	Total  *float64 `json:"total"`
	Games  int      `json:"games"`
	Mean   *float64 `json:"mean"`
}

type jsonFailure struct {
	Game  string `json:"game"`
	Path  string `json:"path"`
	Error string `json:"error"`
}

type jsonCategory struct {
	Category  string        `json:"category"`
	Tag       string        `json:"tag"`
	Ranking   []jsonEntry   `json:"ranking"`
	Failures  []jsonFailure `json:"failures,omitempty"`
	Ambiguous []string      `json:"ambiguous,omitempty"`
	Error     string        `json:"error,omitempty"`
}

// WriteJSON writes the results as an indented JSON array. NaN totals are null.
func WriteJSON(w io.Writer, results []pipeline.Result) error {
	out := make([]jsonCategory, 0, len(results))
	for _, res := range results {
		jc := jsonCategory{
			Category:  res.Category.Name(),
			Tag:       res.Category.Tag(),
			Ranking:   make([]jsonEntry, 0, len(res.Ranking)),
			Ambiguous: res.Ambiguous,
		}
		if res.Err != nil {
			jc.Error = res.Err.Error()
		}
		for i, e := range res.Ranking {
			jc.Ranking = append(jc.Ranking, jsonEntry{
				Rank:   i + 1,
				Player: e.Player,
				Total:  finite(e.Total),
				Games:  e.Count,
				Mean:   finite(e.Mean()),
			})
		}
		for _, f := range res.Failures {
			jc.Failures = append(jc.Failures, jsonFailure{Game: f.Game, Path: f.Path, Error: f.Err.Error()})
		}
		out = append(out, jc)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func finite(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// ---- Diagnostics ----

// PrintDiagnostics writes a per-category failure summary to w (stderr).
// It prints nothing when every game of every category was scored.
func PrintDiagnostics(w io.Writer, results []pipeline.Result, games int) {
	for _, res := range results {
		name := res.Category.Name()
		if res.Err != nil {
			cError.Fprintf(w, "%s: aborted: %v\n", name, res.Err)
			continue
		}
		if n := len(res.Failures); n > 0 {
			cWarn.Fprintf(w, "%s: %d of %d games skipped\n", name, n, games)
			for _, f := range res.Failures {
				cMuted.Fprintf(w, "  %s: %v\n", f.Game, f.Err)
			}
		}
		if len(res.Ambiguous) > 0 {
			cWarn.Fprintf(w, "%s: %v: %s ranked last\n", name, model.ErrRankingAmbiguity,
				strings.Join(res.Ambiguous, ", "))
		}
	}
}
