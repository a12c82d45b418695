package pipeline

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pable/go-fb-metrics/internal/category"
	"github.com/pable/go-fb-metrics/internal/config"
	"github.com/pable/go-fb-metrics/internal/model"
)

const (
	gameOne = "2022-08-05 Crystal Palace-Arsenal"
	gameTwo = "2022-08-13 Arsenal-Leicester City"
)

const defenseHeader = ",player,tkl,tklw,def3rd,mid3rd,att3rd,att,lost,blocks,sh,pass\n"

// layout writes a minimal two-game tree under a temp root and returns its
// resolved config. files maps paths relative to the root to their content.
func layout(t *testing.T, files map[string]string) config.Config {
	t.Helper()
	root := t.TempDir()
	base := map[string]string{
		"team_stat.csv": "league,season,team,game\n" +
			"ENG,2223,Arsenal," + gameOne + "\n" +
			"ENG,2223,Arsenal," + gameTwo + "\n",
		"defense_statsweight.csv": "Feature,Average_Weight\ntkl,1\natt,2\n",
		"passing_statsweight.csv": "Feature,Average_Weight\ncmp,1\n",
		"attacking_statsweight.csv": "Feature,Average_Weight\ngls,10\nxg,1\n",
		filepath.Join("data", gameOne, "defense_stats.csv"): defenseHeader +
			"0,A,10,0,0,0,0,20,0,0,0,0\n" +
			"1,B,1,0,0,0,0,1,0,0,0,0\n",
		filepath.Join("data", gameTwo, "defense_stats.csv"): defenseHeader +
			"0,A,10,0,0,0,0,10,0,0,0,0\n",
		filepath.Join("data", gameOne, "passing_stats.csv"): ",player,cmp,att,totdist,prgdist\n0,A,30,35,1,1\n1,C,50,60,1,1\n",
		filepath.Join("data", gameTwo, "passing_stats.csv"): ",player,cmp,att,totdist,prgdist\n0,A,25,30,1,1\n",
	}
	for k, v := range files {
		base[k] = v
	}
	for rel, content := range base {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	cfg, err := config.Default(root).Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	return cfg
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func run(t *testing.T, cfg config.Config, r *Runner, cats ...category.Category) []Result {
	t.Helper()
	games, err := LoadGames(cfg)
	if err != nil {
		t.Fatalf("LoadGames: %v", err)
	}
	r.Config = cfg
	if r.Log == nil {
		r.Log = quietLogger()
	}
	return r.Run(games, cats)
}

func TestRun_TwoGamesAccumulate(t *testing.T) {
	cfg := layout(t, nil)
	res := run(t, cfg, &Runner{}, category.Defense)[0]

	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	a, ok := res.Totals.Get("A")
	if !ok || a.Sum != 80 || a.Count != 2 {
		t.Errorf("expected A = 80 over 2 games, got %+v", a)
	}
	if len(res.Ranking) != 2 || res.Ranking[0].Player != "A" || res.Ranking[1].Player != "B" {
		t.Errorf("unexpected ranking %+v", res.Ranking)
	}
	if len(res.Contributions) != 3 {
		t.Errorf("expected 3 contributions, got %d", len(res.Contributions))
	}
	if res.GamesScored(2) != 2 {
		t.Errorf("expected both games scored, got %d", res.GamesScored(2))
	}
}

func TestRun_MissingGameFileSkipped(t *testing.T) {
	// Attack tables exist for only one game.
	cfg := layout(t, map[string]string{
		filepath.Join("data", gameTwo, "attacking_stats.csv"): ",player,gls,ast,pk,pkatt,sh,sot,crdy,crdr,touches,tkl,int,blocks,xg,npxg,xag,sca,gca,cmp,att,prgp,carries,prgc,succ\n" +
			"0,Saka,1,0,0,0,0,0,0,0,0,0,0,0,0.5,0.5,0,0,0,0,0,0,0,0,0\n",
	})
	var logs bytes.Buffer
	r := &Runner{Log: slog.New(slog.NewTextHandler(&logs, nil))}
	res := run(t, cfg, r, category.Attack)[0]

	if res.Err != nil {
		t.Fatalf("missing game file must not abort the category: %v", res.Err)
	}
	if len(res.Failures) != 1 || res.Failures[0].Game != gameOne {
		t.Fatalf("expected one failure for %s, got %+v", gameOne, res.Failures)
	}
	if !errors.Is(res.Failures[0].Err, model.ErrIO) {
		t.Errorf("expected ErrIO, got %v", res.Failures[0].Err)
	}
	saka, ok := res.Totals.Get("Saka")
	if !ok || saka.Sum != 10.5 || saka.Count != 1 {
		t.Errorf("other game's contribution should be intact, got %+v", saka)
	}
	if !strings.Contains(logs.String(), "skipping game") || !strings.Contains(logs.String(), gameOne) {
		t.Errorf("expected a warning naming the game, logs:\n%s", logs.String())
	}
}

func TestRun_MalformedWeightsAbortOnlyThatCategory(t *testing.T) {
	cfg := layout(t, map[string]string{
		"defense_statsweight.csv": "Feature,Average_Weight\ntkl,lots\n",
	})
	results := run(t, cfg, &Runner{}, category.Defense, category.Passing)

	if !errors.Is(results[0].Err, model.ErrMalformedWeight) {
		t.Errorf("expected defense aborted with ErrMalformedWeight, got %v", results[0].Err)
	}
	if len(results[0].Ranking) != 0 {
		t.Errorf("aborted category must not rank, got %+v", results[0].Ranking)
	}
	if results[1].Err != nil {
		t.Fatalf("passing should be unaffected: %v", results[1].Err)
	}
	if len(results[1].Ranking) != 2 || results[1].Ranking[0].Player != "A" || results[1].Ranking[0].Total != 55 {
		t.Errorf("unexpected passing ranking %+v", results[1].Ranking)
	}
	if !Failed(results) {
		t.Error("expected Failed to report the aborted category")
	}
}

func TestRun_MalformedGameFileDiscardsWholeFile(t *testing.T) {
	cfg := layout(t, map[string]string{
		filepath.Join("data", gameTwo, "defense_stats.csv"): defenseHeader +
			"0,A,10,0,0,0,0,10,0,0,0,0\n" +
			"1,B,oops,0,0,0,0,0,0,0,0,0\n",
	})
	res := run(t, cfg, &Runner{}, category.Defense)[0]

	if len(res.Failures) != 1 || !errors.Is(res.Failures[0].Err, model.ErrMalformedRecord) {
		t.Fatalf("expected one malformed-record failure, got %+v", res.Failures)
	}
	a, _ := res.Totals.Get("A")
	if a.Sum != 50 || a.Count != 1 {
		t.Errorf("valid rows of the bad file must not count, got %+v", a)
	}
}

func TestRun_ParallelMatchesSequential(t *testing.T) {
	cfg := layout(t, nil)
	cats := category.All()
	seq := run(t, cfg, &Runner{}, cats...)
	par := run(t, cfg, &Runner{Parallel: true}, cats...)

	if len(seq) != len(par) {
		t.Fatalf("result count differs: %d vs %d", len(seq), len(par))
	}
	for i := range seq {
		if seq[i].Category != par[i].Category {
			t.Errorf("result %d: category order differs", i)
		}
		if len(seq[i].Ranking) != len(par[i].Ranking) {
			t.Errorf("%s: ranking length differs", seq[i].Category.Name())
			continue
		}
		for j := range seq[i].Ranking {
			if seq[i].Ranking[j] != par[i].Ranking[j] {
				t.Errorf("%s rank %d: %+v vs %+v", seq[i].Category.Name(), j+1, seq[i].Ranking[j], par[i].Ranking[j])
			}
		}
	}
}

func TestRun_TopOverride(t *testing.T) {
	cfg := layout(t, nil)
	res := run(t, cfg, &Runner{Top: 1}, category.Defense)[0]

	if len(res.Ranking) != 1 || res.Ranking[0].Player != "A" {
		t.Errorf("expected only A, got %+v", res.Ranking)
	}
	if res.Totals.Len() != 2 {
		t.Errorf("override must not drop totals, got %d players", res.Totals.Len())
	}
}

func TestLoadGames_Missing(t *testing.T) {
	cfg, err := config.Default(t.TempDir()).Resolve()
	if err != nil {
		t.Fatal(err)
	}
	_, err = LoadGames(cfg)
	if !errors.Is(err, model.ErrIO) {
		t.Fatalf("expected ErrIO for missing team table, got %v", err)
	}
	if !strings.Contains(err.Error(), "team stats") {
		t.Errorf("error should name the team table: %v", err)
	}
}

func TestRun_ParallelAbortedCategoryKeepsSiblings(t *testing.T) {
	cfg := layout(t, map[string]string{
		"defense_statsweight.csv": "Feature,Average_Weight\ntkl,lots\n",
	})
	results := run(t, cfg, &Runner{Parallel: true}, category.All()...)

	if len(results) != 3 {
		t.Fatalf("expected a result per category, got %d", len(results))
	}
	if !errors.Is(results[0].Err, model.ErrMalformedWeight) {
		t.Errorf("expected defense aborted, got %v", results[0].Err)
	}
	if results[1].Err != nil || len(results[1].Ranking) != 2 {
		t.Errorf("passing should still rank: %+v (%v)", results[1].Ranking, results[1].Err)
	}
	if !Failed(results) {
		t.Error("expected Failed to report the aborted category")
	}
}
