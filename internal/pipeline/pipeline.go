// Package pipeline drives one run: for each category it loads the weight
// table, scores every game's stat table, accumulates per-player totals and
// ranks them.
package pipeline

import (
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/pable/go-fb-metrics/internal/aggregator"
	"github.com/pable/go-fb-metrics/internal/category"
	"github.com/pable/go-fb-metrics/internal/config"
	"github.com/pable/go-fb-metrics/internal/model"
	"github.com/pable/go-fb-metrics/internal/parser"
	"github.com/pable/go-fb-metrics/internal/weights"
)

// Result is the outcome of one category pass.
type Result struct {
	Category      category.Category
	Weights       weights.Table
	Totals        *aggregator.Accumulator
	Ranking       []model.RankedEntry
	Contributions []model.Contribution
	Failures      []model.GameFailure
	// Ambiguous lists players whose total is NaN.
	Ambiguous []string
	// Err is set when the category was aborted (its weight table failed).
	Err error
}

// GamesScored is the number of games whose table contributed to the result.
func (r Result) GamesScored(total int) int {
	return total - len(r.Failures)
}

// Runner executes category passes against a resolved config.
type Runner struct {
	Config config.Config
	Log    *slog.Logger
	// Top, when positive, overrides every category's ranking size.
	Top int
	// Parallel runs categories concurrently. Results keep category order.
	Parallel bool
}

// Run processes each category over games. A failing category never affects
// the others; see Result.Err.
func (r *Runner) Run(games []model.GameRef, cats []category.Category) []Result {
	results := make([]Result, len(cats))
	if !r.Parallel {
		for i, c := range cats {
			results[i] = r.runCategory(games, c)
		}
		return results
	}

	// A category error never cancels its siblings: plain Group, no context.
	// Wait reports the first aborted category; the full picture is in results.
	var g errgroup.Group
	for i, c := range cats {
		g.Go(func() error {
			results[i] = r.runCategory(games, c)
			return results[i].Err
		})
	}
	if err := g.Wait(); err != nil {
		r.logger().Debug("parallel run finished with an aborted category", "err", err)
	}
	return results
}

func (r *Runner) runCategory(games []model.GameRef, cat category.Category) Result {
	log := r.logger().With("category", cat.Name())
	cc := r.Config.For(cat)
	res := Result{Category: cat, Totals: aggregator.New()}

	w, err := weights.Load(cc.Weights)
	if err != nil {
		res.Err = fmt.Errorf("%s weights: %w", cat.Name(), err)
		log.Error("load weights failed", "path", cc.Weights, "err", err)
		return res
	}
	res.Weights = w
	if unknown := w.Unmatched(cat.HasFeature); len(unknown) > 0 {
		log.Debug("weights with no matching feature are ignored", "features", unknown)
	}

	for _, g := range games {
		path := r.Config.GamePath(cat, g.ID)
		contribs, err := cat.Score(g.ID, path, w)
		if err != nil {
			log.Warn("skipping game", "game", g.ID, "path", path, "err", err)
			res.Failures = append(res.Failures, model.GameFailure{Game: g.ID, Path: path, Err: err})
			continue
		}
		for _, c := range contribs {
			res.Totals.Add(c.Player, c.Score)
		}
		res.Contributions = append(res.Contributions, contribs...)
		log.Debug("scored game", "game", g.ID, "records", len(contribs))
	}

	top := cc.Top
	if r.Top > 0 {
		top = r.Top
	}
	res.Ranking = res.Totals.Rank(top)
	res.Ambiguous = res.Totals.Ambiguous()
	for _, p := range res.Ambiguous {
		log.Warn("total is not a number, ranked last", "player", p, "err", model.ErrRankingAmbiguity)
	}
	return res
}

func (r *Runner) logger() *slog.Logger {
	if r.Log != nil {
		return r.Log
	}
	return slog.Default()
}

// Failed reports whether any category was aborted.
func Failed(results []Result) bool {
	for _, res := range results {
		if res.Err != nil {
			return true
		}
	}
	return false
}

// LoadGames reads the team table named by cfg. Any failure here is fatal to
// the whole run.
func LoadGames(cfg config.Config) ([]model.GameRef, error) {
	games, err := parser.ParseGames(cfg.TeamStats)
	if err != nil {
		return nil, fmt.Errorf("team stats: %w", err)
	}
	return games, nil
}
