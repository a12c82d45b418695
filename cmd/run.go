package cmd

import (
	"fmt"

	"github.com/pable/go-fb-metrics/internal/category"
	"github.com/pable/go-fb-metrics/internal/config"
	"github.com/pable/go-fb-metrics/internal/model"
	"github.com/pable/go-fb-metrics/internal/pipeline"
	"github.com/pable/go-fb-metrics/internal/storage"
)

// runState is one completed pipeline run shared by the commands.
type runState struct {
	cfg     config.Config
	games   []model.GameRef
	results []pipeline.Result
}

type runOptions struct {
	categories []string
	top        int
	parallel   bool
}

// execute loads the config and team table and runs every selected category.
// Only a config or team table failure is returned as an error; category
// failures are carried in the results.
func execute(opts runOptions) (*runState, error) {
	cats, err := category.Select(opts.categories)
	if err != nil {
		return nil, err
	}
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	games, err := pipeline.LoadGames(cfg)
	if err != nil {
		return nil, err
	}
	runner := &pipeline.Runner{
		Config:   cfg,
		Log:      newLogger(),
		Top:      opts.top,
		Parallel: opts.parallel,
	}
	return &runState{cfg: cfg, games: games, results: runner.Run(games, cats)}, nil
}

// openStore loads the run into a fresh in-memory database.
func (r *runState) openStore() (*storage.DB, error) {
	db, err := storage.Open(":memory:")
	if err != nil {
		return nil, fmt.Errorf("open run store: %w", err)
	}
	if err := db.InsertGames(r.games); err != nil {
		db.Close()
		return nil, fmt.Errorf("store games: %w", err)
	}
	for _, res := range r.results {
		if res.Err != nil {
			continue
		}
		err := db.InsertCategoryRun(storage.CategoryRun{
			Category:      res.Category.Name(),
			Weights:       res.Weights,
			Matched:       res.Category.HasFeature,
			Totals:        res.Totals.Rank(res.Totals.Len()),
			Contributions: res.Contributions,
			Failures:      res.Failures,
		})
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("store %s: %w", res.Category.Name(), err)
		}
	}
	return db, nil
}
