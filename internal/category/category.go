// Package category binds each stat category's record parser, feature table,
// output tag and defaults behind a single interface the pipeline drives.
package category

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pable/go-fb-metrics/internal/model"
	"github.com/pable/go-fb-metrics/internal/parser"
	"github.com/pable/go-fb-metrics/internal/scorer"
	"github.com/pable/go-fb-metrics/internal/weights"
)

// Category is one independent scoring pass.
type Category interface {
	// Name is the long name used in config and logs ("defense").
	Name() string
	// Tag prefixes the category's output line ("def").
	Tag() string
	// Top is the default ranking size.
	Top() int
	// WeightsFile and StatsFile are the default file names.
	WeightsFile() string
	StatsFile() string
	// Features lists the matchable feature names, sorted.
	Features() []string
	HasFeature(name string) bool
	// Score parses the stat table at path and scores every row with w.
	Score(game, path string, w weights.Table) ([]model.Contribution, error)
}

type category[R any] struct {
	name, tag   string
	top         int
	weightsFile string
	statsFile   string
	parse       func(path string) ([]R, error)
	player      func(R) string
	features    scorer.Features[R]
}

func (c *category[R]) Name() string        { return c.name }
func (c *category[R]) Tag() string         { return c.tag }
func (c *category[R]) Top() int            { return c.top }
func (c *category[R]) WeightsFile() string { return c.weightsFile }
func (c *category[R]) StatsFile() string   { return c.statsFile }

func (c *category[R]) HasFeature(name string) bool { return c.features.Has(name) }

func (c *category[R]) Features() []string {
	names := make([]string, 0, len(c.features))
	for n := range c.features {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (c *category[R]) Score(game, path string, w weights.Table) ([]model.Contribution, error) {
	recs, err := c.parse(path)
	if err != nil {
		return nil, err
	}
	score := scorer.Bind(c.features, w)
	out := make([]model.Contribution, 0, len(recs))
	for _, r := range recs {
		out = append(out, model.Contribution{
			Category: c.name,
			Game:     game,
			Player:   c.player(r),
			Score:    score(r),
		})
	}
	return out, nil
}

// Defense, Attack and Passing are the built-in categories.
var (
	Defense Category = &category[model.DefenseStats]{
		name:        "defense",
		tag:         "def",
		top:         4,
		weightsFile: "defense_statsweight.csv",
		statsFile:   "defense_stats.csv",
		parse:       parser.ParseDefense,
		player:      func(s model.DefenseStats) string { return s.Player },
		features:    DefenseFeatures,
	}
	Attack Category = &category[model.AttackStats]{
		name:        "attack",
		tag:         "att",
		top:         3,
		weightsFile: "attacking_statsweight.csv",
		statsFile:   "attacking_stats.csv",
		parse:       parser.ParseAttack,
		player:      func(s model.AttackStats) string { return s.Player },
		features:    AttackFeatures,
	}
	Passing Category = &category[model.PassingStats]{
		name:        "passing",
		tag:         "pass",
		top:         3,
		weightsFile: "passing_statsweight.csv",
		statsFile:   "passing_stats.csv",
		parse:       parser.ParsePassing,
		player:      func(s model.PassingStats) string { return s.Player },
		features:    PassingFeatures,
	}
)

// All returns the categories in output order.
func All() []Category {
	return []Category{Defense, Passing, Attack}
}

// Lookup finds a category by name, tag or the stat file stem
// ("defense", "def", "attacking", ...).
func Lookup(name string) (Category, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, c := range All() {
		if n == c.Name() || n == c.Tag() || n+"_stats.csv" == c.StatsFile() {
			return c, nil
		}
	}
	return nil, fmt.Errorf("unknown category %q (want defense, attack or passing)", name)
}

// Select resolves a list of names into categories, keeping output order and
// dropping duplicates. An empty list selects everything.
func Select(names []string) ([]Category, error) {
	if len(names) == 0 {
		return All(), nil
	}
	want := make(map[string]bool)
	for _, n := range names {
		c, err := Lookup(n)
		if err != nil {
			return nil, err
		}
		want[c.Name()] = true
	}
	var out []Category
	for _, c := range All() {
		if want[c.Name()] {
			out = append(out, c)
		}
	}
	return out, nil
}
