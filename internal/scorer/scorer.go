// Package scorer computes a record's weighted linear score.
package scorer

import (
	"github.com/pable/go-fb-metrics/internal/weights"
)

// Features maps a feature name to the accessor that reads it off a record.
type Features[R any] map[string]func(R) float64

// Has reports whether name is a feature of R.
func (f Features[R]) Has(name string) bool {
	_, ok := f[name]
	return ok
}

// Score sums value*weight over every weight whose name is a feature of the
// record. Weight names with no matching feature contribute nothing, and
// features with no weight contribute zero.
func Score[R any](rec R, features Features[R], w weights.Table) float64 {
	return Bind(features, w)(rec)
}

type term[R any] struct {
	get    func(R) float64
	weight float64
}

// Bind resolves the weight table against features once and returns a scoring
// function for many records. Terms are summed in feature-name order so the
// result is the same on every run.
func Bind[R any](features Features[R], w weights.Table) func(R) float64 {
	var terms []term[R]
	for _, name := range w.Keys() {
		if get, ok := features[name]; ok {
			terms = append(terms, term[R]{get: get, weight: w[name]})
		}
	}
	return func(rec R) float64 {
		score := 0.0
		for _, t := range terms {
			score += t.get(rec) * t.weight
		}
		return score
	}
}
