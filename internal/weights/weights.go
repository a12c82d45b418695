// Package weights loads the per-category feature weight tables.
package weights

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/pable/go-fb-metrics/internal/model"
	"github.com/pable/go-fb-metrics/internal/parser"
)

// Table maps a feature name to its linear coefficient.
type Table map[string]float64

// Load reads a two-column (feature, weight) table. The header row is skipped
// unconditionally. A later row for the same feature overwrites an earlier one.
func Load(path string) (Table, error) {
	rows, lines, err := parser.ReadRows(path, model.ErrMalformedWeight)
	if err != nil {
		return nil, err
	}
	t := make(Table, len(rows))
	for i, row := range rows {
		if len(row) < 2 {
			return nil, &model.RowError{
				Kind:   model.ErrMalformedWeight,
				Path:   path,
				Line:   lines[i],
				Column: -1,
				Err:    fmt.Errorf("row has %d columns, want 2", len(row)),
			}
		}
		w, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			var ne *strconv.NumError
			if errors.As(err, &ne) {
				err = ne.Err
			}
			return nil, &model.RowError{
				Kind:   model.ErrMalformedWeight,
				Path:   path,
				Line:   lines[i],
				Column: 1,
				Value:  row[1],
				Err:    err,
			}
		}
		t[row[0]] = w
	}
	return t, nil
}

// Keys returns the feature names in sorted order.
func (t Table) Keys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Unmatched returns the sorted feature names for which known reports false.
// Scoring ignores these keys; this is only for diagnostics.
func (t Table) Unmatched(known func(string) bool) []string {
	var out []string
	for _, k := range t.Keys() {
		if !known(k) {
			out = append(out, k)
		}
	}
	return out
}
