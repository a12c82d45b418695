package aggregator

import (
	"math"
	"sort"

	"github.com/pable/go-fb-metrics/internal/model"
)

// Total is one player's running score sum and the number of records in it.
type Total struct {
	Sum   float64
	Count int
}

// Accumulator holds per-player totals for a single category. The zero value
// is not usable; call New.
type Accumulator struct {
	totals map[string]*Total
}

// New returns an empty Accumulator.
func New() *Accumulator {
	return &Accumulator{totals: make(map[string]*Total)}
}

// Add folds one record's score into player's total. Two rows for the same
// player in one game count as two contributions.
func (a *Accumulator) Add(player string, score float64) {
	t, ok := a.totals[player]
	if !ok {
		t = &Total{}
		a.totals[player] = t
	}
	t.Sum += score
	t.Count++
}

// Get returns player's total and whether the player has been seen.
func (a *Accumulator) Get(player string) (Total, bool) {
	t, ok := a.totals[player]
	if !ok {
		return Total{}, false
	}
	return *t, true
}

// Len returns the number of distinct players.
func (a *Accumulator) Len() int {
	return len(a.totals)
}

// Ambiguous returns, sorted, the players whose total is NaN. Rank still
// orders them (last), but their position carries no meaning.
func (a *Accumulator) Ambiguous() []string {
	var out []string
	for p, t := range a.totals {
		if math.IsNaN(t.Sum) {
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out
}

// Rank returns the top n players by total score, highest first. Equal totals
// are ordered by player name ascending and NaN totals sort after all numbers,
// so the result is fully deterministic. Fewer than n players is not an error.
func (a *Accumulator) Rank(n int) []model.RankedEntry {
	if n <= 0 {
		return []model.RankedEntry{}
	}
	all := make([]model.RankedEntry, 0, len(a.totals))
	for p, t := range a.totals {
		all = append(all, model.RankedEntry{Player: p, Total: t.Sum, Count: t.Count})
	}
	sort.Slice(all, func(i, j int) bool {
		return less(all[i], all[j])
	})
	if n < len(all) {
		all = all[:n]
	}
	return all
}

// less orders entries by descending total with NaN last, then by player.
func less(x, y model.RankedEntry) bool {
	xn, yn := math.IsNaN(x.Total), math.IsNaN(y.Total)
	switch {
	case xn && !yn:
		return false
	case yn && !xn:
		return true
	case !xn && x.Total != y.Total:
		return x.Total > y.Total
	}
	return x.Player < y.Player
}
