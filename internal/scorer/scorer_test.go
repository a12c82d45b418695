package scorer

import (
	"math"
	"testing"

	"github.com/pable/go-fb-metrics/internal/weights"
)

type rec struct {
	tkl, att, lost float64
}

var recFeatures = Features[rec]{
	"tkl":  func(r rec) float64 { return r.tkl },
	"att":  func(r rec) float64 { return r.att },
	"lost": func(r rec) float64 { return r.lost },
}

func TestScore_WeightedSum(t *testing.T) {
	r := rec{tkl: 10, att: 20}
	got := Score(r, recFeatures, weights.Table{"tkl": 1.0, "att": 2.0})
	if got != 50.0 {
		t.Errorf("expected 50.0, got %f", got)
	}
}

func TestScore_EmptyTable(t *testing.T) {
	r := rec{tkl: 3, att: 4, lost: 5}
	if got := Score(r, recFeatures, weights.Table{}); got != 0 {
		t.Errorf("expected 0 for empty table, got %f", got)
	}
	if got := Score(r, recFeatures, nil); got != 0 {
		t.Errorf("expected 0 for nil table, got %f", got)
	}
}

func TestScore_UnknownKeysIgnored(t *testing.T) {
	r := rec{tkl: 3, att: 4, lost: 5}
	if got := Score(r, recFeatures, weights.Table{"gls": 9, "xg": 1.5}); got != 0 {
		t.Errorf("expected 0 when no key matches, got %f", got)
	}
	if got := Score(r, recFeatures, weights.Table{"gls": 9, "lost": -1}); got != -5 {
		t.Errorf("expected -5 from lost only, got %f", got)
	}
}

func TestScore_Linear(t *testing.T) {
	r := rec{tkl: 7, att: 13, lost: 2}
	cases := []struct {
		key    string
		w1, w2 float64
	}{
		{"tkl", 0.3, 0.45},
		{"att", -1.25, 2.5},
		{"lost", 1e-3, 7},
	}
	for _, tc := range cases {
		sum := Score(r, recFeatures, weights.Table{tc.key: tc.w1 + tc.w2})
		parts := Score(r, recFeatures, weights.Table{tc.key: tc.w1}) +
			Score(r, recFeatures, weights.Table{tc.key: tc.w2})
		if math.Abs(sum-parts) > 1e-9 {
			t.Errorf("%s: score(w1+w2)=%f, score(w1)+score(w2)=%f", tc.key, sum, parts)
		}
	}
}

func TestBind_ReusableAcrossRecords(t *testing.T) {
	score := Bind(recFeatures, weights.Table{"tkl": 2, "nope": 100})
	if got := score(rec{tkl: 1}); got != 2 {
		t.Errorf("expected 2, got %f", got)
	}
	if got := score(rec{tkl: 5, att: 9}); got != 10 {
		t.Errorf("expected 10, got %f", got)
	}
}

func TestFeatures_Has(t *testing.T) {
	if !recFeatures.Has("tkl") {
		t.Error("expected tkl to be a feature")
	}
	if recFeatures.Has("gls") {
		t.Error("expected gls not to be a feature")
	}
}
