package weights

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pable/go-fb-metrics/internal/model"
)

func writeWeights(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "defense_statsweight.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write weights: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeWeights(t, "Feature,Average_Weight\ntkl,0.12\natt,2\nbogus,-0.5\n")

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Table{"tkl": 0.12, "att": 2, "bogus": -0.5}
	if len(got) != len(want) {
		t.Fatalf("expected %d weights, got %d: %v", len(want), len(got), got)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s: expected %v, got %v", k, v, got[k])
		}
	}
}

func TestLoad_HeaderSkippedWithoutValidation(t *testing.T) {
	// A header that looks like data is still skipped.
	path := writeWeights(t, "tkl,100\natt,1\n")

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, ok := got["tkl"]; ok {
		t.Error("header row should never become a weight")
	}
	if got["att"] != 1 {
		t.Errorf("expected att=1, got %v", got["att"])
	}
}

func TestLoad_QuoteCorruptedHeader(t *testing.T) {
	for _, header := range []string{`Feature "name",Average_Weight`, `"Feature,Average_Weight`} {
		path := writeWeights(t, header+"\ntkl,1\natt,2\n")

		got, err := Load(path)
		if err != nil {
			t.Fatalf("header %q: %v", header, err)
		}
		if len(got) != 2 || got["tkl"] != 1 || got["att"] != 2 {
			t.Errorf("header %q: expected {tkl:1 att:2}, got %v", header, got)
		}
	}
}

func TestLoad_DuplicateLastWins(t *testing.T) {
	path := writeWeights(t, "f,w\ntkl,1\ntkl,3.5\n")

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got["tkl"] != 3.5 {
		t.Errorf("expected last occurrence 3.5, got %v", got["tkl"])
	}
}

func TestLoad_MalformedWeight(t *testing.T) {
	cases := []struct {
		name    string
		content string
		line    int
	}{
		{"not a number", "f,w\ntkl,1\natt,heavy\n", 3},
		{"empty weight", "f,w\ntkl,\n", 2},
		{"short row", "f,w\ntkl\n", 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeWeights(t, tc.content)
			got, err := Load(path)
			if got != nil {
				t.Errorf("expected no table on failure, got %v", got)
			}
			if !errors.Is(err, model.ErrMalformedWeight) {
				t.Fatalf("expected ErrMalformedWeight, got %v", err)
			}
			var re *model.RowError
			if !errors.As(err, &re) || re.Line != tc.line {
				t.Errorf("expected row error on line %d, got %v", tc.line, err)
			}
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"))
	if !errors.Is(err, model.ErrIO) {
		t.Fatalf("expected ErrIO, got %v", err)
	}
}

func TestUnmatched(t *testing.T) {
	tbl := Table{"tkl": 1, "gls": 2, "att": 3, "xg": 4}
	known := func(k string) bool { return k == "tkl" || k == "att" }

	got := tbl.Unmatched(known)
	if len(got) != 2 || got[0] != "gls" || got[1] != "xg" {
		t.Errorf("expected [gls xg], got %v", got)
	}
}
