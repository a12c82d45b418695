package model

import (
	"errors"
	"fmt"
)

// Error kinds. Use errors.Is against these; RowError unwraps to its kind.
var (
	ErrIO               = errors.New("io failure")
	ErrMalformedWeight  = errors.New("malformed weight")
	ErrMalformedRecord  = errors.New("malformed record")
	ErrRankingAmbiguity = errors.New("ranking ambiguity")
)

// RowError describes a row-level parse failure in a tabular source.
// Line is 1-based and counts the header row. Column is 0-based, or -1
// when the row as a whole is at fault (too few columns).
type RowError struct {
	Kind   error
	Path   string
	Line   int
	Column int
	Value  string
	Err    error
}

func (e *RowError) Error() string {
	if e.Column < 0 {
		return fmt.Sprintf("%v: %s line %d: %v", e.Kind, e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("%v: %s line %d column %d: value %q: %v",
		e.Kind, e.Path, e.Line, e.Column, e.Value, e.Err)
}

func (e *RowError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}
