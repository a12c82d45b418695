package parser

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/pable/go-fb-metrics/internal/model"
)

// Column layout shared by every per-game category table: column 0 is the
// exporter's row index, column 1 the player, stats start at column 2.
const (
	playerCol    = 1
	firstStatCol = 2

	// gameCol is the game id column of the team table.
	gameCol = 3
)

// Field counts per category, in declared column order.
const (
	DefenseFields = 10
	AttackFields  = 23
	PassingFields = 4
)

// ParseGames reads the team table at path and returns one GameRef per row,
// in file order.
func ParseGames(path string) ([]model.GameRef, error) {
	rows, lines, err := ReadRows(path, model.ErrMalformedRecord)
	if err != nil {
		return nil, err
	}
	games := make([]model.GameRef, 0, len(rows))
	for i, row := range rows {
		if len(row) <= gameCol {
			return nil, shortRow(path, lines[i], len(row), gameCol+1)
		}
		games = append(games, model.GameRef{ID: row[gameCol]})
	}
	return games, nil
}

// ParseDefense reads one match's defense table. Any bad row discards the file.
func ParseDefense(path string) ([]model.DefenseStats, error) {
	return parseTable(path, DefenseFields, func(r *rowReader) model.DefenseStats {
		return model.DefenseStats{
			Player: r.player(),
			Tkl:    r.uint(0),
			TklW:   r.uint(1),
			Def3rd: r.uint(2),
			Mid3rd: r.uint(3),
			Att3rd: r.uint(4),
			Att:    r.uint(5),
			Lost:   r.uint(6),
			Blocks: r.uint(7),
			Sh:     r.uint(8),
			Pass:   r.uint(9),
		}
	})
}

// ParseAttack reads one match's attacking table. Any bad row discards the file.
func ParseAttack(path string) ([]model.AttackStats, error) {
	return parseTable(path, AttackFields, func(r *rowReader) model.AttackStats {
		return model.AttackStats{
			Player:  r.player(),
			Gls:     r.int(0),
			Ast:     r.int(1),
			PK:      r.int(2),
			PKAtt:   r.int(3),
			Sh:      r.int(4),
			SoT:     r.int(5),
			CrdY:    r.int(6),
			CrdR:    r.int(7),
			Touches: r.int(8),
			Tkl:     r.int(9),
			Int:     r.int(10),
			Blocks:  r.int(11),
			XG:      r.float(12),
			NPXG:    r.float(13),
			XAG:     r.float(14),
			SCA:     r.int(15),
			GCA:     r.int(16),
			Cmp:     r.int(17),
			Att:     r.int(18),
			PrgP:    r.int(19),
			Carries: r.int(20),
			PrgC:    r.int(21),
			Succ:    r.int(22),
		}
	})
}

// ParsePassing reads one match's passing table. Any bad row discards the file.
func ParsePassing(path string) ([]model.PassingStats, error) {
	return parseTable(path, PassingFields, func(r *rowReader) model.PassingStats {
		return model.PassingStats{
			Player:  r.player(),
			Cmp:     r.int(0),
			Att:     r.int(1),
			TotDist: r.int(2),
			PrgDist: r.int(3),
		}
	})
}

// parseTable applies build to every data row of the table at path. It is
// all-or-nothing: the first short row or unparseable value fails the file.
func parseTable[R any](path string, fields int, build func(*rowReader) R) ([]R, error) {
	rows, lines, err := ReadRows(path, model.ErrMalformedRecord)
	if err != nil {
		return nil, err
	}
	want := firstStatCol + fields
	out := make([]R, 0, len(rows))
	rr := &rowReader{path: path}
	for i, row := range rows {
		if len(row) < want {
			return nil, shortRow(path, lines[i], len(row), want)
		}
		rr.row, rr.line = row, lines[i]
		rec := build(rr)
		if rr.err != nil {
			return nil, rr.err
		}
		out = append(out, rec)
	}
	return out, nil
}

func shortRow(path string, line, got, want int) error {
	return &model.RowError{
		Kind:   model.ErrMalformedRecord,
		Path:   path,
		Line:   line,
		Column: -1,
		Err:    fmt.Errorf("row has %d columns, want at least %d", got, want),
	}
}

// rowReader converts stat columns of one row, remembering the first failure
// so builders can read every field unconditionally.
type rowReader struct {
	path string
	line int
	row  []string
	err  error
}

func (r *rowReader) player() string {
	return r.row[playerCol]
}

func (r *rowReader) uint(field int) uint32 {
	col := firstStatCol + field
	v, err := strconv.ParseUint(r.row[col], 10, 32)
	if err != nil {
		r.fail(col, err)
		return 0
	}
	return uint32(v)
}

func (r *rowReader) int(field int) int64 {
	col := firstStatCol + field
	v, err := strconv.ParseInt(r.row[col], 10, 64)
	if err != nil {
		r.fail(col, err)
		return 0
	}
	return v
}

func (r *rowReader) float(field int) float64 {
	col := firstStatCol + field
	v, err := strconv.ParseFloat(r.row[col], 64)
	if err != nil {
		r.fail(col, err)
		return 0
	}
	return v
}

func (r *rowReader) fail(col int, err error) {
	if r.err != nil {
		return
	}
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		err = ne.Err
	}
	r.err = &model.RowError{
		Kind:   model.ErrMalformedRecord,
		Path:   r.path,
		Line:   r.line,
		Column: col,
		Value:  r.row[col],
		Err:    err,
	}
}
