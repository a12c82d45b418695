package storage

import (
	"database/sql"
	"fmt"
	"math"

	"github.com/pable/go-fb-metrics/internal/model"
)

// CategoryRun is everything one category pass produced.
type CategoryRun struct {
	Category string
	Weights  map[string]float64
	// Matched reports whether a weight key names a feature of the category.
	Matched func(feature string) bool
	// Totals is the full ranking, best first.
	Totals        []model.RankedEntry
	Contributions []model.Contribution
	Failures      []model.GameFailure
}

// InsertGames stores the game references in enumeration order.
func (db *DB) InsertGames(games []model.GameRef) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO games(seq, game_id) VALUES (?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, g := range games {
		if _, err := stmt.Exec(i, g.ID); err != nil {
			return fmt.Errorf("insert game %s: %w", g.ID, err)
		}
	}
	return tx.Commit()
}

// InsertCategoryRun bulk-inserts one category pass in a transaction.
func (db *DB) InsertCategoryRun(r CategoryRun) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for feature, w := range r.Weights {
		matched := r.Matched != nil && r.Matched(feature)
		if _, err := tx.Exec(`
			INSERT OR REPLACE INTO weights(category, feature, weight, matched)
			VALUES (?, ?, ?, ?)`,
			r.Category, feature, nullFloat(w), boolInt(matched)); err != nil {
			return fmt.Errorf("insert weight %s: %w", feature, err)
		}
	}

	stmt, err := tx.Prepare(`
		INSERT INTO contributions(category, game_id, player, score)
		VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, c := range r.Contributions {
		if _, err := stmt.Exec(r.Category, c.Game, c.Player, nullFloat(c.Score)); err != nil {
			return fmt.Errorf("insert contribution for %s: %w", c.Player, err)
		}
	}

	for i, e := range r.Totals {
		if _, err := tx.Exec(`
			INSERT OR REPLACE INTO totals(category, player, total, appearances, rank)
			VALUES (?, ?, ?, ?, ?)`,
			r.Category, e.Player, nullFloat(e.Total), e.Count, i+1); err != nil {
			return fmt.Errorf("insert total for %s: %w", e.Player, err)
		}
	}

	for _, f := range r.Failures {
		if _, err := tx.Exec(`
			INSERT INTO failures(category, game_id, path, error) VALUES (?, ?, ?, ?)`,
			r.Category, f.Game, f.Path, f.Err.Error()); err != nil {
			return fmt.Errorf("insert failure for %s: %w", f.Game, err)
		}
	}
	return tx.Commit()
}

// PlayerContributions returns every scored record for player, grouped by
// category and in game order within a category.
func (db *DB) PlayerContributions(player string) ([]model.Contribution, error) {
	rows, err := db.conn.Query(`
		SELECT category, game_id, player, score
		FROM contributions WHERE player = ?
		ORDER BY category, id`, player)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Contribution
	for rows.Next() {
		var c model.Contribution
		var score sql.NullFloat64
		if err := rows.Scan(&c.Category, &c.Game, &c.Player, &score); err != nil {
			return nil, err
		}
		c.Score = floatOrNaN(score)
		out = append(out, c)
	}
	return out, rows.Err()
}

// CategoryTotals returns the stored ranking of category, best first. A
// non-positive limit returns every player.
func (db *DB) CategoryTotals(category string, limit int) ([]model.RankedEntry, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := db.conn.Query(`
		SELECT player, total, appearances FROM totals
		WHERE category = ? ORDER BY rank LIMIT ?`, category, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.RankedEntry
	for rows.Next() {
		var e model.RankedEntry
		var total sql.NullFloat64
		if err := rows.Scan(&e.Player, &total, &e.Count); err != nil {
			return nil, err
		}
		e.Total = floatOrNaN(total)
		out = append(out, e)
	}
	return out, rows.Err()
}

// QueryRaw runs an arbitrary query and returns column names and rows with
// every value rendered as a string.
func (db *DB) QueryRaw(query string) ([]string, [][]string, error) {
	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}

	var out [][]string
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, err
		}
		row := make([]string, len(cols))
		for i, v := range vals {
			switch x := v.(type) {
			case nil:
				row[i] = "NULL"
			case []byte:
				row[i] = string(x)
			case float64:
				row[i] = fmt.Sprintf("%.4f", x)
			default:
				row[i] = fmt.Sprint(x)
			}
		}
		out = append(out, row)
	}
	return cols, out, rows.Err()
}

// SQLite has no NaN; store it as NULL.
func nullFloat(f float64) sql.NullFloat64 {
	if math.IsNaN(f) {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: f, Valid: true}
}

func floatOrNaN(f sql.NullFloat64) float64 {
	if !f.Valid {
		return math.NaN()
	}
	return f.Float64
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
