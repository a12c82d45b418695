package model

// GameRef identifies one match. ID is the directory name under the data dir
// that holds the match's per-category stat tables.
type GameRef struct {
	ID string
}

// ---- Per-category stat records produced by the parser ----

// DefenseStats is one player's row from a match's defense_stats table.
type DefenseStats struct {
	Player string
	Tkl    uint32 // tackles
	TklW   uint32 // tackles won
	Def3rd uint32 // tackles in defensive third
	Mid3rd uint32
	Att3rd uint32
	Att    uint32 // dribblers challenged
	Lost   uint32 // challenges lost
	Blocks uint32
	Sh     uint32 // shots blocked
	Pass   uint32 // passes blocked
}

// AttackStats is one player's row from a match's attacking_stats (summary) table.
type AttackStats struct {
	Player  string
	Gls     int64
	Ast     int64
	PK      int64
	PKAtt   int64
	Sh      int64
	SoT     int64
	CrdY    int64
	CrdR    int64
	Touches int64
	Tkl     int64
	Int     int64
	Blocks  int64
	XG      float64
	NPXG    float64
	XAG     float64
	SCA     int64 // shot-creating actions
	GCA     int64 // goal-creating actions
	Cmp     int64
	Att     int64
	PrgP    int64
	Carries int64
	PrgC    int64
	Succ    int64 // successful take-ons
}

// PassingStats is one player's row from a match's passing_stats table.
type PassingStats struct {
	Player  string
	Cmp     int64
	Att     int64
	TotDist int64
	PrgDist int64
}

// ---- Pipeline output ----

// Contribution is a single scored record: one player's score in one game.
type Contribution struct {
	Category string
	Game     string
	Player   string
	Score    float64
}

// RankedEntry is one row of a category ranking.
type RankedEntry struct {
	Player string
	Total  float64
	Count  int
}

// Mean returns the average score per contributing record.
func (e RankedEntry) Mean() float64 {
	if e.Count == 0 {
		return 0
	}
	return e.Total / float64(e.Count)
}

// GameFailure records a per-game file that could not be used.
type GameFailure struct {
	Game string
	Path string
	Err  error
}
