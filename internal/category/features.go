package category

import (
	"github.com/pable/go-fb-metrics/internal/model"
	"github.com/pable/go-fb-metrics/internal/scorer"
)

// DefenseFeatures names the defense table columns a weight can target.
var DefenseFeatures = scorer.Features[model.DefenseStats]{
	"tkl":    func(s model.DefenseStats) float64 { return float64(s.Tkl) },
	"tklw":   func(s model.DefenseStats) float64 { return float64(s.TklW) },
	"def3rd": func(s model.DefenseStats) float64 { return float64(s.Def3rd) },
	"mid3rd": func(s model.DefenseStats) float64 { return float64(s.Mid3rd) },
	"att3rd": func(s model.DefenseStats) float64 { return float64(s.Att3rd) },
	"att":    func(s model.DefenseStats) float64 { return float64(s.Att) },
	"lost":   func(s model.DefenseStats) float64 { return float64(s.Lost) },
	"blocks": func(s model.DefenseStats) float64 { return float64(s.Blocks) },
	"sh":     func(s model.DefenseStats) float64 { return float64(s.Sh) },
	"pass":   func(s model.DefenseStats) float64 { return float64(s.Pass) },
}

// AttackFeatures names the attacking table columns a weight can target.
// Interceptions are keyed "int_", the name the weight export gives them.
var AttackFeatures = scorer.Features[model.AttackStats]{
	"gls":     func(s model.AttackStats) float64 { return float64(s.Gls) },
	"ast":     func(s model.AttackStats) float64 { return float64(s.Ast) },
	"pk":      func(s model.AttackStats) float64 { return float64(s.PK) },
	"pkatt":   func(s model.AttackStats) float64 { return float64(s.PKAtt) },
	"sh":      func(s model.AttackStats) float64 { return float64(s.Sh) },
	"sot":     func(s model.AttackStats) float64 { return float64(s.SoT) },
	"crdy":    func(s model.AttackStats) float64 { return float64(s.CrdY) },
	"crdr":    func(s model.AttackStats) float64 { return float64(s.CrdR) },
	"touches": func(s model.AttackStats) float64 { return float64(s.Touches) },
	"tkl":     func(s model.AttackStats) float64 { return float64(s.Tkl) },
	"int_":    func(s model.AttackStats) float64 { return float64(s.Int) },
	"blocks":  func(s model.AttackStats) float64 { return float64(s.Blocks) },
	"xg":      func(s model.AttackStats) float64 { return s.XG },
	"npxg":    func(s model.AttackStats) float64 { return s.NPXG },
	"xag":     func(s model.AttackStats) float64 { return s.XAG },
	"sca":     func(s model.AttackStats) float64 { return float64(s.SCA) },
	"gca":     func(s model.AttackStats) float64 { return float64(s.GCA) },
	"cmp":     func(s model.AttackStats) float64 { return float64(s.Cmp) },
	"att":     func(s model.AttackStats) float64 { return float64(s.Att) },
	"prgp":    func(s model.AttackStats) float64 { return float64(s.PrgP) },
	"carries": func(s model.AttackStats) float64 { return float64(s.Carries) },
	"prgc":    func(s model.AttackStats) float64 { return float64(s.PrgC) },
	"succ":    func(s model.AttackStats) float64 { return float64(s.Succ) },
}

// PassingFeatures names the passing table columns a weight can target.
var PassingFeatures = scorer.Features[model.PassingStats]{
	"cmp":     func(s model.PassingStats) float64 { return float64(s.Cmp) },
	"att":     func(s model.PassingStats) float64 { return float64(s.Att) },
	"totdist": func(s model.PassingStats) float64 { return float64(s.TotDist) },
	"prgdist": func(s model.PassingStats) float64 { return float64(s.PrgDist) },
}
