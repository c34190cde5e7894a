// Package kinetics computes instantaneous reaction rates from kinetic
// parameters and current concentrations. Every function here is pure: no
// state is held anywhere in the package, and no function ever fails — a
// degenerate input (a non-positive substrate, a zero Km) simply yields a
// rate of zero rather than an error or a panic.
package kinetics

import "math"

// Kind tags the rate-law family a Reaction uses. It replaces a class
// hierarchy with a small closed enumeration dispatched in Evaluate.
type Kind int

const (
	MichaelisMenten Kind = iota
	CompetitiveInhibition
	NonCompetitiveInhibition
	Allosteric
	MassAction
)

func (k Kind) String() string {
	switch k {
	case MichaelisMenten:
		return "MichaelisMenten"
	case CompetitiveInhibition:
		return "CompetitiveInhibition"
	case NonCompetitiveInhibition:
		return "NonCompetitiveInhibition"
	case Allosteric:
		return "Allosteric"
	case MassAction:
		return "MassAction"
	default:
		return "Unknown"
	}
}

// ParseKind maps a JSON kinetics-kind string (§6.2) to a Kind. ok is false
// for anything unrecognized; callers treat that as a build-time error.
func ParseKind(s string) (k Kind, ok bool) {
	switch s {
	case "MichaelisMenten":
		return MichaelisMenten, true
	case "CompetitiveInhibition":
		return CompetitiveInhibition, true
	case "NonCompetitiveInhibition":
		return NonCompetitiveInhibition, true
	case "Allosteric":
		return Allosteric, true
	case "MassAction":
		return MassAction, true
	default:
		return 0, false
	}
}

// Params bundles every value a rate law might need. Not every field is
// relevant to every Kind; unused ones are ignored by Evaluate.
type Params struct {
	Vmax           float64 // already scaled by the tick's enzyme-activity multiplier; the rate constant k for MassAction
	Km             float64 // or the allosteric K
	Substrate      float64 // the limiting (first-declared) substrate's concentration
	HasSubstrate   bool    // false for a MassAction reaction with no declared substrates
	Inhibitor      float64 // summed concentration of all declared inhibitors
	Ki             float64
	Hill           float64 // Hill coefficient n (Allosteric only)
}

// MichaelisMentenRate returns Vmax·[S] / (Km + [S]). It returns 0 when
// [S] <= 0 or Km <= 0, and never returns a negative rate.
func MichaelisMentenRate(vmax, km, s float64) float64 {
	if s <= 0 || km <= 0 || vmax <= 0 {
		return 0
	}
	return vmax * s / (km + s)
}

// CompetitiveInhibitionRate returns Vmax·[S] / (Km·(1+[I]/Ki) + [S]).
// Falls back to MichaelisMentenRate when Ki <= 0.
func CompetitiveInhibitionRate(vmax, km, s, i, ki float64) float64 {
	if ki <= 0 {
		return MichaelisMentenRate(vmax, km, s)
	}
	if s <= 0 || km <= 0 || vmax <= 0 {
		return 0
	}
	if i < 0 {
		i = 0
	}
	return vmax * s / (km*(1+i/ki) + s)
}

// NonCompetitiveInhibitionRate returns (Vmax/(1+[I]/Ki))·[S]/(Km+[S]).
// Falls back to ignoring the inhibitor term when Ki <= 0.
func NonCompetitiveInhibitionRate(vmax, km, s, i, ki float64) float64 {
	if s <= 0 || km <= 0 || vmax <= 0 {
		return 0
	}
	factor := 1.0
	if ki > 0 {
		if i < 0 {
			i = 0
		}
		factor = 1 + i/ki
	}
	return (vmax / factor) * s / (km + s)
}

// AllostericRate returns Vmax·[S]^n / (K^n + [S]^n).
func AllostericRate(vmax, k, s, n float64) float64 {
	if s <= 0 || k <= 0 || vmax <= 0 {
		return 0
	}
	if n == 0 {
		n = 1
	}
	sn := math.Pow(s, n)
	kn := math.Pow(k, n)
	if sn+kn <= 0 {
		return 0
	}
	return vmax * sn / (kn + sn)
}

// MassActionRate returns k·[S]. With no substrate declared (hasSubstrate
// false) it returns k itself, modeling a constant source reaction.
func MassActionRate(k float64, s float64, hasSubstrate bool) float64 {
	if !hasSubstrate {
		if k < 0 {
			return 0
		}
		return k
	}
	if s <= 0 || k <= 0 {
		return 0
	}
	return k * s
}

// ActivationMultiplier returns baseRate·(1 + [A]/Ka), applied on top of a
// base rate when a reaction declares activators. Returns baseRate unchanged
// when Ka <= 0 (no well-defined activation constant).
func ActivationMultiplier(baseRate, a, ka float64) float64 {
	if ka <= 0 {
		return baseRate
	}
	if a < 0 {
		a = 0
	}
	return baseRate * (1 + a/ka)
}

// Evaluate dispatches to the rate law selected by kind. The first declared
// substrate is the sole input to rate scaling (spec's first-substrate
// simplification — see Params docs); additional substrates participate in
// the derivative only via stoichiometric consumption, computed by the
// caller, never here. The result is always >= 0 and never NaN/Inf for
// finite, well-formed inputs.
func Evaluate(kind Kind, p Params) float64 {
	var rate float64
	switch kind {
	case MichaelisMenten:
		rate = MichaelisMentenRate(p.Vmax, p.Km, p.Substrate)
	case CompetitiveInhibition:
		rate = CompetitiveInhibitionRate(p.Vmax, p.Km, p.Substrate, p.Inhibitor, p.Ki)
	case NonCompetitiveInhibition:
		rate = NonCompetitiveInhibitionRate(p.Vmax, p.Km, p.Substrate, p.Inhibitor, p.Ki)
	case Allosteric:
		rate = AllostericRate(p.Vmax, p.Km, p.Substrate, p.Hill)
	case MassAction:
		rate = MassActionRate(p.Vmax, p.Substrate, p.HasSubstrate)
	default:
		rate = 0
	}
	if rate < 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return 0
	}
	return rate
}
