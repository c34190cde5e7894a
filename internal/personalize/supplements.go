package personalize

import "github.com/GoCodeAlone/pathwaysim/internal/pathway"

// SupplementType is one of the five intervention mechanisms recognized by
// spec §6.6.
type SupplementType int

const (
	SubstrateIncrease SupplementType = iota
	CofactorIncrease
	EnzymeActivation
	EnzymeInhibition
	DirectMetaboliteAddition
)

// ParseSupplementType maps a JSON supplement "type" string to a
// SupplementType.
func ParseSupplementType(s string) (SupplementType, bool) {
	switch s {
	case "SubstrateIncrease":
		return SubstrateIncrease, true
	case "CofactorIncrease":
		return CofactorIncrease, true
	case "EnzymeActivation":
		return EnzymeActivation, true
	case "EnzymeInhibition":
		return EnzymeInhibition, true
	case "DirectMetaboliteAddition":
		return DirectMetaboliteAddition, true
	default:
		return 0, false
	}
}

// Supplement is a declarative intervention applied once, before a
// simulation run starts.
type Supplement struct {
	ID              string
	Name            string
	Type            SupplementType
	TargetID        string
	EffectMagnitude float64
	Mechanism       string
}

// ApplySupplements returns a new Pathway with each supplement's effect
// applied. SubstrateIncrease, CofactorIncrease, and
// DirectMetaboliteAddition add EffectMagnitude to the target metabolite's
// initial concentration; EnzymeActivation multiplies the target enzyme's
// Vmax by EffectMagnitude, EnzymeInhibition divides by it. A target id the
// pathway doesn't define is skipped, not an error — supplement
// interventions never fail a run.
func ApplySupplements(p pathway.Pathway, supplements []Supplement) pathway.Pathway {
	metabolites := append([]pathway.Metabolite(nil), p.Metabolites...)
	enzymes := append([]pathway.Enzyme(nil), p.Enzymes...)

	for _, s := range supplements {
		switch s.Type {
		case SubstrateIncrease, CofactorIncrease, DirectMetaboliteAddition:
			idx, ok := p.Index(s.TargetID)
			if !ok {
				continue
			}
			metabolites[idx] = metabolites[idx].WithInitialConcentration(metabolites[idx].InitialConcentration + s.EffectMagnitude)
		case EnzymeActivation:
			idx, ok := enzymeIndexOf(p, s.TargetID)
			if !ok {
				continue
			}
			enzymes[idx] = enzymes[idx].WithVmax(enzymes[idx].Vmax * s.EffectMagnitude)
		case EnzymeInhibition:
			idx, ok := enzymeIndexOf(p, s.TargetID)
			if !ok || s.EffectMagnitude == 0 {
				continue
			}
			enzymes[idx] = enzymes[idx].WithVmax(enzymes[idx].Vmax / s.EffectMagnitude)
		}
	}

	rebuilt, err := p.Rebuild(metabolites, enzymes, p.Reactions)
	if err != nil {
		return p
	}
	return rebuilt
}
