// Package pathway holds the declarative, immutable representation of a
// metabolic network: metabolites, enzymes, reactions, and the pathways
// built from them. Every exported type is a plain data structure; "editing"
// one means building a modified copy with a With* helper, never mutating
// the original in place.
package pathway

import "github.com/GoCodeAlone/pathwaysim/internal/kinetics"

// Orientation records which DNA strand a genotype was reported on.
type Orientation int

const (
	Plus Orientation = iota
	Minus
)

func ParseOrientation(s string) (Orientation, bool) {
	switch s {
	case "Plus", "plus", "+":
		return Plus, true
	case "Minus", "minus", "-":
		return Minus, true
	default:
		return 0, false
	}
}

// Metabolite is a tracked chemical species.
type Metabolite struct {
	ID                    string
	Name                  string
	InitialConcentration  float64 // mM, >= 0
	Compartment           string
}

// WithInitialConcentration returns a copy of m with a new starting
// concentration. Negative values are clamped to 0.
func (m Metabolite) WithInitialConcentration(v float64) Metabolite {
	if v < 0 {
		v = 0
	}
	m.InitialConcentration = v
	return m
}

// GeneticModifier describes how a genotype at one SNP scales an enzyme's
// Vmax.
type GeneticModifier struct {
	RSID               string
	Gene               string
	RiskAllele         string // single base, e.g. "T"
	Orientation        Orientation
	HomozygousEffect   float64
	HeterozygousEffect float64
	Description        string
}

// Enzyme is a catalyst with Michaelis-Menten parameters and zero or more
// genetic modifiers of its Vmax.
type Enzyme struct {
	ID               string
	Name             string
	ECNumber         string
	Vmax             float64 // > 0
	Km               float64 // > 0
	Cofactors        []string
	GeneticModifiers []GeneticModifier
}

// WithVmax returns a copy of e with Vmax replaced.
func (e Enzyme) WithVmax(v float64) Enzyme {
	e.Vmax = v
	return e
}

// ReactionParticipant is a stoichiometric role in a Reaction.
type ReactionParticipant struct {
	MetaboliteID string
	Coefficient  int // >= 1
}

// Reaction is a directed transformation catalyzed by one enzyme.
type Reaction struct {
	ID              string
	Name            string
	EnzymeID        string
	Substrates      []ReactionParticipant
	Products        []ReactionParticipant
	Kinetics        kinetics.Kind
	InhibitorIDs    []string
	Ki              float64
	ActivatorIDs    []string
	Ka              float64
	HillCoefficient float64
}

// Pathway is an immutable collection of metabolites, enzymes, and
// reactions that forms a reaction graph. Once Build succeeds, string ids
// referenced by reactions are guaranteed to resolve; Index and EnzymeByID
// read id -> slice-position maps built once at construction time, so each
// lookup is a single map read keyed by the id string rather than a scan of
// the slices.
type Pathway struct {
	ID          string
	Name        string
	Description string
	Metabolites []Metabolite
	Reactions   []Reaction
	Enzymes     []Enzyme

	metaboliteIndex map[string]int
	enzymeIndex     map[string]int
}

// Index returns the slice position of a metabolite id in Metabolites,
// suitable for indexing a state vector built by InitialState.
func (p Pathway) Index(metaboliteID string) (int, bool) {
	i, ok := p.metaboliteIndex[metaboliteID]
	return i, ok
}

// EnzymeByID returns the enzyme with the given id.
func (p Pathway) EnzymeByID(id string) (Enzyme, bool) {
	i, ok := p.enzymeIndex[id]
	if !ok {
		return Enzyme{}, false
	}
	return p.Enzymes[i], true
}

// InitialState returns a fresh state vector in Metabolites declaration
// order, the starting point for integration.
func (p Pathway) InitialState() []float64 {
	y := make([]float64, len(p.Metabolites))
	for i, m := range p.Metabolites {
		y[i] = m.InitialConcentration
	}
	return y
}

// Rebuild reconstructs a Pathway from replacement metabolite/enzyme/
// reaction slices, re-running the same validation Build performs. It is
// the primitive every structural-update transform (ApplyProfile,
// ApplyGenetics, ApplySupplements) is built from: each produces a new
// metabolite/enzyme slice and calls Rebuild rather than mutating p.
func (p Pathway) Rebuild(metabolites []Metabolite, enzymes []Enzyme, reactions []Reaction) (Pathway, error) {
	return Build(p.ID, p.Name, p.Description, metabolites, enzymes, reactions)
}
