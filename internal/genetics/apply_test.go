package genetics

import (
	"testing"

	"github.com/GoCodeAlone/pathwaysim/internal/pathway"
)

// mthfrModifier mirrors spec §8.4 scenario 2: rs1801133=TT, orientation
// minus, risk allele T on the coding strand, homozygous effect 0.30.
func mthfrModifier() pathway.GeneticModifier {
	return pathway.GeneticModifier{
		RSID:               "rs1801133",
		Gene:               "MTHFR",
		RiskAllele:         "T",
		Orientation:        pathway.Minus,
		HomozygousEffect:   0.30,
		HeterozygousEffect: 0.65,
	}
}

func TestCountRiskAlleleHonorsOrientation(t *testing.T) {
	m := mthfrModifier()
	// "TT" on the coding (minus) strand complements to "AA" on the plus
	// strand internally; the risk allele "T" is declared on the coding
	// strand, so counting happens against the *oriented* genotype, which
	// for Minus orientation is the complement of the raw plus-strand read.
	count := CountRiskAllele("AA", m.RiskAllele, m.Orientation)
	if count != 2 {
		t.Fatalf("expected homozygous risk allele count of 2, got %d", count)
	}
}

func TestMultiplierMissingRsidIsNeutral(t *testing.T) {
	m := mthfrModifier()
	if got := Multiplier(m, "", false); got != 1.0 {
		t.Fatalf("expected neutral multiplier 1.0, got %v", got)
	}
}

func TestApplyGeneticsComposesMultiplicatively(t *testing.T) {
	modifierA := pathway.GeneticModifier{RSID: "rsA", RiskAllele: "T", Orientation: pathway.Plus, HomozygousEffect: 0.5, HeterozygousEffect: 0.75}
	modifierB := pathway.GeneticModifier{RSID: "rsB", RiskAllele: "G", Orientation: pathway.Plus, HomozygousEffect: 0.4, HeterozygousEffect: 0.7}

	enzyme := pathway.Enzyme{ID: "e1", Vmax: 1.0, Km: 0.1, GeneticModifiers: []pathway.GeneticModifier{modifierA, modifierB}}
	p, err := pathway.Build("p", "p", "", nil, []pathway.Enzyme{enzyme}, nil)
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}

	profile := Profile{"rsA": "TT", "rsB": "GG"}
	out := ApplyGenetics(p, profile)

	e, _ := out.EnzymeByID("e1")
	expected := 1.0 * 0.5 * 0.4
	if e.Vmax != expected {
		t.Fatalf("expected Vmax=%v, got %v", expected, e.Vmax)
	}
}

func TestApplyGeneticsEmptyProfileIsIdentity(t *testing.T) {
	enzyme := pathway.Enzyme{ID: "e1", Vmax: 2.5, Km: 0.1, GeneticModifiers: []pathway.GeneticModifier{mthfrModifier()}}
	p, _ := pathway.Build("p", "p", "", nil, []pathway.Enzyme{enzyme}, nil)

	out := ApplyGenetics(p, Profile{})
	e, _ := out.EnzymeByID("e1")
	if e.Vmax != 2.5 {
		t.Fatalf("expected identity transform, got Vmax=%v", e.Vmax)
	}
}
