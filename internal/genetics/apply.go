package genetics

import (
	"strings"

	"github.com/GoCodeAlone/pathwaysim/internal/pathway"
)

// complement returns the Watson-Crick complement of a single base letter
// (A<->T, C<->G, case-insensitive); any other rune passes through
// unchanged.
func complement(b rune) rune {
	switch b {
	case 'A':
		return 'T'
	case 'T':
		return 'A'
	case 'C':
		return 'G'
	case 'G':
		return 'C'
	case 'a':
		return 't'
	case 't':
		return 'a'
	case 'c':
		return 'g'
	case 'g':
		return 'c'
	default:
		return b
	}
}

// orientedGenotype returns genotype as reported on the modifier's declared
// strand: complemented base-by-base when orientation is Minus, unchanged
// when Plus.
func orientedGenotype(genotype string, o pathway.Orientation) string {
	if o != pathway.Minus {
		return genotype
	}
	var b strings.Builder
	for _, r := range genotype {
		b.WriteRune(complement(r))
	}
	return b.String()
}

// CountRiskAllele counts occurrences (case-insensitive) of riskAllele in
// genotype, after flipping genotype onto the modifier's declared strand.
func CountRiskAllele(genotype, riskAllele string, o pathway.Orientation) int {
	oriented := strings.ToUpper(orientedGenotype(genotype, o))
	allele := strings.ToUpper(riskAllele)
	count := 0
	for _, r := range oriented {
		if string(r) == allele {
			count++
		}
	}
	return count
}

// Multiplier returns the Vmax scaling factor a single GeneticModifier
// contributes, given the carrier's genotype at that rsId. A missing
// genotype (present=false, i.e. the rsId wasn't in the GeneticProfile)
// contributes a neutral factor of 1.0 — a documented non-fatal no-op.
func Multiplier(m pathway.GeneticModifier, genotype string, present bool) float64 {
	if !present || len(genotype) != 2 {
		return 1.0
	}
	switch CountRiskAllele(genotype, m.RiskAllele, m.Orientation) {
	case 2:
		return m.HomozygousEffect
	case 1:
		return m.HeterozygousEffect
	default:
		return 1.0
	}
}

// ApplyGenetics returns a new Pathway where every enzyme's Vmax has been
// scaled by the product of its genetic modifiers' multipliers (spec
// invariant P6: composing N modifiers equals the product of their
// individual multipliers). The original Pathway is untouched — this is a
// pure structural-update transform, never a mutation.
func ApplyGenetics(p pathway.Pathway, profile Profile) pathway.Pathway {
	enzymes := make([]pathway.Enzyme, len(p.Enzymes))
	for i, e := range p.Enzymes {
		factor := 1.0
		for _, m := range e.GeneticModifiers {
			genotype, present := profile.Genotype(m.RSID)
			factor *= Multiplier(m, genotype, present)
		}
		enzymes[i] = e.WithVmax(e.Vmax * factor)
	}

	rebuilt, err := p.Rebuild(p.Metabolites, enzymes, p.Reactions)
	if err != nil {
		// Rebuild only re-validates id references, which ApplyGenetics
		// never changes; a failure here would mean p itself was already
		// invalid, which Build would have caught. Fall back to the
		// original pathway rather than panic, consistent with this
		// package's non-fatal recovery posture.
		return p
	}
	return rebuilt
}
