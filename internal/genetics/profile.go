package genetics

import "strings"

// Profile is a GeneticProfile: rsId -> two-base genotype string. Only
// genotypes that sanitize down to exactly two letters are retained;
// everything else (missing SNPs, malformed genotypes) simply isn't in the
// map, and a missing rsId is a documented no-op everywhere this is
// consulted.
type Profile map[string]string

// NewProfile builds a Profile from parsed raw SNPs, sanitizing each
// genotype (uppercasing, stripping anything that isn't a letter) and
// keeping only genotypes that are exactly two bases after filtering.
func NewProfile(raw map[string]RawSNP) Profile {
	profile := make(Profile, len(raw))
	for rsid, snp := range raw {
		g := sanitizeGenotype(snp.Genotype)
		if len(g) == 2 {
			profile[rsid] = g
		}
	}
	return profile
}

func sanitizeGenotype(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(raw) {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Genotype returns the genotype at rsid and whether it is present.
func (p Profile) Genotype(rsid string) (string, bool) {
	g, ok := p[rsid]
	return g, ok
}
