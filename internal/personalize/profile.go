// Package personalize implements the pure (Pathway, UserProfile) -> Pathway
// transform that rewrites initial concentrations and enzyme Vmax according
// to demographics, sleep quality, and lab overrides (spec §4.2), plus the
// supplement-intervention transform (spec §6.6).
package personalize

import "github.com/GoCodeAlone/pathwaysim/internal/pathway"

// UserProfile bundles demographics, sleep, and lab overrides. Genetics is
// handled separately by internal/genetics.ApplyGenetics — ApplyProfile
// never looks at genotype.
type UserProfile struct {
	AgeYears     float64
	WeightKg     float64
	HeightCm     float64
	Sex          string
	SleepHours   float64
	SleepQuality float64 // 0-100
	LabOverrides map[string]float64
}

// NeutralProfile is the identity profile used by spec L2: age 30, 8 hours
// of good-quality sleep, no lab overrides.
func NeutralProfile() UserProfile {
	return UserProfile{AgeYears: 30, SleepHours: 8, SleepQuality: 100}
}

func poorSleep(p UserProfile) bool {
	return p.SleepHours < 6 || p.SleepQuality < 70
}

func badSleep(p UserProfile) bool {
	return p.SleepHours < 6 || p.SleepQuality < 60
}

// ApplyProfile returns a new Pathway with initial concentrations and
// enzyme Vmax values rewritten per spec §4.2. Any named metabolite or
// enzyme the pathway doesn't define is simply skipped — personalization
// never fails.
func ApplyProfile(p pathway.Pathway, profile UserProfile) pathway.Pathway {
	metabolites := append([]pathway.Metabolite(nil), p.Metabolites...)
	enzymes := append([]pathway.Enzyme(nil), p.Enzymes...)

	nadDecline := 1 - maxFloat(0, (profile.AgeYears-30)*0.015)
	scaleMetabolite(metabolites, p, "nad+", func(c float64) float64 { return c * nadDecline })

	oxidativeMultiplier := 1 + maxFloat(0, (profile.AgeYears-40)*0.02)
	if poorSleep(profile) {
		oxidativeMultiplier *= 1.2
	}
	scaleMetabolite(metabolites, p, "ros", func(c float64) float64 { return c * oxidativeMultiplier })

	if badSleep(profile) {
		scaleMetabolite(metabolites, p, "cortisol", func(c float64) float64 { return c * 1.5 })
	}

	scaleEnzyme(enzymes, p, "cd38", func(v float64) float64 { return v * (1 + profile.AgeYears/60) })
	scaleEnzyme(enzymes, p, "etc_complex1", func(v float64) float64 {
		return v * maxFloat(0.5, 1-maxFloat(0, (profile.AgeYears-30)*0.01))
	})
	if poorSleep(profile) {
		scaleEnzyme(enzymes, p, "nampt", func(v float64) float64 { return v * 0.7 })
	}
	if profile.SleepQuality < 60 {
		scaleEnzyme(enzymes, p, "cps1", func(v float64) float64 { return v * 0.8 })
		scaleEnzyme(enzymes, p, "otc", func(v float64) float64 { return v * 0.8 })
	}

	for metaboliteID, value := range profile.LabOverrides {
		idx, ok := p.Index(metaboliteID)
		if !ok {
			continue
		}
		metabolites[idx] = metabolites[idx].WithInitialConcentration(value)
	}

	rebuilt, err := p.Rebuild(metabolites, enzymes, p.Reactions)
	if err != nil {
		return p
	}
	return rebuilt
}

func scaleMetabolite(metabolites []pathway.Metabolite, p pathway.Pathway, id string, f func(float64) float64) {
	idx, ok := p.Index(id)
	if !ok {
		return
	}
	metabolites[idx] = metabolites[idx].WithInitialConcentration(f(metabolites[idx].InitialConcentration))
}

func scaleEnzyme(enzymes []pathway.Enzyme, p pathway.Pathway, id string, f func(float64) float64) {
	idx, ok := enzymeIndexOf(p, id)
	if !ok {
		return
	}
	enzymes[idx] = enzymes[idx].WithVmax(f(enzymes[idx].Vmax))
}

func enzymeIndexOf(p pathway.Pathway, id string) (int, bool) {
	for i, e := range p.Enzymes {
		if e.ID == id {
			return i, true
		}
	}
	return 0, false
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
