package driver

import (
	"testing"
	"time"

	"github.com/GoCodeAlone/pathwaysim/internal/genetics"
	"github.com/GoCodeAlone/pathwaysim/internal/kinetics"
	"github.com/GoCodeAlone/pathwaysim/internal/pathway"
	"github.com/GoCodeAlone/pathwaysim/internal/schedule"
)

var fixedTestTime = time.Date(2026, 1, 1, 7, 0, 0, 0, time.UTC)

// methylationPathway builds a minimal one-carbon methylation cycle:
// folate -> (mthfr) -> 5-MTHF -> (mtr) -> methionine -> (mat) -> sam, all
// three steps MichaelisMenten; homocysteine (hcy) is declared but takes
// part in no reaction. It mirrors the hcy/methyl_thf/sam triad used to
// ground the methylation scenarios against spec §4.2/§8.
func methylationPathway(t *testing.T) pathway.Pathway {
	t.Helper()
	metabolites := []pathway.Metabolite{
		{ID: "folate", InitialConcentration: 1.0},
		{ID: "methyl_thf", InitialConcentration: 0.0},
		{ID: "hcy", InitialConcentration: 0.5},
		{ID: "methionine", InitialConcentration: 0.3},
		{ID: "sam", InitialConcentration: 0.2},
	}
	enzymes := []pathway.Enzyme{
		{ID: "mthfr", Vmax: 1.0, Km: 0.5, GeneticModifiers: []pathway.GeneticModifier{{
			RSID: "rs1801133", Gene: "MTHFR", RiskAllele: "T", Orientation: pathway.Minus,
			HomozygousEffect: 0.30, HeterozygousEffect: 0.65,
		}}},
		{ID: "mtr", Vmax: 0.8, Km: 0.2},
		{ID: "mat", Vmax: 0.6, Km: 0.1},
	}
	reactions := []pathway.Reaction{
		{ID: "r_mthfr", EnzymeID: "mthfr", Kinetics: kinetics.MichaelisMenten,
			Substrates: []pathway.ReactionParticipant{{MetaboliteID: "folate", Coefficient: 1}},
			Products:   []pathway.ReactionParticipant{{MetaboliteID: "methyl_thf", Coefficient: 1}}},
		{ID: "r_mtr", EnzymeID: "mtr", Kinetics: kinetics.MichaelisMenten,
			Substrates: []pathway.ReactionParticipant{{MetaboliteID: "methyl_thf", Coefficient: 1}},
			Products:   []pathway.ReactionParticipant{{MetaboliteID: "methionine", Coefficient: 1}}},
		{ID: "r_mat", EnzymeID: "mat", Kinetics: kinetics.MichaelisMenten,
			Substrates: []pathway.ReactionParticipant{{MetaboliteID: "methionine", Coefficient: 1}},
			Products:   []pathway.ReactionParticipant{{MetaboliteID: "sam", Coefficient: 1}}},
	}
	p, err := pathway.Build("methylation", "Methylation cycle", "", metabolites, enzymes, reactions)
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}
	return p
}

func runBatch(t *testing.T, p pathway.Pathway, minutes float64) float64 {
	t.Helper()
	d := NewDriver(p, schedule.Schedule{}, Config{StartMinuteOfDay: 420}, NewFixedClock(fixedTestTime))
	d.RunBatch(minutes, 1)
	return d.get("methyl_thf")
}

func TestEndToEndMethylationBaselineProducesMethylTHF(t *testing.T) {
	p := methylationPathway(t)
	got := runBatch(t, p, 10)
	if got <= 0 {
		t.Fatalf("expected baseline methylation to accumulate 5-MTHF, got %v", got)
	}
}

func TestEndToEndMTHFRTTReducesMethylTHF(t *testing.T) {
	base := methylationPathway(t)
	personalized := genetics.ApplyGenetics(base, genetics.Profile{"rs1801133": "AA"}) // AA on plus strand = TT on the coding minus strand

	baseline := runBatch(t, base, 10)
	reduced := runBatch(t, personalized, 10)
	if reduced >= baseline {
		t.Fatalf("expected MTHFR TT genotype to reduce 5-MTHF accumulation: baseline=%v reduced=%v", baseline, reduced)
	}
}

func TestEndToEndMethylfolateSupplementRescuesReducedMTHFR(t *testing.T) {
	base := methylationPathway(t)
	reducedGenotype := genetics.ApplyGenetics(base, genetics.Profile{"rs1801133": "AA"})

	rescued, err := reducedGenotype.Rebuild(
		withInitialConcentration(reducedGenotype.Metabolites, "methyl_thf", 0.5),
		reducedGenotype.Enzymes,
		reducedGenotype.Reactions,
	)
	if err != nil {
		t.Fatalf("unexpected rebuild error: %v", err)
	}

	reduced := runBatch(t, reducedGenotype, 10)
	rescuedLevel := runBatch(t, rescued, 10)
	if rescuedLevel <= reduced {
		t.Fatalf("expected bypass supplementation to raise 5-MTHF above the reduced-genotype baseline: reduced=%v rescued=%v", reduced, rescuedLevel)
	}
}

func withInitialConcentration(metabolites []pathway.Metabolite, id string, v float64) []pathway.Metabolite {
	out := make([]pathway.Metabolite, len(metabolites))
	for i, m := range metabolites {
		if m.ID == id {
			m = m.WithInitialConcentration(v)
		}
		out[i] = m
	}
	return out
}

// krebsPathway is a minimal NADH-producing segment: citrate -> (complex
// driven by MichaelisMenten kinetics) -> succinate, consuming nad+ and
// producing nadh, grounded on the Krebs-cycle NADH dynamics the driver's
// default clamp rules (nad_floor) are built to guard.
func krebsPathway(t *testing.T) pathway.Pathway {
	t.Helper()
	metabolites := []pathway.Metabolite{
		{ID: "citrate", InitialConcentration: 1.0},
		{ID: "succinate", InitialConcentration: 0.0},
		{ID: idNADPlus, InitialConcentration: 1.0},
		{ID: idNADH, InitialConcentration: 0.05},
	}
	enzymes := []pathway.Enzyme{
		{ID: "idh_akgdh", Vmax: 1.0, Km: 0.3},
	}
	reactions := []pathway.Reaction{
		{ID: "r_krebs", EnzymeID: "idh_akgdh", Kinetics: kinetics.MichaelisMenten,
			Substrates: []pathway.ReactionParticipant{{MetaboliteID: "citrate", Coefficient: 1}, {MetaboliteID: idNADPlus, Coefficient: 1}},
			Products:   []pathway.ReactionParticipant{{MetaboliteID: "succinate", Coefficient: 1}, {MetaboliteID: idNADH, Coefficient: 1}}},
	}
	p, err := pathway.Build("krebs", "Krebs segment", "", metabolites, enzymes, reactions)
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}
	return p
}

func TestEndToEndKrebsNADHDynamics(t *testing.T) {
	p := krebsPathway(t)
	d := NewDriver(p, schedule.Schedule{}, Config{StartMinuteOfDay: 420}, NewFixedClock(fixedTestTime))
	traj := d.RunBatch(5, 1)

	last := traj[len(traj)-1]
	nadh, ok := last.Concentration(idNADH)
	if !ok {
		t.Fatalf("expected nadh in final snapshot")
	}
	if nadh <= 0.05 {
		t.Fatalf("expected nadh to accumulate from baseline 0.05, got %v", nadh)
	}

	nad, _ := last.Concentration(idNADPlus)
	if nad+nadh < 1.0-1e-6 {
		t.Fatalf("r_krebs converts nad+ to nadh one for one, so nad+nadh should stay at its starting 1.05, got sum %v", nad+nadh)
	}
}

func TestDriverDeterministicAcrossIdenticalRuns(t *testing.T) {
	sched := schedule.ParseJSON([]byte(`{"wakeTime":"07:00","sleepTime":"23:00","events":[{"time":"08:00","type":"Meal","description":"breakfast","payload":{"glucoseLoad":40,"proteinLoad":20,"fatLoad":10}}]}`))

	p1 := methylationPathway(t)
	d1 := NewDriver(p1, sched, Config{StartMinuteOfDay: 420}, NewFixedClock(fixedTestTime))
	traj1 := d1.RunBatch(60, 1)

	p2 := methylationPathway(t)
	d2 := NewDriver(p2, sched, Config{StartMinuteOfDay: 420}, NewFixedClock(fixedTestTime))
	traj2 := d2.RunBatch(60, 1)

	if len(traj1) != len(traj2) {
		t.Fatalf("expected identical trajectory lengths, got %d vs %d", len(traj1), len(traj2))
	}
	for i := range traj1 {
		for id, v := range traj1[i].Concentrations {
			if traj2[i].Concentrations[id] != v {
				t.Fatalf("snapshot %d metabolite %s diverged: %v vs %v", i, id, v, traj2[i].Concentrations[id])
			}
		}
	}
}
