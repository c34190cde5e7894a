package driver

import "github.com/GoCodeAlone/pathwaysim/internal/schedule"

// activeMeal tracks a Meal event's absorption window (spec §4.4.3: meals
// deliver glucose/amino-acid/fatty-acid load over a bounded window rather
// than instantaneously). mealAbsorptionPerMin is the fraction of the remaining
// load absorbed per simulated minute; the window is fixed at 90 minutes
// regardless of load size, matching the fixed-duration event windows used
// for exercise below rather than scaling duration with load.
type activeMeal struct {
	startAbsoluteMinute float64
	durationMinutes     float64
	remainingGlucoseG   float64
	remainingProteinG   float64
	remainingFatG       float64
}

const (
	mealDurationMinutes  = 90.0
	mealAbsorptionPerMin = 1.0 / mealDurationMinutes
)

func newActiveMeal(startAbsoluteMinute, glucoseG, proteinG, fatG float64) activeMeal {
	return activeMeal{
		startAbsoluteMinute: startAbsoluteMinute,
		durationMinutes:     mealDurationMinutes,
		remainingGlucoseG:   glucoseG,
		remainingProteinG:   proteinG,
		remainingFatG:       fatG,
	}
}

func (m activeMeal) expired(nowAbsoluteMinute float64) bool {
	return nowAbsoluteMinute >= m.startAbsoluteMinute+m.durationMinutes
}

// absorb applies deltaMinutes of absorption, returning the grams of each
// macronutrient that entered circulation this tick and mutating the
// meal's remaining load.
func (m *activeMeal) absorb(deltaMinutes float64) (glucoseG, proteinG, fatG float64) {
	frac := mealAbsorptionPerMin * deltaMinutes
	if frac > 1 {
		frac = 1
	}
	glucoseG = m.remainingGlucoseG * frac
	proteinG = m.remainingProteinG * frac
	fatG = m.remainingFatG * frac
	m.remainingGlucoseG -= glucoseG
	m.remainingProteinG -= proteinG
	m.remainingFatG -= fatG
	return
}

// Per-gram absorption effects (spec §4.4.3): glucose and fat convert
// straight into blood-concentration bumps at the spec's literal rates;
// protein feeds the amino-acid pool reservoir in grams plus a small
// methionine bump (the spec names the effect but not a magnitude, so
// mealMethionineMMPerGram is chosen small relative to the glucose rate
// rather than taken from the text).
const (
	mealGlucoseMMPerGram    = 0.05 // add to blood glucose at 0.05 mM/g absorbed
	mealFatMMPerGram        = 0.02 // fat -> fatty_acids_blood at 0.02 mM/g absorbed
	mealInsulinPerGlucoseG  = 0.15 // insulin += glucoseRate * 0.15 on top of baseline, per absorption tick
	mealInsulinOnMealCross  = 8.0  // meal crossing immediately raises insulin +8 units above baseline
	mealMethionineMMPerGram = 0.01 // small methionine bump per gram of protein absorbed
	aminoGramsToPoolG       = 1.0  // amino acids feed the pool directly, in grams
)

// activeExercise tracks an Exercise event's effect window.
type activeExercise struct {
	startAbsoluteMinute float64
	durationMinutes     float64
	intensity           string
}

func newActiveExercise(startAbsoluteMinute float64, payload schedule.ExercisePayload) activeExercise {
	duration := float64(payload.DurationMinutes)
	if duration <= 0 {
		duration = 30
	}
	return activeExercise{
		startAbsoluteMinute: startAbsoluteMinute,
		durationMinutes:     duration,
		intensity:           payload.Intensity,
	}
}

func (e activeExercise) active(nowAbsoluteMinute float64) bool {
	return nowAbsoluteMinute >= e.startAbsoluteMinute && nowAbsoluteMinute < e.startAbsoluteMinute+e.durationMinutes
}

// exerciseATPPerMinute maps an exercise intensity label to the spec
// §4.4.3 per-tick ATP demand: -0.08 mM/tick for Low/Medium, -0.15 mM/tick
// for High. The spec gives only these two values ("by intensity"), not a
// continuous scale, so Low and Medium share the lower rate.
func exerciseATPPerMinute(intensity string) float64 {
	if intensity == "High" {
		return 0.15
	}
	return 0.08
}
