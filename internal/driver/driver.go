// Package driver implements the simulation driver (spec §4.4): the piece
// that owns a personalized Pathway's live state vector, advances it with
// the RK4 integrator, overlays circadian rhythms and the day's schedule,
// and applies the homeostatic clamp after every substep. It can run in
// Live mode (paced by a wall clock, for the terminal viewer) or Manual/
// batch mode (paced by an explicit number of simulated minutes per tick,
// for deterministic test runs and CSV export).
package driver

import (
	"time"

	"github.com/GoCodeAlone/pathwaysim/internal/integrator"
	"github.com/GoCodeAlone/pathwaysim/internal/kinetics"
	"github.com/GoCodeAlone/pathwaysim/internal/pathway"
	"github.com/GoCodeAlone/pathwaysim/internal/schedule"
	"github.com/GoCodeAlone/pathwaysim/internal/snapshot"
)

// Mode selects how the driver paces simulated time against the wall clock.
type Mode int

const (
	// Manual advances by an explicit deltaMinutes each call to TickManual;
	// used by batch runs and tests, independent of wall-clock jitter.
	Manual Mode = iota
	// Live advances according to elapsed real time scaled by
	// Config.SimMinutesPerRealSecond; used by the terminal viewer.
	Live
)

// Config holds the driver's timing parameters.
type Config struct {
	Mode Mode

	// SimMinutesPerRealSecond scales wall-clock time to simulated minutes
	// in Live mode. Ignored in Manual mode.
	SimMinutesPerRealSecond float64

	// SubstepsPerTick and SubstepDt (seconds) govern the RK4 integration
	// done within a single tick, independent of how many simulated
	// minutes that tick covers: the network always integrates at the
	// same fine substep, while schedule/circadian effects scale with the
	// tick's actual deltaMinutes. SubstepDt defaults to 0.01s and
	// SubstepsPerTick to 10 (a tenth of a simulated second of network
	// time per tick) if left zero.
	SubstepsPerTick int
	SubstepDt       float64

	// OutputInterval is the minimum sim-second gap between recorded
	// snapshots in RunBatch.
	OutputInterval float64

	// StartMinuteOfDay is the minute-of-day (0..1439) the run starts at.
	StartMinuteOfDay float64
}

func (c Config) withDefaults() Config {
	if c.SubstepsPerTick <= 0 {
		c.SubstepsPerTick = 10
	}
	if c.SubstepDt <= 0 {
		c.SubstepDt = 0.01
	}
	if c.OutputInterval <= 0 {
		c.OutputInterval = c.SubstepDt * float64(c.SubstepsPerTick)
	}
	if c.SimMinutesPerRealSecond <= 0 {
		c.SimMinutesPerRealSecond = 1.0
	}
	return c
}

// Driver runs a personalized pathway forward in simulated time.
type Driver struct {
	pw     pathway.Pathway
	sched  schedule.Schedule
	clock  Clock
	cfg    Config
	events []*eventState
	rules  []ClampRule

	state []float64

	absoluteMinutesElapsed    float64
	simSeconds                float64
	lastMealEndAbsoluteMinute float64
	wakeMinuteOfDay           float64

	activeMeals     []activeMeal
	activeExercises []activeExercise

	glycogenG       float64
	adiposeG        float64
	aminoPoolG      float64
	insulinBaseline float64

	lastWallTime time.Time

	enzymeMultiplier map[string]float64

	lastOutputSeconds float64
}

// NewDriver builds a Driver over a personalized, already-built pathway and
// a parsed schedule. Reservoir pools start at modest, roughly mid-range
// defaults; a caller that wants different starting reserves can adjust
// them via SetReservoirs before the first tick.
func NewDriver(pw pathway.Pathway, sched schedule.Schedule, cfg Config, clock Clock) *Driver {
	cfg = cfg.withDefaults()
	if clock == nil {
		clock = SystemClock{}
	}
	d := &Driver{
		pw:                        pw,
		sched:                     sched,
		clock:                     clock,
		cfg:                       cfg,
		rules:                     DefaultClampRules(),
		state:                     pw.InitialState(),
		lastMealEndAbsoluteMinute: -1,
		wakeMinuteOfDay:           float64(sched.WakeMinute),
		glycogenG:                 60,
		adiposeG:                  3000,
		aminoPoolG:                20,
		enzymeMultiplier:          make(map[string]float64),
	}
	d.events = newEventStates(sched, cfg.StartMinuteOfDay)
	d.insulinBaseline = d.get(idInsulin)
	if d.insulinBaseline <= 0 {
		d.insulinBaseline = 0.3
	}
	return d
}

// SetReservoirs overrides the starting glycogen/adipose/amino-pool
// reserves (grams).
func (d *Driver) SetReservoirs(glycogenG, adiposeG, aminoPoolG float64) {
	d.glycogenG = glycogenG
	d.adiposeG = adiposeG
	d.aminoPoolG = aminoPoolG
}

// DisableRule turns off a named clamp rule; used by tests that need to
// isolate the network dynamics from the homeostatic corrections.
func (d *Driver) DisableRule(name string) {
	for i := range d.rules {
		if d.rules[i].Name == name {
			d.rules[i].Enabled = false
		}
	}
}

func (d *Driver) get(id string) float64 {
	i, ok := d.pw.Index(id)
	if !ok {
		return 0
	}
	return d.state[i]
}

func (d *Driver) set(id string, v float64) {
	i, ok := d.pw.Index(id)
	if !ok {
		return
	}
	d.state[i] = v
}

func (d *Driver) add(id string, delta float64) {
	i, ok := d.pw.Index(id)
	if !ok {
		return
	}
	d.state[i] += delta
}

// simMinuteOfDay returns the current wall-clock-of-day for the circadian
// overlay, wrapping absoluteMinutesElapsed against the configured start.
func (d *Driver) simMinuteOfDay() float64 {
	return wrapMinute(d.cfg.StartMinuteOfDay + d.absoluteMinutesElapsed)
}

func wrapMinute(m float64) float64 {
	for m < 0 {
		m += 1440
	}
	for m >= 1440 {
		m -= 1440
	}
	return m
}

// updateCircadian pushes the hour-of-day-dependent overlay values directly
// into the state vector (cortisol, melatonin, adenosine behave as outputs
// of the overlay rather than reaction products) and refreshes the
// enzyme-activity multiplier map the derivative closure reads.
func (d *Driver) updateCircadian() {
	hour := d.simMinuteOfDay() / 60.0
	d.set(idCortisol, baselineCortisol*cortisolMultiplier(hour))
	d.set(idMelatonin, baselineMelatonin*melatoninMultiplier(hour))

	hoursSinceWake := (d.simMinuteOfDay() - d.wakeMinuteOfDay) / 60.0
	if hoursSinceWake < 0 {
		hoursSinceWake += 24
	}
	d.set(idAdenosine, adenosineLevel(hoursSinceWake))

	d.enzymeMultiplier[enzymeNampt] = namptMultiplier(hour)
}

const (
	baselineCortisol  = 0.3
	baselineMelatonin = 0.2
)

// buildDerivative closes over the driver's current enzyme-activity
// multipliers and returns an integrator.Derivative for the RK4 substeps of
// a single tick. It is rebuilt once per tick (not once per substep) since
// the multipliers only change with the circadian hour, which moves far
// slower than the substep.
func (d *Driver) buildDerivative() integrator.Derivative {
	p := d.pw
	multiplier := make(map[string]float64, len(d.enzymeMultiplier))
	for k, v := range d.enzymeMultiplier {
		multiplier[k] = v
	}

	return func(y []float64, t float64) []float64 {
		deriv := make([]float64, len(y))
		for _, r := range p.Reactions {
			enzyme, ok := p.EnzymeByID(r.EnzymeID)
			if !ok {
				continue
			}
			vmax := enzyme.Vmax
			if m, ok := multiplier[enzyme.ID]; ok {
				vmax *= m
			}

			substrate := 0.0
			hasSubstrate := len(r.Substrates) > 0
			if hasSubstrate {
				if idx, ok := p.Index(r.Substrates[0].MetaboliteID); ok && idx < len(y) {
					substrate = y[idx]
				}
			}

			inhibitor := sumConcentrations(p, y, r.InhibitorIDs)
			activator := sumConcentrations(p, y, r.ActivatorIDs)

			rate := kinetics.Evaluate(r.Kinetics, kinetics.Params{
				Vmax:         vmax,
				Km:           enzyme.Km,
				Substrate:    substrate,
				HasSubstrate: hasSubstrate,
				Inhibitor:    inhibitor,
				Ki:           r.Ki,
				Hill:         r.HillCoefficient,
			})
			if len(r.ActivatorIDs) > 0 {
				rate = kinetics.ActivationMultiplier(rate, activator, r.Ka)
			}
			if rate == 0 {
				continue
			}

			for _, s := range r.Substrates {
				if idx, ok := p.Index(s.MetaboliteID); ok && idx < len(deriv) {
					deriv[idx] -= float64(s.Coefficient) * rate
				}
			}
			for _, pr := range r.Products {
				if idx, ok := p.Index(pr.MetaboliteID); ok && idx < len(deriv) {
					deriv[idx] += float64(pr.Coefficient) * rate
				}
			}
		}
		return deriv
	}
}

func sumConcentrations(p pathway.Pathway, y []float64, ids []string) float64 {
	total := 0.0
	for _, id := range ids {
		if idx, ok := p.Index(id); ok && idx < len(y) {
			total += y[idx]
		}
	}
	return total
}

// tickCore runs one driver tick covering deltaMinutes of simulated time:
// refresh the circadian overlay, apply the fasted/sleep tonic adjustments,
// poll schedule events, advance active meal/exercise windows, integrate
// the network for the tick's substeps, and apply the homeostatic clamp
// after each substep. Events run after the circadian assignment so their
// cortisol adjustments are not overwritten within the same tick.
func (d *Driver) tickCore(deltaMinutes float64) {
	if deltaMinutes <= 0 {
		return
	}
	d.absoluteMinutesElapsed += deltaMinutes
	d.updateCircadian()
	d.applyTonicAdjustments(deltaMinutes)
	d.pollEvents()
	d.processMeals(deltaMinutes)
	d.processExercise(deltaMinutes)

	f := d.buildDerivative()
	dt := d.cfg.SubstepDt
	for i := 0; i < d.cfg.SubstepsPerTick; i++ {
		d.state = integrator.Step(d.state, d.simSeconds, dt, f)
		d.simSeconds += dt
		d.applyClamp(dt)
	}
}

// TickManual advances the driver by exactly deltaMinutes of simulated
// time, independent of wall-clock time. Used by batch runs and tests.
func (d *Driver) TickManual(deltaMinutes float64) {
	d.tickCore(deltaMinutes)
}

// TickSeconds advances the driver according to elapsedRealSeconds of wall
// time scaled by Config.SimMinutesPerRealSecond (Live mode).
func (d *Driver) TickSeconds(elapsedRealSeconds float64) {
	d.tickCore(elapsedRealSeconds * d.cfg.SimMinutesPerRealSecond / 60.0)
}

// TickLive advances the driver using the injected Clock's current time,
// comparing against the last recorded wall time (or initializing it on
// the first call without advancing simulated time).
func (d *Driver) TickLive() {
	now := d.clock.Now()
	if d.lastWallTime.IsZero() {
		d.lastWallTime = now
		return
	}
	elapsed := now.Sub(d.lastWallTime).Seconds()
	d.lastWallTime = now
	if elapsed <= 0 {
		return
	}
	d.TickSeconds(elapsed)
}

// Snapshot returns the current state as a snapshot at the driver's
// elapsed sim-seconds.
func (d *Driver) Snapshot() snapshot.Snapshot {
	return snapshot.FromState(d.pw, d.simSeconds, d.state, nil)
}

// RunBatch ticks the driver forward in Manual mode by tickMinutes per step
// until totalMinutes have elapsed, recording a snapshot whenever at least
// Config.OutputInterval sim-seconds have passed since the last one (plus
// always a snapshot at t=0 and at the final tick). Deterministic: the same
// pathway, schedule, and Config always produce the same Trajectory (P4).
func (d *Driver) RunBatch(totalMinutes, tickMinutes float64) snapshot.Trajectory {
	if tickMinutes <= 0 {
		tickMinutes = 1
	}
	traj := snapshot.Trajectory{d.Snapshot()}
	d.lastOutputSeconds = d.simSeconds

	elapsed := 0.0
	for elapsed < totalMinutes {
		step := tickMinutes
		if elapsed+step > totalMinutes {
			step = totalMinutes - elapsed
		}
		d.tickCore(step)
		elapsed += step

		if d.simSeconds-d.lastOutputSeconds >= d.cfg.OutputInterval || elapsed >= totalMinutes {
			traj = traj.Append(d.Snapshot())
			d.lastOutputSeconds = d.simSeconds
		}
	}
	return traj
}
