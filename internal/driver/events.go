package driver

import "github.com/GoCodeAlone/pathwaysim/internal/schedule"

// eventState tracks one schedule event's next absolute-minute occurrence.
// Absolute minutes never wrap (they count continuously from the driver's
// start), so a day-boundary crossing is just the threshold being less than
// the elapsed total — no modular arithmetic is needed at trigger time,
// only when computing the first occurrence.
type eventState struct {
	event       schedule.Event
	nextTrigger float64
}

func newEventStates(sched schedule.Schedule, startMinuteOfDay float64) []*eventState {
	states := make([]*eventState, 0, len(sched.Events))
	for _, e := range sched.Events {
		first := float64(e.TimeMinute) - startMinuteOfDay
		for first < 0 {
			first += 1440
		}
		states = append(states, &eventState{event: e, nextTrigger: first})
	}
	return states
}

// pollEvents fires every event whose nextTrigger has been reached since the
// last poll, in case a single tick spans more than one occurrence (a long
// batch step, or a live-mode tick after the host was suspended). Each fired
// event is rescheduled 1440 minutes later for its next day.
func (d *Driver) pollEvents() {
	for _, es := range d.events {
		for d.absoluteMinutesElapsed >= es.nextTrigger {
			d.fireEvent(es.event)
			es.nextTrigger += 1440
		}
	}
}

func (d *Driver) fireEvent(e schedule.Event) {
	switch e.Type {
	case schedule.Meal:
		if e.Meal != nil {
			d.activeMeals = append(d.activeMeals, newActiveMeal(d.absoluteMinutesElapsed, e.Meal.GlucoseLoadG, e.Meal.ProteinLoadG, e.Meal.FatLoadG))
			d.add(idInsulin, mealInsulinOnMealCross)
		}
	case schedule.Exercise:
		if e.Exercise != nil {
			d.activeExercises = append(d.activeExercises, newActiveExercise(d.absoluteMinutesElapsed, *e.Exercise))
		}
	case schedule.Supplement:
		d.applyScheduledSupplement(e)
	case schedule.Stressor:
		d.applyStressor(e)
	}
}

// applyScheduledSupplement lowers cortisol slightly, the way an ad hoc
// relaxant dose would; a full dose-response model belongs to
// internal/personalize, which the driver uses for the standing personalized
// pathway this schedule runs against, not for one-off schedule events.
func (d *Driver) applyScheduledSupplement(e schedule.Event) {
	d.add(idCortisol, -0.02)
}

// applyStressor raises cortisol and ROS, modeling an acute
// psychological or physiological stress event.
func (d *Driver) applyStressor(e schedule.Event) {
	d.add(idCortisol, 0.3)
	d.add(idROS, 0.01)
}

// processMeals advances every active meal's absorption by deltaMinutes and
// drops any meal whose window has closed. glucoseG (the grams of glucose
// absorbed this tick) is the spec's "glucoseRate": it drives both the
// blood-glucose bump and the per-tick insulin bump on top of baseline.
func (d *Driver) processMeals(deltaMinutes float64) {
	live := d.activeMeals[:0]
	for _, m := range d.activeMeals {
		glucoseG, proteinG, fatG := m.absorb(deltaMinutes)
		d.add(idGlucoseBlood, glucoseG*mealGlucoseMMPerGram)
		d.add(idInsulin, glucoseG*mealInsulinPerGlucoseG)
		d.add(idFattyAcidsBlood, fatG*mealFatMMPerGram)
		d.aminoPoolG += proteinG * aminoGramsToPoolG
		d.add(idMethionine, proteinG*mealMethionineMMPerGram)
		if m.expired(d.absoluteMinutesElapsed) {
			d.lastMealEndAbsoluteMinute = m.startAbsoluteMinute + m.durationMinutes
		} else {
			live = append(live, m)
		}
	}
	d.activeMeals = live
}

// processExercise applies the spec §4.4.3 per-tick exercise effects for
// every currently active window — ATP demand (by intensity), AMP and AMPK
// rise, and blood-glucose consumption — then drops windows that have
// closed.
func (d *Driver) processExercise(deltaMinutes float64) {
	live := d.activeExercises[:0]
	for _, ex := range d.activeExercises {
		if ex.active(d.absoluteMinutesElapsed) {
			d.add(idATP, -exerciseATPPerMinute(ex.intensity)*deltaMinutes)
			d.add(idAMP, 0.02*deltaMinutes)
			d.add(idGlucoseBlood, -0.03*deltaMinutes)
			d.add(idAMPK, 0.01*deltaMinutes)
		}
		if ex.startAbsoluteMinute+ex.durationMinutes > d.absoluteMinutesElapsed {
			live = append(live, ex)
		}
	}
	d.activeExercises = live
}

// fastedMinutes returns how long it has been since the last meal's
// absorption window closed, used by the fasted-state enzyme-activity
// adjustment (spec §4.4.3).
func (d *Driver) fastedMinutes() float64 {
	if len(d.activeMeals) > 0 {
		return 0
	}
	if d.lastMealEndAbsoluteMinute < 0 {
		return d.absoluteMinutesElapsed
	}
	return d.absoluteMinutesElapsed - d.lastMealEndAbsoluteMinute
}
