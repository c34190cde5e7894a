package driver

// Tonic state adjustments (spec §4.4.3 "Fasted state" / "Sleep"): slow,
// always-on tonic corrections driven by where the sim clock sits relative
// to the schedule's wake/sleep window, as distinct from the one-shot
// effects schedule events fire (events.go) and the per-substep homeostatic
// clamp (clamp.go). Applied once per tick, scaled by the tick's
// deltaMinutes, the same way processExercise scales its per-minute rates.

// isAsleep reports whether the current sim-minute-of-day falls inside the
// schedule's sleep window (sleep time through wake time, wrapping past
// midnight when sleep is later in the day than wake).
func (d *Driver) isAsleep() bool {
	sleep := float64(d.sched.SleepMinute)
	wake := float64(d.sched.WakeMinute)
	now := d.simMinuteOfDay()
	if sleep == wake {
		return false
	}
	if sleep < wake {
		return now >= sleep && now < wake
	}
	return now >= sleep || now < wake
}

// applyTonicAdjustments runs the fasted-state and sleep-state tonic
// corrections for deltaMinutes of elapsed simulated time.
func (d *Driver) applyTonicAdjustments(deltaMinutes float64) {
	if d.isAsleep() {
		d.applySleepTonic(deltaMinutes)
		return
	}
	if d.fastedMinutes() > 180 {
		d.applyFastedTonic(deltaMinutes)
	}
}

func (d *Driver) applySleepTonic(deltaMinutes float64) {
	raiseUpTo(d, idATP, 0.01*deltaMinutes, 6.0)
	raiseUpTo(d, idGSH, 0.005*deltaMinutes, 6.0)
	raiseUpTo(d, idNADPlus, 0.002*deltaMinutes, 1.0)
	d.set(idMelatonin, 0.5)
}

func (d *Driver) applyFastedTonic(deltaMinutes float64) {
	d.add(idFattyAcidsBlood, 0.005*deltaMinutes)
	d.add(idAMPK, 0.002*deltaMinutes)

	mtor := d.get(idMTOR)
	mtor -= 0.002 * deltaMinutes
	if mtor < 0.1 {
		mtor = 0.1
	}
	d.set(idMTOR, mtor)
}

// raiseUpTo adds delta to the named metabolite, never pushing it past cap.
func raiseUpTo(d *Driver, id string, delta, cap float64) {
	v := d.get(id)
	if v >= cap {
		return
	}
	v += delta
	if v > cap {
		v = cap
	}
	d.set(id, v)
}
