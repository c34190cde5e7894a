package driver

// Circadian overlay (spec §4.4.2): a handful of small, pure
// hour-of-day-dependent curves. Grounded on the dawn-phenomenon-style
// circadian cortisol adjustment in the oref1 prediction engine
// (other_examples/…oref_engine.go.go), itself grounded on published
// cortisol-awakening-response literature, reduced here to the spec's
// piecewise breakpoints.

// cortisolMultiplier implements the piecewise curve: morning peak (6-8h,
// ~1.3-1.5), morning decline (8-14h, 1.4->0.6), afternoon nadir (14-17h,
// ~0.55-0.7), evening bump (17-20h, ~0.7-0.85), night low (20-2h, 0.6),
// deep night (2-6h, 0.4).
func cortisolMultiplier(h float64) float64 {
	h = wrapHour(h)
	switch {
	case h >= 6 && h < 8:
		return lerp(h, 6, 8, 1.3, 1.5)
	case h >= 8 && h < 14:
		return lerp(h, 8, 14, 1.4, 0.6)
	case h >= 14 && h < 17:
		return lerp(h, 14, 17, 0.7, 0.55)
	case h >= 17 && h < 20:
		return lerp(h, 17, 20, 0.7, 0.85)
	case h >= 20 || h < 2:
		return 0.6
	default: // 2..6
		return 0.4
	}
}

// melatoninMultiplier is 2.0 outside 7..22h (night), 0.1 during the day.
func melatoninMultiplier(h float64) float64 {
	h = wrapHour(h)
	if h < 7 || h > 22 {
		return 2.0
	}
	return 0.1
}

// namptMultiplier is 1.3 at night (h<6 or h>20), 0.8 otherwise.
func namptMultiplier(h float64) float64 {
	h = wrapHour(h)
	if h < 6 || h > 20 {
		return 1.3
	}
	return 0.8
}

// adenosineLevel models sleep pressure building since wake.
func adenosineLevel(hoursSinceWake float64) float64 {
	if hoursSinceWake < 0 {
		hoursSinceWake = 0
	}
	level := 1 + hoursSinceWake*0.08
	if level > 2.0 {
		return 2.0
	}
	return level
}

func wrapHour(h float64) float64 {
	for h < 0 {
		h += 24
	}
	for h >= 24 {
		h -= 24
	}
	return h
}

func lerp(x, x0, x1, y0, y1 float64) float64 {
	if x1 == x0 {
		return y0
	}
	t := (x - x0) / (x1 - x0)
	return y0 + t*(y1-y0)
}
