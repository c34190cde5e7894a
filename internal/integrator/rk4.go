// Package integrator implements the fixed-step fourth-order Runge-Kutta
// solver that advances a metabolite state vector forward in time. It has
// no knowledge of pathways, kinetics, or personalization — it only knows
// how to combine a Derivative function into Step and Integrate, per spec
// §4.3. There is no adaptive step control and no stiffness detection;
// avoiding stiff parameter regimes is the caller's responsibility.
package integrator

import "math"

// Derivative computes dy/dt at state y and time t. Implementations must
// never panic; a NaN/Inf component should be replaced with 0 before
// returning (spec §4.5), and Step defensively sanitizes anyway.
type Derivative func(y []float64, t float64) []float64

// Sample is one recorded point of a trajectory.
type Sample struct {
	T float64
	Y []float64
}

func clampNonNegative(y []float64) []float64 {
	out := make([]float64, len(y))
	for i, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			v = 0
		}
		out[i] = v
	}
	return out
}

func sanitize(y []float64) []float64 {
	out := make([]float64, len(y))
	for i, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			v = 0
		}
		out[i] = v
	}
	return out
}

func addScaled(a, b []float64, scale float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] + scale*b[i]
	}
	return out
}

// Step advances state y from t to t+dt using the classic RK4 combination
// y' = y + (dt/6)(k1 + 2k2 + 2k3 + k4). Intermediate stage states and the
// final combination are both clamped to >= 0 (the non-negativity
// invariant), and any NaN/Inf produced by f is neutralized to 0 before it
// can propagate. Step never mutates y; it always returns a fresh slice.
func Step(y []float64, t, dt float64, f Derivative) []float64 {
	k1 := sanitize(f(y, t))

	y2 := clampNonNegative(addScaled(y, k1, dt/2))
	k2 := sanitize(f(y2, t+dt/2))

	y3 := clampNonNegative(addScaled(y, k2, dt/2))
	k3 := sanitize(f(y3, t+dt/2))

	y4 := clampNonNegative(addScaled(y, k3, dt))
	k4 := sanitize(f(y4, t+dt))

	out := make([]float64, len(y))
	for i := range y {
		out[i] = y[i] + (dt/6)*(k1[i]+2*k2[i]+2*k3[i]+k4[i])
	}
	return clampNonNegative(out)
}

// Integrate steps y0 from tStart to tEnd with fixed step dt, recording y0
// at tStart and a further sample whenever at least outputInterval of sim
// time has elapsed since the last recorded sample, plus always a final
// sample at termination. outputInterval must be >= dt.
func Integrate(y0 []float64, tStart, tEnd, dt float64, f Derivative, outputInterval float64) []Sample {
	if outputInterval < dt {
		outputInterval = dt
	}

	samples := []Sample{{T: tStart, Y: append([]float64(nil), y0...)}}
	lastOutput := tStart

	y := y0
	t := tStart
	for t < tEnd {
		y = Step(y, t, dt, f)
		t += dt

		if t-lastOutput >= outputInterval || t >= tEnd {
			samples = append(samples, Sample{T: t, Y: append([]float64(nil), y...)})
			lastOutput = t
		}
	}
	return samples
}
