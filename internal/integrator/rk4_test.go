package integrator

import (
	"math"
	"testing"
)

func TestStepNeverGoesNegative(t *testing.T) {
	// dy/dt = -10 (a constant, strongly negative force) should clamp to 0
	// rather than drive y negative.
	f := func(y []float64, t float64) []float64 { return []float64{-10} }
	out := Step([]float64{0.01}, 0, 0.1, f)
	if out[0] < 0 {
		t.Fatalf("expected non-negative result, got %v", out[0])
	}
}

func TestStepExponentialDecayMatchesAnalytic(t *testing.T) {
	// dy/dt = -y, y(0)=1; after integrating to t=1 with dt=0.01, result
	// should match exp(-1) within 1e-3 (spec §8.3).
	f := func(y []float64, t float64) []float64 { return []float64{-y[0]} }
	y := []float64{1}
	dt := 0.01
	tt := 0.0
	for tt < 1.0 {
		y = Step(y, tt, dt, f)
		tt += dt
	}
	want := math.Exp(-1)
	if math.Abs(y[0]-want) > 1e-3 {
		t.Fatalf("expected %v within 1e-3, got %v", want, y[0])
	}
}

func TestStepNeverMutatesInput(t *testing.T) {
	f := func(y []float64, t float64) []float64 { return []float64{1} }
	y := []float64{0.5}
	_ = Step(y, 0, 0.1, f)
	if y[0] != 0.5 {
		t.Fatalf("Step must not mutate its input, got %v", y[0])
	}
}

func TestIntegrateRecordsInitialAndFinalSamples(t *testing.T) {
	f := func(y []float64, t float64) []float64 { return []float64{0} }
	samples := Integrate([]float64{1}, 0, 1, 0.1, f, 0.5)
	if samples[0].T != 0 {
		t.Fatalf("expected first sample at t=0, got %v", samples[0].T)
	}
	last := samples[len(samples)-1]
	if last.T < 1.0-1e-9 {
		t.Fatalf("expected a final sample at or after t=1, got %v", last.T)
	}
}

func TestIntegrateStrictlyIncreasingTimes(t *testing.T) {
	f := func(y []float64, t float64) []float64 { return []float64{0.1} }
	samples := Integrate([]float64{0}, 0, 5, 0.01, f, 1.0)
	for i := 1; i < len(samples); i++ {
		if samples[i].T <= samples[i-1].T {
			t.Fatalf("sample times not strictly increasing at index %d", i)
		}
	}
}

func TestIntegrateDeterministic(t *testing.T) {
	f := func(y []float64, t float64) []float64 { return []float64{-0.3 * y[0]} }
	a := Integrate([]float64{2}, 0, 2, 0.01, f, 0.2)
	b := Integrate([]float64{2}, 0, 2, 0.01, f, 0.2)
	if len(a) != len(b) {
		t.Fatalf("expected identical sample counts")
	}
	for i := range a {
		if a[i].T != b[i].T || a[i].Y[0] != b[i].Y[0] {
			t.Fatalf("expected bit-identical runs, diverged at sample %d", i)
		}
	}
}

func TestMassActionEmptySubstrateConstantSource(t *testing.T) {
	// Integrating a pure constant-source derivative should grow linearly.
	f := func(y []float64, t float64) []float64 { return []float64{2.0} }
	out := Step([]float64{0}, 0, 1.0, f)
	if math.Abs(out[0]-2.0) > 1e-9 {
		t.Fatalf("expected constant-source accumulation of 2.0, got %v", out[0])
	}
}
