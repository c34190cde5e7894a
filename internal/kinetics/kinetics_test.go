package kinetics

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestMichaelisMentenRate(t *testing.T) {
	Convey("Given Vmax=1, Km=0.1", t, func() {
		Convey("at [S]=Km the rate is half-maximal", func() {
			rate := MichaelisMentenRate(1, 0.1, 0.1)
			So(almostEqual(rate, 0.5, 1e-9), ShouldBeTrue)
		})
		Convey("a non-positive substrate yields zero", func() {
			So(MichaelisMentenRate(1, 0.1, 0), ShouldEqual, 0)
			So(MichaelisMentenRate(1, 0.1, -1), ShouldEqual, 0)
		})
		Convey("a non-positive Km yields zero", func() {
			So(MichaelisMentenRate(1, 0, 0.1), ShouldEqual, 0)
		})
	})
}

func TestCompetitiveInhibitionRate(t *testing.T) {
	Convey("Given Vmax=1, Km=0.1, [S]=0.1, [I]=0.1, Ki=0.1", t, func() {
		full := CompetitiveInhibitionRate(1, 0.1, 0.1, 0, 0.1)
		inhibited := CompetitiveInhibitionRate(1, 0.1, 0.1, 0.1, 0.1)
		Convey("inhibition lowers the rate relative to no inhibitor", func() {
			So(inhibited, ShouldBeLessThan, full)
		})
		Convey("Ki<=0 falls back to plain Michaelis-Menten", func() {
			So(CompetitiveInhibitionRate(1, 0.1, 0.1, 0.1, 0), ShouldAlmostEqual, MichaelisMentenRate(1, 0.1, 0.1), 1e-9)
		})
	})
}

func TestNonCompetitiveInhibitionRate(t *testing.T) {
	Convey("Modifier ratio 0.3 vs 1.0 approximates the activity ratio", t, func() {
		// enzyme activity multiplier folded into Vmax upstream, so compare
		// Vmax=1 (full activity) against Vmax=0.3 (reduced activity)
		full := NonCompetitiveInhibitionRate(1, 0.1, 0.1, 0.1, 0.1)
		reduced := NonCompetitiveInhibitionRate(0.3, 0.1, 0.1, 0.1, 0.1)
		ratio := reduced / full
		So(almostEqual(ratio, 0.30, 1e-2), ShouldBeTrue)
	})
}

func TestAllostericRate(t *testing.T) {
	Convey("Allosteric rate never exceeds Vmax", t, func() {
		for _, s := range []float64{0.01, 0.1, 1, 10, 100} {
			rate := AllostericRate(2.0, 1.0, s, 2)
			So(rate, ShouldBeLessThanOrEqualTo, 2.0)
		}
	})
}

func TestMassActionRate(t *testing.T) {
	Convey("No declared substrate acts as a constant source", t, func() {
		So(MassActionRate(0.5, 0, false), ShouldEqual, 0.5)
	})
	Convey("Zero substrate with a declared substrate yields zero", t, func() {
		So(MassActionRate(0.5, 0, true), ShouldEqual, 0)
	})
	Convey("Rate scales linearly with substrate", t, func() {
		So(MassActionRate(2, 3, true), ShouldEqual, 6)
	})
}

func TestActivationMultiplier(t *testing.T) {
	Convey("Activator doubles the base rate at [A]=Ka", t, func() {
		So(ActivationMultiplier(1.0, 0.5, 0.5), ShouldEqual, 2.0)
	})
	Convey("Ka<=0 leaves the base rate untouched", t, func() {
		So(ActivationMultiplier(1.0, 0.5, 0), ShouldEqual, 1.0)
	})
}

func TestEvaluateNeverNegative(t *testing.T) {
	Convey("Evaluate never returns a negative, NaN, or infinite rate", t, func() {
		kinds := []Kind{MichaelisMenten, CompetitiveInhibition, NonCompetitiveInhibition, Allosteric, MassAction}
		for _, k := range kinds {
			rate := Evaluate(k, Params{Vmax: -5, Km: -1, Substrate: -1, HasSubstrate: true, Inhibitor: -1, Ki: -1, Hill: 2})
			So(rate, ShouldEqual, 0)
		}
	})
}

func TestParseKind(t *testing.T) {
	Convey("Every documented kinetics kind string parses", t, func() {
		for _, s := range []string{"MichaelisMenten", "CompetitiveInhibition", "NonCompetitiveInhibition", "Allosteric", "MassAction"} {
			_, ok := ParseKind(s)
			So(ok, ShouldBeTrue)
		}
	})
	Convey("An unknown kind string fails to parse", t, func() {
		_, ok := ParseKind("Quantum")
		So(ok, ShouldBeFalse)
	})
}
