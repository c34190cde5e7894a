// Package snapshot defines the point-in-time SimulationState/Snapshot
// contract the driver emits (spec §6.4) and the ordered Trajectory
// consumers read from, plus the §6.5 CSV export format. Everything here
// is read-only from a consumer's perspective: the driver owns the backing
// data and hands snapshots off by value (or by reference the consumer is
// expected to copy before the next tick, per spec §5).
package snapshot

import (
	"github.com/GoCodeAlone/pathwaysim/internal/pathway"
)

// Snapshot is one point-in-time reading of the simulation: elapsed sim
// seconds since the run started, a concentration reading (mM) per
// metabolite id, and an optional flux reading per reaction id.
type Snapshot struct {
	TimeSeconds    float64
	Concentrations map[string]float64
	Fluxes         map[string]float64
}

// Concentration returns the reading for a metabolite id and whether it was
// present at all — spec §7's "missing metabolite id in snapshot query:
// reader receives 0 with an out-of-band not-present indicator."
func (s Snapshot) Concentration(metaboliteID string) (float64, bool) {
	v, ok := s.Concentrations[metaboliteID]
	return v, ok
}

// FromState builds a Snapshot from a pathway and a raw state vector
// (indexed the way Pathway.Index resolves ids).
func FromState(p pathway.Pathway, t float64, y []float64, fluxes map[string]float64) Snapshot {
	concentrations := make(map[string]float64, len(p.Metabolites))
	for i, m := range p.Metabolites {
		if i < len(y) {
			concentrations[m.ID] = y[i]
		}
	}
	return Snapshot{TimeSeconds: t, Concentrations: concentrations, Fluxes: fluxes}
}

// Trajectory is an ordered, strictly-increasing-in-time sequence of
// snapshots (spec §3.1's Trajectory entity).
type Trajectory []Snapshot

// Append adds s to the trajectory. Callers that need the strictly
// increasing invariant enforced should check the previous entry's time
// themselves; Append itself is a plain, non-validating convenience to
// keep the type usable as a simple accumulator in tests and CLI tools.
func (t Trajectory) Append(s Snapshot) Trajectory {
	return append(t, s)
}
