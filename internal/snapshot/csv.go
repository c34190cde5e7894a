package snapshot

import (
	"fmt"
	"io"

	"github.com/GoCodeAlone/pathwaysim/internal/pathway"
)

// WriteCSV writes trajectory to w in the spec §6.5 format: header
// "Time,<metaboliteId>,<metaboliteId>,..." in pathway declaration order,
// rows in ascending time, numeric fields with at least six fractional
// digits, and a metabolite missing from a given snapshot written as 0.
func WriteCSV(w io.Writer, p pathway.Pathway, trajectory Trajectory) error {
	if _, err := io.WriteString(w, "Time"); err != nil {
		return err
	}
	for _, m := range p.Metabolites {
		if _, err := fmt.Fprintf(w, ",%s", m.ID); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}

	for _, snap := range trajectory {
		if _, err := fmt.Fprintf(w, "%.6f", snap.TimeSeconds); err != nil {
			return err
		}
		for _, m := range p.Metabolites {
			v, ok := snap.Concentration(m.ID)
			if !ok {
				v = 0
			}
			if _, err := fmt.Fprintf(w, ",%.6f", v); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
