package snapshot

import (
	"strings"
	"testing"

	"github.com/GoCodeAlone/pathwaysim/internal/pathway"
)

func TestWriteCSVHeaderAndMissingAsZero(t *testing.T) {
	p, err := pathway.Build("p", "p", "", []pathway.Metabolite{{ID: "a"}, {ID: "b"}}, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	trajectory := Trajectory{
		{TimeSeconds: 0, Concentrations: map[string]float64{"a": 1, "b": 2}},
		{TimeSeconds: 1, Concentrations: map[string]float64{"a": 1.5}}, // b missing
	}

	var buf strings.Builder
	if err := WriteCSV(&buf, p, trajectory); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if lines[0] != "Time,a,b" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if !strings.HasSuffix(lines[2], ",0.000000") {
		t.Fatalf("expected missing metabolite written as 0, got %q", lines[2])
	}
}
