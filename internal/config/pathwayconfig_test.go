package config

import "testing"

const testPathwayJSON = `{
	"id": "p1", "name": "Test pathway", "description": "",
	"metabolites": [
		{"id": "a", "name": "A", "initialConcentration": 1.0},
		{"id": "b", "name": "B", "initialConcentration": 0.0}
	],
	"enzymes": [
		{"id": "e1", "name": "E1", "vmax": 1.0, "km": 0.1,
		 "geneticModifiers": [
			{"rsid": "rs1", "gene": "G", "riskAllele": "T", "orientation": "Plus", "homozygousEffect": 0.5, "heterozygousEffect": 0.75}
		 ]}
	],
	"reactions": [
		{"id": "r1", "enzymeId": "e1", "kinetics": "MichaelisMenten",
		 "substrates": [{"metaboliteId": "a", "coefficient": 1}],
		 "products": [{"metaboliteId": "b", "coefficient": 1}]}
	]
}`

func TestLoadPathwayJSONHappyPath(t *testing.T) {
	p, err := LoadPathwayJSON([]byte(testPathwayJSON))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Metabolites) != 2 || len(p.Enzymes) != 1 || len(p.Reactions) != 1 {
		t.Fatalf("unexpected shape: %+v", p)
	}
	e, ok := p.EnzymeByID("e1")
	if !ok || len(e.GeneticModifiers) != 1 {
		t.Fatalf("expected enzyme e1 with one genetic modifier, got %+v", e)
	}
}

func TestLoadPathwayJSONUnknownReferenceFails(t *testing.T) {
	bad := `{"id":"p","metabolites":[],"enzymes":[{"id":"e1","vmax":1,"km":0.1}],
	"reactions":[{"id":"r1","enzymeId":"e1","kinetics":"MichaelisMenten",
	"substrates":[{"metaboliteId":"missing","coefficient":1}]}]}`
	_, err := LoadPathwayJSON([]byte(bad))
	if err == nil {
		t.Fatalf("expected an UnknownReference build error")
	}
}

func TestLoadPathwayJSONInvalidKineticsKindFails(t *testing.T) {
	bad := `{"id":"p","enzymes":[{"id":"e1","vmax":1,"km":0.1}],
	"reactions":[{"id":"r1","enzymeId":"e1","kinetics":"NotARealKind"}]}`
	_, err := LoadPathwayJSON([]byte(bad))
	if err == nil {
		t.Fatalf("expected an InvalidKineticsKind build error")
	}
}

func TestLoadPathwayJSONMalformedDocumentFails(t *testing.T) {
	_, err := LoadPathwayJSON([]byte("not json"))
	if err == nil {
		t.Fatalf("expected a decode error")
	}
}
