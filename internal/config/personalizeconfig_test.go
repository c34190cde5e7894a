package config

import "testing"

func TestLoadUserProfileJSON(t *testing.T) {
	data := []byte(`{"ageYears": 42, "sleepHours": 5, "sleepQuality": 50, "labOverrides": {"ros": 0.2}}`)
	profile, err := LoadUserProfileJSON(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.AgeYears != 42 || profile.SleepHours != 5 {
		t.Fatalf("unexpected profile: %+v", profile)
	}
	if profile.LabOverrides["ros"] != 0.2 {
		t.Fatalf("expected lab override to parse, got %+v", profile.LabOverrides)
	}
}

func TestLoadSupplementsJSONDropsUnrecognizedType(t *testing.T) {
	data := []byte(`[
		{"id": "s1", "type": "SubstrateIncrease", "targetId": "ros", "effectMagnitude": 0.1},
		{"id": "s2", "type": "NotARealType", "targetId": "ros", "effectMagnitude": 1}
	]`)
	supplements, err := LoadSupplementsJSON(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(supplements) != 1 {
		t.Fatalf("expected one recognized supplement, got %d", len(supplements))
	}
	if supplements[0].ID != "s1" {
		t.Fatalf("expected s1 to survive, got %+v", supplements)
	}
}
