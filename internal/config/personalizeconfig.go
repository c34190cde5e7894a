package config

import (
	"encoding/json"
	"fmt"

	"github.com/GoCodeAlone/pathwaysim/internal/personalize"
)

type wireUserProfile struct {
	AgeYears     float64            `json:"ageYears"`
	WeightKg     float64            `json:"weightKg"`
	HeightCm     float64            `json:"heightCm"`
	Sex          string             `json:"sex"`
	SleepHours   float64            `json:"sleepHours"`
	SleepQuality float64            `json:"sleepQuality"`
	LabOverrides map[string]float64 `json:"labOverrides"`
}

// LoadUserProfileJSON parses a §6.1 demographic/lab profile document.
func LoadUserProfileJSON(data []byte) (personalize.UserProfile, error) {
	var wire wireUserProfile
	if err := json.Unmarshal(data, &wire); err != nil {
		return personalize.UserProfile{}, fmt.Errorf("config: decode user profile JSON: %w", err)
	}
	return personalize.UserProfile{
		AgeYears:     wire.AgeYears,
		WeightKg:     wire.WeightKg,
		HeightCm:     wire.HeightCm,
		Sex:          wire.Sex,
		SleepHours:   wire.SleepHours,
		SleepQuality: wire.SleepQuality,
		LabOverrides: wire.LabOverrides,
	}, nil
}

type wireSupplement struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Type            string  `json:"type"`
	TargetID        string  `json:"targetId"`
	EffectMagnitude float64 `json:"effectMagnitude"`
	Mechanism       string  `json:"mechanism"`
}

// LoadSupplementsJSON parses a §6.6 supplement-stack document: a plain
// JSON array of supplement interventions. An entry naming an unrecognized
// "type" is dropped rather than aborting the whole document — a single
// bad stack entry shouldn't block the rest of a user's protocol from
// loading.
func LoadSupplementsJSON(data []byte) ([]personalize.Supplement, error) {
	var wire []wireSupplement
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("config: decode supplements JSON: %w", err)
	}
	out := make([]personalize.Supplement, 0, len(wire))
	for _, w := range wire {
		kind, ok := personalize.ParseSupplementType(w.Type)
		if !ok {
			continue
		}
		out = append(out, personalize.Supplement{
			ID:              w.ID,
			Name:            w.Name,
			Type:            kind,
			TargetID:        w.TargetID,
			EffectMagnitude: w.EffectMagnitude,
			Mechanism:       w.Mechanism,
		})
	}
	return out, nil
}
