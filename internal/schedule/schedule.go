// Package schedule parses the daily event schedule (spec §6.3) and models
// it as an ordered list of time-of-day events the driver consumes.
package schedule

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// EventType is one of the four event kinds §4.4.3 defines delivery
// semantics for.
type EventType int

const (
	Meal EventType = iota
	Exercise
	Supplement
	Stressor
)

func parseEventType(s string) (EventType, bool) {
	switch s {
	case "Meal":
		return Meal, true
	case "Exercise":
		return Exercise, true
	case "Supplement":
		return Supplement, true
	case "Stressor":
		return Stressor, true
	default:
		return 0, false
	}
}

// MealPayload carries the macronutrient load of a Meal event.
type MealPayload struct {
	GlucoseLoadG float64
	ProteinLoadG float64
	FatLoadG     float64
}

// ExercisePayload carries the intensity and duration of an Exercise event.
type ExercisePayload struct {
	Intensity       string // "Low", "Medium", "High"
	DurationMinutes int
}

// Event is one scheduled occurrence during the day.
type Event struct {
	TimeMinute  int // 0..1439
	Type        EventType
	Description string
	Meal        *MealPayload
	Exercise    *ExercisePayload
	Raw         map[string]interface{} // Supplement/Stressor payload, passed through
}

// Schedule is the daily wake/sleep window plus an ordered event list.
type Schedule struct {
	WakeMinute  int
	SleepMinute int
	Events      []Event // ordered by TimeMinute
}

// wireSchedule mirrors the §6.3 JSON wire format.
type wireSchedule struct {
	WakeTime  string       `json:"wakeTime"`
	SleepTime string       `json:"sleepTime"`
	Events    []wireEvent  `json:"events"`
}

type wireEvent struct {
	Time        string                 `json:"time"`
	Type        string                 `json:"type"`
	Description string                 `json:"description"`
	Payload     map[string]interface{} `json:"payload"`
}

// parseHHMM parses "HH:MM" into minutes-of-day. Returns ok=false on any
// malformed input.
func parseHHMM(s string) (int, bool) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	hh, err := strconv.Atoi(parts[0])
	if err != nil || hh < 0 || hh > 23 {
		return 0, false
	}
	mm, err := strconv.Atoi(parts[1])
	if err != nil || mm < 0 || mm > 59 {
		return 0, false
	}
	return hh*60 + mm, true
}

func floatField(payload map[string]interface{}, key string) float64 {
	v, ok := payload[key]
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

// ParseJSON parses the §6.3 schedule wire format. Per spec §4.5, schedule
// parsing errors are recoverable: a totally malformed document yields an
// empty Schedule (no error), and within an otherwise valid document an
// individual event with an unparsable time or an unrecognized type is
// simply dropped rather than aborting the whole parse.
func ParseJSON(data []byte) Schedule {
	var wire wireSchedule
	if err := json.Unmarshal(data, &wire); err != nil {
		return Schedule{}
	}

	sched := Schedule{}
	if wake, ok := parseHHMM(wire.WakeTime); ok {
		sched.WakeMinute = wake
	}
	if sleep, ok := parseHHMM(wire.SleepTime); ok {
		sched.SleepMinute = sleep
	}

	for _, we := range wire.Events {
		minute, ok := parseHHMM(we.Time)
		if !ok {
			continue
		}
		kind, ok := parseEventType(we.Type)
		if !ok {
			continue
		}

		event := Event{TimeMinute: minute, Type: kind, Description: we.Description, Raw: we.Payload}
		switch kind {
		case Meal:
			event.Meal = &MealPayload{
				GlucoseLoadG: floatField(we.Payload, "glucoseLoad"),
				ProteinLoadG: floatField(we.Payload, "proteinLoad"),
				FatLoadG:     floatField(we.Payload, "fatLoad"),
			}
		case Exercise:
			intensity, _ := we.Payload["intensity"].(string)
			event.Exercise = &ExercisePayload{
				Intensity:       intensity,
				DurationMinutes: int(floatField(we.Payload, "durationMinutes")),
			}
		}
		sched.Events = append(sched.Events, event)
	}

	sort.SliceStable(sched.Events, func(i, j int) bool {
		return sched.Events[i].TimeMinute < sched.Events[j].TimeMinute
	})
	return sched
}

// String aids debugging/logging.
func (e Event) String() string {
	return fmt.Sprintf("%02d:%02d %v %s", e.TimeMinute/60, e.TimeMinute%60, e.Type, e.Description)
}
