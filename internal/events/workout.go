// Package events defines the payloads emitted for computed workouts.
package events

import "time"

// EventWorkoutSummarized is the event_type header value for WorkoutSummarized.
const EventWorkoutSummarized = "workout.summarized"

// WorkoutSummarized represents the message emitted once a sensor package is summarised.
type WorkoutSummarized struct {
	EventID      string    `json:"event_id"`
	RunID        string    `json:"run_id"`
	Code         string    `json:"code"`
	TrainingType string    `json:"training_type"`
	DurationH    float64   `json:"duration_h"`
	DistanceKm   float64   `json:"distance_km"`
	SpeedKmh     float64   `json:"speed_kmh"`
	Calories     float64   `json:"calories"`
	Message      string    `json:"message"`
	OccurredAt   time.Time `json:"occurred_at"`
}
