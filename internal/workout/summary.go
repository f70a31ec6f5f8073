package workout

import "fmt"

// Summary is the informational message about a completed workout.
type Summary struct {
	TrainingType string
	DurationH    float64
	DistanceKm   float64
	SpeedKmh     float64
	Calories     float64
}

// Message renders the summary as a single human-readable line.
func (s Summary) Message() string {
	return fmt.Sprintf(
		"Тип тренировки: %s; Длительность: %.3f ч.; Дистанция: %.3f км; Ср. скорость: %.3f км/ч; Потрачено ккал: %.3f.",
		s.TrainingType, s.DurationH, s.DistanceKm, s.SpeedKmh, s.Calories,
	)
}

// String implements fmt.Stringer with the summary message.
func (s Summary) String() string {
	return s.Message()
}
