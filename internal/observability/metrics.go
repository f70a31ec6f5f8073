package observability

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/admi20/pet-project-fitness-tracker/internal/workout"
)

// Rejection reasons used as the reason label.
const (
	ReasonUnknownCode     = "unknown_code"
	ReasonFieldCount      = "field_count"
	ReasonFieldType       = "field_type"
	ReasonInvalidDuration = "invalid_duration"
	ReasonInvalidHeight   = "invalid_height"
	ReasonOther           = "other"
)

var (
	summariesCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "workout_tracker",
		Subsystem: "calculator",
		Name:      "summaries_total",
		Help:      "Number of workout summaries computed, by training type.",
	}, []string{"training_type"})

	rejectedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "workout_tracker",
		Subsystem: "calculator",
		Name:      "rejected_packages_total",
		Help:      "Number of sensor packages that could not be turned into a workout.",
	}, []string{"reason"})

	caloriesHistogram = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "workout_tracker",
		Subsystem: "calculator",
		Name:      "calories_burned",
		Help:      "Distribution of calories spent per workout.",
		Buckets:   prometheus.ExponentialBuckets(50, 2, 8),
	}, []string{"training_type"})

	publishedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "workout_tracker",
		Subsystem: "publisher",
		Name:      "events_published_total",
		Help:      "Number of summary events written to Kafka.",
	}, []string{"topic"})

	publishErrorCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "workout_tracker",
		Subsystem: "publisher",
		Name:      "publish_errors_total",
		Help:      "Number of summary events that failed to reach Kafka.",
	}, []string{"topic"})
)

func init() {
	prometheus.MustRegister(summariesCounter, rejectedCounter, caloriesHistogram, publishedCounter, publishErrorCounter)
}

// RecordSummary counts a computed summary and observes its calories.
func RecordSummary(s workout.Summary) {
	summariesCounter.WithLabelValues(s.TrainingType).Inc()
	caloriesHistogram.WithLabelValues(s.TrainingType).Observe(s.Calories)
}

// RecordRejected counts a package rejected with err.
func RecordRejected(err error) {
	rejectedCounter.WithLabelValues(RejectionReason(err)).Inc()
}

// RejectionReason maps a build error to its metric label.
func RejectionReason(err error) string {
	switch {
	case errors.Is(err, workout.ErrUnknownWorkout):
		return ReasonUnknownCode
	case errors.Is(err, workout.ErrFieldCount):
		return ReasonFieldCount
	case errors.Is(err, workout.ErrFieldType):
		return ReasonFieldType
	case errors.Is(err, workout.ErrInvalidDuration):
		return ReasonInvalidDuration
	case errors.Is(err, workout.ErrInvalidHeight):
		return ReasonInvalidHeight
	default:
		return ReasonOther
	}
}

// RecordPublished counts a delivered event.
func RecordPublished(topic string) {
	publishedCounter.WithLabelValues(topic).Inc()
}

// RecordPublishError counts a failed delivery.
func RecordPublishError(topic string) {
	publishErrorCounter.WithLabelValues(topic).Inc()
}

// WriteTextfile dumps every registered metric in the text exposition format,
// suitable for the node exporter textfile collector.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
