// Package tracker turns batches of sensor packages into workout summaries.
package tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"github.com/admi20/pet-project-fitness-tracker/internal/events"
	"github.com/admi20/pet-project-fitness-tracker/internal/observability"
	"github.com/admi20/pet-project-fitness-tracker/internal/packages"
	"github.com/admi20/pet-project-fitness-tracker/internal/publish"
	"github.com/admi20/pet-project-fitness-tracker/internal/workout"
)

// Option configures optional behaviour for the Service.
type Option func(*Service)

// WithLogger overrides the logger used to report progress and errors.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithClock overrides the time source stamped on published events.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// Service builds, summarises and publishes workouts.
type Service struct {
	publisher publish.Publisher
	logger    logrus.FieldLogger
	now       func() time.Time
}

// NewService constructs a Service. A nil publisher disables publishing.
func NewService(publisher publish.Publisher, opts ...Option) *Service {
	if publisher == nil {
		publisher = publish.NoopPublisher{}
	}
	s := &Service{
		publisher: publisher,
		logger:    logrus.StandardLogger(),
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Result pairs a package with the summary derived from it.
type Result struct {
	Index   int
	Code    string
	Summary workout.Summary
}

// Process summarises every package in order. Packages that cannot be built are
// reported in the returned error and do not stop the rest of the batch; a
// summary whose publish failed is still returned.
func (s *Service) Process(ctx context.Context, pkgs []packages.Package) ([]Result, error) {
	runID := uuid.NewString()
	logger := s.logger.WithField("run_id", runID)
	logger.WithField("packages", len(pkgs)).Debug("processing packages")

	results := make([]Result, 0, len(pkgs))
	var errs error

	for i, pkg := range pkgs {
		if err := ctx.Err(); err != nil {
			return results, multierr.Append(errs, err)
		}

		entry := logger.WithFields(logrus.Fields{"index": i, "code": pkg.Code})

		w, err := workout.Build(pkg.Code, pkg.Values)
		if err != nil {
			observability.RecordRejected(err)
			entry.WithError(err).Error("rejected package")
			errs = multierr.Append(errs, fmt.Errorf("package %d (%s): %w", i, pkg.Code, err))
			continue
		}

		summary := workout.Summarize(w)
		observability.RecordSummary(summary)
		results = append(results, Result{Index: i, Code: pkg.Code, Summary: summary})

		entry.WithFields(logrus.Fields{
			"training_type": summary.TrainingType,
			"distance_km":   summary.DistanceKm,
			"speed_kmh":     summary.SpeedKmh,
			"calories":      summary.Calories,
		}).Debug("workout summarised")

		if err := s.publisher.Publish(ctx, s.event(runID, pkg.Code, summary)); err != nil {
			entry.WithError(err).Warn("publish summary failed")
			errs = multierr.Append(errs, fmt.Errorf("publish package %d (%s): %w", i, pkg.Code, err))
		}
	}

	logger.WithFields(logrus.Fields{
		"summaries": len(results),
		"failures":  len(multierr.Errors(errs)),
	}).Info("batch processed")

	return results, errs
}

func (s *Service) event(runID, code string, summary workout.Summary) events.WorkoutSummarized {
	return events.WorkoutSummarized{
		EventID:      uuid.NewString(),
		RunID:        runID,
		Code:         code,
		TrainingType: summary.TrainingType,
		DurationH:    summary.DurationH,
		DistanceKm:   summary.DistanceKm,
		SpeedKmh:     summary.SpeedKmh,
		Calories:     summary.Calories,
		Message:      summary.Message(),
		OccurredAt:   s.now(),
	}
}
