package exercises

import (
	"context"
	"fmt"

	"github.com/dstevanovic/fitrack/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=exercises_test

type catalogClient interface {
	List(ctx context.Context) ([]Exercise, error)
}

type completionsReader interface {
	ListCompleted(ctx context.Context) ([]string, error)
	CurrentStreak(ctx context.Context) (int, error)
}

// Schedule is the full daily schedule screen payload: the catalog
// with per-exercise completion state, plus the current streak. The
// app draws the whole screen from this one response.
type Schedule struct {
	Exercises []ExerciseWithStatus `json:"exercises"`
	Completed int                  `json:"completed"`
	Streak    int                  `json:"streak"`
}

type Service struct {
	catalog     catalogClient
	completions completionsReader
}

func NewService(catalog catalogClient, completions completionsReader) *Service {
	return &Service{
		catalog:     catalog,
		completions: completions,
	}
}

// GetSchedule merges the remote catalog with the locally tracked
// completion state. An exercise id marked completed but absent from
// the catalog is ignored, the catalog is the source of truth for
// what is shown.
func (s *Service) GetSchedule(ctx context.Context) (_ *Schedule, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.getSchedule")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	catalog, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("get exercises catalog: %w", err)
	}

	completed, err := s.completions.ListCompleted(ctx)
	if err != nil {
		return nil, fmt.Errorf("list completed: %w", err)
	}
	completedSet := make(map[string]struct{}, len(completed))
	for _, id := range completed {
		completedSet[id] = struct{}{}
	}

	streak, err := s.completions.CurrentStreak(ctx)
	if err != nil {
		return nil, fmt.Errorf("get streak: %w", err)
	}

	schedule := &Schedule{
		Exercises: make([]ExerciseWithStatus, 0, len(catalog)),
		Streak:    streak,
	}
	for _, exercise := range catalog {
		_, isCompleted := completedSet[exercise.ID]
		if isCompleted {
			schedule.Completed++
		}
		schedule.Exercises = append(schedule.Exercises, ExerciseWithStatus{
			Exercise:  exercise,
			Completed: isCompleted,
		})
	}

	span.SetAttributes(attribute.Int("exercises", len(schedule.Exercises)))
	span.SetAttributes(attribute.Int("completed", schedule.Completed))

	return schedule, nil
}
