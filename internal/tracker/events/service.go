package events

import (
	"context"
	"fmt"

	"github.com/dstevanovic/fitrack/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/codes"
)

type Service struct {
	repo *Repo
}

func NewService(repo *Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) AddTrainingStart(ctx context.Context, ts TrainingStart) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.tracker.events.add.trainingstart")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	tsEvent := NewTrainingStartEvent(ts)
	event, err := s.repo.Add(ctx, tsEvent)
	if err != nil {
		return 0, fmt.Errorf("add training start event: %w", err)
	}
	return event.ID, nil
}

func (s *Service) AddTrainingFinish(ctx context.Context, tf TrainingFinish) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.tracker.events.add.trainingfinish")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	tfEvent := NewTrainingFinishEvent(tf)
	event, err := s.repo.Add(ctx, tfEvent)
	if err != nil {
		return 0, fmt.Errorf("add training finish event: %w", err)
	}
	return event.ID, nil
}

func (s *Service) List(ctx context.Context, params ListParams) (_ []*Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.tracker.events.list")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	events, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *Service) Count(ctx context.Context, params EventParams) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.tracker.events.count")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	count, err := s.repo.Count(ctx, params)
	if err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}
	return count, nil
}
