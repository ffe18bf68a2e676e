package tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/dstevanovic/fitrack/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=recorder_mocks_test.go -package=tracker_test

type completionStore interface {
	IsCompleted(ctx context.Context, exerciseID string) (bool, error)
	ListCompleted(ctx context.Context) ([]string, error)
	MarkAndRecord(ctx context.Context, exerciseID string, day time.Time) error
	HistorySnapshot(ctx context.Context) (map[time.Time]int, error)
	Streak(ctx context.Context) (int, error)
	SetStreak(ctx context.Context, streak int) error
}

// CompletionResult is what a single recorded completion produced.
type CompletionResult struct {
	ExerciseID  string    `json:"exerciseId"`
	Day         time.Time `json:"day"`
	CountForDay int       `json:"countForDay"`
	Streak      int       `json:"streak"`
}

// Recorder orchestrates one completion transaction: mark the exercise
// completed, bump the day's ledger count, recompute and persist the
// streak against the current moment.
type Recorder struct {
	store completionStore
	// injectable for tests
	NowFunc func() time.Time
}

func NewRecorder(store completionStore) *Recorder {
	return &Recorder{
		store:   store,
		NowFunc: time.Now,
	}
}

// RecordCompletion records one completion of the given exercise at
// the given moment. A zero `at` means now. The moment is bucketed
// into the server-local calendar day, whatever zone the timestamp
// arrived in. Repeated completions on the same day each bump that
// day's count by one. The streak is recomputed from the fresh
// snapshot relative to now, not to the event's day: recording a
// completion for a past day does not move the streak anchor.
func (r *Recorder) RecordCompletion(ctx context.Context, exerciseID string, at time.Time) (_ *CompletionResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "recorder.tracker.recordCompletion")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", exerciseID))

	if at.IsZero() {
		at = r.NowFunc()
	}
	// ledger keys live in local time, decoded JSON timestamps do not
	day := NormalizeDay(at.In(time.Local))

	if err := r.store.MarkAndRecord(ctx, exerciseID, day); err != nil {
		return nil, fmt.Errorf("mark and record: %w", err)
	}

	history, err := r.store.HistorySnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("history snapshot: %w", err)
	}

	streak := ComputeStreak(history, r.NowFunc())
	if err := r.store.SetStreak(ctx, streak); err != nil {
		// ledger and streak can diverge here until the next
		// successful recompute
		return nil, fmt.Errorf("set streak: %w", err)
	}

	span.SetAttributes(attribute.Int("streak", streak))

	return &CompletionResult{
		ExerciseID:  exerciseID,
		Day:         day,
		CountForDay: history[day],
		Streak:      streak,
	}, nil
}

func (r *Recorder) IsCompleted(ctx context.Context, exerciseID string) (bool, error) {
	return r.store.IsCompleted(ctx, exerciseID)
}

func (r *Recorder) ListCompleted(ctx context.Context) ([]string, error) {
	return r.store.ListCompleted(ctx)
}

func (r *Recorder) HistorySnapshot(ctx context.Context) (map[time.Time]int, error) {
	return r.store.HistorySnapshot(ctx)
}

// CurrentStreak reads the persisted streak, the cached projection of
// the ledger written by the last RecordCompletion.
func (r *Recorder) CurrentStreak(ctx context.Context) (int, error) {
	return r.store.Streak(ctx)
}
