package tracker

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/dstevanovic/fitrack/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel/attribute"
)

const (
	completedSetKey = "fitrack::completed"
	historyKey      = "fitrack::history"
	streakKey       = "fitrack::streak"
)

// Store persists the completions state in redis:
//   - completed exercise ids in a set
//   - the history ledger in a hash, day key -> completion count
//   - the streak as a plain integer
//
// Absent keys read as empty / zero, that is the defined initial state
// and never an error.
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{
		rdb: rdb,
	}
}

func (s *Store) IsCompleted(ctx context.Context, exerciseID string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.tracker.isCompleted")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", exerciseID))

	cmd := s.rdb.SIsMember(ctx, completedSetKey, exerciseID)
	if err := cmd.Err(); err != nil {
		return false, &StorageError{Op: "is-completed", Err: err}
	}
	return cmd.Val(), nil
}

// MarkCompleted adds the exercise id to the completed set. Completion
// is monotonic, there is no operation to remove an id again. Marking
// an already completed exercise is a no-op.
func (s *Store) MarkCompleted(ctx context.Context, exerciseID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.tracker.markCompleted")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", exerciseID))

	if err := s.rdb.SAdd(ctx, completedSetKey, exerciseID).Err(); err != nil {
		return &StorageError{Op: "mark-completed", Err: err}
	}
	return nil
}

func (s *Store) ListCompleted(ctx context.Context) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.tracker.listCompleted")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	cmd := s.rdb.SMembers(ctx, completedSetKey)
	if err := cmd.Err(); err != nil {
		return nil, &StorageError{Op: "list-completed", Err: err}
	}
	return cmd.Val(), nil
}

// RecordForDay increments the ledger count for the given day by one,
// creating the entry at 1 when absent.
func (s *Store) RecordForDay(ctx context.Context, day time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.tracker.recordForDay")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("day", DayKey(day)))

	if err := s.rdb.HIncrBy(ctx, historyKey, DayKey(day), 1).Err(); err != nil {
		return &StorageError{Op: "record-for-day", Err: err}
	}
	return nil
}

// MarkAndRecord groups the completed-set insert and the ledger
// increment into a single transaction, so a completion event can
// never land in only one of the two.
func (s *Store) MarkAndRecord(ctx context.Context, exerciseID string, day time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.tracker.markAndRecord")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", exerciseID))
	span.SetAttributes(attribute.String("day", DayKey(day)))

	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SAdd(ctx, completedSetKey, exerciseID)
		pipe.HIncrBy(ctx, historyKey, DayKey(day), 1)
		return nil
	})
	if err != nil {
		return &StorageError{Op: "mark-and-record", Err: err}
	}
	return nil
}

// HistorySnapshot returns the full ledger, keys normalized to local
// midnight. A malformed day key or count fails the whole read with a
// ParseError.
func (s *Store) HistorySnapshot(ctx context.Context) (_ map[time.Time]int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.tracker.historySnapshot")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	cmd := s.rdb.HGetAll(ctx, historyKey)
	if err := cmd.Err(); err != nil {
		return nil, &StorageError{Op: "history-snapshot", Err: err}
	}

	history := make(map[time.Time]int, len(cmd.Val()))
	for field, value := range cmd.Val() {
		day, err := ParseDayKey(field)
		if err != nil {
			return nil, &ParseError{Field: field, Err: err}
		}
		count, err := strconv.Atoi(value)
		if err != nil {
			return nil, &ParseError{Field: field, Err: err}
		}
		history[day] = count
	}
	return history, nil
}

func (s *Store) Streak(ctx context.Context) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.tracker.streak")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	cmd := s.rdb.Get(ctx, streakKey)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			// no streak persisted yet
			return 0, nil
		}
		return 0, &StorageError{Op: "get-streak", Err: err}
	}

	streak, err := strconv.Atoi(cmd.Val())
	if err != nil {
		return 0, &ParseError{Field: streakKey, Err: err}
	}
	return streak, nil
}

func (s *Store) SetStreak(ctx context.Context, streak int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.tracker.setStreak")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("streak", streak))

	if err := s.rdb.Set(ctx, streakKey, streak, 0).Err(); err != nil {
		return &StorageError{Op: "set-streak", Err: err}
	}
	return nil
}
