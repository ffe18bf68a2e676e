package tracker

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/dstevanovic/fitrack/internal/telemetry/metrics"
	"github.com/dstevanovic/fitrack/internal/telemetry/tracing"
	"github.com/dstevanovic/fitrack/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=tracker_test

type completionRecorder interface {
	RecordCompletion(ctx context.Context, exerciseID string, at time.Time) (*CompletionResult, error)
	ListCompleted(ctx context.Context) ([]string, error)
	HistorySnapshot(ctx context.Context) (map[time.Time]int, error)
	CurrentStreak(ctx context.Context) (int, error)
}

type RecordCompletionRequest struct {
	ExerciseID string    `json:"exerciseId"`
	At         time.Time `json:"at,omitempty"`
}

type CompletedListResponse struct {
	Completed []string `json:"completed"`
	Total     int      `json:"total"`
}

type HistoryResponse struct {
	Days []DayCount `json:"days"`
}

type StreakResponse struct {
	Streak int `json:"streak"`
}

type Handler struct {
	recorder completionRecorder
	metrics  *metrics.Manager
	// injectable for tests
	NowFunc func() time.Time
}

func NewHandler(recorder completionRecorder, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		recorder: recorder,
		metrics:  metricsManager,
		NowFunc:  time.Now,
	}
}

func (handler *Handler) HandleRecordCompletion(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.recordCompletion")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req RecordCompletionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("record completion, unmarshal json params: %s", err)
		http.Error(w, "record completion failed", http.StatusBadRequest)
		return
	}

	if req.ExerciseID == "" {
		http.Error(w, "error, exercise id empty", http.StatusBadRequest)
		return
	}

	result, err := handler.recorder.RecordCompletion(ctx, req.ExerciseID, req.At)
	if err != nil {
		log.Errorf("failed to record completion for [%s]: %s", req.ExerciseID, err)
		http.Error(w, "error, failed to record completion", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterCompletions.Inc()
	handler.metrics.GaugeStreak.Set(float64(result.Streak))

	log.Debugf("completion recorded: [%s] on %s, streak %d", result.ExerciseID, DayKey(result.Day), result.Streak)

	resultJson, err := json.Marshal(result)
	if err != nil {
		log.Errorf("failed to marshal completion result: %s", err)
		http.Error(w, "error, failed to record completion", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resultJson, http.StatusCreated)
}

func (handler *Handler) HandleListCompleted(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.listCompleted")
	defer span.End()

	completed, err := handler.recorder.ListCompleted(ctx)
	if err != nil {
		log.Errorf("list completed exercises error: %s", err)
		http.Error(w, "failed to get completed exercises", http.StatusInternalServerError)
		return
	}
	if completed == nil {
		completed = []string{}
	}

	listRespJson, err := json.Marshal(CompletedListResponse{
		Completed: completed,
		Total:     len(completed),
	})
	if err != nil {
		log.Errorf("marshal completed exercises error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listRespJson, http.StatusOK)
}

func (handler *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.history")
	defer span.End()

	history, err := handler.recorder.HistorySnapshot(ctx)
	if err != nil {
		log.Errorf("history snapshot error: %s", err)
		http.Error(w, "failed to get history", http.StatusInternalServerError)
		return
	}

	// the full ledger goes out keyed the same way it is stored
	historyByKey := make(map[string]int, len(history))
	for day, count := range history {
		historyByKey[DayKey(day)] = count
	}

	historyJson, err := json.Marshal(historyByKey)
	if err != nil {
		log.Errorf("marshal history error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, historyJson, http.StatusOK)
}

func (handler *Handler) HandleWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.week")
	defer span.End()

	history, err := handler.recorder.HistorySnapshot(ctx)
	if err != nil {
		log.Errorf("week snapshot error: %s", err)
		http.Error(w, "failed to get history", http.StatusInternalServerError)
		return
	}

	weekJson, err := json.Marshal(HistoryResponse{
		Days: LastNDays(history, 7, handler.NowFunc()),
	})
	if err != nil {
		log.Errorf("marshal week error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, weekJson, http.StatusOK)
}

func (handler *Handler) HandleStreak(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.streak")
	defer span.End()

	streak, err := handler.recorder.CurrentStreak(ctx)
	if err != nil {
		log.Errorf("get streak error: %s", err)
		http.Error(w, "failed to get streak", http.StatusInternalServerError)
		return
	}

	streakJson, err := json.Marshal(StreakResponse{Streak: streak})
	if err != nil {
		log.Errorf("marshal streak error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, streakJson, http.StatusOK)
}

func (handler *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.stats")
	defer span.End()

	history, err := handler.recorder.HistorySnapshot(ctx)
	if err != nil {
		log.Errorf("stats snapshot error: %s", err)
		http.Error(w, "failed to get history", http.StatusInternalServerError)
		return
	}

	totalsJson, err := json.Marshal(Totals(history, handler.NowFunc()))
	if err != nil {
		log.Errorf("marshal stats error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, totalsJson, http.StatusOK)
}
