package events

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dstevanovic/fitrack/internal/telemetry/metrics"
	"github.com/dstevanovic/fitrack/internal/telemetry/tracing"
	"github.com/dstevanovic/fitrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=events_test

type service interface {
	AddTrainingStart(ctx context.Context, ts TrainingStart) (int, error)
	AddTrainingFinish(ctx context.Context, tf TrainingFinish) (int, error)
	List(ctx context.Context, params ListParams) ([]*Event, error)
	Count(ctx context.Context, params EventParams) (int, error)
}

type ListResponse struct {
	Events []*Event `json:"events"`
	Total  int      `json:"total"`
}

type Handler struct {
	service service
	metrics *metrics.Manager
}

func NewHandler(service service, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service: service,
		metrics: metricsManager,
	}
}

func (h *Handler) HandleTrainingStart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.events.trainingstart")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var trainingStart TrainingStart
	if err := json.NewDecoder(r.Body).Decode(&trainingStart); err != nil {
		log.Errorf("new training start, unmarshal json params: %s", err)
		http.Error(w, "add training start failed", http.StatusBadRequest)
		return
	}

	id, err := h.service.AddTrainingStart(ctx, trainingStart)
	if err != nil {
		log.Errorf("new training start: %s", err)
		http.Error(w, "add training start failed", http.StatusInternalServerError)
		return
	}
	trainingStart.ID = id

	h.metrics.CounterTrainingEvents.Inc()

	trainingStartJson, err := json.Marshal(trainingStart)
	if err != nil {
		log.Errorf("failed to marshal new training start: %s", err)
		http.Error(w, "error, failed to add new training start", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, trainingStartJson, http.StatusCreated)
}

func (h *Handler) HandleTrainingFinish(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.events.trainingfinish")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var trainingFinish TrainingFinish
	if err := json.NewDecoder(r.Body).Decode(&trainingFinish); err != nil {
		log.Errorf("new training finish, unmarshal json params: %s", err)
		http.Error(w, "add training finish failed", http.StatusBadRequest)
		return
	}

	id, err := h.service.AddTrainingFinish(ctx, trainingFinish)
	if err != nil {
		log.Errorf("new training finish: %s", err)
		http.Error(w, "add training finish failed", http.StatusInternalServerError)
		return
	}
	trainingFinish.ID = id

	h.metrics.CounterTrainingEvents.Inc()

	trainingFinishJson, err := json.Marshal(trainingFinish)
	if err != nil {
		log.Errorf("failed to marshal new training finish: %s", err)
		http.Error(w, "error, failed to add new training finish", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, trainingFinishJson, http.StatusCreated)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.events.list")
	defer span.End()

	vars := mux.Vars(r)

	page, err := strconv.Atoi(vars["page"])
	if err != nil {
		log.Errorf("handle list events, from <page> param: %s", err)
		http.Error(w, "parse form error, parameter <page>", http.StatusBadRequest)
		return
	}
	size, err := strconv.Atoi(vars["size"])
	if err != nil {
		log.Errorf("handle list events, from <size> param: %s", err)
		http.Error(w, "parse form error, parameter <size>", http.StatusBadRequest)
		return
	}

	if page < 1 {
		http.Error(w, "invalid page (has to be non-zero value)", http.StatusBadRequest)
		return
	}
	if size < 1 {
		http.Error(w, "invalid size (has to be non-zero value)", http.StatusBadRequest)
		return
	}

	eventParams := EventParams{}
	if typeParam := r.URL.Query().Get("type"); typeParam != "" {
		eventType := EventType(typeParam)
		if !eventType.IsValid() {
			http.Error(w, "invalid event type", http.StatusBadRequest)
			return
		}
		eventParams.Type = &eventType
	}

	events, err := h.service.List(ctx, ListParams{
		EventParams: eventParams,
		Page:        page - 1,
		Size:        size,
	})
	if err != nil {
		log.Errorf("list events error: %s", err)
		http.Error(w, "failed to get events", http.StatusInternalServerError)
		return
	}

	total, err := h.service.Count(ctx, eventParams)
	if err != nil {
		log.Errorf("count events error: %s", err)
		http.Error(w, "failed to get events", http.StatusInternalServerError)
		return
	}

	listRespJson, err := json.Marshal(ListResponse{
		Events: events,
		Total:  total,
	})
	if err != nil {
		log.Errorf("marshal events error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listRespJson, http.StatusOK)
}
