package exercises

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dstevanovic/fitrack/internal/telemetry/tracing"
	"github.com/dstevanovic/fitrack/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=exercises_test

type scheduleProvider interface {
	GetSchedule(ctx context.Context) (*Schedule, error)
}

type Handler struct {
	service scheduleProvider
}

func NewHandler(service scheduleProvider) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) HandleGetSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.schedule")
	defer span.End()

	schedule, err := h.service.GetSchedule(ctx)
	if err != nil {
		log.Errorf("get schedule error: %s", err)
		var networkErr *NetworkError
		if errors.As(err, &networkErr) {
			http.Error(w, "exercises catalog unavailable", http.StatusBadGateway)
			return
		}
		http.Error(w, "failed to get schedule", http.StatusInternalServerError)
		return
	}

	scheduleJson, err := json.Marshal(schedule)
	if err != nil {
		log.Errorf("marshal schedule error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, scheduleJson, http.StatusOK)
}
