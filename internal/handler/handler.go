package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/herdscan/breed-identifier/internal/catalog"
	"github.com/herdscan/breed-identifier/internal/inference"
	"github.com/herdscan/breed-identifier/internal/metrics"
)

const (
	serviceName    = "Cattle & Buffalo Breed Identifier"
	serviceID      = "cattle-breed-identifier"
	serviceVersion = "2.0.0"
)

// Handler serves the breed identification API. All responses are JSON.
type Handler struct {
	logger         *slog.Logger
	catalog        *catalog.Catalog
	engine         *inference.Engine
	collector      *metrics.Collector
	maxUploadBytes int64
	started        time.Time
}

func New(logger *slog.Logger, cat *catalog.Catalog, engine *inference.Engine, collector *metrics.Collector, maxUploadBytes int64) *Handler {
	return &Handler{
		logger:         logger,
		catalog:        cat,
		engine:         engine,
		collector:      collector,
		maxUploadBytes: maxUploadBytes,
		started:        time.Now(),
	}
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("Failed to encode response", slog.Any("err", err))
	}
}

// recoverPanic converts an unexpected fault in a handler into a generic
// processing-error response so a single bad request cannot crash the
// process or leak partial breed data.
func (h *Handler) recoverPanic(w http.ResponseWriter, r *http.Request) {
	rec := recover()
	if rec == nil {
		return
	}

	h.logger.Error("Recovered from panic in handler",
		slog.String("path", r.URL.Path),
		slog.Any("panic", rec))

	h.writeJSON(w, http.StatusInternalServerError, errorResponse{
		Success: false,
		Error:   "Internal server error",
	})
}

// emitEvent hands an identification record to the collector without ever
// blocking the response path. Events are dropped when the buffer is full.
func (h *Handler) emitEvent(event metrics.IdentificationEvent) {
	if h.collector == nil {
		return
	}

	select {
	case h.collector.EventChannel() <- event:
	default:
	}
}

func timestamp() string {
	return time.Now().Format(time.RFC3339)
}
