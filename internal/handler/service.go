package handler

import (
	"net/http"
	"time"
)

type rootResponse struct {
	Status    string            `json:"status"`
	Service   string            `json:"service"`
	Version   string            `json:"version"`
	Message   string            `json:"message"`
	Timestamp string            `json:"timestamp"`
	Endpoints map[string]string `json:"endpoints"`
}

type healthResponse struct {
	Status       string `json:"status"`
	Service      string `json:"service"`
	Timestamp    string `json:"timestamp"`
	BreedsLoaded int    `json:"breeds_loaded"`
	Uptime       string `json:"uptime"`
	Database     string `json:"database"`
	AIModel      string `json:"ai_model"`
}

type notFoundResponse struct {
	Success            bool     `json:"success"`
	Error              string   `json:"error"`
	AvailableEndpoints []string `json:"available_endpoints"`
}

// Root handles GET / with the service banner and endpoint map.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	defer h.recoverPanic(w, r)

	h.writeJSON(w, http.StatusOK, rootResponse{
		Status:    "online",
		Service:   serviceName,
		Version:   serviceVersion,
		Message:   "AI-powered identification of Indian cattle and buffalo breeds",
		Timestamp: timestamp(),
		Endpoints: map[string]string{
			"identify":      "/api/v1/identify",
			"breeds":        "/api/v1/breeds",
			"breed_details": "/api/v1/breeds/{id}",
			"stats":         "/api/v1/stats",
			"health":        "/health",
		},
	})
}

// Health handles GET /health with a liveness payload.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	defer h.recoverPanic(w, r)

	h.writeJSON(w, http.StatusOK, healthResponse{
		Status:       "healthy",
		Service:      serviceID,
		Timestamp:    timestamp(),
		BreedsLoaded: h.catalog.Len(),
		Uptime:       time.Since(h.started).Round(time.Second).String(),
		Database:     "Connected",
		AIModel:      "Active",
	})
}

// NotFound is the fallback for unmatched routes.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusNotFound, notFoundResponse{
		Success: false,
		Error:   "Endpoint not found",
		AvailableEndpoints: []string{
			"/",
			"/health",
			"/api/v1/breeds",
			"/api/v1/identify",
			"/api/v1/stats",
		},
	})
}
