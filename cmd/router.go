package main

import (
	"net/http"

	"github.com/herdscan/breed-identifier/internal/handler"
)

func setupRouter(h *handler.Handler, staticDir string) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", h.Root)
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("GET /api/v1/breeds", h.ListBreeds)
	mux.HandleFunc("GET /api/v1/breeds/{id}", h.BreedDetails)
	mux.HandleFunc("POST /api/v1/identify", h.Identify)
	mux.HandleFunc("GET /api/v1/stats", h.Stats)

	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))

	// Everything else gets the JSON 404 payload
	mux.HandleFunc("/", h.NotFound)

	return mux
}
