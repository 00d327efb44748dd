package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/herdscan/breed-identifier/internal/catalog"
)

type breedGroups struct {
	Cattle  []catalog.Record `json:"cattle"`
	Buffalo []catalog.Record `json:"buffalo"`
	All     []catalog.Record `json:"all"`
}

type breedListResponse struct {
	Success      bool        `json:"success"`
	TotalBreeds  int         `json:"total_breeds"`
	CattleCount  int         `json:"cattle_count"`
	BuffaloCount int         `json:"buffalo_count"`
	Breeds       breedGroups `json:"breeds"`
	LastUpdated  string      `json:"last_updated"`
}

type breedDetailResponse struct {
	Success   bool           `json:"success"`
	Breed     catalog.Record `json:"breed"`
	Timestamp string         `json:"timestamp"`
}

// ListBreeds handles GET /api/v1/breeds and returns the full table grouped
// by species.
func (h *Handler) ListBreeds(w http.ResponseWriter, r *http.Request) {
	defer h.recoverPanic(w, r)

	cattle := h.catalog.Cattle()
	buffalo := h.catalog.Buffalo()

	h.writeJSON(w, http.StatusOK, breedListResponse{
		Success:      true,
		TotalBreeds:  h.catalog.Len(),
		CattleCount:  len(cattle),
		BuffaloCount: len(buffalo),
		Breeds: breedGroups{
			Cattle:  cattle,
			Buffalo: buffalo,
			All:     h.catalog.All(),
		},
		LastUpdated: timestamp(),
	})
}

// BreedDetails handles GET /api/v1/breeds/{id}. A non-numeric or unknown id
// yields the same not-found shape.
func (h *Handler) BreedDetails(w http.ResponseWriter, r *http.Request) {
	defer h.recoverPanic(w, r)

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		h.breedNotFound(w)
		return
	}

	breed, err := h.catalog.ByID(id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			h.breedNotFound(w)
			return
		}

		h.writeJSON(w, http.StatusInternalServerError, errorResponse{
			Success: false,
			Error:   "Internal server error",
		})
		return
	}

	h.writeJSON(w, http.StatusOK, breedDetailResponse{
		Success:   true,
		Breed:     breed,
		Timestamp: timestamp(),
	})
}

func (h *Handler) breedNotFound(w http.ResponseWriter) {
	h.writeJSON(w, http.StatusNotFound, errorResponse{
		Success: false,
		Error:   "Breed not found",
	})
}
