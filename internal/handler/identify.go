package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/herdscan/breed-identifier/internal/catalog"
	"github.com/herdscan/breed-identifier/internal/inference"
	"github.com/herdscan/breed-identifier/internal/metrics"
)

// Multipart bodies above this are rejected outright; the per-file limit is
// enforced separately with a descriptive error.
const maxMultipartBytes = 32 << 20

type analysisPayload struct {
	Breed          string          `json:"breed"`
	BreedID        int             `json:"breed_id"`
	Type           catalog.Species `json:"type"`
	Confidence     float64         `json:"confidence"`
	CertaintyLevel string          `json:"certainty_level"`
}

type breedDetailsPayload struct {
	Origin             string              `json:"origin"`
	Description        string              `json:"description"`
	Characteristics    string              `json:"characteristics"`
	MilkYield          string              `json:"milk_yield"`
	Colors             []string            `json:"colors"`
	Weight             catalog.WeightRange `json:"weight"`
	SpecialFeatures    []string            `json:"special_features"`
	Uses               []string            `json:"uses"`
	EconomicImportance string              `json:"economic_importance"`
}

type careInformationPayload struct {
	DailyCare       []string             `json:"daily_care"`
	BreedingInfo    catalog.BreedingInfo `json:"breeding_info"`
	Recommendations []string             `json:"recommendations"`
}

type fileInfoPayload struct {
	Filename   string  `json:"filename"`
	SizeMB     float64 `json:"size_mb"`
	Type       string  `json:"type"`
	UploadedAt string  `json:"uploaded_at"`
}

type identifyResponse struct {
	Success         bool                    `json:"success"`
	ProcessingTime  float64                 `json:"processing_time"`
	Analysis        analysisPayload         `json:"analysis"`
	BreedDetails    breedDetailsPayload     `json:"breed_details"`
	CareInformation careInformationPayload  `json:"care_information"`
	FileInfo        fileInfoPayload         `json:"file_info"`
	NextSteps       []string                `json:"next_steps"`
	Disclaimer      string                  `json:"disclaimer"`
	Timestamp       string                  `json:"timestamp"`
}

type invalidTypeResponse struct {
	Success         bool     `json:"success"`
	Error           string   `json:"error"`
	AcceptedFormats []string `json:"accepted_formats"`
}

type oversizeResponse struct {
	Success  bool   `json:"success"`
	Error    string `json:"error"`
	FileSize string `json:"file_size"`
}

type processingErrorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Timestamp string `json:"timestamp"`
}

// Identify handles POST /api/v1/identify. It validates the uploaded file's
// declared media type and size, runs the mock identification, and returns
// the full analysis envelope. The outcome is recorded fire-and-forget after
// the response is written.
func (h *Handler) Identify(w http.ResponseWriter, r *http.Request) {
	defer h.recoverPanic(w, r)

	r.Body = http.MaxBytesReader(w, r.Body, maxMultipartBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{
			Success: false,
			Error:   "No file uploaded. Please attach an image in the 'file' field.",
		})
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		h.writeJSON(w, http.StatusBadRequest, invalidTypeResponse{
			Success:         false,
			Error:           "Invalid file type. Please upload JPG, PNG, or JPEG images only.",
			AcceptedFormats: []string{"image/jpeg", "image/png", "image/jpg"},
		})
		return
	}

	if header.Size > h.maxUploadBytes {
		h.writeJSON(w, http.StatusBadRequest, oversizeResponse{
			Success:  false,
			Error:    "File size too large. Maximum size allowed is 5MB.",
			FileSize: fmt.Sprintf("%.2f MB", megabytes(header.Size)),
		})
		return
	}

	result, err := h.engine.Identify(r.Context(), h.catalog.All())
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			// Client gave up during the simulated delay; nothing to send.
			h.logger.Info("Identification cancelled by client", slog.Any("err", err))
			return
		}

		h.logger.Error("Identification failed", slog.Any("err", err))
		h.writeJSON(w, http.StatusInternalServerError, processingErrorResponse{
			Success:   false,
			Error:     "An error occurred during processing. Please try again.",
			Timestamp: timestamp(),
		})
		return
	}

	breed := result.Breed

	response := identifyResponse{
		Success:        true,
		ProcessingTime: roundSeconds(result.ProcessingTime),
		Analysis: analysisPayload{
			Breed:          breed.Name,
			BreedID:        breed.ID,
			Type:           breed.Species,
			Confidence:     result.Confidence,
			CertaintyLevel: result.Certainty,
		},
		BreedDetails: breedDetailsPayload{
			Origin:             breed.Origin,
			Description:        breed.Description,
			Characteristics:    breed.Characteristics,
			MilkYield:          breed.MilkYield,
			Colors:             breed.Colors,
			Weight:             breed.Weight,
			SpecialFeatures:    breed.SpecialFeatures,
			Uses:               breed.Uses,
			EconomicImportance: breed.EconomicImportance,
		},
		CareInformation: careInformationPayload{
			DailyCare:       breed.CareTips,
			BreedingInfo:    breed.BreedingInfo,
			Recommendations: inference.Recommendations(breed, result.Confidence),
		},
		FileInfo: fileInfoPayload{
			Filename:   header.Filename,
			SizeMB:     math.Round(megabytes(header.Size)*100) / 100,
			Type:       contentType,
			UploadedAt: timestamp(),
		},
		NextSteps:  inference.NextSteps(breed.Species),
		Disclaimer: inference.Disclaimer,
		Timestamp:  timestamp(),
	}

	w.Header().Set("X-Request-ID", result.ID.String())
	h.writeJSON(w, http.StatusOK, response)

	h.emitEvent(metrics.IdentificationEvent{
		Breed:      breed.Name,
		Confidence: result.Confidence,
		Duration:   result.ProcessingTime,
		Timestamp:  time.Now(),
	})
}

func megabytes(size int64) float64 {
	return float64(size) / (1024 * 1024)
}

func roundSeconds(d time.Duration) float64 {
	return math.Round(d.Seconds()*100) / 100
}
