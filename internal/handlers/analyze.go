package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vitaalplan/vitaal-api/internal/logger"
	"github.com/vitaalplan/vitaal-api/internal/models"
	"github.com/vitaalplan/vitaal-api/internal/services"
)

// MealAnalyzer classifies a meal photo via the external AI service.
type MealAnalyzer interface {
	Analyze(ctx context.Context, imageBase64, mediaType string) (*models.MealAnalysis, error)
}

// AnalyzeRequest represents the JSON body for photo analysis
// swagger:model AnalyzeRequest
type AnalyzeRequest struct {
	// Base64-encoded image payload
	// required: true
	Image string `json:"image"`

	// Image media type
	// required: true
	// example: image/jpeg
	MediaType string `json:"media_type"`
}

// NewAnalyzeHandler returns an HTTP handler for meal photo analysis.
// Every analysis failure surfaces as one generic message; the user retries
// manually.
// @Summary Analyze a meal photo
// @Description Sends the photo to the external classification service and returns the estimated meal.
// @Tags meals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param analyzeRequest body handlers.AnalyzeRequest true "Photo to analyze"
// @Success 200 {object} models.MealAnalysis "Estimated meal"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 502 {object} handlers.ErrorResponse "Analysis failed"
// @Router /meals/analyze [post]
func NewAnalyzeHandler(svc MealAnalyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AnalyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		analysis, err := svc.Analyze(r.Context(), req.Image, req.MediaType)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrAnalysisFailed):
				writeError(w, http.StatusBadGateway, "Analysis failed, please try again")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, analysis)
	}
}
