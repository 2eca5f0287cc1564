package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/vitaalplan/vitaal-api/internal/logger"
	"github.com/vitaalplan/vitaal-api/internal/middlewares"
	"github.com/vitaalplan/vitaal-api/internal/models"
	"github.com/vitaalplan/vitaal-api/internal/services"
)

// WeightManager defines the weight log operations used by the handlers.
type WeightManager interface {
	List(ctx context.Context, accountID uuid.UUID) ([]models.WeightEntry, error)
	Add(ctx context.Context, accountID uuid.UUID, weight float64) (*models.WeightEntry, []models.Notification, error)
	Delete(ctx context.Context, accountID, entryID uuid.UUID) error
}

// WeightAddRequest represents the JSON body for logging a weight
// swagger:model WeightAddRequest
type WeightAddRequest struct {
	// Weight in kilograms
	// required: true
	// example: 85
	Weight float64 `json:"weight"`
}

// WeightAddResponse represents a logged weight with its notifications
// swagger:model WeightAddResponse
type WeightAddResponse struct {
	Entry         models.WeightEntry    `json:"entry"`
	Notifications []models.Notification `json:"notifications"`
}

// NewWeightListHandler returns an HTTP handler listing weight entries.
// @Summary List weight entries
// @Tags weights
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.WeightEntry "Entries in insertion order"
// @Router /weights [get]
func NewWeightListHandler(svc WeightManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID := middlewares.GetAccountIDFromContext(r.Context())

		entries, err := svc.List(r.Context(), accountID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, entries)
	}
}

// NewWeightAddHandler returns an HTTP handler logging a weight entry.
// @Summary Log a weight entry
// @Description Appends a weight entry dated today and returns the progress notifications it triggered.
// @Tags weights
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param weightAddRequest body handlers.WeightAddRequest true "Weight to log"
// @Success 201 {object} handlers.WeightAddResponse "Entry created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid weight"
// @Router /weights [post]
func NewWeightAddHandler(svc WeightManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID := middlewares.GetAccountIDFromContext(r.Context())

		var req WeightAddRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		entry, notifications, err := svc.Add(r.Context(), accountID, req.Weight)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidWeight):
				writeError(w, http.StatusBadRequest, services.ErrInvalidWeight.Error())
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, WeightAddResponse{
			Entry:         *entry,
			Notifications: notifications,
		})
	}
}

// NewWeightDeleteHandler returns an HTTP handler deleting a weight entry.
// Deleting a missing entry is a no-op.
// @Summary Delete a weight entry
// @Tags weights
// @Produce json
// @Security BearerAuth
// @Param entryID path string true "Entry id"
// @Success 200 {object} map[string]string "Entry deleted"
// @Failure 400 {object} handlers.ErrorResponse "Invalid entry id"
// @Router /weights/{entryID} [delete]
func NewWeightDeleteHandler(svc WeightManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID := middlewares.GetAccountIDFromContext(r.Context())

		entryID, err := uuid.Parse(chi.URLParam(r, "entryID"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid entry id")
			return
		}

		if err := svc.Delete(r.Context(), accountID, entryID); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"message": "Entry deleted"})
	}
}
