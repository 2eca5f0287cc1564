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

// MealManager defines the meal log operations used by the handlers.
type MealManager interface {
	List(ctx context.Context, accountID uuid.UUID) ([]models.MealEntry, error)
	Add(ctx context.Context, accountID uuid.UUID, in services.MealInput) (*models.MealEntry, []models.Notification, error)
	Delete(ctx context.Context, accountID, entryID uuid.UUID) error
}

// MealAddRequest represents the JSON body for logging a meal
// swagger:model MealAddRequest
type MealAddRequest struct {
	// Meal name
	// required: true
	// example: Griekse salade
	Name string `json:"name"`

	// Free-text description
	Description string `json:"description,omitempty"`

	// Calorie count
	// example: 420
	Calories int `json:"calories"`
}

// MealAddResponse represents a logged meal with its notifications
// swagger:model MealAddResponse
type MealAddResponse struct {
	Entry         models.MealEntry      `json:"entry"`
	Notifications []models.Notification `json:"notifications"`
}

// NewMealListHandler returns an HTTP handler listing meal entries.
// @Summary List meal entries
// @Tags meals
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.MealEntry "Entries in insertion order"
// @Router /meals [get]
func NewMealListHandler(svc MealManager) http.HandlerFunc {
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

// NewMealAddHandler returns an HTTP handler logging a meal.
// @Summary Log a meal
// @Description Appends a meal entry dated today and returns the progress notifications it triggered.
// @Tags meals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param mealAddRequest body handlers.MealAddRequest true "Meal to log"
// @Success 201 {object} handlers.MealAddResponse "Entry created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid meal"
// @Router /meals [post]
func NewMealAddHandler(svc MealManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID := middlewares.GetAccountIDFromContext(r.Context())

		var req MealAddRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		entry, notifications, err := svc.Add(r.Context(), accountID, services.MealInput{
			Name:        req.Name,
			Description: req.Description,
			Calories:    req.Calories,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmptyMealName), errors.Is(err, services.ErrNegativeCalories):
				writeError(w, http.StatusBadRequest, err.Error())
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, MealAddResponse{
			Entry:         *entry,
			Notifications: notifications,
		})
	}
}

// NewMealDeleteHandler returns an HTTP handler deleting a meal entry.
// Deleting a missing entry is a no-op.
// @Summary Delete a meal entry
// @Tags meals
// @Produce json
// @Security BearerAuth
// @Param entryID path string true "Entry id"
// @Success 200 {object} map[string]string "Entry deleted"
// @Failure 400 {object} handlers.ErrorResponse "Invalid entry id"
// @Router /meals/{entryID} [delete]
func NewMealDeleteHandler(svc MealManager) http.HandlerFunc {
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
