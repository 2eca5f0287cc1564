package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/vitaalplan/vitaal-api/internal/logger"
	"github.com/vitaalplan/vitaal-api/internal/middlewares"
	"github.com/vitaalplan/vitaal-api/internal/models"
	"github.com/vitaalplan/vitaal-api/internal/services"
)

// CheckInManager defines the check-in operations used by the handlers.
type CheckInManager interface {
	List(ctx context.Context, accountID uuid.UUID) ([]models.DailyCheckIn, error)
	Add(ctx context.Context, accountID uuid.UUID, in services.CheckInInput) (*models.DailyCheckIn, []models.Notification, error)
}

// CheckInAddRequest represents the JSON body for a daily check-in
// swagger:model CheckInAddRequest
type CheckInAddRequest struct {
	// Ratings, each between 1 and 10
	Energy   int `json:"energy"`
	Strength int `json:"strength"`
	Hunger   int `json:"hunger"`
	Mood     int `json:"mood"`
	Stress   int `json:"stress"`
	Sleep    int `json:"sleep"`
	// Optional step count
	Steps *int `json:"steps,omitempty"`
}

// CheckInAddResponse represents a stored check-in with its notifications
// swagger:model CheckInAddResponse
type CheckInAddResponse struct {
	Entry         models.DailyCheckIn   `json:"entry"`
	Notifications []models.Notification `json:"notifications"`
}

// NewCheckInListHandler returns an HTTP handler listing check-ins.
// @Summary List daily check-ins
// @Tags checkins
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.DailyCheckIn "Check-ins in insertion order"
// @Router /checkins [get]
func NewCheckInListHandler(svc CheckInManager) http.HandlerFunc {
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

// NewCheckInAddHandler returns an HTTP handler storing a daily check-in.
// @Summary Submit a daily check-in
// @Description Appends a check-in dated today and returns the progress notifications it triggered.
// @Tags checkins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param checkInAddRequest body handlers.CheckInAddRequest true "Ratings to store"
// @Success 201 {object} handlers.CheckInAddResponse "Check-in stored"
// @Failure 400 {object} handlers.ErrorResponse "Invalid ratings"
// @Router /checkins [post]
func NewCheckInAddHandler(svc CheckInManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID := middlewares.GetAccountIDFromContext(r.Context())

		var req CheckInAddRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		entry, notifications, err := svc.Add(r.Context(), accountID, services.CheckInInput{
			Energy:   req.Energy,
			Strength: req.Strength,
			Hunger:   req.Hunger,
			Mood:     req.Mood,
			Stress:   req.Stress,
			Sleep:    req.Sleep,
			Steps:    req.Steps,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidRating), errors.Is(err, services.ErrInvalidSteps):
				writeError(w, http.StatusBadRequest, err.Error())
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, CheckInAddResponse{
			Entry:         *entry,
			Notifications: notifications,
		})
	}
}
