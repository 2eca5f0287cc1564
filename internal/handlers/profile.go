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

// ProfileUpdater applies a partial profile update.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, accountID uuid.UUID, patch models.ProfilePatch) (*models.Account, error)
}

// AccountDeleter removes an account and everything it owns.
type AccountDeleter interface {
	DeleteAccount(ctx context.Context, accountID uuid.UUID) error
}

// NewProfileUpdateHandler returns an HTTP handler for partial profile updates.
// Unknown fields in the body are rejected.
// @Summary Update profile
// @Description Merges the provided fields into the stored profile; absent fields are retained.
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param patch body models.ProfilePatch true "Profile patch"
// @Success 200 {object} models.Account "Updated account"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 404 {object} handlers.ErrorResponse "Account not found"
// @Router /profile [patch]
func NewProfileUpdateHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID := middlewares.GetAccountIDFromContext(r.Context())

		var patch models.ProfilePatch
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&patch); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		account, err := svc.UpdateProfile(r.Context(), accountID, patch)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrAccountNotFound):
				writeError(w, http.StatusNotFound, services.ErrAccountNotFound.Error())
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, account)
	}
}

// NewAccountDeleteHandler returns an HTTP handler for full account deletion.
// @Summary Delete account
// @Description Removes the account and all its weight, check-in, and meal records, and logs it out.
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string "Account deleted"
// @Failure 404 {object} handlers.ErrorResponse "Account not found"
// @Router /account [delete]
func NewAccountDeleteHandler(svc AccountDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID := middlewares.GetAccountIDFromContext(r.Context())

		if err := svc.DeleteAccount(r.Context(), accountID); err != nil {
			switch {
			case errors.Is(err, services.ErrAccountNotFound):
				writeError(w, http.StatusNotFound, services.ErrAccountNotFound.Error())
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"message": "Account deleted"})
	}
}
