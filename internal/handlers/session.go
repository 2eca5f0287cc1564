package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/vitaalplan/vitaal-api/internal/logger"
	"github.com/vitaalplan/vitaal-api/internal/middlewares"
	"github.com/vitaalplan/vitaal-api/internal/models"
)

// SessionReader returns the live session snapshot, or nil when none exists.
type SessionReader interface {
	CurrentSession(ctx context.Context, accountID uuid.UUID) (*models.Account, error)
}

// Logouter clears the session marker.
type Logouter interface {
	Logout(ctx context.Context, accountID uuid.UUID) error
}

// NewSessionHandler returns an HTTP handler for reading the current session.
// @Summary Current session
// @Description Returns the session snapshot for the authenticated account.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Account "Session snapshot"
// @Failure 401 {object} handlers.ErrorResponse "No live session"
// @Router /me [get]
func NewSessionHandler(svc SessionReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID := middlewares.GetAccountIDFromContext(r.Context())

		account, err := svc.CurrentSession(r.Context(), accountID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if account == nil {
			writeError(w, http.StatusUnauthorized, "session expired")
			return
		}

		writeJSON(w, http.StatusOK, account)
	}
}

// NewLogoutHandler returns an HTTP handler for logging out. Idempotent.
// @Summary Log out
// @Description Clears the session snapshot for the authenticated account.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string "Logged out"
// @Router /logout [post]
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID := middlewares.GetAccountIDFromContext(r.Context())

		if err := svc.Logout(r.Context(), accountID); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
	}
}
