package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vitaalplan/vitaal-api/internal/logger"
	"github.com/vitaalplan/vitaal-api/internal/services"
)

// resetRequestedMessage is returned for every reset request, whether or not
// the email is known, so accounts cannot be enumerated.
const resetRequestedMessage = "If this account exists, an email was sent"

// ResetTokenCreator issues reset tokens. Unknown emails yield an empty token.
type ResetTokenCreator interface {
	CreateToken(ctx context.Context, email string) (string, error)
}

// PasswordResetter consumes a reset token.
type PasswordResetter interface {
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// ResetRequestBody represents the JSON body for requesting a reset
// swagger:model ResetRequestBody
type ResetRequestBody struct {
	// Email
	// required: true
	// example: jan@example.com
	Email string `json:"email"`
}

// ResetConfirmBody represents the JSON body for confirming a reset
// swagger:model ResetConfirmBody
type ResetConfirmBody struct {
	// Reset token
	// required: true
	Token string `json:"token"`

	// New password
	// required: true
	NewPassword string `json:"new_password"`
}

// NewResetRequestHandler returns an HTTP handler issuing reset tokens.
// The response is identical for known and unknown emails.
// @Summary Request a password reset
// @Tags auth
// @Accept json
// @Produce json
// @Param resetRequestBody body handlers.ResetRequestBody true "Email to reset"
// @Success 200 {object} map[string]string "Generic confirmation"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Router /password-reset [post]
func NewResetRequestHandler(svc ResetTokenCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResetRequestBody
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if _, err := svc.CreateToken(r.Context(), req.Email); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"message": resetRequestedMessage})
	}
}

// NewResetConfirmHandler returns an HTTP handler consuming a reset token.
// @Summary Confirm a password reset
// @Tags auth
// @Accept json
// @Produce json
// @Param resetConfirmBody body handlers.ResetConfirmBody true "Token and new password"
// @Success 200 {object} map[string]string "Password updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid or expired token"
// @Failure 404 {object} handlers.ErrorResponse "Account not found"
// @Router /password-reset/confirm [post]
func NewResetConfirmHandler(svc PasswordResetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResetConfirmBody
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if err := svc.ResetPassword(r.Context(), req.Token, req.NewPassword); err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidOrExpiredToken),
				errors.Is(err, services.ErrTokenExpired):
				writeError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, services.ErrAccountNotFound):
				writeError(w, http.StatusNotFound, services.ErrAccountNotFound.Error())
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"message": "Password updated"})
	}
}
