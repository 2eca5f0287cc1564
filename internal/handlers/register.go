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

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, email, password string, profile models.Profile) (*models.Account, string, error)
}

// RegisterRequest represents the JSON body for account registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Email
	// required: true
	// example: jan@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password"`

	// Display name
	// example: Jan
	DisplayName string `json:"display_name"`

	// Starting weight in kilograms
	// example: 90
	StartWeight float64 `json:"start_weight"`

	// Goal weight in kilograms
	// example: 80
	GoalWeight float64 `json:"goal_weight"`

	// Height in centimeters
	// example: 180
	Height float64 `json:"height"`

	// Gender
	// example: man
	Gender string `json:"gender"`

	// Theme preference
	// example: light
	Theme string `json:"theme"`

	// Care path identifier
	// example: glp1
	CarePath string `json:"care_path"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Session token
	Token string `json:"token"`
	// The created account
	Account models.Account `json:"account"`
}

// NewRegisterHandler returns an HTTP handler for account registration.
// @Summary Register a new account
// @Description Creates an account with a unique email, hashes the password, defaults gamification fields, and establishes the session.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "Registration request"
// @Success 201 {object} handlers.RegisterResponse "Account created"
// @Failure 400 {object} handlers.ErrorResponse "Email already exists / invalid request"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Email == "" || req.Password == "" {
			writeError(w, http.StatusBadRequest, "email and password are required")
			return
		}

		profile := models.Profile{
			DisplayName: req.DisplayName,
			StartWeight: req.StartWeight,
			GoalWeight:  req.GoalWeight,
			Height:      req.Height,
			Gender:      req.Gender,
			Theme:       req.Theme,
			CarePath:    req.CarePath,
		}

		account, token, err := svc.Register(r.Context(), req.Email, req.Password, profile)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmailAlreadyExists):
				writeError(w, http.StatusBadRequest, services.ErrEmailAlreadyExists.Error())
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, RegisterResponse{
			Token:   token,
			Account: *account,
		})
	}
}
