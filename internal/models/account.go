package models

import (
	"time"

	"github.com/google/uuid"
)

// Account represents a registered user: credentials plus the embedded profile.
type Account struct {
	AccountID    uuid.UUID `json:"account_id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Profile      Profile   `json:"profile"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Profile holds display and gamification state for an account.
// Level must always equal the tier whose point range contains Points.
type Profile struct {
	DisplayName     string   `json:"display_name"`
	StartWeight     float64  `json:"start_weight"`
	GoalWeight      float64  `json:"goal_weight"`
	Height          float64  `json:"height"`
	Gender          string   `json:"gender"`
	Theme           string   `json:"theme"`
	CarePath        string   `json:"care_path"`
	Points          int      `json:"points"`
	Level           string   `json:"level"`
	Badges          []string `json:"badges"`
	ActiveChallenge string   `json:"active_challenge,omitempty"`
	OnboardingSeen  bool     `json:"onboarding_seen"`
}

// ProfilePatch is a partial profile update. Nil fields are left untouched.
type ProfilePatch struct {
	DisplayName     *string   `json:"display_name,omitempty"`
	StartWeight     *float64  `json:"start_weight,omitempty"`
	GoalWeight      *float64  `json:"goal_weight,omitempty"`
	Height          *float64  `json:"height,omitempty"`
	Gender          *string   `json:"gender,omitempty"`
	Theme           *string   `json:"theme,omitempty"`
	CarePath        *string   `json:"care_path,omitempty"`
	Points          *int      `json:"points,omitempty"`
	Level           *string   `json:"level,omitempty"`
	Badges          *[]string `json:"badges,omitempty"`
	ActiveChallenge *string   `json:"active_challenge,omitempty"`
	OnboardingSeen  *bool     `json:"onboarding_seen,omitempty"`
}

// Apply merges the patch into the profile, field by field.
func (p ProfilePatch) Apply(profile *Profile) {
	if p.DisplayName != nil {
		profile.DisplayName = *p.DisplayName
	}
	if p.StartWeight != nil {
		profile.StartWeight = *p.StartWeight
	}
	if p.GoalWeight != nil {
		profile.GoalWeight = *p.GoalWeight
	}
	if p.Height != nil {
		profile.Height = *p.Height
	}
	if p.Gender != nil {
		profile.Gender = *p.Gender
	}
	if p.Theme != nil {
		profile.Theme = *p.Theme
	}
	if p.CarePath != nil {
		profile.CarePath = *p.CarePath
	}
	if p.Points != nil {
		profile.Points = *p.Points
	}
	if p.Level != nil {
		profile.Level = *p.Level
	}
	if p.Badges != nil {
		profile.Badges = *p.Badges
	}
	if p.ActiveChallenge != nil {
		profile.ActiveChallenge = *p.ActiveChallenge
	}
	if p.OnboardingSeen != nil {
		profile.OnboardingSeen = *p.OnboardingSeen
	}
}
