package models

import "time"

// ResetTokenTTL is the window in which a password reset token stays valid.
const ResetTokenTTL = time.Hour

// ResetToken maps an opaque token to an email address until it expires.
// At most one live token exists per email; issuing a new one replaces it.
type ResetToken struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}
