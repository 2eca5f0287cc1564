package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/vitaalplan/vitaal-api/internal/logger"
	"github.com/vitaalplan/vitaal-api/internal/models"
)

// ResetTokenStore is the password reset ledger.
type ResetTokenStore interface {
	GetByToken(ctx context.Context, token string) (*models.ResetToken, error)
	ReplaceForEmail(ctx context.Context, record models.ResetToken) error
	DeleteByToken(ctx context.Context, token string) error
}

// PasswordResetService issues and consumes password reset tokens.
type PasswordResetService struct {
	reader AccountReader
	writer AccountWriter
	tokens ResetTokenStore
}

// NewPasswordResetService creates a new PasswordResetService.
func NewPasswordResetService(reader AccountReader, writer AccountWriter, tokens ResetTokenStore) *PasswordResetService {
	return &PasswordResetService{
		reader: reader,
		writer: writer,
		tokens: tokens,
	}
}

// CreateToken issues a fresh reset token for the email, replacing any prior
// tokens for it. Unknown emails return an empty token with no error, so the
// caller answers identically either way and accounts cannot be enumerated.
func (svc *PasswordResetService) CreateToken(ctx context.Context, email string) (string, error) {
	account, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get account", "err", err)
		return "", err
	}
	if account == nil {
		logger.Log.Infow("reset requested for unknown email", "email", email)
		return "", nil
	}

	record := models.ResetToken{
		Token:     uuid.NewString(),
		Email:     account.Email,
		ExpiresAt: time.Now().Add(models.ResetTokenTTL),
	}

	if err := svc.tokens.ReplaceForEmail(ctx, record); err != nil {
		logger.Log.Errorw("failed to store reset token", "err", err)
		return "", err
	}

	logger.Log.Infow("reset token issued", "email", account.Email, "expires_at", record.ExpiresAt)
	return record.Token, nil
}

// ResetPassword consumes a token and stores a new credential hash. Tokens are
// single use: a successful reset deletes the record, and an expired token is
// deleted on sight.
func (svc *PasswordResetService) ResetPassword(ctx context.Context, token, newPassword string) error {
	record, err := svc.tokens.GetByToken(ctx, token)
	if err != nil {
		logger.Log.Errorw("failed to get reset token", "err", err)
		return err
	}
	if record == nil {
		return ErrInvalidOrExpiredToken
	}

	if time.Now().After(record.ExpiresAt) {
		if err := svc.tokens.DeleteByToken(ctx, token); err != nil {
			logger.Log.Errorw("failed to delete stale token", "err", err)
			return err
		}
		return ErrTokenExpired
	}

	account, err := svc.reader.GetByEmail(ctx, record.Email)
	if err != nil {
		return err
	}
	if account == nil {
		return ErrAccountNotFound
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	account.PasswordHash = string(hashed)
	account.UpdatedAt = time.Now()
	if err := svc.writer.Save(ctx, account); err != nil {
		logger.Log.Errorw("failed to save account", "err", err)
		return err
	}

	return svc.tokens.DeleteByToken(ctx, token)
}
