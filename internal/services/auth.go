package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/vitaalplan/vitaal-api/internal/logger"
	"github.com/vitaalplan/vitaal-api/internal/models"
)

// Error variables
var (
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrAccountNotFound       = errors.New("account not found")
	ErrInvalidOrExpiredToken = errors.New("invalid or expired reset token")
	ErrTokenExpired          = errors.New("reset token expired")
)

// AccountReader defines read-only operations for accounts.
// Lookups return (nil, nil) when no account matches.
type AccountReader interface {
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	GetByID(ctx context.Context, accountID uuid.UUID) (*models.Account, error)
}

// AccountWriter defines write operations for accounts.
type AccountWriter interface {
	Save(ctx context.Context, account *models.Account) error
	Delete(ctx context.Context, accountID uuid.UUID) error
}

// SessionStore holds the live session snapshot per account.
type SessionStore interface {
	Save(ctx context.Context, account *models.Account) error
	Get(ctx context.Context, accountID uuid.UUID) (*models.Account, error)
	Delete(ctx context.Context, accountID uuid.UUID) error
}

// TokenGenerator issues session tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, accountID uuid.UUID) (string, error)
}

// PartitionDropper removes an account's slice of a record collection.
type PartitionDropper interface {
	DropPartition(ctx context.Context, accountID uuid.UUID) error
}

// AuthService handles registration, login, sessions, and profile updates.
type AuthService struct {
	reader   AccountReader
	writer   AccountWriter
	sessions SessionStore
	tokens   TokenGenerator
	droppers []PartitionDropper
}

// NewAuthService creates a new AuthService. The droppers are the per-account
// record collections cascaded on account deletion.
func NewAuthService(
	reader AccountReader,
	writer AccountWriter,
	sessions SessionStore,
	tokens TokenGenerator,
	droppers ...PartitionDropper,
) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		sessions: sessions,
		tokens:   tokens,
		droppers: droppers,
	}
}

// Register creates a new account with defaulted gamification fields and
// establishes it as the current session.
func (svc *AuthService) Register(ctx context.Context, email, password string, profile models.Profile) (*models.Account, string, error) {
	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check email", "err", err)
		return nil, "", err
	}
	if existing != nil {
		logger.Log.Errorw("email already registered", "email", email)
		return nil, "", ErrEmailAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, "", err
	}

	profile.Points = 0
	profile.Level = models.StarterLevel
	profile.Badges = []string{}
	profile.ActiveChallenge = ""
	profile.OnboardingSeen = false

	now := time.Now()
	account := &models.Account{
		AccountID:    uuid.New(),
		Email:        email,
		PasswordHash: string(hashed),
		Profile:      profile,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := svc.writer.Save(ctx, account); err != nil {
		logger.Log.Errorw("failed to save account", "err", err)
		return nil, "", err
	}

	token, err := svc.establishSession(ctx, account)
	if err != nil {
		return nil, "", err
	}

	return account, token, nil
}

// Login authenticates an account and establishes its session. Unknown emails
// and wrong passwords fail identically, so callers cannot enumerate accounts.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.Account, string, error) {
	account, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get account", "err", err)
		return nil, "", err
	}
	if account == nil {
		logger.Log.Errorw("login for unknown email", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	token, err := svc.establishSession(ctx, account)
	if err != nil {
		return nil, "", err
	}

	return account, token, nil
}

func (svc *AuthService) establishSession(ctx context.Context, account *models.Account) (string, error) {
	token, err := svc.tokens.Generate(ctx, account.AccountID)
	if err != nil {
		logger.Log.Errorw("failed to generate session token", "err", err)
		return "", err
	}
	if err := svc.sessions.Save(ctx, account); err != nil {
		logger.Log.Errorw("failed to save session", "err", err)
		return "", err
	}
	return token, nil
}

// Logout clears the account's session marker. Idempotent.
func (svc *AuthService) Logout(ctx context.Context, accountID uuid.UUID) error {
	return svc.sessions.Delete(ctx, accountID)
}

// CurrentSession returns the live session snapshot, or nil if none exists.
func (svc *AuthService) CurrentSession(ctx context.Context, accountID uuid.UUID) (*models.Account, error) {
	return svc.sessions.Get(ctx, accountID)
}

// UpdateProfile merges the patch into the stored profile. Nil patch fields
// leave the stored values untouched. If the account has a live session its
// snapshot is refreshed.
func (svc *AuthService) UpdateProfile(ctx context.Context, accountID uuid.UUID, patch models.ProfilePatch) (*models.Account, error) {
	account, err := svc.reader.GetByID(ctx, accountID)
	if err != nil {
		logger.Log.Errorw("failed to get account", "err", err)
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	patch.Apply(&account.Profile)
	account.UpdatedAt = time.Now()

	if err := svc.writer.Save(ctx, account); err != nil {
		logger.Log.Errorw("failed to save account", "err", err)
		return nil, err
	}

	session, err := svc.sessions.Get(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if session != nil {
		if err := svc.sessions.Save(ctx, account); err != nil {
			logger.Log.Errorw("failed to refresh session", "err", err)
			return nil, err
		}
	}

	return account, nil
}

// DeleteAccount removes the account with all its record partitions and, if
// it was the current session, logs it out. Reset tokens are keyed by email
// and are left untouched.
func (svc *AuthService) DeleteAccount(ctx context.Context, accountID uuid.UUID) error {
	account, err := svc.reader.GetByID(ctx, accountID)
	if err != nil {
		return err
	}
	if account == nil {
		return ErrAccountNotFound
	}

	if err := svc.writer.Delete(ctx, accountID); err != nil {
		logger.Log.Errorw("failed to delete account", "err", err)
		return err
	}

	for _, dropper := range svc.droppers {
		if err := dropper.DropPartition(ctx, accountID); err != nil {
			logger.Log.Errorw("failed to drop partition", "account_id", accountID, "err", err)
			return err
		}
	}

	return svc.sessions.Delete(ctx, accountID)
}
