package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/vitaalplan/vitaal-api/internal/logger"
	"github.com/vitaalplan/vitaal-api/internal/models"
)

// SessionRepository keeps the current-session account snapshot in Redis,
// keyed by account id with a TTL matching the session token lifetime.
type SessionRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSessionRepository(rdb *redis.Client, ttl time.Duration) *SessionRepository {
	return &SessionRepository{rdb: rdb, ttl: ttl}
}

func sessionKey(accountID uuid.UUID) string {
	return "session:" + accountID.String()
}

// Save stores the account snapshot as the live session for that account.
func (r *SessionRepository) Save(ctx context.Context, account *models.Account) error {
	doc, err := json.Marshal(account)
	if err != nil {
		return err
	}

	err = r.rdb.Set(ctx, sessionKey(account.AccountID), doc, r.ttl).Err()
	logger.Log.Infow("session saved", "account_id", account.AccountID, "error", err)
	return err
}

// Get returns the session snapshot for the account, or nil if none is live.
func (r *SessionRepository) Get(ctx context.Context, accountID uuid.UUID) (*models.Account, error) {
	doc, err := r.rdb.Get(ctx, sessionKey(accountID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to read session", "account_id", accountID, "error", err)
		return nil, err
	}

	var account models.Account
	if err := json.Unmarshal(doc, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// Delete clears the session for the account. Idempotent.
func (r *SessionRepository) Delete(ctx context.Context, accountID uuid.UUID) error {
	err := r.rdb.Del(ctx, sessionKey(accountID)).Err()
	logger.Log.Infow("session cleared", "account_id", accountID, "error", err)
	return err
}
