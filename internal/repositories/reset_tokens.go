package repositories

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/vitaalplan/vitaal-api/internal/logger"
	"github.com/vitaalplan/vitaal-api/internal/models"
	"github.com/vitaalplan/vitaal-api/internal/storage"
)

// ResetTokenRepository stores the reset-token ledger as one document.
type ResetTokenRepository struct {
	store storage.DocStore
}

func NewResetTokenRepository(store storage.DocStore) *ResetTokenRepository {
	return &ResetTokenRepository{store: store}
}

func (r *ResetTokenRepository) load(ctx context.Context) ([]models.ResetToken, error) {
	doc, err := r.store.Get(ctx, storage.KeyResetTokens)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return []models.ResetToken{}, nil
	}

	var tokens []models.ResetToken
	if err := json.Unmarshal(doc, &tokens); err != nil {
		return nil, err
	}
	return tokens, nil
}

func (r *ResetTokenRepository) persist(ctx context.Context, tokens []models.ResetToken) error {
	doc, err := json.Marshal(tokens)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, storage.KeyResetTokens, doc)
}

// GetByToken returns the record for the token value, or nil if none exists.
func (r *ResetTokenRepository) GetByToken(ctx context.Context, token string) (*models.ResetToken, error) {
	tokens, err := r.load(ctx)
	if err != nil {
		logger.Log.Errorw("failed to load reset tokens", "error", err)
		return nil, err
	}

	for i := range tokens {
		if tokens[i].Token == token {
			return &tokens[i], nil
		}
	}
	return nil, nil
}

// ReplaceForEmail removes any tokens held for the record's email and stores
// the new record, keeping at most one live token per email.
func (r *ResetTokenRepository) ReplaceForEmail(ctx context.Context, record models.ResetToken) error {
	tokens, err := r.load(ctx)
	if err != nil {
		return err
	}

	folded := strings.ToLower(record.Email)
	kept := tokens[:0]
	for _, t := range tokens {
		if strings.ToLower(t.Email) != folded {
			kept = append(kept, t)
		}
	}
	kept = append(kept, record)

	err = r.persist(ctx, kept)
	logger.Log.Infow("reset token replaced", "email", record.Email, "error", err)
	return err
}

// DeleteByToken removes the record for the token value. Missing is a no-op.
func (r *ResetTokenRepository) DeleteByToken(ctx context.Context, token string) error {
	tokens, err := r.load(ctx)
	if err != nil {
		return err
	}

	kept := tokens[:0]
	for _, t := range tokens {
		if t.Token != token {
			kept = append(kept, t)
		}
	}

	return r.persist(ctx, kept)
}
