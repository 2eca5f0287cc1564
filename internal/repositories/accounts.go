package repositories

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	"github.com/vitaalplan/vitaal-api/internal/logger"
	"github.com/vitaalplan/vitaal-api/internal/models"
	"github.com/vitaalplan/vitaal-api/internal/storage"
)

// AccountRepository stores the accounts collection as one document.
type AccountRepository struct {
	store storage.DocStore
}

func NewAccountRepository(store storage.DocStore) *AccountRepository {
	return &AccountRepository{store: store}
}

func (r *AccountRepository) load(ctx context.Context) ([]models.Account, error) {
	doc, err := r.store.Get(ctx, storage.KeyAccounts)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return []models.Account{}, nil
	}

	var accounts []models.Account
	if err := json.Unmarshal(doc, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (r *AccountRepository) persist(ctx context.Context, accounts []models.Account) error {
	doc, err := json.Marshal(accounts)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, storage.KeyAccounts, doc)
}

// GetByEmail returns the account whose email matches case-insensitively,
// or nil if none does.
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	accounts, err := r.load(ctx)
	if err != nil {
		logger.Log.Errorw("failed to load accounts", "error", err)
		return nil, err
	}

	folded := strings.ToLower(email)
	for i := range accounts {
		if strings.ToLower(accounts[i].Email) == folded {
			return &accounts[i], nil
		}
	}
	return nil, nil
}

// GetByID returns the account with the given id, or nil if none exists.
func (r *AccountRepository) GetByID(ctx context.Context, accountID uuid.UUID) (*models.Account, error) {
	accounts, err := r.load(ctx)
	if err != nil {
		logger.Log.Errorw("failed to load accounts", "error", err)
		return nil, err
	}

	for i := range accounts {
		if accounts[i].AccountID == accountID {
			return &accounts[i], nil
		}
	}
	return nil, nil
}

// Save inserts the account, or replaces the stored record with the same id.
func (r *AccountRepository) Save(ctx context.Context, account *models.Account) error {
	accounts, err := r.load(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range accounts {
		if accounts[i].AccountID == account.AccountID {
			accounts[i] = *account
			replaced = true
			break
		}
	}
	if !replaced {
		accounts = append(accounts, *account)
	}

	err = r.persist(ctx, accounts)
	logger.Log.Infow("account saved",
		"account_id", account.AccountID,
		"replaced", replaced,
		"error", err,
	)
	return err
}

// Delete removes the account with the given id. Missing ids are a no-op.
func (r *AccountRepository) Delete(ctx context.Context, accountID uuid.UUID) error {
	accounts, err := r.load(ctx)
	if err != nil {
		return err
	}

	kept := accounts[:0]
	for _, a := range accounts {
		if a.AccountID != accountID {
			kept = append(kept, a)
		}
	}

	err = r.persist(ctx, kept)
	logger.Log.Infow("account deleted", "account_id", accountID, "error", err)
	return err
}
