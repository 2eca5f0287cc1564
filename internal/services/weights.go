package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/vitaalplan/vitaal-api/internal/logger"
	"github.com/vitaalplan/vitaal-api/internal/models"
)

// ErrInvalidWeight is returned for non-positive weight values.
var ErrInvalidWeight = errors.New("weight must be positive")

// WeightStore defines the weight entry record store.
type WeightStore interface {
	List(ctx context.Context, accountID uuid.UUID) ([]models.WeightEntry, error)
	Append(ctx context.Context, accountID uuid.UUID, entry models.WeightEntry) error
	Remove(ctx context.Context, accountID, entryID uuid.UUID) error
}

// WeightService manages an account's weight log.
type WeightService struct {
	store    WeightStore
	progress ProgressRecorder
}

// NewWeightService creates a new WeightService.
func NewWeightService(store WeightStore, progress ProgressRecorder) *WeightService {
	return &WeightService{store: store, progress: progress}
}

// List returns the account's weight entries in insertion order. Consumers
// sort by date where a chronological view is needed.
func (svc *WeightService) List(ctx context.Context, accountID uuid.UUID) ([]models.WeightEntry, error) {
	return svc.store.List(ctx, accountID)
}

// Add appends a weight entry dated today and runs the progress aggregator.
func (svc *WeightService) Add(ctx context.Context, accountID uuid.UUID, weight float64) (*models.WeightEntry, []models.Notification, error) {
	if weight <= 0 {
		return nil, nil, ErrInvalidWeight
	}

	entry := models.WeightEntry{
		EntryID: uuid.New(),
		Date:    time.Now().Format(models.DateLayout),
		Weight:  weight,
	}

	if err := svc.store.Append(ctx, accountID, entry); err != nil {
		logger.Log.Errorw("failed to append weight entry", "account_id", accountID, "err", err)
		return nil, nil, err
	}

	notifications, err := svc.progress.RecordAction(ctx, accountID, models.ActionWeight)
	if err != nil {
		return nil, nil, err
	}

	return &entry, notifications, nil
}

// Delete removes the entry with the given id. Missing ids are a no-op.
func (svc *WeightService) Delete(ctx context.Context, accountID, entryID uuid.UUID) error {
	return svc.store.Remove(ctx, accountID, entryID)
}
