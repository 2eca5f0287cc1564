package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/vitaalplan/vitaal-api/internal/logger"
	"github.com/vitaalplan/vitaal-api/internal/models"
	"github.com/vitaalplan/vitaal-api/internal/storage"
)

// WeightRepository stores weight entries partitioned by account id.
type WeightRepository struct {
	store storage.DocStore
}

func NewWeightRepository(store storage.DocStore) *WeightRepository {
	return &WeightRepository{store: store}
}

// List returns the account's weight entries in insertion order.
// Accounts without entries get an empty slice, never nil.
func (r *WeightRepository) List(ctx context.Context, accountID uuid.UUID) ([]models.WeightEntry, error) {
	partitions, err := loadPartitions[models.WeightEntry](ctx, r.store, storage.KeyWeights)
	if err != nil {
		logger.Log.Errorw("failed to load weight partitions", "error", err)
		return nil, err
	}

	entries := partitions[accountID.String()]
	if entries == nil {
		entries = []models.WeightEntry{}
	}
	return entries, nil
}

// Append adds the entry to the end of the account's partition.
func (r *WeightRepository) Append(ctx context.Context, accountID uuid.UUID, entry models.WeightEntry) error {
	partitions, err := loadPartitions[models.WeightEntry](ctx, r.store, storage.KeyWeights)
	if err != nil {
		return err
	}

	key := accountID.String()
	partitions[key] = append(partitions[key], entry)

	err = persistPartitions(ctx, r.store, storage.KeyWeights, partitions)
	logger.Log.Infow("weight entry appended",
		"account_id", accountID,
		"entry_id", entry.EntryID,
		"error", err,
	)
	return err
}

// Remove deletes the entry with the given id. Missing ids are a no-op.
func (r *WeightRepository) Remove(ctx context.Context, accountID, entryID uuid.UUID) error {
	partitions, err := loadPartitions[models.WeightEntry](ctx, r.store, storage.KeyWeights)
	if err != nil {
		return err
	}

	key := accountID.String()
	entries := partitions[key]
	kept := entries[:0]
	for _, e := range entries {
		if e.EntryID != entryID {
			kept = append(kept, e)
		}
	}
	partitions[key] = kept

	return persistPartitions(ctx, r.store, storage.KeyWeights, partitions)
}

// DropPartition removes the account's whole partition (account deletion).
func (r *WeightRepository) DropPartition(ctx context.Context, accountID uuid.UUID) error {
	partitions, err := loadPartitions[models.WeightEntry](ctx, r.store, storage.KeyWeights)
	if err != nil {
		return err
	}

	delete(partitions, accountID.String())
	return persistPartitions(ctx, r.store, storage.KeyWeights, partitions)
}
