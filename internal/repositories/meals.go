package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/vitaalplan/vitaal-api/internal/logger"
	"github.com/vitaalplan/vitaal-api/internal/models"
	"github.com/vitaalplan/vitaal-api/internal/storage"
)

// MealRepository stores meal entries partitioned by account id.
type MealRepository struct {
	store storage.DocStore
}

func NewMealRepository(store storage.DocStore) *MealRepository {
	return &MealRepository{store: store}
}

// List returns the account's meal entries in insertion order, empty never nil.
func (r *MealRepository) List(ctx context.Context, accountID uuid.UUID) ([]models.MealEntry, error) {
	partitions, err := loadPartitions[models.MealEntry](ctx, r.store, storage.KeyMeals)
	if err != nil {
		logger.Log.Errorw("failed to load meal partitions", "error", err)
		return nil, err
	}

	entries := partitions[accountID.String()]
	if entries == nil {
		entries = []models.MealEntry{}
	}
	return entries, nil
}

// Append adds the meal to the end of the account's partition.
func (r *MealRepository) Append(ctx context.Context, accountID uuid.UUID, entry models.MealEntry) error {
	partitions, err := loadPartitions[models.MealEntry](ctx, r.store, storage.KeyMeals)
	if err != nil {
		return err
	}

	key := accountID.String()
	partitions[key] = append(partitions[key], entry)

	err = persistPartitions(ctx, r.store, storage.KeyMeals, partitions)
	logger.Log.Infow("meal entry appended",
		"account_id", accountID,
		"entry_id", entry.EntryID,
		"error", err,
	)
	return err
}

// Remove deletes the meal with the given id. Missing ids are a no-op.
func (r *MealRepository) Remove(ctx context.Context, accountID, entryID uuid.UUID) error {
	partitions, err := loadPartitions[models.MealEntry](ctx, r.store, storage.KeyMeals)
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

	return persistPartitions(ctx, r.store, storage.KeyMeals, partitions)
}

// DropPartition removes the account's whole partition (account deletion).
func (r *MealRepository) DropPartition(ctx context.Context, accountID uuid.UUID) error {
	partitions, err := loadPartitions[models.MealEntry](ctx, r.store, storage.KeyMeals)
	if err != nil {
		return err
	}

	delete(partitions, accountID.String())
	return persistPartitions(ctx, r.store, storage.KeyMeals, partitions)
}
