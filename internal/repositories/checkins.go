package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/vitaalplan/vitaal-api/internal/logger"
	"github.com/vitaalplan/vitaal-api/internal/models"
	"github.com/vitaalplan/vitaal-api/internal/storage"
)

// CheckInRepository stores daily check-ins partitioned by account id.
type CheckInRepository struct {
	store storage.DocStore
}

func NewCheckInRepository(store storage.DocStore) *CheckInRepository {
	return &CheckInRepository{store: store}
}

// List returns the account's check-ins in insertion order, empty never nil.
func (r *CheckInRepository) List(ctx context.Context, accountID uuid.UUID) ([]models.DailyCheckIn, error) {
	partitions, err := loadPartitions[models.DailyCheckIn](ctx, r.store, storage.KeyCheckIns)
	if err != nil {
		logger.Log.Errorw("failed to load check-in partitions", "error", err)
		return nil, err
	}

	entries := partitions[accountID.String()]
	if entries == nil {
		entries = []models.DailyCheckIn{}
	}
	return entries, nil
}

// Append adds the check-in to the end of the account's partition.
func (r *CheckInRepository) Append(ctx context.Context, accountID uuid.UUID, entry models.DailyCheckIn) error {
	partitions, err := loadPartitions[models.DailyCheckIn](ctx, r.store, storage.KeyCheckIns)
	if err != nil {
		return err
	}

	key := accountID.String()
	partitions[key] = append(partitions[key], entry)

	err = persistPartitions(ctx, r.store, storage.KeyCheckIns, partitions)
	logger.Log.Infow("check-in appended",
		"account_id", accountID,
		"entry_id", entry.EntryID,
		"error", err,
	)
	return err
}

// DropPartition removes the account's whole partition (account deletion).
func (r *CheckInRepository) DropPartition(ctx context.Context, accountID uuid.UUID) error {
	partitions, err := loadPartitions[models.DailyCheckIn](ctx, r.store, storage.KeyCheckIns)
	if err != nil {
		return err
	}

	delete(partitions, accountID.String())
	return persistPartitions(ctx, r.store, storage.KeyCheckIns, partitions)
}
