package repositories_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/vitaalplan/vitaal-api/internal/models"
	"github.com/vitaalplan/vitaal-api/internal/repositories"
	"github.com/vitaalplan/vitaal-api/internal/storage"
)

func TestCheckInRepository_AppendAndList(t *testing.T) {
	repo := repositories.NewCheckInRepository(storage.NewMemoryStore())
	ctx := context.Background()

	accountID := uuid.New()
	steps := 8500
	entry := models.DailyCheckIn{
		EntryID:  uuid.New(),
		Date:     "2026-08-30",
		Energy:   7,
		Strength: 6,
		Hunger:   4,
		Mood:     8,
		Stress:   3,
		Sleep:    7,
		Steps:    &steps,
	}
	assert.NoError(t, repo.Append(ctx, accountID, entry))

	entries, err := repo.List(ctx, accountID)
	assert.NoError(t, err)
	assert.Equal(t, []models.DailyCheckIn{entry}, entries)
}

func TestCheckInRepository_DropPartition(t *testing.T) {
	repo := repositories.NewCheckInRepository(storage.NewMemoryStore())
	ctx := context.Background()

	accountID := uuid.New()
	assert.NoError(t, repo.Append(ctx, accountID, models.DailyCheckIn{EntryID: uuid.New(), Energy: 5}))
	assert.NoError(t, repo.DropPartition(ctx, accountID))

	entries, err := repo.List(ctx, accountID)
	assert.NoError(t, err)
	assert.Empty(t, entries)
}
