package repositories_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vitaalplan/vitaal-api/internal/models"
	"github.com/vitaalplan/vitaal-api/internal/repositories"
	"github.com/vitaalplan/vitaal-api/internal/storage"
)

func TestResetTokenRepository_ReplaceForEmail(t *testing.T) {
	repo := repositories.NewResetTokenRepository(storage.NewMemoryStore())
	ctx := context.Background()

	expires := time.Now().Add(time.Hour)
	first := models.ResetToken{Token: "tok-1", Email: "anna@example.com", ExpiresAt: expires}
	assert.NoError(t, repo.ReplaceForEmail(ctx, first))

	// a second request invalidates the first token for that email
	second := models.ResetToken{Token: "tok-2", Email: "Anna@Example.com", ExpiresAt: expires}
	assert.NoError(t, repo.ReplaceForEmail(ctx, second))

	got, err := repo.GetByToken(ctx, "tok-1")
	assert.NoError(t, err)
	assert.Nil(t, got)

	got, err = repo.GetByToken(ctx, "tok-2")
	assert.NoError(t, err)
	assert.NotNil(t, got)
	assert.Equal(t, "Anna@Example.com", got.Email)
}

func TestResetTokenRepository_ReplaceKeepsOtherEmails(t *testing.T) {
	repo := repositories.NewResetTokenRepository(storage.NewMemoryStore())
	ctx := context.Background()

	expires := time.Now().Add(time.Hour)
	assert.NoError(t, repo.ReplaceForEmail(ctx, models.ResetToken{Token: "tok-anna", Email: "anna@example.com", ExpiresAt: expires}))
	assert.NoError(t, repo.ReplaceForEmail(ctx, models.ResetToken{Token: "tok-bram", Email: "bram@example.com", ExpiresAt: expires}))

	got, err := repo.GetByToken(ctx, "tok-anna")
	assert.NoError(t, err)
	assert.NotNil(t, got)
}

func TestResetTokenRepository_DeleteByToken(t *testing.T) {
	repo := repositories.NewResetTokenRepository(storage.NewMemoryStore())
	ctx := context.Background()

	record := models.ResetToken{Token: "tok-1", Email: "anna@example.com", ExpiresAt: time.Now().Add(time.Hour)}
	assert.NoError(t, repo.ReplaceForEmail(ctx, record))
	assert.NoError(t, repo.DeleteByToken(ctx, "tok-1"))

	got, err := repo.GetByToken(ctx, "tok-1")
	assert.NoError(t, err)
	assert.Nil(t, got)

	// deleting a missing token is a no-op
	assert.NoError(t, repo.DeleteByToken(ctx, "tok-1"))
}
