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

func TestPostRepository_AppendAndList(t *testing.T) {
	repo := repositories.NewPostRepository(storage.NewMemoryStore())
	ctx := context.Background()

	posts, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)

	first := models.Post{PostID: uuid.New(), Author: "Anna", Body: "Hoi!"}
	second := models.Post{PostID: uuid.New(), Author: "Bram", Body: "Goed bezig!"}
	assert.NoError(t, repo.Append(ctx, first))
	assert.NoError(t, repo.Append(ctx, second))

	posts, err = repo.List(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []models.Post{first, second}, posts)
}

func TestPostRepository_AddReaction(t *testing.T) {
	repo := repositories.NewPostRepository(storage.NewMemoryStore())
	ctx := context.Background()

	post := models.Post{PostID: uuid.New(), Author: "Anna", Body: "Hoi!"}
	assert.NoError(t, repo.Append(ctx, post))

	updated, err := repo.AddReaction(ctx, post.PostID)
	assert.NoError(t, err)
	assert.Equal(t, 1, updated.Reactions)

	updated, err = repo.AddReaction(ctx, post.PostID)
	assert.NoError(t, err)
	assert.Equal(t, 2, updated.Reactions)

	// the increment is persisted
	posts, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 2, posts[0].Reactions)
}

func TestPostRepository_AddReaction_Missing(t *testing.T) {
	repo := repositories.NewPostRepository(storage.NewMemoryStore())
	ctx := context.Background()

	updated, err := repo.AddReaction(ctx, uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, updated)
}
