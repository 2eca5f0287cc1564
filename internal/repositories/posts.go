package repositories

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/vitaalplan/vitaal-api/internal/logger"
	"github.com/vitaalplan/vitaal-api/internal/models"
	"github.com/vitaalplan/vitaal-api/internal/storage"
)

// PostRepository stores the shared community feed as one document.
type PostRepository struct {
	store storage.DocStore
}

func NewPostRepository(store storage.DocStore) *PostRepository {
	return &PostRepository{store: store}
}

func (r *PostRepository) load(ctx context.Context) ([]models.Post, error) {
	doc, err := r.store.Get(ctx, storage.KeyPosts)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return []models.Post{}, nil
	}

	var posts []models.Post
	if err := json.Unmarshal(doc, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *PostRepository) persist(ctx context.Context, posts []models.Post) error {
	doc, err := json.Marshal(posts)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, storage.KeyPosts, doc)
}

// List returns every post in insertion order, empty never nil.
func (r *PostRepository) List(ctx context.Context) ([]models.Post, error) {
	posts, err := r.load(ctx)
	if err != nil {
		logger.Log.Errorw("failed to load posts", "error", err)
		return nil, err
	}
	return posts, nil
}

// Append adds the post to the end of the feed.
func (r *PostRepository) Append(ctx context.Context, post models.Post) error {
	posts, err := r.load(ctx)
	if err != nil {
		return err
	}

	posts = append(posts, post)

	err = r.persist(ctx, posts)
	logger.Log.Infow("post appended", "post_id", post.PostID, "error", err)
	return err
}

// AddReaction increments the reaction count of the post and returns the
// updated record, or nil if the post does not exist.
func (r *PostRepository) AddReaction(ctx context.Context, postID uuid.UUID) (*models.Post, error) {
	posts, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range posts {
		if posts[i].PostID == postID {
			posts[i].Reactions++
			if err := r.persist(ctx, posts); err != nil {
				return nil, err
			}
			return &posts[i], nil
		}
	}
	return nil, nil
}
