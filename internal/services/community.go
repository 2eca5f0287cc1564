package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vitaalplan/vitaal-api/internal/logger"
	"github.com/vitaalplan/vitaal-api/internal/models"
)

var (
	// ErrEmptyPostBody is returned when a post has no text.
	ErrEmptyPostBody = errors.New("post body must not be empty")
	// ErrPostNotFound is returned when a reaction targets a missing post.
	ErrPostNotFound = errors.New("post not found")
)

// PostStore defines the shared community feed store.
type PostStore interface {
	List(ctx context.Context) ([]models.Post, error)
	Append(ctx context.Context, post models.Post) error
	AddReaction(ctx context.Context, postID uuid.UUID) (*models.Post, error)
}

// CommunityService manages the shared feed. Reactions are a point source,
// so reacting runs the progress aggregator for the reactor.
type CommunityService struct {
	posts    PostStore
	accounts AccountReader
	progress ProgressRecorder
}

// NewCommunityService creates a new CommunityService.
func NewCommunityService(posts PostStore, accounts AccountReader, progress ProgressRecorder) *CommunityService {
	return &CommunityService{posts: posts, accounts: accounts, progress: progress}
}

// ListPosts returns the whole feed in insertion order.
func (svc *CommunityService) ListPosts(ctx context.Context) ([]models.Post, error) {
	return svc.posts.List(ctx)
}

// CreatePost appends a post authored by the account.
func (svc *CommunityService) CreatePost(ctx context.Context, accountID uuid.UUID, body string) (*models.Post, error) {
	if strings.TrimSpace(body) == "" {
		return nil, ErrEmptyPostBody
	}

	account, err := svc.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	post := models.Post{
		PostID:    uuid.New(),
		AccountID: accountID,
		Author:    account.Profile.DisplayName,
		Date:      time.Now().Format(models.DateLayout),
		Body:      body,
	}

	if err := svc.posts.Append(ctx, post); err != nil {
		logger.Log.Errorw("failed to append post", "account_id", accountID, "err", err)
		return nil, err
	}

	return &post, nil
}

// React increments the post's reaction count and awards the reactor the
// reaction points.
func (svc *CommunityService) React(ctx context.Context, accountID, postID uuid.UUID) (*models.Post, []models.Notification, error) {
	post, err := svc.posts.AddReaction(ctx, postID)
	if err != nil {
		logger.Log.Errorw("failed to add reaction", "post_id", postID, "err", err)
		return nil, nil, err
	}
	if post == nil {
		return nil, nil, ErrPostNotFound
	}

	notifications, err := svc.progress.RecordAction(ctx, accountID, models.ActionReaction)
	if err != nil {
		return nil, nil, err
	}

	return post, notifications, nil
}
