package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/vitaalplan/vitaal-api/internal/logger"
	"github.com/vitaalplan/vitaal-api/internal/middlewares"
	"github.com/vitaalplan/vitaal-api/internal/models"
	"github.com/vitaalplan/vitaal-api/internal/services"
)

// CommunityManager defines the feed operations used by the handlers.
type CommunityManager interface {
	ListPosts(ctx context.Context) ([]models.Post, error)
	CreatePost(ctx context.Context, accountID uuid.UUID, body string) (*models.Post, error)
	React(ctx context.Context, accountID, postID uuid.UUID) (*models.Post, []models.Notification, error)
}

// PostCreateRequest represents the JSON body for a feed post
// swagger:model PostCreateRequest
type PostCreateRequest struct {
	// Post text
	// required: true
	// example: Eerste week volbracht!
	Body string `json:"body"`
}

// ReactResponse represents the post after a reaction, with notifications
// swagger:model ReactResponse
type ReactResponse struct {
	Post          models.Post           `json:"post"`
	Notifications []models.Notification `json:"notifications"`
}

// NewPostListHandler returns an HTTP handler listing the shared feed.
// @Summary List community posts
// @Tags community
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Post "Posts in insertion order"
// @Router /posts [get]
func NewPostListHandler(svc CommunityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := svc.ListPosts(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, posts)
	}
}

// NewPostCreateHandler returns an HTTP handler creating a feed post.
// @Summary Create a community post
// @Tags community
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param postCreateRequest body handlers.PostCreateRequest true "Post to create"
// @Success 201 {object} models.Post "Post created"
// @Failure 400 {object} handlers.ErrorResponse "Empty post body"
// @Router /posts [post]
func NewPostCreateHandler(svc CommunityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID := middlewares.GetAccountIDFromContext(r.Context())

		var req PostCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		post, err := svc.CreatePost(r.Context(), accountID, req.Body)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmptyPostBody):
				writeError(w, http.StatusBadRequest, services.ErrEmptyPostBody.Error())
			case errors.Is(err, services.ErrAccountNotFound):
				writeError(w, http.StatusNotFound, services.ErrAccountNotFound.Error())
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, post)
	}
}

// NewReactHandler returns an HTTP handler adding a reaction to a post.
// @Summary React to a post
// @Description Increments the post's reaction count and awards the reactor points.
// @Tags community
// @Produce json
// @Security BearerAuth
// @Param postID path string true "Post id"
// @Success 200 {object} handlers.ReactResponse "Reaction added"
// @Failure 400 {object} handlers.ErrorResponse "Invalid post id"
// @Failure 404 {object} handlers.ErrorResponse "Post not found"
// @Router /posts/{postID}/reactions [post]
func NewReactHandler(svc CommunityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID := middlewares.GetAccountIDFromContext(r.Context())

		postID, err := uuid.Parse(chi.URLParam(r, "postID"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid post id")
			return
		}

		post, notifications, err := svc.React(r.Context(), accountID, postID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPostNotFound):
				writeError(w, http.StatusNotFound, services.ErrPostNotFound.Error())
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, ReactResponse{
			Post:          *post,
			Notifications: notifications,
		})
	}
}
