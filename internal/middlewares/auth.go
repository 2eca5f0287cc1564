package middlewares

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/vitaalplan/vitaal-api/internal/logger"
)

// Tokener defines the minimal token interface needed by the middleware.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetAccountID(ctx context.Context, tokenString string) (uuid.UUID, error)
}

// AuthMiddleware validates the bearer token and stores the account id in
// the request context for downstream handlers.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			accountID, err := tokener.GetAccountID(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(SetAccountIDToContext(ctx, accountID)))
		})
	}
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var accountIDKey = contextKey{}

// SetAccountIDToContext stores the authenticated account id in the context.
func SetAccountIDToContext(ctx context.Context, accountID uuid.UUID) context.Context {
	return context.WithValue(ctx, accountIDKey, accountID)
}

// GetAccountIDFromContext retrieves the authenticated account id.
// Returns uuid.Nil if the request was not authenticated.
func GetAccountIDFromContext(ctx context.Context) uuid.UUID {
	accountID, _ := ctx.Value(accountIDKey).(uuid.UUID)
	return accountID
}
