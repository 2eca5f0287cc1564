// Package storage provides the key-value document port every record store
// persists through. Values are opaque JSON documents; callers do whole-document
// read-modify-write with no concurrency guard (last write wins).
package storage

import "context"

// Document keys for the persisted collections.
const (
	KeyAccounts    = "accounts"
	KeyWeights     = "weights"
	KeyCheckIns    = "checkins"
	KeyMeals       = "meals"
	KeyResetTokens = "reset_tokens"
	KeyPosts       = "posts"
)

// DocStore is the persistence port. Get returns (nil, nil) when the key
// has never been written.
type DocStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, doc []byte) error
	Delete(ctx context.Context, key string) error
}
