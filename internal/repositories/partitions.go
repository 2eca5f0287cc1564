package repositories

import (
	"context"
	"encoding/json"

	"github.com/vitaalplan/vitaal-api/internal/storage"
)

// Per-account record collections are stored as one document per type:
// a map from account id to that account's insertion-ordered partition.

func loadPartitions[T any](ctx context.Context, store storage.DocStore, key string) (map[string][]T, error) {
	doc, err := store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return map[string][]T{}, nil
	}

	var partitions map[string][]T
	if err := json.Unmarshal(doc, &partitions); err != nil {
		return nil, err
	}
	if partitions == nil {
		partitions = map[string][]T{}
	}
	return partitions, nil
}

func persistPartitions[T any](ctx context.Context, store storage.DocStore, key string, partitions map[string][]T) error {
	doc, err := json.Marshal(partitions)
	if err != nil {
		return err
	}
	return store.Set(ctx, key, doc)
}
