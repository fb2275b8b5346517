package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/repository"
)

// loadJSON decodes the value at key into dst. It reports false with a nil
// error when the key is absent. Undecodable values wrap ErrCorruptData.
func loadJSON(ctx context.Context, store repository.KeyValueStore, key string, dst interface{}) (bool, error) {
	raw, err := store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false, fmt.Errorf("%w: key %s: %v", repository.ErrCorruptData, key, err)
	}
	return true, nil
}

func saveJSON(ctx context.Context, store repository.KeyValueStore, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	if err := store.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrWriteFailed, err)
	}
	return nil
}

func loadString(ctx context.Context, store repository.KeyValueStore, key string) (string, error) {
	raw, err := store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read %s: %w", key, err)
	}
	return raw, nil
}

func saveString(ctx context.Context, store repository.KeyValueStore, key, value string) error {
	if err := store.Set(ctx, key, value); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrWriteFailed, err)
	}
	return nil
}

func remove(ctx context.Context, store repository.KeyValueStore, key string) error {
	if err := store.Remove(ctx, key); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrWriteFailed, err)
	}
	return nil
}
