package repository

import "context"

// KeyValueStore is the string-keyed persistence primitive every repository
// is built on. Get returns ErrNotFound for an absent key; removing an absent
// key is not an error. There are no multi-key transactions.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
