package kvstore

import (
	"context"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/repository"
)

type preferenceRepository struct {
	store repository.KeyValueStore
	keys  Keys
}

func NewPreferenceRepository(store repository.KeyValueStore, keys Keys) repository.PreferenceRepository {
	return &preferenceRepository{store: store, keys: keys}
}

func (r *preferenceRepository) GetShippingMethod(ctx context.Context, scope string) (string, error) {
	return loadString(ctx, r.store, r.keys.Scoped(scope, shippingKeyName))
}

func (r *preferenceRepository) SaveShippingMethod(ctx context.Context, scope, method string) error {
	return saveString(ctx, r.store, r.keys.Scoped(scope, shippingKeyName), method)
}
