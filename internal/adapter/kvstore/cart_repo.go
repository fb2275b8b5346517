package kvstore

import (
	"context"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/repository"
)

type cartRepository struct {
	store repository.KeyValueStore
	keys  Keys
}

func NewCartRepository(store repository.KeyValueStore, keys Keys) repository.CartRepository {
	return &cartRepository{store: store, keys: keys}
}

func (r *cartRepository) Load(ctx context.Context, scope string) (*entity.Cart, error) {
	var items []entity.CartLineItem
	if _, err := loadJSON(ctx, r.store, r.keys.Scoped(scope, cartKeyName), &items); err != nil {
		return entity.NewCart(), err
	}
	cart := entity.NewCart(items...)
	cart.Normalize()
	return cart, nil
}

func (r *cartRepository) Save(ctx context.Context, scope string, cart *entity.Cart) error {
	items := []entity.CartLineItem{}
	if cart != nil {
		items = append(items, cart.Items...)
	}
	return saveJSON(ctx, r.store, r.keys.Scoped(scope, cartKeyName), items)
}

func (r *cartRepository) Delete(ctx context.Context, scope string) error {
	return remove(ctx, r.store, r.keys.Scoped(scope, cartKeyName))
}
