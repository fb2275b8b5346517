package kvstore

import (
	"context"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/repository"
)

type wishlistRepository struct {
	store repository.KeyValueStore
	keys  Keys
}

func NewWishlistRepository(store repository.KeyValueStore, keys Keys) repository.WishlistRepository {
	return &wishlistRepository{store: store, keys: keys}
}

func (r *wishlistRepository) Load(ctx context.Context, scope string) (*entity.Wishlist, error) {
	var entries []entity.WishlistEntry
	if _, err := loadJSON(ctx, r.store, r.keys.Scoped(scope, wishlistKeyName), &entries); err != nil {
		return entity.NewWishlist(), err
	}
	wishlist := entity.NewWishlist(entries...)
	wishlist.Normalize()
	return wishlist, nil
}

func (r *wishlistRepository) Save(ctx context.Context, scope string, wishlist *entity.Wishlist) error {
	entries := []entity.WishlistEntry{}
	if wishlist != nil {
		entries = append(entries, wishlist.Entries...)
	}
	return saveJSON(ctx, r.store, r.keys.Scoped(scope, wishlistKeyName), entries)
}

func (r *wishlistRepository) Delete(ctx context.Context, scope string) error {
	return remove(ctx, r.store, r.keys.Scoped(scope, wishlistKeyName))
}
