package repository

import (
	"context"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
)

// CartRepository persists one cart per storage scope. Load returns an empty
// cart for an absent key; for unparsable data it returns an empty cart and
// an error wrapping ErrCorruptData.
type CartRepository interface {
	Load(ctx context.Context, scope string) (*entity.Cart, error)
	Save(ctx context.Context, scope string, cart *entity.Cart) error
	Delete(ctx context.Context, scope string) error
}

// WishlistRepository follows the same contract as CartRepository.
type WishlistRepository interface {
	Load(ctx context.Context, scope string) (*entity.Wishlist, error)
	Save(ctx context.Context, scope string, wishlist *entity.Wishlist) error
	Delete(ctx context.Context, scope string) error
}
