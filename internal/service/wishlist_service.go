package service

import (
	"context"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/metrics"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/repository"
)

const collectionWishlist = "wishlist"

type WishlistService interface {
	GetWishlist(ctx context.Context, scope string) []entity.WishlistEntry
	AddToWishlist(ctx context.Context, scope string, entry entity.WishlistEntry) bool
	RemoveFromWishlist(ctx context.Context, scope string, id int) bool
	IsInWishlist(ctx context.Context, scope string, id int) bool
	ClearWishlist(ctx context.Context, scope string) bool
	// ToggleWishlist reports whether the product is in the wishlist afterwards.
	// A failed write leaves membership as it was.
	ToggleWishlist(ctx context.Context, scope string, entry entity.WishlistEntry) bool
	MoveToCart(ctx context.Context, scope string, id int) bool
}

type wishlistService struct {
	wishlistRepo repository.WishlistRepository
	cart         CartService
	validator    *Validator
	log          logger.Logger
	metrics      *metrics.MetricsManager
}

func NewWishlistService(
	wishlistRepo repository.WishlistRepository,
	cart CartService,
	log logger.Logger,
	m *metrics.MetricsManager,
) WishlistService {
	return &wishlistService{
		wishlistRepo: wishlistRepo,
		cart:         cart,
		validator:    NewValidator(),
		log:          log,
		metrics:      m,
	}
}

func (s *wishlistService) load(ctx context.Context, scope string) *entity.Wishlist {
	wishlist, err := s.wishlistRepo.Load(ctx, scope)
	if err != nil {
		s.log.Errorf("Error loading wishlist for scope %s, treating it as empty: %v", scope, err)
		s.metrics.ObserveStorageError(collectionWishlist, storageErrorKind(err))
	}
	if wishlist == nil {
		wishlist = entity.NewWishlist()
	}
	return wishlist
}

func (s *wishlistService) save(ctx context.Context, scope, operation string, wishlist *entity.Wishlist) bool {
	if err := s.wishlistRepo.Save(ctx, scope, wishlist); err != nil {
		s.log.Errorf("Error saving wishlist for scope %s after %s: %v", scope, operation, err)
		s.metrics.ObserveStorageError(collectionWishlist, "write")
		s.metrics.ObserveMutation(collectionWishlist, operation, metrics.ResultFailure)
		return false
	}
	s.metrics.ObserveMutation(collectionWishlist, operation, metrics.ResultSuccess)
	return true
}

func (s *wishlistService) GetWishlist(ctx context.Context, scope string) []entity.WishlistEntry {
	return s.load(ctx, scope).Snapshot()
}

func (s *wishlistService) AddToWishlist(ctx context.Context, scope string, entry entity.WishlistEntry) bool {
	if err := s.validator.Struct(entry); err != nil {
		s.log.Warnf("Rejected wishlist entry for scope %s: %v", scope, err)
		s.metrics.ObserveMutation(collectionWishlist, "add", metrics.ResultFailure)
		return false
	}
	wishlist := s.load(ctx, scope)
	if !wishlist.Add(entry) {
		s.metrics.ObserveMutation(collectionWishlist, "add", metrics.ResultNoop)
		return false
	}
	s.log.Infof("Adding product %d to wishlist for scope %s", entry.ID, scope)
	return s.save(ctx, scope, "add", wishlist)
}

func (s *wishlistService) RemoveFromWishlist(ctx context.Context, scope string, id int) bool {
	wishlist := s.load(ctx, scope)
	if !wishlist.Remove(id) {
		s.metrics.ObserveMutation(collectionWishlist, "remove", metrics.ResultNoop)
		return false
	}
	s.log.Infof("Removing product %d from wishlist for scope %s", id, scope)
	return s.save(ctx, scope, "remove", wishlist)
}

func (s *wishlistService) IsInWishlist(ctx context.Context, scope string, id int) bool {
	return s.load(ctx, scope).Contains(id)
}

// ClearWishlist removes the stored key, the same way ClearCart does.
func (s *wishlistService) ClearWishlist(ctx context.Context, scope string) bool {
	if err := s.wishlistRepo.Delete(ctx, scope); err != nil {
		s.log.Errorf("Error deleting wishlist for scope %s: %v", scope, err)
		s.metrics.ObserveStorageError(collectionWishlist, "write")
		s.metrics.ObserveMutation(collectionWishlist, "clear", metrics.ResultFailure)
		return false
	}
	s.log.Infof("Wishlist cleared for scope %s", scope)
	s.metrics.ObserveMutation(collectionWishlist, "clear", metrics.ResultSuccess)
	return true
}

func (s *wishlistService) ToggleWishlist(ctx context.Context, scope string, entry entity.WishlistEntry) bool {
	wishlist := s.load(ctx, scope)
	if wishlist.Contains(entry.ID) {
		wishlist.Remove(entry.ID)
		return !s.save(ctx, scope, "toggle", wishlist)
	}
	if err := s.validator.Struct(entry); err != nil {
		s.log.Warnf("Rejected wishlist entry for scope %s: %v", scope, err)
		s.metrics.ObserveMutation(collectionWishlist, "toggle", metrics.ResultFailure)
		return false
	}
	wishlist.Add(entry)
	return s.save(ctx, scope, "toggle", wishlist)
}

// MoveToCart adds the wishlist entry to the cart with quantity one and the
// default size and color, then drops it from the wishlist. Nothing is
// removed when the cart write fails, and the cart line is put back the way
// it was when the wishlist write fails.
func (s *wishlistService) MoveToCart(ctx context.Context, scope string, id int) bool {
	wishlist := s.load(ctx, scope)
	entry, ok := wishlist.Find(id)
	if !ok {
		s.metrics.ObserveMutation(collectionWishlist, "move_to_cart", metrics.ResultNoop)
		return false
	}
	prior := s.cartQuantity(ctx, scope, id)
	added := s.cart.AddToCart(ctx, scope, entity.CartItemInput{
		ID:       entry.ID,
		Name:     entry.Name,
		Price:    entry.Price,
		Image:    entry.Image,
		Quantity: 1,
	})
	if !added {
		s.metrics.ObserveMutation(collectionWishlist, "move_to_cart", metrics.ResultFailure)
		return false
	}
	wishlist.Remove(id)
	if !s.save(ctx, scope, "move_to_cart", wishlist) {
		s.restoreCartLine(ctx, scope, id, prior)
		return false
	}
	s.log.Infof("Moved product %d from wishlist to cart for scope %s", id, scope)
	return true
}

// cartQuantity returns the quantity of the default variant of id, or zero.
func (s *wishlistService) cartQuantity(ctx context.Context, scope string, id int) int {
	key := entity.NewLineItemKey(id, entity.DefaultSize, entity.DefaultColor)
	for _, item := range s.cart.GetCart(ctx, scope) {
		if item.Key() == key {
			return item.Quantity
		}
	}
	return 0
}

func (s *wishlistService) restoreCartLine(ctx context.Context, scope string, id, quantity int) {
	var restored bool
	if quantity == 0 {
		restored = s.cart.RemoveFromCart(ctx, scope, id, entity.DefaultSize, entity.DefaultColor)
	} else {
		restored = s.cart.UpdateQuantity(ctx, scope, id, entity.DefaultSize, entity.DefaultColor, quantity)
	}
	if !restored {
		s.log.Errorf("Failed to roll back cart line %d for scope %s, it is now in both cart and wishlist", id, scope)
	}
}
