package service

import (
	"context"
	"errors"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/metrics"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/repository"
	"github.com/shopspring/decimal"
)

const collectionCart = "cart"

// CartService is the cart half of the line-item repository. Every call reads
// the persisted cart fresh; nothing is cached between calls. Reads never
// fail, mutations report false when nothing was persisted.
type CartService interface {
	GetCart(ctx context.Context, scope string) []entity.CartLineItem
	AddToCart(ctx context.Context, scope string, item entity.CartItemInput) bool
	UpdateQuantity(ctx context.Context, scope string, id int, size, color string, quantity int) bool
	RemoveFromCart(ctx context.Context, scope string, id int, size, color string) bool
	ClearCart(ctx context.Context, scope string) bool
	GetCartTotal(ctx context.Context, scope string) decimal.Decimal
	GetCartCount(ctx context.Context, scope string) int
	UpdateCartCount(ctx context.Context, scope string)
}

type cartService struct {
	cartRepo  repository.CartRepository
	notifier  CartCountNotifier
	validator *Validator
	log       logger.Logger
	metrics   *metrics.MetricsManager
}

func NewCartService(
	cartRepo repository.CartRepository,
	notifier CartCountNotifier,
	log logger.Logger,
	m *metrics.MetricsManager,
) CartService {
	if notifier == nil {
		notifier = NoopCartCountNotifier{}
	}
	return &cartService{
		cartRepo:  cartRepo,
		notifier:  notifier,
		validator: NewValidator(),
		log:       log,
		metrics:   m,
	}
}

func (s *cartService) load(ctx context.Context, scope string) *entity.Cart {
	cart, err := s.cartRepo.Load(ctx, scope)
	if err != nil {
		s.log.Errorf("Error loading cart for scope %s, treating it as empty: %v", scope, err)
		s.metrics.ObserveStorageError(collectionCart, storageErrorKind(err))
	}
	if cart == nil {
		cart = entity.NewCart()
	}
	return cart
}

func (s *cartService) save(ctx context.Context, scope, operation string, cart *entity.Cart) bool {
	if err := s.cartRepo.Save(ctx, scope, cart); err != nil {
		s.log.Errorf("Error saving cart for scope %s after %s: %v", scope, operation, err)
		s.metrics.ObserveStorageError(collectionCart, "write")
		s.metrics.ObserveMutation(collectionCart, operation, metrics.ResultFailure)
		return false
	}
	s.metrics.ObserveMutation(collectionCart, operation, metrics.ResultSuccess)
	s.notify(ctx, scope, cart.Count())
	return true
}

func (s *cartService) notify(ctx context.Context, scope string, count int) {
	if err := s.notifier.NotifyCartCount(ctx, scope, count); err != nil {
		s.log.Warnf("Failed to notify cart count %d for scope %s: %v", count, scope, err)
	}
}

func (s *cartService) GetCart(ctx context.Context, scope string) []entity.CartLineItem {
	return s.load(ctx, scope).Snapshot()
}

func (s *cartService) AddToCart(ctx context.Context, scope string, item entity.CartItemInput) bool {
	if err := s.validator.Struct(item); err != nil {
		s.log.Warnf("Rejected cart item for scope %s: %v", scope, err)
		s.metrics.ObserveMutation(collectionCart, "add", metrics.ResultFailure)
		return false
	}
	cart := s.load(ctx, scope)
	added := cart.Add(item)
	s.log.Infof("Adding item to cart: Scope=%s, ID=%d, Size=%s, Color=%s, Quantity=%d", scope, added.ID, added.Size, added.Color, added.Quantity)
	return s.save(ctx, scope, "add", cart)
}

func (s *cartService) UpdateQuantity(ctx context.Context, scope string, id int, size, color string, quantity int) bool {
	cart := s.load(ctx, scope)
	key := entity.NewLineItemKey(id, size, color)
	if !cart.SetQuantity(key, quantity) {
		s.metrics.ObserveMutation(collectionCart, "update", metrics.ResultNoop)
		return false
	}
	s.log.Infof("Updating item quantity: Scope=%s, ID=%d, NewQuantity=%d", scope, id, quantity)
	return s.save(ctx, scope, "update", cart)
}

func (s *cartService) RemoveFromCart(ctx context.Context, scope string, id int, size, color string) bool {
	cart := s.load(ctx, scope)
	if !cart.Remove(entity.NewLineItemKey(id, size, color)) {
		s.metrics.ObserveMutation(collectionCart, "remove", metrics.ResultNoop)
		return false
	}
	s.log.Infof("Removing item from cart: Scope=%s, ID=%d", scope, id)
	return s.save(ctx, scope, "remove", cart)
}

func (s *cartService) ClearCart(ctx context.Context, scope string) bool {
	if err := s.cartRepo.Delete(ctx, scope); err != nil {
		s.log.Errorf("Error deleting cart for scope %s: %v", scope, err)
		s.metrics.ObserveStorageError(collectionCart, "write")
		s.metrics.ObserveMutation(collectionCart, "clear", metrics.ResultFailure)
		return false
	}
	s.log.Infof("Cart cleared for scope %s", scope)
	s.metrics.ObserveMutation(collectionCart, "clear", metrics.ResultSuccess)
	s.notify(ctx, scope, 0)
	return true
}

func (s *cartService) GetCartTotal(ctx context.Context, scope string) decimal.Decimal {
	return s.load(ctx, scope).Total()
}

func (s *cartService) GetCartCount(ctx context.Context, scope string) int {
	return s.load(ctx, scope).Count()
}

func (s *cartService) UpdateCartCount(ctx context.Context, scope string) {
	s.notify(ctx, scope, s.GetCartCount(ctx, scope))
}

func storageErrorKind(err error) string {
	if errors.Is(err, repository.ErrCorruptData) {
		return "corrupt"
	}
	return "read"
}
