package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func armoire() entity.WishlistEntry {
	return entity.WishlistEntry{ID: 5, Name: "Armoire", Price: decimal.RequireFromString("308.80"), Image: "a.jpg", Rating: 4}
}

func TestWishlistService_AddTwiceKeepsOne(t *testing.T) {
	ctx := context.Background()
	st := newTestStack(t)

	assert.True(t, st.wishlist.AddToWishlist(ctx, testScope, armoire()))
	assert.False(t, st.wishlist.AddToWishlist(ctx, testScope, armoire()))
	assert.Len(t, st.wishlist.GetWishlist(ctx, testScope), 1)
	assert.True(t, st.wishlist.IsInWishlist(ctx, testScope, 5))
}

func TestWishlistService_RemoveAndClear(t *testing.T) {
	ctx := context.Background()
	st := newTestStack(t)
	require.True(t, st.wishlist.AddToWishlist(ctx, testScope, armoire()))

	assert.True(t, st.wishlist.RemoveFromWishlist(ctx, testScope, 5))
	assert.False(t, st.wishlist.RemoveFromWishlist(ctx, testScope, 5))

	require.True(t, st.wishlist.AddToWishlist(ctx, testScope, armoire()))
	assert.True(t, st.wishlist.ClearWishlist(ctx, testScope))
	assert.Empty(t, st.wishlist.GetWishlist(ctx, testScope))
	_, err := st.store.Get(ctx, "storefront:"+testScope+":wishlist")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestWishlistService_Toggle(t *testing.T) {
	ctx := context.Background()
	st := newTestStack(t)

	assert.True(t, st.wishlist.ToggleWishlist(ctx, testScope, armoire()))
	assert.True(t, st.wishlist.IsInWishlist(ctx, testScope, 5))
	assert.False(t, st.wishlist.ToggleWishlist(ctx, testScope, armoire()))
	assert.False(t, st.wishlist.IsInWishlist(ctx, testScope, 5))
}

func TestWishlistService_Toggle_WriteFailureKeepsMembership(t *testing.T) {
	mockRepo := new(MockWishlistRepository)
	svc := NewWishlistService(mockRepo, nil, logger.NewNop(), nil)

	mockRepo.On("Load", mock.Anything, testScope).Return(entity.NewWishlist(armoire()), nil).Once()
	mockRepo.On("Save", mock.Anything, testScope, mock.Anything).Return(repository.ErrWriteFailed).Once()
	assert.True(t, svc.ToggleWishlist(context.Background(), testScope, armoire()))

	mockRepo.On("Load", mock.Anything, testScope).Return(entity.NewWishlist(), nil).Once()
	mockRepo.On("Save", mock.Anything, testScope, mock.Anything).Return(repository.ErrWriteFailed).Once()
	assert.False(t, svc.ToggleWishlist(context.Background(), testScope, armoire()))

	mockRepo.AssertExpectations(t)
}

func TestWishlistService_MoveToCart(t *testing.T) {
	ctx := context.Background()
	st := newTestStack(t)
	require.True(t, st.wishlist.AddToWishlist(ctx, testScope, armoire()))

	assert.True(t, st.wishlist.MoveToCart(ctx, testScope, 5))
	assert.False(t, st.wishlist.IsInWishlist(ctx, testScope, 5))

	items := st.cart.GetCart(ctx, testScope)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].ID)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, entity.DefaultSize, items[0].Size)
	assert.Equal(t, entity.DefaultColor, items[0].Color)
	assert.Equal(t, 1, st.notifier.last())

	assert.False(t, st.wishlist.MoveToCart(ctx, testScope, 5))
}

func TestWishlistService_MoveToCart_CartFailureKeepsEntry(t *testing.T) {
	ctx := context.Background()
	cartRepo := new(MockCartRepository)
	cartRepo.On("Load", mock.Anything, testScope).Return(entity.NewCart(), nil)
	cartRepo.On("Save", mock.Anything, testScope, mock.Anything).Return(errors.New("quota exceeded"))
	cart := NewCartService(cartRepo, nil, logger.NewNop(), nil)

	wishlistRepo := new(MockWishlistRepository)
	wishlistRepo.On("Load", mock.Anything, testScope).Return(entity.NewWishlist(armoire()), nil)
	svc := NewWishlistService(wishlistRepo, cart, logger.NewNop(), nil)

	assert.False(t, svc.MoveToCart(ctx, testScope, 5))
	wishlistRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

func TestWishlistService_MoveToCart_WishlistFailureRestoresCart(t *testing.T) {
	ctx := context.Background()
	st := newTestStack(t)

	wishlistRepo := new(MockWishlistRepository)
	wishlistRepo.On("Load", mock.Anything, testScope).Return(entity.NewWishlist(armoire()), nil).Once()
	wishlistRepo.On("Load", mock.Anything, testScope).Return(entity.NewWishlist(armoire()), nil).Once()
	wishlistRepo.On("Save", mock.Anything, testScope, mock.Anything).Return(repository.ErrWriteFailed)
	svc := NewWishlistService(wishlistRepo, st.cart, logger.NewNop(), nil)

	assert.False(t, svc.MoveToCart(ctx, testScope, 5))
	assert.Empty(t, st.cart.GetCart(ctx, testScope))
	assert.Equal(t, 0, st.notifier.last())

	require.True(t, st.cart.AddToCart(ctx, testScope, entity.CartItemInput{ID: 5, Name: "Armoire", Quantity: 2}))
	assert.False(t, svc.MoveToCart(ctx, testScope, 5))
	wishlistRepo.AssertNumberOfCalls(t, "Save", 2)
	items := st.cart.GetCart(ctx, testScope)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 2, st.notifier.last())
}

func TestWishlistService_RejectsInvalidEntry(t *testing.T) {
	ctx := context.Background()
	st := newTestStack(t)

	assert.False(t, st.wishlist.AddToWishlist(ctx, testScope, entity.WishlistEntry{ID: 0, Name: "x"}))
	assert.False(t, st.wishlist.ToggleWishlist(ctx, testScope, entity.WishlistEntry{ID: 3}))
	assert.Empty(t, st.wishlist.GetWishlist(ctx, testScope))
}

func TestWishlistService_Property_ToggleTwiceRestoresMembership(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		ctx := context.Background()
		st := newTestStack(t)
		ids := rapid.SliceOfNDistinct(rapid.IntRange(1, 20), 0, 6, rapid.ID[int]).Draw(rt, "ids")
		for _, id := range ids {
			st.wishlist.AddToWishlist(ctx, testScope, entity.WishlistEntry{ID: id, Name: "p"})
		}
		target := entity.WishlistEntry{ID: rapid.IntRange(1, 20).Draw(rt, "target"), Name: "p"}
		before := st.wishlist.IsInWishlist(ctx, testScope, target.ID)

		first := st.wishlist.ToggleWishlist(ctx, testScope, target)
		second := st.wishlist.ToggleWishlist(ctx, testScope, target)

		if first == before || second != before {
			rt.Fatalf("toggle results %v, %v from initial membership %v", first, second, before)
		}
		if st.wishlist.IsInWishlist(ctx, testScope, target.ID) != before {
			rt.Fatalf("membership changed after two toggles")
		}
	})
}
