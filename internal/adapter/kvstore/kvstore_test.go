package kvstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/adapter/memory"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenStore struct {
	*memory.Store
	getErr error
	setErr error
}

func (s *brokenStore) Get(ctx context.Context, key string) (string, error) {
	if s.getErr != nil {
		return "", s.getErr
	}
	return s.Store.Get(ctx, key)
}

func (s *brokenStore) Set(ctx context.Context, key, value string) error {
	if s.setErr != nil {
		return s.setErr
	}
	return s.Store.Set(ctx, key, value)
}

func TestKeys(t *testing.T) {
	keys := NewKeys("")
	assert.Equal(t, "storefront:abc:cart", keys.Scoped("abc", cartKeyName))
	assert.Equal(t, "storefront:users", keys.Global(usersKeyName))
	assert.Equal(t, "shop:x:wishlist", NewKeys(" shop ").Scoped("x", wishlistKeyName))
}

func TestCartRepository_LoadAbsentIsEmpty(t *testing.T) {
	repo := NewCartRepository(memory.NewStore(), NewKeys(""))

	cart, err := repo.Load(context.Background(), "abc")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestCartRepository_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	repo := NewCartRepository(store, NewKeys(""))

	cart := entity.NewCart()
	cart.Add(entity.CartItemInput{ID: 1, Name: "Chair", Price: decimal.RequireFromString("120.50"), Quantity: 2})
	require.NoError(t, repo.Save(ctx, "abc", cart))

	raw, err := store.Get(ctx, "storefront:abc:cart")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1,"name":"Chair","price":"120.5","image":"","quantity":2,"size":"Standard","color":"Default"}]`, raw)

	loaded, err := repo.Load(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Count())
	assert.Equal(t, "241.00", loaded.Total().StringFixed(2))

	other, err := repo.Load(ctx, "other-scope")
	require.NoError(t, err)
	assert.True(t, other.IsEmpty())
}

func TestCartRepository_AcceptsNumericPricesAndNormalizes(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.Set(ctx, "storefront:abc:cart",
		`[{"id":1,"name":"A","price":10.5,"quantity":1,"size":"L","color":"Red"},`+
			`{"id":1,"name":"A","price":10.5,"quantity":2,"size":" L ","color":"Red"},`+
			`{"id":2,"name":"B","price":3,"quantity":0}]`))
	repo := NewCartRepository(store, NewKeys(""))

	cart, err := repo.Load(ctx, "abc")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.Equal(t, "31.50", cart.Total().StringFixed(2))
}

func TestCartRepository_LoadCapsOversizedQuantities(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.Set(ctx, "storefront:abc:cart",
		`[{"id":1,"name":"A","price":"1","quantity":9223372036854775807},`+
			`{"id":1,"name":"A","price":"1","quantity":1}]`))
	repo := NewCartRepository(store, NewKeys(""))

	cart, err := repo.Load(ctx, "abc")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, entity.MaxQuantity, cart.Items[0].Quantity)
	assert.Equal(t, entity.MaxQuantity, cart.Count())
}

func TestCartRepository_CorruptDataYieldsEmpty(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.Set(ctx, "storefront:abc:cart", `{not json`))
	repo := NewCartRepository(store, NewKeys(""))

	cart, err := repo.Load(ctx, "abc")
	assert.ErrorIs(t, err, repository.ErrCorruptData)
	require.NotNil(t, cart)
	assert.True(t, cart.IsEmpty())
}

func TestCartRepository_ReadAndWriteFailures(t *testing.T) {
	ctx := context.Background()
	store := &brokenStore{Store: memory.NewStore(), getErr: errors.New("io"), setErr: errors.New("quota exceeded")}
	repo := NewCartRepository(store, NewKeys(""))

	cart, err := repo.Load(ctx, "abc")
	require.Error(t, err)
	assert.False(t, errors.Is(err, repository.ErrCorruptData))
	assert.True(t, cart.IsEmpty())

	err = repo.Save(ctx, "abc", entity.NewCart())
	assert.ErrorIs(t, err, repository.ErrWriteFailed)
}

func TestCartRepository_Delete(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	repo := NewCartRepository(store, NewKeys(""))

	require.NoError(t, repo.Save(ctx, "abc", entity.NewCart()))
	require.NoError(t, repo.Delete(ctx, "abc"))
	_, err := store.Get(ctx, "storefront:abc:cart")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestWishlistRepository_RoundTripAndDedup(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	repo := NewWishlistRepository(store, NewKeys(""))

	require.NoError(t, store.Set(ctx, "storefront:abc:wishlist", `[{"id":3,"name":"a","price":"5"},{"id":3,"name":"b","price":"5"}]`))
	w, err := repo.Load(ctx, "abc")
	require.NoError(t, err)
	require.Equal(t, 1, w.Len())
	assert.Equal(t, "a", w.Entries[0].Name)

	w.Add(entity.WishlistEntry{ID: 4, Name: "c", Rating: 4})
	require.NoError(t, repo.Save(ctx, "abc", w))
	reloaded, err := repo.Load(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, reloaded.Contains(4))

	require.NoError(t, store.Set(ctx, "storefront:abc:wishlist", `"oops"`))
	corrupt, err := repo.Load(ctx, "abc")
	assert.ErrorIs(t, err, repository.ErrCorruptData)
	assert.Equal(t, 0, corrupt.Len())
}

func TestWishlistRepository_LoadClampsRatings(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.Set(ctx, "storefront:abc:wishlist", `[{"id":1,"name":"a","price":"5","rating":9},{"id":2,"name":"b","price":"5","rating":-1}]`))
	repo := NewWishlistRepository(store, NewKeys(""))

	w, err := repo.Load(ctx, "abc")
	require.NoError(t, err)
	require.Equal(t, 2, w.Len())
	assert.Equal(t, entity.MaxRating, w.Entries[0].Rating)
	assert.Equal(t, 0, w.Entries[1].Rating)
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	repo := NewUserRepository(store, NewKeys(""))

	user := &entity.User{ID: "u1", Name: "Ada", Email: "ada@example.com", PasswordHash: "hash", CreatedAt: time.Now().UTC()}
	require.NoError(t, repo.Create(ctx, user))
	assert.ErrorIs(t, repo.Create(ctx, &entity.User{ID: "u2", Email: "ADA@example.com"}), repository.ErrAlreadyExists)

	got, err := repo.GetByEmail(ctx, " Ada@Example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)

	got, err = repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.Name)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	raw, err := store.Get(ctx, "storefront:users")
	require.NoError(t, err)
	assert.NotContains(t, raw, "password\"")

	require.NoError(t, store.Set(ctx, "storefront:users", `[`))
	assert.ErrorIs(t, repo.Create(ctx, &entity.User{ID: "u3", Email: "x@y.z"}), repository.ErrCorruptData)
}

func TestSessionRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(memory.NewStore(), NewKeys(""))

	s, err := repo.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, s)

	session := entity.NewSession(&entity.User{ID: "u1", Email: "a@b.c", Name: "A"}, time.Now())
	require.NoError(t, repo.Save(ctx, "abc", session))
	s, err = repo.Get(ctx, "abc")
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "u1", s.UserID)

	require.NoError(t, repo.Delete(ctx, "abc"))
	s, err = repo.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, s)

	email, err := repo.GetRememberedEmail(ctx, "abc")
	require.NoError(t, err)
	assert.Empty(t, email)
	require.NoError(t, repo.SaveRememberedEmail(ctx, "abc", "a@b.c"))
	email, err = repo.GetRememberedEmail(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", email)
}

func TestPreferenceRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewPreferenceRepository(memory.NewStore(), NewKeys(""))

	method, err := repo.GetShippingMethod(ctx, "abc")
	require.NoError(t, err)
	assert.Empty(t, method)

	require.NoError(t, repo.SaveShippingMethod(ctx, "abc", "express"))
	method, err = repo.GetShippingMethod(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "express", method)
}
