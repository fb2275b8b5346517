package service

import (
	"context"
	"sync"
	"testing"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/adapter/kvstore"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/adapter/memory"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/metrics"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) Load(ctx context.Context, scope string) (*entity.Cart, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Cart), args.Error(1)
}

func (m *MockCartRepository) Save(ctx context.Context, scope string, cart *entity.Cart) error {
	args := m.Called(ctx, scope, cart)
	return args.Error(0)
}

func (m *MockCartRepository) Delete(ctx context.Context, scope string) error {
	args := m.Called(ctx, scope)
	return args.Error(0)
}

type MockWishlistRepository struct {
	mock.Mock
}

func (m *MockWishlistRepository) Load(ctx context.Context, scope string) (*entity.Wishlist, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Wishlist), args.Error(1)
}

func (m *MockWishlistRepository) Save(ctx context.Context, scope string, wishlist *entity.Wishlist) error {
	args := m.Called(ctx, scope, wishlist)
	return args.Error(0)
}

func (m *MockWishlistRepository) Delete(ctx context.Context, scope string) error {
	args := m.Called(ctx, scope)
	return args.Error(0)
}

type MockOrderPublisher struct {
	mock.Mock
}

func (m *MockOrderPublisher) PublishOrderPlaced(ctx context.Context, order *entity.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) Send(ctx context.Context, to []string, subject, bodyHTML, bodyText string) error {
	args := m.Called(ctx, to, subject, bodyHTML, bodyText)
	return args.Error(0)
}

// recordingNotifier keeps every badge count it was handed.
type recordingNotifier struct {
	mu     sync.Mutex
	counts []int
	err    error
}

func (n *recordingNotifier) NotifyCartCount(_ context.Context, _ string, count int) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.counts = append(n.counts, count)
	return n.err
}

func (n *recordingNotifier) last() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.counts) == 0 {
		return -1
	}
	return n.counts[len(n.counts)-1]
}

type testStack struct {
	store    *memory.Store
	notifier *recordingNotifier
	metrics  *metrics.MetricsManager
	cart     CartService
	wishlist WishlistService
	auth     AuthService
}

func newTestStack(t *testing.T) *testStack {
	t.Helper()
	store := memory.NewStore()
	keys := kvstore.NewKeys("")
	log := logger.NewNop()
	m := metrics.NewMetricsManager("storefront_test")
	notifier := &recordingNotifier{}

	cart := NewCartService(kvstore.NewCartRepository(store, keys), notifier, log, m)
	wishlist := NewWishlistService(kvstore.NewWishlistRepository(store, keys), cart, log, m)
	auth := NewAuthService(
		kvstore.NewUserRepository(store, keys),
		kvstore.NewSessionRepository(store, keys),
		cart,
		wishlist,
		log,
		AuthServiceConfig{BcryptCost: bcrypt.MinCost},
	)
	return &testStack{
		store:    store,
		notifier: notifier,
		metrics:  m,
		cart:     cart,
		wishlist: wishlist,
		auth:     auth,
	}
}
