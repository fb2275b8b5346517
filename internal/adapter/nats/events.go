package nats

import (
	"context"
	"time"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/shopspring/decimal"
)

const (
	SubjectCartCount   = "storefront.cart.count"
	SubjectOrderPlaced = "storefront.order.placed"
)

type CartCountEvent struct {
	Scope string `json:"scope"`
	Count int    `json:"count"`
}

type OrderPlacedEvent struct {
	OrderID   string          `json:"orderId"`
	Scope     string          `json:"scope"`
	UserID    string          `json:"userId,omitempty"`
	ItemCount int             `json:"itemCount"`
	Total     decimal.Decimal `json:"total"`
	Payment   string          `json:"payment"`
	PlacedAt  time.Time       `json:"placedAt"`
}

// CartCountNotifier pushes the cart badge count to subscribers.
type CartCountNotifier struct {
	publisher MessagePublisher
}

func NewCartCountNotifier(publisher MessagePublisher) *CartCountNotifier {
	return &CartCountNotifier{publisher: publisher}
}

func (n *CartCountNotifier) NotifyCartCount(ctx context.Context, scope string, count int) error {
	return n.publisher.Publish(ctx, SubjectCartCount, CartCountEvent{Scope: scope, Count: count})
}

type OrderEventPublisher struct {
	publisher MessagePublisher
}

func NewOrderEventPublisher(publisher MessagePublisher) *OrderEventPublisher {
	return &OrderEventPublisher{publisher: publisher}
}

func (p *OrderEventPublisher) PublishOrderPlaced(ctx context.Context, order *entity.Order) error {
	count := 0
	for _, item := range order.Items {
		count += item.Quantity
	}
	return p.publisher.Publish(ctx, SubjectOrderPlaced, OrderPlacedEvent{
		OrderID:   order.ID,
		Scope:     order.Scope,
		UserID:    order.UserID,
		ItemCount: count,
		Total:     order.Summary.Total,
		Payment:   string(order.PaymentMethod),
		PlacedAt:  order.CreatedAt,
	})
}
