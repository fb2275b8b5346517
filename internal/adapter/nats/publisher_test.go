package nats

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	subject string
	data    []byte
}

type fakeConn struct {
	messages []published
	err      error
}

func (c *fakeConn) Publish(subject string, data []byte) error {
	if c.err != nil {
		return c.err
	}
	c.messages = append(c.messages, published{subject: subject, data: data})
	return nil
}

func TestNewNATSPublisher_NilConnection(t *testing.T) {
	_, err := NewNATSPublisher(nil)
	assert.Error(t, err)
}

func TestCartCountNotifier_PublishesScopeAndCount(t *testing.T) {
	fc := &fakeConn{}
	notifier := NewCartCountNotifier(&natsPublisher{conn: fc})

	require.NoError(t, notifier.NotifyCartCount(context.Background(), "abc", 4))
	require.Len(t, fc.messages, 1)
	assert.Equal(t, SubjectCartCount, fc.messages[0].subject)
	assert.JSONEq(t, `{"scope":"abc","count":4}`, string(fc.messages[0].data))
}

func TestOrderEventPublisher(t *testing.T) {
	fc := &fakeConn{}
	pub := NewOrderEventPublisher(&natsPublisher{conn: fc})
	placedAt := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	order := &entity.Order{
		ID:    "ABC123XYZ",
		Scope: "abc",
		Items: []entity.CartLineItem{
			{ID: 1, Quantity: 2},
			{ID: 2, Quantity: 1},
		},
		Summary:       entity.OrderSummary{Total: decimal.RequireFromString("99.90")},
		PaymentMethod: entity.PaymentCOD,
		CreatedAt:     placedAt,
	}

	require.NoError(t, pub.PublishOrderPlaced(context.Background(), order))
	require.Len(t, fc.messages, 1)
	assert.Equal(t, SubjectOrderPlaced, fc.messages[0].subject)

	var event OrderPlacedEvent
	require.NoError(t, json.Unmarshal(fc.messages[0].data, &event))
	assert.Equal(t, "ABC123XYZ", event.OrderID)
	assert.Equal(t, 3, event.ItemCount)
	assert.Equal(t, "cod", event.Payment)
	assert.True(t, event.Total.Equal(decimal.RequireFromString("99.9")))
}

func TestPublisher_Errors(t *testing.T) {
	fc := &fakeConn{err: errors.New("nats: connection closed")}
	pub := &natsPublisher{conn: fc}

	err := pub.Publish(context.Background(), "s", map[string]int{"a": 1})
	assert.ErrorContains(t, err, "connection closed")

	err = pub.Publish(context.Background(), "s", func() {})
	assert.ErrorContains(t, err, "failed to marshal")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, (&natsPublisher{conn: &fakeConn{}}).PublishRaw(ctx, "s", nil), context.Canceled)
}
