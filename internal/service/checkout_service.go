package service

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"time"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/metrics"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	ShippingStandard  = "standard"
	ShippingExpress   = "express"
	ShippingOvernight = "overnight"

	orderIDLength         = 9
	defaultReceiptTimeout = 10 * time.Second
)

var (
	taxRate = decimal.NewFromFloat(0.1)

	shippingMethods = []ShippingMethod{
		{Name: ShippingStandard, Cost: decimal.Zero},
		{Name: ShippingExpress, Cost: decimal.NewFromInt(15)},
		{Name: ShippingOvernight, Cost: decimal.NewFromInt(30)},
	}

	coupons = map[string]int{
		"SAVE10":  10,
		"SAVE20":  20,
		"WELCOME": 15,
	}

	expiryPattern = regexp.MustCompile(`^\d{2}/\d{2}$`)
)

type ShippingMethod struct {
	Name string          `json:"name"`
	Cost decimal.Decimal `json:"cost"`
}

type Coupon struct {
	Code    string `json:"code"`
	Percent int    `json:"percent"`
}

type PlaceOrderInput struct {
	Shipping       entity.Address       `json:"shipping"`
	SameAsShipping bool                 `json:"sameAsShipping"`
	Billing        *entity.Address      `json:"billing,omitempty" validate:"-"`
	PaymentMethod  entity.PaymentMethod `json:"payment" validate:"required,oneof=card paypal cod"`
	Card           *entity.CardDetails  `json:"card,omitempty" validate:"-"`
	CouponCode     string               `json:"couponCode,omitempty"`
}

// SessionReader resolves the logged-in shopper of a scope, if any.
type SessionReader interface {
	CurrentUser(ctx context.Context, scope string) (*entity.Session, error)
}

type OrderPublisher interface {
	PublishOrderPlaced(ctx context.Context, order *entity.Order) error
}

type EmailSender interface {
	Send(ctx context.Context, to []string, subject, bodyHTML, bodyText string) error
}

type CheckoutService interface {
	ShippingMethods() []ShippingMethod
	ApplyCoupon(code string) (Coupon, error)
	SelectShipping(ctx context.Context, scope, method string) error
	Summary(ctx context.Context, scope, couponCode string) (entity.OrderSummary, error)
	PlaceOrder(ctx context.Context, scope string, in PlaceOrderInput) (*entity.Order, error)
}

type CheckoutServiceConfig struct {
	ReceiptTimeout time.Duration
}

type checkoutService struct {
	cart           CartService
	preferences    repository.PreferenceRepository
	sessions       SessionReader
	publisher      OrderPublisher
	mailer         EmailSender
	validator      *Validator
	log            logger.Logger
	metrics        *metrics.MetricsManager
	receiptTimeout time.Duration
	now            func() time.Time
}

// NewCheckoutService accepts a nil publisher or mailer; the matching side
// effect is then skipped.
func NewCheckoutService(
	cart CartService,
	preferences repository.PreferenceRepository,
	sessions SessionReader,
	publisher OrderPublisher,
	mailer EmailSender,
	log logger.Logger,
	m *metrics.MetricsManager,
	cfg CheckoutServiceConfig,
) CheckoutService {
	timeout := cfg.ReceiptTimeout
	if timeout <= 0 {
		timeout = defaultReceiptTimeout
	}
	return &checkoutService{
		cart:           cart,
		preferences:    preferences,
		sessions:       sessions,
		publisher:      publisher,
		mailer:         mailer,
		validator:      NewValidator(),
		log:            log,
		metrics:        m,
		receiptTimeout: timeout,
		now:            time.Now,
	}
}

func (s *checkoutService) ShippingMethods() []ShippingMethod {
	out := make([]ShippingMethod, len(shippingMethods))
	copy(out, shippingMethods)
	return out
}

func findShippingMethod(name string) (ShippingMethod, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, m := range shippingMethods {
		if m.Name == name {
			return m, true
		}
	}
	return ShippingMethod{}, false
}

func (s *checkoutService) ApplyCoupon(code string) (Coupon, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	percent, ok := coupons[code]
	if !ok {
		return Coupon{}, ErrInvalidCoupon
	}
	return Coupon{Code: code, Percent: percent}, nil
}

func (s *checkoutService) SelectShipping(ctx context.Context, scope, method string) error {
	m, ok := findShippingMethod(method)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownShippingMethod, method)
	}
	if err := s.preferences.SaveShippingMethod(ctx, scope, m.Name); err != nil {
		s.log.Errorf("Failed to save shipping method for scope %s: %v", scope, err)
		return fmt.Errorf("could not save shipping method: %w", err)
	}
	return nil
}

// selectedShipping falls back to standard shipping when nothing usable is
// stored.
func (s *checkoutService) selectedShipping(ctx context.Context, scope string) ShippingMethod {
	name, err := s.preferences.GetShippingMethod(ctx, scope)
	if err != nil {
		s.log.Warnf("Failed to read shipping method for scope %s: %v", scope, err)
	}
	if m, ok := findShippingMethod(name); ok {
		return m
	}
	return shippingMethods[0]
}

func (s *checkoutService) Summary(ctx context.Context, scope, couponCode string) (entity.OrderSummary, error) {
	var coupon Coupon
	if strings.TrimSpace(couponCode) != "" {
		c, err := s.ApplyCoupon(couponCode)
		if err != nil {
			return entity.OrderSummary{}, err
		}
		coupon = c
	}
	subtotal := s.cart.GetCartTotal(ctx, scope)
	return computeSummary(subtotal, s.selectedShipping(ctx, scope), coupon), nil
}

// computeSummary rounds every figure to cents. The total is computed from
// the rounded parts so that it always adds up on a receipt.
func computeSummary(subtotal decimal.Decimal, shipping ShippingMethod, coupon Coupon) entity.OrderSummary {
	subtotal = subtotal.Round(2)
	tax := subtotal.Mul(taxRate).Round(2)
	discount := subtotal.Mul(decimal.NewFromInt(int64(coupon.Percent))).Div(decimal.NewFromInt(100)).Round(2)
	cost := shipping.Cost.Round(2)
	return entity.OrderSummary{
		Subtotal:        subtotal,
		Shipping:        cost,
		Tax:             tax,
		Discount:        discount,
		Total:           subtotal.Add(cost).Add(tax).Sub(discount),
		ShippingMethod:  shipping.Name,
		CouponCode:      coupon.Code,
		DiscountPercent: coupon.Percent,
	}
}

func (s *checkoutService) PlaceOrder(ctx context.Context, scope string, in PlaceOrderInput) (*entity.Order, error) {
	items := s.cart.GetCart(ctx, scope)
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	in.Shipping = trimAddress(in.Shipping)
	if in.Billing != nil {
		billing := trimAddress(*in.Billing)
		in.Billing = &billing
	}
	if err := s.validateOrder(in); err != nil {
		return nil, err
	}

	summary, err := s.Summary(ctx, scope, in.CouponCode)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		ID:            newOrderID(),
		Scope:         scope,
		Items:         items,
		Summary:       summary,
		Shipping:      in.Shipping,
		Billing:       in.Shipping,
		PaymentMethod: in.PaymentMethod,
		Status:        entity.StatusPlaced,
		CreatedAt:     s.now().UTC(),
	}
	if !in.SameAsShipping {
		order.Billing = *in.Billing
	}
	if session, err := s.sessions.CurrentUser(ctx, scope); err != nil {
		s.log.Warnf("Failed to read session while placing order for scope %s: %v", scope, err)
	} else if session != nil {
		order.UserID = session.UserID
	}

	if !s.cart.ClearCart(ctx, scope) {
		return nil, fmt.Errorf("could not clear cart: %w", repository.ErrWriteFailed)
	}
	s.metrics.ObserveOrderPlaced()
	s.log.Infof("Order %s placed for scope %s: %d line items, total %s", order.ID, scope, len(order.Items), order.Summary.Total.StringFixed(2))

	if s.publisher != nil {
		if err := s.publisher.PublishOrderPlaced(ctx, order); err != nil {
			s.log.Errorf("Failed to publish order %s: %v", order.ID, err)
		}
	}
	s.sendReceipt(ctx, order)

	return order, nil
}

func (s *checkoutService) sendReceipt(ctx context.Context, order *entity.Order) {
	if s.mailer == nil {
		return
	}
	sendCtx, cancel := context.WithTimeout(ctx, s.receiptTimeout)
	defer cancel()

	subject, html, text := renderReceipt(order)
	if err := s.mailer.Send(sendCtx, []string{order.Shipping.Email}, subject, html, text); err != nil {
		s.log.Errorf("Failed to send receipt for order %s: %v", order.ID, err)
	}
}

func (s *checkoutService) validateOrder(in PlaceOrderInput) error {
	out := &ValidationError{}
	if err := s.validator.Struct(in); err != nil {
		var verr *ValidationError
		if !errors.As(err, &verr) {
			return err
		}
		for field, msg := range verr.Fields {
			out.add(field, msg)
		}
	}

	if !in.SameAsShipping {
		if in.Billing == nil {
			out.add("billing", "is required")
		} else if err := s.validator.Struct(*in.Billing); err != nil {
			var verr *ValidationError
			if !errors.As(err, &verr) {
				return err
			}
			for field, msg := range verr.Fields {
				out.add("billing."+field, msg)
			}
		}
	}

	if in.PaymentMethod == entity.PaymentCard {
		validateCard(in.Card, out)
	}
	return out.orNil()
}

func validateCard(card *entity.CardDetails, out *ValidationError) {
	if card == nil {
		out.add("card", "is required")
		return
	}
	number := strings.Join(strings.Fields(card.Number), "")
	if len(number) < 13 || strings.Trim(number, "0123456789") != "" {
		out.add("card.cardNumber", "is invalid")
	}
	if !expiryPattern.MatchString(strings.TrimSpace(card.Expiry)) {
		out.add("card.expiryDate", "must be MM/YY")
	}
	cvv := strings.TrimSpace(card.CVV)
	if len(cvv) < 3 || strings.Trim(cvv, "0123456789") != "" {
		out.add("card.cvv", "is invalid")
	}
}

func trimAddress(a entity.Address) entity.Address {
	return entity.Address{
		FirstName: strings.TrimSpace(a.FirstName),
		LastName:  strings.TrimSpace(a.LastName),
		Email:     strings.TrimSpace(a.Email),
		Phone:     strings.TrimSpace(a.Phone),
		Street:    strings.TrimSpace(a.Street),
		City:      strings.TrimSpace(a.City),
		State:     strings.TrimSpace(a.State),
		Zip:       strings.TrimSpace(a.Zip),
		Country:   strings.TrimSpace(a.Country),
	}
}

// newOrderID returns nine upper-case base-36 characters drawn from a random
// UUID.
func newOrderID() string {
	u := uuid.New()
	id := strings.ToUpper(new(big.Int).SetBytes(u[:]).Text(36))
	if len(id) < orderIDLength {
		id = strings.Repeat("0", orderIDLength-len(id)) + id
	}
	return id[len(id)-orderIDLength:]
}
