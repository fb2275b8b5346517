package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPlaced OrderStatus = "PLACED"
)

type PaymentMethod string

const (
	PaymentCard   PaymentMethod = "card"
	PaymentPayPal PaymentMethod = "paypal"
	PaymentCOD    PaymentMethod = "cod"
)

type Address struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,phone"`
	Street    string `json:"address" validate:"required"`
	City      string `json:"city" validate:"required"`
	State     string `json:"state" validate:"required"`
	Zip       string `json:"zip" validate:"required"`
	Country   string `json:"country" validate:"required"`
}

type CardDetails struct {
	Number string `json:"cardNumber"`
	Expiry string `json:"expiryDate"`
	CVV    string `json:"cvv"`
}

type OrderSummary struct {
	Subtotal        decimal.Decimal `json:"subtotal"`
	Shipping        decimal.Decimal `json:"shipping"`
	Tax             decimal.Decimal `json:"tax"`
	Discount        decimal.Decimal `json:"discount"`
	Total           decimal.Decimal `json:"total"`
	ShippingMethod  string          `json:"shippingMethod"`
	CouponCode      string          `json:"couponCode,omitempty"`
	DiscountPercent int             `json:"discountPercent,omitempty"`
}

type Order struct {
	ID            string         `json:"id"`
	Scope         string         `json:"scope"`
	UserID        string         `json:"userId,omitempty"`
	Items         []CartLineItem `json:"items"`
	Summary       OrderSummary   `json:"summary"`
	Shipping      Address        `json:"shipping"`
	Billing       Address        `json:"billing"`
	PaymentMethod PaymentMethod  `json:"payment"`
	Status        OrderStatus    `json:"status"`
	CreatedAt     time.Time      `json:"createdAt"`
}
