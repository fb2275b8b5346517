package service

import "errors"

var (
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrEmailTaken            = errors.New("an account with this email already exists")
	ErrNotLoggedIn           = errors.New("not logged in")
	ErrEmptyCart             = errors.New("cart is empty")
	ErrInvalidCoupon         = errors.New("invalid coupon code")
	ErrUnknownShippingMethod = errors.New("unknown shipping method")
)
