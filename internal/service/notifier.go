package service

import "context"

// CartCountNotifier receives the cart item count after every cart mutation.
type CartCountNotifier interface {
	NotifyCartCount(ctx context.Context, scope string, count int) error
}

type NoopCartCountNotifier struct{}

func (NoopCartCountNotifier) NotifyCartCount(context.Context, string, int) error {
	return nil
}
