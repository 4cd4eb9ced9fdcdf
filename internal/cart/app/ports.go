package app

import (
	"context"

	"github.com/d1m3lo/storefront/internal/cart/domain"
)

type CartRepo interface {
	Get(ctx context.Context, sessionID string) (domain.Cart, error)
	GetOrCreate(ctx context.Context, sessionID string) (domain.Cart, error)
	// Update applies fn to the cart for sessionID (creating an empty cart
	// if none exists) as a single step: either fn succeeds and its effects
	// become visible atomically, or the cart is left untouched.
	Update(ctx context.Context, sessionID string, fn func(*domain.Cart) error) (domain.Cart, error)
}

// Notifier is the advisory user-feedback sink. Delivery is fire-and-forget;
// it must never influence cart state.
type Notifier interface {
	Notify(ctx context.Context, sessionID, kind, message string)
}
