package app

import (
	"context"
	"fmt"

	"github.com/d1m3lo/storefront/internal/cart/domain"
)

type Service struct {
	repo     CartRepo
	notifier Notifier
}

func NewService(repo CartRepo, notifier Notifier) *Service {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return &Service{
		repo:     repo,
		notifier: notifier,
	}
}

func (s *Service) GetCart(ctx context.Context, sessionID string) (domain.Cart, error) {
	return s.repo.GetOrCreate(ctx, sessionID)
}

// AddItem merges the product into the session's cart and emits an advisory
// "added to cart" notification on success.
func (s *Service) AddItem(ctx context.Context, sessionID string, p domain.Product) (domain.Cart, error) {
	cart, err := s.repo.Update(ctx, sessionID, func(c *domain.Cart) error {
		return c.AddItem(p)
	})
	if err != nil {
		return domain.Cart{}, err
	}

	s.notifier.Notify(ctx, sessionID, "cart.added", fmt.Sprintf("Adicionado ao carrinho: %s", p.Name))
	return cart, nil
}

// SetItemQuantity sets the quantity for productID to an absolute value.
// Quantities <= 0 remove the line; an absent product id is a no-op.
func (s *Service) SetItemQuantity(ctx context.Context, sessionID, productID string, quantity int32) (domain.Cart, error) {
	return s.repo.Update(ctx, sessionID, func(c *domain.Cart) error {
		c.SetQuantity(productID, quantity)
		return nil
	})
}

// RemoveItem deletes the line for productID; absence is a no-op.
func (s *Service) RemoveItem(ctx context.Context, sessionID, productID string) (domain.Cart, error) {
	cart, err := s.repo.Update(ctx, sessionID, func(c *domain.Cart) error {
		c.RemoveItem(productID)
		return nil
	})
	if err != nil {
		return domain.Cart{}, err
	}

	s.notifier.Notify(ctx, sessionID, "cart.removed", "Item removido do carrinho")
	return cart, nil
}

func (s *Service) ClearCart(ctx context.Context, sessionID string) (domain.Cart, error) {
	return s.repo.Update(ctx, sessionID, func(c *domain.Cart) error {
		c.Clear()
		return nil
	})
}

type noopNotifier struct{}

func (noopNotifier) Notify(ctx context.Context, sessionID, kind, message string) {}
