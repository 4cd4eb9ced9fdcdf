package app

import (
	"context"

	"github.com/d1m3lo/storefront/internal/order/domain"
)

type OrderRepo interface {
	Create(ctx context.Context, order domain.Order) (domain.Order, error)
	ListBySession(ctx context.Context, sessionID string) ([]domain.Order, error)
}
