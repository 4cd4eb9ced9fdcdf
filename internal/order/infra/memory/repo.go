package memory

import (
	"context"
	"sync"
	"time"

	"github.com/d1m3lo/storefront/internal/order/domain"
	"github.com/google/uuid"
)

type OrderRepo struct {
	mu        sync.Mutex
	orders    map[string]domain.Order
	bySession map[string][]string
	now       func() time.Time
}

func NewOrderRepo() *OrderRepo {
	return &OrderRepo{
		orders:    make(map[string]domain.Order),
		bySession: make(map[string][]string),
		now:       time.Now,
	}
}

func (r *OrderRepo) Create(ctx context.Context, order domain.Order) (domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	order.ID = uuid.NewString()
	order.CreatedAt = now
	order.UpdatedAt = now
	for i := range order.OrderItems {
		order.OrderItems[i].ID = uuid.NewString()
		order.OrderItems[i].OrderID = order.ID
	}

	r.orders[order.ID] = order
	r.bySession[order.SessionID] = append(r.bySession[order.SessionID], order.ID)
	return order, nil
}

func (r *OrderRepo) ListBySession(ctx context.Context, sessionID string) ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := r.bySession[sessionID]
	out := make([]domain.Order, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.orders[id])
	}
	return out, nil
}
