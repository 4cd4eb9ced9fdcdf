package memory

import (
	"context"
	"sync"
	"time"

	"github.com/d1m3lo/storefront/internal/cart/domain"
	"github.com/google/uuid"
)

// CartRepo keeps one cart per session id in memory. Carts are volatile:
// they live for the process lifetime and are never persisted.
//
// Every mutation runs under the store lock, so concurrent callers observe
// each operation as a single step.
type CartRepo struct {
	mu    sync.Mutex
	carts map[string]*domain.Cart
	now   func() time.Time
}

func NewCartRepo() *CartRepo {
	return &CartRepo{
		carts: make(map[string]*domain.Cart),
		now:   time.Now,
	}
}

func (r *CartRepo) Get(ctx context.Context, sessionID string) (domain.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.carts[sessionID]
	if !ok {
		return domain.Cart{SessionID: sessionID}, nil
	}
	return snapshot(c), nil
}

func (r *CartRepo) GetOrCreate(ctx context.Context, sessionID string) (domain.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return snapshot(r.getOrCreateLocked(sessionID)), nil
}

func (r *CartRepo) Update(ctx context.Context, sessionID string, fn func(*domain.Cart) error) (domain.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := r.getOrCreateLocked(sessionID)

	// fn runs against a scratch copy so a failed mutation leaves the
	// stored cart exactly as it was.
	scratch := snapshot(c)
	if err := fn(&scratch); err != nil {
		return domain.Cart{}, err
	}
	scratch.UpdatedAt = r.now()
	r.carts[sessionID] = &scratch

	return snapshot(&scratch), nil
}

func (r *CartRepo) getOrCreateLocked(sessionID string) *domain.Cart {
	if c, ok := r.carts[sessionID]; ok {
		return c
	}
	now := r.now()
	c := &domain.Cart{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.carts[sessionID] = c
	return c
}

func snapshot(c *domain.Cart) domain.Cart {
	out := *c
	out.Items = append([]domain.LineItem(nil), c.Items...)
	return out
}
