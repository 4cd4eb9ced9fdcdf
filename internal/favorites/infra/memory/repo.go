package memory

import (
	"context"
	"sync"

	"github.com/d1m3lo/storefront/internal/favorites/app"
	"github.com/google/uuid"
)

type FavoriteRepo struct {
	mu     sync.Mutex
	byUser map[string][]app.Favorite
}

func NewFavoriteRepo() *FavoriteRepo {
	return &FavoriteRepo{
		byUser: make(map[string][]app.Favorite),
	}
}

func (r *FavoriteRepo) Add(ctx context.Context, userID, productID string) (app.Favorite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, f := range r.byUser[userID] {
		if f.ProductID == productID {
			return f, nil
		}
	}

	fav := app.Favorite{ID: uuid.NewString(), ProductID: productID}
	r.byUser[userID] = append(r.byUser[userID], fav)
	return fav, nil
}

func (r *FavoriteRepo) Remove(ctx context.Context, userID, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	favs := r.byUser[userID]
	for i, f := range favs {
		if f.ProductID == productID {
			r.byUser[userID] = append(favs[:i], favs[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *FavoriteRepo) List(ctx context.Context, userID string) ([]app.Favorite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]app.Favorite(nil), r.byUser[userID]...), nil
}
