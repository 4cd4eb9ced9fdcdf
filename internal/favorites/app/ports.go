package app

import "context"

type Favorite struct {
	ID        string
	ProductID string
}

type FavoriteRepo interface {
	Add(ctx context.Context, userID, productID string) (Favorite, error)
	Remove(ctx context.Context, userID, productID string) error
	List(ctx context.Context, userID string) ([]Favorite, error)
}
