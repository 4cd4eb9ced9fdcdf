package app

import (
	"context"

	"github.com/d1m3lo/storefront/internal/catalog/domain"
)

type ListQuery struct {
	Query    string
	Category string
	Tag      string
	Limit    int
	Cursor   string
}

type ProductRepo interface {
	Get(ctx context.Context, id string) (domain.Product, error)
	List(ctx context.Context, q ListQuery) ([]domain.Product, string, error)
}
