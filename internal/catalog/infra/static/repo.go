// Package static serves the catalog from an embedded product list, the
// storefront's externally supplied read-only catalog.
package static

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/d1m3lo/storefront/internal/catalog/app"
	"github.com/d1m3lo/storefront/internal/catalog/domain"
	"github.com/shopspring/decimal"
)

//go:embed products.json
var seed []byte

type seedColor struct {
	Name  string   `json:"name"`
	Hex   string   `json:"hex"`
	Sizes []string `json:"sizes"`
}

type seedProduct struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Category    string      `json:"category"`
	Subcategory string      `json:"subcategory"`
	Brand       string      `json:"brand"`
	Description string      `json:"description"`
	Price       string      `json:"price"`
	OldPrice    string      `json:"old_price"`
	Colors      []seedColor `json:"colors"`
	Sizes       []string    `json:"sizes"`
	Tags        []string    `json:"tags"`
}

// ProductRepo holds the seed products in their seed order. The data is
// immutable after construction, so reads need no locking.
type ProductRepo struct {
	products []domain.Product
	byID     map[string]int
	currency string
}

func NewProductRepo(currency string) (*ProductRepo, error) {
	var raw []seedProduct
	if err := json.Unmarshal(seed, &raw); err != nil {
		return nil, fmt.Errorf("parse product seed: %w", err)
	}

	r := &ProductRepo{
		byID:     make(map[string]int, len(raw)),
		currency: currency,
	}
	for _, sp := range raw {
		p, err := r.toDomain(sp)
		if err != nil {
			return nil, err
		}
		if _, dup := r.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %q in seed", p.ID)
		}
		r.byID[p.ID] = len(r.products)
		r.products = append(r.products, p)
	}
	return r, nil
}

func (r *ProductRepo) toDomain(sp seedProduct) (domain.Product, error) {
	price, err := parsePrice(sp.Price, r.currency)
	if err != nil {
		return domain.Product{}, fmt.Errorf("product %q: %w", sp.ID, err)
	}

	p := domain.Product{
		ID:          sp.ID,
		Name:        sp.Name,
		Category:    sp.Category,
		Subcategory: sp.Subcategory,
		Brand:       sp.Brand,
		Description: sp.Description,
		Price:       price,
		Sizes:       sp.Sizes,
		Tags:        sp.Tags,
	}

	if sp.OldPrice != "" {
		old, err := parsePrice(sp.OldPrice, r.currency)
		if err != nil {
			return domain.Product{}, fmt.Errorf("product %q old price: %w", sp.ID, err)
		}
		p.OldPrice = &old
	}

	for _, c := range sp.Colors {
		p.Colors = append(p.Colors, domain.ColorVariant{
			Name:  c.Name,
			Hex:   c.Hex,
			Sizes: c.Sizes,
		})
	}
	return p, nil
}

// parsePrice converts a decimal price string like "129.99" to minor units.
func parsePrice(s, currency string) (domain.Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return domain.Money{}, fmt.Errorf("parse price %q: %w", s, err)
	}
	if d.IsNegative() {
		return domain.Money{}, fmt.Errorf("negative price %q", s)
	}
	cents := d.Shift(2)
	if !cents.IsInteger() {
		return domain.Money{}, fmt.Errorf("price %q has sub-cent precision", s)
	}
	return domain.Money{Currency: currency, Amount: cents.IntPart()}, nil
}

func (r *ProductRepo) Get(ctx context.Context, id string) (domain.Product, error) {
	idx, ok := r.byID[id]
	if !ok {
		return domain.Product{}, app.ErrNotFound
	}
	return r.products[idx], nil
}

func (r *ProductRepo) List(ctx context.Context, q app.ListQuery) ([]domain.Product, string, error) {
	start := 0
	if q.Cursor != "" {
		idx, ok := r.byID[q.Cursor]
		if !ok {
			return nil, "", fmt.Errorf("%w: unknown cursor %q", app.ErrInvalidInput, q.Cursor)
		}
		start = idx + 1
	}

	query := strings.ToLower(strings.TrimSpace(q.Query))

	var out []domain.Product
	next := ""
	for i := start; i < len(r.products); i++ {
		p := r.products[i]
		if !matches(p, query, q.Category, q.Tag) {
			continue
		}
		if len(out) == q.Limit {
			next = out[len(out)-1].ID
			return out, next, nil
		}
		out = append(out, p)
	}
	return out, next, nil
}

func matches(p domain.Product, query, category, tag string) bool {
	if category != "" && p.Category != category {
		return false
	}
	if tag != "" && !p.HasTag(tag) {
		return false
	}
	if query != "" &&
		!strings.Contains(strings.ToLower(p.Name), query) &&
		!strings.Contains(strings.ToLower(p.Description), query) {
		return false
	}
	return true
}
