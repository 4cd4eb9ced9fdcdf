package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/d1m3lo/storefront/internal/checkout/domain"
	"golang.org/x/sync/errgroup"
)

type CartReader interface {
	GetCart(ctx context.Context, sessionID string) ([]CartItem, error)
	ClearCart(ctx context.Context, sessionID string) error
}

type CartItem struct {
	ProductID string
	Quantity  int64
}

type CatalogReader interface {
	GetProduct(ctx context.Context, productID string) (Product, error)
}

type Product struct {
	ID       string
	Name     string
	Currency string
	Amount   int64
}

type OrderWriter interface {
	CreateOrder(ctx context.Context, req CreateOrder) (domain.Confirmation, error)
}

type CreateOrder struct {
	SessionID string
	Customer  domain.Customer
	Lines     []domain.QuoteLine
}

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrInvalidCustomer = errors.New("invalid customer")
)

type Service struct {
	Cart    CartReader
	Catalog CatalogReader
	Orders  OrderWriter

	maxConcurrent int
}

func NewService(cart CartReader, catalog CatalogReader, orders OrderWriter, maxConcurrent int) *Service {
	if maxConcurrent <= 0 {
		maxConcurrent = 10
	}

	return &Service{
		Cart:          cart,
		Catalog:       catalog,
		Orders:        orders,
		maxConcurrent: maxConcurrent,
	}
}

// Quote prices the session's cart against the live catalog. Lines keep the
// cart's insertion order even though pricing fans out.
func (s *Service) Quote(ctx context.Context, sessionID string) (domain.Quote, error) {
	items, err := s.Cart.GetCart(ctx, sessionID)
	if err != nil {
		return domain.Quote{}, err
	}

	if len(items) == 0 {
		return domain.Quote{}, ErrEmptyCart
	}

	lines := make([]domain.QuoteLine, len(items))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	for idx := range items {
		g.Go(func() error {
			it := items[idx]
			if it.Quantity <= 0 {
				return fmt.Errorf("quantity must be greater than zero: %d", it.Quantity)
			}

			product, err := s.Catalog.GetProduct(ctx, it.ProductID)
			if err != nil {
				return fmt.Errorf("failed to get product %s: %w", it.ProductID, err)
			}

			lines[idx] = toLine(product, it.Quantity)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.Quote{}, err
	}

	return summarize(lines), nil
}

// QuoteProduct is the buy-now deep-link path: a summary for exactly one
// unit of a single product, computed without reading or touching the cart.
func (s *Service) QuoteProduct(ctx context.Context, productID string) (domain.Quote, error) {
	product, err := s.Catalog.GetProduct(ctx, productID)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("failed to get product %s: %w", productID, err)
	}

	return summarize([]domain.QuoteLine{toLine(product, 1)}), nil
}

// PlaceOrder turns a quote into an order. With a ProductID it is a buy-now
// order and the cart stays untouched; otherwise the whole cart is ordered
// and cleared afterwards.
func (s *Service) PlaceOrder(ctx context.Context, sessionID string, productID string, customer domain.Customer) (domain.Confirmation, error) {
	if strings.TrimSpace(customer.Name) == "" || strings.TrimSpace(customer.Email) == "" {
		return domain.Confirmation{}, ErrInvalidCustomer
	}

	var (
		quote domain.Quote
		err   error
	)
	fromCart := productID == ""
	if fromCart {
		quote, err = s.Quote(ctx, sessionID)
	} else {
		quote, err = s.QuoteProduct(ctx, productID)
	}
	if err != nil {
		return domain.Confirmation{}, err
	}

	conf, err := s.Orders.CreateOrder(ctx, CreateOrder{
		SessionID: sessionID,
		Customer:  customer,
		Lines:     quote.Lines,
	})
	if err != nil {
		return domain.Confirmation{}, err
	}

	if fromCart {
		if err := s.Cart.ClearCart(ctx, sessionID); err != nil {
			return domain.Confirmation{}, fmt.Errorf("order %s placed but cart not cleared: %w", conf.OrderID, err)
		}
	}
	return conf, nil
}

func toLine(p Product, quantity int64) domain.QuoteLine {
	return domain.QuoteLine{
		ProductID: p.ID,
		Name:      p.Name,
		Quantity:  quantity,
		UnitPrice: domain.Money{
			Currency: p.Currency,
			Amount:   p.Amount,
		},
		LineTotal: domain.Money{
			Currency: p.Currency,
			Amount:   p.Amount * quantity,
		},
	}
}

func summarize(lines []domain.QuoteLine) domain.Quote {
	q := domain.Quote{Lines: lines}
	for i, line := range lines {
		if i == 0 {
			q.Subtotal.Currency = line.LineTotal.Currency
		}
		q.ItemCount += line.Quantity
		q.Subtotal.Amount += line.LineTotal.Amount
	}
	return q
}
