package app

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/d1m3lo/storefront/internal/checkout/domain"
)

type fakeCart struct {
	items   map[string][]CartItem
	cleared []string
	reads   int
}

func (f *fakeCart) GetCart(ctx context.Context, sessionID string) ([]CartItem, error) {
	f.reads++
	return f.items[sessionID], nil
}

func (f *fakeCart) ClearCart(ctx context.Context, sessionID string) error {
	f.cleared = append(f.cleared, sessionID)
	f.items[sessionID] = nil
	return nil
}

type fakeCatalog struct {
	products map[string]Product
}

func (f *fakeCatalog) GetProduct(ctx context.Context, productID string) (Product, error) {
	p, ok := f.products[productID]
	if !ok {
		return Product{}, fmt.Errorf("product %s not found", productID)
	}
	return p, nil
}

type fakeOrders struct {
	created []CreateOrder
	err     error
}

func (f *fakeOrders) CreateOrder(ctx context.Context, req CreateOrder) (domain.Confirmation, error) {
	if f.err != nil {
		return domain.Confirmation{}, f.err
	}
	f.created = append(f.created, req)
	var total domain.Money
	for _, l := range req.Lines {
		total.Currency = l.LineTotal.Currency
		total.Amount += l.LineTotal.Amount
	}
	return domain.Confirmation{
		OrderID:   fmt.Sprintf("order-%d", len(f.created)),
		Status:    "PAID",
		Total:     total,
		CreatedAt: time.Now(),
	}, nil
}

func newFixture() (*Service, *fakeCart, *fakeOrders) {
	cart := &fakeCart{items: map[string][]CartItem{
		"sess": {
			{ProductID: "prod_1", Quantity: 1},
			{ProductID: "prod_2", Quantity: 1},
		},
	}}
	catalog := &fakeCatalog{products: map[string]Product{
		"prod_1": {ID: "prod_1", Name: "Tênis Corredor Urbano", Currency: "BRL", Amount: 12999},
		"prod_2": {ID: "prod_2", Name: "Camiseta Monocromática", Currency: "BRL", Amount: 4999},
		"prod_7": {ID: "prod_7", Name: "Mocassins Pisa", Currency: "BRL", Amount: 9550},
	}}
	orders := &fakeOrders{}
	return NewService(cart, catalog, orders, 4), cart, orders
}

func TestQuote(t *testing.T) {
	svc, _, _ := newFixture()

	quote, err := svc.Quote(context.Background(), "sess")
	if err != nil {
		t.Fatalf("Quote failed: %v", err)
	}
	if quote.ItemCount != 2 {
		t.Fatalf("expected item count 2, got %d", quote.ItemCount)
	}
	if quote.Subtotal != (domain.Money{Currency: "BRL", Amount: 17998}) {
		t.Fatalf("expected subtotal 17998 BRL, got %+v", quote.Subtotal)
	}
	// Lines keep the cart order despite concurrent pricing.
	if quote.Lines[0].ProductID != "prod_1" || quote.Lines[1].ProductID != "prod_2" {
		t.Fatalf("unexpected line order: %+v", quote.Lines)
	}
}

func TestQuoteEmptyCart(t *testing.T) {
	svc, cart, _ := newFixture()
	cart.items["empty"] = nil

	_, err := svc.Quote(context.Background(), "empty")
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestQuoteUnknownProductFails(t *testing.T) {
	svc, cart, _ := newFixture()
	cart.items["sess"] = append(cart.items["sess"], CartItem{ProductID: "ghost", Quantity: 1})

	if _, err := svc.Quote(context.Background(), "sess"); err == nil {
		t.Fatal("expected error for unknown product")
	}
}

func TestQuoteProductIgnoresCart(t *testing.T) {
	svc, cart, _ := newFixture()

	quote, err := svc.QuoteProduct(context.Background(), "prod_7")
	if err != nil {
		t.Fatalf("QuoteProduct failed: %v", err)
	}
	if quote.ItemCount != 1 {
		t.Fatalf("expected item count 1, got %d", quote.ItemCount)
	}
	if quote.Subtotal != (domain.Money{Currency: "BRL", Amount: 9550}) {
		t.Fatalf("expected subtotal 9550, got %+v", quote.Subtotal)
	}
	if cart.reads != 0 {
		t.Fatalf("buy-now quote must not read the cart, got %d reads", cart.reads)
	}

	// The real cart is untouched and still quotes on its own contents.
	after, err := svc.Quote(context.Background(), "sess")
	if err != nil {
		t.Fatalf("Quote failed: %v", err)
	}
	if after.ItemCount != 2 || after.Subtotal.Amount != 17998 {
		t.Fatalf("cart changed by buy-now quote: %+v", after)
	}
}

func TestPlaceOrderFromCartClearsCart(t *testing.T) {
	svc, cart, orders := newFixture()
	customer := domain.Customer{Name: "Ana", Email: "ana@example.com"}

	conf, err := svc.PlaceOrder(context.Background(), "sess", "", customer)
	if err != nil {
		t.Fatalf("PlaceOrder failed: %v", err)
	}
	if conf.Total.Amount != 17998 {
		t.Fatalf("expected total 17998, got %+v", conf.Total)
	}
	if len(orders.created) != 1 || len(orders.created[0].Lines) != 2 {
		t.Fatalf("unexpected order payload: %+v", orders.created)
	}
	if len(cart.cleared) != 1 || cart.cleared[0] != "sess" {
		t.Fatalf("expected cart cleared once for sess, got %v", cart.cleared)
	}
}

func TestPlaceOrderBuyNowLeavesCart(t *testing.T) {
	svc, cart, orders := newFixture()
	customer := domain.Customer{Name: "Ana", Email: "ana@example.com"}

	conf, err := svc.PlaceOrder(context.Background(), "sess", "prod_7", customer)
	if err != nil {
		t.Fatalf("PlaceOrder failed: %v", err)
	}
	if conf.Total.Amount != 9550 {
		t.Fatalf("expected total 9550, got %+v", conf.Total)
	}
	if len(orders.created[0].Lines) != 1 || orders.created[0].Lines[0].ProductID != "prod_7" {
		t.Fatalf("unexpected order lines: %+v", orders.created[0].Lines)
	}
	if len(cart.cleared) != 0 {
		t.Fatalf("buy-now must not clear the cart, got %v", cart.cleared)
	}
	if len(cart.items["sess"]) != 2 {
		t.Fatalf("cart mutated by buy-now order: %+v", cart.items["sess"])
	}
}

func TestPlaceOrderValidatesCustomer(t *testing.T) {
	svc, _, orders := newFixture()

	cases := []domain.Customer{
		{Name: "", Email: "ana@example.com"},
		{Name: "Ana", Email: "   "},
	}
	for _, c := range cases {
		_, err := svc.PlaceOrder(context.Background(), "sess", "", c)
		if !errors.Is(err, ErrInvalidCustomer) {
			t.Fatalf("expected ErrInvalidCustomer for %+v, got %v", c, err)
		}
	}
	if len(orders.created) != 0 {
		t.Fatalf("invalid customer must not create orders: %+v", orders.created)
	}
}
