package static

import (
	"context"
	"errors"
	"testing"

	"github.com/d1m3lo/storefront/internal/catalog/app"
	"github.com/d1m3lo/storefront/internal/catalog/domain"
)

func newRepo(t *testing.T) *ProductRepo {
	t.Helper()
	r, err := NewProductRepo("BRL")
	if err != nil {
		t.Fatalf("NewProductRepo failed: %v", err)
	}
	return r
}

func TestSeedLoads(t *testing.T) {
	r := newRepo(t)

	p, err := r.Get(context.Background(), "prod_1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if p.Name != "Tênis Corredor Urbano" {
		t.Fatalf("unexpected name %q", p.Name)
	}
	if p.Price != (domain.Money{Currency: "BRL", Amount: 12999}) {
		t.Fatalf("expected price 12999 BRL, got %+v", p.Price)
	}
	if len(p.Colors) != 3 {
		t.Fatalf("expected 3 color variants, got %d", len(p.Colors))
	}
}

func TestGetUnknownProduct(t *testing.T) {
	r := newRepo(t)
	_, err := r.Get(context.Background(), "prod_999")
	if !errors.Is(err, app.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListFilters(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	t.Run("by category", func(t *testing.T) {
		got, _, err := r.List(ctx, app.ListQuery{Category: "Acessórios", Limit: 20})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 accessories, got %d", len(got))
		}
		for _, p := range got {
			if p.Category != "Acessórios" {
				t.Fatalf("wrong category: %+v", p)
			}
		}
	})

	t.Run("by tag", func(t *testing.T) {
		got, _, err := r.List(ctx, app.ListQuery{Tag: "oferta", Limit: 20})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(got) != 4 {
			t.Fatalf("expected 4 offers, got %d", len(got))
		}
	})

	t.Run("by text query", func(t *testing.T) {
		got, _, err := r.List(ctx, app.ListQuery{Query: "camiseta", Limit: 20})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 shirts, got %d", len(got))
		}
	})
}

func TestListPagination(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	first, cursor, err := r.List(ctx, app.ListQuery{Limit: 5})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(first) != 5 {
		t.Fatalf("expected 5 products, got %d", len(first))
	}
	if cursor == "" {
		t.Fatal("expected a next cursor")
	}
	if cursor != first[len(first)-1].ID {
		t.Fatalf("cursor should be the last returned id, got %q", cursor)
	}

	rest, cursor2, err := r.List(ctx, app.ListQuery{Limit: 100, Cursor: cursor})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(rest) != 7 {
		t.Fatalf("expected remaining 7 products, got %d", len(rest))
	}
	if cursor2 != "" {
		t.Fatalf("expected no further cursor, got %q", cursor2)
	}
	if rest[0].ID == first[len(first)-1].ID {
		t.Fatal("pages overlap")
	}
}

func TestListUnknownCursor(t *testing.T) {
	r := newRepo(t)
	_, _, err := r.List(context.Background(), app.ListQuery{Limit: 5, Cursor: "bogus"})
	if !errors.Is(err, app.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{in: "129.99", want: 12999},
		{in: "250.00", want: 25000},
		{in: "0", want: 0},
		{in: "45", want: 4500},
		{in: "-1.00", wantErr: true},
		{in: "1.999", wantErr: true},
		{in: "abc", wantErr: true},
	}

	for _, tc := range cases {
		got, err := parsePrice(tc.in, "BRL")
		if tc.wantErr {
			if err == nil {
				t.Fatalf("parsePrice(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("parsePrice(%q) failed: %v", tc.in, err)
		}
		if got.Amount != tc.want {
			t.Fatalf("parsePrice(%q) = %d, want %d", tc.in, got.Amount, tc.want)
		}
	}
}
