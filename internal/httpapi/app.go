// Package httpapi exposes the storefront's JSON API.
package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	cartapp "github.com/d1m3lo/storefront/internal/cart/app"
	cartdomain "github.com/d1m3lo/storefront/internal/cart/domain"
	catalogapp "github.com/d1m3lo/storefront/internal/catalog/app"
	catalogdomain "github.com/d1m3lo/storefront/internal/catalog/domain"
	checkoutapp "github.com/d1m3lo/storefront/internal/checkout/app"
	checkoutdomain "github.com/d1m3lo/storefront/internal/checkout/domain"
	favapp "github.com/d1m3lo/storefront/internal/favorites/app"
	orderapp "github.com/d1m3lo/storefront/internal/order/app"
	orderdomain "github.com/d1m3lo/storefront/internal/order/domain"
	"github.com/shopspring/decimal"
)

// sessionHeader identifies the shopping session. Auth is out of scope;
// the client is trusted to send a stable id.
const sessionHeader = "X-Session-Id"

type App struct {
	Log       *slog.Logger
	Catalog   *catalogapp.Service
	Cart      *cartapp.Service
	Checkout  *checkoutapp.Service
	Orders    *orderapp.Service
	Favorites *favapp.Service
}

func NewApp(log *slog.Logger, catalog *catalogapp.Service, cart *cartapp.Service, checkout *checkoutapp.Service, orders *orderapp.Service, favorites *favapp.Service) *App {
	return &App{
		Log:       log,
		Catalog:   catalog,
		Cart:      cart,
		Checkout:  checkout,
		Orders:    orders,
		Favorites: favorites,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// sessionID extracts the session id header; handlers that need it reply
// 400 when it is missing.
func sessionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.Header.Get(sessionHeader)
	if id == "" {
		WriteJSONError(w, http.StatusBadRequest, "MISSING_SESSION", "header "+sessionHeader+" is required")
		return "", false
	}
	return id, true
}

type moneyView struct {
	Currency string `json:"currency"`
	Amount   int64  `json:"amount"`
	Display  string `json:"display"`
}

func money(currency string, amount int64) moneyView {
	return moneyView{
		Currency: currency,
		Amount:   amount,
		Display:  decimal.New(amount, -2).StringFixed(2),
	}
}

type colorView struct {
	Name  string   `json:"name"`
	Hex   string   `json:"hex"`
	Sizes []string `json:"sizes,omitempty"`
}

type productView struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Category    string      `json:"category"`
	Subcategory string      `json:"subcategory,omitempty"`
	Brand       string      `json:"brand,omitempty"`
	Description string      `json:"description,omitempty"`
	Price       moneyView   `json:"price"`
	OldPrice    *moneyView  `json:"old_price,omitempty"`
	Colors      []colorView `json:"colors,omitempty"`
	Sizes       []string    `json:"sizes,omitempty"`
	Tags        []string    `json:"tags,omitempty"`
}

func toProductView(p catalogdomain.Product) productView {
	v := productView{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Subcategory: p.Subcategory,
		Brand:       p.Brand,
		Description: p.Description,
		Price:       money(p.Price.Currency, p.Price.Amount),
		Sizes:       p.Sizes,
		Tags:        p.Tags,
	}
	if p.OldPrice != nil {
		old := money(p.OldPrice.Currency, p.OldPrice.Amount)
		v.OldPrice = &old
	}
	for _, c := range p.Colors {
		v.Colors = append(v.Colors, colorView{Name: c.Name, Hex: c.Hex, Sizes: c.Sizes})
	}
	return v
}

type lineItemView struct {
	ProductID string    `json:"product_id"`
	Name      string    `json:"name"`
	Quantity  int32     `json:"quantity"`
	UnitPrice moneyView `json:"unit_price"`
	LineTotal moneyView `json:"line_total"`
}

type cartView struct {
	ID        string         `json:"id"`
	SessionID string         `json:"session_id"`
	Items     []lineItemView `json:"items"`
	ItemCount int32          `json:"item_count"`
	Subtotal  moneyView      `json:"subtotal"`
}

func toCartView(c cartdomain.Cart) cartView {
	items := make([]lineItemView, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, lineItemView{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: money(it.UnitPrice.Currency, it.UnitPrice.Amount),
			LineTotal: money(it.UnitPrice.Currency, it.UnitPrice.Amount*int64(it.Quantity)),
		})
	}
	sub := c.Subtotal()
	return cartView{
		ID:        c.ID,
		SessionID: c.SessionID,
		Items:     items,
		ItemCount: c.ItemCount(),
		Subtotal:  money(sub.Currency, sub.Amount),
	}
}

type quoteLineView struct {
	ProductID string    `json:"product_id"`
	Name      string    `json:"name"`
	Quantity  int64     `json:"quantity"`
	UnitPrice moneyView `json:"unit_price"`
	LineTotal moneyView `json:"line_total"`
}

type quoteView struct {
	Lines     []quoteLineView `json:"lines"`
	ItemCount int64           `json:"item_count"`
	Subtotal  moneyView       `json:"subtotal"`
}

func toQuoteView(q checkoutdomain.Quote) quoteView {
	lines := make([]quoteLineView, 0, len(q.Lines))
	for _, l := range q.Lines {
		lines = append(lines, quoteLineView{
			ProductID: l.ProductID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: money(l.UnitPrice.Currency, l.UnitPrice.Amount),
			LineTotal: money(l.LineTotal.Currency, l.LineTotal.Amount),
		})
	}
	return quoteView{
		Lines:     lines,
		ItemCount: q.ItemCount,
		Subtotal:  money(q.Subtotal.Currency, q.Subtotal.Amount),
	}
}

type orderItemView struct {
	ProductID string    `json:"product_id"`
	Name      string    `json:"name"`
	Quantity  int32     `json:"quantity"`
	UnitPrice moneyView `json:"unit_price"`
	LineTotal moneyView `json:"line_total"`
}

type orderView struct {
	ID        string          `json:"id"`
	Status    string          `json:"status"`
	Items     []orderItemView `json:"items"`
	Subtotal  moneyView       `json:"subtotal"`
	Shipping  moneyView       `json:"shipping"`
	Total     moneyView       `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
}

func toOrderView(o orderdomain.Order) orderView {
	items := make([]orderItemView, 0, len(o.OrderItems))
	for _, it := range o.OrderItems {
		items = append(items, orderItemView{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: money(o.Currency, it.UnitAmount),
			LineTotal: money(o.Currency, it.LineTotalAmount),
		})
	}
	return orderView{
		ID:        o.ID,
		Status:    o.Status,
		Items:     items,
		Subtotal:  money(o.Currency, o.SubTotalAmount),
		Shipping:  money(o.Currency, o.ShippingAmount),
		Total:     money(o.Currency, o.TotalAmount),
		CreatedAt: o.CreatedAt,
	}
}
