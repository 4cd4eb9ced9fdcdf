package domain

import (
	"errors"
	"strings"
	"time"
)

// ErrInvalidProduct is returned when an item is added with no usable
// product identifier or a negative unit price.
var ErrInvalidProduct = errors.New("invalid product")

type Money struct {
	Currency string
	Amount   int64
}

// Product is the slice of catalog data the cart needs. The unit price is
// snapshotted into the line item at add time; later catalog changes do not
// reprice lines already in the cart.
type Product struct {
	ID        string
	Name      string
	UnitPrice Money
}

type LineItem struct {
	ProductID string
	Name      string
	UnitPrice Money
	Quantity  int32
}

// Cart is the session-scoped ledger of line items. Items keep insertion
// order: the position of a line is fixed when its product is first added
// and survives quantity updates. At most one line exists per product id,
// and every line has quantity >= 1.
type Cart struct {
	ID        string
	SessionID string
	Items     []LineItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AddItem merges the product into the cart: an existing line for the same
// product id gains quantity 1, otherwise a new line with quantity 1 is
// appended.
func (c *Cart) AddItem(p Product) error {
	if strings.TrimSpace(p.ID) == "" {
		return ErrInvalidProduct
	}
	if p.UnitPrice.Amount < 0 {
		return ErrInvalidProduct
	}

	for i := range c.Items {
		if c.Items[i].ProductID == p.ID {
			c.Items[i].Quantity++
			return nil
		}
	}

	c.Items = append(c.Items, LineItem{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.UnitPrice,
		Quantity:  1,
	})
	return nil
}

// SetQuantity sets the line for productID to exactly quantity. A quantity
// of zero or less removes the line. Absence is not an error: setting a
// quantity on a product that is not in the cart has no effect.
func (c *Cart) SetQuantity(productID string, quantity int32) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem deletes the line for productID. Removing a product that is
// not in the cart is a no-op.
func (c *Cart) RemoveItem(productID string) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// Clear drops every line.
func (c *Cart) Clear() {
	c.Items = nil
}

// ItemCount is the sum of line quantities, recomputed on every call.
func (c *Cart) ItemCount() int32 {
	var n int32
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

// Subtotal is the sum of unit price times quantity over all lines,
// recomputed on every call. The currency is taken from the first line;
// an empty cart yields a zero Money.
func (c *Cart) Subtotal() Money {
	var total Money
	for i, it := range c.Items {
		if i == 0 {
			total.Currency = it.UnitPrice.Currency
		}
		total.Amount += it.UnitPrice.Amount * int64(it.Quantity)
	}
	return total
}

// Find returns the line for productID, if present.
func (c *Cart) Find(productID string) (LineItem, bool) {
	for _, it := range c.Items {
		if it.ProductID == productID {
			return it, true
		}
	}
	return LineItem{}, false
}
