package domain

import "time"

type Money struct {
	Currency string
	Amount   int64
}

type QuoteLine struct {
	ProductID string
	Name      string
	Quantity  int64
	UnitPrice Money
	LineTotal Money
}

// Quote is the order summary shown at checkout: the priced lines, the
// summed item count and the subtotal. It is a snapshot; it never feeds
// back into the cart.
type Quote struct {
	Lines     []QuoteLine
	ItemCount int64
	Subtotal  Money
}

type Customer struct {
	Name    string
	Email   string
	Address string
	City    string
	ZipCode string
}

type Confirmation struct {
	OrderID   string
	Status    string
	Total     Money
	CreatedAt time.Time
}
