package domain

import "time"

type Customer struct {
	Name    string
	Email   string
	Address string
	City    string
	ZipCode string
}

type Order struct {
	ID             string
	SessionID      string
	Status         string
	Currency       string
	Customer       Customer
	SubTotalAmount int64
	ShippingAmount int64
	TotalAmount    int64
	OrderItems     []OrderItem
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type OrderItem struct {
	ID              string
	OrderID         string
	ProductID       string
	Name            string
	UnitAmount      int64
	Quantity        int32
	LineTotalAmount int64
}

type CreateOrderRequest struct {
	SessionID      string
	Currency       string
	Customer       Customer
	ShippingAmount int64
	Items          []OrderItemRequest
}

type OrderItemRequest struct {
	ProductID  string
	Name       string
	UnitAmount int64
	Quantity   int32
}

type OrderResponse struct {
	ID          string    `json:"id"`
	Status      string    `json:"status"`
	TotalAmount int64     `json:"total_amount"`
	CreatedAt   time.Time `json:"created_at"`
}
