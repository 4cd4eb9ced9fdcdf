package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/d1m3lo/storefront/internal/order/domain"
)

const (
	OrderStatusPending = "PENDING"
	OrderStatusPaid    = "PAID"
)

type Service struct {
	repo OrderRepo
	log  *slog.Logger
}

func NewService(repo OrderRepo, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{repo: repo, log: log}
}

// CreateOrder validates the request, totals it, and records the order.
// Payment is simulated: every order is approved immediately and only
// logged, nothing is charged.
func (s *Service) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (domain.OrderResponse, error) {
	if req.ShippingAmount < 0 {
		return domain.OrderResponse{}, fmt.Errorf("shipping amount cannot be negative, got %d", req.ShippingAmount)
	}
	if len(req.Items) == 0 {
		return domain.OrderResponse{}, fmt.Errorf("order has no items")
	}

	orderItems := make([]domain.OrderItem, 0, len(req.Items))
	var subTotalAmount int64

	for i, item := range req.Items {
		if item.Quantity <= 0 {
			return domain.OrderResponse{}, fmt.Errorf("item %d: quantity must be positive, got %d", i, item.Quantity)
		}
		if item.UnitAmount < 0 {
			return domain.OrderResponse{}, fmt.Errorf("item %d: unit amount cannot be negative, got %d", i, item.UnitAmount)
		}

		orderItems = append(orderItems, domain.OrderItem{
			ProductID:       item.ProductID,
			Name:            item.Name,
			UnitAmount:      item.UnitAmount,
			Quantity:        item.Quantity,
			LineTotalAmount: item.UnitAmount * int64(item.Quantity),
		})

		subTotalAmount += item.UnitAmount * int64(item.Quantity)
	}

	order := domain.Order{
		SessionID:      req.SessionID,
		Status:         OrderStatusPaid,
		Currency:       req.Currency,
		Customer:       req.Customer,
		ShippingAmount: req.ShippingAmount,
		SubTotalAmount: subTotalAmount,
		TotalAmount:    subTotalAmount + req.ShippingAmount,
		OrderItems:     orderItems,
	}

	created, err := s.repo.Create(ctx, order)
	if err != nil {
		return domain.OrderResponse{}, err
	}

	s.log.InfoContext(ctx, "payment simulated",
		slog.String("order_id", created.ID),
		slog.Int64("amount", created.TotalAmount),
		slog.String("currency", created.Currency),
	)

	return domain.OrderResponse{
		ID:          created.ID,
		Status:      created.Status,
		TotalAmount: created.TotalAmount,
		CreatedAt:   created.CreatedAt,
	}, nil
}

func (s *Service) ListOrders(ctx context.Context, sessionID string) ([]domain.Order, error) {
	return s.repo.ListBySession(ctx, sessionID)
}
