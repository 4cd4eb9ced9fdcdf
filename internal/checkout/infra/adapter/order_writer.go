package adapter

import (
	"context"

	checkoutapp "github.com/d1m3lo/storefront/internal/checkout/app"
	checkoutdomain "github.com/d1m3lo/storefront/internal/checkout/domain"
	orderapp "github.com/d1m3lo/storefront/internal/order/app"
	orderdomain "github.com/d1m3lo/storefront/internal/order/domain"
)

type OrderServiceWriter struct {
	svc            *orderapp.Service
	currency       string
	shippingAmount int64
}

func NewOrderServiceWriter(svc *orderapp.Service, currency string, shippingAmount int64) *OrderServiceWriter {
	return &OrderServiceWriter{
		svc:            svc,
		currency:       currency,
		shippingAmount: shippingAmount,
	}
}

func (w *OrderServiceWriter) CreateOrder(ctx context.Context, req checkoutapp.CreateOrder) (checkoutdomain.Confirmation, error) {
	items := make([]orderdomain.OrderItemRequest, 0, len(req.Lines))
	for _, line := range req.Lines {
		items = append(items, orderdomain.OrderItemRequest{
			ProductID:  line.ProductID,
			Name:       line.Name,
			UnitAmount: line.UnitPrice.Amount,
			Quantity:   int32(line.Quantity),
		})
	}

	resp, err := w.svc.CreateOrder(ctx, orderdomain.CreateOrderRequest{
		SessionID:      req.SessionID,
		Currency:       w.currency,
		ShippingAmount: w.shippingAmount,
		Customer: orderdomain.Customer{
			Name:    req.Customer.Name,
			Email:   req.Customer.Email,
			Address: req.Customer.Address,
			City:    req.Customer.City,
			ZipCode: req.Customer.ZipCode,
		},
		Items: items,
	})
	if err != nil {
		return checkoutdomain.Confirmation{}, err
	}

	return checkoutdomain.Confirmation{
		OrderID: resp.ID,
		Status:  resp.Status,
		Total: checkoutdomain.Money{
			Currency: w.currency,
			Amount:   resp.TotalAmount,
		},
		CreatedAt: resp.CreatedAt,
	}, nil
}
