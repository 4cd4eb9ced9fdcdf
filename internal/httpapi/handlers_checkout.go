package httpapi

import (
	"net/http"
	"time"

	checkoutdomain "github.com/d1m3lo/storefront/internal/checkout/domain"
)

// quoteHandler returns the checkout summary. With a product_id query
// parameter it is the buy-now deep-link path: the summary covers exactly
// that one product and the real cart is neither read nor changed.
func (a *App) quoteHandler(w http.ResponseWriter, r *http.Request) {
	if productID := r.URL.Query().Get("product_id"); productID != "" {
		quote, err := a.Checkout.QuoteProduct(r.Context(), productID)
		if err != nil {
			a.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toQuoteView(quote))
		return
	}

	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	quote, err := a.Checkout.Quote(r.Context(), sid)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toQuoteView(quote))
}

type placeOrderRequest struct {
	ProductID string `json:"product_id,omitempty"`
	Customer  struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Address string `json:"address"`
		City    string `json:"city"`
		ZipCode string `json:"zip_code"`
	} `json:"customer"`
}

type placeOrderResponse struct {
	OrderID   string    `json:"order_id"`
	Status    string    `json:"status"`
	Total     moneyView `json:"total"`
	CreatedAt time.Time `json:"created_at"`
}

func (a *App) placeOrderHandler(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	var req placeOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}

	conf, err := a.Checkout.PlaceOrder(r.Context(), sid, req.ProductID, checkoutdomain.Customer{
		Name:    req.Customer.Name,
		Email:   req.Customer.Email,
		Address: req.Customer.Address,
		City:    req.Customer.City,
		ZipCode: req.Customer.ZipCode,
	})
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, placeOrderResponse{
		OrderID:   conf.OrderID,
		Status:    conf.Status,
		Total:     money(conf.Total.Currency, conf.Total.Amount),
		CreatedAt: conf.CreatedAt,
	})
}

type orderListResponse struct {
	Orders []orderView `json:"orders"`
}

func (a *App) listOrdersHandler(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	orders, err := a.Orders.ListOrders(r.Context(), sid)
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	resp := orderListResponse{Orders: make([]orderView, 0, len(orders))}
	for _, o := range orders {
		resp.Orders = append(resp.Orders, toOrderView(o))
	}
	writeJSON(w, http.StatusOK, resp)
}
