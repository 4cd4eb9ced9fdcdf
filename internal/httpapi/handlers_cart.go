package httpapi

import (
	"net/http"

	cartdomain "github.com/d1m3lo/storefront/internal/cart/domain"
)

func (a *App) getCartHandler(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	cart, err := a.Cart.GetCart(r.Context(), sid)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCartView(cart))
}

type addCartItemRequest struct {
	ProductID string `json:"product_id"`
}

func (a *App) addCartItemHandler(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	var req addCartItemRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}

	// The cart trusts the product it is handed, so resolve it from the
	// catalog here rather than letting clients submit arbitrary prices.
	p, err := a.Catalog.GetProduct(r.Context(), req.ProductID)
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	cart, err := a.Cart.AddItem(r.Context(), sid, cartdomain.Product{
		ID:   p.ID,
		Name: p.Name,
		UnitPrice: cartdomain.Money{
			Currency: p.Price.Currency,
			Amount:   p.Price.Amount,
		},
	})
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCartView(cart))
}

type updateCartItemRequest struct {
	Quantity int32 `json:"quantity"`
}

func (a *App) updateCartItemHandler(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	var req updateCartItemRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}

	cart, err := a.Cart.SetItemQuantity(r.Context(), sid, r.PathValue("id"), req.Quantity)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCartView(cart))
}

func (a *App) removeCartItemHandler(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	cart, err := a.Cart.RemoveItem(r.Context(), sid, r.PathValue("id"))
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCartView(cart))
}

func (a *App) clearCartHandler(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	cart, err := a.Cart.ClearCart(r.Context(), sid)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCartView(cart))
}
