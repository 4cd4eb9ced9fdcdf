package httpapi

import "net/http"

// NewRouter registers the API routes and wraps them with the request-id
// and logging middleware.
func NewRouter(app *App) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	mux.HandleFunc("GET /api/products", app.listProductsHandler)
	mux.HandleFunc("GET /api/products/{id}", app.getProductHandler)

	mux.HandleFunc("GET /api/cart", app.getCartHandler)
	mux.HandleFunc("POST /api/cart/items", app.addCartItemHandler)
	mux.HandleFunc("PUT /api/cart/items/{id}", app.updateCartItemHandler)
	mux.HandleFunc("DELETE /api/cart/items/{id}", app.removeCartItemHandler)
	mux.HandleFunc("DELETE /api/cart", app.clearCartHandler)

	mux.HandleFunc("GET /api/checkout/quote", app.quoteHandler)
	mux.HandleFunc("POST /api/checkout/orders", app.placeOrderHandler)
	mux.HandleFunc("GET /api/orders", app.listOrdersHandler)

	mux.HandleFunc("GET /api/favorites", app.listFavoritesHandler)
	mux.HandleFunc("POST /api/favorites", app.addFavoriteHandler)
	mux.HandleFunc("DELETE /api/favorites/{productID}", app.removeFavoriteHandler)

	return WithRequestID(WithLogging(app.Log, mux))
}
