package httpapi

import (
	"net/http"
	"strconv"

	catalogapp "github.com/d1m3lo/storefront/internal/catalog/app"
)

type productListResponse struct {
	Products   []productView `json:"products"`
	NextCursor string        `json:"next_cursor,omitempty"`
}

func (a *App) listProductsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))

	products, next, err := a.Catalog.ListProducts(r.Context(), catalogapp.ListQuery{
		Query:    q.Get("q"),
		Category: q.Get("category"),
		Tag:      q.Get("tag"),
		Limit:    limit,
		Cursor:   q.Get("cursor"),
	})
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	resp := productListResponse{Products: make([]productView, 0, len(products)), NextCursor: next}
	for _, p := range products {
		resp.Products = append(resp.Products, toProductView(p))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *App) getProductHandler(w http.ResponseWriter, r *http.Request) {
	p, err := a.Catalog.GetProduct(r.Context(), r.PathValue("id"))
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductView(p))
}
