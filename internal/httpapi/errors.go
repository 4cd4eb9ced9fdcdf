package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	cartdomain "github.com/d1m3lo/storefront/internal/cart/domain"
	catalogapp "github.com/d1m3lo/storefront/internal/catalog/app"
	checkoutapp "github.com/d1m3lo/storefront/internal/checkout/app"
	favapp "github.com/d1m3lo/storefront/internal/favorites/app"
)

type jsonError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func WriteJSONError(w http.ResponseWriter, status int, code, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(jsonError{Error: code, Details: details})
}

// httpStatusFromErr maps application errors onto HTTP status and a stable
// error code for the JSON body.
func httpStatusFromErr(err error) (int, string) {
	switch {
	case errors.Is(err, cartdomain.ErrInvalidProduct),
		errors.Is(err, catalogapp.ErrInvalidInput),
		errors.Is(err, favapp.ErrInvalidInput),
		errors.Is(err, checkoutapp.ErrInvalidCustomer):
		return http.StatusBadRequest, "INVALID_ARGUMENT"
	case errors.Is(err, catalogapp.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, checkoutapp.ErrEmptyCart):
		return http.StatusConflict, "EMPTY_CART"
	default:
		return http.StatusInternalServerError, "INTERNAL"
	}
}

func (a *App) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := httpStatusFromErr(err)
	if status >= http.StatusInternalServerError {
		a.Log.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "err", err)
	}
	WriteJSONError(w, status, code, err.Error())
}
