package httpapi

import "net/http"

type favoriteView struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
}

type favoriteListResponse struct {
	Favorites []favoriteView `json:"favorites"`
}

func (a *App) listFavoritesHandler(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	favs, err := a.Favorites.ListFavorites(r.Context(), sid)
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	resp := favoriteListResponse{Favorites: make([]favoriteView, 0, len(favs))}
	for _, f := range favs {
		resp.Favorites = append(resp.Favorites, favoriteView{ID: f.ID, ProductID: f.ProductID})
	}
	writeJSON(w, http.StatusOK, resp)
}

type addFavoriteRequest struct {
	ProductID string `json:"product_id"`
}

func (a *App) addFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	var req addFavoriteRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}

	// Only catalog products can be favorited.
	if _, err := a.Catalog.GetProduct(r.Context(), req.ProductID); err != nil {
		a.writeError(w, r, err)
		return
	}

	fav, err := a.Favorites.AddFavorite(r.Context(), sid, req.ProductID)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, favoriteView{ID: fav.ID, ProductID: fav.ProductID})
}

func (a *App) removeFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	if err := a.Favorites.RemoveFavorite(r.Context(), sid, r.PathValue("productID")); err != nil {
		a.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
