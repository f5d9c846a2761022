// internal/adapters/in/http/shop/handler/favorite_handler.go
package shopHandler

import (
	"net/http"

	"zapateria/internal/adapters/in/http/middleware"
	usecase "zapateria/internal/application/usecase"
)

// FavoriteHandler serves the per-user favorites membership set:
//
//   - GET    /shop/me/favorites               (product ids)
//   - PUT    /shop/me/favorites/{productId}   (add, idempotent)
//   - DELETE /shop/me/favorites/{productId}   (remove, idempotent)
type FavoriteHandler struct {
	uc *usecase.FavoriteUsecase
}

func NewFavoriteHandler(uc *usecase.FavoriteUsecase) http.Handler {
	return &FavoriteHandler{uc: uc}
}

func (h *FavoriteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "favorite handler is not configured")
		return
	}

	uid, ok := middleware.CurrentUID(r)
	if !ok {
		unauthorized(w)
		return
	}

	productID, rest := pathTail("/shop/me/favorites", r.URL.Path)
	if rest != "" {
		notFound(w)
		return
	}

	switch {
	case productID == "" && r.Method == http.MethodGet:
		ids, err := h.uc.ListProductIDs(r.Context(), uid)
		if err != nil {
			writeStoreErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ids)

	case productID != "" && r.Method == http.MethodPut:
		if err := h.uc.Add(r.Context(), uid, productID); err != nil {
			writeStoreErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"favorito": true})

	case productID != "" && r.Method == http.MethodDelete:
		if err := h.uc.Remove(r.Context(), uid, productID); err != nil {
			writeStoreErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"favorito": false})

	default:
		methodNotAllowed(w)
	}
}
