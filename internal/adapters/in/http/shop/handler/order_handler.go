// internal/adapters/in/http/shop/handler/order_handler.go
package shopHandler

import (
	"net/http"
	"strings"

	"zapateria/internal/adapters/in/http/middleware"
	usecase "zapateria/internal/application/usecase"
)

// OrderHandler serves the customer's own order history:
//
//   - GET /shop/me/orders        (newest first)
//   - GET /shop/me/orders/{id}   (detail, own orders only)
type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) http.Handler {
	return &OrderHandler{uc: uc}
}

func (h *OrderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "order handler is not configured")
		return
	}
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	uid, ok := middleware.CurrentUID(r)
	if !ok {
		unauthorized(w)
		return
	}

	id, rest := pathTail("/shop/me/orders", r.URL.Path)
	if rest != "" {
		notFound(w)
		return
	}

	if id == "" {
		orders, err := h.uc.ListMine(r.Context(), uid)
		if err != nil {
			writeStoreErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, orders)
		return
	}

	o, err := h.uc.GetByID(r.Context(), id)
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	if !strings.EqualFold(o.UsuarioID, uid) {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, o)
}
