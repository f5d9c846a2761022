// internal/adapters/in/http/shop/handler/cart_handler.go
package shopHandler

import (
	"errors"
	"net/http"

	"zapateria/internal/adapters/in/http/middleware"
	usecase "zapateria/internal/application/usecase"
	productdom "zapateria/internal/domain/product"
)

// CartHandler serves the authenticated cart:
//
//   - GET    /shop/me/cart            (list my lines)
//   - POST   /shop/me/cart            (add line)
//   - PUT    /shop/me/cart/{lineId}   (set cantidad)
//   - DELETE /shop/me/cart/{lineId}   (remove line)
type CartHandler struct {
	uc *usecase.CartUsecase
}

func NewCartHandler(uc *usecase.CartUsecase) http.Handler {
	return &CartHandler{uc: uc}
}

func (h *CartHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "cart handler is not configured")
		return
	}

	uid, ok := middleware.CurrentUID(r)
	if !ok {
		unauthorized(w)
		return
	}

	lineID, rest := pathTail("/shop/me/cart", r.URL.Path)
	if rest != "" {
		notFound(w)
		return
	}

	switch {
	case lineID == "" && r.Method == http.MethodGet:
		h.handleList(w, r, uid)
	case lineID == "" && r.Method == http.MethodPost:
		h.handleAdd(w, r, uid)
	case lineID != "" && r.Method == http.MethodPut:
		h.handleSetCantidad(w, r, lineID)
	case lineID != "" && r.Method == http.MethodDelete:
		h.handleRemove(w, r, lineID)
	default:
		methodNotAllowed(w)
	}
}

func (h *CartHandler) handleList(w http.ResponseWriter, r *http.Request, uid string) {
	lines, err := h.uc.List(r.Context(), uid)
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lines)
}

func (h *CartHandler) handleAdd(w http.ResponseWriter, r *http.Request, uid string) {
	var body struct {
		ProductoID string `json:"productoId"`
		Talla      string `json:"talla"`
		Cantidad   int    `json:"cantidad"`
	}
	if err := readJSON(r, &body); err != nil {
		badRequest(w, "invalid json body")
		return
	}

	line, err := h.uc.AddLine(r.Context(), usecase.AddLineInput{
		UsuarioID:  uid,
		ProductoID: body.ProductoID,
		Talla:      body.Talla,
		Cantidad:   body.Cantidad,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInsufficientStock):
			writeErr(w, http.StatusConflict, usecase.UserMessage(err))
		case errors.Is(err, productdom.ErrSizeNotTracked):
			badRequest(w, "talla no disponible")
		default:
			writeStoreErr(w, err)
		}
		return
	}
	writeJSON(w, http.StatusCreated, line)
}

func (h *CartHandler) handleSetCantidad(w http.ResponseWriter, r *http.Request, lineID string) {
	var body struct {
		Cantidad int `json:"cantidad"`
	}
	if err := readJSON(r, &body); err != nil {
		badRequest(w, "invalid json body")
		return
	}

	if err := h.uc.UpdateQuantity(r.Context(), lineID, body.Cantidad); err != nil {
		writeStoreErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *CartHandler) handleRemove(w http.ResponseWriter, r *http.Request, lineID string) {
	if err := h.uc.RemoveLine(r.Context(), lineID); err != nil {
		writeStoreErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
