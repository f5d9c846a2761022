// internal/adapters/in/http/shop/handler/checkout_handler.go
package shopHandler

import (
	"errors"
	"net/http"

	"zapateria/internal/adapters/in/http/middleware"
	usecase "zapateria/internal/application/usecase"
	cartdom "zapateria/internal/domain/cart"
	orderdom "zapateria/internal/domain/order"
)

// CheckoutHandler serves POST /shop/me/checkout.
//
// The request carries the shipping form plus the client's cart snapshot.
// When items is omitted the server reads the live cart instead; either
// way the snapshot it converts is the one frozen into the order.
type CheckoutHandler struct {
	uc   *usecase.CheckoutUsecase
	cart *usecase.CartUsecase
}

func NewCheckoutHandler(uc *usecase.CheckoutUsecase, cart *usecase.CartUsecase) http.Handler {
	return &CheckoutHandler{uc: uc, cart: cart}
}

func (h *CheckoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "checkout handler is not configured")
		return
	}
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	uid, ok := middleware.CurrentUID(r)
	if !ok {
		unauthorized(w)
		return
	}

	var body struct {
		Nombre     string         `json:"nombre"`
		Direccion  string         `json:"direccion"`
		Telefono   string         `json:"telefono"`
		Correo     string         `json:"correo"`
		MetodoPago string         `json:"metodoPago"`
		Nota       string         `json:"nota"`
		Items      []cartdom.Line `json:"items"`
	}
	if err := readJSON(r, &body); err != nil {
		badRequest(w, "invalid json body")
		return
	}

	lines := body.Items
	if len(lines) == 0 && h.cart != nil {
		loaded, err := h.cart.List(r.Context(), uid)
		if err != nil {
			writeStoreErr(w, err)
			return
		}
		lines = loaded
	}

	o, err := h.uc.Checkout(r.Context(), usecase.CheckoutInput{
		UsuarioID:  uid,
		Lines:      lines,
		Nombre:     body.Nombre,
		Direccion:  body.Direccion,
		Telefono:   body.Telefono,
		Correo:     body.Correo,
		MetodoPago: body.MetodoPago,
		Nota:       body.Nota,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCheckoutEmptyCart):
			badRequest(w, "el carrito está vacío")
		case errors.Is(err, orderdom.ErrInvalidMetodoPago):
			badRequest(w, "método de pago inválido")
		case errors.Is(err, orderdom.ErrInvalidNombre),
			errors.Is(err, orderdom.ErrInvalidDireccion),
			errors.Is(err, orderdom.ErrInvalidTelefono):
			badRequest(w, "datos de envío incompletos")
		default:
			writeStoreErr(w, err)
		}
		return
	}
	writeJSON(w, http.StatusCreated, o)
}
