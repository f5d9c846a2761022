// internal/adapters/in/http/shop/handler/contact_handler.go
package shopHandler

import (
	"net/http"

	usecase "zapateria/internal/application/usecase"
)

// ContactHandler serves POST /shop/contact, the public contact form.
// Messages land in their collection as a write-only sink; nothing in the
// storefront reads them back.
type ContactHandler struct {
	uc *usecase.CatalogUsecase
}

func NewContactHandler(uc *usecase.CatalogUsecase) http.Handler {
	return &ContactHandler{uc: uc}
}

func (h *ContactHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "contact handler is not configured")
		return
	}
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var body struct {
		Nombre string `json:"nombre"`
		Correo string `json:"correo"`
		Texto  string `json:"texto"`
	}
	if err := readJSON(r, &body); err != nil {
		badRequest(w, "invalid json body")
		return
	}

	if err := h.uc.SubmitContactMessage(r.Context(), body.Nombre, body.Correo, body.Texto); err != nil {
		writeStoreErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "enviado"})
}
