// internal/adapters/in/http/shop/handler/intent_handler.go
package shopHandler

import (
	"net/http"

	"zapateria/internal/adapters/in/http/middleware"
	usecase "zapateria/internal/application/usecase"
)

// IntentHandler serves the login handoff slot:
//
//   - POST /shop/me/intent           (stage: overwrite the slot)
//   - POST /shop/me/login-complete   (consume: replay staged action)
//
// Staging happens right before the client bounces through the auth
// screen; consumption happens exactly once afterwards.
type IntentHandler struct {
	uc *usecase.IntentUsecase
}

func NewIntentHandler(uc *usecase.IntentUsecase) http.Handler {
	return &IntentHandler{uc: uc}
}

func (h *IntentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "intent handler is not configured")
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

	switch r.URL.Path {
	case "/shop/me/intent", "/shop/me/intent/":
		h.handleStage(w, r, uid)
	case "/shop/me/login-complete", "/shop/me/login-complete/":
		h.handleCompleteLogin(w, r, uid)
	default:
		notFound(w)
	}
}

func (h *IntentHandler) handleStage(w http.ResponseWriter, r *http.Request, uid string) {
	var body struct {
		ProductoID string `json:"productoId"`
		Talla      string `json:"talla"`
		Cantidad   int    `json:"cantidad"`
		RedirectTo string `json:"redirectTo"`
	}
	if err := readJSON(r, &body); err != nil {
		badRequest(w, "invalid json body")
		return
	}

	err := h.uc.Stage(r.Context(), usecase.StageInput{
		UsuarioID:  uid,
		ProductoID: body.ProductoID,
		Talla:      body.Talla,
		Cantidad:   body.Cantidad,
		RedirectTo: body.RedirectTo,
	})
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "staged"})
}

func (h *IntentHandler) handleCompleteLogin(w http.ResponseWriter, r *http.Request, uid string) {
	res, err := h.uc.CompleteLogin(r.Context(), uid)
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
