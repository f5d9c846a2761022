// internal/adapters/in/http/shop/handler/conversation_handler.go
package shopHandler

import (
	"net/http"

	"zapateria/internal/adapters/in/http/middleware"
	usecase "zapateria/internal/application/usecase"
	convdom "zapateria/internal/domain/conversation"
)

// ConversationHandler serves the customer side of the support chat:
//
//   - GET  /shop/me/conversation            (full thread)
//   - POST /shop/me/conversation/messages   (send as usuario)
//   - POST /shop/me/conversation/read       (mark admin messages read)
//   - GET  /shop/me/conversation/unread     (unread admin-message count)
//
// The unread endpoint is what the storefront polls every 10s; there is
// no push channel for chat.
type ConversationHandler struct {
	uc *usecase.ConversationUsecase
}

func NewConversationHandler(uc *usecase.ConversationUsecase) http.Handler {
	return &ConversationHandler{uc: uc}
}

func (h *ConversationHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "conversation handler is not configured")
		return
	}

	uid, ok := middleware.CurrentUID(r)
	if !ok {
		unauthorized(w)
		return
	}

	sub, rest := pathTail("/shop/me/conversation", r.URL.Path)
	if rest != "" {
		notFound(w)
		return
	}

	switch {
	case sub == "" && r.Method == http.MethodGet:
		c, err := h.uc.Get(r.Context(), uid)
		if err != nil {
			writeStoreErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, c)

	case sub == "messages" && r.Method == http.MethodPost:
		var body struct {
			Texto string `json:"texto"`
		}
		if err := readJSON(r, &body); err != nil {
			badRequest(w, "invalid json body")
			return
		}
		c, err := h.uc.Send(r.Context(), uid, convdom.AutorUsuario, body.Texto)
		if err != nil {
			writeStoreErr(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, c)

	case sub == "read" && r.Method == http.MethodPost:
		if err := h.uc.MarkRead(r.Context(), uid, convdom.AutorUsuario); err != nil {
			writeStoreErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})

	case sub == "unread" && r.Method == http.MethodGet:
		n, err := h.uc.UnreadCount(r.Context(), uid, convdom.AutorUsuario)
		if err != nil {
			writeStoreErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]int{"unread": n})

	default:
		methodNotAllowed(w)
	}
}
