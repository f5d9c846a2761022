// internal/adapters/in/http/shop/handler/admin_conversation_handler.go
package shopHandler

import (
	"net/http"

	usecase "zapateria/internal/application/usecase"
	convdom "zapateria/internal/domain/conversation"
)

// AdminConversationHandler serves the back-office side of the chat:
//
//   - GET  /admin/conversations                   (all threads)
//   - GET  /admin/conversations/{uid}             (one thread)
//   - POST /admin/conversations/{uid}/messages    (reply as admin)
//   - POST /admin/conversations/{uid}/read        (mark usuario messages read)
//   - GET  /admin/conversations/{uid}/unread      (unread usuario-message count)
type AdminConversationHandler struct {
	uc *usecase.ConversationUsecase
}

func NewAdminConversationHandler(uc *usecase.ConversationUsecase) http.Handler {
	return &AdminConversationHandler{uc: uc}
}

func (h *AdminConversationHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "admin conversation handler is not configured")
		return
	}

	uid, rest := pathTail("/admin/conversations", r.URL.Path)

	switch {
	case uid == "" && r.Method == http.MethodGet:
		cs, err := h.uc.ListAll(r.Context())
		if err != nil {
			writeStoreErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, cs)

	case uid != "" && rest == "" && r.Method == http.MethodGet:
		c, err := h.uc.Get(r.Context(), uid)
		if err != nil {
			writeStoreErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, c)

	case uid != "" && rest == "messages" && r.Method == http.MethodPost:
		var body struct {
			Texto string `json:"texto"`
		}
		if err := readJSON(r, &body); err != nil {
			badRequest(w, "invalid json body")
			return
		}
		c, err := h.uc.Send(r.Context(), uid, convdom.AutorAdmin, body.Texto)
		if err != nil {
			writeStoreErr(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, c)

	case uid != "" && rest == "read" && r.Method == http.MethodPost:
		if err := h.uc.MarkRead(r.Context(), uid, convdom.AutorAdmin); err != nil {
			writeStoreErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})

	case uid != "" && rest == "unread" && r.Method == http.MethodGet:
		n, err := h.uc.UnreadCount(r.Context(), uid, convdom.AutorAdmin)
		if err != nil {
			writeStoreErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]int{"unread": n})

	default:
		methodNotAllowed(w)
	}
}
