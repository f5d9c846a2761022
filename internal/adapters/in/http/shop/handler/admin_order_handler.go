// internal/adapters/in/http/shop/handler/admin_order_handler.go
package shopHandler

import (
	"errors"
	"net/http"
	"strings"

	usecase "zapateria/internal/application/usecase"
	"zapateria/internal/domain/common"
	orderdom "zapateria/internal/domain/order"
)

// AdminOrderHandler serves the back-office order board:
//
//   - GET   /admin/orders                 (filter + paginate)
//   - GET   /admin/orders/{id}            (detail)
//   - PATCH /admin/orders/{id}/estado     (status overwrite)
//
// Listing filters (query): q (id substring), estado, desde, hasta
// (calendar days, inclusive), usuario, orden, dir, page, perPage.
type AdminOrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewAdminOrderHandler(uc *usecase.OrderUsecase) http.Handler {
	return &AdminOrderHandler{uc: uc}
}

func (h *AdminOrderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "admin order handler is not configured")
		return
	}

	id, rest := pathTail("/admin/orders", r.URL.Path)

	switch {
	case id == "" && r.Method == http.MethodGet:
		h.handleList(w, r)
	case id != "" && rest == "" && r.Method == http.MethodGet:
		h.handleGet(w, r, id)
	case id != "" && rest == "estado" && r.Method == http.MethodPatch:
		h.handleSetEstado(w, r, id)
	default:
		methodNotAllowed(w)
	}
}

func (h *AdminOrderHandler) handleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := orderdom.Filter{
		UsuarioID:  strings.TrimSpace(q.Get("usuario")),
		IDContains: strings.TrimSpace(q.Get("q")),
		Estado:     orderdom.Estado(strings.TrimSpace(q.Get("estado"))),
		Desde:      parseDateParam(q.Get("desde")),
		Hasta:      parseDateParam(q.Get("hasta")),
	}
	sort := common.Sort{
		Column: strings.TrimSpace(q.Get("orden")),
		Order:  common.SortOrder(strings.TrimSpace(q.Get("dir"))),
	}
	page := common.Page{
		Number:  parseIntDefault(q.Get("page"), 1),
		PerPage: parseIntDefault(q.Get("perPage"), 0),
	}

	res, err := h.uc.ListForStaff(r.Context(), filter, sort, page)
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *AdminOrderHandler) handleGet(w http.ResponseWriter, r *http.Request, id string) {
	o, err := h.uc.GetByID(r.Context(), id)
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *AdminOrderHandler) handleSetEstado(w http.ResponseWriter, r *http.Request, id string) {
	var body struct {
		Estado string `json:"estado"`
	}
	if err := readJSON(r, &body); err != nil {
		badRequest(w, "invalid json body")
		return
	}

	if err := h.uc.SetEstado(r.Context(), id, body.Estado); err != nil {
		if errors.Is(err, orderdom.ErrInvalidEstado) {
			badRequest(w, "estado inválido")
			return
		}
		writeStoreErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"estado": strings.TrimSpace(strings.ToLower(body.Estado))})
}
