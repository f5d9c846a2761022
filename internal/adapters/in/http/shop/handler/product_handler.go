// internal/adapters/in/http/shop/handler/product_handler.go
package shopHandler

import (
	"net/http"
	"strings"

	"zapateria/internal/adapters/in/http/middleware"
	usecase "zapateria/internal/application/usecase"
	"zapateria/internal/domain/common"
	productdom "zapateria/internal/domain/product"
)

// ProductHandler serves the public storefront catalog:
//
//   - GET  /shop/products                 (list, filter via query)
//   - GET  /shop/products/{id}            (detail)
//   - GET  /shop/products/{id}/reviews    (reviews, public)
//   - POST /shop/products/{id}/reviews    (add review, requires auth)
type ProductHandler struct {
	uc *usecase.CatalogUsecase
}

func NewProductHandler(uc *usecase.CatalogUsecase) http.Handler {
	return &ProductHandler{uc: uc}
}

func (h *ProductHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "product handler is not configured")
		return
	}

	id, rest := pathTail("/shop/products", r.URL.Path)

	switch {
	case id == "" && r.Method == http.MethodGet:
		h.handleList(w, r)
	case id != "" && rest == "" && r.Method == http.MethodGet:
		h.handleGet(w, r, id)
	case id != "" && rest == "reviews" && r.Method == http.MethodGet:
		h.handleListReviews(w, r, id)
	case id != "" && rest == "reviews" && r.Method == http.MethodPost:
		h.handleAddReview(w, r, id)
	default:
		methodNotAllowed(w)
	}
}

func (h *ProductHandler) handleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := productdom.Filter{
		Categoria:   strings.TrimSpace(q.Get("categoria")),
		Genero:      strings.TrimSpace(q.Get("genero")),
		SearchQuery: strings.TrimSpace(q.Get("q")),
		OnlyInStock: q.Get("enStock") == "true",
	}
	sort := common.Sort{
		Column: strings.TrimSpace(q.Get("orden")),
		Order:  common.SortOrder(strings.TrimSpace(q.Get("dir"))),
	}
	page := common.Page{
		Number:  parseIntDefault(q.Get("page"), 1),
		PerPage: parseIntDefault(q.Get("perPage"), 0),
	}

	res, err := h.uc.ListProducts(r.Context(), filter, sort, page)
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *ProductHandler) handleGet(w http.ResponseWriter, r *http.Request, id string) {
	p, err := h.uc.GetProduct(r.Context(), id)
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *ProductHandler) handleListReviews(w http.ResponseWriter, r *http.Request, productoID string) {
	reviews, err := h.uc.ListReviews(r.Context(), productoID)
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

func (h *ProductHandler) handleAddReview(w http.ResponseWriter, r *http.Request, productoID string) {
	uid, ok := middleware.CurrentUID(r)
	if !ok {
		unauthorized(w)
		return
	}

	var body struct {
		Calificacion int    `json:"calificacion"`
		Comentario   string `json:"comentario"`
	}
	if err := readJSON(r, &body); err != nil {
		badRequest(w, "invalid json body")
		return
	}

	rev, err := h.uc.AddReview(r.Context(), productoID, uid, body.Calificacion, body.Comentario)
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rev)
}
