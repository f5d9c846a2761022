// internal/adapters/in/http/shop/handler/admin_product_handler.go
package shopHandler

import (
	"context"
	"io"
	"net/http"

	usecase "zapateria/internal/application/usecase"
	productdom "zapateria/internal/domain/product"
)

// ProductImageUploader stores a product image and returns its hosted URL.
type ProductImageUploader interface {
	UploadProductImage(ctx context.Context, productoID, fileName, contentType string, data []byte) (string, error)
}

// AdminProductHandler serves back-office product management:
//
//   - POST   /admin/products                 (create)
//   - PUT    /admin/products/{id}            (partial update)
//   - DELETE /admin/products/{id}            (delete)
//   - PATCH  /admin/products/{id}/stock      (replace stock map)
//   - POST   /admin/products/{id}/images     (image upload, multipart)
//
// The admin gate middleware runs before this handler; no per-route
// permission checks happen here.
type AdminProductHandler struct {
	uc       *usecase.CatalogUsecase
	uploader ProductImageUploader // optional
}

func NewAdminProductHandler(uc *usecase.CatalogUsecase, uploader ProductImageUploader) http.Handler {
	return &AdminProductHandler{uc: uc, uploader: uploader}
}

func (h *AdminProductHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "admin product handler is not configured")
		return
	}

	id, rest := pathTail("/admin/products", r.URL.Path)

	switch {
	case id == "" && r.Method == http.MethodPost:
		h.handleCreate(w, r)
	case id != "" && rest == "" && r.Method == http.MethodPut:
		h.handleUpdate(w, r, id)
	case id != "" && rest == "" && r.Method == http.MethodDelete:
		h.handleDelete(w, r, id)
	case id != "" && rest == "stock" && r.Method == http.MethodPatch:
		h.handleSetStock(w, r, id)
	case id != "" && rest == "images" && r.Method == http.MethodPost:
		h.handleImageUpload(w, r, id)
	default:
		methodNotAllowed(w)
	}
}

type productBody struct {
	Nombre        *string         `json:"nombre"`
	Descripcion   *string         `json:"descripcion"`
	Precio        *float64        `json:"precio"`
	Categoria     *string         `json:"categoria"`
	Genero        *string         `json:"genero"`
	Material      *string         `json:"material"`
	TipoSuela     *string         `json:"tipoSuela"`
	ImagenURL     *string         `json:"imagenUrl"`
	Imagenes      *[]string       `json:"imagenes"`
	StockPorTalla *map[string]int `json:"stockPorTalla"`
}

func (h *AdminProductHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var body productBody
	if err := readJSON(r, &body); err != nil {
		badRequest(w, "invalid json body")
		return
	}

	in := usecase.CreateProductInput{}
	if body.Nombre != nil {
		in.Nombre = *body.Nombre
	}
	if body.Descripcion != nil {
		in.Descripcion = *body.Descripcion
	}
	if body.Precio != nil {
		in.Precio = *body.Precio
	}
	if body.Categoria != nil {
		in.Categoria = *body.Categoria
	}
	if body.Genero != nil {
		in.Genero = *body.Genero
	}
	if body.Material != nil {
		in.Material = *body.Material
	}
	if body.TipoSuela != nil {
		in.TipoSuela = *body.TipoSuela
	}
	if body.ImagenURL != nil {
		in.ImagenURL = *body.ImagenURL
	}
	if body.Imagenes != nil {
		in.Imagenes = *body.Imagenes
	}
	if body.StockPorTalla != nil {
		in.StockPorTalla = *body.StockPorTalla
	}

	p, err := h.uc.CreateProduct(r.Context(), in)
	if err != nil {
		switch err {
		case productdom.ErrInvalidNombre, productdom.ErrInvalidPrecio, productdom.ErrInvalidStock:
			badRequest(w, err.Error())
		default:
			writeStoreErr(w, err)
		}
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *AdminProductHandler) handleUpdate(w http.ResponseWriter, r *http.Request, id string) {
	var body productBody
	if err := readJSON(r, &body); err != nil {
		badRequest(w, "invalid json body")
		return
	}

	p, err := h.uc.UpdateProduct(r.Context(), id, productdom.Patch{
		Nombre:        body.Nombre,
		Descripcion:   body.Descripcion,
		Precio:        body.Precio,
		Categoria:     body.Categoria,
		Genero:        body.Genero,
		Material:      body.Material,
		TipoSuela:     body.TipoSuela,
		ImagenURL:     body.ImagenURL,
		Imagenes:      body.Imagenes,
		StockPorTalla: body.StockPorTalla,
	})
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *AdminProductHandler) handleDelete(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.uc.DeleteProduct(r.Context(), id); err != nil {
		writeStoreErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "eliminado"})
}

// handleSetStock replaces the whole stock map; sizes and the denormalized
// total are recomputed downstream.
func (h *AdminProductHandler) handleSetStock(w http.ResponseWriter, r *http.Request, id string) {
	var body struct {
		StockPorTalla map[string]int `json:"stockPorTalla"`
	}
	if err := readJSON(r, &body); err != nil {
		badRequest(w, "invalid json body")
		return
	}
	if body.StockPorTalla == nil {
		badRequest(w, "stockPorTalla is required")
		return
	}

	p, err := h.uc.UpdateProduct(r.Context(), id, productdom.Patch{
		StockPorTalla: &body.StockPorTalla,
	})
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *AdminProductHandler) handleImageUpload(w http.ResponseWriter, r *http.Request, id string) {
	if h.uploader == nil {
		writeErr(w, http.StatusServiceUnavailable, "image upload is not configured")
		return
	}

	if err := r.ParseMultipartForm(16 << 20); err != nil {
		badRequest(w, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		badRequest(w, "missing image field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, 16<<20))
	if err != nil {
		writeErr(w, http.StatusInternalServerError, "failed to read upload")
		return
	}

	url, err := h.uploader.UploadProductImage(r.Context(), id, header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, "image upload failed")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"url": url})
}
