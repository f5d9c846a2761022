// internal/adapters/in/http/shop/handler/profile_handler.go
package shopHandler

import (
	"context"
	"io"
	"net/http"

	"zapateria/internal/adapters/in/http/middleware"
	usecase "zapateria/internal/application/usecase"
	userdom "zapateria/internal/domain/user"
)

// PhotoUploader stores a profile photo and returns its hosted URL.
type PhotoUploader interface {
	UploadProfilePhoto(ctx context.Context, usuarioID, fileName, contentType string, data []byte) (string, error)
}

// ProfileHandler serves the authenticated profile:
//
//   - GET  /shop/me/profile          (read, auto-created on first visit)
//   - PUT  /shop/me/profile          (partial update)
//   - POST /shop/me/profile/photo    (photo upload, multipart)
type ProfileHandler struct {
	uc       *usecase.ProfileUsecase
	uploader PhotoUploader // optional
}

func NewProfileHandler(uc *usecase.ProfileUsecase, uploader PhotoUploader) http.Handler {
	return &ProfileHandler{uc: uc, uploader: uploader}
}

func (h *ProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "profile handler is not configured")
		return
	}

	uid, ok := middleware.CurrentUID(r)
	if !ok {
		unauthorized(w)
		return
	}

	sub, rest := pathTail("/shop/me/profile", r.URL.Path)
	if rest != "" {
		notFound(w)
		return
	}

	switch {
	case sub == "" && r.Method == http.MethodGet:
		h.handleGet(w, r, uid)
	case sub == "" && r.Method == http.MethodPut:
		h.handleUpdate(w, r, uid)
	case sub == "photo" && r.Method == http.MethodPost:
		h.handlePhotoUpload(w, r, uid)
	default:
		methodNotAllowed(w)
	}
}

func (h *ProfileHandler) handleGet(w http.ResponseWriter, r *http.Request, uid string) {
	_, email, _ := middleware.CurrentUIDAndEmail(r)
	nombre, _ := middleware.CurrentDisplayName(r)

	p, err := h.uc.Get(r.Context(), uid, nombre, email)
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *ProfileHandler) handleUpdate(w http.ResponseWriter, r *http.Request, uid string) {
	var body struct {
		Nombre    *string `json:"nombre"`
		Telefono  *string `json:"telefono"`
		Direccion *string `json:"direccion"`
		FotoURL   *string `json:"fotoUrl"`
	}
	if err := readJSON(r, &body); err != nil {
		badRequest(w, "invalid json body")
		return
	}

	p, err := h.uc.Update(r.Context(), uid, userdom.Patch{
		Nombre:    body.Nombre,
		Telefono:  body.Telefono,
		Direccion: body.Direccion,
		FotoURL:   body.FotoURL,
	})
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *ProfileHandler) handlePhotoUpload(w http.ResponseWriter, r *http.Request, uid string) {
	if h.uploader == nil {
		writeErr(w, http.StatusServiceUnavailable, "photo upload is not configured")
		return
	}

	if err := r.ParseMultipartForm(8 << 20); err != nil {
		badRequest(w, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("photo")
	if err != nil {
		badRequest(w, "missing photo field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, 8<<20))
	if err != nil {
		writeErr(w, http.StatusInternalServerError, "failed to read upload")
		return
	}

	url, err := h.uploader.UploadProfilePhoto(r.Context(), uid, header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, "photo upload failed")
		return
	}

	// Persist the new photo URL on the profile.
	p, err := h.uc.Update(r.Context(), uid, userdom.Patch{FotoURL: &url})
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}
