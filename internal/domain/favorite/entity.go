// internal/domain/favorite/entity.go
package favorite

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidUsuarioID  = errors.New("favorite: invalid usuarioId")
	ErrInvalidProductoID = errors.New("favorite: invalid productoId")
)

// Favorite is a pure membership marker: one document per
// (usuario, producto) pair, no payload beyond the two references.
type Favorite struct {
	ID         string    `json:"id" firestore:"id"`
	UsuarioID  string    `json:"usuarioId" firestore:"usuarioId"`
	ProductoID string    `json:"productoId" firestore:"productoId"`
	AgregadoEn time.Time `json:"agregadoEn" firestore:"agregadoEn"`
}

// DocID builds the deterministic composite key "${usuarioId}_${productoId}".
// The deterministic key is what makes add/remove idempotent by construction.
func DocID(usuarioID, productoID string) string {
	return strings.TrimSpace(usuarioID) + "_" + strings.TrimSpace(productoID)
}

// New creates a favorite marker.
func New(usuarioID, productoID string, now time.Time) (Favorite, error) {
	uid := strings.TrimSpace(usuarioID)
	if uid == "" {
		return Favorite{}, ErrInvalidUsuarioID
	}
	pid := strings.TrimSpace(productoID)
	if pid == "" {
		return Favorite{}, ErrInvalidProductoID
	}
	if now.IsZero() {
		now = time.Now().UTC()
	}
	return Favorite{
		ID:         DocID(uid, pid),
		UsuarioID:  uid,
		ProductoID: pid,
		AgregadoEn: now.UTC(),
	}, nil
}
