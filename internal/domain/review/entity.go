// internal/domain/review/entity.go
package review

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidUsuarioID    = errors.New("review: invalid usuarioId")
	ErrInvalidProductoID   = errors.New("review: invalid productoId")
	ErrInvalidCalificacion = errors.New("review: calificacion must be 1..5")
)

// Review is one document of the "reviews" collection.
type Review struct {
	ID           string    `json:"id" firestore:"id"`
	ProductoID   string    `json:"productoId" firestore:"productoId"`
	UsuarioID    string    `json:"usuarioId" firestore:"usuarioId"`
	Calificacion int       `json:"calificacion" firestore:"calificacion"`
	Comentario   string    `json:"comentario" firestore:"comentario"`
	Fecha        time.Time `json:"fecha" firestore:"fecha"`
}

// New creates a review. id may be empty (repo assigns one).
func New(id, productoID, usuarioID string, calificacion int, comentario string, now time.Time) (Review, error) {
	pid := strings.TrimSpace(productoID)
	if pid == "" {
		return Review{}, ErrInvalidProductoID
	}
	uid := strings.TrimSpace(usuarioID)
	if uid == "" {
		return Review{}, ErrInvalidUsuarioID
	}
	if calificacion < 1 || calificacion > 5 {
		return Review{}, ErrInvalidCalificacion
	}
	if now.IsZero() {
		now = time.Now().UTC()
	}
	return Review{
		ID:           strings.TrimSpace(id),
		ProductoID:   pid,
		UsuarioID:    uid,
		Calificacion: calificacion,
		Comentario:   strings.TrimSpace(comentario),
		Fecha:        now.UTC(),
	}, nil
}
