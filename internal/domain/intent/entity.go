// internal/domain/intent/entity.go
package intent

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidUsuarioID = errors.New("intent: invalid usuarioId")
	ErrInvalidIntent    = errors.New("intent: invalid intent")
)

// PendingIntent is the typed, single-slot handoff state staged across the
// login redirect boundary: at most one pending cart item plus a redirect
// target per user. It is consumed (read-then-clear as one logical step)
// once authentication completes.
type PendingIntent struct {
	UsuarioID string `json:"usuarioId" firestore:"usuarioId"`

	// Pending cart item (optional: a bare redirect is also valid).
	ProductoID string `json:"productoId" firestore:"productoId"`
	Talla      string `json:"talla" firestore:"talla"`
	Cantidad   int    `json:"cantidad" firestore:"cantidad"`

	RedirectTo string `json:"redirectTo" firestore:"redirectTo"`

	CreadoEn time.Time `json:"creadoEn" firestore:"creadoEn"`
}

// New stages an intent. Either a cart item or a redirect target (or both)
// must be present.
func New(usuarioID, productoID, talla string, cantidad int, redirectTo string, now time.Time) (PendingIntent, error) {
	uid := strings.TrimSpace(usuarioID)
	if uid == "" {
		return PendingIntent{}, ErrInvalidUsuarioID
	}

	pid := strings.TrimSpace(productoID)
	rt := strings.TrimSpace(redirectTo)
	if pid == "" && rt == "" {
		return PendingIntent{}, ErrInvalidIntent
	}
	if pid != "" && cantidad < 1 {
		cantidad = 1
	}
	if now.IsZero() {
		now = time.Now().UTC()
	}

	return PendingIntent{
		UsuarioID:  uid,
		ProductoID: pid,
		Talla:      strings.TrimSpace(talla),
		Cantidad:   cantidad,
		RedirectTo: rt,
		CreadoEn:   now.UTC(),
	}, nil
}

// HasCartItem reports whether the intent carries a pending cart item.
func (i PendingIntent) HasCartItem() bool {
	return strings.TrimSpace(i.ProductoID) != ""
}
