// internal/domain/cart/entity.go
package cart

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrNotFound          = errors.New("cart: line not found")
	ErrInvalidUsuarioID  = errors.New("cart: invalid usuarioId")
	ErrInvalidProductoID = errors.New("cart: invalid productoId")
	ErrInvalidTalla      = errors.New("cart: invalid talla")
	ErrInvalidCantidad   = errors.New("cart: invalid cantidad")
)

// Line represents one document of the "cart" collection:
// one (usuario, producto, talla) selection pending purchase.
//
// Nombre / Precio / ImagenURL are a denormalized product snapshot captured
// at add-time; they are frozen into the order at checkout, not re-read.
type Line struct {
	ID         string `json:"id" firestore:"id"`
	UsuarioID  string `json:"usuarioId" firestore:"usuarioId"`
	ProductoID string `json:"productoId" firestore:"productoId"`

	Talla    string `json:"talla" firestore:"talla"`
	Cantidad int    `json:"cantidad" firestore:"cantidad"`

	Nombre    string  `json:"nombre" firestore:"nombre"`
	Precio    float64 `json:"precio" firestore:"precio"`
	ImagenURL string  `json:"imagenUrl" firestore:"imagenUrl"`

	AgregadoEn time.Time `json:"agregadoEn" firestore:"agregadoEn"`
}

// Snapshot is the product snapshot captured when a line is added.
type Snapshot struct {
	Nombre    string
	Precio    float64
	ImagenURL string
}

// NewLine creates a cart line. id may be empty (repo assigns one).
// Repeated calls with an identical (usuario, producto, talla) create
// independent lines; quantities are NOT merged.
func NewLine(id, usuarioID, productoID, talla string, cantidad int, snap Snapshot, now time.Time) (Line, error) {
	uid := strings.TrimSpace(usuarioID)
	if uid == "" {
		return Line{}, ErrInvalidUsuarioID
	}
	pid := strings.TrimSpace(productoID)
	if pid == "" {
		return Line{}, ErrInvalidProductoID
	}
	t := strings.TrimSpace(talla)
	if t == "" {
		return Line{}, ErrInvalidTalla
	}
	if cantidad < 1 {
		return Line{}, ErrInvalidCantidad
	}
	if now.IsZero() {
		now = time.Now().UTC()
	}

	return Line{
		ID:         strings.TrimSpace(id),
		UsuarioID:  uid,
		ProductoID: pid,
		Talla:      t,
		Cantidad:   cantidad,
		Nombre:     strings.TrimSpace(snap.Nombre),
		Precio:     snap.Precio,
		ImagenURL:  strings.TrimSpace(snap.ImagenURL),
		AgregadoEn: now.UTC(),
	}, nil
}

// SetCantidad updates the quantity with a floor of 1.
// A value below 1 is a silent no-op (the stored quantity is kept).
// Quantity is not validated against current stock here.
func (l *Line) SetCantidad(cantidad int) {
	if l == nil {
		return
	}
	if cantidad < 1 {
		return
	}
	l.Cantidad = cantidad
}

// Subtotal returns precio × cantidad for this line.
func (l Line) Subtotal() float64 {
	return l.Precio * float64(l.Cantidad)
}
