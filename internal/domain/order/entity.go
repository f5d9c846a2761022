// internal/domain/order/entity.go
package order

import (
	"errors"
	"strings"
	"time"
)

// ========================================
// Enums
// ========================================

// MetodoPago is the payment method chosen at checkout.
type MetodoPago string

const (
	PagoEfectivo      MetodoPago = "efectivo"      // cash on delivery
	PagoTransferencia MetodoPago = "transferencia" // bank transfer
)

// ParseMetodoPago validates a payment method value.
func ParseMetodoPago(s string) (MetodoPago, error) {
	switch MetodoPago(strings.TrimSpace(strings.ToLower(s))) {
	case PagoEfectivo:
		return PagoEfectivo, nil
	case PagoTransferencia:
		return PagoTransferencia, nil
	default:
		return "", ErrInvalidMetodoPago
	}
}

// Estado is the staff-mutable order status.
// The nominal flow is pendiente → en preparación → enviado → entregado,
// but no transition table is enforced: staff may set any value at any time.
type Estado string

const (
	EstadoPendiente     Estado = "pendiente"
	EstadoEnPreparacion Estado = "en preparación"
	EstadoEnviado       Estado = "enviado"
	EstadoEntregado     Estado = "entregado"
)

// ParseEstado validates a status value (membership only, no transitions).
func ParseEstado(s string) (Estado, error) {
	switch Estado(strings.TrimSpace(strings.ToLower(s))) {
	case EstadoPendiente:
		return EstadoPendiente, nil
	case EstadoEnPreparacion:
		return EstadoEnPreparacion, nil
	case EstadoEnviado:
		return EstadoEnviado, nil
	case EstadoEntregado:
		return EstadoEntregado, nil
	default:
		return "", ErrInvalidEstado
	}
}

// ========================================
// Snapshot structs (stored in Order)
// ========================================

// ItemSnapshot is one frozen cart line inside Order.Items.
// It is a copy taken at order-creation time, not a live reference; the
// order can outlive the product it points at.
type ItemSnapshot struct {
	ProductoID string  `json:"productoId" firestore:"productoId"`
	Cantidad   int     `json:"cantidad" firestore:"cantidad"`
	Talla      string  `json:"talla" firestore:"talla"`
	Nombre     string  `json:"nombre" firestore:"nombre"`
	Precio     float64 `json:"precio" firestore:"precio"`
	ImagenURL  string  `json:"imagenUrl" firestore:"imagenUrl"`
}

// ========================================
// Entity
// ========================================

type Order struct {
	ID        string `json:"id" firestore:"id"`
	UsuarioID string `json:"usuarioId" firestore:"usuarioId"`

	Nombre    string `json:"nombre" firestore:"nombre"`
	Direccion string `json:"direccion" firestore:"direccion"`
	Telefono  string `json:"telefono" firestore:"telefono"`
	Correo    string `json:"correo" firestore:"correo"`

	MetodoPago MetodoPago `json:"metodoPago" firestore:"metodoPago"`
	Nota       string     `json:"nota" firestore:"nota"`

	Items []ItemSnapshot `json:"items" firestore:"items"`

	// Total = Σ precio × cantidad over Items, fixed at creation time.
	Total float64 `json:"total" firestore:"total"`

	Estado        Estado    `json:"estado" firestore:"estado"`
	FechaCreacion time.Time `json:"fechaCreacion" firestore:"fechaCreacion"`
}

// ========================================
// Errors
// ========================================

var (
	ErrNotFound          = errors.New("order: not found")
	ErrInvalidID         = errors.New("order: invalid id")
	ErrInvalidUsuarioID  = errors.New("order: invalid usuarioId")
	ErrInvalidNombre     = errors.New("order: invalid nombre")
	ErrInvalidDireccion  = errors.New("order: invalid direccion")
	ErrInvalidTelefono   = errors.New("order: invalid telefono")
	ErrInvalidMetodoPago = errors.New("order: invalid metodoPago")
	ErrInvalidEstado     = errors.New("order: invalid estado")
	ErrInvalidItems      = errors.New("order: invalid items")
	ErrInvalidCreatedAt  = errors.New("order: invalid fechaCreacion")
)

// ========================================
// Constructors
// ========================================

// New builds an order from frozen line items. Total is computed here, and
// Estado starts at pendiente.
func New(
	id string,
	usuarioID string,
	nombre string,
	direccion string,
	telefono string,
	correo string,
	metodoPago MetodoPago,
	nota string,
	items []ItemSnapshot,
	createdAt time.Time,
) (Order, error) {
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	o := Order{
		ID:        strings.TrimSpace(id),
		UsuarioID: strings.TrimSpace(usuarioID),

		Nombre:    strings.TrimSpace(nombre),
		Direccion: strings.TrimSpace(direccion),
		Telefono:  strings.TrimSpace(telefono),
		Correo:    strings.TrimSpace(correo),

		MetodoPago: metodoPago,
		Nota:       strings.TrimSpace(nota),

		Items: normalizeItems(items),

		Estado:        EstadoPendiente,
		FechaCreacion: createdAt.UTC(),
	}
	o.Total = ComputeTotal(o.Items)

	if err := o.validate(); err != nil {
		return Order{}, err
	}
	return o, nil
}

// ComputeTotal sums precio × cantidad over the items.
func ComputeTotal(items []ItemSnapshot) float64 {
	total := 0.0
	for _, it := range items {
		total += it.Precio * float64(it.Cantidad)
	}
	return total
}

// ========================================
// Behavior
// ========================================

// SetEstado overwrites the status. Membership in the enum is validated;
// transitions are not (any status is reachable from any status).
func (o *Order) SetEstado(e Estado) error {
	parsed, err := ParseEstado(string(e))
	if err != nil {
		return err
	}
	o.Estado = parsed
	return nil
}

// ========================================
// Validation
// ========================================

func (o Order) validate() error {
	if o.UsuarioID == "" {
		return ErrInvalidUsuarioID
	}
	if o.Nombre == "" {
		return ErrInvalidNombre
	}
	if o.Direccion == "" {
		return ErrInvalidDireccion
	}
	if o.Telefono == "" {
		return ErrInvalidTelefono
	}
	if _, err := ParseMetodoPago(string(o.MetodoPago)); err != nil {
		return err
	}
	if len(o.Items) < 1 {
		return ErrInvalidItems
	}
	for _, it := range o.Items {
		if strings.TrimSpace(it.ProductoID) == "" || it.Cantidad < 1 || it.Precio < 0 {
			return ErrInvalidItems
		}
	}
	if o.FechaCreacion.IsZero() {
		return ErrInvalidCreatedAt
	}
	return nil
}

func normalizeItems(items []ItemSnapshot) []ItemSnapshot {
	out := make([]ItemSnapshot, 0, len(items))
	for _, it := range items {
		it.ProductoID = strings.TrimSpace(it.ProductoID)
		it.Talla = strings.TrimSpace(it.Talla)
		it.Nombre = strings.TrimSpace(it.Nombre)
		it.ImagenURL = strings.TrimSpace(it.ImagenURL)
		out = append(out, it)
	}
	return out
}
