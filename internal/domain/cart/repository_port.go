// internal/domain/cart/repository_port.go
package cart

import "context"

// Update is one message of the live cart stream: the full current line set
// for the watched user, or a stream error. After an Err the stream is
// restartable by calling Watch again.
type Update struct {
	Lines []Line
	Err   error
}

// RepositoryPort is the persistence port for the "cart" collection.
//
// Storage design (Firestore):
// - collection: cart
// - one doc per line, docId = line id
// - filtered by usuarioId equality
type RepositoryPort interface {
	// Create saves a new line. If l.ID is empty, the implementation
	// assigns a document id and returns it. No dedup against existing
	// (usuario, producto, talla) lines.
	Create(ctx context.Context, l Line) (Line, error)

	GetByID(ctx context.Context, id string) (Line, error)

	// UpdateCantidad overwrites the quantity field.
	// cantidad < 1 must be treated as a no-op by the caller (usecase);
	// implementations may assume cantidad >= 1.
	UpdateCantidad(ctx context.Context, id string, cantidad int) error

	// Delete removes the line. Deleting an absent id is success (idempotent).
	Delete(ctx context.Context, id string) error

	// ListByUsuario returns the user's current lines in store order
	// (insertion order, not guaranteed stable across reconnects).
	ListByUsuario(ctx context.Context, usuarioID string) ([]Line, error)

	// Watch streams the user's line set. Each store change pushes a fresh
	// full snapshot. The stream ends (channel closed) when ctx is
	// cancelled — the only cancellation contract in the system.
	Watch(ctx context.Context, usuarioID string) (<-chan Update, error)
}
