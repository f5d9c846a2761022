// internal/domain/order/repository_port.go
package order

import (
	"context"

	"zapateria/internal/domain/common"
)

// RepositoryPort is the persistence port for the "orders" collection.
//
// Orders are created once at checkout and never deleted in normal flow;
// the only mutation is the staff status overwrite.
type RepositoryPort interface {
	// Create writes the order as a single new document (atomic in
	// isolation: the whole document is written or nothing is).
	// If o.ID is empty, the implementation assigns one and returns it.
	Create(ctx context.Context, o Order) (Order, error)

	GetByID(ctx context.Context, id string) (Order, error)

	// ListByUsuario returns the customer's own orders, newest first.
	ListByUsuario(ctx context.Context, usuarioID string) ([]Order, error)

	// List serves the back-office listing with Filter semantics
	// (see filter.go) and offset pagination.
	List(ctx context.Context, filter Filter, sort common.Sort, page common.Page) (common.PageResult[Order], error)

	// SetEstado overwrites the status field. Unconstrained: any enum
	// value may replace any other.
	SetEstado(ctx context.Context, id string, estado Estado) error
}
