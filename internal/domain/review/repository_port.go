// internal/domain/review/repository_port.go
package review

import "context"

// RepositoryPort is the persistence port for the "reviews" collection.
type RepositoryPort interface {
	Create(ctx context.Context, r Review) (Review, error)
	ListByProducto(ctx context.Context, productoID string) ([]Review, error)
}
