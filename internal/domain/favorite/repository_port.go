// internal/domain/favorite/repository_port.go
package favorite

import "context"

// RepositoryPort is the persistence port for the "favorites" collection,
// keyed "${usuarioId}_${productoId}".
type RepositoryPort interface {
	// Add writes the marker. Overwriting an existing doc is success.
	Add(ctx context.Context, f Favorite) error

	// Remove deletes the marker. Removing an absent doc is success.
	Remove(ctx context.Context, usuarioID, productoID string) error

	// ListProductIDsByUsuario returns the product ids the user has
	// favorited (the membership set, refreshed after every mutation).
	ListProductIDsByUsuario(ctx context.Context, usuarioID string) ([]string, error)
}
