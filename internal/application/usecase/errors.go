// internal/application/usecase/errors.go
package usecase

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Store-error taxonomy. Every failure that reaches a user is classified
// into exactly one of these three buckets:
//   - permission denied (store rejected the read/write)
//   - not found (referenced document absent)
//   - generic/network (everything else, retry suggested)
var (
	ErrPermissionDenied = errors.New("store: permission denied")
	ErrStoreNotFound    = errors.New("store: document not found")
)

// ClassifyStoreError maps a raw store error onto the taxonomy, wrapping the
// original so errors.Is/As still see it.
func ClassifyStoreError(err error) error {
	if err == nil {
		return nil
	}
	switch status.Code(err) {
	case codes.PermissionDenied, codes.Unauthenticated:
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	case codes.NotFound:
		return fmt.Errorf("%w: %w", ErrStoreNotFound, err)
	default:
		return err
	}
}

// UserMessage renders the storefront-facing message for a classified error.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrPermissionDenied):
		return "No tienes permisos para realizar esta operación."
	case errors.Is(err, ErrStoreNotFound):
		return "El recurso solicitado ya no existe."
	default:
		return "Ocurrió un error inesperado. Por favor intenta de nuevo."
	}
}
