// internal/application/usecase/inventory_usecase.go
package usecase

import (
	"context"
	"errors"
	"strings"

	productdom "zapateria/internal/domain/product"
)

// InventoryUsecase maintains the per-size stock map and its denormalized
// total for a single product in response to one decrement request.
//
// The read-modify-write below is its own unit of work: no cross-product
// atomicity, no optimistic-concurrency check. Concurrent decrements of the
// same product race on a possibly-stale read and the last writer wins on
// the whole map field (see DESIGN.md for the recorded decision).
type InventoryUsecase struct {
	products productdom.RepositoryPort
}

func NewInventoryUsecase(products productdom.RepositoryPort) *InventoryUsecase {
	return &InventoryUsecase{products: products}
}

var ErrInventoryNotConfigured = errors.New("inventory: product repository is not configured")

// Decrement applies newSizeStock = max(0, current - cantidad) for one
// (producto, talla) and rewrites the recomputed total alongside the map.
// It never produces a negative count for any size.
func (u *InventoryUsecase) Decrement(ctx context.Context, productoID, talla string, cantidad int) error {
	if u == nil || u.products == nil {
		return ErrInventoryNotConfigured
	}

	pid := strings.TrimSpace(productoID)
	if pid == "" {
		return productdom.ErrInvalidID
	}

	p, err := u.products.GetByID(ctx, pid)
	if err != nil {
		return err
	}

	if err := p.DecrementSize(talla, cantidad); err != nil {
		return err
	}

	return u.products.Save(ctx, p)
}
