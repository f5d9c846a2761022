// internal/application/usecase/cart_usecase.go
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	cartdom "zapateria/internal/domain/cart"
	productdom "zapateria/internal/domain/product"
)

// CartUsecase owns the "cart" collection flows: add, quantity update,
// removal, and the live per-user subscription.
type CartUsecase struct {
	carts    cartdom.RepositoryPort
	products productdom.RepositoryPort
	now      func() time.Time
}

func NewCartUsecase(carts cartdom.RepositoryPort, products productdom.RepositoryPort) *CartUsecase {
	return &CartUsecase{carts: carts, products: products, now: time.Now}
}

var (
	ErrCartNotConfigured = errors.New("cart: usecase is not configured")
	ErrInsufficientStock = errors.New("cart: cantidad exceeds current stock for talla")
)

// AddLineInput describes one "add to cart" action.
type AddLineInput struct {
	UsuarioID  string
	ProductoID string
	Talla      string
	Cantidad   int
}

// AddLine creates a cart line with a denormalized product snapshot
// captured now. The selected talla must be a tracked size, and cantidad is
// validated against live stock here — and ONLY here; checkout does not
// re-validate (overselling under concurrent checkouts is possible).
//
// Repeated calls with an identical (usuario, producto, talla) create
// independent lines; quantities are not merged.
func (u *CartUsecase) AddLine(ctx context.Context, in AddLineInput) (cartdom.Line, error) {
	if u == nil || u.carts == nil || u.products == nil {
		return cartdom.Line{}, ErrCartNotConfigured
	}

	p, err := u.products.GetByID(ctx, strings.TrimSpace(in.ProductoID))
	if err != nil {
		return cartdom.Line{}, ClassifyStoreError(err)
	}

	talla := strings.TrimSpace(in.Talla)
	if !p.HasSize(talla) {
		return cartdom.Line{}, productdom.ErrSizeNotTracked
	}
	if in.Cantidad < 1 {
		return cartdom.Line{}, cartdom.ErrInvalidCantidad
	}
	if p.StockPorTalla[talla] < in.Cantidad {
		return cartdom.Line{}, fmt.Errorf("%w: talla=%s disponible=%d pedido=%d",
			ErrInsufficientStock, talla, p.StockPorTalla[talla], in.Cantidad)
	}

	l, err := cartdom.NewLine("", in.UsuarioID, p.ID, talla, in.Cantidad, cartdom.Snapshot{
		Nombre:    p.Nombre,
		Precio:    p.Precio,
		ImagenURL: p.ImagenURL,
	}, u.now())
	if err != nil {
		return cartdom.Line{}, err
	}

	created, err := u.carts.Create(ctx, l)
	if err != nil {
		return cartdom.Line{}, ClassifyStoreError(err)
	}
	return created, nil
}

// UpdateQuantity overwrites a line's cantidad. Values below 1 are a silent
// no-op. Current stock is NOT validated at update time.
func (u *CartUsecase) UpdateQuantity(ctx context.Context, lineID string, cantidad int) error {
	if u == nil || u.carts == nil {
		return ErrCartNotConfigured
	}
	if cantidad < 1 {
		log.Printf("[cart_uc] ignoring quantity update below 1 line=%s cantidad=%d", lineID, cantidad)
		return nil
	}
	return u.carts.UpdateCantidad(ctx, strings.TrimSpace(lineID), cantidad)
}

// RemoveLine deletes the line; deleting an absent id is success.
func (u *CartUsecase) RemoveLine(ctx context.Context, lineID string) error {
	if u == nil || u.carts == nil {
		return ErrCartNotConfigured
	}
	return u.carts.Delete(ctx, strings.TrimSpace(lineID))
}

// List returns the user's current lines.
func (u *CartUsecase) List(ctx context.Context, usuarioID string) ([]cartdom.Line, error) {
	if u == nil || u.carts == nil {
		return nil, ErrCartNotConfigured
	}
	return u.carts.ListByUsuario(ctx, strings.TrimSpace(usuarioID))
}

// Subscribe opens the live, restartable stream of the user's line set.
// The stream ends when ctx is cancelled (view teardown).
func (u *CartUsecase) Subscribe(ctx context.Context, usuarioID string) (<-chan cartdom.Update, error) {
	if u == nil || u.carts == nil {
		return nil, ErrCartNotConfigured
	}
	return u.carts.Watch(ctx, strings.TrimSpace(usuarioID))
}
