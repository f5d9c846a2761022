// internal/application/usecase/checkout_usecase.go
package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	cartdom "zapateria/internal/domain/cart"
	orderdom "zapateria/internal/domain/order"
)

// OrderNotifier is the outbound port for the new-order operator mail.
// Fire-and-forget: failures are logged, never surfaced to the buyer,
// never retried.
type OrderNotifier interface {
	NotifyNewOrder(ctx context.Context, o orderdom.Order) error
}

// CheckoutUsecase converts a cart snapshot plus shipping/payment form input
// into a durable Order and a best-effort inventory reduction, then clears
// the purchased cart lines.
//
// The sequence is deliberately NOT transactional, matching the store's
// at-least-once, client-orchestrated semantics:
//  1. write the order document (atomic in isolation; failure aborts)
//  2. per line, read-modify-write the product stock map (floor at 0)
//  3. per line, delete the cart document
//
// Steps 2 and 3 are per-item best-effort: an item failure is logged and
// does not abort sibling iterations or the success already decided by
// step 1. There is no compensation and no retry queue.
type CheckoutUsecase struct {
	orders    orderdom.RepositoryPort
	carts     cartdom.RepositoryPort
	inventory *InventoryUsecase
	notifier  OrderNotifier // optional
	now       func() time.Time
}

func NewCheckoutUsecase(
	orders orderdom.RepositoryPort,
	carts cartdom.RepositoryPort,
	inventory *InventoryUsecase,
	notifier OrderNotifier,
) *CheckoutUsecase {
	return &CheckoutUsecase{
		orders:    orders,
		carts:     carts,
		inventory: inventory,
		notifier:  notifier,
		now:       time.Now,
	}
}

var (
	ErrCheckoutNotConfigured = errors.New("checkout: usecase is not configured")
	ErrCheckoutEmptyCart     = errors.New("checkout: cart snapshot is empty")
)

// CheckoutInput carries the cart snapshot as currently subscribed (NOT
// re-fetched atomically at submit time) plus the shipping/payment form.
type CheckoutInput struct {
	UsuarioID string

	Lines []cartdom.Line

	Nombre    string
	Direccion string
	Telefono  string
	Correo    string

	MetodoPago string
	Nota       string
}

// Checkout runs the full sequence and returns the created order.
// The order is confirmed as soon as its document write succeeds; every
// later step only degrades inventory/cart consistency, never the order.
func (u *CheckoutUsecase) Checkout(ctx context.Context, in CheckoutInput) (orderdom.Order, error) {
	if u == nil || u.orders == nil || u.carts == nil || u.inventory == nil {
		return orderdom.Order{}, ErrCheckoutNotConfigured
	}
	if len(in.Lines) == 0 {
		return orderdom.Order{}, ErrCheckoutEmptyCart
	}

	metodo, err := orderdom.ParseMetodoPago(in.MetodoPago)
	if err != nil {
		return orderdom.Order{}, err
	}

	now := u.now().UTC()

	// 1) Build the order payload: freeze each cart line into an embedded
	//    item snapshot; total = Σ precio × cantidad; estado = pendiente.
	items := make([]orderdom.ItemSnapshot, 0, len(in.Lines))
	for _, l := range in.Lines {
		items = append(items, orderdom.ItemSnapshot{
			ProductoID: l.ProductoID,
			Cantidad:   l.Cantidad,
			Talla:      l.Talla,
			Nombre:     l.Nombre,
			Precio:     l.Precio,
			ImagenURL:  l.ImagenURL,
		})
	}

	o, err := orderdom.New(
		"",
		in.UsuarioID,
		in.Nombre,
		in.Direccion,
		in.Telefono,
		in.Correo,
		metodo,
		in.Nota,
		items,
		now,
	)
	if err != nil {
		return orderdom.Order{}, err
	}

	// 2) Single order document write. Any error here aborts the whole
	//    flow before inventory is touched, classified for the buyer.
	created, err := u.orders.Create(ctx, o)
	if err != nil {
		log.Printf("[checkout_uc] order create failed usuario=%s err=%v", in.UsuarioID, err)
		return orderdom.Order{}, ClassifyStoreError(err)
	}
	log.Printf("[checkout_uc] order created id=%s usuario=%s items=%d total=%.2f",
		created.ID, created.UsuarioID, len(created.Items), created.Total)

	// 3) Per-line inventory adjustment, sequential, each its own unit.
	//    A vanished product or a no-longer-tracked size is skipped; the
	//    order keeps the stale snapshot values regardless.
	for _, l := range in.Lines {
		if err := u.inventory.Decrement(ctx, l.ProductoID, l.Talla, l.Cantidad); err != nil {
			log.Printf("[checkout_uc] WARN: stock decrement skipped order=%s producto=%s talla=%s cantidad=%d err=%v",
				created.ID, l.ProductoID, l.Talla, l.Cantidad, err)
		}
	}

	// 4) Per-line cart cleanup, also best-effort.
	for _, l := range in.Lines {
		if strings.TrimSpace(l.ID) == "" {
			continue
		}
		if err := u.carts.Delete(ctx, l.ID); err != nil {
			log.Printf("[checkout_uc] WARN: cart line delete failed order=%s line=%s err=%v",
				created.ID, l.ID, err)
		}
	}

	// 5) Operator notification, best-effort.
	if u.notifier != nil {
		if err := u.notifier.NotifyNewOrder(ctx, created); err != nil {
			log.Printf("[checkout_uc] WARN: order notification failed order=%s err=%v", created.ID, err)
		}
	}

	return created, nil
}
