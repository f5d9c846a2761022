// internal/application/usecase/checkout_usecase_test.go
package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartdom "zapateria/internal/domain/cart"
	orderdom "zapateria/internal/domain/order"
	productdom "zapateria/internal/domain/product"
)

func mustProduct(t *testing.T, id, nombre string, precio float64, stock map[string]int) productdom.Product {
	t.Helper()
	p, err := productdom.New(id, nombre, "", precio, "botas", "mujer", "cuero", "goma", "", nil, stock, "admin-1", time.Now())
	require.NoError(t, err)
	return p
}

func mustLine(t *testing.T, id, uid, pid, talla string, cantidad int, nombre string, precio float64) cartdom.Line {
	t.Helper()
	l, err := cartdom.NewLine(id, uid, pid, talla, cantidad, cartdom.Snapshot{Nombre: nombre, Precio: precio}, time.Now())
	require.NoError(t, err)
	return l
}

func newCheckoutEnv(t *testing.T, products ...productdom.Product) (*CheckoutUsecase, *fakeOrderRepo, *fakeCartRepo, *fakeProductRepo, *fakeNotifier) {
	t.Helper()
	orders := newFakeOrderRepo()
	carts := newFakeCartRepo()
	prods := newFakeProductRepo(products...)
	notifier := &fakeNotifier{}
	uc := NewCheckoutUsecase(orders, carts, NewInventoryUsecase(prods), notifier)
	return uc, orders, carts, prods, notifier
}

func TestCheckout_CreatesOrderWithFrozenItemsAndTotal(t *testing.T) {
	p := mustProduct(t, "p1", "Bota Clásica", 100, map[string]int{"24": 5})
	uc, orders, _, _, notifier := newCheckoutEnv(t, p)

	lines := []cartdom.Line{
		mustLine(t, "l1", "u1", "p1", "24", 2, "Bota Clásica", 100),
		mustLine(t, "l2", "u1", "p1", "24", 1, "Bota Clásica", 100),
	}

	o, err := uc.Checkout(context.Background(), CheckoutInput{
		UsuarioID:  "u1",
		Lines:      lines,
		Nombre:     "Ana",
		Direccion:  "Zona 1",
		Telefono:   "5555-5555",
		Correo:     "ana@example.com",
		MetodoPago: "efectivo",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, o.ID)
	assert.Equal(t, orderdom.EstadoPendiente, o.Estado)
	assert.Len(t, o.Items, 2)
	assert.Equal(t, 300.0, o.Total)
	assert.Equal(t, "24", o.Items[0].Talla)
	require.Len(t, orders.created, 1)

	require.Len(t, notifier.notified, 1)
	assert.Equal(t, o.ID, notifier.notified[0].ID)
}

func TestCheckout_DecrementsStockPerLine(t *testing.T) {
	p := mustProduct(t, "p1", "Bota Clásica", 100, map[string]int{"24": 5, "25": 3})
	uc, _, _, prods, _ := newCheckoutEnv(t, p)

	lines := []cartdom.Line{
		mustLine(t, "l1", "u1", "p1", "24", 2, "Bota Clásica", 100),
		mustLine(t, "l2", "u1", "p1", "25", 1, "Bota Clásica", 100),
	}

	_, err := uc.Checkout(context.Background(), checkoutForm("u1", lines))
	require.NoError(t, err)

	assert.Equal(t, 3, prods.stockOf("p1", "24"))
	assert.Equal(t, 2, prods.stockOf("p1", "25"))
}

func TestCheckout_StockFloorsAtZero(t *testing.T) {
	p := mustProduct(t, "p1", "Bota Clásica", 100, map[string]int{"24": 1})
	uc, orders, _, prods, _ := newCheckoutEnv(t, p)

	lines := []cartdom.Line{
		mustLine(t, "l1", "u1", "p1", "24", 5, "Bota Clásica", 100),
	}

	o, err := uc.Checkout(context.Background(), checkoutForm("u1", lines))
	require.NoError(t, err)

	// Order keeps the requested quantity even though stock could not cover it.
	assert.Equal(t, 5, o.Items[0].Cantidad)
	assert.Equal(t, 0, prods.stockOf("p1", "24"))
	assert.Len(t, orders.created, 1)
}

func TestCheckout_ClearsPurchasedCartLines(t *testing.T) {
	p := mustProduct(t, "p1", "Bota Clásica", 100, map[string]int{"24": 5})
	uc, _, carts, _, _ := newCheckoutEnv(t, p)

	l1 := mustLine(t, "l1", "u1", "p1", "24", 1, "Bota Clásica", 100)
	l2 := mustLine(t, "l2", "u1", "p1", "24", 2, "Bota Clásica", 100)
	_, _ = carts.Create(context.Background(), l1)
	_, _ = carts.Create(context.Background(), l2)

	_, err := uc.Checkout(context.Background(), checkoutForm("u1", []cartdom.Line{l1, l2}))
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"l1", "l2"}, carts.deleted)
	remaining, _ := carts.ListByUsuario(context.Background(), "u1")
	assert.Empty(t, remaining)
}

func TestCheckout_OrderCreateFailureAbortsEverything(t *testing.T) {
	p := mustProduct(t, "p1", "Bota Clásica", 100, map[string]int{"24": 5})
	uc, orders, carts, prods, notifier := newCheckoutEnv(t, p)
	orders.createErr = errors.New("write failed")

	l := mustLine(t, "l1", "u1", "p1", "24", 2, "Bota Clásica", 100)
	_, _ = carts.Create(context.Background(), l)

	_, err := uc.Checkout(context.Background(), checkoutForm("u1", []cartdom.Line{l}))
	require.Error(t, err)

	assert.Equal(t, 5, prods.stockOf("p1", "24"), "stock must stay untouched")
	assert.Empty(t, carts.deleted, "cart must stay untouched")
	assert.Empty(t, notifier.notified)
}

func TestCheckout_VanishedProductIsSkippedNotFatal(t *testing.T) {
	p := mustProduct(t, "p1", "Bota Clásica", 100, map[string]int{"24": 5})
	uc, orders, _, prods, _ := newCheckoutEnv(t, p)

	lines := []cartdom.Line{
		mustLine(t, "l1", "u1", "gone", "24", 1, "Sandalia Retirada", 80),
		mustLine(t, "l2", "u1", "p1", "24", 1, "Bota Clásica", 100),
	}

	o, err := uc.Checkout(context.Background(), checkoutForm("u1", lines))
	require.NoError(t, err)

	// The vanished product still ships on the order with its stale snapshot.
	assert.Len(t, o.Items, 2)
	assert.Equal(t, 180.0, o.Total)
	assert.Equal(t, 4, prods.stockOf("p1", "24"))
	assert.Len(t, orders.created, 1)
}

func TestCheckout_UntrackedSizeIsSkippedNotFatal(t *testing.T) {
	p := mustProduct(t, "p1", "Bota Clásica", 100, map[string]int{"24": 5})
	uc, _, _, prods, _ := newCheckoutEnv(t, p)

	lines := []cartdom.Line{
		mustLine(t, "l1", "u1", "p1", "99", 1, "Bota Clásica", 100),
	}

	_, err := uc.Checkout(context.Background(), checkoutForm("u1", lines))
	require.NoError(t, err)
	assert.Equal(t, 5, prods.stockOf("p1", "24"))
}

func TestCheckout_EmptyCartRejected(t *testing.T) {
	uc, _, _, _, _ := newCheckoutEnv(t)
	_, err := uc.Checkout(context.Background(), checkoutForm("u1", nil))
	assert.ErrorIs(t, err, ErrCheckoutEmptyCart)
}

func TestCheckout_InvalidMetodoPagoRejected(t *testing.T) {
	p := mustProduct(t, "p1", "Bota Clásica", 100, map[string]int{"24": 5})
	uc, orders, _, _, _ := newCheckoutEnv(t, p)

	in := checkoutForm("u1", []cartdom.Line{
		mustLine(t, "l1", "u1", "p1", "24", 1, "Bota Clásica", 100),
	})
	in.MetodoPago = "tarjeta"

	_, err := uc.Checkout(context.Background(), in)
	assert.ErrorIs(t, err, orderdom.ErrInvalidMetodoPago)
	assert.Empty(t, orders.created)
}

func TestCheckout_NotifierFailureDoesNotFailOrder(t *testing.T) {
	p := mustProduct(t, "p1", "Bota Clásica", 100, map[string]int{"24": 5})
	uc, orders, _, _, notifier := newCheckoutEnv(t, p)
	notifier.err = errors.New("sendgrid down")

	_, err := uc.Checkout(context.Background(), checkoutForm("u1", []cartdom.Line{
		mustLine(t, "l1", "u1", "p1", "24", 1, "Bota Clásica", 100),
	}))
	require.NoError(t, err)
	assert.Len(t, orders.created, 1)
}

// Two concurrent checkouts read the same stock snapshot before either
// writes: the read-modify-write has no concurrency guard, so the second
// write overwrites the first (lost update) instead of accumulating.
func TestCheckout_ConcurrentDecrementsLoseUpdates(t *testing.T) {
	p := mustProduct(t, "p1", "Bota Clásica", 100, map[string]int{"24": 3})

	orders := newFakeOrderRepo()
	carts := newFakeCartRepo()
	prods := newFakeProductRepo(p)
	uc := NewCheckoutUsecase(orders, carts, NewInventoryUsecase(prods), nil)

	// Barrier: both goroutines must finish their product read before
	// either is allowed to save.
	var readBarrier sync.WaitGroup
	readBarrier.Add(2)
	prods.afterGet = func() {
		readBarrier.Done()
		readBarrier.Wait()
	}

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			line := mustLine(t, "", "u1", "p1", "24", 2, "Bota Clásica", 100)
			_, err := uc.Checkout(context.Background(), checkoutForm("u1", []cartdom.Line{line}))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	// Both orders exist, 4 units sold, but stock only dropped by 2:
	// each writer computed 3-2=1 from the same stale read.
	assert.Len(t, orders.created, 2)
	assert.Equal(t, 1, prods.stockOf("p1", "24"))
}

func TestCheckout_EndToEndScenario(t *testing.T) {
	p := mustProduct(t, "p1", "Bota Artesanal", 100, map[string]int{"24": 10})
	uc, _, carts, prods, notifier := newCheckoutEnv(t, p)

	l := mustLine(t, "l1", "ana-uid", "p1", "24", 2, "Bota Artesanal", 100)
	_, _ = carts.Create(context.Background(), l)

	o, err := uc.Checkout(context.Background(), CheckoutInput{
		UsuarioID:  "ana-uid",
		Lines:      []cartdom.Line{l},
		Nombre:     "Ana",
		Direccion:  "Zona 1, Ciudad de Guatemala",
		Telefono:   "5555-1234",
		Correo:     "ana@example.com",
		MetodoPago: "transferencia",
		Nota:       "entregar por la tarde",
	})
	require.NoError(t, err)

	assert.Equal(t, 200.0, o.Total)
	assert.Equal(t, orderdom.PagoTransferencia, o.MetodoPago)
	assert.Equal(t, orderdom.EstadoPendiente, o.Estado)
	assert.Equal(t, 8, prods.stockOf("p1", "24"))
	assert.Contains(t, carts.deleted, "l1")
	require.Len(t, notifier.notified, 1)
}

// checkoutForm builds a valid shipping form around the given lines.
func checkoutForm(uid string, lines []cartdom.Line) CheckoutInput {
	return CheckoutInput{
		UsuarioID:  uid,
		Lines:      lines,
		Nombre:     "Ana",
		Direccion:  "Zona 1",
		Telefono:   "5555-5555",
		Correo:     "ana@example.com",
		MetodoPago: "efectivo",
	}
}
