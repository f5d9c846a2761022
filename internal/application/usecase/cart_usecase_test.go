// internal/application/usecase/cart_usecase_test.go
package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartdom "zapateria/internal/domain/cart"
	productdom "zapateria/internal/domain/product"
)

func newCartEnv(t *testing.T, products ...productdom.Product) (*CartUsecase, *fakeCartRepo, *fakeProductRepo) {
	t.Helper()
	carts := newFakeCartRepo()
	prods := newFakeProductRepo(products...)
	return NewCartUsecase(carts, prods), carts, prods
}

func TestCartAddLine_CapturesProductSnapshot(t *testing.T) {
	p := mustProduct(t, "p1", "Sandalia Trenzada", 250, map[string]int{"37": 4})
	p.ImagenURL = "https://img.example.com/p1.jpg"
	prods := newFakeProductRepo(p)
	uc := NewCartUsecase(newFakeCartRepo(), prods)

	l, err := uc.AddLine(context.Background(), AddLineInput{
		UsuarioID: "u1", ProductoID: "p1", Talla: "37", Cantidad: 2,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, l.ID)
	assert.Equal(t, "Sandalia Trenzada", l.Nombre)
	assert.Equal(t, 250.0, l.Precio)
	assert.Equal(t, "https://img.example.com/p1.jpg", l.ImagenURL)
	assert.Equal(t, 2, l.Cantidad)
	assert.False(t, l.AgregadoEn.IsZero())
}

func TestCartAddLine_RejectsInsufficientStock(t *testing.T) {
	p := mustProduct(t, "p1", "Sandalia Trenzada", 250, map[string]int{"37": 1})
	uc, carts, _ := newCartEnv(t, p)

	_, err := uc.AddLine(context.Background(), AddLineInput{
		UsuarioID: "u1", ProductoID: "p1", Talla: "37", Cantidad: 3,
	})
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Empty(t, carts.lines)
}

func TestCartAddLine_RejectsUntrackedSize(t *testing.T) {
	p := mustProduct(t, "p1", "Sandalia Trenzada", 250, map[string]int{"37": 4})
	uc, _, _ := newCartEnv(t, p)

	_, err := uc.AddLine(context.Background(), AddLineInput{
		UsuarioID: "u1", ProductoID: "p1", Talla: "99", Cantidad: 1,
	})
	assert.ErrorIs(t, err, productdom.ErrSizeNotTracked)
}

func TestCartAddLine_UnknownProduct(t *testing.T) {
	uc, _, _ := newCartEnv(t)
	_, err := uc.AddLine(context.Background(), AddLineInput{
		UsuarioID: "u1", ProductoID: "gone", Talla: "37", Cantidad: 1,
	})
	assert.ErrorIs(t, err, productdom.ErrNotFound)
}

// Adding the same (usuario, producto, talla) twice makes two lines;
// quantities are never merged.
func TestCartAddLine_DuplicateSelectionCreatesIndependentLines(t *testing.T) {
	p := mustProduct(t, "p1", "Sandalia Trenzada", 250, map[string]int{"37": 10})
	uc, carts, _ := newCartEnv(t, p)

	l1, err := uc.AddLine(context.Background(), AddLineInput{UsuarioID: "u1", ProductoID: "p1", Talla: "37", Cantidad: 1})
	require.NoError(t, err)
	l2, err := uc.AddLine(context.Background(), AddLineInput{UsuarioID: "u1", ProductoID: "p1", Talla: "37", Cantidad: 2})
	require.NoError(t, err)

	assert.NotEqual(t, l1.ID, l2.ID)
	lines, _ := carts.ListByUsuario(context.Background(), "u1")
	assert.Len(t, lines, 2)
}

func TestCartUpdateQuantity_BelowOneIsSilentNoOp(t *testing.T) {
	p := mustProduct(t, "p1", "Sandalia Trenzada", 250, map[string]int{"37": 10})
	uc, carts, _ := newCartEnv(t, p)

	l, err := uc.AddLine(context.Background(), AddLineInput{UsuarioID: "u1", ProductoID: "p1", Talla: "37", Cantidad: 2})
	require.NoError(t, err)

	require.NoError(t, uc.UpdateQuantity(context.Background(), l.ID, 0))
	got, err := carts.GetByID(context.Background(), l.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Cantidad, "quantity below 1 must keep the stored value")

	require.NoError(t, uc.UpdateQuantity(context.Background(), l.ID, 5))
	got, _ = carts.GetByID(context.Background(), l.ID)
	assert.Equal(t, 5, got.Cantidad)
}

// Quantity updates do not re-check stock: bumping beyond availability
// succeeds here and is only reconciled (floored) during checkout.
func TestCartUpdateQuantity_DoesNotValidateStock(t *testing.T) {
	p := mustProduct(t, "p1", "Sandalia Trenzada", 250, map[string]int{"37": 2})
	uc, carts, _ := newCartEnv(t, p)

	l, err := uc.AddLine(context.Background(), AddLineInput{UsuarioID: "u1", ProductoID: "p1", Talla: "37", Cantidad: 1})
	require.NoError(t, err)

	require.NoError(t, uc.UpdateQuantity(context.Background(), l.ID, 50))
	got, _ := carts.GetByID(context.Background(), l.ID)
	assert.Equal(t, 50, got.Cantidad)
}

func TestCartRemoveLine(t *testing.T) {
	p := mustProduct(t, "p1", "Sandalia Trenzada", 250, map[string]int{"37": 10})
	uc, carts, _ := newCartEnv(t, p)

	l, err := uc.AddLine(context.Background(), AddLineInput{UsuarioID: "u1", ProductoID: "p1", Talla: "37", Cantidad: 1})
	require.NoError(t, err)

	require.NoError(t, uc.RemoveLine(context.Background(), l.ID))
	_, err = carts.GetByID(context.Background(), l.ID)
	assert.ErrorIs(t, err, cartdom.ErrNotFound)
}

func TestCartSubscribe_EmitsSnapshotAndClosesOnCancel(t *testing.T) {
	p := mustProduct(t, "p1", "Sandalia Trenzada", 250, map[string]int{"37": 10})
	uc, _, _ := newCartEnv(t, p)

	_, err := uc.AddLine(context.Background(), AddLineInput{UsuarioID: "u1", ProductoID: "p1", Talla: "37", Cantidad: 1})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := uc.Subscribe(ctx, "u1")
	require.NoError(t, err)

	select {
	case upd := <-ch:
		require.NoError(t, upd.Err)
		assert.Len(t, upd.Lines, 1)
	case <-time.After(time.Second):
		t.Fatal("expected an initial cart snapshot")
	}

	cancel()
	select {
	case _, open := <-ch:
		assert.False(t, open, "stream must close after cancel")
	case <-time.After(time.Second):
		t.Fatal("stream did not close after cancel")
	}
}
