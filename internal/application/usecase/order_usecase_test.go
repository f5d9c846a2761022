// internal/application/usecase/order_usecase_test.go
package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zapateria/internal/domain/common"
	orderdom "zapateria/internal/domain/order"
)

func seedOrder(t *testing.T, repo *fakeOrderRepo, uid string, estado orderdom.Estado) orderdom.Order {
	t.Helper()
	o, err := orderdom.New("", uid, "Ana", "Zona 1", "5555-5555", "ana@example.com",
		orderdom.PagoEfectivo, "",
		[]orderdom.ItemSnapshot{{ProductoID: "p1", Cantidad: 1, Talla: "24", Precio: 100}},
		time.Now())
	require.NoError(t, err)
	o.Estado = estado
	created, err := repo.Create(context.Background(), o)
	require.NoError(t, err)
	return created
}

func TestOrderSetEstado(t *testing.T) {
	repo := newFakeOrderRepo()
	uc := NewOrderUsecase(repo)
	o := seedOrder(t, repo, "u1", orderdom.EstadoPendiente)

	require.NoError(t, uc.SetEstado(context.Background(), o.ID, "enviado"))
	got, err := uc.GetByID(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, orderdom.EstadoEnviado, got.Estado)
}

func TestOrderSetEstado_RejectsUnknownValue(t *testing.T) {
	repo := newFakeOrderRepo()
	uc := NewOrderUsecase(repo)
	o := seedOrder(t, repo, "u1", orderdom.EstadoPendiente)

	err := uc.SetEstado(context.Background(), o.ID, "cancelado")
	assert.ErrorIs(t, err, orderdom.ErrInvalidEstado)

	got, _ := uc.GetByID(context.Background(), o.ID)
	assert.Equal(t, orderdom.EstadoPendiente, got.Estado)
}

func TestOrderSetEstado_UnknownOrder(t *testing.T) {
	uc := NewOrderUsecase(newFakeOrderRepo())
	err := uc.SetEstado(context.Background(), "nope", "enviado")
	assert.ErrorIs(t, err, orderdom.ErrNotFound)
}

func TestOrderListMine_OnlyOwnOrders(t *testing.T) {
	repo := newFakeOrderRepo()
	uc := NewOrderUsecase(repo)
	seedOrder(t, repo, "u1", orderdom.EstadoPendiente)
	seedOrder(t, repo, "u1", orderdom.EstadoEnviado)
	seedOrder(t, repo, "u2", orderdom.EstadoPendiente)

	mine, err := uc.ListMine(context.Background(), "u1")
	require.NoError(t, err)
	assert.Len(t, mine, 2)
	for _, o := range mine {
		assert.Equal(t, "u1", o.UsuarioID)
	}
}

func TestOrderListForStaff_AppliesFilter(t *testing.T) {
	repo := newFakeOrderRepo()
	uc := NewOrderUsecase(repo)
	seedOrder(t, repo, "u1", orderdom.EstadoPendiente)
	seedOrder(t, repo, "u2", orderdom.EstadoEnviado)

	res, err := uc.ListForStaff(context.Background(),
		orderdom.Filter{Estado: orderdom.EstadoEnviado}, common.Sort{}, common.Page{})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "u2", res.Items[0].UsuarioID)
}
