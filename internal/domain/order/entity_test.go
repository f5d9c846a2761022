// internal/domain/order/entity_test.go
package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems() []ItemSnapshot {
	return []ItemSnapshot{
		{ProductoID: "p1", Cantidad: 2, Talla: "24", Nombre: "Bota Clásica", Precio: 100},
		{ProductoID: "p2", Cantidad: 1, Talla: "38", Nombre: "Sandalia Trenzada", Precio: 250},
	}
}

func TestNew_ComputesTotalAndStartsPendiente(t *testing.T) {
	o, err := New("", "u1", "Ana", "Zona 1", "5555-5555", "ana@example.com", PagoEfectivo, "", testItems(), time.Now())
	require.NoError(t, err)

	assert.Equal(t, 450.0, o.Total)
	assert.Equal(t, EstadoPendiente, o.Estado)
	assert.Len(t, o.Items, 2)
	assert.False(t, o.FechaCreacion.IsZero())
}

func TestNew_ValidationErrors(t *testing.T) {
	now := time.Now()
	cases := []struct {
		name string
		fn   func() (Order, error)
		want error
	}{
		{"missing usuario", func() (Order, error) {
			return New("", "", "Ana", "Zona 1", "5555", "", PagoEfectivo, "", testItems(), now)
		}, ErrInvalidUsuarioID},
		{"missing nombre", func() (Order, error) {
			return New("", "u1", "", "Zona 1", "5555", "", PagoEfectivo, "", testItems(), now)
		}, ErrInvalidNombre},
		{"missing direccion", func() (Order, error) {
			return New("", "u1", "Ana", "", "5555", "", PagoEfectivo, "", testItems(), now)
		}, ErrInvalidDireccion},
		{"missing telefono", func() (Order, error) {
			return New("", "u1", "Ana", "Zona 1", "", "", PagoEfectivo, "", testItems(), now)
		}, ErrInvalidTelefono},
		{"bad metodoPago", func() (Order, error) {
			return New("", "u1", "Ana", "Zona 1", "5555", "", "tarjeta", "", testItems(), now)
		}, ErrInvalidMetodoPago},
		{"no items", func() (Order, error) {
			return New("", "u1", "Ana", "Zona 1", "5555", "", PagoEfectivo, "", nil, now)
		}, ErrInvalidItems},
		{"item without producto", func() (Order, error) {
			return New("", "u1", "Ana", "Zona 1", "5555", "", PagoEfectivo, "",
				[]ItemSnapshot{{Cantidad: 1, Precio: 10}}, now)
		}, ErrInvalidItems},
		{"item with zero cantidad", func() (Order, error) {
			return New("", "u1", "Ana", "Zona 1", "5555", "", PagoEfectivo, "",
				[]ItemSnapshot{{ProductoID: "p1", Cantidad: 0, Precio: 10}}, now)
		}, ErrInvalidItems},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.fn()
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestComputeTotal(t *testing.T) {
	assert.Equal(t, 0.0, ComputeTotal(nil))
	assert.Equal(t, 450.0, ComputeTotal(testItems()))
}

func TestParseMetodoPago(t *testing.T) {
	m, err := ParseMetodoPago("  Efectivo ")
	require.NoError(t, err)
	assert.Equal(t, PagoEfectivo, m)

	m, err = ParseMetodoPago("transferencia")
	require.NoError(t, err)
	assert.Equal(t, PagoTransferencia, m)

	_, err = ParseMetodoPago("tarjeta")
	assert.ErrorIs(t, err, ErrInvalidMetodoPago)
}

func TestParseEstado(t *testing.T) {
	for _, s := range []string{"pendiente", "en preparación", "enviado", "entregado"} {
		e, err := ParseEstado(s)
		require.NoError(t, err)
		assert.Equal(t, Estado(s), e)
	}
	_, err := ParseEstado("cancelado")
	assert.ErrorIs(t, err, ErrInvalidEstado)
}

// Any status may replace any other; only enum membership is checked.
func TestSetEstado_UnconstrainedTransitions(t *testing.T) {
	o, err := New("", "u1", "Ana", "Zona 1", "5555", "", PagoEfectivo, "", testItems(), time.Now())
	require.NoError(t, err)

	require.NoError(t, o.SetEstado(EstadoEntregado))
	assert.Equal(t, EstadoEntregado, o.Estado)

	// Backwards is fine too.
	require.NoError(t, o.SetEstado(EstadoPendiente))
	assert.Equal(t, EstadoPendiente, o.Estado)

	assert.ErrorIs(t, o.SetEstado("perdido"), ErrInvalidEstado)
	assert.Equal(t, EstadoPendiente, o.Estado)
}
