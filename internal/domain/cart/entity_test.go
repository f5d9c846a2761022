// internal/domain/cart/entity_test.go
package cart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLine(t *testing.T) {
	snap := Snapshot{Nombre: "Bota Clásica", Precio: 450, ImagenURL: "https://img/p1.jpg"}
	l, err := NewLine("", " u1 ", "p1", " 24 ", 2, snap, time.Now())
	require.NoError(t, err)

	assert.Empty(t, l.ID, "repo assigns the id")
	assert.Equal(t, "u1", l.UsuarioID)
	assert.Equal(t, "24", l.Talla)
	assert.Equal(t, "Bota Clásica", l.Nombre)
	assert.Equal(t, 450.0, l.Precio)
	assert.False(t, l.AgregadoEn.IsZero())
}

func TestNewLine_ValidationErrors(t *testing.T) {
	now := time.Now()
	var snap Snapshot

	_, err := NewLine("", "", "p1", "24", 1, snap, now)
	assert.ErrorIs(t, err, ErrInvalidUsuarioID)

	_, err = NewLine("", "u1", "", "24", 1, snap, now)
	assert.ErrorIs(t, err, ErrInvalidProductoID)

	_, err = NewLine("", "u1", "p1", "  ", 1, snap, now)
	assert.ErrorIs(t, err, ErrInvalidTalla)

	_, err = NewLine("", "u1", "p1", "24", 0, snap, now)
	assert.ErrorIs(t, err, ErrInvalidCantidad)
}

func TestSetCantidad_BelowOneKeepsStoredValue(t *testing.T) {
	l, err := NewLine("l1", "u1", "p1", "24", 3, Snapshot{Precio: 100}, time.Now())
	require.NoError(t, err)

	l.SetCantidad(0)
	assert.Equal(t, 3, l.Cantidad)
	l.SetCantidad(-2)
	assert.Equal(t, 3, l.Cantidad)
	l.SetCantidad(7)
	assert.Equal(t, 7, l.Cantidad)
}

func TestSubtotal(t *testing.T) {
	l, err := NewLine("l1", "u1", "p1", "24", 3, Snapshot{Precio: 150}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 450.0, l.Subtotal())
}
