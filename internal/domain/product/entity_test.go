// internal/domain/product/entity_test.go
package product

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProduct(t *testing.T, stock map[string]int) Product {
	t.Helper()
	p, err := New("p1", "Bota Clásica", "cuero genuino", 450, "botas", "mujer", "cuero", "goma",
		"", nil, stock, "admin-1", time.Now())
	require.NoError(t, err)
	return p
}

func TestNew_DerivesTallasAndTotalFromStockMap(t *testing.T) {
	p := newProduct(t, map[string]int{"25": 3, "24": 5, "26": 0})

	assert.Equal(t, []string{"24", "25", "26"}, p.TallaDisponible)
	assert.Equal(t, 8, p.Stock)
}

func TestNew_NormalizesStockMap(t *testing.T) {
	p := newProduct(t, map[string]int{" 24 ": 5, "": 9, "25": -3})

	assert.Equal(t, 5, p.StockPorTalla["24"])
	assert.Equal(t, 0, p.StockPorTalla["25"], "negative counts are floored at 0")
	assert.NotContains(t, p.StockPorTalla, "")
	assert.Equal(t, 5, p.Stock)
}

func TestNew_ValidationErrors(t *testing.T) {
	_, err := New("", "", "", 10, "", "", "", "", "", nil, nil, "", time.Now())
	assert.ErrorIs(t, err, ErrInvalidNombre)

	_, err = New("", "Bota", "", -1, "", "", "", "", "", nil, nil, "", time.Now())
	assert.ErrorIs(t, err, ErrInvalidPrecio)
}

func TestHasSize(t *testing.T) {
	p := newProduct(t, map[string]int{"24": 5, "25": 0})

	assert.True(t, p.HasSize("24"))
	assert.True(t, p.HasSize(" 25 "), "a sold-out size is still tracked")
	assert.False(t, p.HasSize("99"))
}

func TestDecrementSize_FloorsAtZero(t *testing.T) {
	p := newProduct(t, map[string]int{"24": 2, "25": 7})

	require.NoError(t, p.DecrementSize("24", 5))
	assert.Equal(t, 0, p.StockPorTalla["24"], "decrement past zero clamps, never negative")
	assert.Equal(t, 7, p.Stock)

	require.NoError(t, p.DecrementSize("25", 3))
	assert.Equal(t, 4, p.StockPorTalla["25"])
	assert.Equal(t, 4, p.Stock)
}

func TestDecrementSize_UntrackedSize(t *testing.T) {
	p := newProduct(t, map[string]int{"24": 2})
	err := p.DecrementSize("99", 1)
	assert.ErrorIs(t, err, ErrSizeNotTracked)
	assert.Equal(t, 2, p.Stock, "failed decrement leaves stock untouched")
}

func TestDecrementSize_NegativeQtyIsZero(t *testing.T) {
	p := newProduct(t, map[string]int{"24": 2})
	require.NoError(t, p.DecrementSize("24", -5))
	assert.Equal(t, 2, p.StockPorTalla["24"], "a negative qty must not restock")
}

func TestRecomputeStock(t *testing.T) {
	p := newProduct(t, map[string]int{"24": 2, "25": 3})

	// Direct map edits (the admin stock replacement path) need an explicit
	// recompute to keep the denormalized total honest.
	p.StockPorTalla["24"] = 10
	assert.Equal(t, 13, p.RecomputeStock())
	assert.Equal(t, 13, p.Stock)
}
