// internal/adapters/out/db/order_repository_pg_test.go
package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zapateria/internal/domain/common"
	orderdom "zapateria/internal/domain/order"
)

func TestBuildOrderWhere_Empty(t *testing.T) {
	where, args := buildOrderWhere(orderdom.Filter{})
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestBuildOrderWhere_NumbersPlaceholdersInOrder(t *testing.T) {
	desde := time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)
	hasta := time.Date(2026, 3, 31, 0, 0, 0, 0, time.Local)

	where, args := buildOrderWhere(orderdom.Filter{
		UsuarioID:  "u1",
		IDContains: "ord",
		Estado:     orderdom.EstadoEnviado,
		Desde:      &desde,
		Hasta:      &hasta,
	})

	require.Equal(t, []string{
		"usuario_id = $1",
		"id ILIKE '%' || $2 || '%'",
		"estado = $3",
		"fecha_creacion::date >= $4::date",
		"fecha_creacion::date <= $5::date",
	}, where)
	require.Len(t, args, 5)
	assert.Equal(t, "u1", args[0])
	assert.Equal(t, "ord", args[1])
	assert.Equal(t, "enviado", args[2])
	assert.Equal(t, desde, args[3])
	assert.Equal(t, hasta, args[4])
}

// Skipped predicates must not leave placeholder gaps.
func TestBuildOrderWhere_SparseFilterRenumbers(t *testing.T) {
	hasta := time.Date(2026, 3, 31, 0, 0, 0, 0, time.Local)

	where, args := buildOrderWhere(orderdom.Filter{
		Estado: orderdom.EstadoPendiente,
		Hasta:  &hasta,
	})

	assert.Equal(t, []string{
		"estado = $1",
		"fecha_creacion::date <= $2::date",
	}, where)
	assert.Len(t, args, 2)
}

func TestBuildOrderWhere_BlankValuesAreIgnored(t *testing.T) {
	where, args := buildOrderWhere(orderdom.Filter{UsuarioID: "  ", IDContains: " "})
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestBuildOrderOrderBy(t *testing.T) {
	assert.Equal(t, "ORDER BY fecha_creacion DESC", buildOrderOrderBy(common.Sort{}))
	assert.Equal(t, "ORDER BY total ASC", buildOrderOrderBy(common.Sort{Column: "total", Order: common.SortAsc}))
	assert.Equal(t, "ORDER BY estado DESC", buildOrderOrderBy(common.Sort{Column: "Estado", Order: common.SortDesc}))
	assert.Equal(t, "ORDER BY fecha_creacion ASC", buildOrderOrderBy(common.Sort{Column: "fechaCreacion", Order: common.SortAsc}))
}

// Unknown columns never reach the SQL string.
func TestBuildOrderOrderBy_RejectsUnknownColumns(t *testing.T) {
	got := buildOrderOrderBy(common.Sort{Column: "total; DROP TABLE orders", Order: common.SortAsc})
	assert.Equal(t, "ORDER BY fecha_creacion DESC", got)
}
