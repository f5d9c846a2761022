// internal/domain/order/filter_test.go
package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func orderAt(id, uid string, estado Estado, created time.Time) Order {
	return Order{ID: id, UsuarioID: uid, Estado: estado, FechaCreacion: created}
}

func TestFilterMatches_Empty(t *testing.T) {
	o := orderAt("ORD-1", "u1", EstadoPendiente, time.Now())
	assert.True(t, Filter{}.Matches(o))
}

func TestFilterMatches_IDContainsIsCaseInsensitive(t *testing.T) {
	o := orderAt("ORD-AbC123", "u1", EstadoPendiente, time.Now())

	assert.True(t, Filter{IDContains: "abc"}.Matches(o))
	assert.True(t, Filter{IDContains: "ORD-"}.Matches(o))
	assert.False(t, Filter{IDContains: "xyz"}.Matches(o))
	// Blank substring filters nothing out.
	assert.True(t, Filter{IDContains: "   "}.Matches(o))
}

func TestFilterMatches_EstadoExact(t *testing.T) {
	o := orderAt("o1", "u1", EstadoEnviado, time.Now())
	assert.True(t, Filter{Estado: EstadoEnviado}.Matches(o))
	assert.False(t, Filter{Estado: EstadoEntregado}.Matches(o))
}

func TestFilterMatches_UsuarioExact(t *testing.T) {
	o := orderAt("o1", "u1", EstadoPendiente, time.Now())
	assert.True(t, Filter{UsuarioID: "u1"}.Matches(o))
	assert.False(t, Filter{UsuarioID: "u2"}.Matches(o))
}

// The date range compares calendar days, not instants: an order placed at
// 23:59 on the range's last day is still inside it.
func TestFilterMatches_DateRangeIsInclusiveByCalendarDay(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	lateOnDay := time.Date(2026, 3, 10, 23, 59, 0, 0, time.Local)
	earlyOnDay := time.Date(2026, 3, 10, 0, 1, 0, 0, time.Local)
	dayBeforeIt := day.AddDate(0, 0, -1)
	dayAfterIt := day.AddDate(0, 0, 1)

	f := Filter{Desde: &day, Hasta: &day}

	assert.True(t, f.Matches(orderAt("o1", "u1", EstadoPendiente, lateOnDay)))
	assert.True(t, f.Matches(orderAt("o2", "u1", EstadoPendiente, earlyOnDay)))
	assert.False(t, f.Matches(orderAt("o3", "u1", EstadoPendiente, dayBeforeIt)))
	assert.False(t, f.Matches(orderAt("o4", "u1", EstadoPendiente, dayAfterIt)))
}

func TestFilterMatches_OpenEndedRanges(t *testing.T) {
	cut := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	before := cut.AddDate(0, 0, -3)
	after := cut.AddDate(0, 0, 3)

	desde := Filter{Desde: &cut}
	assert.True(t, desde.Matches(orderAt("o1", "u1", EstadoPendiente, after)))
	assert.False(t, desde.Matches(orderAt("o2", "u1", EstadoPendiente, before)))

	hasta := Filter{Hasta: &cut}
	assert.True(t, hasta.Matches(orderAt("o3", "u1", EstadoPendiente, before)))
	assert.False(t, hasta.Matches(orderAt("o4", "u1", EstadoPendiente, after)))
}

func TestFilterMatches_CombinedPredicates(t *testing.T) {
	created := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	o := orderAt("ORD-77", "u1", EstadoEnviado, created)

	f := Filter{UsuarioID: "u1", IDContains: "77", Estado: EstadoEnviado, Desde: &created, Hasta: &created}
	assert.True(t, f.Matches(o))

	f.Estado = EstadoPendiente
	assert.False(t, f.Matches(o))
}
