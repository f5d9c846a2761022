// internal/domain/order/filter.go
package order

import (
	"strings"
	"time"
)

// Filter is the back-office order listing filter.
//
// Semantics (shared by every repository implementation):
// - IDContains: case-insensitive substring match on the order id
// - Estado:     exact match
// - Desde/Hasta: inclusive calendar-day range on FechaCreacion, compared by
//   local-time year/month/day components, not by instant
type Filter struct {
	UsuarioID  string
	IDContains string
	Estado     Estado
	Desde      *time.Time
	Hasta      *time.Time
}

// Matches reports whether o passes the filter.
func (f Filter) Matches(o Order) bool {
	if f.UsuarioID != "" && o.UsuarioID != f.UsuarioID {
		return false
	}
	if s := strings.TrimSpace(f.IDContains); s != "" {
		if !strings.Contains(strings.ToLower(o.ID), strings.ToLower(s)) {
			return false
		}
	}
	if f.Estado != "" && o.Estado != f.Estado {
		return false
	}
	if f.Desde != nil && dayBefore(o.FechaCreacion.Local(), f.Desde.Local()) {
		return false
	}
	if f.Hasta != nil && dayBefore(f.Hasta.Local(), o.FechaCreacion.Local()) {
		return false
	}
	return true
}

// dayBefore reports whether a's calendar day is strictly before b's.
func dayBefore(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay < by
	}
	if am != bm {
		return am < bm
	}
	return ad < bd
}
