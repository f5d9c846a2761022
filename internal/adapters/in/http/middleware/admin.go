// internal/adapters/in/http/middleware/admin.go
package middleware

import (
	"log"
	"net/http"

	userdom "zapateria/internal/domain/user"
)

// AdminMiddleware gates back-office routes: the caller must already be
// authenticated (AuthMiddleware runs first) and must have a document in
// the admins collection. Membership is all-or-nothing, no role tiers.
type AdminMiddleware struct {
	Gate userdom.AdminGatePort
}

func (m *AdminMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m == nil || m.Gate == nil {
			http.Error(w, "admin middleware not initialized", http.StatusServiceUnavailable)
			return
		}

		uid, ok := CurrentUID(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		isAdmin, err := m.Gate.IsAdmin(r.Context(), uid)
		if err != nil {
			log.Printf("[admin_mw] gate check failed uid=%s err=%v", uid, err)
			http.Error(w, "admin check failed", http.StatusInternalServerError)
			return
		}
		if !isAdmin {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
