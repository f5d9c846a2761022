// internal/adapters/in/http/shop/router.go
package shop

import (
	"log"
	"net/http"
)

// Deps is the full handler set: public storefront, authenticated
// customer routes, and the admin back office. Handlers arrive already
// wrapped with whatever middleware they need (auth / admin gate); the
// router only maps patterns.
type Deps struct {
	// public
	Product http.Handler
	Contact http.Handler

	// authenticated customer
	Cart         http.Handler
	Checkout     http.Handler
	Order        http.Handler
	Favorite     http.Handler
	Conversation http.Handler
	Profile      http.Handler
	Intent       http.Handler

	// back office (admin gate)
	AdminProduct      http.Handler
	AdminOrder        http.Handler
	AdminConversation http.Handler
}

// handleSafe registers pattern with h.
// If h is nil, it logs and registers NotFoundHandler instead (so the
// service still boots with a partial dependency set).
func handleSafe(mux *http.ServeMux, pattern string, h http.Handler, name string) {
	if h == nil {
		log.Printf("[shop.router] WARN: nil handler: %s pattern=%s (registering NotFoundHandler)", name, pattern)
		h = http.NotFoundHandler()
	}
	mux.Handle(pattern, h)
}

// Register registers all routes onto mux.
func Register(mux *http.ServeMux, deps Deps) {
	if mux == nil {
		return
	}

	// catalog (public; reviews POST checks auth inside)
	handleSafe(mux, "/shop/products", deps.Product, "Product")
	handleSafe(mux, "/shop/products/", deps.Product, "Product")

	// contact form (public)
	handleSafe(mux, "/shop/contact", deps.Contact, "Contact")
	handleSafe(mux, "/shop/contact/", deps.Contact, "Contact")

	// cart
	handleSafe(mux, "/shop/me/cart", deps.Cart, "Cart(me)")
	handleSafe(mux, "/shop/me/cart/", deps.Cart, "Cart(me)")

	// checkout
	handleSafe(mux, "/shop/me/checkout", deps.Checkout, "Checkout(me)")
	handleSafe(mux, "/shop/me/checkout/", deps.Checkout, "Checkout(me)")

	// orders
	handleSafe(mux, "/shop/me/orders", deps.Order, "Order(me)")
	handleSafe(mux, "/shop/me/orders/", deps.Order, "Order(me)")

	// favorites
	handleSafe(mux, "/shop/me/favorites", deps.Favorite, "Favorite(me)")
	handleSafe(mux, "/shop/me/favorites/", deps.Favorite, "Favorite(me)")

	// support chat
	handleSafe(mux, "/shop/me/conversation", deps.Conversation, "Conversation(me)")
	handleSafe(mux, "/shop/me/conversation/", deps.Conversation, "Conversation(me)")

	// profile
	handleSafe(mux, "/shop/me/profile", deps.Profile, "Profile(me)")
	handleSafe(mux, "/shop/me/profile/", deps.Profile, "Profile(me)")

	// login handoff
	handleSafe(mux, "/shop/me/intent", deps.Intent, "Intent(me)")
	handleSafe(mux, "/shop/me/intent/", deps.Intent, "Intent(me)")
	handleSafe(mux, "/shop/me/login-complete", deps.Intent, "Intent(login-complete)")
	handleSafe(mux, "/shop/me/login-complete/", deps.Intent, "Intent(login-complete)")

	// back office
	handleSafe(mux, "/admin/products", deps.AdminProduct, "AdminProduct")
	handleSafe(mux, "/admin/products/", deps.AdminProduct, "AdminProduct")
	handleSafe(mux, "/admin/orders", deps.AdminOrder, "AdminOrder")
	handleSafe(mux, "/admin/orders/", deps.AdminOrder, "AdminOrder")
	handleSafe(mux, "/admin/conversations", deps.AdminConversation, "AdminConversation")
	handleSafe(mux, "/admin/conversations/", deps.AdminConversation, "AdminConversation")
}
