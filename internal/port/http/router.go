package http

import (
	"net/http"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires every storefront route. Catalog routes are public; the
// rest need X-Storage-Scope.
func NewRouter(h *Handler, log logger.Logger, m *metrics.MetricsManager, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(log))
	r.Use(Metrics(m))
	r.Use(middleware.Recoverer)
	r.Use(CORS(allowedOrigins))

	r.Get("/healthz", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/products", h.ListProducts)
			r.Get("/products/{id}", h.GetProduct)
			r.Get("/products/{id}/related", h.RelatedProducts)
			r.Get("/search", h.SearchProducts)
			r.Get("/categories", h.ListCategories)
		})

		r.Group(func(r chi.Router) {
			r.Use(RequireScope)

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", h.GetCart)
				r.Delete("/", h.ClearCart)
				r.Post("/items", h.AddCartItem)
				r.Patch("/items", h.UpdateCartItem)
				r.Delete("/items", h.RemoveCartItem)
				r.Get("/count", h.GetCartCount)
				r.Post("/count/sync", h.SyncCartCount)
				r.Put("/shipping", h.SelectShipping)
				r.Get("/summary", h.CartSummary)
			})

			r.Route("/wishlist", func(r chi.Router) {
				r.Get("/", h.GetWishlist)
				r.Delete("/", h.ClearWishlist)
				r.Post("/items", h.AddWishlistItem)
				r.Get("/items/{id}", h.GetWishlistItem)
				r.Delete("/items/{id}", h.RemoveWishlistItem)
				r.Post("/items/{id}/move-to-cart", h.MoveWishlistItemToCart)
				r.Post("/toggle", h.ToggleWishlistItem)
			})

			r.Route("/auth", func(r chi.Router) {
				r.Post("/register", h.Register)
				r.Post("/login", h.Login)
				r.Post("/logout", h.Logout)
				r.Get("/session", h.CurrentSession)
				r.Get("/profile", h.Profile)
				r.Post("/password-strength", h.PasswordStrength)
			})

			r.Route("/checkout", func(r chi.Router) {
				r.Get("/shipping-methods", h.ShippingMethods)
				r.Post("/coupon", h.ApplyCoupon)
				r.Post("/orders", h.PlaceOrder)
			})
		})
	})

	return r
}
