package http

import (
	"net/http"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/catalog"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/service"
)

// Handler adapts the storefront services to HTTP. Every /api handler except
// the catalog ones reads its storage scope from the request context.
type Handler struct {
	cart      service.CartService
	wishlist  service.WishlistService
	auth      service.AuthService
	checkout  service.CheckoutService
	catalog   *catalog.Service
	validator *service.Validator
	log       logger.Logger
}

func NewHandler(
	cart service.CartService,
	wishlist service.WishlistService,
	auth service.AuthService,
	checkout service.CheckoutService,
	catalogService *catalog.Service,
	log logger.Logger,
) *Handler {
	return &Handler{
		cart:      cart,
		wishlist:  wishlist,
		auth:      auth,
		checkout:  checkout,
		catalog:   catalogService,
		validator: service.NewValidator(),
		log:       log,
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
