package http

import (
	"net/http"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/service"
)

type applyCouponRequest struct {
	Code string `json:"code"`
}

func (h *Handler) ShippingMethods(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]service.ShippingMethod{"methods": h.checkout.ShippingMethods()})
}

func (h *Handler) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	var req applyCouponRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	coupon, err := h.checkout.ApplyCoupon(req.Code)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, coupon)
}

func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req service.PlaceOrderInput
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	order, err := h.checkout.PlaceOrder(r.Context(), ScopeFromContext(r.Context()), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}
