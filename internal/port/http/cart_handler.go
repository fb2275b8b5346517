package http

import (
	"net/http"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/shopspring/decimal"
)

type cartResponse struct {
	Items []entity.CartLineItem `json:"items"`
	Total decimal.Decimal       `json:"total"`
	Count int                   `json:"count"`
}

type updateQuantityRequest struct {
	ID       int    `json:"id" validate:"required,gt=0"`
	Size     string `json:"size"`
	Color    string `json:"color"`
	Quantity int    `json:"quantity" validate:"lte=9999"`
}

type selectShippingRequest struct {
	Method string `json:"method"`
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	items := h.cart.GetCart(r.Context(), ScopeFromContext(r.Context()))
	cart := entity.NewCart(items...)
	writeJSON(w, http.StatusOK, cartResponse{Items: items, Total: cart.Total(), Count: cart.Count()})
}

func (h *Handler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var req entity.CartItemInput
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeSuccess(w, h.cart.AddToCart(r.Context(), ScopeFromContext(r.Context()), req))
}

func (h *Handler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	var req updateQuantityRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		h.writeError(w, r, err)
		return
	}
	ok := h.cart.UpdateQuantity(r.Context(), ScopeFromContext(r.Context()), req.ID, req.Size, req.Color, req.Quantity)
	writeSuccess(w, ok)
}

func (h *Handler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	id, err := parseID(q.Get("id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeSuccess(w, h.cart.RemoveFromCart(r.Context(), ScopeFromContext(r.Context()), id, q.Get("size"), q.Get("color")))
}

func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, h.cart.ClearCart(r.Context(), ScopeFromContext(r.Context())))
}

func (h *Handler) GetCartCount(w http.ResponseWriter, r *http.Request) {
	count := h.cart.GetCartCount(r.Context(), ScopeFromContext(r.Context()))
	writeJSON(w, http.StatusOK, map[string]int{"count": count})
}

// SyncCartCount re-broadcasts the badge count to subscribers.
func (h *Handler) SyncCartCount(w http.ResponseWriter, r *http.Request) {
	h.cart.UpdateCartCount(r.Context(), ScopeFromContext(r.Context()))
	writeSuccess(w, true)
}

func (h *Handler) SelectShipping(w http.ResponseWriter, r *http.Request) {
	var req selectShippingRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.checkout.SelectShipping(r.Context(), ScopeFromContext(r.Context()), req.Method); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeSuccess(w, true)
}

func (h *Handler) CartSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.checkout.Summary(r.Context(), ScopeFromContext(r.Context()), r.URL.Query().Get("coupon"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
