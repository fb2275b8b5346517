package http

import (
	"net/http"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/go-chi/chi/v5"
)

type wishlistResponse struct {
	Items []entity.WishlistEntry `json:"items"`
	Count int                    `json:"count"`
}

type membershipResponse struct {
	InWishlist bool `json:"inWishlist"`
}

func (h *Handler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	items := h.wishlist.GetWishlist(r.Context(), ScopeFromContext(r.Context()))
	writeJSON(w, http.StatusOK, wishlistResponse{Items: items, Count: len(items)})
}

func (h *Handler) decodeWishlistEntry(w http.ResponseWriter, r *http.Request) (entity.WishlistEntry, bool) {
	var entry entity.WishlistEntry
	if err := decodeJSON(w, r, &entry); err != nil {
		h.writeError(w, r, err)
		return entry, false
	}
	if err := h.validator.Struct(entry); err != nil {
		h.writeError(w, r, err)
		return entry, false
	}
	return entry, true
}

func (h *Handler) AddWishlistItem(w http.ResponseWriter, r *http.Request) {
	entry, ok := h.decodeWishlistEntry(w, r)
	if !ok {
		return
	}
	writeSuccess(w, h.wishlist.AddToWishlist(r.Context(), ScopeFromContext(r.Context()), entry))
}

func (h *Handler) ToggleWishlistItem(w http.ResponseWriter, r *http.Request) {
	entry, ok := h.decodeWishlistEntry(w, r)
	if !ok {
		return
	}
	in := h.wishlist.ToggleWishlist(r.Context(), ScopeFromContext(r.Context()), entry)
	writeJSON(w, http.StatusOK, membershipResponse{InWishlist: in})
}

func (h *Handler) GetWishlistItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	in := h.wishlist.IsInWishlist(r.Context(), ScopeFromContext(r.Context()), id)
	writeJSON(w, http.StatusOK, membershipResponse{InWishlist: in})
}

func (h *Handler) RemoveWishlistItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeSuccess(w, h.wishlist.RemoveFromWishlist(r.Context(), ScopeFromContext(r.Context()), id))
}

func (h *Handler) MoveWishlistItemToCart(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeSuccess(w, h.wishlist.MoveToCart(r.Context(), ScopeFromContext(r.Context()), id))
}

func (h *Handler) ClearWishlist(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, h.wishlist.ClearWishlist(r.Context(), ScopeFromContext(r.Context())))
}
