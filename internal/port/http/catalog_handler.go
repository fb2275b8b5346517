package http

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/catalog"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/go-chi/chi/v5"
)

type searchResponse struct {
	Query   string           `json:"query"`
	Results []entity.Product `json:"results"`
	Count   int              `json:"count"`
}

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	state, err := parseListingState(r.URL.Query())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.catalog.Browse(state))
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	product, err := h.catalog.GetProduct(id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (h *Handler) RelatedProducts(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if limit, err = strconv.Atoi(raw); err != nil {
			h.writeError(w, r, fmt.Errorf("%w: limit must be an integer", errBadRequest))
			return
		}
	}
	related, err := h.catalog.Related(id, limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]entity.Product{"products": related})
}

func (h *Handler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	results := h.catalog.Search(query)
	writeJSON(w, http.StatusOK, searchResponse{Query: query, Results: results, Count: len(results)})
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"categories": h.catalog.Categories()})
}

// parseListingState accepts categories either repeated or comma separated:
// ?category=chairs&category=sofas and ?category=chairs,sofas are the same.
func parseListingState(q url.Values) (catalog.ListingState, error) {
	var state catalog.ListingState
	for _, raw := range q["category"] {
		for _, c := range strings.Split(raw, ",") {
			if c = strings.TrimSpace(c); c != "" {
				state.Filter.Categories = append(state.Filter.Categories, c)
			}
		}
	}
	state.Filter.SortBy = catalog.SortOrder(q.Get("sort"))

	ints := []struct {
		name string
		dst  *int
	}{
		{"maxPrice", &state.Filter.MaxPrice},
		{"minRating", &state.Filter.MinRating},
		{"page", &state.Page},
		{"pageSize", &state.PageSize},
	}
	for _, p := range ints {
		raw := q.Get(p.name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return state, fmt.Errorf("%w: %s must be an integer", errBadRequest, p.name)
		}
		*p.dst = n
	}
	return state, nil
}
