package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/shopspring/decimal"
)

const (
	CategoryAll      = "all"
	DefaultPageSize  = 9
	DefaultMaxPrice  = 500
	DefaultRelated   = 4
	maxPageSize      = 100
	chipKindCategory = "category"
	chipKindPrice    = "price"
	chipKindRating   = "rating"
)

var ErrProductNotFound = errors.New("product not found")

type SortOrder string

const (
	SortDefault   SortOrder = "default"
	SortPriceLow  SortOrder = "price-low"
	SortPriceHigh SortOrder = "price-high"
	SortName      SortOrder = "name"
	SortRating    SortOrder = "rating"
)

// Filter is the listing's filter panel. Zero values mean "no restriction":
// no categories is the same as "all", a non-positive MaxPrice means
// DefaultMaxPrice.
type Filter struct {
	Categories []string  `json:"categories"`
	MaxPrice   int       `json:"maxPrice"`
	MinRating  int       `json:"minRating"`
	SortBy     SortOrder `json:"sortBy"`
}

// ListingState is everything one listing request needs. It is passed in
// explicitly; the catalog keeps no per-shopper state.
type ListingState struct {
	Filter   Filter `json:"filter"`
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
}

type FilterChip struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
	Label string `json:"label"`
}

type ProductPage struct {
	Products      []entity.Product `json:"products"`
	Total         int              `json:"total"`
	Page          int              `json:"page"`
	PageSize      int              `json:"pageSize"`
	TotalPages    int              `json:"totalPages"`
	ActiveFilters []FilterChip     `json:"activeFilters"`
}

type Service struct {
	products []entity.Product
}

// NewService serves the given products, or DefaultProducts when none are
// given.
func NewService(products []entity.Product) *Service {
	if len(products) == 0 {
		products = DefaultProducts
	}
	out := make([]entity.Product, len(products))
	copy(out, products)
	return &Service{products: out}
}

func (f Filter) normalized() Filter {
	out := Filter{MaxPrice: f.MaxPrice, MinRating: f.MinRating, SortBy: f.SortBy}
	for _, c := range f.Categories {
		c = strings.ToLower(strings.TrimSpace(c))
		if c == "" {
			continue
		}
		if c == CategoryAll {
			out.Categories = nil
			break
		}
		out.Categories = append(out.Categories, c)
	}
	if out.MaxPrice <= 0 {
		out.MaxPrice = DefaultMaxPrice
	}
	if out.MinRating < 0 {
		out.MinRating = 0
	}
	if out.MinRating > entity.MaxRating {
		out.MinRating = entity.MaxRating
	}
	if out.SortBy == "" {
		out.SortBy = SortDefault
	}
	return out
}

func (f Filter) matches(p entity.Product) bool {
	if len(f.Categories) > 0 {
		found := false
		for _, c := range f.Categories {
			if strings.EqualFold(c, p.Category) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if p.Price.GreaterThan(decimal.NewFromInt(int64(f.MaxPrice))) {
		return false
	}
	return p.Rating >= f.MinRating
}

func sortProducts(products []entity.Product, order SortOrder) {
	var less func(a, b entity.Product) bool
	switch order {
	case SortPriceLow:
		less = func(a, b entity.Product) bool { return a.Price.LessThan(b.Price) }
	case SortPriceHigh:
		less = func(a, b entity.Product) bool { return a.Price.GreaterThan(b.Price) }
	case SortName:
		less = func(a, b entity.Product) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) }
	case SortRating:
		less = func(a, b entity.Product) bool { return a.Rating > b.Rating }
	default:
		return
	}
	sort.SliceStable(products, func(i, j int) bool { return less(products[i], products[j]) })
}

// Browse filters, sorts and paginates the catalog. Pages start at 1; a page
// past the end is empty.
func (s *Service) Browse(state ListingState) ProductPage {
	filter := state.Filter.normalized()

	matched := make([]entity.Product, 0, len(s.products))
	for _, p := range s.products {
		if filter.matches(p) {
			matched = append(matched, p)
		}
	}
	sortProducts(matched, filter.SortBy)

	pageSize := state.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	page := state.Page
	if page < 1 {
		page = 1
	}

	totalPages := (len(matched) + pageSize - 1) / pageSize
	start := len(matched)
	if page <= totalPages {
		start = (page - 1) * pageSize
	}
	end := len(matched)
	if end-start > pageSize {
		end = start + pageSize
	}

	return ProductPage{
		Products:      matched[start:end],
		Total:         len(matched),
		Page:          page,
		PageSize:      pageSize,
		TotalPages:    totalPages,
		ActiveFilters: s.ActiveFilters(filter),
	}
}

func (s *Service) GetProduct(id int) (entity.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return entity.Product{}, fmt.Errorf("%w: id %d", ErrProductNotFound, id)
}

// Related suggests up to limit other products for the detail page: the same
// category first, then the rest of the catalog, both in catalog order.
func (s *Service) Related(id, limit int) ([]entity.Product, error) {
	product, err := s.GetProduct(id)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultRelated
	}
	var same, other []entity.Product
	for _, p := range s.products {
		switch {
		case p.ID == product.ID:
		case strings.EqualFold(p.Category, product.Category):
			same = append(same, p)
		default:
			other = append(other, p)
		}
	}
	related := append(append([]entity.Product{}, same...), other...)
	if len(related) > limit {
		related = related[:limit]
	}
	return related, nil
}

// Search matches the query case-insensitively against product names and
// categories. An empty query matches nothing.
func (s *Service) Search(query string) []entity.Product {
	query = strings.ToLower(strings.TrimSpace(query))
	results := []entity.Product{}
	if query == "" {
		return results
	}
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), query) || strings.Contains(strings.ToLower(p.Category), query) {
			results = append(results, p)
		}
	}
	return results
}

// ActiveFilters lists the chips for every filter that differs from the
// default panel.
func (s *Service) ActiveFilters(f Filter) []FilterChip {
	f = f.normalized()
	chips := []FilterChip{}
	for _, c := range f.Categories {
		chips = append(chips, FilterChip{Kind: chipKindCategory, Value: c, Label: c})
	}
	if f.MaxPrice < DefaultMaxPrice {
		chips = append(chips, FilterChip{
			Kind:  chipKindPrice,
			Value: fmt.Sprint(f.MaxPrice),
			Label: fmt.Sprintf("Under $%d", f.MaxPrice),
		})
	}
	if f.MinRating > 0 {
		chips = append(chips, FilterChip{
			Kind:  chipKindRating,
			Value: fmt.Sprint(f.MinRating),
			Label: fmt.Sprintf("%d★ & above", f.MinRating),
		})
	}
	return chips
}

// Categories returns the distinct product categories in catalog order.
func (s *Service) Categories() []string {
	seen := map[string]bool{}
	var out []string
	for _, p := range s.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}
