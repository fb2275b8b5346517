package entity

import "github.com/shopspring/decimal"

// Product is a catalog entry. OldPrice is the pre-discount price shown on
// the detail page; it is nil when the catalog has none. Images is the detail
// gallery, main image first.
type Product struct {
	ID          int              `json:"id"`
	Name        string           `json:"name"`
	SKU         string           `json:"sku,omitempty"`
	Price       decimal.Decimal  `json:"price"`
	OldPrice    *decimal.Decimal `json:"oldPrice,omitempty"`
	Category    string           `json:"category"`
	Rating      int              `json:"rating"`
	Image       string           `json:"image"`
	HoverImage  string           `json:"hoverImage"`
	Images      []string         `json:"images,omitempty"`
	Discount    int              `json:"discount,omitempty"`
	Description string           `json:"description,omitempty"`
}

func (p Product) CartInput(quantity int, size, color string) CartItemInput {
	return CartItemInput{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Image:    p.Image,
		Quantity: quantity,
		Size:     size,
		Color:    color,
	}
}

func (p Product) WishlistEntry() WishlistEntry {
	return WishlistEntry{
		ID:     p.ID,
		Name:   p.Name,
		Price:  p.Price,
		Image:  p.Image,
		Rating: p.Rating,
	}
}
