package catalog

import (
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// DefaultProducts is the storefront's built-in furniture catalog.
var DefaultProducts = []entity.Product{
	{
		ID:         1,
		Name:       "Modern Chair Collection",
		SKU:        "CHR-001",
		Price:      decimal.RequireFromString("108.8"),
		OldPrice:   price("122.0"),
		Category:   "wooden",
		Rating:     5,
		Image:      "images/chair1.jpg",
		HoverImage: "images/category-banner1.jpg",
		Images: []string{
			"images/chair1.jpg",
			"images/category-banner1.jpg",
			"images/chair2.jpg",
			"images/chair3.jpg",
		},
		Discount:    11,
		Description: "Experience ultimate comfort with our modern chair collection. Crafted with premium materials and designed for both style and functionality.",
	},
	{
		ID:         2,
		Name:       "Ergonomic Office Chair",
		SKU:        "CHR-002",
		Price:      decimal.RequireFromString("208.8"),
		OldPrice:   price("245.0"),
		Category:   "office",
		Rating:     4,
		Image:      "images/chair2.jpg",
		HoverImage: "images/category-banner2.jpg",
		Images: []string{
			"images/chair2.jpg",
			"images/category-banner2.jpg",
			"images/chair3.jpg",
			"images/chair4.jpg",
		},
		Discount:    15,
		Description: "Designed for long hours of work, this ergonomic office chair provides exceptional lumbar support and comfort.",
	},
	{
		ID:         3,
		Name:       "Classic Wooden Chair",
		SKU:        "CHR-003",
		Price:      decimal.RequireFromString("158.8"),
		Category:   "wooden",
		Rating:     5,
		Image:      "images/chair3.jpg",
		HoverImage: "images/category-banner3.jpg",
		Images:     []string{"images/chair3.jpg", "images/category-banner3.jpg"},
	},
	{
		ID:         4,
		Name:       "Designer Armoire",
		SKU:        "CHR-004",
		Price:      decimal.RequireFromString("308.8"),
		Category:   "armoires",
		Rating:     4,
		Image:      "images/chair4.jpg",
		HoverImage: "images/category-banner4.jpg",
		Images:     []string{"images/chair4.jpg", "images/category-banner4.jpg"},
		Discount:   20,
	},
	{
		ID:         5,
		Name:       "Comfort Plastic Chair",
		SKU:        "CHR-005",
		Price:      decimal.RequireFromString("78.8"),
		Category:   "plastic",
		Rating:     3,
		Image:      "images/chair5.jpg",
		HoverImage: "images/chair6.jpg",
		Images:     []string{"images/chair5.jpg", "images/chair6.jpg"},
		Discount:   50,
	},
	{
		ID:         6,
		Name:       "Premium Office Chair",
		SKU:        "CHR-006",
		Price:      decimal.RequireFromString("258.8"),
		Category:   "office",
		Rating:     5,
		Image:      "images/chair6.jpg",
		HoverImage: "images/chair1.jpg",
		Images:     []string{"images/chair6.jpg", "images/chair1.jpg"},
		Discount:   15,
	},
	{
		ID:         7,
		Name:       "Minimalist Wooden Chair",
		SKU:        "CHR-007",
		Price:      decimal.RequireFromString("128.8"),
		Category:   "wooden",
		Rating:     4,
		Image:      "images/chair1.jpg",
		HoverImage: "images/chair2.jpg",
		Images:     []string{"images/chair1.jpg", "images/chair2.jpg"},
	},
	{
		ID:         8,
		Name:       "Stackable Plastic Chair",
		SKU:        "CHR-008",
		Price:      decimal.RequireFromString("58.8"),
		Category:   "plastic",
		Rating:     3,
		Image:      "images/chair2.jpg",
		HoverImage: "images/chair3.jpg",
		Images:     []string{"images/chair2.jpg", "images/chair3.jpg"},
		Discount:   10,
	},
	{
		ID:         9,
		Name:       "Executive Office Chair",
		SKU:        "CHR-009",
		Price:      decimal.RequireFromString("358.8"),
		Category:   "office",
		Rating:     5,
		Image:      "images/chair3.jpg",
		HoverImage: "images/chair4.jpg",
		Images:     []string{"images/chair3.jpg", "images/chair4.jpg"},
		Discount:   25,
	},
	{
		ID:         10,
		Name:       "Vintage Armoire Set",
		SKU:        "CHR-010",
		Price:      decimal.RequireFromString("458.8"),
		Category:   "armoires",
		Rating:     5,
		Image:      "images/chair4.jpg",
		HoverImage: "images/chair5.jpg",
		Images:     []string{"images/chair4.jpg", "images/chair5.jpg"},
	},
	{
		ID:         11,
		Name:       "Modern Plastic Chair",
		SKU:        "CHR-011",
		Price:      decimal.RequireFromString("68.8"),
		Category:   "plastic",
		Rating:     4,
		Image:      "images/chair5.jpg",
		HoverImage: "images/chair6.jpg",
		Images:     []string{"images/chair5.jpg", "images/chair6.jpg"},
		Discount:   5,
	},
	{
		ID:         12,
		Name:       "Handcrafted Wooden Chair",
		SKU:        "CHR-012",
		Price:      decimal.RequireFromString("188.8"),
		Category:   "wooden",
		Rating:     5,
		Image:      "images/chair6.jpg",
		HoverImage: "images/chair1.jpg",
		Images:     []string{"images/chair6.jpg", "images/chair1.jpg"},
		Discount:   12,
	},
}

func price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
