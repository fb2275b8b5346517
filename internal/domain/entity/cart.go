package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	DefaultSize  = "Standard"
	DefaultColor = "Default"

	// MaxQuantity caps a single line item. Merges saturate at the cap.
	MaxQuantity = 9999
)

// CartLineItem is one cart entry. Name, price and image are snapshots taken
// when the product was added; they are never repriced.
type CartLineItem struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image"`
	Quantity int             `json:"quantity"`
	Size     string          `json:"size"`
	Color    string          `json:"color"`
}

// LineItemKey identifies a line item. Size and color are stored trimmed.
type LineItemKey struct {
	ID    int
	Size  string
	Color string
}

func NewLineItemKey(id int, size, color string) LineItemKey {
	return LineItemKey{ID: id, Size: strings.TrimSpace(size), Color: strings.TrimSpace(color)}
}

func (i CartLineItem) Key() LineItemKey {
	return NewLineItemKey(i.ID, i.Size, i.Color)
}

func (i CartLineItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CartItemInput is what callers hand to AddToCart. Zero or negative quantity
// means one; empty size and color take the defaults.
type CartItemInput struct {
	ID       int             `json:"id" validate:"required,gt=0"`
	Name     string          `json:"name" validate:"required"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image"`
	Quantity int             `json:"quantity,omitempty" validate:"lte=9999"`
	Size     string          `json:"size,omitempty"`
	Color    string          `json:"color,omitempty"`
}

func (in CartItemInput) normalized() CartLineItem {
	item := CartLineItem{
		ID:       in.ID,
		Name:     in.Name,
		Price:    in.Price,
		Image:    in.Image,
		Quantity: in.Quantity,
		Size:     strings.TrimSpace(in.Size),
		Color:    strings.TrimSpace(in.Color),
	}
	if item.Quantity <= 0 {
		item.Quantity = 1
	}
	item.Quantity = clampQuantity(item.Quantity)
	if item.Size == "" {
		item.Size = DefaultSize
	}
	if item.Color == "" {
		item.Color = DefaultColor
	}
	return item
}

type Cart struct {
	Items []CartLineItem
}

func NewCart(items ...CartLineItem) *Cart {
	c := &Cart{Items: make([]CartLineItem, 0, len(items))}
	c.Items = append(c.Items, items...)
	return c
}

func (c *Cart) Find(key LineItemKey) (*CartLineItem, int) {
	for i := range c.Items {
		if c.Items[i].Key() == key {
			return &c.Items[i], i
		}
	}
	return nil, -1
}

// Add merges the input into an existing line item with the same key or
// appends a new one. It returns the resulting line item.
func (c *Cart) Add(in CartItemInput) CartLineItem {
	item := in.normalized()
	if existing, _ := c.Find(item.Key()); existing != nil {
		existing.Quantity = addQuantity(existing.Quantity, item.Quantity)
		return *existing
	}
	c.Items = append(c.Items, item)
	return item
}

// SetQuantity reports whether the key was present. A quantity of zero or
// less removes the line item; anything above MaxQuantity is stored as the cap.
func (c *Cart) SetQuantity(key LineItemKey, quantity int) bool {
	item, _ := c.Find(key)
	if item == nil {
		return false
	}
	if quantity <= 0 {
		return c.Remove(key)
	}
	item.Quantity = clampQuantity(quantity)
	return true
}

func (c *Cart) Remove(key LineItemKey) bool {
	_, index := c.Find(key)
	if index == -1 {
		return false
	}
	c.Items = append(c.Items[:index], c.Items[index+1:]...)
	return true
}

func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

func (c *Cart) Count() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Normalize restores the cart invariants on data read back from storage:
// line items with the same key are merged in first-seen order, items
// without a positive quantity are dropped and quantities are capped.
func (c *Cart) Normalize() {
	merged := make([]CartLineItem, 0, len(c.Items))
	index := make(map[LineItemKey]int, len(c.Items))
	for _, item := range c.Items {
		if item.Quantity <= 0 {
			continue
		}
		item.Size = strings.TrimSpace(item.Size)
		item.Color = strings.TrimSpace(item.Color)
		if item.Size == "" {
			item.Size = DefaultSize
		}
		if item.Color == "" {
			item.Color = DefaultColor
		}
		if i, ok := index[item.Key()]; ok {
			merged[i].Quantity = addQuantity(merged[i].Quantity, item.Quantity)
			continue
		}
		item.Quantity = clampQuantity(item.Quantity)
		index[item.Key()] = len(merged)
		merged = append(merged, item)
	}
	c.Items = merged
}

// Snapshot returns a copy of the line items that callers may keep.
func (c *Cart) Snapshot() []CartLineItem {
	out := make([]CartLineItem, len(c.Items))
	copy(out, c.Items)
	return out
}

func clampQuantity(q int) int {
	if q > MaxQuantity {
		return MaxQuantity
	}
	return q
}

// addQuantity adds two positive quantities without passing MaxQuantity.
func addQuantity(a, b int) int {
	if a >= MaxQuantity || b >= MaxQuantity-a {
		return MaxQuantity
	}
	return a + b
}
