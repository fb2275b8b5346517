package entity

import "github.com/shopspring/decimal"

const MaxRating = 5

type WishlistEntry struct {
	ID     int             `json:"id" validate:"required,gt=0"`
	Name   string          `json:"name" validate:"required"`
	Price  decimal.Decimal `json:"price"`
	Image  string          `json:"image"`
	Rating int             `json:"rating"`
}

type Wishlist struct {
	Entries []WishlistEntry
}

func NewWishlist(entries ...WishlistEntry) *Wishlist {
	w := &Wishlist{Entries: make([]WishlistEntry, 0, len(entries))}
	w.Entries = append(w.Entries, entries...)
	return w
}

func (w *Wishlist) indexOf(id int) int {
	for i, e := range w.Entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func (w *Wishlist) Find(id int) (WishlistEntry, bool) {
	if i := w.indexOf(id); i != -1 {
		return w.Entries[i], true
	}
	return WishlistEntry{}, false
}

func (w *Wishlist) Contains(id int) bool {
	return w.indexOf(id) != -1
}

// Add appends the entry unless its id is already present. The rating is
// clamped to 0..MaxRating.
func (w *Wishlist) Add(entry WishlistEntry) bool {
	if w.Contains(entry.ID) {
		return false
	}
	entry.Rating = clampRating(entry.Rating)
	w.Entries = append(w.Entries, entry)
	return true
}

func (w *Wishlist) Remove(id int) bool {
	i := w.indexOf(id)
	if i == -1 {
		return false
	}
	w.Entries = append(w.Entries[:i], w.Entries[i+1:]...)
	return true
}

func (w *Wishlist) Len() int {
	return len(w.Entries)
}

// Normalize drops duplicate ids, keeping the first occurrence, and clamps
// ratings to 0..MaxRating.
func (w *Wishlist) Normalize() {
	seen := make(map[int]struct{}, len(w.Entries))
	kept := make([]WishlistEntry, 0, len(w.Entries))
	for _, e := range w.Entries {
		if _, dup := seen[e.ID]; dup {
			continue
		}
		seen[e.ID] = struct{}{}
		e.Rating = clampRating(e.Rating)
		kept = append(kept, e)
	}
	w.Entries = kept
}

func clampRating(r int) int {
	if r < 0 {
		return 0
	}
	if r > MaxRating {
		return MaxRating
	}
	return r
}

func (w *Wishlist) Snapshot() []WishlistEntry {
	out := make([]WishlistEntry, len(w.Entries))
	copy(out, w.Entries)
	return out
}
