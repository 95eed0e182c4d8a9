package menu

// Addon is an optional extra with its own price fallback chain.
type Addon struct {
	Name      string  `json:"name"`
	Price     float64 `json:"price,omitempty"`
	HalfPrice float64 `json:"halfPrice,omitempty"`
	FullPrice float64 `json:"fullPrice,omitempty"`
}

// Item is one entry of the restaurant menu. Pricing is either Price alone or
// a HalfPrice/FullPrice pair; zero means the field is unset.
type Item struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Price       float64  `json:"price,omitempty"`
	HalfPrice   float64  `json:"halfPrice,omitempty"`
	FullPrice   float64  `json:"fullPrice,omitempty"`
	Description string   `json:"description,omitempty"`
	Image       string   `json:"image,omitempty"`
	KoreanName  string   `json:"koreanName,omitempty"`
	Ingredients []string `json:"ingredients,omitempty"`
	Addons      []Addon  `json:"addons,omitempty"`
}

// HasDualPricing reports whether the item is priced per half/full plate.
func (i Item) HasDualPricing() bool {
	return i.HalfPrice > 0 && i.FullPrice > 0
}

// Priced reports whether at least one pricing field is populated.
func (i Item) Priced() bool {
	return i.Price > 0 || i.HalfPrice > 0 || i.FullPrice > 0
}

// Items returns a copy of the full menu table.
func Items() []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

// ByID looks an item up by its identifier.
func ByID(id int) (Item, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// ByCategory returns all items in a category, preserving menu order.
func ByCategory(category string) []Item {
	var out []Item
	for _, it := range items {
		if it.Category == category {
			out = append(out, it)
		}
	}
	return out
}

// Categories returns the distinct category labels in menu order.
func Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, it := range items {
		if !seen[it.Category] {
			seen[it.Category] = true
			out = append(out, it.Category)
		}
	}
	return out
}
