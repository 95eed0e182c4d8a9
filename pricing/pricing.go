// Package pricing holds the pure price arithmetic: per-line price resolution
// for size/add-on selections and checkout totals.
package pricing

import (
	"math"

	"mayamateul/coupon"
	"mayamateul/menu"
)

// TaxRate is the GST applied to every order subtotal.
const TaxRate = 0.05

// Sizes for dual-priced dishes.
const (
	SizeHalf = "half"
	SizeFull = "full"
)

// Totals is the checkout bill breakdown. Total is rounded exactly once, at
// the end; Tax and Discount stay unrounded.
type Totals struct {
	Subtotal    float64 `json:"subtotal"`
	Tax         float64 `json:"tax"`
	PreDiscount float64 `json:"preDiscount"`
	Discount    float64 `json:"discount"`
	Total       float64 `json:"total"`
}

// ResolveBasePrice returns the item price for the chosen size, falling back
// across half/full/single pricing fields.
func ResolveBasePrice(item menu.Item, size string) float64 {
	if size == SizeFull {
		return firstNonZero(item.FullPrice, item.HalfPrice, item.Price)
	}
	return firstNonZero(item.HalfPrice, item.FullPrice, item.Price)
}

// ResolveAddonPrice applies the same fallback chain to an add-on's own
// price fields.
func ResolveAddonPrice(a menu.Addon, size string) float64 {
	if size == SizeFull {
		return firstNonZero(a.FullPrice, a.HalfPrice, a.Price)
	}
	return firstNonZero(a.HalfPrice, a.FullPrice, a.Price)
}

// FinalLinePrice is base plus add-on; addon may be nil.
func FinalLinePrice(item menu.Item, size string, addon *menu.Addon) float64 {
	price := ResolveBasePrice(item, size)
	if addon != nil {
		price += ResolveAddonPrice(*addon, size)
	}
	return price
}

// ComputeTotals derives tax, discount and the final total from a cart
// subtotal and an optionally applied coupon. The discount never exceeds the
// pre-discount total.
func ComputeTotals(subtotal float64, c *coupon.Coupon) Totals {
	tax := subtotal * TaxRate
	preDiscount := subtotal + tax

	var discount float64
	if c != nil {
		switch c.DiscountType {
		case coupon.TypePercentage:
			discount = preDiscount * c.DiscountValue / 100
		case coupon.TypeFixed:
			discount = c.DiscountValue
		}
		discount = math.Min(discount, preDiscount)
	}

	return Totals{
		Subtotal:    subtotal,
		Tax:         tax,
		PreDiscount: preDiscount,
		Discount:    discount,
		Total:       math.Round(preDiscount - discount),
	}
}

func firstNonZero(vals ...float64) float64 {
	for _, v := range vals {
		if v > 0 {
			return v
		}
	}
	return 0
}
