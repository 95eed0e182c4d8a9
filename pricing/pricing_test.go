package pricing

import (
	"math"
	"testing"

	"mayamateul/coupon"
	"mayamateul/menu"
)

func TestComputeTotalsNoCoupon(t *testing.T) {
	got := ComputeTotals(649, nil)

	if got.Subtotal != 649 {
		t.Fatalf("subtotal = %v, want 649", got.Subtotal)
	}
	if math.Abs(got.Tax-32.45) > 1e-9 {
		t.Fatalf("tax = %v, want 32.45", got.Tax)
	}
	if got.Discount != 0 {
		t.Fatalf("discount = %v, want 0", got.Discount)
	}
	if got.Total != 681 {
		t.Fatalf("total = %v, want 681", got.Total)
	}
}

func TestComputeTotalsIsPure(t *testing.T) {
	c := &coupon.Coupon{Code: "WELCOME10", DiscountType: coupon.TypePercentage, DiscountValue: 10}
	first := ComputeTotals(1000, c)
	second := ComputeTotals(1000, c)
	if first != second {
		t.Fatalf("repeated computation differs: %+v vs %+v", first, second)
	}
}

func TestComputeTotalsPercentageDiscount(t *testing.T) {
	c := &coupon.Coupon{Code: "WELCOME10", DiscountType: coupon.TypePercentage, DiscountValue: 10}
	got := ComputeTotals(1000, c)

	// 10% of the taxed amount 1050
	if math.Abs(got.Discount-105) > 1e-9 {
		t.Fatalf("discount = %v, want 105", got.Discount)
	}
	if got.Total != 945 {
		t.Fatalf("total = %v, want 945", got.Total)
	}
}

func TestComputeTotalsFixedDiscount(t *testing.T) {
	c := &coupon.Coupon{Code: "SAVE20", DiscountType: coupon.TypeFixed, DiscountValue: 20}
	got := ComputeTotals(600, c)

	if got.Discount != 20 {
		t.Fatalf("discount = %v, want 20", got.Discount)
	}
	if got.Total != 610 {
		t.Fatalf("total = %v, want 610", got.Total)
	}
}

func TestComputeTotalsDiscountClamped(t *testing.T) {
	c := &coupon.Coupon{Code: "BIG", DiscountType: coupon.TypeFixed, DiscountValue: 5000}
	got := ComputeTotals(100, c)

	if got.Discount != got.PreDiscount {
		t.Fatalf("discount = %v, want clamped to %v", got.Discount, got.PreDiscount)
	}
	if got.Total != 0 {
		t.Fatalf("total = %v, want 0", got.Total)
	}
}

func TestComputeTotalsEmptyCart(t *testing.T) {
	got := ComputeTotals(0, nil)
	if got.Total != 0 || got.Tax != 0 {
		t.Fatalf("empty cart totals = %+v, want all zero", got)
	}
}

func TestResolveBasePriceFallbacks(t *testing.T) {
	dual := menu.Item{HalfPrice: 100, FullPrice: 180}
	if got := ResolveBasePrice(dual, SizeHalf); got != 100 {
		t.Fatalf("half price = %v, want 100", got)
	}
	if got := ResolveBasePrice(dual, SizeFull); got != 180 {
		t.Fatalf("full price = %v, want 180", got)
	}

	single := menu.Item{Price: 250}
	if got := ResolveBasePrice(single, SizeFull); got != 250 {
		t.Fatalf("single-price full = %v, want 250", got)
	}

	halfOnly := menu.Item{HalfPrice: 120}
	if got := ResolveBasePrice(halfOnly, SizeFull); got != 120 {
		t.Fatalf("full falls back to half = %v, want 120", got)
	}
}

func TestFinalLinePriceWithAddon(t *testing.T) {
	item := menu.Item{HalfPrice: 100, FullPrice: 180}
	addon := menu.Addon{Name: "Extra Cheese", HalfPrice: 30, FullPrice: 50}

	if got := FinalLinePrice(item, SizeHalf, &addon); got != 130 {
		t.Fatalf("half with addon = %v, want 130", got)
	}
	if got := FinalLinePrice(item, SizeFull, &addon); got != 230 {
		t.Fatalf("full with addon = %v, want 230", got)
	}
	if got := FinalLinePrice(item, SizeHalf, nil); got != 100 {
		t.Fatalf("no addon = %v, want 100", got)
	}

	flat := menu.Addon{Name: "Egg", Price: 20}
	if got := FinalLinePrice(item, SizeFull, &flat); got != 200 {
		t.Fatalf("flat addon = %v, want 200", got)
	}
}
