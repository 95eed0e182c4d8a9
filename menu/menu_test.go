package menu

import "testing"

func TestByID(t *testing.T) {
	it, ok := ByID(23)
	if !ok {
		t.Fatal("item 23 missing")
	}
	if it.Name != "Bibimbap Non-Veg" || it.Price != 649 {
		t.Fatalf("item 23 = %+v", it)
	}
	if _, ok := ByID(9999); ok {
		t.Fatal("unknown id should not resolve")
	}
}

func TestEveryItemIsPriced(t *testing.T) {
	for _, it := range Items() {
		if !it.Priced() {
			t.Errorf("item %d %q has no price", it.ID, it.Name)
		}
	}
}

func TestDualPricedItemsHaveBothFields(t *testing.T) {
	for _, it := range Items() {
		if it.HasDualPricing() && it.Price > 0 {
			t.Errorf("item %d mixes single and dual pricing", it.ID)
		}
	}
}

func TestByCategoryAndCategories(t *testing.T) {
	cats := Categories()
	if len(cats) == 0 {
		t.Fatal("no categories")
	}
	total := 0
	for _, c := range cats {
		items := ByCategory(c)
		if len(items) == 0 {
			t.Errorf("category %q empty", c)
		}
		total += len(items)
	}
	if total != len(Items()) {
		t.Fatalf("category partition covers %d of %d items", total, len(Items()))
	}
}
