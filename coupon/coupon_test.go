package coupon

import (
	"errors"
	"testing"
)

func TestLookupCaseInsensitive(t *testing.T) {
	c, ok := Lookup("welcome10")
	if !ok {
		t.Fatal("expected lookup to match lower-case code")
	}
	if c.Code != "WELCOME10" {
		t.Fatalf("code = %q, want WELCOME10", c.Code)
	}
}

func TestApplyUnknownCode(t *testing.T) {
	e := NewEvaluator()
	if _, err := e.Apply("NOPE123", 1000); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestApplyShortCode(t *testing.T) {
	e := NewEvaluator()
	if _, err := e.Apply("  a ", 1000); !errors.Is(err, ErrInvalidCode) {
		t.Fatalf("err = %v, want ErrInvalidCode", err)
	}
}

func TestApplyMinimumBoundary(t *testing.T) {
	e := NewEvaluator()
	if _, err := e.Apply("SAVE20", 499); !errors.Is(err, ErrBelowMinimum) {
		t.Fatalf("499 cart: err = %v, want ErrBelowMinimum", err)
	}

	c, err := e.Apply("SAVE20", 500)
	if err != nil {
		t.Fatalf("500 cart: unexpected error %v", err)
	}
	if c.DiscountValue != 20 || c.DiscountType != TypeFixed {
		t.Fatalf("coupon = %+v, want fixed 20", c)
	}
}

func TestApplyReplacesActive(t *testing.T) {
	e := NewEvaluator()
	if _, err := e.Apply("WELCOME10", 1200); err != nil {
		t.Fatal(err)
	}
	if _, err := e.Apply("MAYA25", 1200); err != nil {
		t.Fatalf("replacing active coupon: %v", err)
	}
	if got := e.Active(); got == nil || got.Code != "MAYA25" {
		t.Fatalf("active = %+v, want MAYA25", got)
	}
}

func TestApplySameCodeTwice(t *testing.T) {
	e := NewEvaluator()
	if _, err := e.Apply("FREEDEL", 100); err != nil {
		t.Fatal(err)
	}
	if _, err := e.Apply("freedel", 100); !errors.Is(err, ErrAlreadyApplied) {
		t.Fatalf("err = %v, want ErrAlreadyApplied", err)
	}
}

func TestRemove(t *testing.T) {
	e := NewEvaluator()
	if code := e.Remove(); code != "" {
		t.Fatalf("remove on empty = %q, want empty", code)
	}

	e.Apply("WELCOME10", 1000)
	if code := e.Remove(); code != "WELCOME10" {
		t.Fatalf("removed = %q, want WELCOME10", code)
	}
	if e.Active() != nil {
		t.Fatal("active should be nil after remove")
	}
}

func TestActiveReturnsCopy(t *testing.T) {
	e := NewEvaluator()
	e.Apply("WELCOME10", 1000)
	got := e.Active()
	got.DiscountValue = 99
	if e.Active().DiscountValue != 10 {
		t.Fatal("mutating the returned coupon changed internal state")
	}
}
