package coupon

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// Discount kinds.
const (
	TypePercentage = "percentage"
	TypeFixed      = "fixed"
)

var (
	ErrInvalidCode    = errors.New("please enter a valid coupon code")
	ErrNotFound       = errors.New("invalid coupon code")
	ErrBelowMinimum   = errors.New("minimum order not met")
	ErrAlreadyApplied = errors.New("this coupon is already applied")
)

// Coupon is one named discount rule.
type Coupon struct {
	Code          string  `json:"code"`
	Description   string  `json:"description"`
	DiscountType  string  `json:"discountType"` // percentage or fixed
	DiscountValue float64 `json:"discountValue"`
	MinOrder      float64 `json:"minOrder"`
}

// Static rule table, matched case-insensitively by code.
var table = []Coupon{
	{Code: "WELCOME10", Description: "10% off on your first order", DiscountType: TypePercentage, DiscountValue: 10, MinOrder: 0},
	{Code: "FREEDEL", Description: "Free delivery on any order", DiscountType: TypeFixed, DiscountValue: 50, MinOrder: 0},
	{Code: "SAVE20", Description: "₹20 off on orders above ₹500", DiscountType: TypeFixed, DiscountValue: 20, MinOrder: 500},
	{Code: "MAYA25", Description: "25% off on orders above ₹1000", DiscountType: TypePercentage, DiscountValue: 25, MinOrder: 1000},
}

// Available returns the full rule table.
func Available() []Coupon {
	out := make([]Coupon, len(table))
	copy(out, table)
	return out
}

// Lookup matches a code case-insensitively.
func Lookup(code string) (Coupon, bool) {
	code = strings.TrimSpace(code)
	for _, c := range table {
		if strings.EqualFold(c.Code, code) {
			return c, true
		}
	}
	return Coupon{}, false
}

// Evaluator tracks the coupon active on the current checkout.
type Evaluator struct {
	mu     sync.Mutex
	active *Coupon
}

func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Apply validates a code against the table and the cart total, and makes the
// matched coupon the active one.
func (e *Evaluator) Apply(code string, cartTotal float64) (Coupon, error) {
	if len(strings.TrimSpace(code)) < 3 {
		return Coupon{}, ErrInvalidCode
	}

	c, ok := Lookup(code)
	if !ok {
		return Coupon{}, ErrNotFound
	}
	if cartTotal < c.MinOrder {
		return Coupon{}, fmt.Errorf("%w: minimum order of ₹%.0f required for this coupon", ErrBelowMinimum, c.MinOrder)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.active != nil && e.active.Code == c.Code {
		return Coupon{}, ErrAlreadyApplied
	}
	e.active = &c
	return c, nil
}

// Remove clears the active coupon unconditionally and returns the code that
// was active, if any.
func (e *Evaluator) Remove() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.active == nil {
		return ""
	}
	code := e.active.Code
	e.active = nil
	return code
}

// Active returns a copy of the currently applied coupon, or nil.
func (e *Evaluator) Active() *Coupon {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.active == nil {
		return nil
	}
	c := *e.active
	return &c
}
