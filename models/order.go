package models

import "time"

// CartLine is one catalog entry plus the size/add-on chosen at add time.
// Identity is (ID, Size, Addon): the same dish with a different selection
// occupies its own line instead of silently merging quantities.
type CartLine struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"` // unit price, resolved when the line was added
	Quantity int     `json:"quantity"`
	Image    string  `json:"image,omitempty"`
	Size     string  `json:"size,omitempty"`  // "half" or "full" for dual-priced dishes
	Addon    string  `json:"addon,omitempty"` // add-on name, empty when none chosen
}

// SameSelection reports whether two lines refer to the same dish with the
// same size and add-on choice.
func (l CartLine) SameSelection(o CartLine) bool {
	return l.ID == o.ID && l.Size == o.Size && l.Addon == o.Addon
}

// LineTotal is unit price times quantity.
func (l CartLine) LineTotal() float64 {
	return l.Price * float64(l.Quantity)
}

// CustomerDetails holds the validated checkout form fields.
type CustomerDetails struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// OrderRecord is the immutable snapshot taken at checkout submission.
type OrderRecord struct {
	OrderID       string          `json:"orderId"`
	Option        string          `json:"option"` // fulfillment choice: delivery, pickup or dine-in
	Customer      CustomerDetails `json:"customer"`
	CartItems     []CartLine      `json:"cartItems"`
	Subtotal      float64         `json:"subtotal"`
	GST           float64         `json:"gst"`
	Discount      float64         `json:"discount"`
	Total         float64         `json:"total"`
	CouponCode    string          `json:"couponCode,omitempty"`
	PaymentMethod string          `json:"paymentMethod"` // "cash" or "upi"
	Timestamp     time.Time       `json:"timestamp"`
	Status        string          `json:"status"` // pending, confirmed
}

// PaymentRecord is written once a payment session reaches confirmed.
type PaymentRecord struct {
	ID            string      `json:"id"`
	OrderID       string      `json:"orderId"`
	TransactionID string      `json:"transactionId"`
	Amount        float64     `json:"amount"`
	Timestamp     time.Time   `json:"timestamp"`
	Status        string      `json:"status"`
	Order         OrderRecord `json:"orderData"`
}

// OrderSummary is what the order-summary view reads back after payment.
type OrderSummary struct {
	OrderID       string      `json:"orderId"`
	TransactionID string      `json:"transactionId"`
	Amount        float64     `json:"amount"`
	Timestamp     time.Time   `json:"timestamp"`
	Status        string      `json:"status"`
	Order         OrderRecord `json:"orderData"`
}
