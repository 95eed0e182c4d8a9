// Package notify formats confirmed orders into the restaurant's WhatsApp
// message and builds the wa.me deep link that delivers it.
package notify

import (
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"mayamateul/models"
)

// Emitter hands order details to the restaurant over a messaging deep link.
type Emitter struct {
	SupportPhone string
}

func NewEmitter(supportPhone string) *Emitter {
	return &Emitter{SupportPhone: supportPhone}
}

// Message renders the order into the notification template.
func (e *Emitter) Message(rec models.OrderRecord, transactionID string) string {
	var items strings.Builder
	totalQty := 0
	for i, l := range rec.CartItems {
		fmt.Fprintf(&items, "%d. %s x %d = ₹%.0f\n", i+1, l.Name, l.Quantity, l.LineTotal())
		totalQty += l.Quantity
	}

	var b strings.Builder
	b.WriteString("🆕 *NEW ORDER* 🆕\n\n")
	fmt.Fprintf(&b, "📋 *Order #%s*\n", rec.OrderID)
	fmt.Fprintf(&b, "🔢 *TXN ID: %s*\n", transactionID)
	fmt.Fprintf(&b, "💰 *Amount: ₹%.0f*\n\n", rec.Total)

	b.WriteString("👤 *Customer:*\n")
	fmt.Fprintf(&b, "• Name: %s\n", orDefault(rec.Customer.Name, "Not provided"))
	fmt.Fprintf(&b, "• Phone: %s\n", orDefault(rec.Customer.Phone, "Not provided"))
	if rec.Customer.Address != "" {
		fmt.Fprintf(&b, "• Address: %s\n", rec.Customer.Address)
	}

	fmt.Fprintf(&b, "\n📦 *Order Items (%d items, %d qty):*\n%s", len(rec.CartItems), totalQty, items.String())

	b.WriteString("\n🧾 *Bill Summary:*\n")
	fmt.Fprintf(&b, "• Subtotal: ₹%.0f\n", rec.Subtotal)
	fmt.Fprintf(&b, "• GST: ₹%.2f\n", rec.GST)
	fmt.Fprintf(&b, "• Discount: ₹%.0f\n", rec.Discount)
	fmt.Fprintf(&b, "• *Total: ₹%.0f*\n\n", rec.Total)

	fmt.Fprintf(&b, "⏰ *Order Time:* %s\n", time.Now().Format("3:04:05 PM"))
	b.WriteString("📱 *Via:* Website\n\n")

	b.WriteString("✅ *To Verify Payment:*\n")
	b.WriteString("1. Check your UPI app for transaction\n")
	fmt.Fprintf(&b, "2. Transaction ID: %s\n", transactionID)
	fmt.Fprintf(&b, "3. Amount: ₹%.0f\n", rec.Total)
	b.WriteString("4. If confirmed → Prepare order")

	return b.String()
}

// URL builds the wa.me deep link carrying the message.
func (e *Emitter) URL(rec models.OrderRecord, transactionID string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s",
		e.SupportPhone, url.QueryEscape(e.Message(rec, transactionID)))
}

// Emit logs the hand-off and returns the deep link for the client to open.
func (e *Emitter) Emit(rec models.OrderRecord, transactionID string) string {
	link := e.URL(rec, transactionID)
	log.Printf("notify: order %s sent to restaurant via WhatsApp", rec.OrderID)
	return link
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
