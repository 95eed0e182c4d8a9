package notify

import (
	"strings"
	"testing"
	"time"

	"mayamateul/models"
)

func sampleOrder() models.OrderRecord {
	return models.OrderRecord{
		OrderID: "MAYA-12345678-001",
		Customer: models.CustomerDetails{
			Name:    "Test Kim",
			Phone:   "9000000001",
			Address: "12 Main Road",
		},
		CartItems: []models.CartLine{
			{ID: 23, Name: "Bibimbap Non-Veg", Price: 649, Quantity: 1},
			{ID: 1, Name: "Ramyeon", Price: 199, Quantity: 2},
		},
		Subtotal:  1047,
		GST:       52.35,
		Total:     1099,
		Timestamp: time.Now(),
	}
}

func TestMessageContents(t *testing.T) {
	e := NewEmitter("+919402613361")
	msg := e.Message(sampleOrder(), "TXN123456")

	for _, want := range []string{
		"NEW ORDER",
		"Order #MAYA-12345678-001",
		"TXN ID: TXN123456",
		"Amount: ₹1099",
		"Name: Test Kim",
		"Phone: 9000000001",
		"Address: 12 Main Road",
		"1. Bibimbap Non-Veg x 1 = ₹649",
		"2. Ramyeon x 2 = ₹398",
		"(2 items, 3 qty)",
		"GST: ₹52.35",
		"To Verify Payment",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q", want)
		}
	}
}

func TestMessageMissingCustomerFields(t *testing.T) {
	e := NewEmitter("+919402613361")
	rec := sampleOrder()
	rec.Customer = models.CustomerDetails{}
	msg := e.Message(rec, "TXN123456")

	if !strings.Contains(msg, "Name: Not provided") {
		t.Error("missing name placeholder")
	}
	if strings.Contains(msg, "Address:") {
		t.Error("empty address should be omitted")
	}
}

func TestURLEncodesMessage(t *testing.T) {
	e := NewEmitter("+919402613361")
	link := e.URL(sampleOrder(), "TXN123456")

	if !strings.HasPrefix(link, "https://wa.me/+919402613361?text=") {
		t.Fatalf("link = %q", link)
	}
	if strings.ContainsAny(strings.TrimPrefix(link, "https://wa.me/+919402613361?text="), " \n*") {
		t.Fatal("message body not url-encoded")
	}
}
