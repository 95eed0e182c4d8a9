package receipt

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mayamateul/kv"
	"mayamateul/models"
	"mayamateul/order"
	"mayamateul/payment"

	"github.com/julienschmidt/httprouter"
)

func sampleOrder() models.OrderRecord {
	return models.OrderRecord{
		OrderID: "MAYA-12345678-001",
		Customer: models.CustomerDetails{
			Name:  "Test Kim",
			Phone: "9000000001",
		},
		CartItems: []models.CartLine{
			{ID: 23, Name: "Bibimbap Non-Veg", Price: 649, Quantity: 1},
		},
		Subtotal:      649,
		GST:           32.45,
		Discount:      20,
		Total:         661,
		PaymentMethod: "upi",
		Timestamp:     time.Now(),
		Status:        "confirmed",
	}
}

func serveReceipt(t *testing.T, store kv.Store, orderID string) *httptest.ResponseRecorder {
	t.Helper()
	router := httprouter.New()
	router.GET("/api/orders/:orderid/receipt", NewHandlers(store).Download)

	req := httptest.NewRequest(http.MethodGet, "/api/orders/"+orderID+"/receipt", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRenderProducesPDF(t *testing.T) {
	pdf, err := Render(sampleOrder(), "TXN123456")
	if err != nil {
		t.Fatal(err)
	}
	if len(pdf) == 0 {
		t.Fatal("empty pdf")
	}
	if !strings.HasPrefix(string(pdf[:5]), "%PDF-") {
		t.Fatalf("output does not start with a pdf header: %q", pdf[:5])
	}
}

func TestRenderWithoutTransaction(t *testing.T) {
	rec := sampleOrder()
	rec.PaymentMethod = "cash"
	pdf, err := Render(rec, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(pdf) == 0 {
		t.Fatal("empty pdf")
	}
}

func TestDownloadPrefersPaymentRecord(t *testing.T) {
	mem := kv.NewMemory()
	rec := sampleOrder()
	pay := models.PaymentRecord{
		ID:            "pay-1",
		OrderID:       rec.OrderID,
		TransactionID: "TXN123456",
		Amount:        rec.Total,
		Timestamp:     time.Now(),
		Status:        "confirmed",
		Order:         rec,
	}
	data, _ := json.Marshal(pay)
	mem.Set(context.Background(), payment.PaymentKeyPrefix+rec.OrderID, data)

	w := serveReceipt(t, mem, rec.OrderID)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("content-type = %q", ct)
	}
	if !strings.HasPrefix(w.Body.String(), "%PDF-") {
		t.Fatal("body is not a pdf")
	}
}

func TestDownloadFallsBackToOrderRecord(t *testing.T) {
	mem := kv.NewMemory()
	rec := sampleOrder()
	rec.PaymentMethod = "cash"
	data, _ := json.Marshal(rec)
	mem.Set(context.Background(), order.OrderKey(rec.OrderID), data)

	w := serveReceipt(t, mem, rec.OrderID)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.HasPrefix(w.Body.String(), "%PDF-") {
		t.Fatal("body is not a pdf")
	}
}

func TestDownloadUnknownOrder(t *testing.T) {
	w := serveReceipt(t, kv.NewMemory(), "MAYA-00000000-000")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
