// Package receipt renders a confirmed order as a downloadable PDF.
package receipt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"mayamateul/kv"
	"mayamateul/models"
	"mayamateul/order"
	"mayamateul/payment"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

// Handlers serves receipt downloads for paid and cash orders.
type Handlers struct {
	Store kv.Store
}

func NewHandlers(store kv.Store) *Handlers {
	return &Handlers{Store: store}
}

// Download looks up the payment record for the order, falling back to the
// order record for cash orders, and streams the PDF.
func (h *Handlers) Download(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	orderID := ps.ByName("orderid")

	rec, txnID, err := h.lookup(r, orderID)
	if err != nil {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}

	pdfBytes, err := Render(rec, txnID)
	if err != nil {
		log.Println("receipt: render error:", err)
		http.Error(w, "Failed to generate receipt", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=receipt-"+orderID+".pdf")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdfBytes); err != nil {
		log.Println("receipt: write error:", err)
	}
}

func (h *Handlers) lookup(r *http.Request, orderID string) (models.OrderRecord, string, error) {
	if data, err := h.Store.Get(r.Context(), payment.PaymentKeyPrefix+orderID); err == nil {
		var pay models.PaymentRecord
		if err := json.Unmarshal(data, &pay); err == nil {
			return pay.Order, pay.TransactionID, nil
		}
	}
	data, err := h.Store.Get(r.Context(), order.OrderKey(orderID))
	if err != nil {
		return models.OrderRecord{}, "", err
	}
	var rec models.OrderRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return models.OrderRecord{}, "", err
	}
	return rec, "", nil
}

// Render builds the receipt PDF with an order QR in the corner.
func Render(rec models.OrderRecord, transactionID string) ([]byte, error) {
	qrPNG, err := qrcode.Encode(rec.OrderID, qrcode.Medium, 256)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, payment.PayeeName)
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Order: %s", rec.OrderID))
	pdf.Ln(8)
	if transactionID != "" {
		pdf.Cell(0, 10, fmt.Sprintf("Transaction: %s", transactionID))
		pdf.Ln(8)
	}
	pdf.Cell(0, 10, fmt.Sprintf("Date: %s", rec.Timestamp.Format("02 Jan 2006 3:04 PM")))
	pdf.Ln(8)
	if rec.Customer.Name != "" {
		pdf.Cell(0, 10, fmt.Sprintf("Customer: %s", rec.Customer.Name))
		pdf.Ln(8)
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, "Items")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	for _, l := range rec.CartItems {
		pdf.Cell(0, 8, fmt.Sprintf("%s x %d  -  Rs. %.0f", l.Name, l.Quantity, l.LineTotal()))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 8, fmt.Sprintf("Subtotal: Rs. %.0f", rec.Subtotal))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("GST (5%%): Rs. %.2f", rec.GST))
	pdf.Ln(6)
	if rec.Discount > 0 {
		pdf.Cell(0, 8, fmt.Sprintf("Discount: Rs. %.0f", rec.Discount))
		pdf.Ln(6)
	}
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total: Rs. %.0f", rec.Total))

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 20, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
