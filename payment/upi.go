package payment

import (
	"fmt"
	"math"
	"net/url"
	"regexp"

	"github.com/skip2/go-qrcode"
)

// PayeeName appears in the payer's UPI app.
const PayeeName = "Maya Korean Restaurant"

var nonAlnum = regexp.MustCompile(`[^a-zA-Z0-9]`)

// SanitizeOrderNumber strips characters UPI transaction notes reject.
func SanitizeOrderNumber(orderNumber string) string {
	return nonAlnum.ReplaceAllString(orderNumber, "-")
}

// DeepLink builds the upi://pay URI for the order amount.
func DeepLink(upiID string, amount float64, orderNumber string) string {
	return fmt.Sprintf("upi://pay?pa=%s&pn=%s&am=%d&tn=%s&cu=INR",
		upiID,
		url.PathEscape(PayeeName),
		int(math.Round(amount)),
		url.PathEscape("Order "+SanitizeOrderNumber(orderNumber)),
	)
}

// QRCode renders the UPI URI as a PNG of the given pixel size.
func QRCode(upiURI string, size int) ([]byte, error) {
	return qrcode.Encode(upiURI, qrcode.Medium, size)
}
