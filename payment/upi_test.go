package payment

import (
	"strings"
	"testing"
)

func TestSanitizeOrderNumber(t *testing.T) {
	if got := SanitizeOrderNumber("MAYA-12345678-001"); got != "MAYA-12345678-001" {
		t.Fatalf("got %q", got)
	}
	if got := SanitizeOrderNumber("MAYA #12!"); got != "MAYA--12-" {
		t.Fatalf("got %q", got)
	}
}

func TestDeepLink(t *testing.T) {
	uri := DeepLink("9402613361@ptaxis", 680.5, "MAYA-12345678-001")

	want := "upi://pay?pa=9402613361@ptaxis&pn=Maya%20Korean%20Restaurant&am=681&tn=Order%20MAYA-12345678-001&cu=INR"
	if uri != want {
		t.Fatalf("uri = %q\nwant  %q", uri, want)
	}
}

func TestDeepLinkRoundsAmount(t *testing.T) {
	uri := DeepLink("9402613361@ptaxis", 680.4, "X")
	if !strings.Contains(uri, "&am=680&") {
		t.Fatalf("amount not rounded down: %q", uri)
	}
}

func TestQRCode(t *testing.T) {
	png, err := QRCode(DeepLink("9402613361@ptaxis", 681, "MAYA-1"), 256)
	if err != nil {
		t.Fatal(err)
	}
	if len(png) == 0 {
		t.Fatal("empty png")
	}
	// PNG signature
	if string(png[1:4]) != "PNG" {
		t.Fatal("output is not a png")
	}
}
