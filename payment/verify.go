package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Verifier talks to the external payment-verification backend.
type Verifier struct {
	BaseURL string
	UPIID   string
	HTTP    *http.Client
}

func NewVerifier(baseURL, upiID string) *Verifier {
	return &Verifier{
		BaseURL: baseURL,
		UPIID:   upiID,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

type AutoVerifyRequest struct {
	OrderNumber   string  `json:"orderNumber"`
	Amount        float64 `json:"amount"`
	UpiID         string  `json:"upiId,omitempty"`
	CustomerPhone string  `json:"customerPhone,omitempty"`
}

type AutoVerifyData struct {
	OrderID       int64  `json:"orderId"`
	OrderNumber   string `json:"orderNumber"`
	TransactionID string `json:"transactionId"`
	Status        string `json:"status"`
	PaymentDate   string `json:"paymentDate"`
}

type AutoVerifyResponse struct {
	Success bool            `json:"success"`
	IsPaid  bool            `json:"isPaid"`
	Message string          `json:"message"`
	Data    *AutoVerifyData `json:"data,omitempty"`
}

type StatusResponse struct {
	Success     bool   `json:"success"`
	IsPaid      bool   `json:"isPaid"`
	OrderStatus string `json:"orderStatus,omitempty"`
	Message     string `json:"message,omitempty"`
}

type UpiPaymentRequest struct {
	OrderNumber   string      `json:"orderNumber"`
	TransactionID string      `json:"transactionId"`
	Amount        float64     `json:"amount"`
	UpiID         string      `json:"upiId,omitempty"`
	CustomerPhone string      `json:"customerPhone,omitempty"`
	OrderDetails  interface{} `json:"orderDetails,omitempty"`
}

type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// AutoVerify asks the backend whether the payment has landed without a
// user-supplied transaction id.
func (v *Verifier) AutoVerify(ctx context.Context, req AutoVerifyRequest) (AutoVerifyResponse, error) {
	if req.UpiID == "" {
		req.UpiID = v.UPIID
	}
	var out AutoVerifyResponse
	err := v.post(ctx, "/payments/auto-verify", req, &out)
	return out, err
}

// CheckPayment fetches the recorded payment status for an order.
func (v *Verifier) CheckPayment(ctx context.Context, orderNumber string) (StatusResponse, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, v.BaseURL+"/payments/check-payment/"+orderNumber, nil)
	if err != nil {
		return StatusResponse{}, err
	}
	resp, err := v.HTTP.Do(httpReq)
	if err != nil {
		return StatusResponse{}, err
	}
	defer resp.Body.Close()

	var out StatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return StatusResponse{}, err
	}
	return out, nil
}

// ProcessUpi submits a manually entered transaction id for verification.
func (v *Verifier) ProcessUpi(ctx context.Context, req UpiPaymentRequest) (APIResponse, error) {
	if req.UpiID == "" {
		req.UpiID = v.UPIID
	}
	var out APIResponse
	err := v.post(ctx, "/payments/upi", req, &out)
	return out, err
}

func (v *Verifier) post(ctx context.Context, path string, in, out interface{}) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, v.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := v.HTTP.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("payment verifier: %s returned %s", path, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
