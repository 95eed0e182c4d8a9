package order

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"mayamateul/models"
)

// Client is a thin HTTP client for the external order backend:
// POST /orders and GET /orders/{id}.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

// CreateOrder posts the record to the backend and returns its echo.
func (c *Client) CreateOrder(ctx context.Context, rec models.OrderRecord) (models.OrderRecord, error) {
	body, err := json.Marshal(rec)
	if err != nil {
		return models.OrderRecord{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return models.OrderRecord{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return models.OrderRecord{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return models.OrderRecord{}, fmt.Errorf("order service: create returned %s", resp.Status)
	}

	var out models.OrderRecord
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return models.OrderRecord{}, err
	}
	return out, nil
}

// GetOrder fetches one order by id.
func (c *Client) GetOrder(ctx context.Context, id string) (models.OrderRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/orders/"+id, nil)
	if err != nil {
		return models.OrderRecord{}, err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return models.OrderRecord{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return models.OrderRecord{}, fmt.Errorf("order service: fetch returned %s", resp.Status)
	}

	var out models.OrderRecord
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return models.OrderRecord{}, err
	}
	return out, nil
}
