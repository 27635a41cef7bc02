// Package upstream talks to the external capacity backend. The backend owns
// capacity tracking, pricing and payment verification; this client only
// reflects its answers.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"slowlove/models"
)

// Client is the capacity backend surface consumed by the booking flow.
type Client interface {
	SlotStatus(ctx context.Context) (*models.SlotStatus, error)
	CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.CreateOrderResponse, error)
	VerifyPayment(ctx context.Context, req models.VerifyRequest) (*models.VerifyResponse, error)
}

// APIError carries the backend-supplied error message for an operation. The
// message is shown to the visitor as-is, so Error returns it unwrapped.
type APIError struct {
	Op      string
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// HTTPClient implements Client against the JSON endpoints.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// SlotStatus fetches the current per-slot capacity view.
func (c *HTTPClient) SlotStatus(ctx context.Context) (*models.SlotStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/slot-status", nil)
	if err != nil {
		return nil, fmt.Errorf("slot-status request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("slot-status fetch: %w", err)
	}
	defer resp.Body.Close()

	var status models.SlotStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, fmt.Errorf("slot-status decode: %w", err)
	}
	if resp.StatusCode != http.StatusOK || !status.OK {
		return nil, &APIError{Op: "slot-status", Message: orFallback(status.Error, "slot status unavailable")}
	}
	return &status, nil
}

// CreateOrder reserves capacity and obtains a payment-gateway order handle.
func (c *HTTPClient) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.CreateOrderResponse, error) {
	var out models.CreateOrderResponse
	status, err := c.post(ctx, "/create-order", req, &out)
	if err != nil {
		return nil, fmt.Errorf("create-order: %w", err)
	}
	if status != http.StatusOK || !out.OK {
		return nil, &APIError{Op: "create-order", Message: orFallback(out.Error, "Failed to create order")}
	}
	return &out, nil
}

// VerifyPayment confirms a completed payment's authenticity and finalizes
// the booking server-side.
func (c *HTTPClient) VerifyPayment(ctx context.Context, req models.VerifyRequest) (*models.VerifyResponse, error) {
	var out models.VerifyResponse
	status, err := c.post(ctx, "/verify-payment", req, &out)
	if err != nil {
		return nil, fmt.Errorf("verify-payment: %w", err)
	}
	if status != http.StatusOK || !out.OK {
		return nil, &APIError{Op: "verify-payment", Message: orFallback(out.Error, "Payment verification failed")}
	}
	return &out, nil
}

func (c *HTTPClient) post(ctx context.Context, path string, body any, out any) (int, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return 0, fmt.Errorf("marshal body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("decode response: %w", err)
	}
	return resp.StatusCode, nil
}

func orFallback(msg, fallback string) string {
	if msg != "" {
		return msg
	}
	return fallback
}
