// Package payment validates payment methods against the billing service.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"promo-auction/internal/core/port"
)

var _ port.PaymentValidator = (*Client)(nil)

type validateRequest struct {
	ProviderID      uuid.UUID       `json:"provider_id"`
	PaymentMethodID string          `json:"payment_method_id"`
	Amount          decimal.Decimal `json:"amount"`
}

type validateResponse struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

// Client calls POST {baseURL}/payment-methods/validate. The caller bounds
// the call through ctx.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

// ValidatePaymentMethod reports whether the method can cover amount. A
// non-2xx response is an error, not a refusal.
func (c *Client) ValidatePaymentMethod(ctx context.Context, providerID uuid.UUID, paymentMethodID string, amount decimal.Decimal) (bool, error) {
	body, err := json.Marshal(validateRequest{
		ProviderID:      providerID,
		PaymentMethodID: paymentMethodID,
		Amount:          amount,
	})
	if err != nil {
		return false, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/payment-methods/validate", bytes.NewReader(body))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return false, fmt.Errorf("call payment service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return false, fmt.Errorf("payment service returned %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	var out validateResponse
	if err = json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return false, fmt.Errorf("decode payment response: %w", err)
	}
	return out.Valid, nil
}
