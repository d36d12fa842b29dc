package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// RazorpayProvider creates orders via the Razorpay Orders API using basic
// auth with the merchant key id and secret.
type RazorpayProvider struct {
	BaseURL   string
	KeyID     string
	KeySecret string
	client    *http.Client
}

func NewRazorpayProvider(baseURL, keyID, keySecret string, timeout time.Duration) *RazorpayProvider {
	if baseURL == "" {
		baseURL = "https://api.razorpay.com"
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &RazorpayProvider{
		BaseURL:   baseURL,
		KeyID:     keyID,
		KeySecret: keySecret,
		client:    &http.Client{Timeout: timeout},
	}
}

type razorpayOrderReq struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type razorpayOrderResp struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// CreateOrder registers a payment intent with the gateway. Amount is in
// paise. Not idempotent: a retry mints a new order, which is harmless
// because settlement is driven by the signed callback, not by the order.
func (p *RazorpayProvider) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*Order, error) {
	body, _ := json.Marshal(razorpayOrderReq{Amount: amount, Currency: currency, Receipt: receipt})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.BaseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(p.KeyID, p.KeySecret)
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()
	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, fmt.Errorf("%w: status %d", ErrGatewayUnavailable, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("razorpay order: %d %s", resp.StatusCode, string(respBody))
	}
	var out razorpayOrderResp
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("razorpay order: decode: %w", err)
	}
	if out.ID == "" {
		return nil, fmt.Errorf("razorpay order: empty order id")
	}
	return &Order{
		ID:       out.ID,
		Amount:   out.Amount,
		Currency: out.Currency,
		Receipt:  out.Receipt,
	}, nil
}
