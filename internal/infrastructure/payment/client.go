package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client is the payment-gateway stand-in. With no GatewayURL set it
// records a synthetic cash-on-delivery response; there is no real
// charge protocol behind it.
type Client struct {
	GatewayURL string
	HTTP       *http.Client
}

type chargeReq struct {
	CustomerID  string  `json:"customerId"`
	Amount      float64 `json:"amount"`
	PaymentMode string  `json:"paymentMode"`
}

type chargeResp struct {
	Reference string `json:"reference"`
	Message   string `json:"message"`
}

func (c *Client) Charge(ctx context.Context, customerID string, amount float64, mode string) (string, error) {
	if c.GatewayURL == "" {
		return "Payment is cash on Delivery", nil
	}
	hc := c.HTTP
	if hc == nil {
		hc = &http.Client{Timeout: 8 * time.Second}
	}
	body, _ := json.Marshal(chargeReq{CustomerID: customerID, Amount: amount, PaymentMode: mode})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.GatewayURL+"/charge", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := hc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("payment gateway status %d", resp.StatusCode)
	}
	var out chargeResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.Message, nil
}
