package sms

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client delivers one-time passcodes through a Twilio-style messaging
// gateway. An account SID starting with "mock_" short-circuits the
// network call, which is how dev and tests run.
type Client struct {
	AccountSID string
	AuthToken  string
	From       string
	BaseURL    string
	HTTP       *http.Client
}

// SendOTP reports delivery as a boolean. A failed or misconfigured
// gateway never aborts the caller's request.
func (c *Client) SendOTP(ctx context.Context, otp int, toPhone string) bool {
	if strings.HasPrefix(strings.ToLower(c.AccountSID), "mock_") {
		return true
	}
	hc := c.HTTP
	if hc == nil {
		hc = &http.Client{Timeout: 8 * time.Second}
	}
	form := url.Values{}
	form.Set("Body", fmt.Sprintf("Your OTP is %d", otp))
	form.Set("From", c.From)
	form.Set("To", toPhone)
	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", strings.TrimRight(c.BaseURL, "/"), c.AccountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return false
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.AccountSID, c.AuthToken)
	resp, err := hc.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode < 300
}
