package payout

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"wheel_backend/internal/config"
	"wheel_backend/internal/lib/logger/sl"
)

const disbursePath = "/v1/disbursements"

type Client struct {
	httpClient *http.Client
	baseURL    string
	authHeader string
	log        *slog.Logger
}

// NewClient builds the HTTP gateway client. Every call is bounded by the
// configured timeout; an expired deadline is reported as ErrOutcomeUnknown,
// never as a decline.
func NewClient(cfg config.PayoutConfig, log *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout()},
		baseURL:    cfg.BaseURL(),
		authHeader: "Basic " + base64.StdEncoding.EncodeToString([]byte(cfg.SecretKey()+":")),
		log:        log,
	}
}

type disburseBody struct {
	Type      string `json:"type"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Channel   string `json:"channel"`
	Reference string `json:"reference"`
	Recipient struct {
		Name        string `json:"name"`
		PhoneNumber string `json:"phone_number"`
	} `json:"recipient"`
}

type disburseResponse struct {
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

func (c *Client) Disburse(ctx context.Context, req DisburseRequest) (*DisburseResult, error) {
	body := disburseBody{
		Type:      "disbursement",
		Amount:    req.Amount,
		Currency:  "PHP",
		Channel:   req.Provider,
		Reference: req.IdempotencyKey,
	}
	body.Recipient.Name = req.PayeeName
	body.Recipient.PhoneNumber = req.PayeePhone

	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode disburse request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+disbursePath, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("build disburse request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", c.authHeader)
	httpReq.Header.Set("Idempotency-Key", req.IdempotencyKey)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		// The request may or may not have reached the provider; only a
		// definitive response settles the outcome.
		c.log.Error("payout call did not complete", sl.Err(err))
		return nil, fmt.Errorf("%w: %v", ErrOutcomeUnknown, err)
	}
	defer httpResp.Body.Close()

	respRaw, err := io.ReadAll(io.LimitReader(httpResp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrOutcomeUnknown, err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		c.log.Warn("payout declined",
			"status", httpResp.StatusCode,
			"provider", req.Provider,
		)
		return nil, fmt.Errorf("%w: status %d", ErrDeclined, httpResp.StatusCode)
	}

	var parsed disburseResponse
	if err := json.Unmarshal(respRaw, &parsed); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrOutcomeUnknown, err)
	}
	if parsed.Data.ID == "" {
		return nil, fmt.Errorf("%w: response missing disbursement id", ErrOutcomeUnknown)
	}

	return &DisburseResult{ExternalRef: parsed.Data.ID}, nil
}
