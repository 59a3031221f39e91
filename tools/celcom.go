package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const celcomSendTimeout = 15 * time.Second
const celcomBalanceTimeout = 10 * time.Second

// CelcomClient wraps the Celcom Africa SMS HTTP API.
// All failure modes (validation, HTTP errors, network errors) come back as a
// GatewayResult; methods never return a Go error to the caller.
type CelcomClient struct {
	PartnerID  string
	ApiKey     string
	SendURL    string
	BalanceURL string
}

// GatewayResult is the normalized gateway outcome.
// Status is "ok" or "error"; Response carries the provider body when one
// was received (parsed JSON, or {"raw": text} when the body is not JSON).
type GatewayResult struct {
	Status     string         `json:"status"`
	Message    string         `json:"message,omitempty"`
	HTTPStatus int            `json:"http_status,omitempty"`
	Response   map[string]any `json:"response,omitempty"`
}

// SendSMS posts one message to the joined recipient list.
// Recipients are trimmed and empties dropped; order is preserved and
// duplicates are kept, matching what the provider receives downstream.
func (cl CelcomClient) SendSMS(ctx context.Context, message string, recipients []string, senderID string) GatewayResult {
	if strings.TrimSpace(message) == "" {
		return GatewayResult{Status: "error", Message: "Message cannot be empty."}
	}

	cleaned := make([]string, 0, len(recipients))
	for _, r := range recipients {
		r = strings.TrimSpace(r)
		if r != "" {
			cleaned = append(cleaned, r)
		}
	}
	mobile := strings.Join(cleaned, ",")
	if mobile == "" {
		return GatewayResult{Status: "error", Message: "No valid recipients provided."}
	}

	payload := map[string]any{
		"partnerID": cl.PartnerID,
		"apikey":    cl.ApiKey,
		"mobile":    mobile,
		"shortcode": senderID,
		"message":   message,
		"pass_type": "plain",
	}

	Log().Info("sending SMS via Celcom API",
		zap.String("mobile", mobile),
		zap.String("shortcode", senderID),
	)

	return cl.post(ctx, cl.SendURL, payload, celcomSendTimeout)
}

// GetBalance queries the account balance endpoint.
func (cl CelcomClient) GetBalance(ctx context.Context) GatewayResult {
	payload := map[string]any{
		"partnerID": cl.PartnerID,
		"apikey":    cl.ApiKey,
	}

	Log().Info("checking Celcom balance")

	return cl.post(ctx, cl.BalanceURL, payload, celcomBalanceTimeout)
}

func (cl CelcomClient) post(ctx context.Context, url string, payload map[string]any, timeout time.Duration) GatewayResult {
	b, err := json.Marshal(payload)
	if err != nil {
		return GatewayResult{Status: "error", Message: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return GatewayResult{Status: "error", Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		// timeout, DNS, connection refused: an error result, never a fault
		Log().Error("Celcom request failed", zap.String("url", url), zap.Error(err))
		return GatewayResult{Status: "error", Message: err.Error()}
	}
	defer resp.Body.Close()

	data := parseBody(resp.Body)

	if resp.StatusCode >= 400 {
		Log().Error("Celcom returned HTTP error",
			zap.Int("status", resp.StatusCode),
			zap.Any("response", data),
		)
		return GatewayResult{
			Status:     "error",
			Message:    "SMS gateway returned HTTP " + resp.Status,
			HTTPStatus: resp.StatusCode,
			Response:   data,
		}
	}

	Log().Info("Celcom response", zap.Any("response", data))
	return GatewayResult{Status: "ok", Response: data}
}

// parseBody decodes the provider JSON, falling back to {"raw": text} when
// the body is not valid JSON.
func parseBody(r io.Reader) map[string]any {
	raw, err := io.ReadAll(r)
	if err != nil {
		return map[string]any{"raw": ""}
	}
	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil || data == nil {
		return map[string]any{"raw": string(raw)}
	}
	return data
}
