package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"zogiraa_backend/internal/logger"
)

// Fast2SMSProvider sends OTP texts through the Fast2SMS bulk API.
// Route "q" is the quick/OTP route.
type Fast2SMSProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewFast2SMSProvider(apiKey, baseURL string) *Fast2SMSProvider {
	return &Fast2SMSProvider{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type fast2smsRequest struct {
	Route    string `json:"route"`
	Message  string `json:"message"`
	Language string `json:"language"`
	Numbers  string `json:"numbers"`
}

type fast2smsResponse struct {
	Return  bool   `json:"return"`
	Message any    `json:"message"`
	Request string `json:"request_id"`
}

func (p *Fast2SMSProvider) SendOTP(ctx context.Context, phone, code string) error {
	number, err := normalizePhone(phone)
	if err != nil {
		return err
	}

	payload := fast2smsRequest{
		Route:    "q",
		Message:  fmt.Sprintf("Your Zogiraa OTP is %s. Valid for 5 minutes.", code),
		Language: "english",
		Numbers:  number,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal sms payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create sms request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("authorization", p.apiKey)

	start := time.Now()
	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("sms http error: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("sms api status %d: %s", resp.StatusCode, string(respBody))
	}

	var envelope fast2smsResponse
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		// Vendor sometimes answers 200 with a non-JSON body; treat as sent.
		logger.Warn("sms: unexpected response format", "body", string(respBody))
		return nil
	}
	if !envelope.Return {
		return fmt.Errorf("sms api rejected message: %v", envelope.Message)
	}

	logger.Debug("sms: otp sent", "number", number, "duration", time.Since(start))
	return nil
}

// normalizePhone strips the +91 prefix and whitespace and requires the
// remaining number to be exactly 10 digits.
func normalizePhone(phone string) (string, error) {
	formatted := strings.ReplaceAll(phone, "+91", "")
	formatted = strings.ReplaceAll(formatted, " ", "")
	formatted = strings.TrimSpace(formatted)
	if len(formatted) != 10 {
		return "", fmt.Errorf("invalid phone number format: %s (got %d digits)", phone, len(formatted))
	}
	return formatted, nil
}
