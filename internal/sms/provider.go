package sms

import (
	"context"
	"fmt"

	"zogiraa_backend/internal/config"
)

// Provider delivers one-time codes to phone numbers. Delivery failures
// are independent of code validity: the caller decides whether to
// surface them.
type Provider interface {
	SendOTP(ctx context.Context, phone, code string) error
}

// NewProvider selects the provider by config mode.
func NewProvider(cfg *config.Config) (Provider, error) {
	switch cfg.SMS.Mode {
	case "mock":
		return &MockProvider{}, nil
	case "real":
		if cfg.SMS.APIKey == "" {
			return nil, fmt.Errorf("sms provider: api key is not configured")
		}
		return NewFast2SMSProvider(cfg.SMS.APIKey, cfg.SMS.BaseURL), nil
	default:
		return nil, fmt.Errorf("sms provider: unknown mode %q", cfg.SMS.Mode)
	}
}
