package sms

import (
	"context"

	"zogiraa_backend/internal/logger"
)

// MockProvider logs the code instead of sending a real SMS. Used in
// development and tests.
type MockProvider struct{}

func (p *MockProvider) SendOTP(ctx context.Context, phone, code string) error {
	logger.Info("[MOCK SMS] otp generated, not sending real sms", "phone", phone, "code", code)
	return nil
}
