package integration_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"zogiraa_backend/internal/models"
	"zogiraa_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthSignupFlow(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/auth/send-otp", "", map[string]interface{}{
		"phone": "9999999999",
		"role":  "worker",
		"mode":  "signup",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "OTP sent successfully")
	assert.Equal(t, 1, ts.SMS.SentCount())

	code, ok := ts.OTPs.LatestCode("9999999999")
	require.True(t, ok)

	res, body = ts.SendRequest(t, http.MethodPost, "/auth/verify-otp", "", map[string]interface{}{
		"phone": "9999999999",
		"role":  "worker",
		"otp":   code,
		"mode":  "signup",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var parsed struct {
		Success       bool   `json:"success"`
		Message       string `json:"message"`
		Token         string `json:"token"`
		Role          string `json:"role"`
		ProfileStatus *struct {
			IsProfileComplete     bool `json:"isProfileComplete"`
			ProfileCompletionStep int  `json:"profileCompletionStep"`
		} `json:"profileStatus"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &parsed))
	assert.True(t, parsed.Success)
	assert.Equal(t, "OTP verified", parsed.Message)
	assert.NotEmpty(t, parsed.Token)
	assert.Equal(t, "worker", parsed.Role)
	require.NotNil(t, parsed.ProfileStatus)
	assert.False(t, parsed.ProfileStatus.IsProfileComplete)
	assert.Equal(t, 1, parsed.ProfileStatus.ProfileCompletionStep)

	// Token works against a protected route.
	res, body = ts.SendRequest(t, http.MethodGet, "/profile/me", parsed.Token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, body)
}

func TestAuthSendOTPValidation(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	t.Run("login for unknown phone", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPost, "/auth/send-otp", "", map[string]interface{}{
			"phone": "7000000001",
		})
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
		assert.Contains(t, body, "Account not found. Please sign up first.")
	})

	t.Run("signup without role", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPost, "/auth/send-otp", "", map[string]interface{}{
			"phone": "7000000002",
			"mode":  "signup",
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Contains(t, body, "Please select a role to sign up.")
	})

	t.Run("signup for taken phone", func(t *testing.T) {
		helpers.SignupAndLogin(t, ts, "7000000003", models.UserRoleWorker)

		res, body := ts.SendRequest(t, http.MethodPost, "/auth/send-otp", "", map[string]interface{}{
			"phone": "7000000003",
			"role":  "employer",
			"mode":  "signup",
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Contains(t, body, "This phone is already registered as worker. Please login.")
	})

	t.Run("missing phone", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPost, "/auth/send-otp", "", map[string]interface{}{
			"mode": "signup",
			"role": "worker",
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Contains(t, body, "Validation failed")
	})

	t.Run("unknown role value", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPost, "/auth/send-otp", "", map[string]interface{}{
			"phone": "7000000004",
			"role":  "admin",
			"mode":  "signup",
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Contains(t, body, "Validation failed")
	})
}

func TestAuthVerifyOTPValidation(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	t.Run("no code issued", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPost, "/auth/verify-otp", "", map[string]interface{}{
			"phone": "7100000001",
			"otp":   "123456",
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Contains(t, body, "No OTP found")
	})

	t.Run("expired code", func(t *testing.T) {
		require.NoError(t, ts.OTPs.Create(&models.OTPCode{
			Phone:     "7100000002",
			Code:      "222222",
			ExpiresAt: time.Now().Add(-time.Minute),
		}))

		res, body := ts.SendRequest(t, http.MethodPost, "/auth/verify-otp", "", map[string]interface{}{
			"phone": "7100000002",
			"otp":   "222222",
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Contains(t, body, "OTP expired")
	})

	t.Run("wrong code", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPost, "/auth/send-otp", "", map[string]interface{}{
			"phone": "7100000003",
			"role":  "supplier",
			"mode":  "signup",
		})
		require.Equal(t, http.StatusOK, res.StatusCode, body)

		res, body = ts.SendRequest(t, http.MethodPost, "/auth/verify-otp", "", map[string]interface{}{
			"phone": "7100000003",
			"role":  "supplier",
			"otp":   "000000x",
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Contains(t, body, "Invalid OTP")
	})

	t.Run("latest expiry wins when codes overlap", func(t *testing.T) {
		require.NoError(t, ts.OTPs.Create(&models.OTPCode{
			Phone:     "7100000004",
			Code:      "111111",
			ExpiresAt: time.Now().Add(time.Minute),
		}))
		require.NoError(t, ts.OTPs.Create(&models.OTPCode{
			Phone:     "7100000004",
			Code:      "333333",
			ExpiresAt: time.Now().Add(5 * time.Minute),
		}))

		// The superseded code no longer verifies.
		res, body := ts.SendRequest(t, http.MethodPost, "/auth/verify-otp", "", map[string]interface{}{
			"phone": "7100000004",
			"role":  "worker",
			"otp":   "111111",
			"mode":  "signup",
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Contains(t, body, "Invalid OTP")

		res, body = ts.SendRequest(t, http.MethodPost, "/auth/verify-otp", "", map[string]interface{}{
			"phone": "7100000004",
			"role":  "worker",
			"otp":   "333333",
			"mode":  "signup",
		})
		assert.Equal(t, http.StatusOK, res.StatusCode, body)
	})

	t.Run("signup without role at verify", func(t *testing.T) {
		require.NoError(t, ts.OTPs.Create(&models.OTPCode{
			Phone:     "7100000005",
			Code:      "444444",
			ExpiresAt: time.Now().Add(5 * time.Minute),
		}))

		res, body := ts.SendRequest(t, http.MethodPost, "/auth/verify-otp", "", map[string]interface{}{
			"phone": "7100000005",
			"otp":   "444444",
			"mode":  "signup",
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Contains(t, body, "Role selection is required for signup.")
	})

	t.Run("login for unknown account at verify", func(t *testing.T) {
		require.NoError(t, ts.OTPs.Create(&models.OTPCode{
			Phone:     "7100000007",
			Code:      "777777",
			ExpiresAt: time.Now().Add(5 * time.Minute),
		}))

		// A valid code in login mode must not mint an account, with or
		// without a role in the request.
		for _, payload := range []map[string]interface{}{
			{"phone": "7100000007", "otp": "777777"},
			{"phone": "7100000007", "otp": "777777", "mode": "login", "role": "worker"},
		} {
			res, body := ts.SendRequest(t, http.MethodPost, "/auth/verify-otp", "", payload)
			assert.Equal(t, http.StatusNotFound, res.StatusCode, body)
			assert.Contains(t, body, "Account not found. Please sign up first.")
		}

		_, err := ts.Users.FindByPhone("7100000007")
		assert.Error(t, err, "no account may exist after login-mode verify")
	})

	t.Run("role mismatch on login", func(t *testing.T) {
		helpers.SignupAndLogin(t, ts, "7100000006", models.UserRoleWorker)

		require.NoError(t, ts.OTPs.Create(&models.OTPCode{
			Phone:     "7100000006",
			Code:      "555555",
			ExpiresAt: time.Now().Add(10 * time.Minute),
		}))
		res, body := ts.SendRequest(t, http.MethodPost, "/auth/verify-otp", "", map[string]interface{}{
			"phone": "7100000006",
			"role":  "employer",
			"otp":   "555555",
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Contains(t, body, "This phone number is already registered as worker")
	})
}

func TestAuthSMSDeliveryFailure(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	ts.SMS.FailWith(errors.New("vendor unavailable"))

	res, body := ts.SendRequest(t, http.MethodPost, "/auth/send-otp", "", map[string]interface{}{
		"phone": "7200000001",
		"role":  "worker",
		"mode":  "signup",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "OTP generated. Please check your phone for SMS.")
	assert.Contains(t, body, "SMS delivery may be delayed")

	// The code was stored and still verifies.
	code, ok := ts.OTPs.LatestCode("7200000001")
	require.True(t, ok)
	res, body = ts.SendRequest(t, http.MethodPost, "/auth/verify-otp", "", map[string]interface{}{
		"phone": "7200000001",
		"role":  "worker",
		"otp":   code,
		"mode":  "signup",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode, body)
}
