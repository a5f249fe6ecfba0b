package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"zogiraa_backend/internal/auth"
	"zogiraa_backend/internal/handlers"
	"zogiraa_backend/internal/logger"
	"zogiraa_backend/internal/middleware"
	"zogiraa_backend/internal/models"
	"zogiraa_backend/internal/routes"
	"zogiraa_backend/internal/services"
	"zogiraa_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

var loggerOnce sync.Once

// TestServer runs the real router over in-memory repositories, so the
// HTTP tests exercise the full middleware and handler stack without a
// database or SMS vendor.
type TestServer struct {
	Server   *httptest.Server
	Users    *FakeUserRepository
	OTPs     *FakeOTPRepository
	Profiles *FakeProfileRepository
	SMS      *RecordingSMS
	Tokens   *auth.TokenService
}

func NewTestServer(t *testing.T) *TestServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	loggerOnce.Do(func() { logger.Init("test") })

	users := NewFakeUserRepository()
	otps := NewFakeOTPRepository()
	profiles := NewFakeProfileRepository()
	smsProvider := &RecordingSMS{}
	tokens := auth.NewTokenService("test-secret", 7*24*time.Hour)

	svc := &services.ServiceContainer{
		AuthService:    services.NewAuthService(users, otps, profiles, smsProvider, tokens),
		ProfileService: services.NewProfileService(profiles),
	}
	appHandlers := handlers.NewAppHandlers(validator.New(), svc)
	authMW := middleware.AuthMiddleware(tokens, users)

	router := gin.New()
	router.Use(gin.Recovery())
	routes.RegisterRoutes(router, appHandlers, authMW)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &TestServer{
		Server:   server,
		Users:    users,
		OTPs:     otps,
		Profiles: profiles,
		SMS:      smsProvider,
		Tokens:   tokens,
	}
}

// SendRequest performs one HTTP call and returns the response plus the
// body as a string.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "encode request body")
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	require.NoError(t, err, "build request")
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := ts.Server.Client().Do(req)
	require.NoError(t, err, "send request")

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err, "read response body")
	res.Body.Close()

	return res, string(raw)
}

// SignupAndLogin walks the full OTP flow for a fresh phone and returns
// a usable bearer token.
func SignupAndLogin(t *testing.T, ts *TestServer, phone string, role models.UserRole) string {
	t.Helper()

	res, body := ts.SendRequest(t, http.MethodPost, "/auth/send-otp", "", map[string]interface{}{
		"phone": phone,
		"role":  role,
		"mode":  "signup",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "send-otp failed: "+body)

	code, ok := ts.OTPs.LatestCode(phone)
	require.True(t, ok, "no OTP stored for "+phone)

	res, body = ts.SendRequest(t, http.MethodPost, "/auth/verify-otp", "", map[string]interface{}{
		"phone": phone,
		"role":  role,
		"otp":   code,
		"mode":  "signup",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "verify-otp failed: "+body)

	var parsed struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &parsed))
	require.NotEmpty(t, parsed.Token)
	return parsed.Token
}
