package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"zogiraa_backend/internal/models"
	"zogiraa_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stepBody(step int, data map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{"step": step, "data": data}
}

func TestProfileMe(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	token := helpers.SignupAndLogin(t, ts, "8000000001", models.UserRoleWorker)

	t.Run("requires token", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodGet, "/profile/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
		assert.Contains(t, body, "No token provided")
	})

	t.Run("rejects garbage token", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodGet, "/profile/me", "not-a-jwt", nil)
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
		assert.Contains(t, body, "Invalid token")
	})

	t.Run("defaults before any step", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodGet, "/profile/me", token, nil)
		require.Equal(t, http.StatusOK, res.StatusCode, body)

		var parsed struct {
			IsProfileComplete     bool            `json:"isProfileComplete"`
			ProfileCompletionStep int             `json:"profileCompletionStep"`
			Profile               json.RawMessage `json:"profile"`
			Role                  string          `json:"role"`
		}
		require.NoError(t, json.Unmarshal([]byte(body), &parsed))
		assert.False(t, parsed.IsProfileComplete)
		assert.Equal(t, 1, parsed.ProfileCompletionStep)
		assert.Equal(t, "null", string(parsed.Profile))
		assert.Equal(t, "worker", parsed.Role)
	})

	t.Run("reflects saved steps", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPatch, "/profile/worker/step", token,
			stepBody(1, map[string]interface{}{"fullName": "Ravi Kumar"}))
		require.Equal(t, http.StatusOK, res.StatusCode, body)

		res, body = ts.SendRequest(t, http.MethodGet, "/profile/me", token, nil)
		require.Equal(t, http.StatusOK, res.StatusCode, body)
		assert.Contains(t, body, `"profileCompletionStep":2`)
		assert.Contains(t, body, "Ravi Kumar")
	})
}

func TestWorkerStepUpdates(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	token := helpers.SignupAndLogin(t, ts, "8100000001", models.UserRoleWorker)

	t.Run("rejects out of range step", func(t *testing.T) {
		for _, step := range []int{0, 6, -1} {
			res, body := ts.SendRequest(t, http.MethodPatch, "/profile/worker/step", token,
				stepBody(step, map[string]interface{}{"fullName": "x"}))
			assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
		}
	})

	t.Run("rejects unknown field", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPatch, "/profile/worker/step", token,
			stepBody(1, map[string]interface{}{"isProfileComplete": true}))
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Contains(t, body, "Data object required")
	})

	t.Run("rejects missing data", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPatch, "/profile/worker/step", token,
			map[string]interface{}{"step": 1})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
	})

	t.Run("role guard blocks other wizards", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPatch, "/profile/employer/step", token,
			stepBody(1, map[string]interface{}{"fullName": "x"}))
		assert.Equal(t, http.StatusForbidden, res.StatusCode)
		assert.Contains(t, body, "Not an employer")

		res, body = ts.SendRequest(t, http.MethodPatch, "/profile/supplier/step", token,
			stepBody(1, map[string]interface{}{"fullName": "x"}))
		assert.Equal(t, http.StatusForbidden, res.StatusCode)
		assert.Contains(t, body, "Not a supplier")
	})

	t.Run("intermediate step advances cursor", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPatch, "/profile/worker/step", token,
			stepBody(1, map[string]interface{}{
				"fullName":     "Ravi Kumar",
				"aadharNumber": "123412341234",
				"dob":          "1990-01-15",
				"gender":       "male",
			}))
		require.Equal(t, http.StatusOK, res.StatusCode, body)
		assert.Contains(t, body, `"profileCompletionStep":2`)
		assert.Contains(t, body, `"isProfileComplete":false`)
	})

	t.Run("final step rejects incomplete document but keeps fields", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPatch, "/profile/worker/step", token,
			stepBody(5, map[string]interface{}{"readDocsAccepted": true}))
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Contains(t, body, "All required fields must be completed before finishing profile")
		assert.Contains(t, body, "missingFields")

		profile, err := ts.Profiles.FindWorkerByUserID(userIDByPhone(t, ts, "8100000001"))
		require.NoError(t, err)
		assert.True(t, profile.ReadDocsAccepted)
		assert.False(t, profile.IsProfileComplete)
	})

	t.Run("full wizard completes", func(t *testing.T) {
		steps := []map[string]interface{}{
			{
				"fullName":     "Ravi Kumar",
				"aadharNumber": "123412341234",
				"dob":          "1990-01-15",
				"gender":       "male",
			},
			{
				"address": map[string]interface{}{
					"villageOrCity": "Siwan",
					"district":      "Siwan",
					"state":         "Bihar",
					"pincode":       "841226",
					"fullAddress":   "Ward 4, Siwan",
				},
			},
			{
				"jobCategories": []string{"mason", "helper"},
				"skillLevel":    "skilled",
				"toolsOwned":    []string{"trowel"},
			},
			{
				"bankAccountNumber":    "110022003300",
				"ifscCode":             "SBIN0001234",
				"preferredPaymentMode": "upi",
				"upiId":                "ravi@upi",
			},
			{
				"benefitKitItems":  []string{"helmet"},
				"readDocsAccepted": true,
			},
		}
		for i, data := range steps {
			res, body := ts.SendRequest(t, http.MethodPatch, "/profile/worker/step", token, stepBody(i+1, data))
			require.Equal(t, http.StatusOK, res.StatusCode, body)
		}

		res, body := ts.SendRequest(t, http.MethodGet, "/profile/me", token, nil)
		require.Equal(t, http.StatusOK, res.StatusCode, body)
		assert.Contains(t, body, `"isProfileComplete":true`)
		assert.Contains(t, body, `"profileCompletionStep":5`)
	})

	t.Run("lower step edits after completion keep the cursor pinned", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPatch, "/profile/worker/step", token,
			stepBody(1, map[string]interface{}{"fullName": "Ravi K."}))
		require.Equal(t, http.StatusOK, res.StatusCode, body)
		assert.Contains(t, body, `"profileCompletionStep":5`)
		assert.Contains(t, body, `"isProfileComplete":true`)
		assert.Contains(t, body, "Ravi K.")
	})
}

func TestSupplierProductReplacement(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	token := helpers.SignupAndLogin(t, ts, "8200000001", models.UserRoleSupplier)

	res, body := ts.SendRequest(t, http.MethodPatch, "/profile/supplier/step", token,
		stepBody(3, map[string]interface{}{
			"products": []map[string]interface{}{
				{"productName": "Cement", "price": 420, "unit": "bag", "minOrderQty": 10},
				{"productName": "Sand", "price": 1500, "unit": "ton", "minOrderQty": 1},
			},
		}))
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	// Resubmitting replaces the list wholesale while sibling fields in
	// the same patch still apply.
	res, body = ts.SendRequest(t, http.MethodPatch, "/profile/supplier/step", token,
		stepBody(3, map[string]interface{}{
			"products": []map[string]interface{}{
				{"productName": "Bricks", "price": 8, "unit": "piece", "minOrderQty": 500},
			},
			"productCategories": []string{"construction"},
		}))
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	profile, err := ts.Profiles.FindSupplierByUserID(userIDByPhone(t, ts, "8200000001"))
	require.NoError(t, err)
	require.Len(t, profile.Products, 1)
	assert.Equal(t, "Bricks", profile.Products[0].ProductName)
	assert.Equal(t, []string{"construction"}, []string(profile.ProductCategories))
}

func TestSupplierFullWizard(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	token := helpers.SignupAndLogin(t, ts, "8300000001", models.UserRoleSupplier)

	steps := []map[string]interface{}{
		{
			"fullName":        "Sita Traders",
			"companyName":     "Sita Traders Pvt Ltd",
			"mobileNo":        "8300000001",
			"email":           "sales@sitatraders.example",
			"city":            "Patna",
			"state":           "Bihar",
			"gstNumber":       "10ABCDE1234F1Z5",
			"businessAddress": "Main Road, Patna",
		},
		{"productCategories": []string{"construction", "tools"}},
		{
			"products": []map[string]interface{}{
				{"productName": "Cement", "price": 420, "unit": "bag", "minOrderQty": 10},
			},
		},
		{
			"gstCertificateUrl":     "https://files.example/gst.pdf",
			"panCardUrl":            "https://files.example/pan.pdf",
			"accountHolderName":     "Sita Traders Pvt Ltd",
			"accountNumber":         "50020030040",
			"ifscCode":              "HDFC0000123",
			"documentsConfirmed":    true,
			"supplierTermsAccepted": true,
		},
		{"readDocsAccepted": true},
	}
	for i, data := range steps {
		res, body := ts.SendRequest(t, http.MethodPatch, "/profile/supplier/step", token, stepBody(i+1, data))
		require.Equal(t, http.StatusOK, res.StatusCode, body)
	}

	res, body := ts.SendRequest(t, http.MethodGet, "/profile/me", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"isProfileComplete":true`)
	assert.Contains(t, body, `"profileCompletionStep":5`)
}

func TestEmployerFullWizard(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	token := helpers.SignupAndLogin(t, ts, "8400000001", models.UserRoleEmployer)

	steps := []map[string]interface{}{
		{
			"fullName":     "Anil Sharma",
			"aadharNumber": "432143214321",
			"dob":          "1985-06-20",
			"gender":       "male",
		},
		{
			"address": map[string]interface{}{
				"villageOrCity": "Gorakhpur",
				"district":      "Gorakhpur",
				"state":         "Uttar Pradesh",
				"pincode":       "273001",
				"fullAddress":   "Civil Lines, Gorakhpur",
			},
		},
		{
			"companyName":   "Sharma Constructions",
			"contactNumber": "8400000001",
		},
		{
			"bankAccountNumber":    "220033004400",
			"ifscCode":             "ICIC0000456",
			"preferredPaymentMode": "bank",
		},
		{
			"defaultWagePerDay":  600,
			"defaultPaymentMode": "cash",
		},
		{"readDocsAccepted": true},
	}
	for i, data := range steps {
		res, body := ts.SendRequest(t, http.MethodPatch, "/profile/employer/step", token, stepBody(i+1, data))
		require.Equal(t, http.StatusOK, res.StatusCode, body)
	}

	res, body := ts.SendRequest(t, http.MethodGet, "/profile/me", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"isProfileComplete":true`)
	assert.Contains(t, body, `"profileCompletionStep":6`)

	// Employer allows step 6, the worker wizard does not.
	res, body = ts.SendRequest(t, http.MethodPatch, "/profile/employer/step", token,
		stepBody(7, map[string]interface{}{"fullName": "x"}))
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "Invalid step number (1-6)")
}

func userIDByPhone(t *testing.T, ts *helpers.TestServer, phone string) string {
	t.Helper()
	user, err := ts.Users.FindByPhone(phone)
	require.NoError(t, err)
	return user.ID
}
