package apperrors

import (
	"fmt"
	"net/http"
)

/*
Domain factories and predefined errors for the onboarding flows.
Conflict-style errors deliberately carry 400, not 409: that is the wire
contract of the mobile clients.
*/

// --- Identity & OTP ---

var ErrAccountNotFound = New(
	CodeNotFound,
	"auth",
	"Account not found. Please sign up first.",
	http.StatusNotFound,
)

var ErrRoleRequired = New(
	CodeValidationFailed,
	"auth",
	"Please select a role to sign up.",
	http.StatusBadRequest,
)

var ErrRoleRequiredForSignup = New(
	CodeValidationFailed,
	"auth",
	"Role selection is required for signup.",
	http.StatusBadRequest,
)

var ErrNoOTPFound = New(
	CodeValidationFailed,
	"otp",
	"No OTP found",
	http.StatusBadRequest,
)

var ErrOTPExpired = New(
	CodeOTPExpired,
	"otp",
	"OTP expired",
	http.StatusBadRequest,
)

var ErrOTPMismatch = New(
	CodeOTPMismatch,
	"otp",
	"Invalid OTP",
	http.StatusBadRequest,
)

// ErrPhoneAlreadyRegistered rejects a signup for a phone that already
// has an account. The message names the existing role so the client
// can steer the user to the right login.
func ErrPhoneAlreadyRegistered(role string) *AppError {
	return New(
		CodeConflict,
		"auth",
		fmt.Sprintf("This phone is already registered as %s. Please login.", role),
		http.StatusBadRequest,
	)
}

// ErrRoleMismatch rejects a verify attempt whose presented role differs
// from the role the account was created with.
func ErrRoleMismatch(role string) *AppError {
	return New(
		CodeConflict,
		"auth",
		fmt.Sprintf("This phone number is already registered as %s", role),
		http.StatusBadRequest,
	)
}

// --- Profiles ---

var ErrInvalidRole = New(
	CodeForbidden,
	"profile",
	"Invalid role",
	http.StatusForbidden,
)

// ErrProfileIncomplete rejects the final wizard step while required
// fields are still missing, listing them in the details.
func ErrProfileIncomplete(missing []string) *AppError {
	return New(
		CodeValidationFailed,
		"profile",
		"All required fields must be completed before finishing profile",
		http.StatusBadRequest,
	).WithDetails(map[string]interface{}{"missingFields": missing})
}

// ErrInvalidStep rejects a step number outside the role's range.
func ErrInvalidStep(maxStep int) *AppError {
	return New(
		CodeValidationFailed,
		"profile",
		fmt.Sprintf("Invalid step number (1-%d)", maxStep),
		http.StatusBadRequest,
	)
}

// ErrInvalidStepData rejects a patch that is not a known field mapping.
func ErrInvalidStepData(err error) *AppError {
	return Wrap(err, CodeValidationFailed, "profile", "Data object required", http.StatusBadRequest)
}
