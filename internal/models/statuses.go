package models

type UserRole string
type VerificationStatus string
type PaymentMode string

const (
	UserRoleWorker   UserRole = "worker"
	UserRoleEmployer UserRole = "employer"
	UserRoleSupplier UserRole = "supplier"

	VerificationStatusPending  VerificationStatus = "pending"
	VerificationStatusApproved VerificationStatus = "approved"
	VerificationStatusRejected VerificationStatus = "rejected"

	PaymentModeBank PaymentMode = "bank"
	PaymentModeUPI  PaymentMode = "upi"
	PaymentModeCash PaymentMode = "cash"
	PaymentModeNone PaymentMode = "none"
)

// AuthMode selects between the two OTP entry points.
type AuthMode string

const (
	AuthModeLogin  AuthMode = "login"
	AuthModeSignup AuthMode = "signup"
)

// ValidUserRole reports whether role is one of the three onboarding roles.
func ValidUserRole(role UserRole) bool {
	switch role {
	case UserRoleWorker, UserRoleEmployer, UserRoleSupplier:
		return true
	}
	return false
}
