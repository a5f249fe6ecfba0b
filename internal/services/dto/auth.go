package dto

import "zogiraa_backend/internal/models"

type SendOTPRequest struct {
	Phone string          `json:"phone" validate:"required"`
	Role  models.UserRole `json:"role" validate:"omitempty,is-user-role"`
	Mode  models.AuthMode `json:"mode" validate:"omitempty,is-auth-mode"`
}

type SendOTPResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	// Warning is set when the code was stored but SMS delivery is
	// uncertain. The request still succeeds.
	Warning string `json:"warning,omitempty"`
}

type VerifyOTPRequest struct {
	Phone string          `json:"phone" validate:"required"`
	Role  models.UserRole `json:"role" validate:"omitempty,is-user-role"`
	OTP   string          `json:"otp" validate:"required"`
	Mode  models.AuthMode `json:"mode" validate:"omitempty,is-auth-mode"`
}

type ProfileStatus struct {
	IsProfileComplete     bool `json:"isProfileComplete"`
	ProfileCompletionStep int  `json:"profileCompletionStep"`
}

type VerifyOTPResponse struct {
	Success       bool            `json:"success"`
	Message       string          `json:"message"`
	Token         string          `json:"token"`
	Role          models.UserRole `json:"role"`
	ProfileStatus *ProfileStatus  `json:"profileStatus,omitempty"`
}
