package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"zogiraa_backend/internal/auth"
	"zogiraa_backend/internal/logger"
	"zogiraa_backend/internal/models"
	"zogiraa_backend/internal/repositories"
	"zogiraa_backend/internal/services/dto"
	"zogiraa_backend/internal/sms"
	"zogiraa_backend/pkg/apperrors"
)

const (
	otpLength = 6
	otpTTL    = 5 * time.Minute
)

type AuthService interface {
	// RequestCode issues an OTP for the phone. Login mode requires an
	// existing account, signup mode requires the phone to be free.
	RequestCode(ctx context.Context, req dto.SendOTPRequest) (*dto.SendOTPResponse, error)
	// VerifyCode checks the latest OTP for the phone, creating the
	// account on signup, and returns a session token.
	VerifyCode(ctx context.Context, req dto.VerifyOTPRequest) (*dto.VerifyOTPResponse, error)
}

type AuthServiceImpl struct {
	userRepo    repositories.UserRepository
	otpRepo     repositories.OTPRepository
	profileRepo repositories.ProfileRepository
	provider    sms.Provider
	tokens      *auth.TokenService
}

func NewAuthService(
	userRepo repositories.UserRepository,
	otpRepo repositories.OTPRepository,
	profileRepo repositories.ProfileRepository,
	provider sms.Provider,
	tokens *auth.TokenService,
) AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		otpRepo:     otpRepo,
		profileRepo: profileRepo,
		provider:    provider,
		tokens:      tokens,
	}
}

func (s *AuthServiceImpl) RequestCode(ctx context.Context, req dto.SendOTPRequest) (*dto.SendOTPResponse, error) {
	mode := req.Mode
	if mode == "" {
		mode = models.AuthModeLogin
	}

	user, err := s.userRepo.FindByPhone(req.Phone)
	if err != nil && !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}

	switch mode {
	case models.AuthModeLogin:
		if user == nil {
			return nil, apperrors.ErrAccountNotFound
		}
	case models.AuthModeSignup:
		if req.Role == "" {
			return nil, apperrors.ErrRoleRequired
		}
		if user != nil {
			return nil, apperrors.ErrPhoneAlreadyRegistered(string(user.Role))
		}
	}

	code, err := generateOTP()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	record := &models.OTPCode{
		Phone:     req.Phone,
		Code:      code,
		ExpiresAt: time.Now().Add(otpTTL),
	}
	if err := s.otpRepo.Create(record); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.provider.SendOTP(ctx, req.Phone, code); err != nil {
		// The stored code stays valid, delivery is best-effort.
		logger.CtxWithError(ctx, "otp sms delivery failed", err, "phone", req.Phone)
		return &dto.SendOTPResponse{
			Success: true,
			Message: "OTP generated. Please check your phone for SMS.",
			Warning: "SMS delivery may be delayed",
		}, nil
	}

	logger.CtxInfo(ctx, "otp issued", "phone", req.Phone, "mode", string(mode))
	return &dto.SendOTPResponse{
		Success: true,
		Message: "OTP sent successfully",
	}, nil
}

func (s *AuthServiceImpl) VerifyCode(ctx context.Context, req dto.VerifyOTPRequest) (*dto.VerifyOTPResponse, error) {
	mode := req.Mode
	if mode == "" {
		mode = models.AuthModeLogin
	}

	record, err := s.otpRepo.FindLatestByPhone(req.Phone)
	if err != nil {
		if errors.Is(err, repositories.ErrOTPNotFound) {
			return nil, apperrors.ErrNoOTPFound
		}
		return nil, apperrors.InternalError(err)
	}
	if time.Now().After(record.ExpiresAt) {
		return nil, apperrors.ErrOTPExpired
	}
	if record.Code != req.OTP {
		return nil, apperrors.ErrOTPMismatch
	}

	user, err := s.userRepo.FindByPhone(req.Phone)
	if err != nil && !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}

	if user == nil {
		// Account creation is a signup-only privilege.
		if mode == models.AuthModeLogin {
			return nil, apperrors.ErrAccountNotFound
		}
		if req.Role == "" {
			return nil, apperrors.ErrRoleRequiredForSignup
		}
		user = &models.User{
			Phone: req.Phone,
			Role:  req.Role,
		}
		if err := s.userRepo.Create(user); err != nil {
			if errors.Is(err, repositories.ErrUserAlreadyExists) {
				return nil, apperrors.ErrPhoneAlreadyRegistered(string(req.Role))
			}
			return nil, apperrors.InternalError(err)
		}
		logger.CtxInfo(ctx, "account created", "userID", user.ID, "role", string(user.Role))
	} else if req.Role != "" && req.Role != user.Role {
		return nil, apperrors.ErrRoleMismatch(string(user.Role))
	}

	token, err := s.tokens.Generate(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	status, err := s.profileStatus(user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.VerifyOTPResponse{
		Success:       true,
		Message:       "OTP verified",
		Token:         token,
		Role:          user.Role,
		ProfileStatus: status,
	}, nil
}

// profileStatus reports the wizard position without creating a profile
// row. A missing row reads as step 1, incomplete.
func (s *AuthServiceImpl) profileStatus(user *models.User) (*dto.ProfileStatus, error) {
	var doc models.StepDocument
	var err error

	switch user.Role {
	case models.UserRoleWorker:
		doc, err = s.profileRepo.FindWorkerByUserID(user.ID)
	case models.UserRoleEmployer:
		doc, err = s.profileRepo.FindEmployerByUserID(user.ID)
	case models.UserRoleSupplier:
		doc, err = s.profileRepo.FindSupplierByUserID(user.ID)
	default:
		return nil, fmt.Errorf("unknown role %q", user.Role)
	}
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return &dto.ProfileStatus{IsProfileComplete: false, ProfileCompletionStep: 1}, nil
		}
		return nil, err
	}
	return &dto.ProfileStatus{
		IsProfileComplete:     doc.Complete(),
		ProfileCompletionStep: doc.CompletionStep(),
	}, nil
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
