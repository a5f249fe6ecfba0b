package handlers

import (
	"zogiraa_backend/internal/services"
	"zogiraa_backend/internal/validator"
)

// AppHandlers holds every HTTP handler wired at startup.
type AppHandlers struct {
	Auth    *AuthHandler
	Profile *ProfileHandler
}

func NewAppHandlers(v *validator.Validator, svc *services.ServiceContainer) *AppHandlers {
	base := NewBaseHandler(v)
	return &AppHandlers{
		Auth:    NewAuthHandler(base, svc.AuthService),
		Profile: NewProfileHandler(base, svc.ProfileService),
	}
}
