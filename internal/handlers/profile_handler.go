package handlers

import (
	"net/http"

	"zogiraa_backend/internal/middleware"
	"zogiraa_backend/internal/models"
	"zogiraa_backend/internal/services"
	"zogiraa_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

// RegisterRoutes registers the profile wizard endpoints. The three
// per-role step routes share one handler, the role guard in front of
// each keeps the legacy paths and error messages.
func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	profile := rg.Group("/profile")
	profile.Use(authMW)
	{
		profile.GET("/me", h.GetMe)
		profile.PATCH("/worker/step", middleware.RequireRole(models.UserRoleWorker), h.stepHandler(models.UserRoleWorker))
		profile.PATCH("/employer/step", middleware.RequireRole(models.UserRoleEmployer), h.stepHandler(models.UserRoleEmployer))
		profile.PATCH("/supplier/step", middleware.RequireRole(models.UserRoleSupplier), h.stepHandler(models.UserRoleSupplier))
	}
}

func (h *ProfileHandler) GetMe(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	role, ok := h.GetRole(c)
	if !ok {
		return
	}

	resp, err := h.profileService.GetStatus(c.Request.Context(), userID, role)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) stepHandler(role models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := h.GetAndAuthorizeUserID(c)
		if !ok {
			return
		}

		var req dto.StepUpdateRequest
		if !h.BindAndValidate_JSON(c, &req) {
			return
		}

		resp, err := h.profileService.ApplyStep(c.Request.Context(), userID, role, req)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}
