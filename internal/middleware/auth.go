package middleware

import (
	"errors"
	"net/http"
	"strings"

	"zogiraa_backend/internal/auth"
	"zogiraa_backend/internal/logger"
	"zogiraa_backend/internal/models"
	"zogiraa_backend/internal/repositories"
	"zogiraa_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the bearer token and loads the account. The
// account lookup guards against tokens for deleted users.
func AuthMiddleware(tokens *auth.TokenService, users repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if header == "" || len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
			return
		}

		claims, err := tokens.Parse(parts[1])
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token expired"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		user, err := users.FindByID(claims.UserID)
		if err != nil {
			if errors.Is(err, repositories.ErrUserNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
				return
			}
			logger.CtxWithError(c.Request.Context(), "auth middleware lookup failed", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}

		c.Set(contextkeys.UserIDKey, user.ID)
		c.Set(contextkeys.RoleKey, string(user.Role))
		c.Set(contextkeys.PhoneKey, user.Phone)

		ctx := logger.WithUserID(c.Request.Context(), user.ID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

var roleGuardMessages = map[models.UserRole]string{
	models.UserRoleWorker:   "Not a worker",
	models.UserRoleEmployer: "Not an employer",
	models.UserRoleSupplier: "Not a supplier",
}

// RequireRole rejects callers whose account role differs from the
// route's role.
func RequireRole(role models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, _ := c.Get(contextkeys.RoleKey)
		roleStr, _ := roleVal.(string)
		if models.UserRole(roleStr) != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": roleGuardMessages[role]})
			return
		}
		c.Next()
	}
}

// CompletionReader is the narrow profile read the completion gate needs.
type CompletionReader interface {
	CompletionStatus(userID string, role models.UserRole) (int, bool, error)
}

// RequireCompleteProfile gates routes that only finished profiles may
// use, reporting the caller's current wizard position on rejection.
func RequireCompleteProfile(profiles CompletionReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, _ := c.Get(contextkeys.UserIDKey)
		userID, _ := userIDVal.(string)
		roleVal, _ := c.Get(contextkeys.RoleKey)
		roleStr, _ := roleVal.(string)
		role := models.UserRole(roleStr)

		if !models.ValidUserRole(role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid role"})
			return
		}

		step, complete, err := profiles.CompletionStatus(userID, role)
		if err != nil {
			logger.CtxWithError(c.Request.Context(), "profile completion check failed", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}
		if !complete {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":                 "Complete your profile to continue",
				"profileCompletionStep": step,
				"isProfileComplete":     false,
			})
			return
		}

		c.Next()
	}
}
