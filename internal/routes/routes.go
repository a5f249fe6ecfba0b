package routes

import (
	"net/http"

	"zogiraa_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers every HTTP route. The paths sit at the root
// of the host, the mobile clients were shipped against them.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	authMW gin.HandlerFunc,
) {
	root := ginRouter.Group("")
	{
		appHandlers.Auth.RegisterRoutes(root)
		appHandlers.Profile.RegisterRoutes(root, authMW)
	}

	ginRouter.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Zogiraa Backend Running")
	})
}
