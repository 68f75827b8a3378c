package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"venturelink_backend/internal/handlers"
)

// RegisterRoutes registers all HTTP routes.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	ginRouter.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := ginRouter.Group("/api/v1")
	{
		appHandlers.CompanyHandler.RegisterRoutes(api)
		appHandlers.InvestorHandler.RegisterRoutes(api)
		appHandlers.RoundHandler.RegisterRoutes(api)
		appHandlers.InterestHandler.RegisterRoutes(api)
		appHandlers.FollowHandler.RegisterRoutes(api)
		appHandlers.NotificationHandler.RegisterRoutes(api)
	}
}
