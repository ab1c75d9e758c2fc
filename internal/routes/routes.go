package routes

import (
	"github.com/gin-gonic/gin"

	"staffhub_backend/internal/handlers"
)

// RegisterRoutes registers all HTTP routes.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.HealthHandler.RegisterRoutes(api)
		appHandlers.PostingHandler.RegisterRoutes(api)
		appHandlers.ApplicationHandler.RegisterRoutes(api)
		appHandlers.ShiftHandler.RegisterRoutes(api)
		appHandlers.ProfileHandler.RegisterRoutes(api)
	}
}
