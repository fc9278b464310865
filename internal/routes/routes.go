package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tailorlink_backend/internal/handlers"
)

// RegisterRoutes wires every HTTP route.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.UserHandler.RegisterRoutes(api)
		appHandlers.TailorHandler.RegisterRoutes(api)
		appHandlers.MeasurementHandler.RegisterRoutes(api)
		appHandlers.OrderHandler.RegisterRoutes(api)
	}
}
