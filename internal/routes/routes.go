package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rentify_backend/internal/handlers"
	"rentify_backend/pkg/apperrors"
)

// RegisterRoutes mounts the versioned API and the catch-all 404.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.UserHandler.RegisterRoutes(api)
		appHandlers.PropertyHandler.RegisterRoutes(api)
	}

	ginRouter.NoRoute(func(c *gin.Context) {
		apperrors.HandleError(c, apperrors.New(http.StatusNotFound, apperrors.CodeNotFound, "Route not found"))
	})
}
