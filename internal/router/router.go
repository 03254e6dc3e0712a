package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/diarioalimentar/backend/internal/api"
	"github.com/diarioalimentar/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(
	diaryHandler *api.DiaryHandler,
	recipeHandler *api.RecipeHandler,
	translationHandler *api.TranslationHandler,
	providerLimiter *middleware.RateLimiter,
) *gin.Engine {
	router := gin.Default()

	router.Use(cors.Default())
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorLogger())

	router.GET("/", api.HealthCheck)
	router.GET("/health", api.HealthCheck)

	// Only the routes that fan out to external providers are throttled.
	limiter := providerLimiter.Middleware()

	diaryHandler.RegisterRoutes(router)
	recipeHandler.RegisterRoutes(router, limiter)
	translationHandler.RegisterRoutes(router, limiter)

	return router
}
