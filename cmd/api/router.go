package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"lawfirm-cms/internal/shared/middleware"
	"lawfirm-cms/internal/shared/response"
	"lawfirm-cms/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.ClientIPMiddleware(),
		middleware.Logger(),
		middleware.CORS(c.Config.CORS.AllowedOrigins),
		middleware.RateLimit(c.RateLimiter),
	)

	router.GET("/health", healthCheckHandler(c))

	cms := router.Group("/api/cms")
	{
		setupContentRoutes(cms, c)
		setupAdminRoutes(cms, c)
	}

	router.NoRoute(func(ctx *gin.Context) {
		response.NotFound(ctx, "Not found")
	})

	return router
}

// ========================================
// CONTENT ROUTES
// ========================================
func setupContentRoutes(cms *gin.RouterGroup, c *container.Container) {
	c.ContentHandler.RegisterRoutes(cms)
}

// ========================================
// ADMIN ROUTES
// ========================================
func setupAdminRoutes(cms *gin.RouterGroup, c *container.Container) {
	c.AdminHandler.RegisterRoutes(cms,
		middleware.AuthMiddleware(c.JWTManager),
		middleware.AdminMiddleware(),
	)
}

// ========================================
// HEALTH CHECK
// ========================================

// healthCheckHandler always answers 200 while the process is up. The
// content field reports whether the content source answers right now.
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 3*time.Second)
		defer cancel()

		content := "ok"
		if err := c.ContentService.Ready(checkCtx); err != nil {
			content = "unavailable"
		}

		ctx.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": c.Config.App.Name,
			"version": c.Config.App.Version,
			"content": content,
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	}
}
