// Package routes defines HTTP routes for the story service.
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/septumca/story-service/internal/handlers"
	"github.com/septumca/story-service/internal/middleware"
	"github.com/septumca/story-service/internal/service"
)

// Setup configures all HTTP routes for the application.
func Setup(
	router *gin.Engine,
	pages *handlers.PageHandler,
	auth *handlers.AuthHandler,
	stories *handlers.StoryHandler,
	health *handlers.HealthHandler,
	sessions service.SessionService,
) {
	router.Use(middleware.Session(sessions, handlers.SessionCookie))

	// Health check
	router.GET("/health", health.Check)
	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Pages
	router.GET("/", pages.Index)
	router.GET("/login", pages.LoginForm)

	// Auth
	router.POST("/login", auth.Login)
	router.POST("/logout", auth.Logout)

	// Stories; mutations require a live session
	story := router.Group("/story")
	{
		story.GET("", pages.StoryList)
		story.GET("/create", pages.StoryCreateForm)
		story.POST("", middleware.RequireSession(), stories.Create)
		story.DELETE("/:id", middleware.RequireSession(), stories.Delete)
	}
}
