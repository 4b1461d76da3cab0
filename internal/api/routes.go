package api

import (
	"net/http"

	"exercisetracker/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers middleware and all API routes on the router.
func SetupRoutes(router *gin.Engine, userService service.UserService) {
	userHandler := NewUserHandler(userService)

	router.Use(RequestID(), RequestLogger())

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Static landing page.
	router.StaticFile("/", "./public/index.html")
	router.Static("/public", "./public")

	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/users", userHandler.ListUsers)
		apiGroup.POST("/users", userHandler.CreateUser)
		apiGroup.POST("/users/:id/exercises", userHandler.AddExercise)
		apiGroup.GET("/users/:id/logs", userHandler.GetLogs)
	}
}
