package http

import (
	"github.com/gin-gonic/gin"

	"easytasks/internal/adapter/http/handlers"
	"easytasks/internal/adapter/http/middleware"
	"easytasks/internal/core/ports"
)

func RegisterRoutes(
	r *gin.Engine,
	tokens ports.TokenManager,
	healthHandler *handlers.HealthHandler,
	authHandler *handlers.AuthHandler,
	taskHandler *handlers.TaskHandler,
	dashboardHandler *handlers.DashboardHandler,
) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
	}

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(tokens))
	{
		protected.GET("/auth/profile", authHandler.Profile)

		protected.POST("/tasks/create", taskHandler.CreateTask)
		protected.GET("/tasks", taskHandler.ListTasks)
		protected.GET("/tasks/dashboard", dashboardHandler.Stats)
		protected.GET("/tasks/:id", taskHandler.GetTask)
		protected.PUT("/tasks/update/:id", taskHandler.UpdateTask)
		protected.PUT("/tasks/trash/:id", taskHandler.TrashTask)
		protected.DELETE("/tasks/delete-restore", taskHandler.DeleteRestoreTask)
		protected.DELETE("/tasks/delete-restore/:id", taskHandler.DeleteRestoreTask)
		protected.PUT("/tasks/create-subtask/:id", taskHandler.CreateSubTask)
		protected.POST("/tasks/activity/:id", taskHandler.PostActivity)
	}
}
