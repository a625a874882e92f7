package api

import (
	"net/http"

	"micoach/coaching-app/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires all HTTP routes onto the router.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	coachingService service.CoachingService,
	backupService service.BackupService,
) {
	authHandler := NewAuthHandler(authService)
	coachingHandler := NewCoachingHandler(coachingService, backupService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", func(c *gin.Context) {
			userIDStr, err := getUserIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
				return
			}
			c.JSON(http.StatusOK, gin.H{"userId": userIDStr})
		})

		// Onboarding: submitting an assessment generates the plan.
		protected.POST("/assessments", coachingHandler.CreateAssessment)

		// Plan and routine browsing.
		protected.GET("/plan", coachingHandler.GetPlan)
		protected.GET("/plan/routines", coachingHandler.GetRoutines)

		// Daily tracking.
		protected.GET("/guidance", coachingHandler.GetDailyGuidance)
		protected.POST("/tasks/:taskId/complete", coachingHandler.CompleteTask)
		protected.POST("/tasks/reset", coachingHandler.ResetTodayTasks)
		protected.GET("/progress", coachingHandler.GetProgress)

		// State export and full reset.
		protected.POST("/backup", coachingHandler.Backup)
		protected.DELETE("/account", coachingHandler.ResetAll)
	}
}
