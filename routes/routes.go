package routes

import (
	"banyadesk-backend/config"
	"banyadesk-backend/controllers"
	"banyadesk-backend/models"
	"banyadesk-backend/utils"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func allowedOrigins() []string {
	raw := os.Getenv("ALLOWED_ORIGINS")
	if raw == "" {
		return []string{"http://localhost:3000"}
	}
	origins := strings.Split(raw, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	return origins
}

func SetupRouter() *gin.Engine {
	r := gin.Default()

	origins := allowedOrigins()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	// Older clients still post credentials to the bare path.
	r.POST("/login", controllers.Login)

	auth := r.Group("/auth")
	{
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
		auth.POST("/register", utils.RequireRole(models.RoleBoss), controllers.Register)
		auth.PUT("/password", controllers.ChangePassword)
	}

	// Live connection counter; carries no business data.
	r.GET("/ws", controllers.LiveClients)

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Daily client records
		clients := api.Group("/clients")
		{
			clients.POST("", utils.RequireRole(models.RoleAdmin), controllers.CreateClientRecord)
			clients.GET("", controllers.ListClientRecords)
			clients.GET("/:id", controllers.GetClientRecord)
			clients.PUT("/:id", utils.RequireRole(models.RoleAdmin, models.RoleHead), controllers.UpdateClientRecord)
			clients.PATCH("/:id/verify", utils.RequireRole(models.RoleHead), controllers.VerifyClientRecord)
		}

		// Boss weekly bonuses and pre-booking
		weekly := api.Group("/weekly-data", utils.RequireRole(models.RoleBoss))
		{
			weekly.POST("", controllers.UpsertWeeklyRecord)
			weekly.GET("", controllers.ListWeeklyRecords)
			weekly.PUT("/:id", controllers.UpdateWeeklyRecord)
			weekly.PATCH("/:id/verify", controllers.VerifyWeeklyRecord)
		}

		// Head overlay records
		head := api.Group("/head")
		{
			head.POST("/daily", utils.RequireRole(models.RoleHead), controllers.UpsertHeadDaily)
			head.GET("/daily", utils.RequireRole(models.RoleHead, models.RoleBoss), controllers.ListHeadDaily)
			head.PATCH("/daily/:id/verify", utils.RequireRole(models.RoleHead), controllers.VerifyHeadDaily)

			head.POST("/weekly", utils.RequireRole(models.RoleHead), controllers.UpsertHeadWeekly)
			head.GET("/weekly", utils.RequireRole(models.RoleHead, models.RoleBoss), controllers.ListHeadWeekly)
			head.PATCH("/weekly/:id/verify", utils.RequireRole(models.RoleHead), controllers.VerifyHeadWeekly)
		}

		// Dashboard summaries (read-only, any authenticated role)
		summary := api.Group("/summary")
		{
			summary.GET("/daily", controllers.GetDailySummary)
			summary.GET("/weekly", controllers.GetWeeklySummary)
			summary.GET("/period", controllers.GetPeriodSummary)
		}

		// Reports
		api.GET("/reports/export", utils.RequireRole(models.RoleBoss), controllers.ExportPeriodReport)

		// Reminder log
		api.GET("/reminders", utils.RequireRole(models.RoleHead, models.RoleBoss), controllers.ListReminderLogs)
	}

	return r
}
