package main

import (
	"fmt"
	"os"

	"banyadesk-backend/config"
	"banyadesk-backend/models"
	"banyadesk-backend/routes"
	"banyadesk-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		config.GetLogger().Info("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.ClientRecord{},
		&models.WeeklyRecord{},
		&models.HeadDaily{},
		&models.HeadWeekly{},
		&models.ReminderLog{},
	)

	seedUsers()
}

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	reminders := services.NewReminderService(config.DB)
	reminders.StartScheduler()

	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

// seedUsers bootstraps one account per role on an empty store, so the first
// operator can log in before any registration happened. The in-memory store
// starts empty on every boot, which makes this the normal startup path.
func seedUsers() {
	var count int64
	config.DB.Model(&models.User{}).Count(&count)
	if count > 0 {
		return
	}

	logger := config.GetLogger()
	seeds := []struct {
		username string
		role     string
		envVar   string
	}{
		{"reception", models.RoleAdmin, "SEED_ADMIN_PASSWORD"},
		{"head", models.RoleHead, "SEED_HEAD_PASSWORD"},
		{"boss", models.RoleBoss, "SEED_BOSS_PASSWORD"},
	}

	for _, seed := range seeds {
		password := os.Getenv(seed.envVar)
		if password == "" {
			password = "changeme-" + seed.role
			logger.WithField("username", seed.username).
				Warn("seeding account with default password, set " + seed.envVar)
		}
		user := models.User{
			Username: seed.username,
			Password: password,
			Name:     seed.username,
			Role:     seed.role,
			IsActive: true,
		}
		if err := config.DB.Create(&user).Error; err != nil {
			config.LogError(logger, "main", "seedUsers", "create seed user", seed.username, err)
		}
	}
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
