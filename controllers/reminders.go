// controllers/reminders.go
package controllers

import (
	"banyadesk-backend/config"
	"banyadesk-backend/models"
	"banyadesk-backend/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListReminderLogs lets heads and the boss see which verification nudges
// went out and which failed.
func ListReminderLogs(c *gin.Context) {
	query := config.DB.Model(&models.ReminderLog{})

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	logs := make([]models.ReminderLog, 0)
	if err := query.Order("sent_at DESC").Limit(200).Find(&logs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve reminder logs")
		return
	}

	c.JSON(http.StatusOK, logs)
}
