// controllers/dashboard.go
package controllers

import (
	"banyadesk-backend/config"
	"banyadesk-backend/models"
	"banyadesk-backend/services"
	"banyadesk-backend/utils"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func aggregator() *services.Aggregator {
	return services.NewAggregator(services.GormRecordReader{DB: config.DB})
}

// GetDailySummary sums the records of one calendar day.
func GetDailySummary(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "date is required")
		return
	}
	if _, err := utils.ParseDay(date); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	summary, err := aggregator().SummarizeDay(date)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to build summary")
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetWeeklySummary sums the 7 days of the week containing ?weekStart=, and
// attaches the boss weekly record for that week when one exists.
func GetWeeklySummary(c *gin.Context) {
	weekStart := c.Query("weekStart")
	if weekStart == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "weekStart is required")
		return
	}
	normalized, err := utils.WeekStartDay(weekStart)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "weekStart must be YYYY-MM-DD")
		return
	}

	summary, err := aggregator().SummarizeWeek(normalized)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to build summary")
		return
	}

	response := gin.H{
		"weekStart": normalized,
		"summary":   summary,
	}

	var weekly models.WeeklyRecord
	result := config.DB.Where("date = ?", normalized).First(&weekly)
	switch {
	case result.Error == nil:
		response["weeklyData"] = weekly
	case errors.Is(result.Error, gorm.ErrRecordNotFound):
		response["weeklyData"] = nil
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetPeriodSummary sums an arbitrary inclusive [start, end] window.
func GetPeriodSummary(c *gin.Context) {
	start, end := c.Query("start"), c.Query("end")
	if start == "" || end == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "start and end are required")
		return
	}

	from, err := utils.ParseDay(start)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "start must be YYYY-MM-DD")
		return
	}
	to, err := utils.ParseDay(end)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "end must be YYYY-MM-DD")
		return
	}
	if from.After(to) {
		utils.RespondWithError(c, http.StatusBadRequest, "start must not be after end")
		return
	}

	summary, err := aggregator().SummarizePeriod(start, end)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to build summary")
		return
	}

	c.JSON(http.StatusOK, summary)
}
