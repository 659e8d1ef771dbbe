// controllers/weekly.go
package controllers

import (
	"banyadesk-backend/config"
	"banyadesk-backend/models"
	"banyadesk-backend/utils"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type WeeklyRecordInput struct {
	Date string `json:"date"`

	StaffBonus          utils.FlexNumber `json:"staffBonus"`
	OnDeskBonus         utils.FlexNumber `json:"onDeskBonus"`
	VoucherSalesBonus   utils.FlexNumber `json:"voucherSalesBonus"`
	PrivateBookingBonus utils.FlexNumber `json:"privateBookingBonus"`

	PreBookedValueNextWeek  utils.FlexNumber `json:"preBookedValueNextWeek"`
	PreBookedPeopleNextWeek utils.FlexCount  `json:"preBookedPeopleNextWeek"`
}

func (input *WeeklyRecordInput) apply(record *models.WeeklyRecord) {
	record.StaffBonus = float64(input.StaffBonus)
	record.OnDeskBonus = float64(input.OnDeskBonus)
	record.VoucherSalesBonus = float64(input.VoucherSalesBonus)
	record.PrivateBookingBonus = float64(input.PrivateBookingBonus)
	record.PreBookedValueNextWeek = float64(input.PreBookedValueNextWeek)
	record.PreBookedPeopleNextWeek = int(input.PreBookedPeopleNextWeek)
}

// UpsertWeeklyRecord stores the boss-level figures for the week containing
// the submitted date. There is only ever one row per week: a date falling in
// an existing week updates that row in place. A fresh week starts as edited,
// an in-place update lands on confirmed (long-standing behavior the
// dashboards rely on; pinned by tests).
func UpsertWeeklyRecord(c *gin.Context) {
	var input WeeklyRecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Date == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "date is required")
		return
	}
	weekStart, err := utils.WeekStartDay(input.Date)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	var record models.WeeklyRecord
	result := config.DB.Where("date = ?", weekStart).First(&record)
	switch {
	case result.Error == nil:
		input.apply(&record)
		record.Status = models.StatusConfirmed
	case errors.Is(result.Error, gorm.ErrRecordNotFound):
		record = models.WeeklyRecord{
			Date:      weekStart,
			CreatedBy: c.GetString("username"),
			Status:    models.StatusEdited,
		}
		input.apply(&record)
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	record.IsVerified = record.Status.Verified()

	if err := config.DB.Save(&record).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to store weekly record")
		return
	}

	c.JSON(http.StatusOK, record)
}

func UpdateWeeklyRecord(c *gin.Context) {
	record, ok := findWeeklyRecord(c)
	if !ok {
		return
	}

	var input WeeklyRecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	input.apply(&record)
	record.Status = models.AfterEdit(record.Status)
	record.IsVerified = false

	if err := config.DB.Save(&record).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update weekly record")
		return
	}

	c.JSON(http.StatusOK, record)
}

type VerifyWeeklyInput struct {
	Status string `json:"status"`
}

// VerifyWeeklyRecord moves a weekly record through the review transition.
// The caller may name the target status (default confirmed); the value is
// validated against the enum so it cannot bypass the state machine.
func VerifyWeeklyRecord(c *gin.Context) {
	record, ok := findWeeklyRecord(c)
	if !ok {
		return
	}

	var input VerifyWeeklyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.Status == "" {
		input.Status = string(models.StatusConfirmed)
	}

	target, err := models.ParseStatus(input.Status)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	if target == models.StatusConfirmed {
		next, err := models.Confirm(record.Status)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		record.Status = next
	} else {
		record.Status = target
	}
	record.IsVerified = record.Status.Verified()

	if err := config.DB.Save(&record).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update weekly record")
		return
	}

	c.JSON(http.StatusOK, record)
}

// ListWeeklyRecords returns weekly records, optionally the single week
// containing ?weekStart=.
func ListWeeklyRecords(c *gin.Context) {
	query := config.DB.Model(&models.WeeklyRecord{})

	if weekStart := c.Query("weekStart"); weekStart != "" {
		normalized, err := utils.WeekStartDay(weekStart)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "weekStart must be YYYY-MM-DD")
			return
		}
		query = query.Where("date = ?", normalized)
	}

	records := make([]models.WeeklyRecord, 0)
	if err := query.Order("date ASC").Find(&records).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve weekly records")
		return
	}

	c.JSON(http.StatusOK, records)
}

func findWeeklyRecord(c *gin.Context) (models.WeeklyRecord, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid record ID")
		return models.WeeklyRecord{}, false
	}

	var record models.WeeklyRecord
	if err := config.DB.First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Weekly record not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return models.WeeklyRecord{}, false
	}
	return record, true
}
