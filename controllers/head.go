// controllers/head.go
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

// Head overlay handlers. Each subsection of a head record moves through the
// status machine on its own: writing a section puts it in edited, verifying
// confirms just that section.

type HeadDailyInput struct {
	Date string `json:"date"`

	FnbSales *utils.FlexNumber `json:"fnbSales"`

	Treatments map[string]TreatmentInput `json:"treatments"`

	PrebookedPeople *utils.FlexCount  `json:"prebookedPeople"`
	PrebookedValue  *utils.FlexNumber `json:"prebookedValue"`
}

// UpsertHeadDaily stores the head overlay for one calendar day. Only the
// sections present in the payload are written; each written section lands on
// edited.
func UpsertHeadDaily(c *gin.Context) {
	var input HeadDailyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Date == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "date is required")
		return
	}
	if _, err := utils.ParseDay(input.Date); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	var record models.HeadDaily
	result := config.DB.Where("date = ?", input.Date).First(&record)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		record = models.HeadDaily{
			Date:             input.Date,
			CreatedBy:        c.GetString("username"),
			FnbStatus:        models.StatusPending,
			TreatmentsStatus: models.StatusPending,
			PrebookedStatus:  models.StatusPending,
			Treatments:       models.TreatmentMap{}.Normalized(),
		}
	} else if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	if input.FnbSales != nil {
		record.FnbSales = float64(*input.FnbSales)
		record.FnbStatus = models.AfterEdit(record.FnbStatus)
	}
	if input.Treatments != nil {
		treatments := make(models.TreatmentMap, len(input.Treatments))
		for key, entry := range input.Treatments {
			treatments[key] = models.TreatmentEntry{Done: entry.Done, Amount: float64(entry.Amount)}
		}
		record.Treatments = treatments.Normalized()
		record.TreatmentsStatus = models.AfterEdit(record.TreatmentsStatus)
	}
	if input.PrebookedPeople != nil || input.PrebookedValue != nil {
		if input.PrebookedPeople != nil {
			record.PrebookedPeople = int(*input.PrebookedPeople)
		}
		if input.PrebookedValue != nil {
			record.PrebookedValue = float64(*input.PrebookedValue)
		}
		record.PrebookedStatus = models.AfterEdit(record.PrebookedStatus)
	}

	if err := config.DB.Save(&record).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to store head daily record")
		return
	}

	c.JSON(http.StatusOK, record)
}

type VerifySectionInput struct {
	Section string `json:"section" binding:"required"`
	Status  string `json:"status"`
}

// VerifyHeadDaily confirms (or reopens) one subsection of a head daily record.
func VerifyHeadDaily(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid record ID")
		return
	}

	var record models.HeadDaily
	if err := config.DB.First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Head daily record not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !applySectionVerify(c, &record) {
		return
	}

	if err := config.DB.Save(&record).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update head daily record")
		return
	}

	c.JSON(http.StatusOK, record)
}

func ListHeadDaily(c *gin.Context) {
	query := config.DB.Model(&models.HeadDaily{})
	if date := c.Query("date"); date != "" {
		query = query.Where("date = ?", date)
	}

	records := make([]models.HeadDaily, 0)
	if err := query.Order("date ASC").Find(&records).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve head daily records")
		return
	}
	c.JSON(http.StatusOK, records)
}

type HeadWeeklyInput struct {
	Date string `json:"date"`

	StaffBonus          *utils.FlexNumber `json:"staffBonus"`
	OnDeskBonus         *utils.FlexNumber `json:"onDeskBonus"`
	VoucherSalesBonus   *utils.FlexNumber `json:"voucherSalesBonus"`
	PrivateBookingBonus *utils.FlexNumber `json:"privateBookingBonus"`

	OtherCosts *utils.FlexNumber `json:"otherCosts"`
}

// UpsertHeadWeekly stores the head overlay for the week containing the
// submitted date, keyed by the week's Monday.
func UpsertHeadWeekly(c *gin.Context) {
	var input HeadWeeklyInput
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

	var record models.HeadWeekly
	result := config.DB.Where("date = ?", weekStart).First(&record)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		record = models.HeadWeekly{
			Date:             weekStart,
			CreatedBy:        c.GetString("username"),
			BonusesStatus:    models.StatusPending,
			OtherCostsStatus: models.StatusPending,
		}
	} else if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	if input.StaffBonus != nil || input.OnDeskBonus != nil || input.VoucherSalesBonus != nil || input.PrivateBookingBonus != nil {
		if input.StaffBonus != nil {
			record.StaffBonus = float64(*input.StaffBonus)
		}
		if input.OnDeskBonus != nil {
			record.OnDeskBonus = float64(*input.OnDeskBonus)
		}
		if input.VoucherSalesBonus != nil {
			record.VoucherSalesBonus = float64(*input.VoucherSalesBonus)
		}
		if input.PrivateBookingBonus != nil {
			record.PrivateBookingBonus = float64(*input.PrivateBookingBonus)
		}
		record.BonusesStatus = models.AfterEdit(record.BonusesStatus)
	}
	if input.OtherCosts != nil {
		record.OtherCosts = float64(*input.OtherCosts)
		record.OtherCostsStatus = models.AfterEdit(record.OtherCostsStatus)
	}

	if err := config.DB.Save(&record).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to store head weekly record")
		return
	}

	c.JSON(http.StatusOK, record)
}

// VerifyHeadWeekly confirms (or reopens) one subsection of a head weekly record.
func VerifyHeadWeekly(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid record ID")
		return
	}

	var record models.HeadWeekly
	if err := config.DB.First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Head weekly record not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !applySectionVerify(c, &record) {
		return
	}

	if err := config.DB.Save(&record).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update head weekly record")
		return
	}

	c.JSON(http.StatusOK, record)
}

func ListHeadWeekly(c *gin.Context) {
	query := config.DB.Model(&models.HeadWeekly{})
	if weekStart := c.Query("weekStart"); weekStart != "" {
		normalized, err := utils.WeekStartDay(weekStart)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "weekStart must be YYYY-MM-DD")
			return
		}
		query = query.Where("date = ?", normalized)
	}

	records := make([]models.HeadWeekly, 0)
	if err := query.Order("date ASC").Find(&records).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve head weekly records")
		return
	}
	c.JSON(http.StatusOK, records)
}

type sectioned interface {
	SectionStatus(section string) (models.Status, error)
	SetSectionStatus(section string, status models.Status) error
}

func applySectionVerify(c *gin.Context, record sectioned) bool {
	var input VerifySectionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return false
	}
	if input.Status == "" {
		input.Status = string(models.StatusConfirmed)
	}

	target, err := models.ParseStatus(input.Status)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return false
	}

	current, err := record.SectionStatus(input.Section)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return false
	}

	if target == models.StatusConfirmed {
		next, err := models.Confirm(current)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
			return false
		}
		target = next
	}

	if err := record.SetSectionStatus(input.Section, target); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}
