// controllers/clients.go
package controllers

import (
	"banyadesk-backend/config"
	"banyadesk-backend/models"
	"banyadesk-backend/utils"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TreatmentInput struct {
	Done   bool             `json:"done"`
	Amount utils.FlexNumber `json:"amount"`
}

// ClientRecordInput is the daily submission payload. Numeric fields accept
// anything and normalize to 0; only date and amountOfPeople are mandatory.
type ClientRecordInput struct {
	Date string `json:"date"`

	AmountOfPeople utils.FlexCount `json:"amountOfPeople"`
	Men            utils.FlexCount `json:"men"`
	Women          utils.FlexCount `json:"women"`
	LocalSpeakers  utils.FlexCount `json:"localSpeakers"`
	ForeignGuests  utils.FlexCount `json:"foreignGuests"`
	PeakTime       utils.FlexCount `json:"peakTime"`
	OffPeakTime    utils.FlexCount `json:"offPeakTime"`
	NewClients     utils.FlexCount `json:"newClients"`

	VouchersSold     utils.FlexCount  `json:"vouchersSold"`
	VouchersValue    utils.FlexNumber `json:"vouchersValue"`
	MembershipsSold  utils.FlexCount  `json:"membershipsSold"`
	MembershipsValue utils.FlexNumber `json:"membershipsValue"`
	OnlineSales      utils.FlexNumber `json:"onlineSales"`
	OfflineSales     utils.FlexNumber `json:"offlineSales"`

	PaymentLinks      utils.FlexCount  `json:"paymentLinks"`
	PaymentLinksValue utils.FlexNumber `json:"paymentLinksValue"`
	WidgetPayments    utils.FlexCount  `json:"widgetPayments"`
	WidgetValue       utils.FlexNumber `json:"widgetValue"`
	DigitalBills      utils.FlexCount  `json:"digitalBills"`
	DigitalBillsValue utils.FlexNumber `json:"digitalBillsValue"`

	FoodDrinkSales utils.FlexNumber `json:"foodDrinkSales"`

	Treatments map[string]TreatmentInput `json:"treatments"`
}

func (input *ClientRecordInput) apply(record *models.ClientRecord) {
	record.AmountOfPeople = int(input.AmountOfPeople)
	record.Men = int(input.Men)
	record.Women = int(input.Women)
	record.LocalSpeakers = int(input.LocalSpeakers)
	record.ForeignGuests = int(input.ForeignGuests)
	record.PeakTime = int(input.PeakTime)
	record.OffPeakTime = int(input.OffPeakTime)
	record.NewClients = int(input.NewClients)

	record.VouchersSold = int(input.VouchersSold)
	record.VouchersValue = float64(input.VouchersValue)
	record.MembershipsSold = int(input.MembershipsSold)
	record.MembershipsValue = float64(input.MembershipsValue)
	record.OnlineSales = float64(input.OnlineSales)
	record.OfflineSales = float64(input.OfflineSales)

	record.PaymentLinks = int(input.PaymentLinks)
	record.PaymentLinksValue = float64(input.PaymentLinksValue)
	record.WidgetPayments = int(input.WidgetPayments)
	record.WidgetValue = float64(input.WidgetValue)
	record.DigitalBills = int(input.DigitalBills)
	record.DigitalBillsValue = float64(input.DigitalBillsValue)

	record.FoodDrinkSales = float64(input.FoodDrinkSales)

	treatments := make(models.TreatmentMap, len(input.Treatments))
	for key, entry := range input.Treatments {
		treatments[key] = models.TreatmentEntry{Done: entry.Done, Amount: float64(entry.Amount)}
	}
	record.Treatments = treatments.Normalized()
}

// CreateClientRecord stores one reception-submitted day of figures.
func CreateClientRecord(c *gin.Context) {
	var input ClientRecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Date == "" || int(input.AmountOfPeople) <= 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "amountOfPeople and date are required")
		return
	}
	if _, err := utils.ParseDay(input.Date); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	record := models.ClientRecord{
		Date:      input.Date,
		CreatedBy: c.GetString("username"),
		Status:    models.StatusEdited,
	}
	input.apply(&record)

	if err := config.DB.Create(&record).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create record")
		return
	}

	c.JSON(http.StatusCreated, record)
}

// UpdateClientRecord replaces a record's figures. An update by anyone other
// than a head discards a prior confirmation: the head has to re-review.
func UpdateClientRecord(c *gin.Context) {
	record, ok := findClientRecord(c)
	if !ok {
		return
	}

	var input ClientRecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Date != "" {
		if _, err := utils.ParseDay(input.Date); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		record.Date = input.Date
	}
	input.apply(&record)

	if c.GetString("role") != models.RoleHead {
		record.Status = models.AfterEdit(record.Status)
		record.IsVerified = false
	}

	if err := config.DB.Save(&record).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update record")
		return
	}

	c.JSON(http.StatusOK, record)
}

type VerifyClientInput struct {
	IsVerified json.RawMessage `json:"isVerified"`
}

// VerifyClientRecord is the head review action. Confirming requires the
// record to be in the edited state; isVerified=false reopens it.
func VerifyClientRecord(c *gin.Context) {
	record, ok := findClientRecord(c)
	if !ok {
		return
	}

	var input VerifyClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var verified bool
	if err := json.Unmarshal(input.IsVerified, &verified); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "isVerified must be a boolean")
		return
	}

	if verified {
		next, err := models.Confirm(record.Status)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		record.Status = next
	} else {
		record.Status = models.Unconfirm(record.Status)
	}
	record.IsVerified = record.Status.Verified()

	if err := config.DB.Save(&record).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update record")
		return
	}

	c.JSON(http.StatusOK, record)
}

// ListClientRecords returns daily records, optionally filtered by
// verification state and calendar day.
func ListClientRecords(c *gin.Context) {
	query := config.DB.Model(&models.ClientRecord{})

	if verified := c.Query("verified"); verified != "" {
		want, err := strconv.ParseBool(verified)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "verified must be true or false")
			return
		}
		query = query.Where("is_verified = ?", want)
	}
	if date := c.Query("date"); date != "" {
		query = query.Where("date = ?", date)
	}

	records := make([]models.ClientRecord, 0)
	if err := query.Order("date ASC, id ASC").Find(&records).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve records")
		return
	}

	c.JSON(http.StatusOK, records)
}

func GetClientRecord(c *gin.Context) {
	record, ok := findClientRecord(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, record)
}

func findClientRecord(c *gin.Context) (models.ClientRecord, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid record ID")
		return models.ClientRecord{}, false
	}

	var record models.ClientRecord
	if err := config.DB.First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Record not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return models.ClientRecord{}, false
	}
	return record, true
}
