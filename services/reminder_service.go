// services/reminder_service.go
package services

import (
	"banyadesk-backend/config"
	"banyadesk-backend/models"
	"banyadesk-backend/utils"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// ReminderService nudges the heads about daily records that sat unverified
// for too long. When Twilio credentials are configured the nudge goes out as
// an SMS; either way every attempt is written to the reminder log.
type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewReminderService(db *gorm.DB) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", s.SendDailyReminders)

	c.Start()
	config.GetLogger().Info("verification reminder scheduler started")
}

func (s *ReminderService) SendDailyReminders() {
	logger := config.GetLogger()
	logger.Info("starting verification reminder processing")

	staleDays := 1
	if env := os.Getenv("REMINDER_STALE_DAYS"); env != "" {
		if d, err := strconv.Atoi(env); err == nil && d > 0 {
			staleDays = d
		}
	}
	cutoff := time.Now().AddDate(0, 0, -staleDays)

	reader := GormRecordReader{DB: s.db}
	stale, err := reader.StaleUnverified(cutoff)
	if err != nil {
		config.LogError(logger, "services", "SendDailyReminders", "list stale records", nil, err)
		return
	}
	if len(stale) == 0 {
		logger.Info("no stale unverified records")
		return
	}

	recipients := headPhoneNumbers()
	message := buildReminderMessage(stale)

	for _, record := range stale {
		if len(recipients) == 0 {
			s.logReminder(record, "", "none", "skipped", "no head phone numbers configured", message)
			continue
		}
		for _, recipient := range recipients {
			s.sendReminder(record, recipient, message)
		}
	}

	logger.Info("verification reminder processing completed")
}

func headPhoneNumbers() []string {
	raw := strings.Split(os.Getenv("HEAD_PHONE_NUMBERS"), ",")
	numbers := make([]string, 0, len(raw))
	for _, number := range raw {
		number = strings.TrimSpace(number)
		if number == "" || !utils.ValidatePhone(number) {
			continue
		}
		numbers = append(numbers, number)
	}
	return numbers
}

func buildReminderMessage(stale []models.ClientRecord) string {
	days := make([]string, 0, len(stale))
	seen := make(map[string]bool)
	for _, record := range stale {
		if seen[record.Date] {
			continue
		}
		seen[record.Date] = true
		days = append(days, record.Date)
	}
	return fmt.Sprintf("BanyaDesk: %d daily record(s) still await verification (%s)", len(stale), strings.Join(days, ", "))
}

func (s *ReminderService) sendReminder(record models.ClientRecord, recipient, message string) {
	logger := config.GetLogger()

	if os.Getenv("TWILIO_ACCOUNT_SID") == "" {
		s.logReminder(record, recipient, "none", "skipped", "twilio not configured", message)
		return
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(recipient)
	params.SetBody(message)
	params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))

	resp, err := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""

	if err != nil {
		config.LogError(logger, "services", "sendReminder", "twilio send", recipient, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		logger.WithField("sid", *resp.Sid).Info("reminder sent")
	}

	s.logReminder(record, recipient, "sms", status, errorMsg, message)
}

func (s *ReminderService) logReminder(record models.ClientRecord, recipient, channel, status, errorMsg, message string) {
	entry := models.ReminderLog{
		RecordType:   "clients",
		RecordID:     record.ID,
		Recipient:    recipient,
		Message:      message,
		Channel:      channel,
		Status:       status,
		ErrorMessage: errorMsg,
		SentAt:       time.Now(),
	}
	if err := s.db.Create(&entry).Error; err != nil {
		config.LogError(config.GetLogger(), "services", "logReminder", "create reminder log", record.ID, err)
	}
}
