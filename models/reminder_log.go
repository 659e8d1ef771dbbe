package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReminderLog records every verification reminder the scheduler attempted,
// sent or not.
type ReminderLog struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RecordType   string    `gorm:"type:varchar(20)" json:"recordType"` // clients, weekly-data
	RecordID     uint      `gorm:"index" json:"recordId"`
	Recipient    string    `json:"recipient"`
	Message      string    `gorm:"type:text" json:"message"`
	Channel      string    `gorm:"type:varchar(20)" json:"channel"` // sms, whatsapp, none
	Status       string    `gorm:"type:varchar(20)" json:"status"`  // sent, failed, skipped
	ErrorMessage string    `gorm:"type:text" json:"errorMessage"`
	SentAt       time.Time `json:"sentAt"`

	CreatedAt time.Time `json:"createdAt"`
}

func (r *ReminderLog) BeforeCreate(tx *gorm.DB) (err error) {
	r.ID = uuid.New()
	return
}
