package models

import (
	"errors"
	"time"
)

// Head overlay records: figures the head role maintains on top of the
// reception-submitted daily records. Each subsection carries its own status
// and is verified independently.

const (
	SectionFnb        = "fnb"
	SectionTreatments = "treatments"
	SectionPrebooked  = "prebooked"
	SectionBonuses    = "bonuses"
	SectionOtherCosts = "otherCosts"
)

var ErrUnknownSection = errors.New("unknown record section")

// HeadDaily is one head-maintained day: F&B sales, treatment breakdown and
// the pre-booked load for that day. One row per calendar day.
type HeadDaily struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Date string `gorm:"uniqueIndex;not null" json:"date"`

	FnbSales  float64 `gorm:"default:0" json:"fnbSales"`
	FnbStatus Status  `gorm:"type:varchar(20);default:'pending'" json:"fnbStatus"`

	Treatments       TreatmentMap `gorm:"type:text" json:"treatments"`
	TreatmentsStatus Status       `gorm:"type:varchar(20);default:'pending'" json:"treatmentsStatus"`

	PrebookedPeople int     `gorm:"default:0" json:"prebookedPeople"`
	PrebookedValue  float64 `gorm:"default:0" json:"prebookedValue"`
	PrebookedStatus Status  `gorm:"type:varchar(20);default:'pending'" json:"prebookedStatus"`

	CreatedBy string `json:"createdBy"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SectionStatus returns the status of one subsection.
func (h *HeadDaily) SectionStatus(section string) (Status, error) {
	switch section {
	case SectionFnb:
		return h.FnbStatus, nil
	case SectionTreatments:
		return h.TreatmentsStatus, nil
	case SectionPrebooked:
		return h.PrebookedStatus, nil
	}
	return "", ErrUnknownSection
}

func (h *HeadDaily) SetSectionStatus(section string, status Status) error {
	switch section {
	case SectionFnb:
		h.FnbStatus = status
	case SectionTreatments:
		h.TreatmentsStatus = status
	case SectionPrebooked:
		h.PrebookedStatus = status
	default:
		return ErrUnknownSection
	}
	return nil
}

// HeadWeekly is the head-maintained week: bonus block and other costs.
// Date is the Monday of the ISO week, one row per week start.
type HeadWeekly struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Date string `gorm:"uniqueIndex;not null" json:"date"`

	StaffBonus          float64 `gorm:"default:0" json:"staffBonus"`
	OnDeskBonus         float64 `gorm:"default:0" json:"onDeskBonus"`
	VoucherSalesBonus   float64 `gorm:"default:0" json:"voucherSalesBonus"`
	PrivateBookingBonus float64 `gorm:"default:0" json:"privateBookingBonus"`
	BonusesStatus       Status  `gorm:"type:varchar(20);default:'pending'" json:"bonusesStatus"`

	OtherCosts       float64 `gorm:"default:0" json:"otherCosts"`
	OtherCostsStatus Status  `gorm:"type:varchar(20);default:'pending'" json:"otherCostsStatus"`

	CreatedBy string `json:"createdBy"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (h *HeadWeekly) SectionStatus(section string) (Status, error) {
	switch section {
	case SectionBonuses:
		return h.BonusesStatus, nil
	case SectionOtherCosts:
		return h.OtherCostsStatus, nil
	}
	return "", ErrUnknownSection
}

func (h *HeadWeekly) SetSectionStatus(section string, status Status) error {
	switch section {
	case SectionBonuses:
		h.BonusesStatus = status
	case SectionOtherCosts:
		h.OtherCostsStatus = status
	default:
		return ErrUnknownSection
	}
	return nil
}
