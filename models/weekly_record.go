package models

import "time"

// WeeklyRecord holds the boss-level bonus and pre-booking figures for one
// week. Date is always the Monday of the ISO week; there is exactly one row
// per week start, enforced by the upsert in the weekly controller.
type WeeklyRecord struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Date string `gorm:"uniqueIndex;not null" json:"date"`

	StaffBonus          float64 `gorm:"default:0" json:"staffBonus"`
	OnDeskBonus         float64 `gorm:"default:0" json:"onDeskBonus"`
	VoucherSalesBonus   float64 `gorm:"default:0" json:"voucherSalesBonus"`
	PrivateBookingBonus float64 `gorm:"default:0" json:"privateBookingBonus"`

	PreBookedValueNextWeek  float64 `gorm:"default:0" json:"preBookedValueNextWeek"`
	PreBookedPeopleNextWeek int     `gorm:"default:0" json:"preBookedPeopleNextWeek"`

	CreatedBy  string `json:"createdBy"`
	Status     Status `gorm:"type:varchar(20);default:'edited'" json:"status"`
	IsVerified bool   `gorm:"default:false" json:"isVerified"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
