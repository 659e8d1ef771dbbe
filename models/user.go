package models

import (
	"banyadesk-backend/utils"
	"fmt"
	"time"

	"gorm.io/gorm"
)

const (
	RoleAdmin = "admin" // reception: daily data entry
	RoleHead  = "head"  // verification authority for daily and weekly sections
	RoleBoss  = "boss"  // weekly bonuses, pre-booked data, period reporting
)

func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleHead || role == RoleBoss
}

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`

	Role string `gorm:"type:varchar(20);not null" json:"role"`

	LastLogin *time.Time `json:"lastLogin"`
	IsActive  bool       `gorm:"default:true" json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Hash the password before the row hits the store.
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if !ValidRole(u.Role) {
		return fmt.Errorf("invalid role %q", u.Role)
	}
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}
