package models

import (
	"time"
)

// Account is a front-desk login, not a Staff row: staff are domain entities
// (allocation, eligibility), accounts are API credentials.
type Account struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	FullName string `gorm:"size:128" json:"fullName"`
	Username string `gorm:"size:128;uniqueIndex" json:"username"`
	Password string `gorm:"size:128" json:"-"`
}
