package models

import (
	"time"
)

type Customer struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	FullName    string     `gorm:"size:128" json:"fullName"`
	DateOfBirth *time.Time `gorm:"column:date_of_birth" json:"dateOfBirth,omitempty"`
	Phone       string     `gorm:"size:32" json:"phone"`
	Email       string     `gorm:"size:128" json:"email"`
}
