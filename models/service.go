package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service names. Phone and Special Request can be provided by staff of any
// title; Room Service and Catering require the matching title (or Manager).
const (
	ServiceRoomService    = "Room Service"
	ServiceCatering       = "Catering"
	ServicePhone          = "Phone"
	ServiceSpecialRequest = "Special Request"
)

type ServiceType struct {
	Name string          `gorm:"primaryKey;size:64" json:"name"`
	Cost decimal.Decimal `gorm:"type:decimal(10,2)" json:"cost"`

	UpdatedAt time.Time `json:"-"`
}

type ProvidedService struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"createdAt"`

	StayID uint `gorm:"index" json:"stayId"`
	// Nullable so deleting a staff member keeps the billing history.
	StaffID     *uint  `gorm:"index" json:"staffId,omitempty"`
	ServiceName string `gorm:"size:64;index" json:"serviceName"`

	Stay  Stay   `gorm:"foreignKey:StayID" json:"-"`
	Staff *Staff `gorm:"foreignKey:StaffID" json:"-"`
}

func ValidServiceName(n string) bool {
	switch n {
	case ServiceRoomService, ServiceCatering, ServicePhone, ServiceSpecialRequest:
		return true
	}
	return false
}
