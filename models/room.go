package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Room categories.
const (
	CategoryEconomy      = "Economy"
	CategoryDeluxe       = "Deluxe"
	CategoryExecutive    = "Executive"
	CategoryPresidential = "Presidential"
)

// Room is identified by (hotel, room number) — room numbers repeat across
// hotels.
type Room struct {
	HotelID    uint `gorm:"primaryKey;autoIncrement:false;column:hotel_id" json:"hotelId"`
	RoomNumber int  `gorm:"primaryKey;autoIncrement:false;column:room_number" json:"roomNumber"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Category     string          `gorm:"size:32" json:"category"`
	MaxOccupancy int             `gorm:"column:max_occupancy" json:"maxOccupancy"`
	NightlyRate  decimal.Decimal `gorm:"type:decimal(10,2);column:nightly_rate" json:"nightlyRate"`

	// Dedicated staff are set only while a Presidential room is occupied and
	// cleared exactly once on checkout.
	DedicatedRoomServiceID *uint `gorm:"column:dedicated_room_service_id" json:"dedicatedRoomServiceId,omitempty"`
	DedicatedCateringID    *uint `gorm:"column:dedicated_catering_id" json:"dedicatedCateringId,omitempty"`

	Hotel Hotel `gorm:"foreignKey:HotelID" json:"-"`
}

func ValidCategory(c string) bool {
	switch c {
	case CategoryEconomy, CategoryDeluxe, CategoryExecutive, CategoryPresidential:
		return true
	}
	return false
}
