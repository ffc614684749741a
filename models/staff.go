package models

import (
	"time"
)

// Job titles. Managers are additionally eligible for any service name.
const (
	JobManager     = "Manager"
	JobFrontDesk   = "Front Desk Staff"
	JobRoomService = "Room Service"
	JobCatering    = "Catering"
)

type Staff struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	FullName string `gorm:"size:128" json:"fullName"`
	JobTitle string `gorm:"size:64;index" json:"jobTitle"`
	Phone    string `gorm:"size:32" json:"phone"`

	// Nullable: staff can exist before being placed at a hotel.
	HotelID *uint  `gorm:"index" json:"hotelId,omitempty"`
	Hotel   *Hotel `gorm:"foreignKey:HotelID" json:"-"`
}

// TableName pins the plural; inflection of "staff" is ambiguous and raw
// subqueries elsewhere rely on it.
func (Staff) TableName() string { return "staffs" }

func ValidJobTitle(t string) bool {
	switch t {
	case JobManager, JobFrontDesk, JobRoomService, JobCatering:
		return true
	}
	return false
}
