package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Payment methods.
const (
	PaymentCash = "Cash"
	PaymentCard = "Card"
)

// CardTypeHotel is the hotel's own branded card; the only card that earns
// the loyalty discount.
const CardTypeHotel = "HOTEL"

// Stay is append-only apart from two sanctioned mutations: closing
// (CheckOutTime + EndDate written together) and billing (AmountOwed +
// Receipt). A stay with both close fields null is open; both set, closed.
// The pair is never written separately.
type Stay struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	ReferenceCode string `gorm:"size:64;uniqueIndex" json:"referenceCode"`

	HotelID    uint `gorm:"index:idx_stay_room;column:hotel_id" json:"hotelId"`
	RoomNumber int  `gorm:"index:idx_stay_room;column:room_number" json:"roomNumber"`
	CustomerID uint `gorm:"index" json:"customerId"`

	StartDate    time.Time  `gorm:"column:start_date" json:"startDate"`
	CheckInTime  time.Time  `gorm:"column:check_in_time" json:"checkInTime"`
	EndDate      *time.Time `gorm:"column:end_date" json:"endDate,omitempty"`
	CheckOutTime *time.Time `gorm:"column:check_out_time" json:"checkOutTime,omitempty"`

	NumGuests     int    `gorm:"column:num_guests" json:"numGuests"`
	PaymentMethod string `gorm:"size:16;column:payment_method" json:"paymentMethod"`

	// Required together when PaymentMethod is Card, all null otherwise.
	CardType       *string `gorm:"size:32;column:card_type" json:"cardType,omitempty"`
	CardNumber     *string `gorm:"size:32;column:card_number" json:"cardNumber,omitempty"`
	BillingAddress *string `gorm:"size:255;column:billing_address" json:"billingAddress,omitempty"`

	// Computed by the billing calculator, never entered.
	AmountOwed *decimal.Decimal `gorm:"type:decimal(10,2);column:amount_owed" json:"amountOwed,omitempty"`
	Receipt    datatypes.JSON   `gorm:"column:receipt" json:"receipt,omitempty"`

	Customer Customer `gorm:"foreignKey:CustomerID" json:"-"`
}

// Open reports whether the stay still occupies its room.
func (s *Stay) Open() bool {
	return s.CheckOutTime == nil
}
