package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"reservation-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CardDetails accompany a Card payment; all three fields are required
// together.
type CardDetails struct {
	CardType       string
	CardNumber     string
	BillingAddress string
}

func (c *CardDetails) complete() bool {
	return c != nil &&
		strings.TrimSpace(c.CardType) != "" &&
		strings.TrimSpace(c.CardNumber) != "" &&
		strings.TrimSpace(c.BillingAddress) != ""
}

// ReservationService orchestrates check-in and checkout. Each operation is
// one transaction: every statement succeeds or the whole unit rolls back
// and, for check-in, the stay never existed.
type ReservationService struct {
	DB      *gorm.DB
	Billing *BillingService
}

func NewReservationService(db *gorm.DB, billing *BillingService) *ReservationService {
	return &ReservationService{DB: db, Billing: billing}
}

// CheckIn validates, inserts the open stay, and for Presidential rooms
// tries to dedicate a Room Service + Catering pair. If no free pair exists
// the check-in still succeeds with both dedicated fields null — the room
// then reports unavailable to further prospective guests, but the current
// one is already in.
func (s *ReservationService) CheckIn(
	hotelID uint,
	roomNumber int,
	customerID uint,
	numGuests int,
	paymentMethod string,
	card *CardDetails,
) (*models.Stay, error) {

	switch paymentMethod {
	case models.PaymentCash:
	case models.PaymentCard:
		if !card.complete() {
			return nil, ErrCardDetailsMissing
		}
	default:
		return nil, ErrInvalidPaymentMethod
	}

	var stay models.Stay

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var hotel models.Hotel
		if err := tx.First(&hotel, hotelID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrHotelNotFound
			}
			return err
		}

		var customer models.Customer
		if err := tx.First(&customer, customerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCustomerNotFound
			}
			return err
		}

		// Lock the room row so concurrent check-ins for the same room
		// serialize: the occupancy re-check below and the stay insert are
		// not racing.
		var room models.Room
		if err := lockForUpdate(tx).
			Where("hotel_id = ? AND room_number = ?", hotelID, roomNumber).
			First(&room).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return err
		}

		if numGuests < 1 || numGuests > room.MaxOccupancy {
			return ErrOccupancyExceeded
		}
		occupied, err := roomOccupied(tx, hotelID, roomNumber)
		if err != nil {
			return err
		}
		if occupied {
			return ErrRoomOccupied
		}

		now := time.Now().UTC()
		stay = models.Stay{
			ReferenceCode: uuid.NewString(),
			HotelID:       hotelID,
			RoomNumber:    roomNumber,
			CustomerID:    customerID,
			StartDate:     now,
			CheckInTime:   now,
			NumGuests:     numGuests,
			PaymentMethod: paymentMethod,
		}
		if paymentMethod == models.PaymentCard {
			stay.CardType = &card.CardType
			stay.CardNumber = &card.CardNumber
			stay.BillingAddress = &card.BillingAddress
		}

		if err := tx.Create(&stay).Error; err != nil {
			return err
		}

		if room.Category == models.CategoryPresidential {
			rsID, rsOK, err := firstAvailableStaff(tx, hotelID, models.JobRoomService)
			if err != nil {
				return err
			}
			catID, catOK, err := firstAvailableStaff(tx, hotelID, models.JobCatering)
			if err != nil {
				return err
			}
			// Dedicated fields are both-or-nothing: a lone Room Service
			// staff without a Catering counterpart stays in the pool.
			if rsOK && catOK {
				assigned, err := assignDedicatedStaff(tx, hotelID, roomNumber, rsID, catID)
				if err != nil {
					return err
				}
				if !assigned {
					return ErrRoomNotAssigned
				}
			}
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return &stay, nil
}

// CheckOut closes the open stay for the room, releases dedicated staff, and
// bills — all in one transaction. Closing writes check_out_time and
// end_date together; a stay with exactly one of them set never exists.
func (s *ReservationService) CheckOut(hotelID uint, roomNumber int) (*models.Receipt, error) {
	var receipt *models.Receipt

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var stay models.Stay
		if err := lockForUpdate(tx).
			Where("hotel_id = ? AND room_number = ? AND check_out_time IS NULL", hotelID, roomNumber).
			First(&stay).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoOpenStay
			}
			return err
		}

		now := time.Now().UTC()
		if err := tx.Model(&stay).Updates(map[string]interface{}{
			"check_out_time": now,
			"end_date":       now,
		}).Error; err != nil {
			return err
		}
		stay.CheckOutTime = &now
		stay.EndDate = &now

		// Unconditional: clears the fields whether or not this was a
		// Presidential stay, and stays a no-op when they were already null.
		// A failure here aborts the checkout so the close and the release
		// commit together or not at all.
		if err := releaseDedicatedStaff(tx, hotelID, roomNumber); err != nil {
			return err
		}

		r, err := s.Billing.receiptTx(tx, &stay)
		if err != nil {
			return err
		}
		receipt = r
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return receipt, nil
}

// OpenStays lists current occupancies, newest first.
func (s *ReservationService) OpenStays() ([]models.Stay, error) {
	var stays []models.Stay
	if err := s.DB.
		Preload("Customer").
		Where("check_out_time IS NULL").
		Order("check_in_time DESC").
		Find(&stays).Error; err != nil {
		return nil, fmt.Errorf("failed to list open stays: %w", err)
	}
	return stays, nil
}
