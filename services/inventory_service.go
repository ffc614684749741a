package services

import (
	"reservation-backend/models"

	"gorm.io/gorm"
)

// InventoryService answers point-in-time questions about hotels, rooms and
// customers. Pure reads, no side effects; absence comes back as false, not
// as an error, to keep call sites simple.
type InventoryService struct {
	DB *gorm.DB
}

func NewInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{DB: db}
}

func (s *InventoryService) IsValidHotel(hotelID uint) bool {
	var n int64
	s.DB.Model(&models.Hotel{}).Where("id = ?", hotelID).Count(&n)
	return n > 0
}

func (s *InventoryService) IsValidRoom(hotelID uint, roomNumber int) bool {
	var n int64
	s.DB.Model(&models.Room{}).
		Where("hotel_id = ? AND room_number = ?", hotelID, roomNumber).
		Count(&n)
	return n > 0
}

// IsRoomOccupied is true iff an open stay exists for the room. The two
// close fields are always written together, so testing check_out_time
// alone suffices.
func (s *InventoryService) IsRoomOccupied(hotelID uint, roomNumber int) bool {
	occupied, err := roomOccupied(s.DB, hotelID, roomNumber)
	return err == nil && occupied
}

// IsRoomAvailable: not occupied, and for Presidential rooms additionally an
// undedicated Room Service staff member AND an undedicated Catering staff
// member exist at the hotel. A physically empty Presidential room with no
// free staff pair is reported unavailable.
func (s *InventoryService) IsRoomAvailable(hotelID uint, roomNumber int) bool {
	var room models.Room
	err := s.DB.
		Where("hotel_id = ? AND room_number = ?", hotelID, roomNumber).
		First(&room).Error
	if err != nil {
		// not found or infrastructure trouble: either way, not available
		return false
	}
	occupied, err := roomOccupied(s.DB, hotelID, roomNumber)
	if err != nil || occupied {
		return false
	}
	if room.Category != models.CategoryPresidential {
		return true
	}
	return hasUndedicatedStaff(s.DB, hotelID, models.JobRoomService) &&
		hasUndedicatedStaff(s.DB, hotelID, models.JobCatering)
}

func (s *InventoryService) IsValidCustomer(customerID uint) bool {
	var n int64
	s.DB.Model(&models.Customer{}).Where("id = ?", customerID).Count(&n)
	return n > 0
}

func (s *InventoryService) IsCustomerCurrentlyStaying(customerID uint) bool {
	var n int64
	s.DB.Model(&models.Stay{}).
		Where("customer_id = ? AND check_out_time IS NULL", customerID).
		Count(&n)
	return n > 0
}

// roomOccupied reports the error too: the oracle's bool-only reads swallow
// it, but write-path guards must not proceed on a failed count.
func roomOccupied(db *gorm.DB, hotelID uint, roomNumber int) (bool, error) {
	var n int64
	err := db.Model(&models.Stay{}).
		Where("hotel_id = ? AND room_number = ? AND check_out_time IS NULL", hotelID, roomNumber).
		Count(&n).Error
	return n > 0, err
}
