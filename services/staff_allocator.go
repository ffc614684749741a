package services

import (
	"errors"

	"reservation-backend/models"

	"gorm.io/gorm"
)

// notDedicatedCond filters out staff currently held as a room's dedicated
// Room Service or Catering staff. Written as NOT EXISTS rather than NOT IN:
// the dedicated columns are nullable and NOT IN over NULLs matches nothing.
const notDedicatedCond = "NOT EXISTS (SELECT 1 FROM rooms WHERE rooms.dedicated_room_service_id = staffs.id OR rooms.dedicated_catering_id = staffs.id)"

// StaffAllocator resolves dedicated staff for Presidential rooms at
// check-in time from the live pool of currently undedicated staff: greedy,
// non-preemptive, first-fit within one hotel. The same staff member can
// serve different Presidential rooms across sequential stays.
type StaffAllocator struct {
	DB *gorm.DB
}

func NewStaffAllocator(db *gorm.DB) *StaffAllocator {
	return &StaffAllocator{DB: db}
}

// FirstAvailableStaff returns the lowest-ID staff member at the hotel with
// the given role who is not dedicated to any room. Lowest-ID-first keeps
// allocation deterministic. An empty pool is (0, false, nil); only real
// store failures come back as errors.
func (a *StaffAllocator) FirstAvailableStaff(hotelID uint, role string) (uint, bool, error) {
	return firstAvailableStaff(a.DB, hotelID, role)
}

// AssignDedicatedStaff sets both dedicated fields on the room, guarded by
// the existence of an open stay: dedicating staff to an unoccupied room is
// a no-op, reported as false.
func (a *StaffAllocator) AssignDedicatedStaff(hotelID uint, roomNumber int, roomServiceID, cateringID uint) (bool, error) {
	return assignDedicatedStaff(a.DB, hotelID, roomNumber, roomServiceID, cateringID)
}

// ReleaseDedicatedStaff unconditionally clears both dedicated fields.
// Idempotent; called once per checkout.
func (a *StaffAllocator) ReleaseDedicatedStaff(hotelID uint, roomNumber int) error {
	return releaseDedicatedStaff(a.DB, hotelID, roomNumber)
}

// Package-level variants run against a caller-supplied handle so the
// reservation manager can invoke them inside its own transaction.

func firstAvailableStaff(db *gorm.DB, hotelID uint, role string) (uint, bool, error) {
	var st models.Staff
	err := db.
		Where("hotel_id = ? AND job_title = ?", hotelID, role).
		Where(notDedicatedCond).
		Order("id ASC").
		First(&st).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return st.ID, true, nil
}

func hasUndedicatedStaff(db *gorm.DB, hotelID uint, role string) bool {
	var n int64
	db.Model(&models.Staff{}).
		Where("hotel_id = ? AND job_title = ?", hotelID, role).
		Where(notDedicatedCond).
		Count(&n)
	return n > 0
}

func assignDedicatedStaff(db *gorm.DB, hotelID uint, roomNumber int, roomServiceID, cateringID uint) (bool, error) {
	res := db.Model(&models.Room{}).
		Where("hotel_id = ? AND room_number = ?", hotelID, roomNumber).
		Where("EXISTS (SELECT 1 FROM stays WHERE stays.hotel_id = ? AND stays.room_number = ? AND stays.check_out_time IS NULL)", hotelID, roomNumber).
		Updates(map[string]interface{}{
			"dedicated_room_service_id": roomServiceID,
			"dedicated_catering_id":     cateringID,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func releaseDedicatedStaff(db *gorm.DB, hotelID uint, roomNumber int) error {
	return db.Model(&models.Room{}).
		Where("hotel_id = ? AND room_number = ?", hotelID, roomNumber).
		Updates(map[string]interface{}{
			"dedicated_room_service_id": nil,
			"dedicated_catering_id":     nil,
		}).Error
}
