package services

import (
	"errors"

	"reservation-backend/models"

	"gorm.io/gorm"
)

// ServiceRecordService validates staff eligibility and records provided
// services against open stays.
type ServiceRecordService struct {
	DB *gorm.DB
}

func NewServiceRecordService(db *gorm.DB) *ServiceRecordService {
	return &ServiceRecordService{DB: db}
}

// eligibleStaffQuery is the single source of truth for eligibility: the
// candidate listing and the insert/update gates all build on it, so what
// the front desk is shown is exactly what the write path accepts.
//
// Eligible: job title matches the service name (Phone and Special Request
// accept any title, Manager matches everything), same hotel as the stay,
// and not dedicated to a different room than the one being served.
func eligibleStaffQuery(db *gorm.DB, hotelID uint, roomNumber int, serviceName string) *gorm.DB {
	q := db.Model(&models.Staff{}).Where("hotel_id = ?", hotelID)

	switch serviceName {
	case models.ServicePhone, models.ServiceSpecialRequest:
		// any job title
	default:
		q = q.Where("job_title IN ?", []string{serviceName, models.JobManager})
	}

	return q.Where(
		"NOT EXISTS (SELECT 1 FROM rooms WHERE (rooms.dedicated_room_service_id = staffs.id OR rooms.dedicated_catering_id = staffs.id) AND NOT (rooms.hotel_id = ? AND rooms.room_number = ?))",
		hotelID, roomNumber,
	)
}

func (s *ServiceRecordService) IsEligible(staffID, hotelID uint, roomNumber int, serviceName string) bool {
	if !models.ValidServiceName(serviceName) {
		return false
	}
	var n int64
	eligibleStaffQuery(s.DB, hotelID, roomNumber, serviceName).
		Where("staffs.id = ?", staffID).
		Count(&n)
	return n > 0
}

// EligibleStaff pre-filters candidates for the front desk, lowest ID first.
func (s *ServiceRecordService) EligibleStaff(hotelID uint, roomNumber int, serviceName string) ([]models.Staff, error) {
	if !models.ValidServiceName(serviceName) {
		return nil, ErrInvalidServiceName
	}
	var staff []models.Staff
	if err := eligibleStaffQuery(s.DB, hotelID, roomNumber, serviceName).
		Order("id ASC").
		Find(&staff).Error; err != nil {
		return nil, err
	}
	return staff, nil
}

// EnterService records a provided service against the room's open stay,
// re-checking eligibility inside the transaction.
func (s *ServiceRecordService) EnterService(hotelID uint, roomNumber int, staffID uint, serviceName string) (*models.ProvidedService, error) {
	if !models.ValidServiceName(serviceName) {
		return nil, ErrInvalidServiceName
	}

	var record models.ProvidedService
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var stay models.Stay
		if err := tx.
			Where("hotel_id = ? AND room_number = ? AND check_out_time IS NULL", hotelID, roomNumber).
			First(&stay).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoOpenStay
			}
			return err
		}

		var n int64
		eligibleStaffQuery(tx, hotelID, roomNumber, serviceName).
			Where("staffs.id = ?", staffID).
			Count(&n)
		if n == 0 {
			return ErrStaffIneligible
		}

		record = models.ProvidedService{
			StayID:      stay.ID,
			StaffID:     &staffID,
			ServiceName: serviceName,
		}
		return tx.Create(&record).Error
	})
	if txErr != nil {
		return nil, txErr
	}
	return &record, nil
}

// UpdateServiceStaff reassigns an existing record to another staff member,
// gated by the same eligibility predicate as the insert.
func (s *ServiceRecordService) UpdateServiceStaff(recordID, newStaffID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var record models.ProvidedService
		if err := tx.Preload("Stay").First(&record, recordID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrServiceRecordNotFound
			}
			return err
		}

		var n int64
		eligibleStaffQuery(tx, record.Stay.HotelID, record.Stay.RoomNumber, record.ServiceName).
			Where("staffs.id = ?", newStaffID).
			Count(&n)
		if n == 0 {
			return ErrStaffIneligible
		}

		return tx.Model(&record).Update("staff_id", newStaffID).Error
	})
}

// ServicesForStay lists the raw provided-service rows, oldest first.
func (s *ServiceRecordService) ServicesForStay(stayID uint) ([]models.ProvidedService, error) {
	var records []models.ProvidedService
	if err := s.DB.
		Where("stay_id = ?", stayID).
		Order("id ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
