package services

import (
	"errors"
	"fmt"
	"strings"

	"reservation-backend/models"

	"gorm.io/gorm"
)

// StaffField is the closed set of columns the generic staff update may
// touch.
type StaffField int

const (
	StaffFieldFullName StaffField = iota
	StaffFieldJobTitle
	StaffFieldPhone
	StaffFieldHotel
)

// ParseStaffField maps API field names onto the variant.
func ParseStaffField(name string) (StaffField, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fullname", "full_name", "name":
		return StaffFieldFullName, nil
	case "jobtitle", "job_title", "title":
		return StaffFieldJobTitle, nil
	case "phone":
		return StaffFieldPhone, nil
	case "hotel", "hotel_id", "hotelid":
		return StaffFieldHotel, nil
	}
	return 0, ErrInvalidStaffField
}

type StaffService struct {
	DB *gorm.DB
}

func NewStaffService(db *gorm.DB) *StaffService {
	return &StaffService{DB: db}
}

func (s *StaffService) CreateStaff(fullName, jobTitle, phone string, hotelID *uint) (*models.Staff, error) {
	if !models.ValidJobTitle(jobTitle) {
		return nil, ErrInvalidJobTitle
	}

	staff := models.Staff{
		FullName: fullName,
		JobTitle: jobTitle,
		Phone:    phone,
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if hotelID != nil {
			var n int64
			if err := tx.Model(&models.Hotel{}).Where("id = ?", *hotelID).Count(&n).Error; err != nil {
				return err
			}
			if n == 0 {
				return ErrHotelNotFound
			}
			staff.HotelID = hotelID
		}
		return tx.Create(&staff).Error
	})
	if txErr != nil {
		return nil, txErr
	}
	return &staff, nil
}

func (s *StaffService) GetStaff(hotelID *uint) ([]models.Staff, error) {
	q := s.DB.Order("id ASC")
	if hotelID != nil {
		q = q.Where("hotel_id = ?", *hotelID)
	}
	var staff []models.Staff
	if err := q.Find(&staff).Error; err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	return staff, nil
}

// UpdateStaff changes one field. Role and hotel changes are refused while
// the staff member is a room's dedicated staff or a hotel's manager —
// manager moves go through the hotel's manager-change path.
func (s *StaffService) UpdateStaff(staffID uint, field StaffField, value string, hotelID *uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var staff models.Staff
		if err := tx.First(&staff, staffID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStaffNotFound
			}
			return err
		}

		if field == StaffFieldJobTitle || field == StaffFieldHotel {
			dedicated, err := staffDedicated(tx, staffID)
			if err != nil {
				return err
			}
			if dedicated {
				return ErrStaffDedicated
			}
			manages, err := staffManagesHotel(tx, staffID)
			if err != nil {
				return err
			}
			if manages {
				return ErrStaffManagesHotel
			}
		}

		switch field {
		case StaffFieldFullName:
			return tx.Model(&staff).Update("full_name", value).Error
		case StaffFieldJobTitle:
			if !models.ValidJobTitle(value) {
				return ErrInvalidJobTitle
			}
			return tx.Model(&staff).Update("job_title", value).Error
		case StaffFieldPhone:
			return tx.Model(&staff).Update("phone", value).Error
		case StaffFieldHotel:
			if hotelID != nil {
				var n int64
				if err := tx.Model(&models.Hotel{}).Where("id = ?", *hotelID).Count(&n).Error; err != nil {
					return err
				}
				if n == 0 {
					return ErrHotelNotFound
				}
			}
			return tx.Model(&staff).Update("hotel_id", hotelID).Error
		}
		return ErrInvalidStaffField
	})
}

// DeleteStaff removes a staff member; their service history keeps its rows
// with staff_id nulled. Managers and currently-dedicated staff are refused.
func (s *StaffService) DeleteStaff(staffID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var staff models.Staff
		if err := tx.First(&staff, staffID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStaffNotFound
			}
			return err
		}

		manages, err := staffManagesHotel(tx, staffID)
		if err != nil {
			return err
		}
		if manages {
			return ErrStaffManagesHotel
		}
		dedicated, err := staffDedicated(tx, staffID)
		if err != nil {
			return err
		}
		if dedicated {
			return ErrStaffDedicated
		}

		if err := tx.Model(&models.ProvidedService{}).
			Where("staff_id = ?", staffID).
			Update("staff_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&staff).Error
	})
}

// Guard reads report errors: a failed count must block the mutation, not
// wave it through.

func staffDedicated(db *gorm.DB, staffID uint) (bool, error) {
	var n int64
	err := db.Model(&models.Room{}).
		Where("dedicated_room_service_id = ? OR dedicated_catering_id = ?", staffID, staffID).
		Count(&n).Error
	return n > 0, err
}

func staffManagesHotel(db *gorm.DB, staffID uint) (bool, error) {
	var n int64
	err := db.Model(&models.Hotel{}).Where("manager_id = ?", staffID).Count(&n).Error
	return n > 0, err
}
