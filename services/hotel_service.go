package services

import (
	"errors"
	"fmt"

	"reservation-backend/models"

	"gorm.io/gorm"
)

type HotelService struct {
	DB *gorm.DB
}

func NewHotelService(db *gorm.DB) *HotelService {
	return &HotelService{DB: db}
}

func (s *HotelService) CreateHotel(name, address, phone string, managerID *uint) (*models.Hotel, error) {
	hotel := models.Hotel{
		Name:    name,
		Address: address,
		Phone:   phone,
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if managerID != nil {
			var staff models.Staff
			if err := tx.First(&staff, *managerID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrStaffNotFound
				}
				return err
			}
			if staff.JobTitle != models.JobManager {
				return ErrNotAManager
			}
			hotel.ManagerID = managerID
		}
		// Unique address/phone/manager violations surface from the store
		// and are mapped to readable reasons by the controller.
		return tx.Create(&hotel).Error
	})
	if txErr != nil {
		return nil, txErr
	}
	return &hotel, nil
}

func (s *HotelService) GetHotels() ([]models.Hotel, error) {
	var hotels []models.Hotel
	if err := s.DB.Order("id ASC").Find(&hotels).Error; err != nil {
		return nil, fmt.Errorf("failed to list hotels: %w", err)
	}
	for i := range hotels {
		if hotels[i].ManagerID == nil {
			continue
		}
		var mgr models.Staff
		if err := s.DB.First(&mgr, *hotels[i].ManagerID).Error; err == nil {
			hotels[i].Manager = &mgr
		}
	}
	return hotels, nil
}

// ChangeManager is the only sanctioned path for re-pointing a hotel at a
// different manager; the generic staff update refuses to touch managers.
func (s *HotelService) ChangeManager(hotelID, staffID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var hotel models.Hotel
		if err := tx.First(&hotel, hotelID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrHotelNotFound
			}
			return err
		}

		var staff models.Staff
		if err := tx.First(&staff, staffID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStaffNotFound
			}
			return err
		}
		if staff.JobTitle != models.JobManager {
			return ErrNotAManager
		}

		// Unique index on manager_id rejects a manager already running
		// another hotel.
		return tx.Model(&hotel).Update("manager_id", staffID).Error
	})
}

// DeleteHotel removes a hotel and its dependents. Forbidden while any stay
// at the hotel is open; closed-stay history goes with the hotel.
func (s *HotelService) DeleteHotel(hotelID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var hotel models.Hotel
		if err := tx.First(&hotel, hotelID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrHotelNotFound
			}
			return err
		}

		var open int64
		if err := tx.Model(&models.Stay{}).
			Where("hotel_id = ? AND check_out_time IS NULL", hotelID).
			Count(&open).Error; err != nil {
			return err
		}
		if open > 0 {
			return ErrHotelHasOpenStays
		}

		// children first: provided services -> stays -> rooms, then
		// unhome the staff before the hotel row goes.
		if err := tx.
			Where("stay_id IN (?)", tx.Model(&models.Stay{}).Select("id").Where("hotel_id = ?", hotelID)).
			Delete(&models.ProvidedService{}).Error; err != nil {
			return err
		}
		if err := tx.Where("hotel_id = ?", hotelID).Delete(&models.Stay{}).Error; err != nil {
			return err
		}
		if err := tx.Where("hotel_id = ?", hotelID).Delete(&models.Room{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Staff{}).
			Where("hotel_id = ?", hotelID).
			Update("hotel_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&hotel).Error
	})
}
