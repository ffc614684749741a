package services

import (
	"errors"
	"fmt"

	"reservation-backend/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) CreateRoom(hotelID uint, roomNumber int, category string, maxOccupancy int, nightlyRate decimal.Decimal) (*models.Room, error) {
	if !models.ValidCategory(category) {
		return nil, ErrInvalidCategory
	}
	if maxOccupancy < 1 || nightlyRate.IsNegative() {
		return nil, ErrInvalidCost
	}

	room := models.Room{
		HotelID:      hotelID,
		RoomNumber:   roomNumber,
		Category:     category,
		MaxOccupancy: maxOccupancy,
		NightlyRate:  nightlyRate,
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.Hotel{}).Where("id = ?", hotelID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return ErrHotelNotFound
		}
		// composite PK rejects a duplicate (hotel, room number) pair
		return tx.Create(&room).Error
	})
	if txErr != nil {
		return nil, txErr
	}
	return &room, nil
}

func (s *RoomService) GetRooms(hotelID uint) ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.
		Where("hotel_id = ?", hotelID).
		Order("room_number ASC").
		Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

func (s *RoomService) UpdateNightlyRate(hotelID uint, roomNumber int, rate decimal.Decimal) error {
	if rate.IsNegative() {
		return ErrInvalidCost
	}
	var room models.Room
	if err := s.DB.
		Where("hotel_id = ? AND room_number = ?", hotelID, roomNumber).
		First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoomNotFound
		}
		return err
	}
	return s.DB.Model(&room).Update("nightly_rate", rate).Error
}
