package services

import (
	"errors"
	"fmt"
	"time"

	"reservation-backend/models"

	"gorm.io/gorm"
)

type CustomerService struct {
	DB *gorm.DB
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{DB: db}
}

func (s *CustomerService) CreateCustomer(fullName, phone, email string, dateOfBirth *time.Time) (*models.Customer, error) {
	customer := models.Customer{
		FullName:    fullName,
		Phone:       phone,
		Email:       email,
		DateOfBirth: dateOfBirth,
	}
	if err := s.DB.Create(&customer).Error; err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return &customer, nil
}

func (s *CustomerService) GetCustomers() ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.DB.Order("id ASC").Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

// DeleteCustomer refuses while the customer occupies a room; otherwise the
// customer and their closed-stay history go together.
func (s *CustomerService) DeleteCustomer(customerID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.First(&customer, customerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCustomerNotFound
			}
			return err
		}

		var open int64
		if err := tx.Model(&models.Stay{}).
			Where("customer_id = ? AND check_out_time IS NULL", customerID).
			Count(&open).Error; err != nil {
			return err
		}
		if open > 0 {
			return ErrCustomerHasOpenStay
		}

		if err := tx.
			Where("stay_id IN (?)", tx.Model(&models.Stay{}).Select("id").Where("customer_id = ?", customerID)).
			Delete(&models.ProvidedService{}).Error; err != nil {
			return err
		}
		if err := tx.Where("customer_id = ?", customerID).Delete(&models.Stay{}).Error; err != nil {
			return err
		}
		return tx.Delete(&customer).Error
	})
}
