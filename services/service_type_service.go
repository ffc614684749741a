package services

import (
	"errors"
	"fmt"

	"reservation-backend/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ServiceTypeService struct {
	DB *gorm.DB
}

func NewServiceTypeService(db *gorm.DB) *ServiceTypeService {
	return &ServiceTypeService{DB: db}
}

func (s *ServiceTypeService) GetServiceTypes() ([]models.ServiceType, error) {
	var types []models.ServiceType
	if err := s.DB.Order("name ASC").Find(&types).Error; err != nil {
		return nil, fmt.Errorf("failed to list service types: %w", err)
	}
	return types, nil
}

// UpdateCost changes the going rate for a service. Historical amounts owed
// are untouched unless a stay is re-billed, which always prices from the
// current table.
func (s *ServiceTypeService) UpdateCost(name string, cost decimal.Decimal) error {
	if cost.IsNegative() {
		return ErrInvalidCost
	}
	var st models.ServiceType
	if err := s.DB.First(&st, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrServiceTypeNotFound
		}
		return err
	}
	return s.DB.Model(&st).Update("cost", cost).Error
}
