package models

import (
	"time"
)

type Hotel struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Name    string `gorm:"size:128" json:"name"`
	Address string `gorm:"size:255;uniqueIndex" json:"address"`
	Phone   string `gorm:"size:32;uniqueIndex" json:"phone"`

	// A staff member manages at most one hotel; NULLs don't collide on the
	// unique index, so hotels without a manager yet are fine. No gorm
	// relation here: hotels<->staffs would be a circular FK under
	// AutoMigrate, so the manager is loaded by the service.
	ManagerID *uint  `gorm:"uniqueIndex" json:"managerId,omitempty"`
	Manager   *Staff `gorm:"-" json:"manager,omitempty"`
}
