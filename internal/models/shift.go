package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Shift is one employee's scheduled entry for a calendar day. Date is stored
// at UTC midnight; the day, not a timestamp, is what callers match on.
type Shift struct {
	ID          uuid.UUID  `gorm:"type:char(36);primaryKey" json:"id"`
	Name        string     `gorm:"size:255;not null" json:"name"`
	EmployeeID  string     `gorm:"size:120;index;not null" json:"employeeId"`
	Date        time.Time  `gorm:"index;not null" json:"date"`
	StartTime   string     `gorm:"size:50;not null" json:"startTime"`
	Confirmed   bool       `gorm:"not null;default:false" json:"confirmed"`
	ConfirmedAt *time.Time `json:"timestamp"`
	Note        string     `gorm:"size:500" json:"note"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func (s *Shift) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
