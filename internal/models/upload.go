package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Upload records one spreadsheet ingestion. The uploaded artifact is kept on
// disk under its stored filename; only the name is surfaced through the API.
type Upload struct {
	ID         uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	Date       time.Time `gorm:"index;not null" json:"date"`
	Filename   string    `gorm:"size:255;not null" json:"filename"`
	UploadDate time.Time `gorm:"not null" json:"uploadDate"`
}

func (u *Upload) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
