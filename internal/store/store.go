package store

import (
	"time"

	"gorm.io/gorm"

	"github.com/mkhattab22/Schedule/internal/models"
)

// ShiftStore persists shift batches and upload history. All date lookups
// match the UTC calendar day with a half-open range, never the exact stored
// timestamp.
type ShiftStore struct {
	DB *gorm.DB
}

func NewShiftStore(db *gorm.DB) *ShiftStore {
	return &ShiftStore{DB: db}
}

// SaveBatch replaces the given day's shifts with the new batch and records
// the upload, in one transaction. Re-uploading a date replaces its prior
// set; upload history keeps every ingestion.
func (s *ShiftStore) SaveBatch(date time.Time, shifts []models.Shift, upload models.Upload) error {
	start, end := dayRange(date)
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("date >= ? AND date < ?", start, end).Delete(&models.Shift{}).Error; err != nil {
			return err
		}
		if len(shifts) > 0 {
			if err := tx.Create(&shifts).Error; err != nil {
				return err
			}
		}
		return tx.Create(&upload).Error
	})
}

// ByDate returns every shift on the given UTC calendar day. A day with no
// uploads yields an empty slice, not an error.
func (s *ShiftStore) ByDate(date time.Time) ([]models.Shift, error) {
	start, end := dayRange(date)
	shifts := make([]models.Shift, 0)
	err := s.DB.
		Where("date >= ? AND date < ?", start, end).
		Order("created_at asc").
		Find(&shifts).Error
	return shifts, err
}

// Confirm marks the matching shifts confirmed with the current time and
// note. When date is nil every shift with the employee id is updated,
// whatever its day; a non-nil date narrows the match to that day. Zero
// matched rows is reported through the count, not as an error.
func (s *ShiftStore) Confirm(employeeID, note string, date *time.Time) (int64, error) {
	now := time.Now().UTC()
	query := s.DB.Model(&models.Shift{}).Where("employee_id = ?", employeeID)
	if date != nil {
		start, end := dayRange(*date)
		query = query.Where("date >= ? AND date < ?", start, end)
	}

	result := query.Updates(map[string]any{
		"confirmed":    true,
		"confirmed_at": now,
		"note":         note,
	})
	return result.RowsAffected, result.Error
}

// Uploads returns the upload history, most recent schedule date first.
func (s *ShiftStore) Uploads() ([]models.Upload, error) {
	uploads := make([]models.Upload, 0)
	err := s.DB.Order("date desc").Find(&uploads).Error
	return uploads, err
}

func dayRange(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.Add(24 * time.Hour)
}
