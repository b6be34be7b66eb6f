package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/mkhattab22/Schedule/internal/models"
	"github.com/mkhattab22/Schedule/internal/schedule"
	"github.com/mkhattab22/Schedule/internal/store"
)

type ScheduleHandler struct {
	Store     *store.ShiftStore
	UploadDir string
	BaseURL   string
}

type confirmRequest struct {
	EmployeeID string `json:"employeeId" binding:"required"`
	Note       string `json:"note"`
	Date       string `json:"date"`
}

func NewScheduleHandler(shiftStore *store.ShiftStore, uploadDir, baseURL string) *ScheduleHandler {
	return &ScheduleHandler{Store: shiftStore, UploadDir: uploadDir, BaseURL: baseURL}
}

// Upload ingests a roster spreadsheet. The date embedded in the start-time
// column header is authoritative; the optional message and date form fields
// are accepted for the admin surface but do not steer ingestion.
func (h *ScheduleHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		// Every upload failure is a 500 with a readable message, the
		// missing file included; admin clients key off that shape.
		c.JSON(http.StatusInternalServerError, gin.H{"error": "file is required"})
		return
	}

	uploaded, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read uploaded file"})
		return
	}
	defer func() { _ = uploaded.Close() }()

	headers, rows, err := schedule.ReadWorkbook(uploaded)
	if err != nil {
		logrus.WithError(err).Warn("upload rejected: unreadable workbook")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	shiftRows, date, err := schedule.Ingest(headers, rows)
	if err != nil {
		logrus.WithError(err).Warn("upload rejected")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	shifts := make([]models.Shift, 0, len(shiftRows))
	for _, row := range shiftRows {
		shifts = append(shifts, models.Shift{
			Name:       row.Name,
			EmployeeID: row.EmployeeID,
			Date:       date,
			StartTime:  row.StartTime,
		})
	}

	storedName := uuid.NewString() + filepath.Ext(fileHeader.Filename)
	storedPath := filepath.Join(h.UploadDir, storedName)
	if err := os.MkdirAll(h.UploadDir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store uploaded file"})
		return
	}
	if err := c.SaveUploadedFile(fileHeader, storedPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store uploaded file"})
		return
	}

	upload := models.Upload{
		Date:       date,
		Filename:   storedName,
		UploadDate: time.Now().UTC(),
	}
	if err := h.Store.SaveBatch(date, shifts, upload); err != nil {
		// No upload record references the artifact; don't leave it behind.
		_ = os.Remove(storedPath)
		logrus.WithError(err).Error("upload failed: could not persist batch")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save schedule"})
		return
	}

	logrus.WithFields(logrus.Fields{
		"date":  date.Format("2006-01-02"),
		"count": len(shifts),
	}).Info("schedule uploaded")

	c.JSON(http.StatusOK, gin.H{
		"message": "File processed successfully",
		"count":   len(shifts),
		"date":    date.Format(time.RFC3339),
	})
}

// ListByDate returns every shift for a YYYY-MM-DD calendar day.
func (h *ScheduleHandler) ListByDate(c *gin.Context) {
	date, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	shifts, err := h.Store.ByDate(date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load shifts"})
		return
	}
	c.JSON(http.StatusOK, shifts)
}

// ListUploads returns the upload history, most recent date first.
func (h *ScheduleHandler) ListUploads(c *gin.Context) {
	uploads, err := h.Store.Uploads()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load uploads"})
		return
	}
	c.JSON(http.StatusOK, uploads)
}

// Confirm marks an employee's shift confirmed. An unknown employee id is not
// an error; the caller sees success with zero rows updated. The optional
// date scopes the update to one day, otherwise every shift with that id is
// updated.
func (h *ScheduleHandler) Confirm(c *gin.Context) {
	var req confirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	var date *time.Time
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}
		date = &parsed
	}

	updated, err := h.Store.Confirm(req.EmployeeID, req.Note, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not confirm shift"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "updated": updated})
}
