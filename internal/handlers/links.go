package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
)

type employeeLink struct {
	Name       string `json:"name"`
	EmployeeID string `json:"employeeId"`
	URL        string `json:"url"`
}

// Links builds the shareable schedule link for a day plus one messaging deep
// link per employee. The deep link wraps the employee's confirmation URL in
// a wa.me share URL with a pre-filled message; nothing is sent by the
// server.
func (h *ScheduleHandler) Links(c *gin.Context) {
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

	dateStr := date.Format("2006-01-02")
	shareLink := fmt.Sprintf("%s/?schedule=%s", h.BaseURL, dateStr)

	links := make([]employeeLink, 0, len(shifts))
	for _, shift := range shifts {
		confirmURL := fmt.Sprintf("%s/?id=%s", h.BaseURL, url.QueryEscape(shift.EmployeeID))
		text := fmt.Sprintf("Confirm your shift %s - %s", shift.Name, confirmURL)
		links = append(links, employeeLink{
			Name:       shift.Name,
			EmployeeID: shift.EmployeeID,
			URL:        "https://wa.me/?text=" + url.QueryEscape(text),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"date":      dateStr,
		"shareLink": shareLink,
		"links":     links,
	})
}
