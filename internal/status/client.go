package status

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mkhattab22/Schedule/internal/models"
)

// Client is a thin HTTP client for the schedule API, used by display
// surfaces to poll confirmation status.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// EmployeesByDate fetches every shift for a UTC calendar day.
func (c *Client) EmployeesByDate(ctx context.Context, date time.Time) ([]models.Shift, error) {
	endpoint := fmt.Sprintf("%s/api/employees/%s", c.BaseURL, date.Format("2006-01-02"))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, c.apiError(resp)
	}

	var shifts []models.Shift
	if err := json.NewDecoder(resp.Body).Decode(&shifts); err != nil {
		return nil, err
	}
	return shifts, nil
}

// Confirm records an employee's confirmation with an optional note.
func (c *Client) Confirm(ctx context.Context, employeeID, note string) error {
	body, err := json.Marshal(map[string]string{
		"employeeId": employeeID,
		"note":       note,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/confirm", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return c.apiError(resp)
	}
	return nil
}

func (c *Client) apiError(resp *http.Response) error {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Error != "" {
		return fmt.Errorf("api error (%d): %s", resp.StatusCode, payload.Error)
	}
	return fmt.Errorf("api error (%d)", resp.StatusCode)
}
