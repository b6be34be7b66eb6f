package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	nameColumn = "Full Name"
	idColumn   = "ID"
)

var (
	// ErrMissingTimeColumn is returned when no column header carries a date.
	ErrMissingTimeColumn = errors.New("could not find start time column with date header")
	// ErrMissingRequiredField is returned when any row lacks a name, id or
	// start time. The whole batch fails; there is no partial ingestion.
	ErrMissingRequiredField = errors.New("missing required field")
)

// ShiftRow is one validated, normalized roster row, not yet persisted.
type ShiftRow struct {
	Name       string
	EmployeeID string
	StartTime  string
}

// Ingest validates roster rows against the located start-time column and
// returns the normalized batch plus the date shared by every row. The first
// header matching the date pattern, in sheet order, is the start-time
// column; further matches are ignored.
func Ingest(headers []string, rows []map[string]string) ([]ShiftRow, time.Time, error) {
	timeColumn := ""
	for _, header := range headers {
		if MatchesHeaderDate(header) {
			timeColumn = header
			break
		}
	}
	if timeColumn == "" {
		return nil, time.Time{}, ErrMissingTimeColumn
	}

	date, err := ParseHeaderDate(timeColumn)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("could not parse date from header %q: %w", timeColumn, err)
	}

	shifts := make([]ShiftRow, 0, len(rows))
	for i, row := range rows {
		name := strings.TrimSpace(row[nameColumn])
		employeeID := strings.TrimSpace(row[idColumn])
		start := strings.TrimSpace(row[timeColumn])

		// Row numbering is how a spreadsheet user sees it: headers are row 1.
		switch {
		case name == "":
			return nil, time.Time{}, fmt.Errorf("row %d: %w: %q", i+2, ErrMissingRequiredField, nameColumn)
		case employeeID == "":
			return nil, time.Time{}, fmt.Errorf("row %d: %w: %q", i+2, ErrMissingRequiredField, idColumn)
		case start == "":
			return nil, time.Time{}, fmt.Errorf("row %d: %w: start time", i+2, ErrMissingRequiredField)
		}

		shifts = append(shifts, ShiftRow{
			Name:       name,
			EmployeeID: employeeID,
			StartTime:  NormalizeStart(start),
		})
	}

	return shifts, date, nil
}
