package schedule

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidHeaderFormat is returned when a column header does not carry a
// parseable date.
var ErrInvalidHeaderFormat = errors.New("invalid date format in header")

// headerDatePattern matches headers like "Sun, July 14th, 2025": weekday,
// month name, day with optional ordinal suffix, 4-digit year. The weekday
// and suffix are matched but never validated against the date.
var headerDatePattern = regexp.MustCompile(`([A-Za-z]+),?\s+([A-Za-z]+)\s+(\d{1,2})(?:st|nd|rd|th)?,?\s+(\d{4})`)

// MatchesHeaderDate reports whether header contains a date in the expected
// roster-header shape.
func MatchesHeaderDate(header string) bool {
	return headerDatePattern.MatchString(header)
}

// ParseHeaderDate extracts the calendar date from a roster column header and
// resolves it to UTC midnight.
func ParseHeaderDate(header string) (time.Time, error) {
	match := headerDatePattern.FindStringSubmatch(header)
	if match == nil {
		return time.Time{}, ErrInvalidHeaderFormat
	}

	month, ok := monthByName(match[2])
	if !ok {
		return time.Time{}, fmt.Errorf("%w: unknown month %q", ErrInvalidHeaderFormat, match[2])
	}

	day, _ := strconv.Atoi(match[3])
	year, _ := strconv.Atoi(match[4])

	date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if date.Day() != day || date.Month() != month {
		return time.Time{}, fmt.Errorf("%w: no such day %d in %s %d", ErrInvalidHeaderFormat, day, month, year)
	}

	return date, nil
}

func monthByName(name string) (time.Month, bool) {
	for month := time.January; month <= time.December; month++ {
		full := month.String()
		if strings.EqualFold(name, full) || strings.EqualFold(name, full[:3]) {
			return month, true
		}
	}
	return 0, false
}
