package schedule

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatClock converts an Excel serial time, a fraction of a 24-hour day,
// into a 12-hour clock string like "9:00 AM". Hours are truncated first and
// minutes derived from the remainder; the truncation order matters for
// values just below a minute boundary and must not be replaced by rounding.
func FormatClock(value float64) string {
	hours := int(math.Floor(value * 24))
	minutes := int(math.Floor((value*24 - float64(hours)) * 60))

	meridiem := "AM"
	if hours >= 12 {
		meridiem = "PM"
	}

	displayHours := hours % 12
	if displayHours == 0 {
		displayHours = 12
	}

	return fmt.Sprintf("%d:%02d %s", displayHours, minutes, meridiem)
}

// maxSerial bounds what counts as a serial time cell. ParseFloat also
// accepts "nan", "inf" and astronomically large values, none of which are
// spreadsheet times; those stay text and pass through untouched.
const maxSerial = 1e6

// NormalizeStart turns a raw start-time cell into its display form. Numeric
// cells are decoded as serial times; anything else is treated as already
// formatted and only trimmed.
func NormalizeStart(cell string) string {
	trimmed := strings.TrimSpace(cell)
	value, err := strconv.ParseFloat(trimmed, 64)
	if err == nil && !math.IsNaN(value) && !math.IsInf(value, 0) && math.Abs(value) < maxSerial {
		return FormatClock(value)
	}
	return trimmed
}
