package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func utcDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestParseHeaderDate(t *testing.T) {
	cases := []struct {
		name   string
		header string
		want   time.Time
	}{
		{"full form", "Sun, July 14th, 2025", utcDate(2025, time.July, 14)},
		{"no ordinal suffix", "Sat, March 1, 2025", utcDate(2025, time.March, 1)},
		{"ordinal st", "Sat, March 1st, 2025", utcDate(2025, time.March, 1)},
		{"no commas", "Mon January 2nd 2023", utcDate(2023, time.January, 2)},
		{"abbreviated month", "Fri, Dec 25th, 2026", utcDate(2026, time.December, 25)},
		{"embedded in longer text", "Start Time Sun, July 14th, 2025 (shift)", utcDate(2025, time.July, 14)},
		{"wrong weekday still accepted", "Tue, July 14th, 2025", utcDate(2025, time.July, 14)},
		{"wrong suffix still accepted", "Sun, July 14nd, 2025", utcDate(2025, time.July, 14)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseHeaderDate(tc.header)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestParseHeaderDateFailures(t *testing.T) {
	cases := []struct {
		name   string
		header string
	}{
		{"garbage", "not a date"},
		{"empty", ""},
		{"just a name", "Full Name"},
		{"unknown month", "Sun, Julember 14th, 2025"},
		{"day out of range", "Tue, April 31st, 2025"},
		{"two digit year", "Sun, July 14th, 25"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseHeaderDate(tc.header)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidHeaderFormat)
		})
	}
}

func TestMatchesHeaderDate(t *testing.T) {
	assert.True(t, MatchesHeaderDate("Sun, July 14th, 2025"))
	assert.False(t, MatchesHeaderDate("ID"))
	assert.False(t, MatchesHeaderDate("Full Name"))
}
