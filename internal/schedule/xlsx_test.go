package schedule

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, header string, cells [][]any) *bytes.Reader {
	t.Helper()

	file := excelize.NewFile()
	sheet := file.GetSheetName(0)

	require.NoError(t, file.SetSheetRow(sheet, "A1", &[]any{"Full Name", "ID", header}))
	for i, row := range cells {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, file.SetSheetRow(sheet, cell, &row))
	}

	buf, err := file.WriteToBuffer()
	require.NoError(t, err)
	return bytes.NewReader(buf.Bytes())
}

func TestReadWorkbook(t *testing.T) {
	header := "Sat, March 1st, 2025"
	reader := buildWorkbook(t, header, [][]any{
		{"Alice Smith", "E100", 0.375},
		{"Bob Jones", "E101", "6:00 PM"},
	})

	headers, rows, err := ReadWorkbook(reader)
	require.NoError(t, err)
	assert.Equal(t, []string{"Full Name", "ID", header}, headers)
	require.Len(t, rows, 2)

	assert.Equal(t, "Alice Smith", rows[0]["Full Name"])
	assert.Equal(t, "E100", rows[0]["ID"])
	// Raw cell values keep the serial time as numeric text.
	assert.Equal(t, "0.375", rows[0][header])
	assert.Equal(t, "6:00 PM", rows[1][header])
}

func TestReadWorkbookSkipsEmptyRows(t *testing.T) {
	header := "Sat, March 1st, 2025"
	reader := buildWorkbook(t, header, [][]any{
		{"Alice Smith", "E100", 0.375},
		{"", "", ""},
		{"Bob Jones", "E101", 0.75},
	})

	_, rows, err := ReadWorkbook(reader)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestReadWorkbookPadsShortRows(t *testing.T) {
	header := "Sat, March 1st, 2025"
	reader := buildWorkbook(t, header, [][]any{
		{"Alice Smith"},
	})

	_, rows, err := ReadWorkbook(reader)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "", rows[0]["ID"])
	assert.Equal(t, "", rows[0][header])
}

func TestReadWorkbookNotASpreadsheet(t *testing.T) {
	_, _, err := ReadWorkbook(strings.NewReader("definitely not xlsx"))
	assert.Error(t, err)
}

func TestReadWorkbookEndToEndIngest(t *testing.T) {
	reader := buildWorkbook(t, "Sat, March 1st, 2025", [][]any{
		{"Alice Smith", "E100", 0.375},
		{"Bob Jones", "E101", 0.75},
	})

	headers, rows, err := ReadWorkbook(reader)
	require.NoError(t, err)

	shifts, date, err := Ingest(headers, rows)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-01", date.Format("2006-01-02"))
	require.Len(t, shifts, 2)
	assert.Equal(t, "9:00 AM", shifts[0].StartTime)
	assert.Equal(t, "6:00 PM", shifts[1].StartTime)
}
