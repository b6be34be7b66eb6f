package schedule

import (
	"errors"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadWorkbook reads the first sheet of an xlsx stream into a header row and
// one map per data row, keyed by header. Cells are read raw so serial time
// values arrive as their numeric text rather than a display format.
func ReadWorkbook(r io.Reader) ([]string, []map[string]string, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = file.Close() }()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, nil, errors.New("no worksheet found")
	}

	rows, err := file.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, nil, err
	}
	if len(rows) == 0 {
		return nil, nil, errors.New("worksheet is empty")
	}

	headers := rows[0]
	records := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if emptyRow(row) {
			continue
		}
		record := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(row) {
				record[header] = row[i]
			} else {
				record[header] = ""
			}
		}
		records = append(records, record)
	}

	return headers, records, nil
}

func emptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
