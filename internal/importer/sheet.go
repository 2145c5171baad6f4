package importer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrBadFormat is returned when the uploaded bytes are not a readable
// spreadsheet.
var ErrBadFormat = errors.New("invalid spreadsheet format")

// ParseSheet converts uploaded file bytes into an ordered sequence of raw
// rows. The first row supplies the keys; only the first sheet of a workbook
// is read. Rows whose cells are all empty are skipped, matching how
// spreadsheet tools serialize sparse sheets.
func ParseSheet(data []byte, filename string) ([]RawRow, error) {
	if strings.EqualFold(filepath.Ext(filename), ".csv") {
		return parseCSV(data)
	}
	return parseWorkbook(data)
}

func parseWorkbook(data []byte) ([]RawRow, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrBadFormat
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
	}
	return rowsToRaw(rows), nil
}

func parseCSV(data []byte) ([]RawRow, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
		}
		rows = append(rows, record)
	}
	return rowsToRaw(rows), nil
}

// rowsToRaw keys each data row by the header row's cell text. Header cells
// that are empty produce no key, so values under them are dropped.
func rowsToRaw(rows [][]string) []RawRow {
	if len(rows) == 0 {
		return nil
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	var out []RawRow
	for _, cells := range rows[1:] {
		raw := RawRow{}
		empty := true
		for i, cell := range cells {
			if i >= len(headers) || headers[i] == "" {
				continue
			}
			if cell != "" {
				empty = false
			}
			raw[headers[i]] = cell
		}
		if empty {
			continue
		}
		out = append(out, raw)
	}
	return out
}
