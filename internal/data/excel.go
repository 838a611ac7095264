// Package data reads the source demand dataset. The dataset is an Excel
// workbook with one sheet holding a timestamp column and a kW import column;
// everything past decoding those two columns is someone else's problem.
package data

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/BanAutomation/battery-api/internal/model"
)

// Column names expected in the sheet header row.
const (
	TimestampColumn = "start_time"
	DemandColumn    = "kw_import"
)

// SourceError represents a malformed or unusable input workbook. The API
// layer maps it to a user-facing 400 rather than a raw fault.
type SourceError struct {
	Code    string
	Message string
}

func (e *SourceError) Error() string { return e.Message }

func sourceErrf(code, format string, args ...any) *SourceError {
	return &SourceError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// ReadDemandXLSX decodes one sheet of an xlsx workbook into timestamped
// demand readings, in sheet row order. The sheet must carry a header row
// naming a start_time and a kw_import column. Rows with an empty timestamp
// cell are skipped; unparseable timestamp or demand cells fail the read.
func ReadDemandXLSX(r io.Reader, sheet string) ([]model.DemandReading, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, sourceErrf("INVALID_WORKBOOK", "failed to read workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, sourceErrf("INVALID_WORKBOOK", "sheet %q not found in workbook", sheet)
	}
	if len(rows) < 2 {
		return nil, sourceErrf("INVALID_WORKBOOK", "sheet %q has no data rows", sheet)
	}

	tsCol, kwCol := -1, -1
	for i, name := range rows[0] {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case TimestampColumn:
			tsCol = i
		case DemandColumn:
			kwCol = i
		}
	}
	if tsCol < 0 || kwCol < 0 {
		return nil, sourceErrf("INVALID_WORKBOOK",
			"sheet %q must have %q and %q columns", sheet, TimestampColumn, DemandColumn)
	}

	readings := make([]model.DemandReading, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if tsCol >= len(row) || strings.TrimSpace(row[tsCol]) == "" {
			continue
		}
		ts, err := parseTimestamp(row[tsCol])
		if err != nil {
			return nil, sourceErrf("INVALID_WORKBOOK", "row %d: bad timestamp %q", i+2, row[tsCol])
		}
		if kwCol >= len(row) {
			return nil, sourceErrf("INVALID_WORKBOOK", "row %d: missing %s value", i+2, DemandColumn)
		}
		kw, err := strconv.ParseFloat(strings.TrimSpace(row[kwCol]), 64)
		if err != nil {
			return nil, sourceErrf("INVALID_WORKBOOK", "row %d: bad %s value %q", i+2, DemandColumn, row[kwCol])
		}
		readings = append(readings, model.DemandReading{Timestamp: ts, DemandKW: kw})
	}
	if len(readings) == 0 {
		return nil, sourceErrf("INVALID_WORKBOOK", "sheet %q has no usable readings", sheet)
	}
	return readings, nil
}

// Timestamp layouts seen in metering exports. Cells may also hold a raw
// Excel serial date number depending on the cell format.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"01-02-06 15:04",
	"1/2/06 15:04",
	"2/1/2006 15:04",
	time.RFC3339,
}

func parseTimestamp(cell string) (time.Time, error) {
	s := strings.TrimSpace(cell)
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		return fromExcelSerial(serial), nil
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// fromExcelSerial converts an Excel serial date (days since 1899-12-30, with
// the time of day in the fraction) to a local time, rounded to the second.
func fromExcelSerial(serial float64) time.Time {
	days := math.Floor(serial)
	frac := serial - days
	base := time.Date(1899, time.December, 30, 0, 0, 0, 0, time.Local)
	secs := math.Round(frac * 24 * 3600)
	return base.AddDate(0, 0, int(days)).Add(time.Duration(secs) * time.Second)
}
