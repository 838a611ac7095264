package data

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbook(t *testing.T, sheet string, cells map[string]interface{}) *bytes.Reader {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	if sheet != "Sheet1" {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
	}
	for ref, v := range cells {
		require.NoError(t, f.SetCellValue(sheet, ref, v))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return bytes.NewReader(buf.Bytes())
}

func TestReadDemandXLSX(t *testing.T) {
	r := workbook(t, "Sheet1", map[string]interface{}{
		"A1": "start_time", "B1": "kw_import",
		"A2": "2025-05-01 14:00", "B2": 820.5,
		"A3": "2025-05-01 14:30", "B3": 835,
	})

	readings, err := ReadDemandXLSX(r, "Sheet1")
	require.NoError(t, err)
	require.Len(t, readings, 2)

	assert.Equal(t, 820.5, readings[0].DemandKW)
	assert.Equal(t, time.Date(2025, 5, 1, 14, 0, 0, 0, time.Local), readings[0].Timestamp)
	assert.Equal(t, 835.0, readings[1].DemandKW)
}

func TestReadDemandXLSXSerialDates(t *testing.T) {
	// 45778.5833... is 2025-05-01 14:00 as a raw Excel serial number.
	r := workbook(t, "Sheet1", map[string]interface{}{
		"A1": "start_time", "B1": "kw_import",
		"A2": "45778.5833333333", "B2": 900,
	})

	readings, err := ReadDemandXLSX(r, "Sheet1")
	require.NoError(t, err)
	require.Len(t, readings, 1)
	assert.Equal(t, time.Date(2025, 5, 1, 14, 0, 0, 0, time.Local), readings[0].Timestamp)
}

func TestReadDemandXLSXSheetNotFound(t *testing.T) {
	r := workbook(t, "Sheet1", map[string]interface{}{
		"A1": "start_time", "B1": "kw_import",
		"A2": "2025-05-01 14:00", "B2": 1,
	})

	_, err := ReadDemandXLSX(r, "Missing")
	var srcErr *SourceError
	require.ErrorAs(t, err, &srcErr)
	assert.Equal(t, "INVALID_WORKBOOK", srcErr.Code)
}

func TestReadDemandXLSXMissingColumns(t *testing.T) {
	r := workbook(t, "Sheet1", map[string]interface{}{
		"A1": "timestamp", "B1": "demand",
		"A2": "2025-05-01 14:00", "B2": 1,
	})

	_, err := ReadDemandXLSX(r, "Sheet1")
	var srcErr *SourceError
	require.ErrorAs(t, err, &srcErr)
	assert.Contains(t, srcErr.Message, "start_time")
}

func TestReadDemandXLSXBadDemandValue(t *testing.T) {
	r := workbook(t, "Sheet1", map[string]interface{}{
		"A1": "start_time", "B1": "kw_import",
		"A2": "2025-05-01 14:00", "B2": "not-a-number",
	})

	_, err := ReadDemandXLSX(r, "Sheet1")
	var srcErr *SourceError
	require.ErrorAs(t, err, &srcErr)
}

func TestReadDemandXLSXNotAWorkbook(t *testing.T) {
	_, err := ReadDemandXLSX(bytes.NewReader([]byte("definitely not xlsx")), "Sheet1")
	var srcErr *SourceError
	require.ErrorAs(t, err, &srcErr)
	assert.Equal(t, "INVALID_WORKBOOK", srcErr.Code)
}
