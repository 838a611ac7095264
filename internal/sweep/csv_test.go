package sweep

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSVColumnOrderAndNulls(t *testing.T) {
	payback := 2.701
	eff := 0.429185
	date := time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC)

	rows := []Row{
		{
			ThresholdKW:         800,
			HighestEnergyKWh:    45,
			HighestEnergyDay:    date,
			HighestPeakShavedKW: 80,
			HighestPeakDay:      date,
			MinUnitsRequired:    1,
			MinCapacityKWh:      233,
			LimitingFactor:      LimitBoth,
			PaybackYears:        &payback,
			Efficiency:          &eff,
			FitsUnits:           [4]bool{true, true, true, true},
		},
		{
			ThresholdKW:    1100,
			LimitingFactor: LimitNone,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rows))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, Columns, records[0])
	assert.Equal(t, []string{
		"800", "45", "2025-05-02", "80", "2025-05-02",
		"1", "233", "Both energy and power", "2.701", "0.429185",
		"true", "true", "true", "true",
	}, records[1])

	// No-shaving row: empty days and empty economics cells, not zeros.
	assert.Equal(t, "1100", records[2][0])
	assert.Equal(t, "", records[2][2])
	assert.Equal(t, "", records[2][4])
	assert.Equal(t, "No shaving", records[2][7])
	assert.Equal(t, "", records[2][8])
	assert.Equal(t, "", records[2][9])
}
