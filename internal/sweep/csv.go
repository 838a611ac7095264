package sweep

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"time"
)

// Columns is the fixed output column order of the sweep table.
var Columns = []string{
	"Threshold_kW",
	"Highest_Energy_kWh",
	"Highest_Energy_Day",
	"Highest_Peak_Shaved_kW",
	"Highest_Peak_Day",
	"Min_Units_Required",
	"Min_Capacity_kWh",
	"Limiting_Factor",
	"Payback_years",
	"Efficiency",
	"Fits_1x",
	"Fits_2x",
	"Fits_3x",
	"Fits_4x",
}

// WriteCSV writes the rows as CSV, in row order, with the fixed column order.
// Undefined payback/efficiency render as empty cells.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(Columns); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			fmtFloat(r.ThresholdKW),
			fmtFloat(r.HighestEnergyKWh),
			fmtDate(r.HighestEnergyDay),
			fmtFloat(r.HighestPeakShavedKW),
			fmtDate(r.HighestPeakDay),
			strconv.Itoa(r.MinUnitsRequired),
			strconv.Itoa(r.MinCapacityKWh),
			string(r.LimitingFactor),
			fmtOptional(r.PaybackYears),
			fmtOptional(r.Efficiency),
			strconv.FormatBool(r.FitsUnits[0]),
			strconv.FormatBool(r.FitsUnits[1]),
			strconv.FormatBool(r.FitsUnits[2]),
			strconv.FormatBool(r.FitsUnits[3]),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	return cw.Error()
}

// WriteCSVFile is WriteCSV to a file path.
func WriteCSVFile(path string, rows []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteCSV(f, rows)
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

func fmtDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func fmtOptional(x *float64) string {
	if x == nil {
		return ""
	}
	return fmtFloat(*x)
}
