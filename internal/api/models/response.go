package models

import (
	"time"

	"github.com/BanAutomation/battery-api/internal/sweep"
)

// AnalyzeResponse is returned by POST /api/v1/analyze once both artifacts
// are stored.
type AnalyzeResponse struct {
	ID           string     `json:"id"`
	CSVURL       string     `json:"csv_url"`
	PDFURL       string     `json:"pdf_url"`
	RowCount     int        `json:"row_count"`
	DaysAnalyzed int        `json:"days_analyzed"`
	Rows         []SweepRow `json:"rows,omitempty"`
}

// SweepRow is the JSON rendering of one per-threshold result. Undefined
// economics are null, day fields are empty strings when no shaving occurred.
type SweepRow struct {
	ThresholdKW         float64  `json:"threshold_kw"`
	HighestEnergyKWh    float64  `json:"highest_energy_kwh"`
	HighestEnergyDay    string   `json:"highest_energy_day"`
	HighestPeakShavedKW float64  `json:"highest_peak_shaved_kw"`
	HighestPeakDay      string   `json:"highest_peak_day"`
	MinUnitsRequired    int      `json:"min_units_required"`
	MinCapacityKWh      int      `json:"min_capacity_kwh"`
	LimitingFactor      string   `json:"limiting_factor"`
	PaybackYears        *float64 `json:"payback_years"`
	Efficiency          *float64 `json:"efficiency"`
	Fits1x              bool     `json:"fits_1x"`
	Fits2x              bool     `json:"fits_2x"`
	Fits3x              bool     `json:"fits_3x"`
	Fits4x              bool     `json:"fits_4x"`
}

// FromSweepRow converts an engine row to its JSON shape.
func FromSweepRow(r sweep.Row) SweepRow {
	return SweepRow{
		ThresholdKW:         r.ThresholdKW,
		HighestEnergyKWh:    r.HighestEnergyKWh,
		HighestEnergyDay:    fmtDay(r.HighestEnergyDay),
		HighestPeakShavedKW: r.HighestPeakShavedKW,
		HighestPeakDay:      fmtDay(r.HighestPeakDay),
		MinUnitsRequired:    r.MinUnitsRequired,
		MinCapacityKWh:      r.MinCapacityKWh,
		LimitingFactor:      string(r.LimitingFactor),
		PaybackYears:        r.PaybackYears,
		Efficiency:          r.Efficiency,
		Fits1x:              r.FitsUnits[0],
		Fits2x:              r.FitsUnits[1],
		Fits3x:              r.FitsUnits[2],
		Fits4x:              r.FitsUnits[3],
	}
}

func fmtDay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

// ConfigResponse exposes the effective run configuration.
type ConfigResponse struct {
	Sheet         string          `json:"sheet"`
	IntervalHours float64         `json:"interval_hours"`
	WindowStart   int             `json:"window_start_hour"`
	WindowEnd     int             `json:"window_end_hour"`
	Months        []string        `json:"months"`
	Sweep         SweepSettings   `json:"sweep"`
	Unit          UnitSettings    `json:"unit"`
	Economics     EconomicsValues `json:"economics"`
}

type SweepSettings struct {
	StartKW float64 `json:"start_kw"`
	EndKW   float64 `json:"end_kw"`
	StepKW  float64 `json:"step_kw"`
}

type UnitSettings struct {
	NameplateEnergyKWh float64 `json:"nameplate_energy_kwh"`
	MaxPowerKW         float64 `json:"max_power_kw"`
}

type EconomicsValues struct {
	CapexPerKWh           float64 `json:"capex_per_kwh"`
	DemandTariffPerKW     float64 `json:"demand_tariff_per_kw"`
	BillingPeriodsPerYear int     `json:"billing_periods_per_year"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
