package sweep

import "time"

// LimitingFactor labels which unit rating drove the sizing for a threshold.
// Keep these values stable; they are intended for CSV output.
type LimitingFactor string

const (
	LimitNone   LimitingFactor = "No shaving"
	LimitPower  LimitingFactor = "Power-limited"
	LimitEnergy LimitingFactor = "Energy-limited"
	LimitBoth   LimitingFactor = "Both energy and power"
)

// maxFitUnits is the largest stack size reported in the fit flags.
const maxFitUnits = 4

// Row is one per-threshold result record. Energy, peak and payback are
// rounded to 3 decimal places and efficiency to 6 for presentation; the
// engine compares at full precision before rounding.
//
// PaybackYears and Efficiency are nil when the threshold shaves nothing
// (undefined economics, not zero). HighestEnergyDay/HighestPeakDay are the
// zero time in the same case.
type Row struct {
	ThresholdKW         float64
	HighestEnergyKWh    float64
	HighestEnergyDay    time.Time
	HighestPeakShavedKW float64
	HighestPeakDay      time.Time
	MinUnitsRequired    int
	MinCapacityKWh      int
	LimitingFactor      LimitingFactor
	PaybackYears        *float64
	Efficiency          *float64
	FitsUnits           [maxFitUnits]bool
}

// Result bundles the ordered rows of one sweep.
type Result struct {
	Rows []Row
}
