// Package sweep implements the demand-shaving threshold sweep: for each
// candidate threshold it finds the worst shaving day across the whole
// analysis period, sizes the minimal battery stack for it, and derives
// payback economics.
package sweep

import (
	"fmt"
	"math"

	"github.com/BanAutomation/battery-api/internal/model"
)

// tieEpsilon guards the worst-day comparisons against floating-point noise.
// A day replaces the current maximum only on strict improvement beyond this
// tolerance, so on an exact tie the earliest day in date order wins.
const tieEpsilon = 1e-12

type Engine struct{}

func New() *Engine { return &Engine{} }

// Run evaluates every threshold against the full day sequence and returns one
// row per threshold, in threshold order. dtH is the duration each sample
// represents, in hours.
//
// Per-threshold evaluation never fails: undefined economics surface as nil
// fields and an empty day sequence yields uniformly-zero shaving.
func (e *Engine) Run(days []model.DaySeries, dtH float64, thresholds []float64, unit model.UnitSpec, econ model.EconomicsParams) (*Result, error) {
	if dtH <= 0 {
		return nil, fmt.Errorf("interval duration must be > 0 hours, got %v", dtH)
	}
	if err := unit.Validate(); err != nil {
		return nil, fmt.Errorf("unit spec invalid: %w", err)
	}
	if err := econ.Validate(); err != nil {
		return nil, fmt.Errorf("economics params invalid: %w", err)
	}

	rows := make([]Row, 0, len(thresholds))
	for _, h := range thresholds {
		rows = append(rows, e.evaluate(days, dtH, h, unit, econ))
	}
	return &Result{Rows: rows}, nil
}

func (e *Engine) evaluate(days []model.DaySeries, dtH float64, h float64, unit model.UnitSpec, econ model.EconomicsParams) Row {
	row := Row{ThresholdKW: round3(h)}

	var highestEnergy, highestPeak float64
	for _, day := range days {
		var energy, peak float64
		for _, d := range day.DemandKW {
			shave := d - h
			if shave <= 0 {
				continue
			}
			energy += shave
			if shave > peak {
				peak = shave
			}
		}
		energy *= dtH

		if energy > highestEnergy+tieEpsilon {
			highestEnergy = energy
			row.HighestEnergyDay = day.Date
		}
		if peak > highestPeak+tieEpsilon {
			highestPeak = peak
			row.HighestPeakDay = day.Date
		}
	}

	unitsPower := int(math.Ceil(highestPeak / unit.MaxPowerKW))
	unitsEnergy := int(math.Ceil(highestEnergy / unit.NameplateEnergyKWh))
	units := unitsPower
	if unitsEnergy > units {
		units = unitsEnergy
	}
	// A fractional requirement still needs one physical unit.
	if units == 0 && (highestPeak > 0 || highestEnergy > 0) {
		units = 1
	}
	capacityKWh := int(math.Round(float64(units) * unit.NameplateEnergyKWh))

	switch {
	case highestPeak == 0 && highestEnergy == 0:
		row.LimitingFactor = LimitNone
	case unitsPower > unitsEnergy:
		row.LimitingFactor = LimitPower
	case unitsEnergy > unitsPower:
		row.LimitingFactor = LimitEnergy
	default:
		row.LimitingFactor = LimitBoth
	}

	for u := 1; u <= maxFitUnits; u++ {
		row.FitsUnits[u-1] = highestPeak <= float64(u)*unit.MaxPowerKW &&
			highestEnergy <= float64(u)*unit.NameplateEnergyKWh
	}

	if highestPeak > 0 && capacityKWh > 0 {
		payback := (econ.CapexPerKWh * float64(capacityKWh)) /
			(highestPeak * econ.DemandTariffPerKW * float64(econ.BillingPeriodsPerYear))
		efficiency := highestPeak / float64(capacityKWh)
		row.PaybackYears = ptr(round3(payback))
		row.Efficiency = ptr(round6(efficiency))
	}

	row.HighestEnergyKWh = round3(highestEnergy)
	row.HighestPeakShavedKW = round3(highestPeak)
	row.MinUnitsRequired = units
	row.MinCapacityKWh = capacityKWh
	return row
}

func round3(x float64) float64 { return math.Round(x*1e3) / 1e3 }
func round6(x float64) float64 { return math.Round(x*1e6) / 1e6 }

func ptr(x float64) *float64 { return &x }
