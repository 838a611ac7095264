package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BanAutomation/battery-api/internal/model"
	"github.com/BanAutomation/battery-api/internal/sweep"
)

func testParams() Params {
	return Params{
		Unit:        model.UnitSpec{NameplateEnergyKWh: 233, MaxPowerKW: 105},
		Economics:   model.EconomicsParams{CapexPerKWh: 1350, DemandTariffPerKW: 97.06, BillingPeriodsPerYear: 12},
		Window:      model.Window{StartHour: 14, EndHour: 22},
		SweepStart:  1100,
		SweepEnd:    695,
		SweepStep:   -25,
		PeriodStart: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	}
}

func rowWith(threshold float64, payback, eff float64) sweep.Row {
	return sweep.Row{
		ThresholdKW:         threshold,
		HighestEnergyKWh:    120.5,
		HighestEnergyDay:    time.Date(2025, 5, 12, 0, 0, 0, 0, time.UTC),
		HighestPeakShavedKW: 95,
		HighestPeakDay:      time.Date(2025, 5, 12, 0, 0, 0, 0, time.UTC),
		MinUnitsRequired:    1,
		MinCapacityKWh:      233,
		LimitingFactor:      sweep.LimitBoth,
		PaybackYears:        &payback,
		Efficiency:          &eff,
		FitsUnits:           [4]bool{true, true, true, true},
	}
}

func TestBuildProducesPDF(t *testing.T) {
	rows := []sweep.Row{
		rowWith(900, 4.2, 0.38),
		rowWith(850, 2.7, 0.41),
		{ThresholdKW: 1100, LimitingFactor: sweep.LimitNone},
	}

	out, err := Build(rows, testParams())
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestBuildHandlesNoViableRows(t *testing.T) {
	rows := []sweep.Row{
		{ThresholdKW: 1100, LimitingFactor: sweep.LimitNone},
	}
	out, err := Build(rows, testParams())
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestPickFindings(t *testing.T) {
	longPayback := rowWith(700, 12.0, 0.9) // beyond the 10y cutoff
	best := rowWith(850, 2.7, 0.41)
	other := rowWith(900, 4.2, 0.45)

	bestPayback, bestEfficiency, under5y := pickFindings([]sweep.Row{longPayback, other, best})

	require.NotNil(t, bestPayback)
	assert.Equal(t, 850.0, bestPayback.ThresholdKW)
	require.NotNil(t, bestEfficiency)
	assert.Equal(t, 900.0, bestEfficiency.ThresholdKW)
	assert.Len(t, under5y, 2)
}
