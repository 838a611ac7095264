package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWindowContains(t *testing.T) {
	w := Window{StartHour: 14, EndHour: 22}

	assert.False(t, w.Contains(time.Date(2025, 5, 1, 13, 59, 0, 0, time.UTC)))
	assert.True(t, w.Contains(time.Date(2025, 5, 1, 14, 0, 0, 0, time.UTC)))
	assert.True(t, w.Contains(time.Date(2025, 5, 1, 21, 59, 0, 0, time.UTC)))
	assert.False(t, w.Contains(time.Date(2025, 5, 1, 22, 0, 0, 0, time.UTC)))
}

func TestWindowValidate(t *testing.T) {
	assert.NoError(t, Window{StartHour: 0, EndHour: 24}.Validate())
	assert.Error(t, Window{StartHour: 14, EndHour: 14}.Validate())
	assert.Error(t, Window{StartHour: -1, EndHour: 10}.Validate())
	assert.Error(t, Window{StartHour: 10, EndHour: 25}.Validate())
}

func TestDateOf(t *testing.T) {
	ts := time.Date(2025, 5, 1, 21, 30, 15, 0, time.Local)
	d := DateOf(ts)
	assert.Equal(t, time.Date(2025, 5, 1, 0, 0, 0, 0, time.Local), d)
}

func TestUnitSpecValidate(t *testing.T) {
	assert.NoError(t, UnitSpec{NameplateEnergyKWh: 233, MaxPowerKW: 105}.Validate())
	assert.Error(t, UnitSpec{NameplateEnergyKWh: 0, MaxPowerKW: 105}.Validate())
	assert.Error(t, UnitSpec{NameplateEnergyKWh: 233, MaxPowerKW: -1}.Validate())
}

func TestEconomicsParamsValidate(t *testing.T) {
	ok := EconomicsParams{CapexPerKWh: 1350, DemandTariffPerKW: 97.06, BillingPeriodsPerYear: 12}
	assert.NoError(t, ok.Validate())

	bad := ok
	bad.BillingPeriodsPerYear = 0
	assert.Error(t, bad.Validate())
}

func TestMonthSelectorString(t *testing.T) {
	s := MonthSelector{Year: 2025, Month: time.May}
	assert.Equal(t, "2025-05", s.String())
}
