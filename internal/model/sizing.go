package model

import "errors"

// UnitSpec is the physical rating of one discrete battery unit.
// Sizing uses nameplate energy only; no usable-capacity reserve is applied.
type UnitSpec struct {
	NameplateEnergyKWh float64
	MaxPowerKW         float64
}

func (u UnitSpec) Validate() error {
	if u.NameplateEnergyKWh <= 0 {
		return errors.New("NameplateEnergyKWh must be > 0")
	}
	if u.MaxPowerKW <= 0 {
		return errors.New("MaxPowerKW must be > 0")
	}
	return nil
}

// EconomicsParams drive the payback calculation. They are constant across a
// sweep.
type EconomicsParams struct {
	CapexPerKWh           float64
	DemandTariffPerKW     float64
	BillingPeriodsPerYear int
}

func (e EconomicsParams) Validate() error {
	if e.CapexPerKWh <= 0 {
		return errors.New("CapexPerKWh must be > 0")
	}
	if e.DemandTariffPerKW <= 0 {
		return errors.New("DemandTariffPerKW must be > 0")
	}
	if e.BillingPeriodsPerYear <= 0 {
		return errors.New("BillingPeriodsPerYear must be > 0")
	}
	return nil
}
