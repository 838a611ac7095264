package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/BanAutomation/battery-api/internal/model"
)

// Config is the on-disk configuration shape (YAML). Zero-valued fields are
// filled with the standard sizing-run defaults by Load.
type Config struct {
	Sheet         string          `yaml:"sheet"`
	IntervalHours float64         `yaml:"interval_hours"`
	Window        WindowConfig    `yaml:"window"`
	Months        []MonthConfig   `yaml:"months"`
	Sweep         SweepConfig     `yaml:"sweep"`
	Unit          UnitConfig      `yaml:"unit"`
	Economics     EconomicsConfig `yaml:"economics"`
	Storage       StorageConfig   `yaml:"storage"`
}

type WindowConfig struct {
	StartHour int `yaml:"start_hour"`
	EndHour   int `yaml:"end_hour"`
}

type MonthConfig struct {
	Year  int `yaml:"year"`
	Month int `yaml:"month"`
}

type SweepConfig struct {
	StartKW float64 `yaml:"start_kw"`
	EndKW   float64 `yaml:"end_kw"`
	StepKW  float64 `yaml:"step_kw"`
}

type UnitConfig struct {
	NameplateEnergyKWh float64 `yaml:"nameplate_energy_kwh"`
	MaxPowerKW         float64 `yaml:"max_power_kw"`
}

type EconomicsConfig struct {
	CapexPerKWh           float64 `yaml:"capex_per_kwh"`
	DemandTariffPerKW     float64 `yaml:"demand_tariff_per_kw"`
	BillingPeriodsPerYear int     `yaml:"billing_periods_per_year"`
}

type StorageConfig struct {
	Type  string             `yaml:"type"` // "local" or "minio"
	Local LocalStorageConfig `yaml:"local"`
	Minio MinioStorageConfig `yaml:"minio"`
}

type LocalStorageConfig struct {
	BasePath string `yaml:"base_path"`
	BaseURL  string `yaml:"base_url"`
}

type MinioStorageConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Bucket    string `yaml:"bucket"`
	UseSSL    bool   `yaml:"use_ssl"`
	PublicURL string `yaml:"public_url"`
}

// Default returns the standard sizing-run configuration: half-hour samples in
// the 14:00-22:00 evening window, 233 kWh / 105 kW units, a 1100→695 kW sweep
// in 25 kW steps, and the current tariff book.
func Default() *Config {
	return &Config{
		Sheet:         "Sheet",
		IntervalHours: 0.5,
		Window:        WindowConfig{StartHour: 14, EndHour: 22},
		Sweep:         SweepConfig{StartKW: 1100, EndKW: 695, StepKW: -25},
		Unit:          UnitConfig{NameplateEnergyKWh: 233, MaxPowerKW: 105},
		Economics:     EconomicsConfig{CapexPerKWh: 1350, DemandTariffPerKW: 97.06, BillingPeriodsPerYear: 12},
		Storage: StorageConfig{
			Type:  "local",
			Local: LocalStorageConfig{BasePath: "results", BaseURL: "/results"},
		},
	}
}

// Load reads a YAML config, overlays it on the defaults, and validates.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(raw, c); err != nil {
		return nil, err
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// applyDefaults re-fills fields an explicit config zeroed out but did not
// set. Months intentionally has no default: a run must name its months.
func (c *Config) applyDefaults() {
	d := Default()
	if c.Sheet == "" {
		c.Sheet = d.Sheet
	}
	if c.IntervalHours == 0 {
		c.IntervalHours = d.IntervalHours
	}
	if c.Window == (WindowConfig{}) {
		c.Window = d.Window
	}
	if c.Sweep == (SweepConfig{}) {
		c.Sweep = d.Sweep
	}
	if c.Unit == (UnitConfig{}) {
		c.Unit = d.Unit
	}
	if c.Economics == (EconomicsConfig{}) {
		c.Economics = d.Economics
	}
	if c.Storage.Type == "" {
		c.Storage = d.Storage
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.IntervalHours <= 0 {
		return errors.New("interval_hours must be > 0")
	}
	if err := c.ToWindow().Validate(); err != nil {
		return fmt.Errorf("window invalid: %w", err)
	}
	if len(c.Months) == 0 {
		return errors.New("at least one month is required")
	}
	for _, m := range c.Months {
		if m.Year < 1900 || m.Month < 1 || m.Month > 12 {
			return fmt.Errorf("month %d-%d is not a valid year/month", m.Year, m.Month)
		}
	}
	if c.Sweep.StepKW == 0 {
		return errors.New("sweep.step_kw cannot be zero")
	}
	if err := c.ToUnitSpec().Validate(); err != nil {
		return fmt.Errorf("unit config invalid: %w", err)
	}
	if err := c.ToEconomics().Validate(); err != nil {
		return fmt.Errorf("economics config invalid: %w", err)
	}
	switch c.Storage.Type {
	case "local":
		if c.Storage.Local.BasePath == "" {
			return errors.New("storage.local.base_path is required")
		}
	case "minio":
		if c.Storage.Minio.Endpoint == "" || c.Storage.Minio.Bucket == "" {
			return errors.New("storage.minio requires endpoint and bucket")
		}
	default:
		return fmt.Errorf("unsupported storage type %q", c.Storage.Type)
	}
	return nil
}

func (c *Config) ToWindow() model.Window {
	return model.Window{StartHour: c.Window.StartHour, EndHour: c.Window.EndHour}
}

func (c *Config) ToSelectors() []model.MonthSelector {
	sels := make([]model.MonthSelector, 0, len(c.Months))
	for _, m := range c.Months {
		sels = append(sels, model.MonthSelector{Year: m.Year, Month: time.Month(m.Month)})
	}
	return sels
}

func (c *Config) ToUnitSpec() model.UnitSpec {
	return model.UnitSpec{
		NameplateEnergyKWh: c.Unit.NameplateEnergyKWh,
		MaxPowerKW:         c.Unit.MaxPowerKW,
	}
}

func (c *Config) ToEconomics() model.EconomicsParams {
	return model.EconomicsParams{
		CapexPerKWh:           c.Economics.CapexPerKWh,
		DemandTariffPerKW:     c.Economics.DemandTariffPerKW,
		BillingPeriodsPerYear: c.Economics.BillingPeriodsPerYear,
	}
}
