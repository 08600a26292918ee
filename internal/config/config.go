package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultNodes           = 51
	DefaultSpacing         = 1000.0
	DefaultRows            = 1
	DefaultExtensionRate   = 0.01
	DefaultFaultDip        = 60.0
	DefaultFaultLocation   = 10000.0
	DefaultDetachmentDepth = 10000.0
	DefaultDt              = 2500.0
	DefaultDuration        = 1000000.0
	DefaultThickness       = 35000.0
	DefaultCrustDensity    = 2700.0
	DefaultMantleDensity   = 3300.0
)

type Config struct {
	Grid      GridConfig      `yaml:"grid"`
	Fault     FaultConfig     `yaml:"fault"`
	Dt        float64         `yaml:"dt"`
	Duration  float64         `yaml:"duration"`
	Thickness ThicknessConfig `yaml:"thickness"`
}

type GridConfig struct {
	Nodes   int     `yaml:"nodes"`
	Rows    int     `yaml:"rows"`
	Spacing float64 `yaml:"spacing"`
}

type FaultConfig struct {
	ExtensionRate   float64  `yaml:"extension_rate"`
	Dip             float64  `yaml:"dip"`
	Location        float64  `yaml:"location"`
	DetachmentDepth float64  `yaml:"detachment_depth"`
	ShiftFields     []string `yaml:"shift_fields"`
}

type ThicknessConfig struct {
	Track         bool    `yaml:"track"`
	Initial       float64 `yaml:"initial"`
	Isostasy      bool    `yaml:"isostasy"`
	CrustDensity  float64 `yaml:"crust_density"`
	MantleDensity float64 `yaml:"mantle_density"`
}

func DefaultConfig() *Config {
	return &Config{
		Grid: GridConfig{
			Nodes:   DefaultNodes,
			Rows:    DefaultRows,
			Spacing: DefaultSpacing,
		},
		Fault: FaultConfig{
			ExtensionRate:   DefaultExtensionRate,
			Dip:             DefaultFaultDip,
			Location:        DefaultFaultLocation,
			DetachmentDepth: DefaultDetachmentDepth,
		},
		Dt:       DefaultDt,
		Duration: DefaultDuration,
		Thickness: ThicknessConfig{
			Initial:       DefaultThickness,
			CrustDensity:  DefaultCrustDensity,
			MantleDensity: DefaultMantleDensity,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
