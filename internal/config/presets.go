package config

// Presets are ready-made rift scenarios. The "tutorial" numbers match
// the standard worked example of a 60-degree listric fault over a 10 km
// detachment.
var Presets = map[string]*Config{
	"tutorial": {
		Grid:  GridConfig{Nodes: 51, Rows: 1, Spacing: 1000},
		Fault: FaultConfig{ExtensionRate: 0.01, Dip: 60, Location: 10000, DetachmentDepth: 10000},
		Dt:    2500, Duration: 1000000,
		Thickness: ThicknessConfig{Initial: DefaultThickness, CrustDensity: DefaultCrustDensity, MantleDensity: DefaultMantleDensity},
	},
	"shallow-detachment": {
		Grid:  GridConfig{Nodes: 81, Rows: 1, Spacing: 500},
		Fault: FaultConfig{ExtensionRate: 0.005, Dip: 45, Location: 8000, DetachmentDepth: 4000},
		Dt:    5000, Duration: 2000000,
		Thickness: ThicknessConfig{Initial: DefaultThickness, CrustDensity: DefaultCrustDensity, MantleDensity: DefaultMantleDensity},
	},
	"fast-rift": {
		Grid:  GridConfig{Nodes: 101, Rows: 1, Spacing: 1000},
		Fault: FaultConfig{ExtensionRate: 0.05, Dip: 60, Location: 20000, DetachmentDepth: 12000},
		Dt:    1000, Duration: 500000,
		Thickness: ThicknessConfig{Initial: DefaultThickness, CrustDensity: DefaultCrustDensity, MantleDensity: DefaultMantleDensity},
	},
	"crustal-thinning": {
		Grid:  GridConfig{Nodes: 61, Rows: 1, Spacing: 1000},
		Fault: FaultConfig{ExtensionRate: 0.01, Dip: 60, Location: 12000, DetachmentDepth: 10000},
		Dt:    2500, Duration: 1500000,
		Thickness: ThicknessConfig{
			Track:         true,
			Isostasy:      true,
			Initial:       35000,
			CrustDensity:  DefaultCrustDensity,
			MantleDensity: DefaultMantleDensity,
		},
	},
	"plane-2d": {
		Grid:  GridConfig{Nodes: 51, Rows: 21, Spacing: 1000},
		Fault: FaultConfig{ExtensionRate: 0.01, Dip: 60, Location: 10000, DetachmentDepth: 10000},
		Dt:    2500, Duration: 1000000,
		Thickness: ThicknessConfig{Initial: DefaultThickness, CrustDensity: DefaultCrustDensity, MantleDensity: DefaultMantleDensity},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
