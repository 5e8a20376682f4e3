package config

import "math"

// Built-in systems. "water" is the minimal two-species check that any
// working solver must put at pH 7, "acetic-acid" is the classic weak
// acid calculation, and "hcl-naoh" is the strong acid/base pair used
// for titration sweeps over the Na total.
var presets = map[string]func() *Config{
	"water": func() *Config {
		return &Config{
			Name: "water",
			Species: []SpeciesConfig{
				{Name: "H+", Charge: 1},
				{Name: "OH-", Charge: -1},
			},
			Reactions: []ReactionConfig{
				{K: 1.0e-14, Species: map[string]int{"OH-": 1, "H+": 1}},
			},
		}
	},
	"acetic-acid": func() *Config {
		return &Config{
			Name: "acetic-acid",
			Species: []SpeciesConfig{
				{Name: "HC2H3O2", Charge: 0, Groups: []string{"C2H3O2"}},
				{Name: "H+", Charge: 1},
				{Name: "C2H3O2-", Charge: -1, Groups: []string{"C2H3O2"}},
				{Name: "OH-", Charge: -1},
			},
			Reactions: []ReactionConfig{
				{K: 1.8e-5, Species: map[string]int{"HC2H3O2": -1, "H+": 1, "C2H3O2-": 1}},
				{K: 1.0e-14, Species: map[string]int{"OH-": 1, "H+": 1}},
			},
			Conservation: []ConstraintConfig{
				{Token: "C2H3O2", Target: 0.5},
			},
		}
	},
	"hcl-naoh": func() *Config {
		return &Config{
			Name: "hcl-naoh",
			Species: []SpeciesConfig{
				{Name: "HCl", Charge: 0, Groups: []string{"Cl"}},
				{Name: "H+", Charge: 1},
				{Name: "Cl-", Charge: -1, Groups: []string{"Cl"}},
				{Name: "NaOH", Charge: 0, Groups: []string{"Na"}},
				{Name: "Na+", Charge: 1, Groups: []string{"Na"}},
				{Name: "OH-", Charge: -1},
			},
			Reactions: []ReactionConfig{
				{K: math.Pow(10, 6.1), Species: map[string]int{"HCl": -1, "H+": 1, "Cl-": 1}},
				{K: math.Pow(10, -0.2), Species: map[string]int{"NaOH": -1, "Na+": 1, "OH-": 1}},
				{K: 1.0e-14, Species: map[string]int{"OH-": 1, "H+": 1}},
			},
			Conservation: []ConstraintConfig{
				{Token: "Cl", Target: 1.0},
				{Token: "Na", Target: 0.9},
			},
		}
	},
}

// Preset returns a fresh copy of a built-in system, or nil when the
// name is unknown.
func Preset(name string) *Config {
	fn, ok := presets[name]
	if !ok {
		return nil
	}
	cfg := fn()
	cfg.applyDefaults()
	return cfg
}

// ListPresets returns the built-in system names.
func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	return names
}
