package config

import "sort"

// Presets tweak the seeding and cadence; the rule itself is fixed.
var Presets = map[string]func(c *Config){
	"default": func(c *Config) {},
	"sparse": func(c *Config) {
		c.Grid.Density = 0.1
	},
	"dense": func(c *Config) {
		c.Grid.Density = 0.35
	},
	"large": func(c *Config) {
		c.Grid.Size = 20
		c.Camera.Zoom = -40
	},
	"fast": func(c *Config) {
		c.Clock.TickIntervalMs = 125
	},
	"slowmo": func(c *Config) {
		c.Clock.TickIntervalMs = 2000
		c.Animation.Step = 0.02
	},
}

// GetPreset returns a fresh config with the named preset applied, or nil.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
