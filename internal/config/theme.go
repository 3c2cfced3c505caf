// Package config loads the appearance theme for the terminal host.
// Only looks (glyphs, colors, HUD) are configurable; every physics tunable
// is a compile-time constant in the game package.
package config

// Theme describes how the host draws the world.
type Theme struct {
	Flyer  FlyerTheme `yaml:"flyer"`
	Pipe   PipeTheme  `yaml:"pipe"`
	Colors ColorTheme `yaml:"colors"`
	HUD    HUDTheme   `yaml:"hud"`
}

// FlyerTheme selects the flyer glyph by rotation band.
type FlyerTheme struct {
	Climb string `yaml:"climb"` // Rotation above +30 degrees
	Level string `yaml:"level"` // Rotation within [-30, +30]
	Dive  string `yaml:"dive"`  // Rotation below -30 degrees
}

// PipeTheme selects the obstacle glyphs. The cap sits on the gap side of
// each obstacle; which cap applies follows the obstacle's direction sign.
type PipeTheme struct {
	Body      string `yaml:"body"`
	CapTop    string `yaml:"cap_top"`
	CapBottom string `yaml:"cap_bottom"`
}

// ColorTheme holds ANSI 256-color codes for each element.
type ColorTheme struct {
	Flyer string `yaml:"flyer"`
	Pipe  string `yaml:"pipe"`
	HUD   string `yaml:"hud"`
	Flash string `yaml:"flash"`
}

// HUDTheme controls the status line.
type HUDTheme struct {
	Enabled bool `yaml:"enabled"`
}

// DefaultTheme returns the built-in theme, matching the embedded YAML.
func DefaultTheme() Theme {
	return Theme{
		Flyer: FlyerTheme{
			Climb: "▲",
			Level: "►",
			Dive:  "▼",
		},
		Pipe: PipeTheme{
			Body:      "█",
			CapTop:    "▄",
			CapBottom: "▀",
		},
		Colors: ColorTheme{
			Flyer: "11",
			Pipe:  "10",
			HUD:   "245",
			Flash: "9",
		},
		HUD: HUDTheme{
			Enabled: true,
		},
	}
}
