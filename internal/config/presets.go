package config

import "sort"

var Presets = map[string]*Config{
	"calm": {
		Theme:  "ocean",
		Timing: TimingConfig{WordDelay: 0.45, CharDelay: 0.05, FrameInterval: 0.05},
		Rain:   RainConfig{MinSpeed: 0.15, MaxSpeed: 0.6, Density: 0.3, MaxSlack: 12, Charset: "ascii"},
	},
	"storm": {
		Theme:  "matrix",
		Timing: TimingConfig{WordDelay: 0.12, CharDelay: 0.01, FrameInterval: 0.02},
		Rain:   RainConfig{MinSpeed: 0.02, MaxSpeed: 0.12, Density: 0.9, MaxSlack: 4, Charset: "matrix"},
	},
	"typewriter": {
		Autoplay: true,
		Repeat:   true,
		Theme:    "retro",
		Timing:   TimingConfig{WordDelay: 0.28, CharDelay: 0.06, FrameInterval: 0.03},
		Rain:     RainConfig{MinSpeed: 0.05, MaxSpeed: 0.4, Density: 0.4, MaxSlack: 8, Charset: "binary"},
	},
	"neon": {
		Autoplay: true,
		Theme:    "cyberpunk",
		Timing:   TimingConfig{WordDelay: 0.2, CharDelay: 0.015, FrameInterval: 0.03},
		Rain:     RainConfig{MinSpeed: 0.04, MaxSpeed: 0.3, Density: 0.7, MaxSlack: 8, Charset: "hex"},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	cfg.Lines = append([]string(nil), p.Lines...)
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
