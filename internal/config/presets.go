package config

import "sort"

var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"softmax": {
		Values: []float64{0.2, 0.4, 0.6, 0.5, 0.3, 0.7}, Algorithm: "softmax", Temperature: 1.0, SubtractMax: true,
		Animation: AnimationConfig{Step: DefaultStep, FPS: DefaultFPS, Autostart: true},
		Display:   DisplayConfig{Theme: "ocean", Width: DefaultWidth, Height: DefaultHeight},
	},
	"sharp": {
		Values: []float64{0.2, 0.4, 0.6, 0.5, 0.3, 0.7}, Algorithm: "softargmax", Temperature: 0.05, SubtractMax: true,
		Animation: AnimationConfig{Step: DefaultStep, FPS: DefaultFPS, Autostart: true},
		Display:   DisplayConfig{Theme: "retro", Width: DefaultWidth, Height: DefaultHeight},
	},
	"flat": {
		Values: []float64{0.2, 0.4, 0.6, 0.5, 0.3, 0.7}, Algorithm: "softargmax", Temperature: 10.0, SubtractMax: true,
		Animation: AnimationConfig{Step: DefaultStep, FPS: DefaultFPS, Autostart: true},
		Display:   DisplayConfig{Theme: "sunset", Width: DefaultWidth, Height: DefaultHeight},
	},
	"overflow": {
		Values: []float64{710, 715, 720, 705}, Algorithm: "softmax", Temperature: 1.0, SubtractMax: true,
		Animation: AnimationConfig{Step: 0.02, FPS: DefaultFPS, Autostart: true},
		Display:   DisplayConfig{Theme: "minimal", Width: DefaultWidth, Height: DefaultHeight},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
