package config

import "sort"

var Presets = map[string]*Config{
	"uhd": {
		Output: OutputConfig{Width: 3840, Height: 2160, DPI: 72, Dir: DefaultDir},
	},
	"draft": {
		Output: OutputConfig{Width: 1280, Height: 720, DPI: 72, Dir: DefaultDir},
	},
	"square": {
		Output: OutputConfig{Width: 2160, Height: 2160, DPI: 72, Dir: DefaultDir},
	},
	"print": {
		Output: OutputConfig{Width: 7680, Height: 4320, DPI: 144, Dir: DefaultDir},
	},
}

func GetPreset(name string) *Config {
	preset, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *preset
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
