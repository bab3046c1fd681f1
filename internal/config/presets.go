package config

import "sort"

// Presets are keyed by algorithm name, then preset name.
var Presets = map[string]map[string]*Config{
	"bubble": {
		"textbook": {
			Size: 5, Algorithm: "bubble", IntervalMs: 600, Theme: DefaultTheme,
			Values: []int{5, 3, 4, 1, 2},
		},
		"reversed": {
			Size: 20, Algorithm: "bubble", IntervalMs: 150, Theme: DefaultTheme,
			Values: descending(20),
		},
		"small": {
			Size: 10, Algorithm: "bubble", IntervalMs: 300, Theme: DefaultTheme,
		},
	},
	"insertion": {
		"nearly_sorted": {
			Size: 16, Algorithm: "insertion", IntervalMs: 250, Theme: DefaultTheme,
			Values: []int{1, 2, 3, 5, 4, 6, 7, 8, 10, 9, 11, 12, 14, 13, 15, 16},
		},
		"classroom": {
			Size: 20, Algorithm: "insertion", IntervalMs: 200, Theme: DefaultTheme,
		},
	},
	"selection": {
		"classroom": {
			Size: 20, Algorithm: "selection", IntervalMs: 200, Theme: DefaultTheme,
		},
		"reversed": {
			Size: 20, Algorithm: "selection", IntervalMs: 150, Theme: DefaultTheme,
			Values: descending(20),
		},
	},
	"merge": {
		"classroom": {
			Size: 24, Algorithm: "merge", IntervalMs: 200, Theme: DefaultTheme,
		},
		"full": {
			Size: 99, Algorithm: "merge", IntervalMs: 40, Theme: "ocean",
		},
	},
	"quick": {
		"full": {
			Size: 99, Algorithm: "quick", IntervalMs: 200, Theme: DefaultTheme,
		},
	},
}

func descending(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = n - i
	}
	return out
}

// GetPreset returns a copy of the preset with chart, server and log
// defaults filled in, or nil when unknown.
func GetPreset(algorithm, name string) *Config {
	byName, ok := Presets[algorithm]
	if !ok {
		return nil
	}
	p, ok := byName[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Size, cfg.Algorithm, cfg.IntervalMs, cfg.Theme = p.Size, p.Algorithm, p.IntervalMs, p.Theme
	if len(p.Values) > 0 {
		cfg.Values = append([]int(nil), p.Values...)
	}
	return cfg
}

// ListPresets returns the preset names for an algorithm, sorted.
func ListPresets(algorithm string) []string {
	byName, ok := Presets[algorithm]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
