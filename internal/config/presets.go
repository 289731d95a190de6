package config

// Presets are tuning starting points keyed by actuator model. "crisp"
// pushes bandwidth into the gain caps, "smooth" stays under them,
// "tracking" is lightly damped for trajectory following.
var Presets = map[string]map[string]*Config{
	"4310": {
		"crisp": {
			Actuator: "4310", Fn: 12.0, Zeta: 1.5, KpMax: 500, KdMax: 5,
		},
		"smooth": {
			Actuator: "4310", Fn: 5.0, Zeta: 1.0, KpMax: 500, KdMax: 5,
		},
		"tracking": {
			Actuator: "4310", Fn: 8.0, Zeta: 0.7, KpMax: 500, KdMax: 5,
		},
	},
	"6408": {
		"crisp": {
			Actuator: "6408", Fn: 10.0, Zeta: 1.2, KpMax: 500, KdMax: 5,
		},
		"smooth": {
			Actuator: "6408", Fn: 4.0, Zeta: 1.0, KpMax: 500, KdMax: 5,
		},
	},
	"8112": {
		"crisp": {
			Actuator: "8112", Fn: 8.0, Zeta: 1.2, KpMax: 500, KdMax: 5,
		},
		"smooth": {
			Actuator: "8112", Fn: 3.0, Zeta: 1.0, KpMax: 500, KdMax: 5,
		},
	},
	"8116": {
		"smooth": {
			Actuator: "8116", Fn: 3.0, Zeta: 1.0, KpMax: 500, KdMax: 5,
		},
	},
}

func GetPreset(model, preset string) *Config {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	cfg, ok := modelPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(model string) []string {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modelPresets))
	for name := range modelPresets {
		names = append(names, name)
	}
	return names
}
