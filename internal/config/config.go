package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/encos-robotics/jointpd/internal/design"
)

const (
	DefaultFn    = 12.0
	DefaultZeta  = 1.5
	DefaultKpMax = 500.0
	DefaultKdMax = 5.0
)

// Config holds one design problem as read from flags, a preset, or a
// yaml file. KpMax/KdMax of zero or below mean unbounded. Inertia, when
// positive, overrides the catalog value for Actuator.
type Config struct {
	Actuator string  `yaml:"actuator"`
	Inertia  float64 `yaml:"inertia"`
	Fn       float64 `yaml:"fn"`
	Zeta     float64 `yaml:"zeta"`
	KpMax    float64 `yaml:"kp_max"`
	KdMax    float64 `yaml:"kd_max"`
}

func DefaultConfig() *Config {
	return &Config{
		Actuator: "6408",
		Fn:       DefaultFn,
		Zeta:     DefaultZeta,
		KpMax:    DefaultKpMax,
		KdMax:    DefaultKdMax,
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

// Request builds a design request using inertia as the J value. The
// caller resolves inertia from the catalog or from the config itself.
func (c *Config) Request(inertia float64) design.Request {
	return design.Request{
		Inertia: inertia,
		FnDes:   c.Fn,
		ZetaDes: c.Zeta,
		KpMax:   boundFrom(c.KpMax),
		KdMax:   boundFrom(c.KdMax),
	}
}

func boundFrom(v float64) design.Bound {
	if v <= 0 {
		return design.NoLimit()
	}
	return design.Limit(v)
}
