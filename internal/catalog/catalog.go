// Package catalog maps actuator model names to rotational inertias.
package catalog

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Spec describes one actuator model.
type Spec struct {
	Model   string  `yaml:"model" json:"model"`
	Inertia float64 `yaml:"inertia" json:"inertia"` // kg·m²
}

// Catalog is an immutable model-to-inertia lookup, built once at load
// time and safe for concurrent reads.
type Catalog struct {
	specs map[string]Spec
}

// Builtin inertias for the EnCos actuator line.
var builtin = map[string]float64{
	"4310": 0.0231825,
	"4315": 0.0415820,
	"6408": 0.0390686,
	"8112": 0.0596423,
	"8116": 0.0753178,
}

// DefaultModel is the catalog entry selected when none is given.
const DefaultModel = "6408"

// Default returns the builtin catalog.
func Default() *Catalog {
	specs := make(map[string]Spec, len(builtin))
	for model, j := range builtin {
		specs[model] = Spec{Model: model, Inertia: j}
	}
	return &Catalog{specs: specs}
}

// Load returns the builtin catalog overlaid with model: inertia pairs
// from a yaml file. File entries override builtins; a non-positive
// inertia is rejected.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	entries := make(map[string]float64)
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	cat := Default()
	for model, j := range entries {
		if j <= 0 {
			return nil, fmt.Errorf("catalog: model %q has non-positive inertia %g", model, j)
		}
		cat.specs[model] = Spec{Model: model, Inertia: j}
	}
	return cat, nil
}

// Get looks up an actuator model.
func (c *Catalog) Get(model string) (Spec, bool) {
	spec, ok := c.specs[model]
	return spec, ok
}

// Models returns all model names in sorted order.
func (c *Catalog) Models() []string {
	models := make([]string, 0, len(c.specs))
	for model := range c.specs {
		models = append(models, model)
	}
	sort.Strings(models)
	return models
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.specs)
}
