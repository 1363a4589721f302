package section

import (
	"bytes"
	"fmt"
	"os"

	"github.com/alexiusacademia/rccalc/internal/numeric"
	"gopkg.in/yaml.v3"
)

// DefaultEs is used when a definition leaves the steel modulus out (MPa)
const DefaultEs = 2.0e5

// RebarLayer is a layer of longitudinal bars lumped at its centroid
type RebarLayer struct {
	Y           float64 `yaml:"y"`    // mm above the lowest fiber of the outline
	Area        float64 `yaml:"area"` // mm²
	Description string  `yaml:"description,omitempty"`
}

// Definition describes an arbitrary polygonal section with its materials
// and bar layers, as read from a YAML file:
//
//	name: T-beam
//	fc: 14.3
//	fy: 360
//	vertices:
//	  - {x: 200, y: 0}
//	  - {x: 400, y: 0}
//	  - ...
//	reinforcement:
//	  - {y: 40, area: 1256, description: 4C20}
type Definition struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description,omitempty"`
	Fc          float64 `yaml:"fc"`
	Fy          float64 `yaml:"fy"`
	FyPrime     float64 `yaml:"fy_prime,omitempty"`
	Es          float64 `yaml:"es,omitempty"`

	Vertices      []Point      `yaml:"vertices"`
	Reinforcement []RebarLayer `yaml:"reinforcement"`
}

// Shape returns the concrete outline
func (d Definition) Shape() Shape {
	return Shape{Vertices: d.Vertices}
}

// Material returns the design strengths, with Es defaulted
func (d Definition) Material() Material {
	es := d.Es
	if es == 0 {
		es = DefaultEs
	}
	return Material{Fc: d.Fc, Fy: d.Fy, FyPrime: d.FyPrime, Es: es}
}

// Validate checks the outline, the materials and that every layer lies
// inside the section height.
func (d Definition) Validate() error {
	shape := d.Shape()
	if err := shape.Validate(); err != nil {
		return err
	}
	if err := d.Material().Validate(); err != nil {
		return err
	}
	if len(d.Reinforcement) == 0 {
		return fmt.Errorf("section %q has no reinforcement layers", d.Name)
	}

	bottom := shape.Top() - shape.Height()
	for i, layer := range d.Reinforcement {
		if layer.Area <= 0 {
			return numeric.Domain("Definition", fmt.Sprintf("reinforcement[%d].area", i), layer.Area, "must be positive")
		}
		if layer.Y <= bottom || layer.Y >= shape.Top() {
			return numeric.Domain("Definition", fmt.Sprintf("reinforcement[%d].y", i), layer.Y, "must lie inside the section")
		}
	}
	return nil
}

// ParseDefinition decodes and validates a YAML section definition.
// Unknown keys are rejected so a misspelt field does not silently become 0.
func ParseDefinition(data []byte) (Definition, error) {
	var d Definition
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		return Definition{}, fmt.Errorf("parse section: %w", err)
	}
	if err := d.Validate(); err != nil {
		return Definition{}, err
	}
	return d, nil
}

// LoadDefinition reads a section definition from a YAML file
func LoadDefinition(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("read section %s: %w", path, err)
	}
	return ParseDefinition(data)
}
