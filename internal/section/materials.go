package section

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Stress block constants for concrete up to C50 (GB 50010 Section 6.2.6)
const (
	Beta1     = 0.8    // depth factor of the equivalent rectangular block
	EpsilonCU = 0.0033 // ultimate concrete strain
)

// ConcreteGrade holds design values for a concrete strength class (MPa)
type ConcreteGrade struct {
	Name string
	Fc   float64 // design compressive strength
	Ft   float64 // design tensile strength
	Ftk  float64 // characteristic tensile strength
	Ec   float64 // elastic modulus
}

// SteelGrade holds design values for a rebar grade (MPa)
type SteelGrade struct {
	Name    string
	Fy      float64
	FyPrime float64
	Es      float64
}

// GB 50010 Tables 4.1.4, 4.1.5, 4.2.3 and 4.2.5
var concreteGrades = map[string]ConcreteGrade{
	"C20": {"C20", 9.6, 1.10, 1.54, 2.55e4},
	"C25": {"C25", 11.9, 1.27, 1.78, 2.80e4},
	"C30": {"C30", 14.3, 1.43, 2.01, 3.00e4},
	"C35": {"C35", 16.7, 1.57, 2.20, 3.15e4},
	"C40": {"C40", 19.1, 1.71, 2.39, 3.25e4},
	"C45": {"C45", 21.1, 1.80, 2.51, 3.35e4},
	"C50": {"C50", 23.1, 1.89, 2.64, 3.45e4},
}

var steelGrades = map[string]SteelGrade{
	"HPB300": {"HPB300", 270, 270, 2.1e5},
	"HRB335": {"HRB335", 300, 300, 2.0e5},
	"HRB400": {"HRB400", 360, 360, 2.0e5},
	"HRB500": {"HRB500", 435, 410, 2.0e5},
}

// Concrete looks a strength class up by name, e.g. "C30"
func Concrete(name string) (ConcreteGrade, error) {
	g, ok := concreteGrades[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return ConcreteGrade{}, fmt.Errorf("unknown concrete grade %q (have %s)", name, strings.Join(gradeNames(concreteGrades), ", "))
	}
	return g, nil
}

// Steel looks a rebar grade up by name, e.g. "HRB400"
func Steel(name string) (SteelGrade, error) {
	g, ok := steelGrades[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return SteelGrade{}, fmt.Errorf("unknown steel grade %q (have %s)", name, strings.Join(gradeNames(steelGrades), ", "))
	}
	return g, nil
}

func gradeNames[T any](m map[string]T) []string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Apply copies the grade strengths and modulus into m
func (c ConcreteGrade) Apply(m *Material) {
	m.Fc, m.Ft, m.Ec = c.Fc, c.Ft, c.Ec
}

// Apply copies the grade strengths and modulus into m
func (s SteelGrade) Apply(m *Material) {
	m.Fy, m.FyPrime, m.Es = s.Fy, s.FyPrime, s.Es
}

// BalancedXi returns ξb = β1/(1 + fy/(Es·εcu)) for steel with a yield plateau
func BalancedXi(fy, es float64) float64 {
	return Beta1 / (1 + fy/(es*EpsilonCU))
}

// MinRebarRatio returns ρmin = max(0.2%, 0.45·ft/fy) for flexural members
func MinRebarRatio(ft, fy float64) float64 {
	return math.Max(0.002, 0.45*ft/fy)
}
