package serviceability

import (
	"math"

	"github.com/alexiusacademia/rccalc/internal/numeric"
)

func checkBeam(op string, l, ei float64) error {
	if l <= 0 {
		return numeric.Domain(op, "l", l, "must be positive")
	}
	if ei <= 0 {
		return numeric.Domain(op, "EI", ei, "must be positive")
	}
	return nil
}

// DeflectionUniform returns the midspan deflection 5wl⁴/(384EI) of a simply
// supported beam under uniform load w (N/mm).
func DeflectionUniform(w, l, ei float64) (float64, error) {
	if err := checkBeam("DeflectionUniform", l, ei); err != nil {
		return 0, err
	}
	return 5 * w * math.Pow(l, 4) / (384 * ei), nil
}

// DeflectionPoint returns Pl³/(48EI) for a midspan point load P (N)
func DeflectionPoint(p, l, ei float64) (float64, error) {
	if err := checkBeam("DeflectionPoint", l, ei); err != nil {
		return 0, err
	}
	return p * math.Pow(l, 3) / (48 * ei), nil
}

// DeflectionAtUniform returns the elastic curve ordinate at x for the
// uniform load case: w·x·(l³ - 2lx² + x³)/(24EI).
func DeflectionAtUniform(w, l, ei, x float64) (float64, error) {
	if err := checkBeam("DeflectionAtUniform", l, ei); err != nil {
		return 0, err
	}
	if x < 0 || x > l {
		return 0, numeric.Domain("DeflectionAtUniform", "x", x, "must lie on the span")
	}
	return w * x * (l*l*l - 2*l*x*x + x*x*x) / (24 * ei), nil
}

// DeflectionAtPoint returns the elastic curve ordinate at x for a midspan
// point load, symmetric about midspan: P·a·(3l² - 4a²)/(48EI), a = min(x, l-x).
func DeflectionAtPoint(p, l, ei, x float64) (float64, error) {
	if err := checkBeam("DeflectionAtPoint", l, ei); err != nil {
		return 0, err
	}
	if x < 0 || x > l {
		return 0, numeric.Domain("DeflectionAtPoint", "x", x, "must lie on the span")
	}
	a := math.Min(x, l-x)
	return p * a * (3*l*l - 4*a*a) / (48 * ei), nil
}

// CheckDeflectionLimit reports f <= l/ratio, e.g. ratio = 200 for l/200
func CheckDeflectionLimit(f, l, ratio float64) bool {
	if ratio <= 0 {
		return false
	}
	return f <= l/ratio
}

// CheckMinRebarRatio reports ρ >= ρmin
func CheckMinRebarRatio(rho, rhoMin float64) bool {
	return rho >= rhoMin
}

// CheckMaxRebarRatio reports ρ <= ρmax
func CheckMaxRebarRatio(rho, rhoMax float64) bool {
	return rho <= rhoMax
}
