package serviceability

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/rccalc/internal/numeric"
	"github.com/alexiusacademia/rccalc/internal/section"
)

// GB 50010 Section 7.1 constants
const (
	// AlphaCrFlexure is the member characteristic coefficient αcr for RC flexural members
	AlphaCrFlexure = 1.9

	// RhoTeMin is the lower bound on the effective tension reinforcement ratio
	RhoTeMin = 0.01

	// Bounds on the strain non-uniformity coefficient ψ
	PsiMin = 0.2
	PsiMax = 1.0

	// Bounds on the cover cs used in the crack width formula (mm)
	CoverMin = 20.0
	CoverMax = 65.0

	// SteelStressLeverArm is the 0.87 lever-arm factor in σs = Mq/(0.87·h0·As)
	SteelStressLeverArm = 0.87
)

// EffectiveTensionRatio returns ρte = As/(0.5·b·h), never below 0.01
func EffectiveTensionRatio(as, b, h float64) (float64, error) {
	ate := 0.5 * b * h
	if ate <= 0 {
		return 0, numeric.Domain("EffectiveTensionRatio", "0.5*b*h", ate, "must be positive")
	}
	if as < 0 {
		return 0, numeric.Domain("EffectiveTensionRatio", "As", as, "must be >= 0")
	}
	return math.Max(as/ate, RhoTeMin), nil
}

// SteelStress returns σs = Mq/(0.87·h0·As) under quasi-permanent moment Mq (N·mm)
func SteelStress(mq, h0, as float64) (float64, error) {
	if h0 <= 0 {
		return 0, numeric.Domain("SteelStress", "h0", h0, "must be positive")
	}
	if as <= 0 {
		return 0, numeric.Domain("SteelStress", "As", as, "must be positive")
	}
	return mq / (SteelStressLeverArm * h0 * as), nil
}

// StrainNonUniformity returns ψ = 1.1 - 0.65·ftk/(ρte·σs) clamped to [0.2, 1.0]
func StrainNonUniformity(ftk, rhoTe, sigmaS float64) (float64, error) {
	if rhoTe <= 0 {
		return 0, numeric.Domain("StrainNonUniformity", "rho_te", rhoTe, "must be positive")
	}
	if sigmaS <= 0 {
		return 0, numeric.Domain("StrainNonUniformity", "sigma_s", sigmaS, "must be positive")
	}
	psi := 1.1 - 0.65*ftk/(rhoTe*sigmaS)
	return math.Max(PsiMin, math.Min(psi, PsiMax)), nil
}

// CrackInput holds the terms of the maximum crack width formula
type CrackInput struct {
	AlphaCr float64 // member coefficient, AlphaCrFlexure for beams
	Psi     float64 // strain non-uniformity ψ
	SigmaS  float64 // steel stress (MPa)
	Es      float64 // steel modulus (MPa)
	Cs      float64 // clear cover to outermost tension bar (mm), clamped to [20, 65]
	Deq     float64 // equivalent bar diameter (mm)
	RhoTe   float64 // effective tension reinforcement ratio
}

// MaxCrackWidth returns wmax = αcr·ψ·σs/Es·(1.9cs + 0.08·deq/ρte) in mm
func MaxCrackWidth(in CrackInput) (float64, error) {
	if in.Es <= 0 {
		return 0, numeric.Domain("MaxCrackWidth", "Es", in.Es, "must be positive")
	}
	if in.RhoTe <= 0 {
		return 0, numeric.Domain("MaxCrackWidth", "rho_te", in.RhoTe, "must be positive")
	}
	if in.Deq <= 0 {
		return 0, numeric.Domain("MaxCrackWidth", "deq", in.Deq, "must be positive")
	}
	cs := math.Max(CoverMin, math.Min(in.Cs, CoverMax))
	return in.AlphaCr * in.Psi * in.SigmaS / in.Es * (1.9*cs + 0.08*in.Deq/in.RhoTe), nil
}

// CheckCrackWidth reports w <= limit
func CheckCrackWidth(w, limit float64) bool {
	return w <= limit
}

// ShortTermStiffness returns Bs = Es·As·h0²/(1.15ψ + 0.2 + 6αEρ/(1 + 3.5γf')) in N·mm²
func ShortTermStiffness(es, as, h0, psi, alphaE, rho, gammaF float64) (float64, error) {
	if es <= 0 || as <= 0 || h0 <= 0 {
		return 0, numeric.Domain("ShortTermStiffness", "Es*As*h0", es*as*h0, "must be positive")
	}
	if gammaF < 0 {
		return 0, numeric.Domain("ShortTermStiffness", "gamma_f", gammaF, "must be >= 0")
	}
	denom := 1.15*psi + 0.2 + 6*alphaE*rho/(1+3.5*gammaF)
	return es * as * h0 * h0 / denom, nil
}

// LongTermFactor returns θ = 2.0 - 0.4·ρ'/ρ, between 1.6 and 2.0
func LongTermFactor(rho, rhoPrime float64) float64 {
	if rho <= 0 {
		return 2.0
	}
	return math.Max(1.6, 2.0-0.4*math.Min(rhoPrime/rho, 1))
}

// CrackCheck bundles the inputs of a crack width and stiffness check
type CrackCheck struct {
	Geometry section.Geometry
	Material section.Material // Es, Ec needed

	As       float64 // tension steel (mm²)
	AsPrime  float64 // compression steel (mm²)
	Deq      float64 // equivalent bar diameter (mm)
	Cs       float64 // clear cover (mm)
	Ftk      float64 // characteristic tensile strength (MPa)
	Mq       float64 // quasi-permanent moment (N·mm)
	Limit    float64 // wlim (mm)
	GammaF   float64 // γf' flange ratio, 0 for rectangles
	DeflLoad float64 // uniform quasi-permanent load for the deflection estimate (N/mm), 0 to skip
	DeflLim  float64 // span/DeflLim deflection limit, e.g. 200
}

// CrackResult holds the crack width and stiffness results
type CrackResult struct {
	RhoTe  float64
	SigmaS float64
	Psi    float64
	Wmax   float64 // mm

	Bs    float64 // short-term stiffness (N·mm²)
	Theta float64
	B     float64 // long-term stiffness Bs/θ (N·mm²)

	Deflection float64 // mm, 0 when not requested

	CrackOK      bool
	DeflectionOK bool
	Message      string
}

// Analyze runs the crack width check and, with a span and load, the
// long-term deflection check.
func (c CrackCheck) Analyze() (*CrackResult, error) {
	g, m := c.Geometry, c.Material
	if m.Es <= 0 || m.Ec <= 0 {
		return nil, numeric.Domain("CrackCheck", "Es*Ec", m.Es*m.Ec, "moduli must be positive")
	}

	r := &CrackResult{}
	var err error
	if r.RhoTe, err = EffectiveTensionRatio(c.As, g.B, g.H); err != nil {
		return nil, err
	}
	if r.SigmaS, err = SteelStress(c.Mq, g.H0, c.As); err != nil {
		return nil, err
	}
	if r.Psi, err = StrainNonUniformity(c.Ftk, r.RhoTe, r.SigmaS); err != nil {
		return nil, err
	}
	r.Wmax, err = MaxCrackWidth(CrackInput{
		AlphaCr: AlphaCrFlexure,
		Psi:     r.Psi,
		SigmaS:  r.SigmaS,
		Es:      m.Es,
		Cs:      c.Cs,
		Deq:     c.Deq,
		RhoTe:   r.RhoTe,
	})
	if err != nil {
		return nil, err
	}
	r.CrackOK = CheckCrackWidth(r.Wmax, c.Limit)

	alphaE, err := section.ElasticModulusRatio(m.Es, m.Ec)
	if err != nil {
		return nil, err
	}
	rho, err := section.RebarRatio(c.As, g.B, g.H0)
	if err != nil {
		return nil, err
	}
	if r.Bs, err = ShortTermStiffness(m.Es, c.As, g.H0, r.Psi, alphaE, rho, c.GammaF); err != nil {
		return nil, err
	}
	r.Theta = LongTermFactor(rho, c.AsPrime/(g.B*g.H0))
	r.B = r.Bs / r.Theta

	r.DeflectionOK = true
	if c.DeflLoad > 0 && g.Span > 0 {
		if r.Deflection, err = DeflectionUniform(c.DeflLoad, g.Span, r.B); err != nil {
			return nil, err
		}
		r.DeflectionOK = CheckDeflectionLimit(r.Deflection, g.Span, c.DeflLim)
	}

	r.Message = fmt.Sprintf("wmax = %.3f mm (limit %.2f mm)", r.Wmax, c.Limit)
	if !r.CrackOK {
		r.Message += " | WARNING: crack width exceeded"
	}
	if !r.DeflectionOK {
		r.Message += fmt.Sprintf(" | WARNING: deflection %.1f mm exceeds l/%.0f", r.Deflection, c.DeflLim)
	}
	return r, nil
}
