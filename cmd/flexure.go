package cmd

import (
	"github.com/alexiusacademia/rccalc/internal/profile"
	"github.com/alexiusacademia/rccalc/internal/section"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flexureConcrete string
	flexureSteel    string
)

var flexureCmd = &cobra.Command{
	Use:     "flexure",
	Aliases: []string{"beam"},
	Short:   "Flexural capacity of rectangular beam sections",
	Long: `Design and analyze rectangular reinforced concrete beam sections
in bending using the equivalent rectangular stress block.

Subcommands:
  analyze  - Moment capacity for a given tension steel area
  design   - Required tension steel for a design moment
  doubly   - Doubly reinforced analysis and design

--concrete and --steel take grade names (C20-C50, HPB300-HRB500) and
override --fc/--fy. A steel grade also sets ξb from the grade, and a
concrete grade raises ρmin to 0.45·ft/fy when that is larger.

Over-reinforced sections (ξ > ξb) are reported, never capped.`,
}

func init() {
	rootCmd.AddCommand(flexureCmd)

	flexureCmd.PersistentFlags().StringVar(&flexureConcrete, "concrete", "", "Concrete grade, e.g. C30")
	flexureCmd.PersistentFlags().StringVar(&flexureSteel, "steel", "", "Steel grade, e.g. HRB400")
}

// applyGrades overlays the named grades on m and returns the profile
// adjusted for them.
func applyGrades(m *section.Material) (profile.Profile, error) {
	p := activeProfile
	if flexureConcrete != "" {
		c, err := section.Concrete(flexureConcrete)
		if err != nil {
			return p, err
		}
		c.Apply(m)
	}
	if flexureSteel != "" {
		s, err := section.Steel(flexureSteel)
		if err != nil {
			return p, err
		}
		s.Apply(m)
		p.XiB = section.BalancedXi(s.Fy, s.Es)
	}
	if flexureConcrete != "" && m.Fy > 0 {
		p.RhoMin = max(p.RhoMin, section.MinRebarRatio(m.Ft, m.Fy))
	}
	if flexureConcrete != "" || flexureSteel != "" {
		logger.Debug("grades applied",
			zap.String("concrete", flexureConcrete),
			zap.String("steel", flexureSteel),
			zap.Float64("xi_b", p.XiB),
			zap.Float64("rho_min", p.RhoMin))
	}
	return p, nil
}
