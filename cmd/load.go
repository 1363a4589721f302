package cmd

import (
	"errors"
	"fmt"

	"github.com/alexiusacademia/rccalc/internal/profile"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	loadDead float64
	loadLive float64
	loadWind float64
	showAll  bool
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Factored load effect from the profile load combinations",
	Long: `Calculate the governing factored effect (moment, shear or axial force)
from unfactored effects using the load combinations of the active profile.

Load Types:
  G  - Permanent (dead) load
  Q  - Variable (live) load
  W  - Wind load

Examples:
  # Gravity loads
  rccalc load --dead 50 --live 30

  # With wind, showing every combination
  rccalc load --dead 50 --live 30 --wind 20 --all`,
	RunE: runLoad,
}

func init() {
	rootCmd.AddCommand(loadCmd)

	loadCmd.Flags().Float64VarP(&loadDead, "dead", "d", 0, "Effect of permanent load G")
	loadCmd.Flags().Float64VarP(&loadLive, "live", "q", 0, "Effect of variable load Q")
	loadCmd.Flags().Float64VarP(&loadWind, "wind", "w", 0, "Effect of wind load W")
	loadCmd.Flags().BoolVarP(&showAll, "all", "a", false, "Show all load combination results")
}

func runLoad(cmd *cobra.Command, args []string) error {
	effects := profile.LoadEffects{Dead: loadDead, Live: loadLive, Wind: loadWind}
	if effects == (profile.LoadEffects{}) {
		return errors.New("provide at least one unfactored effect, see 'rccalc load --help'")
	}

	combinations := activeProfile.Combinations
	if len(combinations) == 0 {
		return fmt.Errorf("profile %q has no load combinations", activeProfile.Name)
	}
	governing, combo := profile.Governing(effects, combinations)
	logger.Debug("governing combination", zap.String("id", combo.ID), zap.Float64("effect", governing))

	out := cmd.OutOrStdout()
	printTitle(out, "FACTORED LOAD EFFECT - "+activeProfile.Name)

	printHeading(out, "UNFACTORED EFFECTS:")
	w := newTable(out)
	if effects.Dead != 0 {
		fmt.Fprintf(w, "  Permanent (G):\t%.2f\n", effects.Dead)
	}
	if effects.Live != 0 {
		fmt.Fprintf(w, "  Variable (Q):\t%.2f\n", effects.Live)
	}
	if effects.Wind != 0 {
		fmt.Fprintf(w, "  Wind (W):\t%.2f\n", effects.Wind)
	}
	w.Flush()
	fmt.Fprintln(out)

	if showAll {
		printHeading(out, "LOAD COMBINATIONS:")
		w = newTable(out)
		fmt.Fprintf(w, "  #\tCombination\tEffect\n")
		fmt.Fprintf(w, "  ─\t───────────\t──────\n")
		for _, c := range combinations {
			marker := ""
			if c.ID == combo.ID {
				marker = " ← GOVERNS"
			}
			fmt.Fprintf(w, "  %s\t%s\t%.2f%s\n", c.ID, c.Description, c.Factored(effects), marker)
		}
		w.Flush()
		fmt.Fprintln(out)
	}

	printHeading(out, "RESULT:")
	fmt.Fprintf(out, "  Governing Combination: %s (%s)\n", combo.ID, combo.Description)
	fmt.Fprintln(out)
	printBox(out, fmt.Sprintf("FACTORED EFFECT = %.2f", governing))
	return nil
}
