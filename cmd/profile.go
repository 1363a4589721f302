package cmd

import (
	"fmt"

	"github.com/alexiusacademia/rccalc/internal/diagram"
	"github.com/alexiusacademia/rccalc/internal/profile"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Inspect the active design profile",
	Long: `Show or export the design-code constants in use.

Write the built-in profile to a file, edit it, then select it with
--profile or RCCALC_PROFILE:
  rccalc profile show > my-profile.yaml
  rccalc --profile my-profile.yaml flexure analyze ...`,
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active profile as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := profile.Marshal(activeProfile)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var profileStabilityCmd = &cobra.Command{
	Use:   "stability <output>",
	Short: "Plot the stability factor curve of the active profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := diagram.ExportStabilityCurve(activeProfile.Stability, args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  Stability curve saved to %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileStabilityCmd)
}
