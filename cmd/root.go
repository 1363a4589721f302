package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/alexiusacademia/rccalc/internal/profile"
	"github.com/alexiusacademia/rccalc/internal/version"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ProfileEnv names the environment variable holding a profile path
const ProfileEnv = "RCCALC_PROFILE"

var (
	verbose     bool
	profilePath string

	logger        *zap.Logger
	activeProfile profile.Profile
)

var rootCmd = &cobra.Command{
	Use:   "rccalc",
	Short: "Reinforced and prestressed concrete calculation tool",
	Long: `rccalc - Reinforced Concrete Calculator

A CLI tool for limit-state checks of reinforced and prestressed
concrete members following GB 50010 conventions.

This tool computes:
  - Flexural capacity and required steel (singly and doubly reinforced)
  - Shear capacity with and without stirrups
  - Axial compression with stability factor, and axial tension
  - Prestress losses and effective prestress
  - Deflection, crack width and reinforcement ratio checks

Code constants come from a design profile. The built-in profile is
GB50010-2010; pass --profile or set RCCALC_PROFILE to use a YAML file.
All inputs are in mm, N and MPa unless a flag says otherwise.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load .env: %w", err)
		}

		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		activeProfile, err = resolveProfile()
		if err != nil {
			return err
		}
		logger.Debug("profile selected",
			zap.String("name", activeProfile.Name),
			zap.String("path", profilePath))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   rccalc v%-48s║\n", version.Version)
		fmt.Fprintln(out, "  ║   Reinforced Concrete Calculator                          ║")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "  Active profile: %s\n", activeProfile.Name)
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'rccalc --help' to see available commands.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ─────────────────────────────────────────────────────────────")
		fmt.Fprintf(out, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Fprintln(out)
	},
}

// resolveProfile picks the --profile flag, then RCCALC_PROFILE, then the
// built-in default.
func resolveProfile() (profile.Profile, error) {
	path := profilePath
	if path == "" {
		path = os.Getenv(ProfileEnv)
	}
	if path == "" {
		return profile.Default(), nil
	}
	profilePath = path
	return profile.LoadFromFile(path)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceErrors = true

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&profilePath, "profile", "", "Design profile YAML file (default built-in GB50010-2010, env "+ProfileEnv+")")
}
