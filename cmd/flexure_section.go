package cmd

import (
	"fmt"
	"io"

	"github.com/alexiusacademia/rccalc/internal/flexure"
	"github.com/alexiusacademia/rccalc/internal/profile"
	"github.com/alexiusacademia/rccalc/internal/section"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var flexureSectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Flexure of T, L and arbitrary polygonal sections",
	Long: `Design and analyze sections of any polygonal outline defined in a
YAML file, using plane sections with εcu = 0.0033 at the top fiber and
an α1·fc block of depth 0.8·xn over the clipped outline.

Subcommands:
  analyze  - Moment capacity for the defined reinforcement
  design   - Tension steel required for a design moment

Example YAML file:
  name: T-beam
  fc: 14.3
  fy: 360
  vertices:
    - {x: 200, y: 0}
    - {x: 400, y: 0}
    - {x: 400, y: 400}
    - {x: 600, y: 400}
    - {x: 600, y: 500}
    - {x: 0, y: 500}
    - {x: 0, y: 400}
    - {x: 200, y: 400}
  reinforcement:
    - {y: 40, area: 1256, description: 4C20}`,
}

func init() {
	flexureCmd.AddCommand(flexureSectionCmd)
}

// loadSection reads a section file and applies the grade flags
func loadSection(path string) (section.Definition, section.Material, profile.Profile, error) {
	d, err := section.LoadDefinition(path)
	if err != nil {
		return d, section.Material{}, activeProfile, err
	}
	m := d.Material()
	p, err := applyGrades(&m)
	if err != nil {
		return d, m, p, err
	}
	logger.Debug("section loaded",
		zap.String("name", d.Name),
		zap.Int("vertices", len(d.Vertices)),
		zap.Int("layers", len(d.Reinforcement)))
	return d, m, p, nil
}

func printLayers(out io.Writer, layers []flexure.LayerResult) {
	printHeading(out, "REINFORCEMENT LAYERS:")
	w := newTable(out)
	fmt.Fprintf(w, "  y (mm)\tdepth (mm)\tAs (mm²)\tε\tσ (MPa)\tF (kN)\t\n")
	for _, l := range layers {
		state := ""
		if l.Yielded {
			state = "yielded"
		}
		fmt.Fprintf(w, "  %.0f\t%.0f\t%.1f\t%.5f\t%.1f\t%.1f\t%s %s\n",
			l.Y, l.Depth, l.Area, l.Strain, l.Stress, l.Force/1e3, state, l.Description)
	}
	w.Flush()
	fmt.Fprintln(out)
}
