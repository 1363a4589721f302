package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// SectionDiagramData holds data for drawing a flexural section diagram
type SectionDiagramData struct {
	// Section dimensions (mm)
	Width  float64
	Height float64
	H0     float64 // effective depth

	// Compression zone
	X      float64 // equivalent rectangular block depth from top (mm)
	Xi     float64 // ξ = x/h0
	XiB    float64 // ξb
	Alpha1 float64

	// Reinforcement
	TensionSteelArea float64 // mm²
	CompSteelArea    float64 // mm², 0 if none
	CompSteelDepth   float64 // a's from top (mm)

	// Stresses (MPa)
	Fc float64
	Fy float64

	OverReinforced bool
	IsDoubly       bool
}

// BalancedDepth returns ξb·h0
func (d SectionDiagramData) BalancedDepth() float64 {
	return d.XiB * d.H0
}

func (d SectionDiagramData) line(depth float64, rows int) int {
	if d.Height <= 0 {
		return 0
	}
	return int(depth / d.Height * float64(rows))
}

// DrawASCIISectionDiagram renders the section with the compression block,
// the balanced depth ξb·h0 and the steel layers.
func DrawASCIISectionDiagram(data SectionDiagramData) string {
	var sb strings.Builder

	widthChars := 30
	heightChars := 20

	xLine := data.line(data.X, heightChars)
	xbLine := data.line(data.BalancedDepth(), heightChars)
	tensionLine := data.line(data.H0, heightChars)
	compLine := data.line(data.CompSteelDepth, heightChars)

	sb.WriteString("\n")
	sb.WriteString("  SECTION                              STRESS\n")
	sb.WriteString("  ───────                              ──────\n")

	for i := 0; i <= heightChars; i++ {
		switch i {
		case 0:
			sb.WriteString(fmt.Sprintf("  ┌%s┐", strings.Repeat("─", widthChars)))
		case heightChars:
			sb.WriteString(fmt.Sprintf("  └%s┘", strings.Repeat("─", widthChars)))
		default:
			fill := []rune(strings.Repeat(" ", widthChars))
			if i <= xLine {
				fill = []rune(strings.Repeat("░", widthChars))
			}
			mid := widthChars / 2
			if data.IsDoubly && i == compLine {
				copy(fill[mid-2:], []rune("●──●"))
			}
			if i == tensionLine {
				copy(fill[mid-3:], []rune("●────●"))
			}
			sb.WriteString(fmt.Sprintf("  │%s│", string(fill)))
		}

		switch {
		case i == xLine && xLine > 0:
			sb.WriteString(fmt.Sprintf(" ◄─ x = %.1f mm", data.X))
		case i == xbLine && xbLine > 0:
			sb.WriteString(fmt.Sprintf(" ◄─ ξb·h0 = %.1f mm", data.BalancedDepth()))
		case i == tensionLine:
			sb.WriteString(fmt.Sprintf(" ◄─ As = %.0f mm², fy = %.0f MPa", data.TensionSteelArea, data.Fy))
		case data.IsDoubly && i == compLine && compLine > 0:
			sb.WriteString(fmt.Sprintf(" ◄─ As' = %.0f mm²", data.CompSteelArea))
		case i == 0:
			sb.WriteString(fmt.Sprintf(" ◄─ α1·fc = %.1f MPa", data.Alpha1*data.Fc))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  ░░░ = Compression zone\n")
	sb.WriteString("  ●●● = Reinforcement\n")
	sb.WriteString(fmt.Sprintf("  ξ = %.3f, ξb = %.3f", data.Xi, data.XiB))
	if data.OverReinforced {
		sb.WriteString("  (over-reinforced)")
	}
	sb.WriteString("\n")

	return sb.String()
}

// DrawStressBlock creates a simple equivalent stress block diagram
func DrawStressBlock(data SectionDiagramData) string {
	var sb strings.Builder

	cc := data.Alpha1 * data.Fc * data.Width * data.X

	sb.WriteString("\n")
	sb.WriteString("  EQUIVALENT RECTANGULAR STRESS BLOCK\n")
	sb.WriteString("  ────────────────────────────────────\n\n")
	sb.WriteString("       ┌───────────────┐\n")
	sb.WriteString(fmt.Sprintf("       │  α1·fc        │ ← x = %.1f mm\n", data.X))
	sb.WriteString(fmt.Sprintf("       │  = %-8.1f   │\n", data.Alpha1*data.Fc))
	sb.WriteString(fmt.Sprintf("       └───────────────┘ ─── C = α1·fc·b·x = %.1f kN\n", cc/1000))
	sb.WriteString("                         │\n")
	sb.WriteString("                         │  (h0 - x/2)\n")
	sb.WriteString("                         │\n")
	sb.WriteString("       ●═══════════════● ← Tension steel\n")
	sb.WriteString(fmt.Sprintf("         As = %.1f mm²\n", data.TensionSteelArea))
	sb.WriteString(fmt.Sprintf("         T = fy·As = %.1f kN\n", data.TensionSteelArea*data.Fy/1000))

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	pad := func(s string) string {
		return s + strings.Repeat(" ", maxLen-4-len([]rune(s)))
	}

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// DrawDeflectionCurve renders the sagging elastic curve as a terminal
// chart, one column per station. An odd width places a station at midspan.
func DrawDeflectionCurve(d DeflectionPlotData, width int) (string, error) {
	pts, err := DeflectionCurve(d, width-1)
	if err != nil {
		return "", err
	}
	sag := make([]float64, len(pts))
	for i, pt := range pts {
		sag[i] = -pt.Y
	}

	chart := asciigraph.Plot(sag,
		asciigraph.Height(8),
		asciigraph.Precision(2),
		asciigraph.Caption(fmt.Sprintf("deflection (mm) over l = %.0f mm", d.Span)))
	return chart + "\n", nil
}
