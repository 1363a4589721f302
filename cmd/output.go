package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/alexiusacademia/rccalc/internal/numeric"
	"go.uber.org/zap"
)

const (
	doubleRule = "═══════════════════════════════════════════════════════════════"
	singleRule = "───────────────────────────────────────────────────────────────"
)

func printTitle(out io.Writer, title string) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, doubleRule)
	fmt.Fprintf(out, "     %s\n", title)
	fmt.Fprintln(out, doubleRule)
	fmt.Fprintln(out)
}

func printHeading(out io.Writer, heading string) {
	fmt.Fprintln(out, heading)
	fmt.Fprintln(out, singleRule)
}

func newTable(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
}

func printBox(out io.Writer, text string) {
	fmt.Fprintf(out, "  ╔═════════════════════════════════════════╗\n")
	fmt.Fprintf(out, "  ║  %s\n", text)
	fmt.Fprintf(out, "  ╚═════════════════════════════════════════╝\n")
	fmt.Fprintln(out)
}

func check(ok bool) string {
	if ok {
		return "✓"
	}
	return "⚠"
}

// printWarnings lists out-of-range inputs and logs them
func printWarnings(out io.Writer, warnings []numeric.RangeWarning) {
	if len(warnings) == 0 {
		return
	}
	printHeading(out, "WARNINGS:")
	for _, w := range warnings {
		fmt.Fprintf(out, "  ⚠ %s\n", w)
		logger.Warn("input outside documented range",
			zap.String("param", w.Param),
			zap.Float64("value", w.Value),
			zap.Float64("min", w.Range.Min),
			zap.Float64("max", w.Range.Max))
	}
	fmt.Fprintln(out)
}

func printStatus(out io.Writer, message string) {
	printHeading(out, "STATUS:")
	fmt.Fprintf(out, "  %s\n", message)
	fmt.Fprintln(out)
}
