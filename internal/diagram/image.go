package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/alexiusacademia/rccalc/internal/numeric"
	"github.com/alexiusacademia/rccalc/internal/profile"
	"github.com/alexiusacademia/rccalc/internal/section"
	"github.com/alexiusacademia/rccalc/internal/serviceability"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	blockFill   = color.RGBA{R: 100, G: 149, B: 237, A: 150}
	blockEdge   = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	steelColor  = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	limitColor  = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	curveColor  = color.RGBA{R: 0, G: 100, B: 0, A: 255}
	dashPattern = []vg.Length{vg.Points(5), vg.Points(3)}
)

// ExportSectionDiagram exports the section outline with its compression
// block and steel layers. A shape with vertices is drawn as given,
// otherwise a Width×Height rectangle is used.
func ExportSectionDiagram(data SectionDiagramData, shape section.Shape, filename string) error {
	p := plot.New()
	p.Title.Text = "Flexural Section"
	p.X.Label.Text = "Width (mm)"
	p.Y.Label.Text = "Height (mm)"

	if len(shape.Vertices) < 3 {
		shape = section.Rectangle(data.Width, data.Height)
	}
	top := shape.Top()

	outline := toXYs(shape.Vertices)
	outline = append(outline, outline[0])
	minX, maxX := outline[0].X, outline[0].X
	for _, v := range outline {
		minX = min(minX, v.X)
		maxX = max(maxX, v.X)
	}

	beamLine, err := plotter.NewLine(outline)
	if err != nil {
		return err
	}
	beamLine.LineStyle.Width = vg.Points(2)
	beamLine.LineStyle.Color = color.Black
	p.Add(beamLine)

	if block := shape.ClipAbove(data.X); len(block.Vertices) >= 3 {
		poly, err := plotter.NewPolygon(toXYs(block.Vertices))
		if err != nil {
			return err
		}
		poly.Color = blockFill
		poly.LineStyle.Color = blockEdge
		p.Add(poly)
	}

	// balanced depth ξb·h0
	xbY := top - data.BalancedDepth()
	xbLine, err := plotter.NewLine(plotter.XYs{{X: minX - 20, Y: xbY}, {X: maxX + 20, Y: xbY}})
	if err != nil {
		return err
	}
	xbLine.LineStyle.Width = vg.Points(1.5)
	xbLine.LineStyle.Color = limitColor
	xbLine.LineStyle.Dashes = dashPattern
	p.Add(xbLine)

	tensionY := top - data.H0
	webMin, webMax := findWidthAtY(shape.Vertices, tensionY, minX, maxX)
	webCenter := (webMin + webMax) / 2
	webWidth := webMax - webMin

	steel := plotter.XYs{
		{X: webCenter - webWidth*0.3, Y: tensionY},
		{X: webCenter, Y: tensionY},
		{X: webCenter + webWidth*0.3, Y: tensionY},
	}
	if data.IsDoubly && data.CompSteelArea > 0 {
		compY := top - data.CompSteelDepth
		steel = append(steel,
			plotter.XY{X: webCenter - webWidth*0.3, Y: compY},
			plotter.XY{X: webCenter + webWidth*0.3, Y: compY},
		)
	}
	bars, err := plotter.NewScatter(steel)
	if err != nil {
		return err
	}
	bars.GlyphStyle.Color = steelColor
	bars.GlyphStyle.Radius = vg.Points(5)
	bars.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(bars)

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs: []plotter.XY{
			{X: maxX + 30, Y: xbY},
			{X: maxX + 30, Y: top - data.X/2},
			{X: webCenter, Y: tensionY - 25},
		},
		Labels: []string{
			"ξb·h0",
			fmt.Sprintf("x=%.1fmm", data.X),
			fmt.Sprintf("As=%.0fmm²", data.TensionSteelArea),
		},
	})
	if err != nil {
		return err
	}
	p.Add(labels)

	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}

// DeflectionPlotData describes a simply supported beam for the elastic
// curve plot.
type DeflectionPlotData struct {
	Span       float64 // mm
	EI         float64 // N·mm²
	Load       float64 // w (N/mm) or P (N)
	PointLoad  bool    // midspan point load instead of uniform load
	LimitRatio float64 // draws the l/LimitRatio line when > 0
}

// DeflectionCurve samples the elastic curve at samples+1 evenly spaced
// stations. Ordinates are positive downward.
func DeflectionCurve(d DeflectionPlotData, samples int) (plotter.XYs, error) {
	if samples < 2 {
		return nil, numeric.Domain("DeflectionCurve", "samples", float64(samples), "must be >= 2")
	}
	fn := serviceability.DeflectionAtUniform
	if d.PointLoad {
		fn = serviceability.DeflectionAtPoint
	}

	pts := make(plotter.XYs, samples+1)
	for i := range pts {
		x := d.Span * float64(i) / float64(samples)
		if i == samples {
			x = d.Span
		}
		y, err := fn(d.Load, d.Span, d.EI, x)
		if err != nil {
			return nil, err
		}
		pts[i] = plotter.XY{X: x, Y: y}
	}
	return pts, nil
}

// ExportDeflectionCurve plots the elastic curve and, when requested, the
// allowable deflection line.
func ExportDeflectionCurve(d DeflectionPlotData, filename string) error {
	pts, err := DeflectionCurve(d, 50)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = "Deflection"
	p.X.Label.Text = "x (mm)"
	p.Y.Label.Text = "Deflection (mm)"

	sag := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		sag[i] = plotter.XY{X: pt.X, Y: -pt.Y}
	}
	curve, err := plotter.NewLine(sag)
	if err != nil {
		return err
	}
	curve.LineStyle.Width = vg.Points(2)
	curve.LineStyle.Color = curveColor
	p.Add(curve)

	if d.LimitRatio > 0 {
		limit := -d.Span / d.LimitRatio
		ll, err := plotter.NewLine(plotter.XYs{{X: 0, Y: limit}, {X: d.Span, Y: limit}})
		if err != nil {
			return err
		}
		ll.LineStyle.Color = limitColor
		ll.LineStyle.Dashes = dashPattern
		p.Add(ll)
		p.Legend.Add(fmt.Sprintf("l/%.0f", d.LimitRatio), ll)
	}
	p.Legend.Add("elastic curve", curve)

	return save(p, 8*vg.Inch, 4*vg.Inch, filename)
}

// ExportStabilityCurve plots φ against l0/b for a stability table
func ExportStabilityCurve(curve profile.StabilityCurve, filename string) error {
	if err := curve.Validate(); err != nil {
		return err
	}

	last := curve.Threshold
	if n := len(curve.Points); n > 0 {
		last = curve.Points[n-1].Slenderness
	}
	last += 5

	const samples = 100
	line := make(plotter.XYs, samples+1)
	for i := range line {
		r := last * float64(i) / samples
		phi, err := curve.Factor(r)
		if err != nil {
			return err
		}
		line[i] = plotter.XY{X: r, Y: phi}
	}

	table := make(plotter.XYs, len(curve.Points))
	for i, pt := range curve.Points {
		table[i] = plotter.XY{X: pt.Slenderness, Y: pt.Phi}
	}

	p := plot.New()
	p.Title.Text = "Stability Factor"
	p.X.Label.Text = "l0/b"
	p.Y.Label.Text = "φ"
	p.Y.Min = 0
	p.Y.Max = 1.05

	l, err := plotter.NewLine(line)
	if err != nil {
		return err
	}
	l.LineStyle.Width = vg.Points(2)
	l.LineStyle.Color = curveColor
	p.Add(l)

	if len(table) > 0 {
		s, err := plotter.NewScatter(table)
		if err != nil {
			return err
		}
		s.GlyphStyle.Color = limitColor
		s.GlyphStyle.Radius = vg.Points(3)
		p.Add(s)
	}

	return save(p, 6*vg.Inch, 4*vg.Inch, filename)
}

// save writes the plot, inferring the format from the extension and
// falling back to png.
func save(p *plot.Plot, width, height vg.Length, filename string) error {
	if dir := filepath.Dir(filename); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

func toXYs(vertices []section.Point) plotter.XYs {
	xys := make(plotter.XYs, len(vertices))
	for i, v := range vertices {
		xys[i] = plotter.XY{X: v.X, Y: v.Y}
	}
	return xys
}

// findWidthAtY finds the min and max X at a given Y level
func findWidthAtY(vertices []section.Point, y, defaultMin, defaultMax float64) (float64, float64) {
	var xs []float64
	n := len(vertices)
	for i := 0; i < n; i++ {
		curr := vertices[i]
		next := vertices[(i+1)%n]
		if (curr.Y <= y && next.Y > y) || (next.Y <= y && curr.Y > y) {
			t := (y - curr.Y) / (next.Y - curr.Y)
			xs = append(xs, curr.X+t*(next.X-curr.X))
		}
	}
	if len(xs) < 2 {
		return defaultMin, defaultMax
	}

	lo, hi := xs[0], xs[0]
	for _, x := range xs {
		lo = min(lo, x)
		hi = max(hi, x)
	}
	return lo, hi
}
