package section

import (
	"math"
	"sort"

	"github.com/alexiusacademia/rccalc/internal/numeric"
)

// Point represents a 2D coordinate (mm)
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Shape is a concrete outline defined by vertices.
// Y points upward, vertices go around the outline once (either direction)
// and the polygon is assumed simple.
type Shape struct {
	Vertices []Point
}

// Rectangle returns a b×h outline with the origin at the bottom-left corner
func Rectangle(b, h float64) Shape {
	return Shape{Vertices: []Point{{0, 0}, {b, 0}, {b, h}, {0, h}}}
}

// TSection returns a T outline: web bw×h with a top flange bf×hf, centered
func TSection(bw, h, bf, hf float64) Shape {
	off := (bf - bw) / 2
	return Shape{Vertices: []Point{
		{off, 0},
		{off + bw, 0},
		{off + bw, h - hf},
		{bf, h - hf},
		{bf, h},
		{0, h},
		{0, h - hf},
		{off, h - hf},
	}}
}

// Validate rejects degenerate outlines
func (s Shape) Validate() error {
	if len(s.Vertices) < 3 {
		return numeric.Domain("Shape", "vertices", float64(len(s.Vertices)), "need at least 3")
	}
	if a := s.Area(); a <= 0 {
		return numeric.Domain("Shape", "area", a, "must be positive")
	}
	return nil
}

// Top returns the highest ordinate of the outline
func (s Shape) Top() float64 {
	if len(s.Vertices) == 0 {
		return 0
	}
	top := s.Vertices[0].Y
	for _, v := range s.Vertices {
		top = math.Max(top, v.Y)
	}
	return top
}

// ClipAbove returns the part of the outline within depth of the top fiber.
// A zero or negative depth gives an empty shape.
func (s Shape) ClipAbove(depth float64) Shape {
	if len(s.Vertices) < 3 || depth <= 0 {
		return Shape{}
	}
	clipY := s.Top() - depth

	var out []Point
	n := len(s.Vertices)
	for i := 0; i < n; i++ {
		curr, next := s.Vertices[i], s.Vertices[(i+1)%n]
		currAbove, nextAbove := curr.Y >= clipY, next.Y >= clipY

		if currAbove {
			out = append(out, curr)
		}
		if currAbove != nextAbove {
			t := (clipY - curr.Y) / (next.Y - curr.Y)
			out = append(out, Point{X: curr.X + t*(next.X-curr.X), Y: clipY})
		}
	}
	return Shape{Vertices: out}
}

// Height returns the vertical extent
func (s Shape) Height() float64 {
	if len(s.Vertices) == 0 {
		return 0
	}
	minY, maxY := s.Vertices[0].Y, s.Vertices[0].Y
	for _, v := range s.Vertices {
		minY = math.Min(minY, v.Y)
		maxY = math.Max(maxY, v.Y)
	}
	return maxY - minY
}

// Area returns the gross area using the shoelace formula
func (s Shape) Area() float64 {
	a, _, _ := s.areaAndCentroid()
	return math.Abs(a)
}

// Centroid returns the centroid coordinates
func (s Shape) Centroid() (cx, cy float64) {
	_, cx, cy = s.areaAndCentroid()
	return cx, cy
}

// areaAndCentroid returns the signed area and the centroid
func (s Shape) areaAndCentroid() (signedArea, cx, cy float64) {
	n := len(s.Vertices)
	if n < 3 {
		return 0, 0, 0
	}

	var sumX, sumY float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := s.Vertices[i].X*s.Vertices[j].Y - s.Vertices[j].X*s.Vertices[i].Y
		signedArea += cross
		sumX += (s.Vertices[i].X + s.Vertices[j].X) * cross
		sumY += (s.Vertices[i].Y + s.Vertices[j].Y) * cross
	}
	signedArea /= 2

	if signedArea != 0 {
		cx = sumX / (6 * signedArea)
		cy = sumY / (6 * signedArea)
	}
	return signedArea, cx, cy
}

// SecondMoment returns I about the horizontal axis through the centroid (mm⁴)
func (s Shape) SecondMoment() float64 {
	n := len(s.Vertices)
	if n < 3 {
		return 0
	}
	signedArea, _, cy := s.areaAndCentroid()

	var ix float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		vi, vj := s.Vertices[i], s.Vertices[j]
		cross := vi.X*vj.Y - vj.X*vi.Y
		ix += (vi.Y*vi.Y + vi.Y*vj.Y + vj.Y*vj.Y) * cross
	}
	ix /= 12
	if signedArea < 0 {
		ix, signedArea = -ix, -signedArea
	}
	return ix - signedArea*cy*cy
}

// WidthAtDepth returns the section width at a depth measured from the top
func (s Shape) WidthAtDepth(depthFromTop float64) float64 {
	if len(s.Vertices) < 3 {
		return 0
	}
	return s.widthAtY(s.Top() - depthFromTop)
}

// widthAtY sums the chord lengths of a horizontal line through the polygon
func (s Shape) widthAtY(y float64) float64 {
	var xs []float64
	n := len(s.Vertices)
	for i := 0; i < n; i++ {
		v1, v2 := s.Vertices[i], s.Vertices[(i+1)%n]
		if (v1.Y <= y && v2.Y > y) || (v2.Y <= y && v1.Y > y) {
			t := (y - v1.Y) / (v2.Y - v1.Y)
			xs = append(xs, v1.X+t*(v2.X-v1.X))
		}
	}
	if len(xs) < 2 {
		return 0
	}
	sort.Float64s(xs)

	var width float64
	for i := 0; i+1 < len(xs); i += 2 {
		width += xs[i+1] - xs[i]
	}
	return width
}
