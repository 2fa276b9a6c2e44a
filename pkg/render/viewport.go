package render

import (
	"math"

	"github.com/DerLando/cavalier-contours/pkg/math2d"
	"github.com/DerLando/cavalier-contours/pkg/polyline"
)

// Viewport maps world coordinates onto a canvas, y growing upward in world
// space. Terminal cells are roughly twice as tall as wide, which the 2x
// vertical pixel resolution of the canvas already compensates for.
type Viewport struct {
	canvas *Canvas
	minX   float64
	minY   float64
	scale  float64 // pixels per world unit
}

// FitViewport creates a viewport showing the world rectangle
// (minX, minY)-(maxX, maxY) plus a relative margin, centered on the canvas
// and uniformly scaled.
func FitViewport(c *Canvas, minX, minY, maxX, maxY, margin float64) Viewport {
	w := maxX - minX
	h := maxY - minY
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	minX -= w * margin
	maxX += w * margin
	minY -= h * margin
	maxY += h * margin
	w = maxX - minX
	h = maxY - minY

	scale := math.Min(float64(c.PixelWidth())/w, float64(c.PixelHeight())/h)

	// center the region on the canvas
	extraX := (float64(c.PixelWidth()) - w*scale) / 2 / scale
	extraY := (float64(c.PixelHeight()) - h*scale) / 2 / scale

	return Viewport{
		canvas: c,
		minX:   minX - extraX,
		minY:   minY - extraY,
		scale:  scale,
	}
}

// toPixel converts a world point to canvas pixel coordinates.
func (v Viewport) toPixel(p math2d.Vec2[float64]) (int, int) {
	x := int(math.Round((p.X - v.minX) * v.scale))
	y := int(math.Round(float64(v.canvas.PixelHeight()) - (p.Y-v.minY)*v.scale))
	// the far edges of the fitted region land one past the last pixel
	if x == v.canvas.PixelWidth() {
		x--
	}
	if y == v.canvas.PixelHeight() {
		y--
	}
	return x, y
}

// Plot sets the pixel nearest to the world point p.
func (v Viewport) Plot(p math2d.Vec2[float64]) {
	x, y := v.toPixel(p)
	v.canvas.Set(x, y)
}

// Circle draws the outline of a circle in world coordinates.
func (v Viewport) Circle(center math2d.Vec2[float64], radius float64) {
	if radius <= 0 {
		v.Plot(center)
		return
	}
	// step density follows the on-screen circumference
	steps := int(2 * math.Pi * radius * v.scale)
	if steps < 32 {
		steps = 32
	}
	for i := 0; i < steps; i++ {
		angle := 2 * math.Pi * float64(i) / float64(steps)
		v.Plot(center.Add(math2d.V2(math.Cos(angle), math.Sin(angle)).Scale(radius)))
	}
}

// Marker draws a small cross at the world point p so intersection points
// stand out from circle outlines.
func (v Viewport) Marker(p math2d.Vec2[float64]) {
	x, y := v.toPixel(p)
	for d := -2; d <= 2; d++ {
		v.canvas.Set(x+d, y)
		v.canvas.Set(x, y+d)
	}
}

// Polyline draws the segments of a polyline, approximating arc segments
// with short chords.
func (v Viewport) Polyline(p *polyline.Polyline) {
	for i := 0; i < p.SegmentCount(); i++ {
		a, b := p.Segment(i)
		v.segment(a.Pos(), b.Pos(), a.Bulge)
	}
}

// segment draws a line or bulge arc between two world points.
func (v Viewport) segment(a, b math2d.Vec2[float64], bulge float64) {
	const steps = 64
	if math2d.FuzzyEqZero(bulge) {
		for i := 0; i <= steps; i++ {
			v.Plot(a.Lerp(b, float64(i)/steps))
		}
		return
	}

	if math2d.FuzzyEqZero(a.Distance(b)) {
		v.Plot(a)
		return
	}

	// sweep angle from the bulge, swept ccw for positive bulge
	sweep := 4 * math.Atan(bulge)
	radius, center := polyline.SegArcRadiusAndCenter(
		polyline.V(a.X, a.Y, bulge),
		polyline.V(b.X, b.Y, 0),
	)

	startAngle := a.Sub(center).Angle()
	for i := 0; i <= steps; i++ {
		angle := startAngle + sweep*float64(i)/steps
		v.Plot(center.Add(math2d.V2(math.Cos(angle), math.Sin(angle)).Scale(radius)))
	}
}
