// Package polyline provides 2D polylines whose segments are lines or
// circular arcs described by bulge values, together with the segment
// geometry needed to intersect them.
package polyline

import "github.com/DerLando/cavalier-contours/pkg/math2d"

// Vertex is a polyline vertex. Bulge describes the segment that starts at
// this vertex and ends at the next one: it is the tangent of a quarter of
// the arc's sweep angle, positive for counter-clockwise arcs, negative for
// clockwise arcs and zero for a line segment.
type Vertex struct {
	X, Y, Bulge float64
}

// V creates a new Vertex.
func V(x, y, bulge float64) Vertex {
	return Vertex{x, y, bulge}
}

// Pos returns the vertex position.
func (v Vertex) Pos() math2d.Vec2[float64] {
	return math2d.V2(v.X, v.Y)
}

// IsArc reports whether the segment starting at this vertex is an arc.
func (v Vertex) IsArc() bool {
	return !math2d.FuzzyEqZero(v.Bulge)
}

// Polyline is a sequence of vertexes forming line and arc segments. A
// closed polyline has an implicit segment from the last vertex back to the
// first one.
type Polyline struct {
	vertexes []Vertex
	closed   bool
}

// New creates a polyline from the given vertexes.
func New(closed bool, vertexes ...Vertex) *Polyline {
	return &Polyline{vertexes: vertexes, closed: closed}
}

// AddVertex appends a vertex.
func (p *Polyline) AddVertex(x, y, bulge float64) {
	p.vertexes = append(p.vertexes, Vertex{x, y, bulge})
}

// IsClosed reports whether the polyline is closed.
func (p *Polyline) IsClosed() bool {
	return p.closed
}

// SetClosed marks the polyline as closed or open.
func (p *Polyline) SetClosed(closed bool) {
	p.closed = closed
}

// VertexCount returns the number of vertexes.
func (p *Polyline) VertexCount() int {
	return len(p.vertexes)
}

// Vertex returns the vertex at index i.
func (p *Polyline) Vertex(i int) Vertex {
	return p.vertexes[i]
}

// Vertexes returns the underlying vertex slice. The slice must not be
// mutated while the polyline is in use elsewhere.
func (p *Polyline) Vertexes() []Vertex {
	return p.vertexes
}

// SegmentCount returns the number of segments, including the closing
// segment for closed polylines.
func (p *Polyline) SegmentCount() int {
	n := len(p.vertexes)
	if n < 2 {
		return 0
	}
	if p.closed {
		return n
	}
	return n - 1
}

// Segment returns the start and end vertex of segment i. For a closed
// polyline the last segment wraps back to the first vertex.
func (p *Polyline) Segment(i int) (Vertex, Vertex) {
	return p.vertexes[i], p.vertexes[(i+1)%len(p.vertexes)]
}

// Extents returns the axis-aligned bounds of the vertex positions, ignoring
// arc bow-out. It returns false for an empty polyline.
func (p *Polyline) Extents() (minPt, maxPt math2d.Vec2[float64], ok bool) {
	if len(p.vertexes) == 0 {
		return minPt, maxPt, false
	}
	minPt = p.vertexes[0].Pos()
	maxPt = minPt
	for _, v := range p.vertexes[1:] {
		minPt.X = min(minPt.X, v.X)
		minPt.Y = min(minPt.Y, v.Y)
		maxPt.X = max(maxPt.X, v.X)
		maxPt.Y = max(maxPt.Y, v.Y)
	}
	return minPt, maxPt, true
}
