package polyline

import (
	"math"

	"github.com/DerLando/cavalier-contours/pkg/math2d"
)

// SegArcRadiusAndCenter returns the radius and center of the arc segment
// going from v1 to v2 with v1's bulge. v1.Bulge must be non-zero and the
// vertex positions must not coincide.
func SegArcRadiusAndCenter(v1, v2 Vertex) (radius float64, center math2d.Vec2[float64]) {
	b := math.Abs(v1.Bulge)
	cv := v2.Pos().Sub(v1.Pos())
	d := cv.Len()
	radius = d * (b*b + 1) / (4 * b)

	// offset from the chord midpoint to the center, along the chord
	// normal; the bulge sign picks the side
	s := b * d / 2
	m := radius - s
	offsX := -m * cv.Y / d
	offsY := m * cv.X / d
	if v1.Bulge < 0 {
		offsX = -offsX
		offsY = -offsY
	}

	center = math2d.V2(v1.X+cv.X/2+offsX, v1.Y+cv.Y/2+offsY)
	return radius, center
}

// PointWithinArcSweep reports whether point, assumed to lie on the arc's
// circle, falls within the sweep of the arc going counter-clockwise from
// start to end (clockwise when bulgeIsNeg is set). Arc end points count as
// within.
func PointWithinArcSweep(center, start, end math2d.Vec2[float64], bulgeIsNeg bool, point math2d.Vec2[float64]) bool {
	if bulgeIsNeg {
		// a clockwise arc from start to end is the counter-clockwise
		// arc from end to start
		start, end = end, start
	}

	sv := start.Sub(center)
	ev := end.Sub(center)
	pv := point.Sub(center)

	if math2d.FuzzyGt(sv.Cross(ev), 0) {
		// sweep covers at most a half turn
		return math2d.FuzzyGt(sv.Cross(pv), 0) && math2d.FuzzyGt(pv.Cross(ev), 0)
	}
	return math2d.FuzzyGt(sv.Cross(pv), 0) || math2d.FuzzyGt(pv.Cross(ev), 0)
}

// arcMidpoint returns the point halfway along the arc going from v1 to v2
// with v1's bulge.
func arcMidpoint(v1, v2 Vertex) math2d.Vec2[float64] {
	radius, center := SegArcRadiusAndCenter(v1, v2)
	startAngle := v1.Pos().Sub(center).Angle()
	sweep := 4 * math.Atan(v1.Bulge)
	angle := startAngle + sweep/2
	return center.Add(math2d.V2(math.Cos(angle), math.Sin(angle)).Scale(radius))
}

// SegIntersectKind classifies the intersection of two polyline segments.
type SegIntersectKind int

const (
	// NoSegIntersect means the segments do not meet.
	NoSegIntersect SegIntersectKind = iota
	// OneSegIntersect means the segments meet at a single point.
	OneSegIntersect
	// TwoSegIntersects means the segments meet at two points.
	TwoSegIntersects
	// OverlappingArcs means the segments are arcs of the same circle with
	// overlapping sweeps.
	OverlappingArcs
)

// String returns the kind name.
func (k SegIntersectKind) String() string {
	switch k {
	case NoSegIntersect:
		return "NoSegIntersect"
	case OneSegIntersect:
		return "OneSegIntersect"
	case TwoSegIntersects:
		return "TwoSegIntersects"
	case OverlappingArcs:
		return "OverlappingArcs"
	default:
		return "Unknown"
	}
}

// SegIntersect holds the result of intersecting two polyline segments.
// Point1 is set for OneSegIntersect and TwoSegIntersects, Point2 only for
// TwoSegIntersects.
type SegIntersect struct {
	Kind   SegIntersectKind
	Point1 math2d.Vec2[float64]
	Point2 math2d.Vec2[float64]
}

// IntersectSegArcArc intersects the arc segment (u1, u2) with the arc
// segment (v1, v2). Both segments must be arcs (non-zero bulge on u1 and
// v1). The underlying circles are intersected first, then the candidate
// points are filtered by both arc sweeps.
func IntersectSegArcArc(u1, u2, v1, v2 Vertex) SegIntersect {
	r1, c1 := SegArcRadiusAndCenter(u1, u2)
	r2, c2 := SegArcRadiusAndCenter(v1, v2)

	withinArc1 := func(p math2d.Vec2[float64]) bool {
		return PointWithinArcSweep(c1, u1.Pos(), u2.Pos(), u1.Bulge < 0, p)
	}
	withinArc2 := func(p math2d.Vec2[float64]) bool {
		return PointWithinArcSweep(c2, v1.Pos(), v2.Pos(), v1.Bulge < 0, p)
	}
	withinBoth := func(p math2d.Vec2[float64]) bool {
		return withinArc1(p) && withinArc2(p)
	}

	intr := math2d.IntersectCircleCircle(r1, c1, r2, c2)
	switch intr.Kind {
	case math2d.NoIntersect:
		return SegIntersect{Kind: NoSegIntersect}

	case math2d.TangentIntersect:
		if withinBoth(intr.Point1) {
			return SegIntersect{Kind: OneSegIntersect, Point1: intr.Point1}
		}
		return SegIntersect{Kind: NoSegIntersect}

	case math2d.TwoIntersects:
		var pts []math2d.Vec2[float64]
		if withinBoth(intr.Point1) {
			pts = append(pts, intr.Point1)
		}
		if withinBoth(intr.Point2) {
			pts = append(pts, intr.Point2)
		}
		switch len(pts) {
		case 0:
			return SegIntersect{Kind: NoSegIntersect}
		case 1:
			return SegIntersect{Kind: OneSegIntersect, Point1: pts[0]}
		default:
			return SegIntersect{Kind: TwoSegIntersects, Point1: pts[0], Point2: pts[1]}
		}

	default: // math2d.Overlapping
		return sameCircleArcIntersect(u1, u2, v1, v2, withinArc1, withinArc2)
	}
}

// sameCircleArcIntersect resolves two arcs lying on the same circle: the
// sweeps can be disjoint, touch at end points or overlap along the circle.
func sameCircleArcIntersect(u1, u2, v1, v2 Vertex, withinArc1, withinArc2 func(math2d.Vec2[float64]) bool) SegIntersect {
	var touches []math2d.Vec2[float64]
	addTouch := func(p math2d.Vec2[float64]) {
		for _, q := range touches {
			if p.FuzzyEq(q) {
				return
			}
		}
		touches = append(touches, p)
	}

	overlap := false
	// an end point of one arc contained by the other arc is either a shared
	// end point (a point intersect) or evidence of a shared sweep region
	check := func(p math2d.Vec2[float64], within func(math2d.Vec2[float64]) bool, endA, endB math2d.Vec2[float64]) {
		if !within(p) {
			return
		}
		if p.FuzzyEq(endA) || p.FuzzyEq(endB) {
			addTouch(p)
			return
		}
		overlap = true
	}

	check(v1.Pos(), withinArc1, u1.Pos(), u2.Pos())
	check(v2.Pos(), withinArc1, u1.Pos(), u2.Pos())
	check(u1.Pos(), withinArc2, v1.Pos(), v2.Pos())
	check(u2.Pos(), withinArc2, v1.Pos(), v2.Pos())

	// end point checks alone cannot see coincident sweeps: two identical
	// arcs share only their end points, which read as touches. An interior
	// point of one arc falling inside the other settles it.
	check(arcMidpoint(u1, u2), withinArc2, v1.Pos(), v2.Pos())
	check(arcMidpoint(v1, v2), withinArc1, u1.Pos(), u2.Pos())

	if overlap {
		return SegIntersect{Kind: OverlappingArcs}
	}
	switch len(touches) {
	case 0:
		return SegIntersect{Kind: NoSegIntersect}
	case 1:
		return SegIntersect{Kind: OneSegIntersect, Point1: touches[0]}
	default:
		return SegIntersect{Kind: TwoSegIntersects, Point1: touches[0], Point2: touches[1]}
	}
}
