package math2d

// CircleCircleKind classifies the intersection of two circles.
type CircleCircleKind int

const (
	// NoIntersect means the circles do not meet.
	NoIntersect CircleCircleKind = iota
	// TangentIntersect means the circles touch at exactly one point.
	TangentIntersect
	// TwoIntersects means the circles cross at two distinct points.
	TwoIntersects
	// Overlapping means the circles share center and radius within
	// tolerance, so the intersection is the whole circle.
	Overlapping
)

// String returns the kind name.
func (k CircleCircleKind) String() string {
	switch k {
	case NoIntersect:
		return "NoIntersect"
	case TangentIntersect:
		return "TangentIntersect"
	case TwoIntersects:
		return "TwoIntersects"
	case Overlapping:
		return "Overlapping"
	default:
		return "Unknown"
	}
}

// CircleCircleIntersect holds the result of intersecting two circles.
// Point1 is set for TangentIntersect and TwoIntersects, Point2 only for
// TwoIntersects.
type CircleCircleIntersect[T Float] struct {
	Kind   CircleCircleKind
	Point1 Vec2[T]
	Point2 Vec2[T]
}

// IntersectCircleCircle finds the intersects between two circles. The
// circles are defined by their radii radius1, radius2 and their centers
// center1, center2. Radii are assumed non-negative.
//
// Reference algorithm: http://paulbourke.net/geometry/circlesphere/
func IntersectCircleCircle[T Float](radius1 T, center1 Vec2[T], radius2 T, center2 Vec2[T]) CircleCircleIntersect[T] {
	cv := center2.Sub(center1)
	d2 := cv.Dot(cv)
	d := Sqrt(d2)

	if FuzzyEqZero(d) {
		// same center position
		if FuzzyEq(radius1, radius2) {
			return CircleCircleIntersect[T]{Kind: Overlapping}
		}
		return CircleCircleIntersect[T]{Kind: NoIntersect}
	}

	// distance relative to the radii is too large or too small for
	// intersects to occur
	if !FuzzyLt(d, radius1+radius2) || !FuzzyGt(d, Abs(radius1-radius2)) {
		return CircleCircleIntersect[T]{Kind: NoIntersect}
	}

	rad1Sq := radius1 * radius1
	a := (rad1Sq - radius2*radius2 + d2) / (2 * d)
	midpoint := center1.Add(cv.Scale(a / d))
	diff := rad1Sq - a*a

	// exact comparison on purpose: the sign of the discriminant is the
	// signal, not its magnitude relative to an epsilon
	if diff < 0 {
		return CircleCircleIntersect[T]{Kind: TangentIntersect, Point1: midpoint}
	}

	hOverD := Sqrt(diff) / d
	xTerm := hOverD * cv.Y
	yTerm := hOverD * cv.X

	pt1 := V2(midpoint.X+xTerm, midpoint.Y-yTerm)
	pt2 := V2(midpoint.X-xTerm, midpoint.Y+yTerm)

	if pt1.FuzzyEq(pt2) {
		return CircleCircleIntersect[T]{Kind: TangentIntersect, Point1: pt1}
	}

	return CircleCircleIntersect[T]{Kind: TwoIntersects, Point1: pt1, Point2: pt2}
}
