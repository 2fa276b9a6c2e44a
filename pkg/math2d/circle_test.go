package math2d

import (
	"math"
	"testing"
)

// checkOnBothCircles verifies an intersection point lies on both circles.
func checkOnBothCircles(t *testing.T, p Vec2[float64], r1 float64, c1 Vec2[float64], r2 float64, c2 Vec2[float64]) {
	t.Helper()
	if d := p.Distance(c1); !FuzzyEq(d, r1) {
		t.Errorf("point %v is at distance %v from center1, want %v", p, d, r1)
	}
	if d := p.Distance(c2); !FuzzyEq(d, r2) {
		t.Errorf("point %v is at distance %v from center2, want %v", p, d, r2)
	}
}

// samePointSet reports whether {a1, a2} and {b1, b2} match within tolerance,
// in either order.
func samePointSet(a1, a2, b1, b2 Vec2[float64]) bool {
	return (a1.FuzzyEq(b1) && a2.FuzzyEq(b2)) || (a1.FuzzyEq(b2) && a2.FuzzyEq(b1))
}

func TestIntersectCircleCircleClassification(t *testing.T) {
	tests := []struct {
		name   string
		r1     float64
		c1     Vec2[float64]
		r2     float64
		c2     Vec2[float64]
		want   CircleCircleKind
	}{
		{"concentric same radius", 1, V2(0.0, 0.0), 1, V2(0.0, 0.0), Overlapping},
		{"concentric same radius within tolerance", 1, V2(0.0, 0.0), 1 + 1e-9, V2(1e-9, 0.0), Overlapping},
		{"concentric different radius", 1, V2(0.0, 0.0), 2, V2(0.0, 0.0), NoIntersect},
		{"far apart", 1, V2(0.0, 0.0), 1, V2(5.0, 0.0), NoIntersect},
		{"just beyond touching", 1, V2(0.0, 0.0), 1, V2(2.0 + 1e-7, 0.0), NoIntersect},
		{"one inside another", 0.5, V2(0.1, 0.0), 2, V2(0.0, 0.0), NoIntersect},
		{"external tangency", 1, V2(0.0, 0.0), 1, V2(2.0, 0.0), TangentIntersect},
		{"internal tangency", 2, V2(0.0, 0.0), 1, V2(1.0, 0.0), TangentIntersect},
		{"two intersections", 1, V2(0.0, 0.0), math.Sqrt2, V2(0.0, 1.0), TwoIntersects},
		{"two intersections offset", 1.5, V2(-1.0, 2.0), 2, V2(1.0, 1.0), TwoIntersects},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IntersectCircleCircle(tt.r1, tt.c1, tt.r2, tt.c2)
			if got.Kind != tt.want {
				t.Fatalf("kind = %v, want %v", got.Kind, tt.want)
			}

			// symmetry: swapping the circles must classify the same
			swapped := IntersectCircleCircle(tt.r2, tt.c2, tt.r1, tt.c1)
			if swapped.Kind != got.Kind {
				t.Fatalf("swapped kind = %v, want %v", swapped.Kind, got.Kind)
			}

			switch got.Kind {
			case TangentIntersect:
				checkOnBothCircles(t, got.Point1, tt.r1, tt.c1, tt.r2, tt.c2)
				if !swapped.Point1.FuzzyEq(got.Point1) {
					t.Errorf("swapped tangent point = %v, want %v", swapped.Point1, got.Point1)
				}
			case TwoIntersects:
				checkOnBothCircles(t, got.Point1, tt.r1, tt.c1, tt.r2, tt.c2)
				checkOnBothCircles(t, got.Point2, tt.r1, tt.c1, tt.r2, tt.c2)
				if got.Point1.FuzzyEq(got.Point2) {
					t.Errorf("two intersect points %v and %v are fuzzy equal", got.Point1, got.Point2)
				}
				if !samePointSet(got.Point1, got.Point2, swapped.Point1, swapped.Point2) {
					t.Errorf("swapped points {%v, %v} do not match {%v, %v}",
						swapped.Point1, swapped.Point2, got.Point1, got.Point2)
				}
			}
		})
	}
}

func TestIntersectCircleCircleUnitCase(t *testing.T) {
	// the trusty old unit circle against radius sqrt(2) centered at (0, 1)
	got := IntersectCircleCircle(1, Zero2[float64](), math.Sqrt2, V2(0.0, 1.0))
	if got.Kind != TwoIntersects {
		t.Fatalf("kind = %v, want TwoIntersects", got.Kind)
	}
	if !samePointSet(got.Point1, got.Point2, V2(1.0, 0.0), V2(-1.0, 0.0)) {
		t.Errorf("points {%v, %v}, want {(1, 0), (-1, 0)}", got.Point1, got.Point2)
	}
}

func TestIntersectCircleCircleExternalTangentPoint(t *testing.T) {
	// tangent point sits on the segment between centers at distance r1
	got := IntersectCircleCircle(1, V2(0.0, 0.0), 2, V2(3.0, 0.0))
	if got.Kind != TangentIntersect {
		t.Fatalf("kind = %v, want TangentIntersect", got.Kind)
	}
	if !got.Point1.FuzzyEq(V2(1.0, 0.0)) {
		t.Errorf("tangent point = %v, want (1, 0)", got.Point1)
	}
}

func TestIntersectCircleCircleInternalTangentPoint(t *testing.T) {
	got := IntersectCircleCircle(2, V2(0.0, 0.0), 1, V2(1.0, 0.0))
	if got.Kind != TangentIntersect {
		t.Fatalf("kind = %v, want TangentIntersect", got.Kind)
	}
	if !got.Point1.FuzzyEq(V2(2.0, 0.0)) {
		t.Errorf("tangent point = %v, want (2, 0)", got.Point1)
	}
}

// TestIntersectCircleCircleTangencyApproach drives two unit circles toward
// external tangency from the two-intersection side: the points must converge
// monotonically, flip to a tangent classification once within tolerance of
// the boundary, and reject cleanly past it.
func TestIntersectCircleCircleTangencyApproach(t *testing.T) {
	prevGap := math.Inf(1)
	for _, d := range []float64{1.5, 1.9, 1.99, 1.999, 1.9999, 1.999999} {
		got := IntersectCircleCircle(1, V2(0.0, 0.0), 1, V2(d, 0.0))
		if got.Kind != TwoIntersects {
			t.Fatalf("d=%v: kind = %v, want TwoIntersects", d, got.Kind)
		}
		gap := got.Point1.Distance(got.Point2)
		if gap >= prevGap {
			t.Errorf("d=%v: point gap %v did not shrink (previous %v)", d, gap, prevGap)
		}
		prevGap = gap
	}

	// at the boundary and just past it (within tolerance) tangency holds
	for _, d := range []float64{2.0, 2.0 + 1e-9} {
		got := IntersectCircleCircle(1, V2(0.0, 0.0), 1, V2(d, 0.0))
		if got.Kind != TangentIntersect {
			t.Errorf("d=%v: kind = %v, want TangentIntersect", d, got.Kind)
		}
	}

	// past tolerance the circles no longer touch
	got := IntersectCircleCircle(1, V2(0.0, 0.0), 1, V2(2.0+1e-7, 0.0))
	if got.Kind != NoIntersect {
		t.Errorf("d=2+1e-7: kind = %v, want NoIntersect", got.Kind)
	}
}

func TestIntersectCircleCircleFloat32(t *testing.T) {
	got := IntersectCircleCircle(float32(1), V2[float32](0, 0), float32(math.Sqrt2), V2[float32](0, 1))
	if got.Kind != TwoIntersects {
		t.Fatalf("kind = %v, want TwoIntersects", got.Kind)
	}
	if !samePointSet32(got.Point1, got.Point2, V2[float32](1, 0), V2[float32](-1, 0)) {
		t.Errorf("points {%v, %v}, want {(1, 0), (-1, 0)}", got.Point1, got.Point2)
	}
}

func samePointSet32(a1, a2, b1, b2 Vec2[float32]) bool {
	return (a1.FuzzyEq(b1) && a2.FuzzyEq(b2)) || (a1.FuzzyEq(b2) && a2.FuzzyEq(b1))
}

func TestCircleCircleKindString(t *testing.T) {
	tests := []struct {
		kind CircleCircleKind
		want string
	}{
		{NoIntersect, "NoIntersect"},
		{TangentIntersect, "TangentIntersect"},
		{TwoIntersects, "TwoIntersects"},
		{Overlapping, "Overlapping"},
		{CircleCircleKind(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
