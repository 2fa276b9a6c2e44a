package math2d

import "math"

// Vec2 represents a 2D vector or point.
type Vec2[T Float] struct {
	X, Y T
}

// V2 creates a new Vec2.
func V2[T Float](x, y T) Vec2[T] {
	return Vec2[T]{x, y}
}

// Zero2 returns the zero vector.
func Zero2[T Float]() Vec2[T] {
	return Vec2[T]{}
}

// Add returns the vector sum a + b.
func (a Vec2[T]) Add(b Vec2[T]) Vec2[T] {
	return Vec2[T]{a.X + b.X, a.Y + b.Y}
}

// Sub returns the vector difference a - b.
func (a Vec2[T]) Sub(b Vec2[T]) Vec2[T] {
	return Vec2[T]{a.X - b.X, a.Y - b.Y}
}

// Scale returns the scalar product a * s.
func (a Vec2[T]) Scale(s T) Vec2[T] {
	return Vec2[T]{a.X * s, a.Y * s}
}

// Dot returns the dot product a · b.
func (a Vec2[T]) Dot(b Vec2[T]) T {
	return a.X*b.X + a.Y*b.Y
}

// Cross returns the 2D cross product (z component of the 3D cross product).
func (a Vec2[T]) Cross(b Vec2[T]) T {
	return a.X*b.Y - a.Y*b.X
}

// Len returns the length of the vector.
func (a Vec2[T]) Len() T {
	return Sqrt(a.X*a.X + a.Y*a.Y)
}

// LenSq returns the squared length (faster, no sqrt).
func (a Vec2[T]) LenSq() T {
	return a.X*a.X + a.Y*a.Y
}

// Normalize returns the unit vector.
func (a Vec2[T]) Normalize() Vec2[T] {
	l := a.Len()
	if l == 0 {
		return Vec2[T]{}
	}
	return Vec2[T]{a.X / l, a.Y / l}
}

// Negate returns the negated vector.
func (a Vec2[T]) Negate() Vec2[T] {
	return Vec2[T]{-a.X, -a.Y}
}

// Lerp returns linear interpolation between a and b.
func (a Vec2[T]) Lerp(b Vec2[T], t T) Vec2[T] {
	return Vec2[T]{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
	}
}

// Rotate rotates the vector by angle (radians).
func (a Vec2[T]) Rotate(angle T) Vec2[T] {
	cos := T(math.Cos(float64(angle)))
	sin := T(math.Sin(float64(angle)))
	return Vec2[T]{
		a.X*cos - a.Y*sin,
		a.X*sin + a.Y*cos,
	}
}

// Perpendicular returns a perpendicular vector (90° counter-clockwise).
func (a Vec2[T]) Perpendicular() Vec2[T] {
	return Vec2[T]{-a.Y, a.X}
}

// Angle returns the angle of the vector in radians.
func (a Vec2[T]) Angle() T {
	return T(math.Atan2(float64(a.Y), float64(a.X)))
}

// Distance returns the distance between two points.
func (a Vec2[T]) Distance(b Vec2[T]) T {
	return a.Sub(b).Len()
}

// Midpoint returns the point halfway between a and b.
func (a Vec2[T]) Midpoint(b Vec2[T]) Vec2[T] {
	return Vec2[T]{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
}

// FuzzyEq reports whether both components of a are within tolerance of the
// corresponding components of b.
func (a Vec2[T]) FuzzyEq(b Vec2[T]) bool {
	return FuzzyEq(a.X, b.X) && FuzzyEq(a.Y, b.Y)
}
