// Package geom provides the value types used to place UI surfaces:
// Point, Size and Rect.
//
// All operations are pure and allocation-free. Coordinates follow the usual
// screen convention: origin at the top-left, X grows right, Y grows down.
package geom

// Scalar is the coordinate type. It matches the float32 vertex position
// format consumed by the GPU.
type Scalar = float32

// Point represents a 2D coordinate.
type Point struct {
	X, Y Scalar
}

// Pt is a convenience function to create a Point.
func Pt(x, y Scalar) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func minScalar(a, b Scalar) Scalar {
	if a < b {
		return a
	}
	return b
}

func maxScalar(a, b Scalar) Scalar {
	if a > b {
		return a
	}
	return b
}

func absScalar(a Scalar) Scalar {
	if a < 0 {
		return -a
	}
	return a
}
