package geom

// Corner names one of the four corners of a Rect.
type Corner uint8

const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
	BottomRight
)

// String returns the corner name.
func (c Corner) String() string {
	switch c {
	case TopLeft:
		return "TopLeft"
	case TopRight:
		return "TopRight"
	case BottomLeft:
		return "BottomLeft"
	case BottomRight:
		return "BottomRight"
	default:
		return "Corner(?)"
	}
}

// Rect is an axis-aligned box anchored at its top-left Point and extending
// by Size.
type Rect struct {
	Point Point
	Size  Size
}

// FromValues creates a Rect from its top-left coordinate and dimensions.
func FromValues(x, y, width, height Scalar) Rect {
	return Rect{Point: Point{X: x, Y: y}, Size: Size{Width: width, Height: height}}
}

// FromPosAndSize creates a Rect from a top-left point and a size.
func FromPosAndSize(p Point, s Size) Rect {
	return Rect{Point: p, Size: s}
}

// FromCorners creates the Rect spanned by two arbitrary opposite corners.
// The result is normalized: the argument order does not matter and the size
// is never negative.
func FromCorners(a, b Point) Rect {
	return Rect{
		Point: Point{X: minScalar(a.X, b.X), Y: minScalar(a.Y, b.Y)},
		Size:  Size{Width: absScalar(a.X - b.X), Height: absScalar(a.Y - b.Y)},
	}
}

// FromRects returns the smallest Rect covering both r1 and r2.
func FromRects(r1, r2 Rect) Rect {
	p1 := Point{
		X: minScalar(r1.Left(), r2.Left()),
		Y: minScalar(r1.Top(), r2.Top()),
	}
	p2 := Point{
		X: maxScalar(r1.Right(), r2.Right()),
		Y: maxScalar(r1.Bottom(), r2.Bottom()),
	}
	return FromCorners(p1, p2)
}

// Union is FromRects(r, other).
func (r Rect) Union(other Rect) Rect {
	return FromRects(r, other)
}

// MoveTo returns a copy of r with its top-left corner at p.
func (r Rect) MoveTo(p Point) Rect {
	r.Point = p
	return r
}

// Center returns the midpoint of the diagonal.
func (r Rect) Center() Point {
	return Point{
		X: r.Point.X + r.Size.Width/2,
		Y: r.Point.Y + r.Size.Height/2,
	}
}

// ContainsPoint reports whether p lies inside r. All four edges are
// inclusive, so points on the boundary are contained.
func (r Rect) ContainsPoint(p Point) bool {
	br := r.BottomRight()
	if p.X < r.Point.X || p.X > br.X {
		return false
	}
	if p.Y < r.Point.Y || p.Y > br.Y {
		return false
	}
	return true
}

// BottomRight returns the corner opposite to Point.
func (r Rect) BottomRight() Point {
	return Point{X: r.Right(), Y: r.Bottom()}
}

// Corner returns the requested corner of r.
func (r Rect) Corner(c Corner) Point {
	switch c {
	case TopRight:
		return Point{X: r.Right(), Y: r.Top()}
	case BottomLeft:
		return Point{X: r.Left(), Y: r.Bottom()}
	case BottomRight:
		return r.BottomRight()
	default:
		return r.Point
	}
}

func (r Rect) Top() Scalar    { return r.Point.Y }
func (r Rect) Bottom() Scalar { return r.Point.Y + r.Size.Height }
func (r Rect) Left() Scalar   { return r.Point.X }
func (r Rect) Right() Scalar  { return r.Point.X + r.Size.Width }
func (r Rect) Width() Scalar  { return r.Size.Width }
func (r Rect) Height() Scalar { return r.Size.Height }

// IsEmpty reports whether r covers no area.
func (r Rect) IsEmpty() bool {
	return r.Size.IsEmpty()
}
