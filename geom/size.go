package geom

// Size is a width and height pair. Dimensions are non-negative by
// convention; the type does not enforce it.
type Size struct {
	Width, Height Scalar
}

// Sz is a convenience function to create a Size.
func Sz(width, height Scalar) Size {
	return Size{Width: width, Height: height}
}

// Grow returns a new Size enlarged by the given width and height.
func (s Size) Grow(width, height Scalar) Size {
	return Size{Width: s.Width + width, Height: s.Height + height}
}

// Shrink returns a new Size shrunk by the given width and height.
func (s Size) Shrink(width, height Scalar) Size {
	return Size{Width: s.Width - width, Height: s.Height - height}
}

// WithWidth returns a copy of s with the width replaced.
func (s Size) WithWidth(width Scalar) Size {
	s.Width = width
	return s
}

// WithHeight returns a copy of s with the height replaced.
func (s Size) WithHeight(height Scalar) Size {
	s.Height = height
	return s
}

// IsEmpty reports whether the size covers no area.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}
