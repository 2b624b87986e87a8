package clui

import (
	"github.com/gogpu/clui/arena"
	"github.com/gogpu/clui/geom"
)

// WindowHandle identifies a window within the layer that created it.
type WindowHandle = arena.Handle[Window]

// Positioning selects how a window's Rect is interpreted.
type Positioning uint8

const (
	// PositionAbsolute places Rect in screen coordinates.
	PositionAbsolute Positioning = iota

	// PositionRelative offsets Rect by the resolved origin of Parent, or by
	// the viewport origin when the window has no live parent.
	PositionRelative
)

// String returns the positioning mode name.
func (p Positioning) String() string {
	switch p {
	case PositionAbsolute:
		return "absolute"
	case PositionRelative:
		return "relative"
	default:
		return "unknown"
	}
}

// Window is a colored rectangle with a paint order, the toolkit's base
// visual unit. A window's identity is its handle, not its content.
type Window struct {
	Rect            geom.Rect
	BackgroundColor Color

	// ZIndex orders painting within a layer: lower values are painted
	// first. Ties keep insertion order.
	ZIndex int32

	Positioning Positioning
	Parent      WindowHandle
}

// DefaultWindow returns a window at the origin with zero size, a
// transparent background and z-index 0.
func DefaultWindow() Window {
	return Window{}
}
