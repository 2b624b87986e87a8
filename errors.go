package clui

import (
	"errors"

	"github.com/gogpu/clui/arena"
)

// ErrStaleHandle reports a window or layer handle that does not refer to a
// live entry: it was removed, never issued, or belongs to another owner.
var ErrStaleHandle = arena.ErrStaleHandle

// ErrNoHandler is returned by Host methods whose handler was never set.
var ErrNoHandler = errors.New("clui: no host handler registered")
