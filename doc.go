// Package clui provides the scene graph and draw-list compiler of a small
// immediate/retained hybrid 2D UI toolkit.
//
// # Overview
//
// A Toolkit owns layers. A Layer owns windows: colored rectangles with a
// paint order. Both are stored in generational arenas and addressed through
// typed handles (LayerHandle, WindowHandle) that never alias a later entry
// once their own entry is removed.
//
// Each frame, a layer compiles its windows into a drawlist.DrawSet: a shared
// vertex and index buffer plus one draw instruction per window, sorted back
// to front. Submitting that geometry to a GPU is left to the host; see the
// pipeline package for a matching shader and pipeline description, and the
// render package for a CPU reference renderer.
//
// # Quick Start
//
//	tk := clui.New()
//	lh := tk.CreateLayer()
//	layer := tk.MustLayer(lh)
//
//	layer.UpdateViewport(800, 600)
//	layer.AddWindow(clui.Window{
//	    Rect:            geom.FromValues(10, 10, 200, 120),
//	    BackgroundColor: clui.RGB(0.2, 0.3, 0.8),
//	})
//
//	layer.Update()
//	list := tk.DrawList()
//
// # Handles
//
// Lookups are checked: Layer.Window, Layer.MutWindow, Toolkit.Layer and the
// Remove methods report a stale or foreign handle with a false result. The
// Must* variants panic with an error wrapping ErrStaleHandle and are meant
// for code that treats a miss as a programming error.
//
// # Coordinate System
//
// Uses standard screen coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Host Callbacks
//
// The platform may register a clock, a log sink and a file loader through
// WithHost or the Set*Handler methods. The toolkit stores them for
// subsystems layered on top of it and never calls them itself.
//
// # Concurrency
//
// Toolkit and Layer are single-threaded. The package logger (SetLogger) is
// the only state safe to change from several goroutines.
package clui
