package clui

import (
	"fmt"
	"iter"

	"github.com/gogpu/clui/arena"
	"github.com/gogpu/clui/drawlist"
	"github.com/gogpu/clui/geom"
)

// LayerHandle identifies a layer within the toolkit that created it.
type LayerHandle = arena.Handle[Layer]

// Toolkit is the root of the scene graph. It owns every layer and the host
// callbacks registered by the platform.
//
// A Toolkit is not safe for concurrent use. Callers preparing frames on
// several goroutines must serialize access, for example by holding a lock
// across Update and DrawList.
type Toolkit struct {
	layers   arena.Arena[Layer]
	host     HostFuncs
	viewport geom.Size
}

// New creates an empty toolkit.
func New(opts ...Option) *Toolkit {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Toolkit{
		host:     hostFuncsOf(o.host),
		viewport: o.viewport,
	}
}

// SetElapsedTimeHandler registers the clock callback.
func (t *Toolkit) SetElapsedTimeHandler(fn func() float64) {
	t.host.ElapsedTimeFunc = fn
}

// SetLogMessageHandler registers the log sink callback.
func (t *Toolkit) SetLogMessageHandler(fn func(msg string) bool) {
	t.host.LogMessageFunc = fn
}

// SetFileReadHandler registers the file loader callback.
func (t *Toolkit) SetFileReadHandler(fn func(name string) ([]byte, error)) {
	t.host.ReadFileFunc = fn
}

// Host returns the currently registered host callbacks.
func (t *Toolkit) Host() Host {
	return t.host
}

// CreateLayer adds an empty layer and returns its handle.
func (t *Toolkit) CreateLayer() LayerHandle {
	h := t.layers.Insert(newLayer(t.viewport))
	Logger().Debug("clui: layer created", "layer", h, "viewport", t.viewport)
	return h
}

// Layer returns the layer h refers to.
func (t *Toolkit) Layer(h LayerHandle) (*Layer, bool) {
	return t.layers.Get(h)
}

// MustLayer is like Layer but panics when h is stale.
func (t *Toolkit) MustLayer(h LayerHandle) *Layer {
	l, ok := t.layers.Get(h)
	if !ok {
		panic(fmt.Errorf("clui: layer %v: %w", h, ErrStaleHandle))
	}
	return l
}

// RemoveLayer deletes the layer h refers to, with all its windows, and
// returns it.
func (t *Toolkit) RemoveLayer(h LayerHandle) (*Layer, bool) {
	l, ok := t.layers.Remove(h)
	if !ok {
		return nil, false
	}
	Logger().Debug("clui: layer removed", "layer", h, "windows", l.WindowCount())
	return &l, true
}

// LayerCount returns the number of live layers.
func (t *Toolkit) LayerCount() int {
	return t.layers.Len()
}

// Layers iterates over layers in creation order.
func (t *Toolkit) Layers() iter.Seq2[LayerHandle, *Layer] {
	return t.layers.All()
}

// Update runs Layer.Update on every layer.
func (t *Toolkit) Update() {
	for _, l := range t.layers.All() {
		l.Update()
	}
}

// DrawList compiles every layer, in creation order, into one DrawList with
// one DrawSet per layer.
func (t *Toolkit) DrawList() drawlist.DrawList {
	list := drawlist.DrawList{Sets: make([]drawlist.DrawSet, 0, t.layers.Len())}
	for _, l := range t.layers.All() {
		list.Sets = append(list.Sets, l.DrawSet())
	}
	return list
}
