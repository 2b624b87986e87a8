// Package arena provides a generational arena: a container that hands out
// typed, stable handles to the values it stores.
//
// A handle stays valid while its entry is live. Once the entry is removed the
// slot may be reused, but under a new generation, so stale handles keep
// missing instead of aliasing the new value. Handles also carry the identity
// of the arena that issued them; a handle presented to a different arena
// misses as well.
//
// Lookups are checked: Get and Remove report a miss with a false result.
// MustGet is an explicit opt-in for callers that treat a miss as a
// programming error.
//
// An Arena is not safe for concurrent use.
package arena

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
	"math"
	"slices"
	"sync/atomic"
)

// ErrStaleHandle is reported when a handle does not refer to a live entry.
var ErrStaleHandle = errors.New("arena: stale or foreign handle")

// arenaIDs issues arena identities. Zero is reserved for "not yet issued".
var arenaIDs atomic.Uint32

// Handle is an opaque reference to a value of type T stored in an Arena.
// The zero Handle never resolves.
type Handle[T any] struct {
	arena      uint32
	index      uint32
	generation uint32
}

// IsNil reports whether h is the zero handle.
func (h Handle[T]) IsNil() bool {
	return h.generation == 0
}

// String formats the handle as index:generation.
func (h Handle[T]) String() string {
	if h.IsNil() {
		return "nil"
	}
	return fmt.Sprintf("%d:%d", h.index, h.generation)
}

type entry[T any] struct {
	generation uint32
	seq        uint64
	value      *T // nil when the slot is free
}

// Arena stores values of type T behind generational handles.
// The zero value is an empty arena ready to use.
type Arena[T any] struct {
	id      uint32
	entries []entry[T]
	free    []uint32
	live    int
	nextSeq uint64
}

// New creates an empty arena.
func New[T any]() *Arena[T] {
	return &Arena[T]{}
}

// WithCapacity creates an empty arena with room for n values.
func WithCapacity[T any](n int) *Arena[T] {
	return &Arena[T]{entries: make([]entry[T], 0, n)}
}

func (a *Arena[T]) ensureID() {
	if a.id == 0 {
		a.id = arenaIDs.Add(1)
	}
}

// Insert stores v and returns a handle distinct from every live handle.
func (a *Arena[T]) Insert(v T) Handle[T] {
	a.ensureID()

	boxed := new(T)
	*boxed = v
	a.nextSeq++

	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		// Generation 0 is reserved for the nil handle.
		a.entries = append(a.entries, entry[T]{generation: 1})
		idx = uint32(len(a.entries) - 1) //nolint:gosec // slot count bounded by memory
	}

	e := &a.entries[idx]
	e.value = boxed
	e.seq = a.nextSeq
	a.live++

	return Handle[T]{arena: a.id, index: idx, generation: e.generation}
}

func (a *Arena[T]) lookup(h Handle[T]) *entry[T] {
	if h.IsNil() || h.arena != a.id || int(h.index) >= len(a.entries) {
		return nil
	}
	e := &a.entries[h.index]
	if e.value == nil || e.generation != h.generation {
		return nil
	}
	return e
}

// Get returns the value h refers to. The pointer stays valid across later
// inserts and is detached from the arena once the entry is removed.
func (a *Arena[T]) Get(h Handle[T]) (*T, bool) {
	e := a.lookup(h)
	if e == nil {
		return nil, false
	}
	return e.value, true
}

// MustGet is like Get but panics when h does not resolve.
func (a *Arena[T]) MustGet(h Handle[T]) *T {
	v, ok := a.Get(h)
	if !ok {
		panic(fmt.Errorf("handle %v: %w", h, ErrStaleHandle))
	}
	return v
}

// Contains reports whether h refers to a live entry.
func (a *Arena[T]) Contains(h Handle[T]) bool {
	return a.lookup(h) != nil
}

// Remove deletes the entry h refers to and returns its value.
func (a *Arena[T]) Remove(h Handle[T]) (T, bool) {
	e := a.lookup(h)
	if e == nil {
		var zero T
		return zero, false
	}

	v := *e.value
	e.value = nil
	e.seq = 0
	a.live--

	// A slot whose generation would wrap is retired rather than reused.
	if e.generation == math.MaxUint32 {
		return v, true
	}
	e.generation++
	a.free = append(a.free, h.index)
	return v, true
}

// Seq returns the insertion sequence number of h. Sequence numbers grow
// monotonically over the arena's lifetime and are never reused.
func (a *Arena[T]) Seq(h Handle[T]) (uint64, bool) {
	e := a.lookup(h)
	if e == nil {
		return 0, false
	}
	return e.seq, true
}

// Len returns the number of live entries.
func (a *Arena[T]) Len() int {
	return a.live
}

// Handles returns the handles of all live entries in insertion order.
func (a *Arena[T]) Handles() []Handle[T] {
	handles := make([]Handle[T], 0, a.live)
	for i := range a.entries {
		e := &a.entries[i]
		if e.value != nil {
			handles = append(handles, Handle[T]{arena: a.id, index: uint32(i), generation: e.generation}) //nolint:gosec // i < len(entries)
		}
	}
	slices.SortFunc(handles, func(x, y Handle[T]) int {
		return cmp.Compare(a.entries[x.index].seq, a.entries[y.index].seq)
	})
	return handles
}

// All iterates over live entries in insertion order. The set of visited
// handles is fixed when iteration starts; entries removed mid-iteration are
// skipped.
func (a *Arena[T]) All() iter.Seq2[Handle[T], *T] {
	return func(yield func(Handle[T], *T) bool) {
		for _, h := range a.Handles() {
			v, ok := a.Get(h)
			if !ok {
				continue
			}
			if !yield(h, v) {
				return
			}
		}
	}
}

// Clear removes every entry. Handles issued before Clear never resolve again.
func (a *Arena[T]) Clear() {
	for _, h := range a.Handles() {
		a.Remove(h)
	}
}
