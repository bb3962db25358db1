package kodama

import "reflect"

// World is the central registry. It owns the set of live entities and, for
// every component type that has ever been used with it, a type-erased handle
// to that type's storage. All component access goes through the generic
// functions in this package (Assign, Get, Has, Remove, views, On*), which
// recover the concrete storage from the erased handle using the same
// reflect.Type key that created it.
//
// A World is not safe for concurrent use. The model is single-owner,
// single-threaded mutation: event callbacks and view iteration run
// synchronously on the caller's stack and may reenter the World, but access
// from multiple goroutines must be serialized externally.
type World struct {
	nextEntity Entity
	alive      map[Entity]struct{}
	storages   map[reflect.Type]erasedStorage
	resources  map[reflect.Type]any
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{
		nextEntity: 1,
		alive:      make(map[Entity]struct{}),
		storages:   make(map[reflect.Type]erasedStorage),
	}
}

// CreateEntity allocates a fresh entity handle and marks it live. Handles
// are never recycled; the first handle a World hands out is 1.
func (w *World) CreateEntity() Entity {
	e := w.nextEntity
	w.nextEntity++
	w.alive[e] = struct{}{}
	return e
}

// DestroyEntity erases e from every component storage in existence and from
// the live-entity set. For each component e still holds, the corresponding
// remove event is published before that component is erased, so subscribers
// observe teardown the same way they would for Remove. Destroying an unknown
// or already-destroyed entity is a silent no-op.
func (w *World) DestroyEntity(e Entity) {
	// Snapshot the handles: a remove callback may touch a component type the
	// World has never seen, growing the storages map mid-sweep.
	sweep := make([]erasedStorage, 0, len(w.storages))
	for _, s := range w.storages {
		sweep = append(sweep, s)
	}
	for _, s := range sweep {
		s.drop(w, e)
	}
	delete(w.alive, e)
}

// Alive reports whether e is a live entity of this World.
func (w *World) Alive(e Entity) bool {
	_, ok := w.alive[e]
	return ok
}

// Size returns the number of live entities.
func (w *World) Size() int {
	return len(w.alive)
}

// erasedStorage is the uniform face a per-type storage presents to the
// World. Typed access never goes through it; the generic functions downcast
// the handle back to *storage[T] under the reflect.Type key that registered
// it, which is the single trust boundary of the erasure.
type erasedStorage interface {
	contains(e Entity) bool
	erase(e Entity)
	// drop publishes the remove event for e if e holds the component, then
	// erases it. Used by the DestroyEntity sweep.
	drop(w *World, e Entity)
}

// storageFor returns T's storage, creating it on first use.
func storageFor[T any](w *World) *storage[T] {
	key := reflect.TypeOf((*T)(nil)).Elem()
	if s, ok := w.storages[key]; ok {
		return s.(*storage[T])
	}
	s := newStorage[T]()
	w.storages[key] = s
	return s
}

// lookupStorage returns T's storage, or nil if type T has never been used
// with this World. All storage methods tolerate a nil receiver, so callers
// can treat the nil result as an empty storage.
func lookupStorage[T any](w *World) *storage[T] {
	if s, ok := w.storages[reflect.TypeOf((*T)(nil)).Elem()]; ok {
		return s.(*storage[T])
	}
	return nil
}
