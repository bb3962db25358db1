package kodama

import (
	"fmt"
	"reflect"
)

// Assign attaches a component of type T to an entity, constructing T's
// storage on first use. If the entity did not previously hold T, the create
// event for T fires after the insert; otherwise the update event fires.
// Exactly one of the two fires per call, never both.
//
// Assign never fails: assigning to a destroyed or never-created entity
// simply records the component under that handle.
//
// Parameters:
//   - w: The World to mutate.
//   - e: The entity receiving the component.
//   - value: The component value; it replaces any previous T for e.
func Assign[T any](w *World, e Entity, value T) {
	s := storageFor[T](w)
	if s.set(e, value) {
		s.created.Publish(w, e)
	} else {
		s.updated.Publish(w, e)
	}
}

// Transform replaces e's component of type T with f(old) and fires the
// update event. It panics if e does not hold T; guard with Has when presence
// is uncertain.
func Transform[T any](w *World, e Entity, f func(T) T) {
	s := lookupStorage[T](w)
	p := s.ref(e)
	if p == nil {
		panic(missingComponent[T](e))
	}
	*p = f(*p)
	s.updated.Publish(w, e)
}

// Patch mutates e's component of type T in place through f and fires the
// update event. It is Transform for callers that prefer pointer mutation
// over value replacement; the event semantics are identical. Panics if e
// does not hold T.
func Patch[T any](w *World, e Entity, f func(*T)) {
	s := lookupStorage[T](w)
	p := s.ref(e)
	if p == nil {
		panic(missingComponent[T](e))
	}
	f(p)
	s.updated.Publish(w, e)
}

// Get returns a copy of e's component of type T. It panics if e does not
// hold T. Use TryGet or Has when presence is uncertain.
func Get[T any](w *World, e Entity) T {
	p := lookupStorage[T](w).ref(e)
	if p == nil {
		panic(missingComponent[T](e))
	}
	return *p
}

// TryGet returns a copy of e's component of type T and true, or the zero T
// and false when e does not hold T. It never fails, even for component types
// the World has never seen.
func TryGet[T any](w *World, e Entity) (T, bool) {
	if p := lookupStorage[T](w).ref(e); p != nil {
		return *p, true
	}
	var zero T
	return zero, false
}

// Has reports whether e holds a component of type T. It is false both when
// T's storage exists but lacks e and when T has never been used with this
// World.
func Has[T any](w *World, e Entity) bool {
	return lookupStorage[T](w).contains(e)
}

// Remove detaches e's component of type T, publishing the remove event
// before the component is erased — subscribers still observe the component
// through Get/Has while the event is in flight. The event fires whether or
// not e currently holds T, and calling Remove for a type the World has never
// seen is legal (the storage is created, zero subscribers are notified, and
// nothing is erased).
func Remove[T any](w *World, e Entity) {
	s := storageFor[T](w)
	s.removed.Publish(w, e)
	s.erase(e)
}

// OnCreate returns the dispatcher that fires when an entity first gains a
// component of type T. T's storage is created on demand, so subscriptions
// may be registered before any component of that type exists.
func OnCreate[T any](w *World) *Dispatcher {
	return &storageFor[T](w).created
}

// OnUpdate returns the dispatcher that fires when an existing component of
// type T is overwritten (Assign on a held component, Transform, Patch).
func OnUpdate[T any](w *World) *Dispatcher {
	return &storageFor[T](w).updated
}

// OnRemove returns the dispatcher that fires before a component of type T is
// erased, by Remove or by the DestroyEntity sweep.
func OnRemove[T any](w *World) *Dispatcher {
	return &storageFor[T](w).removed
}

func missingComponent[T any](e Entity) string {
	return fmt.Sprintf("kodama: entity %d has no %s component", e, reflect.TypeOf((*T)(nil)).Elem())
}
