package kodama

import "reflect"

// Resources are world-scoped singletons keyed by type: at most one value of
// each type per World. They carry shared, entity-independent state (a random
// source, a frame clock, a screen handle) alongside the component store.
// Like components they are reachable only through generic accessors, so the
// type is both the key and the contract.

// SetResource stores v as w's singleton resource of type T, replacing any
// previous value of that type.
func SetResource[T any](w *World, v T) {
	if w.resources == nil {
		w.resources = make(map[reflect.Type]any)
	}
	p := new(T)
	*p = v
	w.resources[reflect.TypeOf((*T)(nil)).Elem()] = p
}

// GetResource returns a pointer to w's resource of type T, or nil and false
// if none was set. The pointer is stable for as long as the resource stays
// set, so systems may cache it.
func GetResource[T any](w *World) (*T, bool) {
	if w.resources == nil {
		return nil, false
	}
	if p, ok := w.resources[reflect.TypeOf((*T)(nil)).Elem()]; ok {
		return p.(*T), true
	}
	return nil, false
}

// RemoveResource deletes w's resource of type T. Removing a type that was
// never set is a no-op.
func RemoveResource[T any](w *World) {
	delete(w.resources, reflect.TypeOf((*T)(nil)).Elem())
}
