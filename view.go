package kodama

// View iterates every entity that holds a component of type A. It is the
// single-type query; Views over multiple component types (View2, View3, ...)
// live in view_generated.go and follow the same pattern.
//
// A view is a transient query: construction snapshots the membership of the
// primary component type (A) as the driving scan, while component presence
// and values are re-read live at each step. Entities removed after
// construction are skipped; entities that gain A after construction are not
// seen until Reset. Component pointers handed out by a view remain valid
// across mutation, but writing through them fires no update events — use
// Assign or Patch when subscribers must be notified.
type View[A any] struct {
	sa      *storage[A]
	members []Entity
	idx     int
	cur     Entity
}

// NewView creates a View over all entities holding a component of type A.
// If A has never been used with w the view is empty rather than an error.
func NewView[A any](w *World) *View[A] {
	v := &View[A]{sa: lookupStorage[A](w)}
	v.Reset()
	return v
}

// Reset re-snapshots the primary membership and rewinds the cursor, so the
// same view value can run a fresh iteration after the World has changed.
func (v *View[A]) Reset() {
	v.members = v.sa.members()
	v.idx = -1
}

// Each invokes f once for every entity in the snapshot that still holds A,
// passing the entity and its component pointer. Removing the current entity
// (or its components) from inside f is safe for the remainder of the sweep.
func (v *View[A]) Each(f func(e Entity, a *A)) {
	for _, e := range v.members {
		if v.sa.contains(e) {
			f(e, v.sa.ref(e))
		}
	}
}

// Next advances the cursor to the next entity that still holds A. It returns
// false when the snapshot is exhausted. Entity and Get are only valid after
// Next has returned true.
func (v *View[A]) Next() bool {
	for v.idx+1 < len(v.members) {
		v.idx++
		if e := v.members[v.idx]; v.sa.contains(e) {
			v.cur = e
			return true
		}
	}
	return false
}

// Entity returns the entity at the cursor.
func (v *View[A]) Entity() Entity {
	return v.cur
}

// Get returns the component pointer for the entity at the cursor.
func (v *View[A]) Get() *A {
	return v.sa.ref(v.cur)
}
