package kodama

// View2 iterates every entity that holds components of both types A and B.
// The membership of A (the first type parameter) drives the scan; B presence
// is tested live per entity. See View for the snapshot and pointer-validity
// contract.
type View2[A any, B any] struct {
	sa      *storage[A]
	sb      *storage[B]
	members []Entity
	idx     int
	cur     Entity
}

// NewView2 creates a View2 over all entities holding both A and B. If either
// type has never been used with w the view is empty rather than an error.
func NewView2[A any, B any](w *World) *View2[A, B] {
	v := &View2[A, B]{sa: lookupStorage[A](w), sb: lookupStorage[B](w)}
	v.Reset()
	return v
}

// Reset re-snapshots the primary membership and rewinds the cursor.
func (v *View2[A, B]) Reset() {
	v.members = v.sa.members()
	v.idx = -1
}

// Each invokes f once for every entity in the snapshot that still holds both
// components.
func (v *View2[A, B]) Each(f func(e Entity, a *A, b *B)) {
	for _, e := range v.members {
		if v.sa.contains(e) && v.sb.contains(e) {
			f(e, v.sa.ref(e), v.sb.ref(e))
		}
	}
}

// Next advances the cursor to the next entity that still holds both
// components. Entity and Get are only valid after Next has returned true.
func (v *View2[A, B]) Next() bool {
	for v.idx+1 < len(v.members) {
		v.idx++
		if e := v.members[v.idx]; v.sa.contains(e) && v.sb.contains(e) {
			v.cur = e
			return true
		}
	}
	return false
}

// Entity returns the entity at the cursor.
func (v *View2[A, B]) Entity() Entity {
	return v.cur
}

// Get returns the component pointers for the entity at the cursor.
func (v *View2[A, B]) Get() (*A, *B) {
	return v.sa.ref(v.cur), v.sb.ref(v.cur)
}

// View3 iterates every entity that holds components of all three types A, B
// and C.
type View3[A any, B any, C any] struct {
	sa      *storage[A]
	sb      *storage[B]
	sc      *storage[C]
	members []Entity
	idx     int
	cur     Entity
}

// NewView3 creates a View3 over all entities holding A, B and C.
func NewView3[A any, B any, C any](w *World) *View3[A, B, C] {
	v := &View3[A, B, C]{
		sa: lookupStorage[A](w),
		sb: lookupStorage[B](w),
		sc: lookupStorage[C](w),
	}
	v.Reset()
	return v
}

// Reset re-snapshots the primary membership and rewinds the cursor.
func (v *View3[A, B, C]) Reset() {
	v.members = v.sa.members()
	v.idx = -1
}

// Each invokes f once for every entity in the snapshot that still holds all
// three components.
func (v *View3[A, B, C]) Each(f func(e Entity, a *A, b *B, c *C)) {
	for _, e := range v.members {
		if v.sa.contains(e) && v.sb.contains(e) && v.sc.contains(e) {
			f(e, v.sa.ref(e), v.sb.ref(e), v.sc.ref(e))
		}
	}
}

// Next advances the cursor to the next entity that still holds all three
// components. Entity and Get are only valid after Next has returned true.
func (v *View3[A, B, C]) Next() bool {
	for v.idx+1 < len(v.members) {
		v.idx++
		e := v.members[v.idx]
		if v.sa.contains(e) && v.sb.contains(e) && v.sc.contains(e) {
			v.cur = e
			return true
		}
	}
	return false
}

// Entity returns the entity at the cursor.
func (v *View3[A, B, C]) Entity() Entity {
	return v.cur
}

// Get returns the component pointers for the entity at the cursor.
func (v *View3[A, B, C]) Get() (*A, *B, *C) {
	return v.sa.ref(v.cur), v.sb.ref(v.cur), v.sc.ref(v.cur)
}

// View4 iterates every entity that holds components of all four types A, B,
// C and D.
type View4[A any, B any, C any, D any] struct {
	sa      *storage[A]
	sb      *storage[B]
	sc      *storage[C]
	sd      *storage[D]
	members []Entity
	idx     int
	cur     Entity
}

// NewView4 creates a View4 over all entities holding A, B, C and D.
func NewView4[A any, B any, C any, D any](w *World) *View4[A, B, C, D] {
	v := &View4[A, B, C, D]{
		sa: lookupStorage[A](w),
		sb: lookupStorage[B](w),
		sc: lookupStorage[C](w),
		sd: lookupStorage[D](w),
	}
	v.Reset()
	return v
}

// Reset re-snapshots the primary membership and rewinds the cursor.
func (v *View4[A, B, C, D]) Reset() {
	v.members = v.sa.members()
	v.idx = -1
}

// Each invokes f once for every entity in the snapshot that still holds all
// four components.
func (v *View4[A, B, C, D]) Each(f func(e Entity, a *A, b *B, c *C, d *D)) {
	for _, e := range v.members {
		if v.sa.contains(e) && v.sb.contains(e) && v.sc.contains(e) && v.sd.contains(e) {
			f(e, v.sa.ref(e), v.sb.ref(e), v.sc.ref(e), v.sd.ref(e))
		}
	}
}

// Next advances the cursor to the next entity that still holds all four
// components. Entity and Get are only valid after Next has returned true.
func (v *View4[A, B, C, D]) Next() bool {
	for v.idx+1 < len(v.members) {
		v.idx++
		e := v.members[v.idx]
		if v.sa.contains(e) && v.sb.contains(e) && v.sc.contains(e) && v.sd.contains(e) {
			v.cur = e
			return true
		}
	}
	return false
}

// Entity returns the entity at the cursor.
func (v *View4[A, B, C, D]) Entity() Entity {
	return v.cur
}

// Get returns the component pointers for the entity at the cursor.
func (v *View4[A, B, C, D]) Get() (*A, *B, *C, *D) {
	return v.sa.ref(v.cur), v.sb.ref(v.cur), v.sc.ref(v.cur), v.sd.ref(v.cur)
}
