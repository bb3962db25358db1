package kodama

import "slices"

// storage holds every component of type T, keyed by entity, together with
// the ascending membership slice that drives view iteration and the three
// lifecycle dispatchers for T.
//
// Invariant: the key set of components and the contents of entities are
// always identical. Components live behind stable pointers; overwriting a
// component writes through the existing pointer, so references previously
// handed out by views observe the new value.
type storage[T any] struct {
	components map[Entity]*T
	entities   []Entity // ascending entity order

	created Dispatcher
	updated Dispatcher
	removed Dispatcher
}

func newStorage[T any]() *storage[T] {
	return &storage[T]{components: make(map[Entity]*T)}
}

// set inserts or overwrites the component for e. Reports whether the entity
// gained the component (true) as opposed to replacing an existing value.
func (s *storage[T]) set(e Entity, v T) bool {
	if p, ok := s.components[e]; ok {
		*p = v
		return false
	}
	p := new(T)
	*p = v
	s.components[e] = p
	i, _ := slices.BinarySearch(s.entities, e)
	s.entities = slices.Insert(s.entities, i, e)
	return true
}

// ref returns the stored component pointer for e, or nil. Safe on a nil
// storage, which stands in for "type never used".
func (s *storage[T]) ref(e Entity) *T {
	if s == nil {
		return nil
	}
	return s.components[e]
}

func (s *storage[T]) contains(e Entity) bool {
	if s == nil {
		return false
	}
	_, ok := s.components[e]
	return ok
}

// erase removes e's component and membership. No events fire here; callers
// that owe subscribers a remove event publish it first.
func (s *storage[T]) erase(e Entity) {
	if _, ok := s.components[e]; !ok {
		return
	}
	delete(s.components, e)
	if i, found := slices.BinarySearch(s.entities, e); found {
		s.entities = slices.Delete(s.entities, i, i+1)
	}
}

func (s *storage[T]) drop(w *World, e Entity) {
	if !s.contains(e) {
		return
	}
	s.removed.Publish(w, e)
	s.erase(e)
}

// members returns a copy of the membership slice. Views iterate the copy so
// that erasing entities mid-sweep cannot shift the scan under them.
func (s *storage[T]) members() []Entity {
	if s == nil {
		return nil
	}
	return slices.Clone(s.entities)
}

func (s *storage[T]) size() int {
	if s == nil {
		return 0
	}
	return len(s.entities)
}
