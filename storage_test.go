package kodama

import "testing"

// White-box check of the storage invariant: the component map's key set and
// the membership slice stay identical through interleaved writes and erases,
// and the slice stays in ascending entity order.
func TestStorageMembershipStaysInSync(t *testing.T) {
	s := newStorage[int]()

	check := func() {
		t.Helper()
		if len(s.components) != len(s.entities) {
			t.Fatalf("map has %d keys, slice has %d entries", len(s.components), len(s.entities))
		}
		for i, e := range s.entities {
			if _, ok := s.components[e]; !ok {
				t.Fatalf("entity %d in slice but not in map", e)
			}
			if i > 0 && s.entities[i-1] >= e {
				t.Fatalf("membership slice out of order: %v", s.entities)
			}
		}
	}

	// Out-of-order inserts, overwrites, erases of absent entities.
	for _, e := range []Entity{5, 2, 9, 2, 7, 1} {
		s.set(e, int(e))
		check()
	}
	s.erase(4) // absent
	check()
	s.erase(2)
	s.erase(9)
	check()
	s.set(2, 22)
	check()

	if got := *s.ref(2); got != 22 {
		t.Errorf("re-inserted component reads %d, want 22", got)
	}
	if s.size() != 4 {
		t.Errorf("size = %d, want 4", s.size())
	}
}

func TestStorageSetReportsCreation(t *testing.T) {
	s := newStorage[int]()
	if !s.set(1, 10) {
		t.Error("first set should report creation")
	}
	if s.set(1, 20) {
		t.Error("overwrite should not report creation")
	}
	if *s.ref(1) != 20 {
		t.Error("overwrite lost the new value")
	}
}

func TestNilStorageIsEmpty(t *testing.T) {
	var s *storage[int]
	if s.contains(3) {
		t.Error("nil storage should contain nothing")
	}
	if s.ref(3) != nil {
		t.Error("nil storage should hand out nil refs")
	}
	if s.members() != nil || s.size() != 0 {
		t.Error("nil storage should have no members")
	}
}

func TestStorageOverwriteKeepsPointerStable(t *testing.T) {
	s := newStorage[int]()
	s.set(1, 10)
	p := s.ref(1)
	s.set(1, 99)
	if *p != 99 {
		t.Errorf("overwrite should write through the stored pointer, got %d", *p)
	}
}
