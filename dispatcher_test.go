package kodama_test

import (
	"testing"

	"github.com/ferrindae/kodama"
)

func TestDispatcherConnectDisconnect(t *testing.T) {
	w := kodama.NewWorld()
	e := w.CreateEntity()
	d := kodama.OnCreate[Position](w)

	var aCalls, bCalls int
	idA := d.Connect(func(*kodama.World, kodama.Entity) { aCalls++ })
	d.Connect(func(*kodama.World, kodama.Entity) { bCalls++ })

	kodama.Assign(w, e, Position{})
	if aCalls != 1 || bCalls != 1 {
		t.Fatalf("both callbacks should fire once, got %d/%d", aCalls, bCalls)
	}

	d.Disconnect(idA)
	kodama.Assign(w, w.CreateEntity(), Position{})
	if aCalls != 1 {
		t.Errorf("disconnected callback fired again (%d calls)", aCalls)
	}
	if bCalls != 2 {
		t.Errorf("remaining callback should keep firing, got %d calls", bCalls)
	}

	// Unknown and repeated disconnects are no-ops.
	d.Disconnect(idA)
	d.Disconnect(9999)
}

func TestDispatcherIDsAreNeverReused(t *testing.T) {
	var d kodama.Dispatcher
	noop := func(*kodama.World, kodama.Entity) {}

	prev := d.Connect(noop)
	for i := 0; i < 10; i++ {
		d.Disconnect(prev)
		id := d.Connect(noop)
		if id <= prev {
			t.Fatalf("subscription id %d not strictly greater than %d", id, prev)
		}
		prev = id
	}
}

func TestDispatcherPublishOrder(t *testing.T) {
	var d kodama.Dispatcher
	w := kodama.NewWorld()

	var order []int
	for i := 0; i < 5; i++ {
		i := i
		d.Connect(func(*kodama.World, kodama.Entity) { order = append(order, i) })
	}
	d.Publish(w, NoHit(t))
	for i, got := range order {
		if got != i {
			t.Fatalf("publish order %v, want subscription order", order)
		}
	}
}

// NoHit returns an entity handle that no test world has issued; used when the
// entity argument is irrelevant.
func NoHit(t *testing.T) kodama.Entity {
	t.Helper()
	return kodama.Entity(77)
}

func TestConnectDuringPublishDeferredToNextPublish(t *testing.T) {
	var d kodama.Dispatcher
	w := kodama.NewWorld()

	var lateCalls int
	d.Connect(func(*kodama.World, kodama.Entity) {
		d.Connect(func(*kodama.World, kodama.Entity) { lateCalls++ })
	})

	d.Publish(w, NoHit(t))
	if lateCalls != 0 {
		t.Errorf("callback connected mid-publish ran in the same publish (%d calls)", lateCalls)
	}
	d.Publish(w, NoHit(t))
	if lateCalls != 1 {
		t.Errorf("callback connected mid-publish should run next publish, got %d calls", lateCalls)
	}
}

func TestDisconnectDuringPublishSuppressesPendingCallback(t *testing.T) {
	var d kodama.Dispatcher
	w := kodama.NewWorld()

	var secondCalls int
	var secondID uint64
	d.Connect(func(*kodama.World, kodama.Entity) {
		d.Disconnect(secondID)
	})
	secondID = d.Connect(func(*kodama.World, kodama.Entity) { secondCalls++ })

	d.Publish(w, NoHit(t))
	if secondCalls != 0 {
		t.Errorf("callback disconnected mid-publish still ran %d times", secondCalls)
	}
}

func TestRemoveEventDuringDestroyCanCascade(t *testing.T) {
	w := kodama.NewWorld()
	parent := w.CreateEntity()
	child := w.CreateEntity()
	kodama.Assign(w, parent, Health{Current: 1})
	kodama.Assign(w, child, Health{Current: 1})

	// Destroying the parent cascades to the child through the remove event.
	kodama.OnRemove[Health](w).Connect(func(cw *kodama.World, ce kodama.Entity) {
		if ce == parent {
			cw.DestroyEntity(child)
		}
	})

	w.DestroyEntity(parent)
	if w.Alive(child) {
		t.Error("cascaded destroy from a remove callback did not stick")
	}
	if w.Size() != 0 {
		t.Errorf("expected empty world, got size %d", w.Size())
	}
}
