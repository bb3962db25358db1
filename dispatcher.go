package kodama

import "slices"

// Callback is the shape of every lifecycle subscriber. It receives the World
// that published the event and the entity the event concerns, and may freely
// call back into the World (assign, remove, query) on the same stack.
type Callback func(*World, Entity)

// Dispatcher is a registry of subscriber callbacks for one component type
// and one lifecycle phase. Every storage owns three: create, update, remove.
// Dispatchers are reachable only through OnCreate, OnUpdate and OnRemove.
//
// The zero Dispatcher is ready to use.
type Dispatcher struct {
	nextID    uint64
	callbacks map[uint64]Callback
}

// Connect registers fn and returns its subscription id. Ids are strictly
// increasing for the lifetime of the dispatcher and are never reused, even
// after a disconnect.
func (d *Dispatcher) Connect(fn Callback) uint64 {
	if d.callbacks == nil {
		d.callbacks = make(map[uint64]Callback)
	}
	id := d.nextID
	d.nextID++
	d.callbacks[id] = fn
	return id
}

// Disconnect removes the callback registered under id. Disconnecting an
// unknown or already-disconnected id is a no-op.
func (d *Dispatcher) Disconnect(id uint64) {
	delete(d.callbacks, id)
}

// Publish invokes every registered callback with (w, e), in ascending
// subscription order. The callback set is snapshotted before the first
// invocation: a callback that Connects during a publish will not run until
// the next publish, and one that Disconnects a not-yet-invoked callback
// suppresses it for the current publish as well.
func (d *Dispatcher) Publish(w *World, e Entity) {
	if len(d.callbacks) == 0 {
		return
	}
	ids := make([]uint64, 0, len(d.callbacks))
	for id := range d.callbacks {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		if fn, ok := d.callbacks[id]; ok {
			fn(w, e)
		}
	}
}
