// Package kodama provides a small, map-based Entity-Component-System store.
// A World associates opaque entity handles with independently-typed component
// values, answers conjunctive queries over any combination of component types,
// and publishes per-type lifecycle events (create, update, remove) to
// subscribers. Storage is one associative map per component type; there is no
// archetype machinery, which keeps every operation simple and predictable.
package kodama

// Entity is an opaque handle identifying one logical object in a World.
// Handles are allocated by World.CreateEntity, increase monotonically, and
// are never reused after destruction, so a stale handle can never alias a
// newer entity. Entities carry no payload and are copied freely.
type Entity uint32

// NoEntity is the zero Entity. No live entity ever carries this value, which
// makes it a convenient "no result" marker for callers.
const NoEntity Entity = 0
