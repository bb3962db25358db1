package kodama

// System is implemented by logic that advances the World once per external
// tick. Systems receive the World and use only its public operations; they
// never reach into storage internals.
type System interface {
	Update(w *World)
}

// EventSystem is a System that additionally reacts to external input events.
// TryConsumeEvent reports whether the event was handled; a handled event is
// not offered to later systems.
type EventSystem interface {
	System
	TryConsumeEvent(event any) bool
}

// Systems is an ordered collection of systems, run front to back.
type Systems []System

// Update ticks every system in order.
func (ss Systems) Update(w *World) {
	for _, s := range ss {
		s.Update(w)
	}
}

// Dispatch offers event to each EventSystem in order until one consumes it.
// It reports whether any system did.
func (ss Systems) Dispatch(event any) bool {
	for _, s := range ss {
		if es, ok := s.(EventSystem); ok && es.TryConsumeEvent(event) {
			return true
		}
	}
	return false
}
