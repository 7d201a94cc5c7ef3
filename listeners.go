package uibind

import "slices"

// listeners is a small registration list for synchronous callbacks.
// Cancellation is by entry identity; cancel funcs are idempotent.
type listeners[F any] struct {
	entries []*listenerEntry[F]
}

type listenerEntry[F any] struct {
	fn F
}

func (l *listeners[F]) add(fn F) (cancel func()) {
	e := &listenerEntry[F]{fn: fn}
	l.entries = append(l.entries, e)
	return func() {
		for i, x := range l.entries {
			if x == e {
				l.entries = slices.Delete(l.entries, i, i+1)
				return
			}
		}
	}
}

// each visits a snapshot of the registered callbacks, so that callbacks may
// register or cancel listeners while a notification is in flight.
func (l *listeners[F]) each(visit func(F)) {
	for _, e := range slices.Clone(l.entries) {
		visit(e.fn)
	}
}
