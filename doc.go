/*
Package uibind provides small helpers for data-binding style UI code in Go:
observable single values, an observable list, a composite collection which
merges several observable lists into one flattened observable view, and the
change-event plumbing shared by all of them.

The package is deliberately not a widget toolkit. It supplies the model-side
half of a binding layer: ordered sequences and single values which report
every mutation to registered listeners, so that view code (or any other
consumer) can mirror model state without polling.

# Threading

All types in this package follow a single-goroutine ownership model, as UI
frameworks commonly demand: mutations and listener callbacks happen
synchronously on the goroutine that owns the value or list. The package does
no internal locking. Broadcaster is the one marshalling boundary: it fans
change events out to subscriber channels which may be drained from other
goroutines.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package uibind

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
