package uibind

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "iter"

// DefaultResetThreshold is the segment size above which Register announces
// the new segment with a single Reset event instead of per-item Add events.
const DefaultResetThreshold = 5

// Composite presents a number of externally-owned observable lists
// ("segments") as one flattened observable ordered sequence. Change events
// raised by a segment are re-emitted by the composite with their indices
// translated into the flattened index space.
//
// The flattened index of an element is the sum of the lengths of all
// segments registered before its own segment, plus its index within that
// segment.
//
// A composite is read-only from the outside: the direct mutators (Add,
// Insert, RemoveAt, Remove, Set) always fail with ErrNotSupported. The
// composite changes only by registering segments or by mutations on
// registered segments. Segments remain exclusively owned by their original
// owner; the composite merely observes them and unsubscribes on Clear.
//
// Composite shares the package's single-goroutine ownership model: Register,
// Clear and all segment mutations must happen on the owning goroutine.
type Composite[T comparable] struct {
	segments  []ObservableList[T]
	unsubs    []func()
	count     int // cached; invariant: sum of segment lengths
	threshold int
	onChange  listeners[func(Change[T])]
	onCount   listeners[func(int)]
}

type compositeConfig struct {
	threshold int
}

// CompositeOption configures a Composite at construction time.
type CompositeOption func(*compositeConfig)

// WithResetThreshold overrides DefaultResetThreshold. Segments longer than
// n are announced with a single Reset event on registration.
func WithResetThreshold(n int) CompositeOption {
	return func(cfg *compositeConfig) {
		cfg.threshold = n
	}
}

// NewComposite creates an empty composite collection.
func NewComposite[T comparable](opts ...CompositeOption) *Composite[T] {
	cfg := compositeConfig{threshold: DefaultResetThreshold}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Composite[T]{threshold: cfg.threshold}
}

// Register appends a segment after all previously registered segments and
// subscribes to its change events. The segment's current items become part
// of the flattened sequence immediately: a count notification is emitted,
// followed by either one Reset event (segment longer than the reset
// threshold) or one Add event per item, each with its flattened index.
//
// Segments cannot be unregistered individually; see Clear.
func (c *Composite[T]) Register(seg ObservableList[T]) {
	idx := len(c.segments)
	c.segments = append(c.segments, seg)
	c.unsubs = append(c.unsubs, seg.OnChange(func(ch Change[T]) {
		c.forward(idx, ch)
	}))
	offset := c.count
	n := seg.Len()
	c.count += n
	tracer().Debugf("composite: registered segment #%d with %d item(s)", idx, n)
	c.notifyCount()
	if n > c.threshold {
		c.emit(ResetChange[T]())
		return
	}
	for j := 0; j < n; j++ {
		v, err := seg.At(j)
		assert(err == nil, "segment length and indexed access disagree")
		c.emit(Added(offset+j, v))
	}
}

// Clear detaches all segments without mutating them and empties the
// flattened view. A count notification is emitted, followed by a Reset
// event.
func (c *Composite[T]) Clear() {
	for _, unsub := range c.unsubs {
		unsub()
	}
	c.segments = nil
	c.unsubs = nil
	c.count = 0
	tracer().Debugf("composite: cleared")
	c.notifyCount()
	c.emit(ResetChange[T]())
}

// Len returns the total number of elements over all segments.
func (c *Composite[T]) Len() int {
	return c.count
}

// At returns the element at the given flattened index, or
// ErrIndexOutOfBounds.
func (c *Composite[T]) At(i int) (T, error) {
	var none T
	if i < 0 || i >= c.count {
		return none, ErrIndexOutOfBounds
	}
	for _, seg := range c.segments {
		if i < seg.Len() {
			return seg.At(i)
		}
		i -= seg.Len()
	}
	assert(false, "cached count out of sync with segment lengths")
	return none, ErrIndexOutOfBounds
}

// Contains reports whether v occurs in any segment.
func (c *Composite[T]) Contains(v T) bool {
	return c.IndexOf(v) >= 0
}

// IndexOf returns the flattened index of the first occurrence of v over all
// segments in registration order, or -1.
func (c *Composite[T]) IndexOf(v T) int {
	offset := 0
	for _, seg := range c.segments {
		for j := 0; j < seg.Len(); j++ {
			w, err := seg.At(j)
			if err == nil && w == v {
				return offset + j
			}
		}
		offset += seg.Len()
	}
	return -1
}

// RangeItems returns an iterator over the flattened sequence. The iterator
// is restartable and live: a fresh traversal re-walks all segments in
// registration order, reflecting their contents at iteration time. It is
// not a snapshot.
func (c *Composite[T]) RangeItems() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seg := range c.segments {
			for j := 0; j < seg.Len(); j++ {
				v, err := seg.At(j)
				if err != nil {
					return
				}
				if !yield(v) {
					return
				}
			}
		}
	}
}

// CopyTo copies all elements, segment by segment in registration order,
// into dst starting at index at. It fails with ErrIndexOutOfBounds when dst
// cannot hold all elements at that offset, without copying anything.
func (c *Composite[T]) CopyTo(dst []T, at int) error {
	if at < 0 || at+c.count > len(dst) {
		return ErrIndexOutOfBounds
	}
	for v := range c.RangeItems() {
		dst[at] = v
		at++
	}
	return nil
}

// OnChange registers a synchronous listener for translated structural
// change events.
func (c *Composite[T]) OnChange(fn func(Change[T])) (cancel func()) {
	return c.onChange.add(fn)
}

// OnCount registers a synchronous listener for count notifications. A count
// notification accompanies every structural change, preceding it, and is
// emitted regardless of whether the count value differs from the previous
// one.
func (c *Composite[T]) OnCount(fn func(count int)) (cancel func()) {
	return c.onCount.add(fn)
}

// Add always fails with ErrNotSupported.
func (c *Composite[T]) Add(v T) error {
	return ErrNotSupported
}

// Insert always fails with ErrNotSupported.
func (c *Composite[T]) Insert(i int, v T) error {
	return ErrNotSupported
}

// RemoveAt always fails with ErrNotSupported.
func (c *Composite[T]) RemoveAt(i int) error {
	return ErrNotSupported
}

// Remove always fails with ErrNotSupported.
func (c *Composite[T]) Remove(v T) error {
	return ErrNotSupported
}

// Set always fails with ErrNotSupported.
func (c *Composite[T]) Set(i int, v T) error {
	return ErrNotSupported
}

// forward re-emits a segment's change event with translated indices.
//
// The count is recomputed from current segment lengths; for the itemized
// kinds this equals adjusting by the event's insert/remove delta, and for
// Reset it is the only way to learn the new length. The originating
// segment's offset uses current lengths as well: segments before it are
// untouched by the event, so their lengths are already final.
func (c *Composite[T]) forward(idx int, ch Change[T]) {
	c.count = c.sumLengths()
	c.notifyCount()
	offset := 0
	for _, seg := range c.segments[:idx] {
		offset += seg.Len()
	}
	c.emit(translated(ch, offset))
}

func (c *Composite[T]) sumLengths() int {
	sum := 0
	for _, seg := range c.segments {
		sum += seg.Len()
	}
	return sum
}

func (c *Composite[T]) emit(ch Change[T]) {
	c.onChange.each(func(fn func(Change[T])) {
		fn(ch)
	})
}

func (c *Composite[T]) notifyCount() {
	count := c.count
	c.onCount.each(func(fn func(int)) {
		fn(count)
	})
}
