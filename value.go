package uibind

// Var is a plain observable single value. Set notifies listeners on every
// call, even when the new value equals the old one, so listeners can rely
// on seeing each write.
type Var[T any] struct {
	value    T
	onChange listeners[func(old, current T)]
}

// NewVar creates an observable value holding initial.
func NewVar[T any](initial T) *Var[T] {
	return &Var[T]{value: initial}
}

// Get returns the current value.
func (v *Var[T]) Get() T {
	return v.value
}

// Set stores val and notifies all listeners.
func (v *Var[T]) Set(val T) {
	old := v.value
	v.value = val
	v.onChange.each(func(fn func(T, T)) {
		fn(old, val)
	})
}

// OnChange registers a synchronous listener receiving the old and the
// current value on every Set.
func (v *Var[T]) OnChange(fn func(old, current T)) (cancel func()) {
	return v.onChange.add(fn)
}

// Proxy is an observable view onto externally stored state, the moral
// equivalent of a property-backed value: reads and writes go through
// caller-supplied accessor functions, and every write notifies listeners,
// whether or not the value changed.
type Proxy[T any] struct {
	get      func() T
	set      func(T)
	onChange listeners[func(old, current T)]
}

// NewProxy creates an observable wrapper around the given accessors. Both
// must be non-nil.
func NewProxy[T any](get func() T, set func(T)) *Proxy[T] {
	assert(get != nil && set != nil, "proxy requires both accessors")
	return &Proxy[T]{get: get, set: set}
}

// Get reads the current value through the accessor.
func (p *Proxy[T]) Get() T {
	return p.get()
}

// Set writes val through the accessor and notifies all listeners.
func (p *Proxy[T]) Set(val T) {
	old := p.get()
	p.set(val)
	p.onChange.each(func(fn func(T, T)) {
		fn(old, val)
	})
}

// OnChange registers a synchronous listener receiving the old and the
// current value on every Set.
func (p *Proxy[T]) OnChange(fn func(old, current T)) (cancel func()) {
	return p.onChange.add(fn)
}
