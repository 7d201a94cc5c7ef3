package convert

import (
	"errors"
	"reflect"
)

var (
	// ErrTypeMismatch signals a value or target type incompatible with the
	// conversion function's declared types.
	ErrTypeMismatch = errors.New("convert: type mismatch")
	// ErrNotImplemented signals an inverse conversion without a supplied
	// inverse function.
	ErrNotImplemented = errors.New("convert: inverse conversion not implemented")
)

// Converter wraps a forward conversion function, and optionally an inverse,
// as a bindable value conversion. Binding layers traffic in untyped values,
// so Convert and ConvertBack take and return `any` and check types at
// runtime against the function's declared parameter and result types.
type Converter[S, T any] struct {
	fwd func(S) (T, error)
	inv func(T) (S, error)
}

// New wraps a forward conversion function. The resulting converter has no
// inverse: ConvertBack fails with ErrNotImplemented.
func New[S, T any](fwd func(S) (T, error)) *Converter[S, T] {
	return &Converter[S, T]{fwd: fwd}
}

// NewInvertible wraps a forward conversion function and its inverse.
func NewInvertible[S, T any](fwd func(S) (T, error), inv func(T) (S, error)) *Converter[S, T] {
	return &Converter[S, T]{fwd: fwd, inv: inv}
}

// Convert applies the forward function to value. It fails with
// ErrTypeMismatch when value is not an S, or when the declared result type T
// is not assignable to target. A nil target skips the target check.
func (cv *Converter[S, T]) Convert(value any, target reflect.Type) (any, error) {
	s, ok := value.(S)
	if !ok {
		return nil, ErrTypeMismatch
	}
	if !assignable[T](target) {
		return nil, ErrTypeMismatch
	}
	t, err := cv.fwd(s)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// ConvertBack applies the inverse function to value. It fails with
// ErrNotImplemented when no inverse was supplied, and with ErrTypeMismatch
// when value is not a T or when S is not assignable to target.
func (cv *Converter[S, T]) ConvertBack(value any, target reflect.Type) (any, error) {
	if cv.inv == nil {
		return nil, ErrNotImplemented
	}
	t, ok := value.(T)
	if !ok {
		return nil, ErrTypeMismatch
	}
	if !assignable[S](target) {
		return nil, ErrTypeMismatch
	}
	s, err := cv.inv(t)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// MultiConverter wraps a forward function combining several source values
// into one, and optionally an inverse splitting one value back into several.
type MultiConverter[T any] struct {
	fwd func(values []any) (T, error)
	inv func(T) ([]any, error)
}

// NewMulti wraps a forward multi-value conversion function, without an
// inverse.
func NewMulti[T any](fwd func(values []any) (T, error)) *MultiConverter[T] {
	return &MultiConverter[T]{fwd: fwd}
}

// NewMultiInvertible wraps a forward multi-value conversion function and
// its inverse.
func NewMultiInvertible[T any](fwd func(values []any) (T, error), inv func(T) ([]any, error)) *MultiConverter[T] {
	return &MultiConverter[T]{fwd: fwd, inv: inv}
}

// Convert applies the forward function to values. It fails with
// ErrTypeMismatch when the declared result type T is not assignable to
// target; a nil target skips the check.
func (cv *MultiConverter[T]) Convert(values []any, target reflect.Type) (any, error) {
	if !assignable[T](target) {
		return nil, ErrTypeMismatch
	}
	t, err := cv.fwd(values)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// ConvertBack applies the inverse function to value. It fails with
// ErrNotImplemented when no inverse was supplied, and with ErrTypeMismatch
// when value is not a T, when the inverse yields a different number of
// values than targets names, or when a value is not assignable to its
// target type. A nil targets slice skips the per-value checks.
func (cv *MultiConverter[T]) ConvertBack(value any, targets []reflect.Type) ([]any, error) {
	if cv.inv == nil {
		return nil, ErrNotImplemented
	}
	t, ok := value.(T)
	if !ok {
		return nil, ErrTypeMismatch
	}
	out, err := cv.inv(t)
	if err != nil {
		return nil, err
	}
	if targets == nil {
		return out, nil
	}
	if len(out) != len(targets) {
		return nil, ErrTypeMismatch
	}
	for i, v := range out {
		if targets[i] == nil || v == nil {
			continue
		}
		if !reflect.TypeOf(v).AssignableTo(targets[i]) {
			return nil, ErrTypeMismatch
		}
	}
	return out, nil
}

// assignable reports whether the declared type V may be assigned to target.
// A nil target means the caller does not care.
func assignable[V any](target reflect.Type) bool {
	if target == nil {
		return true
	}
	return reflect.TypeFor[V]().AssignableTo(target)
}
