package uibind

import (
	"iter"
	"slices"
)

// SeqList is a slice-backed observable ordered sequence. Every mutation
// emits exactly one change event describing the mutation.
//
// A SeqList created by
//
//	&SeqList[int]{}
//
// is a valid, empty list. SeqList implements ObservableList and is the
// canonical segment type for Composite.
type SeqList[T comparable] struct {
	items    []T
	onChange listeners[func(Change[T])]
}

// NewSeqList creates a list holding the given items.
func NewSeqList[T comparable](items ...T) *SeqList[T] {
	l := &SeqList[T]{}
	l.items = append(l.items, items...)
	return l
}

// Len returns the number of items in the list.
func (l *SeqList[T]) Len() int {
	return len(l.items)
}

// At returns the item at index i, or ErrIndexOutOfBounds.
func (l *SeqList[T]) At(i int) (T, error) {
	if i < 0 || i >= len(l.items) {
		var none T
		return none, ErrIndexOutOfBounds
	}
	return l.items[i], nil
}

// IndexOf returns the index of the first occurrence of v, or -1.
func (l *SeqList[T]) IndexOf(v T) int {
	return slices.Index(l.items, v)
}

// Contains reports whether v occurs in the list.
func (l *SeqList[T]) Contains(v T) bool {
	return slices.Contains(l.items, v)
}

// Slice returns a copy of the list contents.
func (l *SeqList[T]) Slice() []T {
	return slices.Clone(l.items)
}

// RangeItems returns an iterator over the items in order.
func (l *SeqList[T]) RangeItems() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l.items {
			if !yield(v) {
				return
			}
		}
	}
}

// OnChange registers a synchronous change listener.
func (l *SeqList[T]) OnChange(fn func(Change[T])) (cancel func()) {
	return l.onChange.add(fn)
}

// Append adds items at the end of the list.
func (l *SeqList[T]) Append(vs ...T) {
	if len(vs) == 0 {
		return
	}
	at := len(l.items)
	l.items = append(l.items, vs...)
	l.emit(Added(at, vs...))
}

// Insert inserts v at index i, with i in [0, Len()].
func (l *SeqList[T]) Insert(i int, v T) error {
	if i < 0 || i > len(l.items) {
		return ErrIndexOutOfBounds
	}
	l.items = slices.Insert(l.items, i, v)
	l.emit(Added(i, v))
	return nil
}

// RemoveAt removes and returns the item at index i.
func (l *SeqList[T]) RemoveAt(i int) (T, error) {
	if i < 0 || i >= len(l.items) {
		var none T
		return none, ErrIndexOutOfBounds
	}
	old := l.items[i]
	l.items = slices.Delete(l.items, i, i+1)
	l.emit(Removed(i, old))
	return old, nil
}

// Remove removes the first occurrence of v and reports whether one was
// found.
func (l *SeqList[T]) Remove(v T) bool {
	i := slices.Index(l.items, v)
	if i < 0 {
		return false
	}
	_, err := l.RemoveAt(i)
	return err == nil
}

// Set overwrites the item at index i in place.
func (l *SeqList[T]) Set(i int, v T) error {
	if i < 0 || i >= len(l.items) {
		return ErrIndexOutOfBounds
	}
	old := l.items[i]
	l.items[i] = v
	l.emit(Replaced(i, []T{old}, []T{v}))
	return nil
}

// Move moves the item at index from to index to.
func (l *SeqList[T]) Move(from, to int) error {
	if from < 0 || from >= len(l.items) || to < 0 || to >= len(l.items) {
		return ErrIndexOutOfBounds
	}
	if from == to {
		return nil
	}
	v := l.items[from]
	l.items = slices.Delete(l.items, from, from+1)
	l.items = slices.Insert(l.items, to, v)
	l.emit(Moved(to, from, v))
	return nil
}

// Reset replaces the list contents wholesale and emits a single Reset
// event.
func (l *SeqList[T]) Reset(items ...T) {
	l.items = append(l.items[:0:0], items...)
	l.emit(ResetChange[T]())
}

func (l *SeqList[T]) emit(ch Change[T]) {
	l.onChange.each(func(fn func(Change[T])) {
		fn(ch)
	})
}
