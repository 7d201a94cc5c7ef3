package uibind

import "fmt"

// ChangeKind enumerates the kinds of structural change an observable ordered
// sequence can report.
type ChangeKind int

const (
	// Reset signals that the contents have been replaced wholesale, without
	// an itemized delta.
	Reset ChangeKind = iota
	// Add signals items inserted at Change.Index.
	Add
	// Remove signals items removed from Change.OldIndex.
	Remove
	// Move signals items moved from Change.OldIndex to Change.Index.
	Move
	// Replace signals items at Change.Index overwritten in place.
	Replace
)

func (k ChangeKind) String() string {
	switch k {
	case Reset:
		return "Reset"
	case Add:
		return "Add"
	case Remove:
		return "Remove"
	case Move:
		return "Move"
	case Replace:
		return "Replace"
	}
	return fmt.Sprintf("ChangeKind(%d)", int(k))
}

// NoIndex is the sentinel for event positions which carry no index, e.g. on
// a Reset. Index translation passes it through untouched.
const NoIndex = -1

// Change describes one structural mutation of an observable ordered
// sequence. Which fields are meaningful depends on Kind:
//
//	Kind     |  Items        OldItems      Index      OldIndex
//	---------+-------------------------------------------------
//	Reset    |  —            —             NoIndex    NoIndex
//	Add      |  inserted     —             start      NoIndex
//	Remove   |  —            removed       NoIndex    start
//	Move     |  moved        —             to         from
//	Replace  |  new          overwritten   start      start
type Change[T any] struct {
	Kind     ChangeKind
	Items    []T
	OldItems []T
	Index    int
	OldIndex int
}

// Added describes items inserted at index.
func Added[T any](index int, items ...T) Change[T] {
	return Change[T]{Kind: Add, Items: items, Index: index, OldIndex: NoIndex}
}

// Removed describes items removed from index.
func Removed[T any](index int, items ...T) Change[T] {
	return Change[T]{Kind: Remove, OldItems: items, Index: NoIndex, OldIndex: index}
}

// Moved describes items moved from index from to index to.
func Moved[T any](to, from int, items ...T) Change[T] {
	return Change[T]{Kind: Move, Items: items, Index: to, OldIndex: from}
}

// Replaced describes old items overwritten by new items at index.
func Replaced[T any](index int, old, items []T) Change[T] {
	return Change[T]{Kind: Replace, Items: items, OldItems: old, Index: index, OldIndex: index}
}

// ResetChange describes a wholesale replacement of the sequence contents.
func ResetChange[T any]() Change[T] {
	return Change[T]{Kind: Reset, Index: NoIndex, OldIndex: NoIndex}
}

// translated returns a copy of ch with both positions shifted by offset.
// NoIndex positions stay untouched. Unrecognized kinds cannot be translated
// and trip an internal assertion; the set of kinds is closed.
func translated[T any](ch Change[T], offset int) Change[T] {
	switch ch.Kind {
	case Reset, Add, Remove, Move, Replace:
	default:
		assert(false, "unrecognized change kind reached index translation")
	}
	if ch.Index != NoIndex {
		ch.Index += offset
	}
	if ch.OldIndex != NoIndex {
		ch.OldIndex += offset
	}
	return ch
}
