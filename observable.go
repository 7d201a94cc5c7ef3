package uibind

// ChangeSource is anything that emits structural change events for an
// ordered sequence of T.
type ChangeSource[T any] interface {
	// OnChange registers a synchronous listener and returns its cancel
	// function. Listeners are called in registration order.
	OnChange(fn func(Change[T])) (cancel func())
}

// ObservableList is the contract a sequence must fulfil to act as a segment
// of a composite collection: random-indexed read access plus change
// notification.
type ObservableList[T any] interface {
	ChangeSource[T]
	Len() int
	At(i int) (T, error)
}
