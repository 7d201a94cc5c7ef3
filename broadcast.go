package uibind

import (
	"context"

	"github.com/guiguan/caster"
)

// Broadcaster fans the change events of one source out to any number of
// subscriber channels. It is the package's marshalling boundary: the source
// emits on its owning goroutine, subscribers drain their channels from
// whatever goroutine suits them.
//
// Publishing never blocks the owning goroutine. A subscriber which does not
// keep up with its channel capacity will miss events; subscribers needing a
// consistent view should treat their channel as a hint and re-read the
// source.
type Broadcaster[T any] struct {
	cast   *caster.Caster
	cancel func()
}

// NewBroadcaster attaches a broadcaster to src. Detach with Close.
func NewBroadcaster[T any](src ChangeSource[T]) *Broadcaster[T] {
	b := &Broadcaster[T]{
		cast: caster.New(nil),
	}
	b.cancel = src.OnChange(func(ch Change[T]) {
		b.cast.TryPub(ch)
	})
	return b
}

// Subscribe returns a channel of change events with the given buffer
// capacity. The channel is closed when ctx is done (ctx may be nil) or when
// the broadcaster is closed. ok is false if the broadcaster has already
// been closed.
func (b *Broadcaster[T]) Subscribe(ctx context.Context, capacity uint) (events <-chan Change[T], ok bool) {
	src, ok := b.cast.Sub(ctx, capacity)
	if !ok {
		return nil, false
	}
	out := make(chan Change[T], capacity)
	go func() {
		defer close(out)
		for m := range src {
			if ch, isChange := m.(Change[T]); isChange {
				out <- ch
			}
		}
	}()
	return out, true
}

// Close detaches the broadcaster from its source and closes all subscriber
// channels.
func (b *Broadcaster[T]) Close() {
	b.cancel()
	b.cast.Close()
}
