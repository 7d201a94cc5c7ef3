package vtree

// Generator is the contract of a control which generates container nodes
// for its items on demand, e.g. an items control realizing rows lazily.
// ContainerAt returns nil while the container for an item has not been
// generated yet. OnGenerated registers a callback invoked whenever a batch
// of containers has been generated.
type Generator interface {
	ItemCount() int
	Item(i int) any
	ContainerAt(i int) Node
	OnGenerated(fn func()) (cancel func())
}

// ContainerHolder is implemented by items which want a back-reference to
// their generated container node.
type ContainerHolder interface {
	SetContainer(Node)
}

// BindContainers wires generated containers back onto the items of g: on
// every generation event it walks the child containers by position, assigns
// each container to its item when the item is a ContainerHolder, and
// recursively binds child containers which are themselves Generators.
//
// The returned cancel function unwinds all subscriptions, including the
// recursive ones.
func BindContainers(g Generator) (cancel func()) {
	b := &binder{gen: g}
	b.unsub = g.OnGenerated(b.assign)
	b.assign() // containers may have been generated already
	return b.cancelAll
}

type binder struct {
	gen      Generator
	unsub    func()
	children []func()
}

func (b *binder) assign() {
	b.unbindChildren()
	for i := 0; i < b.gen.ItemCount(); i++ {
		container := b.gen.ContainerAt(i)
		if container == nil {
			continue
		}
		if holder, ok := b.gen.Item(i).(ContainerHolder); ok {
			holder.SetContainer(container)
		}
		if sub, ok := container.(Generator); ok {
			b.children = append(b.children, BindContainers(sub))
		}
	}
}

func (b *binder) unbindChildren() {
	for _, cancel := range b.children {
		cancel()
	}
	b.children = nil
}

func (b *binder) cancelAll() {
	b.unsub()
	b.unbindChildren()
}
