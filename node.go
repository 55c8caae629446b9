package weaklist

// node holds a value, its strong reference count and its list membership.
//
// prevNext points at the cell which points at this node: either the list
// head or the next field of the previous node. It is nil when the node is
// not in a list. Only createBefore and unlink write the link fields.
type node[T any] struct {
	value    T
	refs     int
	next     *node[T]
	prevNext **node[T]
	cfg      *config[T]
}

// createBefore creates a node in front of the current occupant of slot.
// The caller must store the node into slot and set its prevNext to slot.
func createBefore[T any](slot **node[T], value T, cfg *config[T]) *node[T] {
	n := &node[T]{
		value: value,
		refs:  1,
		next:  *slot,
		cfg:   cfg,
	}
	if n.next != nil {
		n.next.prevNext = &n.next
	}
	return n
}

// unlink removes the node from its list. It is a no-op if the node is not linked.
func (n *node[T]) unlink() {
	p := n.prevNext
	if p == nil {
		return
	}

	next := n.next
	n.prevNext = nil
	n.next = nil

	*p = next
	if next != nil {
		next.prevNext = p
	}

	n.cfg.metrics.nodeUnlinked()
}

func (n *node[T]) linked() bool {
	return n.prevNext != nil
}

// take unlinks the node and moves the value out of it.
func (n *node[T]) take() T {
	n.unlink()

	var zero T
	v := n.value
	n.value = zero
	n.refs = 0

	return v
}

// release is called when the last reference is gone.
func (n *node[T]) release() {
	v := n.take()
	n.cfg.metrics.nodeFreed(freed)

	if n.cfg.dropFunc != nil {
		n.cfg.dropFunc(v)
	}
}
