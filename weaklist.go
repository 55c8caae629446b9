/*
Package weaklist implements a list of weak references which evict themselves.

Push returns a reference-counted Handle and links a non-owning entry for the
value into the list. When the last Handle to a value is dropped, its entry is
unlinked and the value released immediately, in constant time, without
scanning the list. UpgradeAll returns new handles to every value still in the
list.

A list and the handles created from it must be used by one goroutine at a time.
*/
package weaklist

import (
	"github.com/mgnsk/weaklist/log"
	"github.com/pkg/errors"
)

// WeakList is a list of weak references to values owned by handles.
// The list never keeps a value alive.
//
// The zero value is a ready to use empty list.
// A WeakList must not be copied after first use: its entries point back at the head.
type WeakList[T any] struct {
	head   *node[T]
	cfg    *config[T]
	closed bool
}

// New creates an empty list.
func New[T any](opts ...Option[T]) *WeakList[T] {
	cfg := newDefaultConfig[T]()
	for _, opt := range opts {
		opt.apply(cfg)
	}

	return &WeakList[T]{
		cfg: cfg,
	}
}

func (l *WeakList[T]) config() *config[T] {
	if l.cfg == nil {
		l.cfg = newDefaultConfig[T]()
	}
	return l.cfg
}

// Metrics returns the metrics the list was configured with or nil.
func (l *WeakList[T]) Metrics() *Metrics {
	return l.config().metrics
}

// Push links value at the front of the list and returns its only handle.
//
// Dropping the returned handle straight away releases the value and
// removes it from the list again, so the call has no lasting effect.
func (l *WeakList[T]) Push(value T) *Handle[T] {
	if l.closed {
		panic(errors.WithStack(ErrClosed))
	}

	cfg := l.config()

	n := createBefore(&l.head, value, cfg)
	l.head = n
	n.prevNext = &l.head

	cfg.metrics.add(pushed, 1)
	cfg.metrics.nodeLinked()

	return newHandle(n)
}

// UpgradeAll returns a new handle to every value in the list,
// most recently pushed first. The list is not changed.
//
// The caller owns the returned handles and must drop them.
func (l *WeakList[T]) UpgradeAll() []*Handle[T] {
	var handles []*Handle[T]
	for n := l.head; n != nil; n = n.next {
		n.refs++
		handles = append(handles, newHandle(n))
	}

	l.config().metrics.add(upgraded, len(handles))

	return handles
}

// TakeAll is like UpgradeAll but also removes every value from the list.
func (l *WeakList[T]) TakeAll() []*Handle[T] {
	handles := l.UpgradeAll()
	for _, h := range handles {
		h.Detach()
	}
	return handles
}

// Clear removes every value from the list.
//
// Clear never releases a value: everything in the list is owned by handles elsewhere.
func (l *WeakList[T]) Clear() {
	for _, h := range l.TakeAll() {
		h.Drop()
	}
}

// Range calls f for each value in the list, most recently pushed first.
// If f returns false, Range stops the iteration.
// f must not change the list or drop handles to its values.
func (l *WeakList[T]) Range(f func(value T) bool) {
	for n := l.head; n != nil; n = n.next {
		if !f(n.value) {
			return
		}
	}
}

// Len returns the number of values in the list.
//
// NOTE: This is an O(n) operation.
func (l *WeakList[T]) Len() (count int) {
	for n := l.head; n != nil; n = n.next {
		count++
	}
	return count
}

// Empty returns whether the list is empty.
func (l *WeakList[T]) Empty() bool {
	return l.head == nil
}

// Close clears the list and prevents further pushes.
// Existing handles stay valid.
func (l *WeakList[T]) Close() error {
	if l.closed {
		err := errors.Wrap(ErrClosed, "weaklist: close")
		log.Debug("%v", err)
		return err
	}
	l.closed = true

	l.Clear()

	return nil
}
