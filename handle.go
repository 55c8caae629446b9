package weaklist

import (
	"runtime"

	"github.com/mgnsk/weaklist/log"
	"github.com/pkg/errors"
)

// Handle is an owning, reference-counted pointer to a value pushed into a WeakList.
//
// A value stays alive, and in its list, for as long as at least one of its
// handles has not been dropped. Every handle must be released exactly once,
// either with Drop or a successful TryUnwrap or Unwrap.
//
// A Handle must not be copied by value; use Clone.
type Handle[T any] struct {
	n *node[T]
}

func newHandle[T any](n *node[T]) *Handle[T] {
	h := &Handle[T]{n: n}
	if n.cfg.leakDetection {
		runtime.SetFinalizer(h, reportLeak[T])
	}
	return h
}

// reportLeak runs on the finalizer goroutine. It only reads the immutable config
// and the goroutine safe metrics, never the value or the link fields.
func reportLeak[T any](h *Handle[T]) {
	var zero T
	h.n.cfg.metrics.add(leaked, 1)
	log.Warn("weaklist: handle to %T was garbage collected without Drop", zero)
}

func (h *Handle[T]) mustNode() *node[T] {
	if h.n == nil {
		panic(errors.WithStack(ErrReleased))
	}
	return h.n
}

// forget disowns the node without touching its reference count.
func (h *Handle[T]) forget() {
	if h.n.cfg.leakDetection {
		runtime.SetFinalizer(h, nil)
	}
	h.n = nil
}

// Value returns the value.
func (h *Handle[T]) Value() T {
	return h.mustNode().value
}

// Pointer returns a pointer to the value. It must not be used after the
// last handle to the value is released.
func (h *Handle[T]) Pointer() *T {
	return &h.mustNode().value
}

// Clone returns a new handle to the same value.
func (h *Handle[T]) Clone() *Handle[T] {
	n := h.mustNode()
	n.refs++
	n.cfg.metrics.add(cloned, 1)
	return newHandle(n)
}

// RefCount returns the number of live handles to the value.
func (h *Handle[T]) RefCount() int {
	return h.mustNode().refs
}

// Linked reports whether the value is still in its list.
func (h *Handle[T]) Linked() bool {
	return h.n != nil && h.n.linked()
}

// Released reports whether the handle was dropped or unwrapped.
func (h *Handle[T]) Released() bool {
	return h.n == nil
}

// Detach removes the value from its list without affecting its lifetime.
// Once detached, a value never returns to the list.
//
// Detach is idempotent and safe to call on a released handle.
func (h *Handle[T]) Detach() {
	if h.n != nil {
		h.n.unlink()
	}
}

// Drop releases the handle. When the last handle to a value is dropped,
// the value is removed from its list and released.
//
// Drop is idempotent. A dropped handle must not be used.
func (h *Handle[T]) Drop() {
	if h == nil || h.n == nil {
		return
	}

	n := h.n
	h.forget()

	n.refs--
	if n.refs == 0 {
		n.release()
	}
}

// TryUnwrap takes the value out if h is its only handle, releasing h.
//
// The value is detached from its list even when TryUnwrap fails.
// In that case h remains valid but is no longer visible to UpgradeAll.
func (h *Handle[T]) TryUnwrap() (value T, ok bool) {
	n := h.mustNode()
	n.unlink()

	if n.refs != 1 {
		log.Debug("weaklist: %T is shared by %d handles, detached without unwrapping", n.value, n.refs)
		return value, false
	}

	h.forget()
	value = n.take()
	n.cfg.metrics.nodeFreed(unwrapped)

	return value, true
}

// Unwrap is like TryUnwrap but reports failure with an error wrapping ErrShared.
func (h *Handle[T]) Unwrap() (T, error) {
	refs := h.mustNode().refs
	if v, ok := h.TryUnwrap(); ok {
		return v, nil
	}

	var zero T
	return zero, errors.Wrapf(ErrShared, "weaklist: %d handles", refs)
}
