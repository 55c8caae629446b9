package weaklist

import "errors"

var (
	// ErrReleased indicates a handle was used after Drop or a successful unwrap.
	ErrReleased = errors.New("handle already released")

	// ErrShared indicates a value could not be unwrapped because other handles exist.
	ErrShared = errors.New("value is shared")

	// ErrClosed indicates the list was closed.
	ErrClosed = errors.New("list is closed")
)
