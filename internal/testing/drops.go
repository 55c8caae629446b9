package testing

// DropRecorder records values in the order they are released.
type DropRecorder[T any] struct {
	dropped []T
}

// Record appends a released value. It is meant to be passed to weaklist.WithDropFunc.
func (r *DropRecorder[T]) Record(value T) {
	r.dropped = append(r.dropped, value)
}

// Take returns the values released since the last call and resets the recorder.
// It never returns nil.
func (r *DropRecorder[T]) Take() []T {
	dropped := r.dropped
	r.dropped = nil
	if dropped == nil {
		return []T{}
	}
	return dropped
}

// Values returns the values released since the last Take.
func (r *DropRecorder[T]) Values() []T {
	return append([]T{}, r.dropped...)
}
