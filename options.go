package weaklist

// Option is a list configuration option.
type Option[T any] interface {
	apply(*config[T])
}

// config is shared by a list and all of its nodes.
// Nodes keep it after the list itself is gone.
type config[T any] struct {
	dropFunc      func(T)
	metrics       *Metrics
	leakDetection bool
}

func newDefaultConfig[T any]() *config[T] {
	return &config[T]{}
}

// WithDropFunc option configures a function that is called with the value
// when the last handle to it is dropped.
//
// It is not called for values taken out with TryUnwrap or Unwrap.
func WithDropFunc[T any](f func(value T)) Option[T] {
	if f == nil {
		panic("weaklist: nil drop func")
	}

	return funcOption[T](func(c *config[T]) {
		c.dropFunc = f
	})
}

// WithMetrics option configures the list to record statistics in m.
// A single Metrics may be shared by several lists.
//
// The zero value disables metrics.
func WithMetrics[T any](m *Metrics) Option[T] {
	return funcOption[T](func(c *config[T]) {
		c.metrics = m
	})
}

// WithLeakDetection option configures the list to report handles which are
// garbage collected without being dropped. Leaks are counted in Metrics and
// logged as warnings.
//
// A leaked handle keeps its value in the list forever.
func WithLeakDetection[T any]() Option[T] {
	return funcOption[T](func(c *config[T]) {
		c.leakDetection = true
	})
}

type funcOption[T any] func(*config[T])

func (o funcOption[T]) apply(c *config[T]) {
	o(c)
}
