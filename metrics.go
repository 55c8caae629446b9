package weaklist

import (
	"bytes"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/puzpuzpuz/xsync/v2"
	"go.uber.org/atomic"
)

type metricType int

const (
	pushed metricType = iota
	cloned
	upgraded
	detached
	freed
	unwrapped
	leaked
	// doNotUse must stay last.
	doNotUse
)

func (t metricType) String() string {
	switch t {
	case pushed:
		return "pushed"
	case cloned:
		return "cloned"
	case upgraded:
		return "upgraded"
	case detached:
		return "detached"
	case freed:
		return "freed"
	case unwrapped:
		return "unwrapped"
	case leaked:
		return "leaked"
	default:
		return "unidentified"
	}
}

// Metrics records statistics for one or more lists.
//
// Lists themselves are single-threaded but Metrics may be read from any goroutine.
// All methods are safe to call on a nil Metrics.
type Metrics struct {
	all    [doNotUse]*xsync.Counter
	live   atomic.Int64
	linked atomic.Int64
}

// NewMetrics creates zeroed metrics.
func NewMetrics() *Metrics {
	m := &Metrics{}
	for i := range m.all {
		m.all[i] = xsync.NewCounter()
	}
	return m
}

func (m *Metrics) add(t metricType, delta int) {
	if m == nil || delta == 0 {
		return
	}
	m.all[t].Add(int64(delta))
}

func (m *Metrics) get(t metricType) int64 {
	if m == nil {
		return 0
	}
	return m.all[t].Value()
}

func (m *Metrics) nodeLinked() {
	if m == nil {
		return
	}
	m.live.Inc()
	m.linked.Inc()
}

func (m *Metrics) nodeUnlinked() {
	if m == nil {
		return
	}
	m.linked.Dec()
	m.all[detached].Inc()
}

func (m *Metrics) nodeFreed(t metricType) {
	if m == nil {
		return
	}
	m.live.Dec()
	m.all[t].Inc()
}

// Pushed is the number of values pushed.
func (m *Metrics) Pushed() int64 {
	return m.get(pushed)
}

// Cloned is the number of handles created by Clone.
func (m *Metrics) Cloned() int64 {
	return m.get(cloned)
}

// Upgraded is the number of handles created by UpgradeAll and TakeAll.
func (m *Metrics) Upgraded() int64 {
	return m.get(upgraded)
}

// Detached is the number of entries removed from a list, for any reason.
func (m *Metrics) Detached() int64 {
	return m.get(detached)
}

// Freed is the number of values released after their last handle was dropped.
func (m *Metrics) Freed() int64 {
	return m.get(freed)
}

// Unwrapped is the number of values taken out of their last handle.
func (m *Metrics) Unwrapped() int64 {
	return m.get(unwrapped)
}

// Leaked is the number of handles garbage collected without being dropped.
// It is only recorded for lists created WithLeakDetection.
func (m *Metrics) Leaked() int64 {
	return m.get(leaked)
}

// Live is the number of values currently owned by at least one handle.
func (m *Metrics) Live() int64 {
	if m == nil {
		return 0
	}
	return m.live.Load()
}

// Linked is the number of entries currently in a list.
func (m *Metrics) Linked() int64 {
	if m == nil {
		return 0
	}
	return m.linked.Load()
}

// Clear resets the counters. Gauges (Live, Linked) are kept.
func (m *Metrics) Clear() {
	if m == nil {
		return
	}
	for _, c := range m.all {
		c.Reset()
	}
}

// String returns a string representation of the metrics.
func (m *Metrics) String() string {
	if m == nil {
		return ""
	}
	var buf bytes.Buffer
	for i := metricType(0); i < doNotUse; i++ {
		fmt.Fprintf(&buf, "%s: %s ", i, humanize.Comma(m.get(i)))
	}
	fmt.Fprintf(&buf, "live: %s ", humanize.Comma(m.Live()))
	fmt.Fprintf(&buf, "linked: %s", humanize.Comma(m.Linked()))
	return buf.String()
}
