package gamewatch

import (
	"sync/atomic"
	"time"
)

// MetricID identifies one client counter.
type MetricID uint16

const (
	// MetricLoginSuccess counts logins that produced a session.
	MetricLoginSuccess MetricID = iota
	// MetricLoginFailure counts rejected or failed login calls.
	MetricLoginFailure
	// MetricRegisterSuccess counts accounts created.
	MetricRegisterSuccess
	// MetricRegisterFailure counts rejected or failed registrations.
	MetricRegisterFailure
	// MetricLogout counts explicit logouts that cleared a session.
	MetricLogout
	// MetricSessionRestored counts sessions adopted from the slot at startup.
	MetricSessionRestored
	// MetricSessionUpdated counts in-place session patches.
	MetricSessionUpdated
	// MetricSessionInvalidated counts sessions dropped because the API rejected the token.
	MetricSessionInvalidated
	// MetricGuardAllowed counts navigations the guard let through.
	MetricGuardAllowed
	// MetricGuardRedirected counts navigations the guard redirected.
	MetricGuardRedirected
	// MetricAPIRequest counts API calls, successful or not.
	MetricAPIRequest
	// MetricAPIFailure counts API calls that failed in transport or returned non-2xx.
	MetricAPIFailure
	// MetricAPILatency is the API round-trip latency histogram.
	MetricAPILatency
	metricIDCount
)

const (
	histBucketCount = 8
	cacheLineSize   = 64
)

type metricHistogram struct {
	buckets [histBucketCount]uint64
}

type paddedCounter struct {
	value uint64
	_     [cacheLineSize - 8]byte
}

// Metrics holds lock-free counters and the API latency histogram. A nil or disabled
// Metrics ignores every update.
type Metrics struct {
	enabled       bool
	enableLatency bool
	counters      [metricIDCount]paddedCounter
	histograms    [metricIDCount]metricHistogram
}

// MetricsSnapshot is a point-in-time copy of all counters and histograms.
type MetricsSnapshot struct {
	Counters   map[MetricID]uint64
	Histograms map[MetricID][]uint64
}

func NewMetrics(cfg MetricsConfig) *Metrics {
	return &Metrics{
		enabled:       cfg.Enabled,
		enableLatency: cfg.Enabled && cfg.EnableLatencyHistograms,
	}
}

func (m *Metrics) Enabled() bool {
	return m != nil && m.enabled
}

func (m *Metrics) LatencyEnabled() bool {
	return m != nil && m.enableLatency
}

func (m *Metrics) Inc(id MetricID) {
	if m == nil || !m.enabled || id >= metricIDCount {
		return
	}
	atomic.AddUint64(&m.counters[id].value, 1)
}

// Observe records d in the histogram of id. Only MetricAPILatency has one.
func (m *Metrics) Observe(id MetricID, d time.Duration) {
	if m == nil || !m.enabled || !m.enableLatency || id >= metricIDCount {
		return
	}
	if id != MetricAPILatency {
		return
	}

	b := bucketIndex(d)
	atomic.AddUint64(&m.histograms[id].buckets[b], 1)
}

func (m *Metrics) Value(id MetricID) uint64 {
	if m == nil || id >= metricIDCount {
		return 0
	}
	return atomic.LoadUint64(&m.counters[id].value)
}

func (m *Metrics) Snapshot() MetricsSnapshot {
	if m == nil || !m.enabled {
		return MetricsSnapshot{
			Counters:   map[MetricID]uint64{},
			Histograms: map[MetricID][]uint64{},
		}
	}

	s := MetricsSnapshot{
		Counters:   make(map[MetricID]uint64, int(metricIDCount)),
		Histograms: make(map[MetricID][]uint64, 1),
	}

	for id := MetricID(0); id < metricIDCount; id++ {
		if id == MetricAPILatency {
			continue
		}
		s.Counters[id] = atomic.LoadUint64(&m.counters[id].value)
	}

	if m.enableLatency {
		buckets := make([]uint64, histBucketCount)
		for i := 0; i < histBucketCount; i++ {
			buckets[i] = atomic.LoadUint64(&m.histograms[MetricAPILatency].buckets[i])
		}
		s.Histograms[MetricAPILatency] = buckets
	}

	return s
}

// Bucket upper bounds: 25ms 50ms 100ms 250ms 500ms 1s 2.5s +Inf.
func bucketIndex(d time.Duration) int {
	ms := d.Milliseconds()

	switch {
	case ms <= 25:
		return 0
	case ms <= 50:
		return 1
	case ms <= 100:
		return 2
	case ms <= 250:
		return 3
	case ms <= 500:
		return 4
	case ms <= 1000:
		return 5
	case ms <= 2500:
		return 6
	default:
		return 7
	}
}
