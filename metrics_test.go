package gamewatch

import (
	"sync"
	"testing"
	"time"
)

func TestMetricsDisabledNoIncrement(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: false})
	m.Inc(MetricLoginSuccess)

	if got := m.Value(MetricLoginSuccess); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestMetricsEnabledIncrement(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})
	m.Inc(MetricLoginSuccess)
	m.Inc(MetricLoginSuccess)
	m.Inc(MetricLoginSuccess)

	if got := m.Value(MetricLoginSuccess); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
}

func TestMetricsNilIsSafe(t *testing.T) {
	var m *Metrics
	m.Inc(MetricLogout)
	m.Observe(MetricAPILatency, time.Second)
	if m.Value(MetricLogout) != 0 || m.Enabled() {
		t.Fatalf("nil metrics must be inert")
	}
	if snap := m.Snapshot(); len(snap.Counters) != 0 {
		t.Fatalf("expected empty snapshot, got %v", snap.Counters)
	}
}

func TestMetricsConcurrentIncrementSafe(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})

	const goroutines = 32
	const perG = 4000

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < perG; j++ {
				m.Inc(MetricAPIRequest)
			}
		}()
	}
	wg.Wait()

	want := uint64(goroutines * perG)
	if got := m.Value(MetricAPIRequest); got != want {
		t.Fatalf("expected %d, got %d", want, got)
	}
}

func TestMetricsHistogramBucketCorrectness(t *testing.T) {
	m := NewMetrics(MetricsConfig{
		Enabled:                 true,
		EnableLatencyHistograms: true,
	})

	observations := []time.Duration{
		10 * time.Millisecond,
		50 * time.Millisecond,
		100 * time.Millisecond,
		250 * time.Millisecond,
		500 * time.Millisecond,
		time.Second,
		2500 * time.Millisecond,
		5 * time.Second,
	}

	for _, d := range observations {
		m.Observe(MetricAPILatency, d)
	}

	snap := m.Snapshot()
	buckets := snap.Histograms[MetricAPILatency]
	if len(buckets) != 8 {
		t.Fatalf("expected 8 buckets, got %d", len(buckets))
	}

	for i, v := range buckets {
		if v != 1 {
			t.Fatalf("bucket %d expected 1, got %d", i, v)
		}
	}
}

func TestMetricsObserveIgnoresCounters(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true, EnableLatencyHistograms: true})
	m.Observe(MetricLoginSuccess, time.Millisecond)

	snap := m.Snapshot()
	if _, ok := snap.Histograms[MetricLoginSuccess]; ok {
		t.Fatalf("counter metric must not get a histogram")
	}
	for i, v := range snap.Histograms[MetricAPILatency] {
		if v != 0 {
			t.Fatalf("bucket %d expected 0, got %d", i, v)
		}
	}
}

func TestMetricsSnapshotConsistency(t *testing.T) {
	m := NewMetrics(MetricsConfig{
		Enabled:                 true,
		EnableLatencyHistograms: true,
	})
	m.Inc(MetricLoginSuccess)
	m.Inc(MetricLoginFailure)
	m.Inc(MetricLoginFailure)
	m.Observe(MetricAPILatency, 2*time.Millisecond)

	snap := m.Snapshot()

	if snap.Counters[MetricLoginSuccess] != 1 {
		t.Fatalf("expected MetricLoginSuccess=1 got %d", snap.Counters[MetricLoginSuccess])
	}
	if snap.Counters[MetricLoginFailure] != 2 {
		t.Fatalf("expected MetricLoginFailure=2 got %d", snap.Counters[MetricLoginFailure])
	}
	if _, ok := snap.Counters[MetricAPILatency]; ok {
		t.Fatalf("latency must only appear as a histogram")
	}
	if snap.Histograms[MetricAPILatency][0] != 1 {
		t.Fatalf("expected first histogram bucket=1 got %d", snap.Histograms[MetricAPILatency][0])
	}
}

func TestMetricsLatencyDisabledOmitsHistogram(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})
	m.Observe(MetricAPILatency, time.Millisecond)

	if _, ok := m.Snapshot().Histograms[MetricAPILatency]; ok {
		t.Fatalf("histogram present with latency disabled")
	}
}
