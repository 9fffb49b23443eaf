package otel

import (
	"context"
	"errors"
	"fmt"

	"github.com/MrEthical07/gamewatch"
	"github.com/MrEthical07/gamewatch/metrics/export/internaldefs"
	"go.opentelemetry.io/otel/metric"
)

var (
	ErrNilMeter  = errors.New("nil meter")
	ErrNilSource = errors.New("nil metrics source")
)

// Source is read once per collection cycle. *gamewatch.App implements it.
type Source interface {
	MetricsSnapshot() gamewatch.MetricsSnapshot
	AuditDropped() uint64
}

type observedCounter struct {
	id         gamewatch.MetricID
	instrument metric.Int64ObservableCounter
}

type observedHistogram struct {
	id      gamewatch.MetricID
	buckets [8]metric.Int64ObservableGauge
	count   metric.Int64ObservableGauge
}

// Exporter publishes client metrics as observable OpenTelemetry instruments.
type Exporter struct {
	source       Source
	registration metric.Registration
	counters     []observedCounter
	histograms   []observedHistogram
	auditDropped metric.Int64ObservableCounter
}

func New(meter metric.Meter, app *gamewatch.App) (*Exporter, error) {
	if app == nil {
		return nil, ErrNilSource
	}
	return NewFromSource(meter, app)
}

// NewFromSource creates one observable counter per client counter and one gauge per
// cumulative latency bucket, all fed by a single callback.
func NewFromSource(meter metric.Meter, source Source) (*Exporter, error) {
	if meter == nil {
		return nil, ErrNilMeter
	}
	if source == nil {
		return nil, ErrNilSource
	}

	e := &Exporter{
		source:     source,
		counters:   make([]observedCounter, 0, len(internaldefs.CounterDefs)),
		histograms: make([]observedHistogram, 0, len(internaldefs.HistogramDefs)),
	}

	observables := make([]metric.Observable, 0, len(internaldefs.CounterDefs)+len(internaldefs.HistogramDefs)*9+1)

	for _, def := range internaldefs.CounterDefs {
		ins, err := meter.Int64ObservableCounter(def.Name, metric.WithDescription(def.Help))
		if err != nil {
			return nil, fmt.Errorf("create observable counter %s: %w", def.Name, err)
		}
		e.counters = append(e.counters, observedCounter{id: def.ID, instrument: ins})
		observables = append(observables, ins)
	}

	for _, def := range internaldefs.HistogramDefs {
		h := observedHistogram{id: def.ID}
		for i, suffix := range internaldefs.HistogramBoundSuffix {
			name := def.Name + "_bucket_le_" + suffix
			ins, err := meter.Int64ObservableGauge(name, metric.WithDescription("Cumulative latency bucket count."))
			if err != nil {
				return nil, fmt.Errorf("create bucket gauge %s: %w", name, err)
			}
			h.buckets[i] = ins
			observables = append(observables, ins)
		}
		countIns, err := meter.Int64ObservableGauge(def.Name+"_count", metric.WithDescription("Latency sample count."))
		if err != nil {
			return nil, fmt.Errorf("create count gauge %s_count: %w", def.Name, err)
		}
		h.count = countIns
		observables = append(observables, countIns)
		e.histograms = append(e.histograms, h)
	}

	auditDropped, err := meter.Int64ObservableCounter(
		"gamewatch_audit_dropped_total",
		metric.WithDescription("Audit events dropped because the buffer was full."),
	)
	if err != nil {
		return nil, fmt.Errorf("create audit dropped counter: %w", err)
	}
	e.auditDropped = auditDropped
	observables = append(observables, auditDropped)

	registration, err := meter.RegisterCallback(e.observe, observables...)
	if err != nil {
		return nil, fmt.Errorf("register callback: %w", err)
	}
	e.registration = registration
	return e, nil
}

func (e *Exporter) observe(_ context.Context, o metric.Observer) error {
	snapshot := e.source.MetricsSnapshot()
	for _, c := range e.counters {
		o.ObserveInt64(c.instrument, int64(snapshot.Counters[c.id]))
	}
	for _, h := range e.histograms {
		raw, ok := snapshot.Histograms[h.id]
		if !ok {
			continue
		}
		cumulative := internaldefs.CumulativeBuckets(internaldefs.NormalizeBuckets(raw))
		for i := range cumulative {
			o.ObserveInt64(h.buckets[i], int64(cumulative[i]))
		}
		o.ObserveInt64(h.count, int64(cumulative[len(cumulative)-1]))
	}
	o.ObserveInt64(e.auditDropped, int64(e.source.AuditDropped()))
	return nil
}

// Close unregisters the callback. The instruments stay with the meter.
func (e *Exporter) Close() error {
	if e == nil || e.registration == nil {
		return nil
	}
	return e.registration.Unregister()
}
