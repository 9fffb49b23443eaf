// Package otel exposes gamewatch client metrics through an OpenTelemetry Meter.
//
// Counters become Int64ObservableCounter instruments and each cumulative latency bucket
// becomes an Int64ObservableGauge. The caller owns the MeterProvider.
package otel
