// Package prometheus renders gamewatch client metrics in the Prometheus text format.
//
// Counters are named gamewatch_*_total and the API latency histogram is
// gamewatch_api_latency_seconds. Nothing is registered globally; callers mount
// [Exporter.Handler] or call [Exporter.WriteTo].
package prometheus
