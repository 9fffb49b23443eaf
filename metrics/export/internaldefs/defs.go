package internaldefs

import (
	"github.com/MrEthical07/gamewatch"
)

// CounterDef names one counter for every exporter.
type CounterDef struct {
	ID   gamewatch.MetricID
	Name string
	Help string
}

// HistogramDef names one histogram for every exporter.
type HistogramDef struct {
	ID   gamewatch.MetricID
	Name string
	Help string
}

var CounterDefs = []CounterDef{
	{ID: gamewatch.MetricLoginSuccess, Name: "gamewatch_login_success_total", Help: "Logins that produced a session."},
	{ID: gamewatch.MetricLoginFailure, Name: "gamewatch_login_failure_total", Help: "Rejected or failed login calls."},
	{ID: gamewatch.MetricRegisterSuccess, Name: "gamewatch_register_success_total", Help: "Accounts created."},
	{ID: gamewatch.MetricRegisterFailure, Name: "gamewatch_register_failure_total", Help: "Rejected or failed registrations."},
	{ID: gamewatch.MetricLogout, Name: "gamewatch_logout_total", Help: "Logouts that cleared a session."},
	{ID: gamewatch.MetricSessionRestored, Name: "gamewatch_session_restored_total", Help: "Sessions restored from storage."},
	{ID: gamewatch.MetricSessionUpdated, Name: "gamewatch_session_updated_total", Help: "In-place session updates."},
	{ID: gamewatch.MetricSessionInvalidated, Name: "gamewatch_session_invalidated_total", Help: "Sessions dropped after the API rejected the token."},
	{ID: gamewatch.MetricGuardAllowed, Name: "gamewatch_guard_allowed_total", Help: "Navigations allowed by the route guard."},
	{ID: gamewatch.MetricGuardRedirected, Name: "gamewatch_guard_redirected_total", Help: "Navigations redirected by the route guard."},
	{ID: gamewatch.MetricAPIRequest, Name: "gamewatch_api_requests_total", Help: "API calls attempted."},
	{ID: gamewatch.MetricAPIFailure, Name: "gamewatch_api_failures_total", Help: "API calls that failed or returned non-2xx."},
}

var HistogramDefs = []HistogramDef{
	{ID: gamewatch.MetricAPILatency, Name: "gamewatch_api_latency_seconds", Help: "API round-trip latency."},
}

// HistogramBounds are the upper bounds in seconds, matching the core buckets.
var HistogramBounds = []string{
	"0.025",
	"0.05",
	"0.1",
	"0.25",
	"0.5",
	"1",
	"2.5",
	"+Inf",
}

// HistogramBoundSuffix turns each bound into a metric-name-safe suffix.
var HistogramBoundSuffix = []string{
	"0_025",
	"0_05",
	"0_1",
	"0_25",
	"0_5",
	"1",
	"2_5",
	"inf",
}

// NormalizeBuckets copies raw into a fixed array, zero-filling missing buckets.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
