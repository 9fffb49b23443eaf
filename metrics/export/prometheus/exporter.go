package prometheus

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/MrEthical07/gamewatch"
	"github.com/MrEthical07/gamewatch/metrics/export/internaldefs"
)

// Source is what the exporter reads on every render. *gamewatch.App implements it.
type Source interface {
	MetricsSnapshot() gamewatch.MetricsSnapshot
	AuditDropped() uint64
}

const contentType = "text/plain; version=0.0.4; charset=utf-8"

// Exporter renders client metrics in the Prometheus text exposition format.
type Exporter struct {
	source Source
}

func New(app *gamewatch.App) *Exporter {
	return &Exporter{source: app}
}

func NewFromSource(source Source) *Exporter {
	return &Exporter{source: source}
}

// Handler serves Render over HTTP.
func (e *Exporter) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", contentType)
		_, _ = io.WriteString(w, e.Render())
	})
}

// WriteTo writes the current exposition to w.
func (e *Exporter) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, e.Render())
	return int64(n), err
}

// Render returns the exposition text, or "" when metrics are disabled and nothing was
// dropped.
func (e *Exporter) Render() string {
	if e == nil || e.source == nil {
		return ""
	}

	snapshot := e.source.MetricsSnapshot()
	dropped := e.source.AuditDropped()
	if len(snapshot.Counters) == 0 && len(snapshot.Histograms) == 0 && dropped == 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(4096)

	for _, def := range internaldefs.CounterDefs {
		writeCounter(&b, def.Name, def.Help, snapshot.Counters[def.ID])
	}

	for _, def := range internaldefs.HistogramDefs {
		raw, ok := snapshot.Histograms[def.ID]
		if !ok {
			continue
		}
		cumulative := internaldefs.CumulativeBuckets(internaldefs.NormalizeBuckets(raw))
		writeHistogram(&b, def.Name, def.Help, cumulative)
	}

	writeCounter(&b, "gamewatch_audit_dropped_total", "Audit events dropped because the buffer was full.", dropped)

	return b.String()
}

func writeHeader(b *strings.Builder, name, help, kind string) {
	b.WriteString("# HELP ")
	b.WriteString(name)
	b.WriteByte(' ')
	b.WriteString(escapeHelp(help))
	b.WriteString("\n# TYPE ")
	b.WriteString(name)
	b.WriteByte(' ')
	b.WriteString(kind)
	b.WriteByte('\n')
}

func writeCounter(b *strings.Builder, name, help string, value uint64) {
	writeHeader(b, name, help, "counter")
	b.WriteString(name)
	b.WriteByte(' ')
	b.WriteString(strconv.FormatUint(value, 10))
	b.WriteByte('\n')
}

func writeHistogram(b *strings.Builder, name, help string, cumulative [8]uint64) {
	writeHeader(b, name, help, "histogram")

	for i, le := range internaldefs.HistogramBounds {
		b.WriteString(name)
		b.WriteString(`_bucket{le="`)
		b.WriteString(le)
		b.WriteString(`"} `)
		b.WriteString(strconv.FormatUint(cumulative[i], 10))
		b.WriteByte('\n')
	}

	b.WriteString(name)
	b.WriteString("_count ")
	b.WriteString(strconv.FormatUint(cumulative[len(cumulative)-1], 10))
	b.WriteByte('\n')

	// The core histogram keeps bucket counts only.
	b.WriteString(name)
	b.WriteString("_sum 0\n")
}

func escapeHelp(help string) string {
	help = strings.ReplaceAll(help, `\`, `\\`)
	return strings.ReplaceAll(help, "\n", `\n`)
}
