// Package metrics provides Prometheus metrics for the daygrid pipeline.
//
// The pipeline is a batch tool, so nothing scrapes these at runtime; the
// collectors feed the default registry, and the app logs the final counts
// at the end of a run.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "daygrid"

var (
	recordsRead = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_read_total",
		Help:      "Raw observations read per source domain.",
	}, []string{"domain"})

	recordsSkipped = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_skipped_total",
		Help:      "Raw observations dropped before normalization per domain.",
	}, []string{"domain"})

	rowsEmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rows_emitted_total",
		Help:      "Canonical per-day rows emitted per output table.",
	}, []string{"table"})

	tablesWritten = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tables_written_total",
		Help:      "Canonical TSV files written.",
	})

	runDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "run_duration_seconds",
		Help:      "Wall time of a full pipeline run.",
		Buckets:   prometheus.DefBuckets,
	})
)

// RecordsRead counts raw observations read for a domain.
func RecordsRead(domain string, n int) {
	recordsRead.WithLabelValues(domain).Add(float64(n))
}

// RecordsSkipped counts raw observations dropped for a domain.
func RecordsSkipped(domain string, n int) {
	recordsSkipped.WithLabelValues(domain).Add(float64(n))
}

// RowsEmitted counts canonical rows emitted for an output table.
func RowsEmitted(table string, n int) {
	rowsEmitted.WithLabelValues(table).Add(float64(n))
}

// TableWritten counts one written TSV file.
func TableWritten() {
	tablesWritten.Inc()
}

// ObserveRunDuration records the wall time of a pipeline run.
func ObserveRunDuration(d time.Duration) {
	runDuration.Observe(d.Seconds())
}
