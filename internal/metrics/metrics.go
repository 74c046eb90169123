// Package metrics exposes generation counters as Prometheus collectors.
package metrics

import (
	"fmt"
	"time"

	"github.com/lacquerai/datagen/internal/dataset"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors updated after each run.
type Metrics struct {
	recordsGenerated    prometheus.Counter
	mapEntriesGenerated prometheus.Counter
	mapKeyCollisions    prometheus.Counter
	outputBytes         *prometheus.GaugeVec
	generationDuration  prometheus.Histogram
	lastSuccess         prometheus.Gauge

	gatherer prometheus.Gatherer
}

// New registers a fresh set of collectors on a private registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	return NewWithRegistry(registry, registry)
}

// NewWithRegistry registers the collectors with registerer. gatherer is used
// by WriteTextfile and may be nil when the caller exports metrics itself.
func NewWithRegistry(registerer prometheus.Registerer, gatherer prometheus.Gatherer) *Metrics {
	m := &Metrics{
		recordsGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "datagen_records_generated_total",
			Help: "Total number of records generated",
		}),
		mapEntriesGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "datagen_map_entries_generated_total",
			Help: "Total number of map insertions performed, including collisions",
		}),
		mapKeyCollisions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "datagen_map_key_collisions_total",
			Help: "Map insertions that overwrote an existing key",
		}),
		outputBytes: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "datagen_output_bytes",
			Help: "Size of the last written dataset in bytes",
		}, []string{"format"}),
		generationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "datagen_run_duration_seconds",
			Help:    "Wall time of a complete run, generation and write included",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
		}),
		lastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "datagen_last_success_timestamp_seconds",
			Help: "Unix time of the last successful run",
		}),
		gatherer: gatherer,
	}

	if registerer != nil {
		registerer.MustRegister(m.recordsGenerated)
		registerer.MustRegister(m.mapEntriesGenerated)
		registerer.MustRegister(m.mapKeyCollisions)
		registerer.MustRegister(m.outputBytes)
		registerer.MustRegister(m.generationDuration)
		registerer.MustRegister(m.lastSuccess)
	}

	return m
}

// ObserveGeneration adds generator counters.
func (m *Metrics) ObserveGeneration(s dataset.Stats) {
	m.recordsGenerated.Add(float64(s.Records))
	m.mapEntriesGenerated.Add(float64(s.MapEntries))
	m.mapKeyCollisions.Add(float64(s.Collisions))
}

// ObserveWrite records a successful write.
func (m *Metrics) ObserveWrite(format string, bytes int64, duration time.Duration, at time.Time) {
	m.outputBytes.WithLabelValues(format).Set(float64(bytes))
	m.generationDuration.Observe(duration.Seconds())
	m.lastSuccess.Set(float64(at.Unix()))
}

// WriteTextfile writes all gathered metrics to path in the text exposition
// format read by the node_exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if m.gatherer == nil {
		return fmt.Errorf("no gatherer configured for metrics textfile %s", path)
	}

	if err := prometheus.WriteToTextfile(path, m.gatherer); err != nil {
		return fmt.Errorf("failed to write metrics textfile %s: %w", path, err)
	}

	return nil
}
