package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lacquerai/datagen/internal/dataset"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveGeneration(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewWithRegistry(registry, registry)

	m.ObserveGeneration(dataset.Stats{Records: 10, MapEntries: 100, Collisions: 2})
	m.ObserveGeneration(dataset.Stats{Records: 5, MapEntries: 50, Collisions: 0})

	assert.Equal(t, 15.0, testutil.ToFloat64(m.recordsGenerated))
	assert.Equal(t, 150.0, testutil.ToFloat64(m.mapEntriesGenerated))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.mapKeyCollisions))
}

func TestMetrics_ObserveWrite(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewWithRegistry(registry, registry)

	at := time.Unix(1700000000, 0)
	m.ObserveWrite("json", 4096, 2*time.Second, at)

	assert.Equal(t, 4096.0, testutil.ToFloat64(m.outputBytes.WithLabelValues("json")))
	assert.Equal(t, 1700000000.0, testutil.ToFloat64(m.lastSuccess))
	assert.Equal(t, 1, testutil.CollectAndCount(m.generationDuration))
}

func TestMetrics_Registration(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewWithRegistry(registry, registry)
	m.ObserveWrite("yaml", 1, time.Millisecond, time.Now())

	families, err := registry.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}

	assert.Contains(t, names, "datagen_records_generated_total")
	assert.Contains(t, names, "datagen_map_key_collisions_total")
	assert.Contains(t, names, "datagen_output_bytes")
	assert.Contains(t, names, "datagen_run_duration_seconds")
}

func TestMetrics_DuplicateRegistrationPanics(t *testing.T) {
	registry := prometheus.NewRegistry()
	NewWithRegistry(registry, registry)

	assert.Panics(t, func() {
		NewWithRegistry(registry, registry)
	})
}

func TestMetrics_WriteTextfile(t *testing.T) {
	m := New()
	m.ObserveGeneration(dataset.Stats{Records: 3, MapEntries: 30, Collisions: 1})
	m.ObserveWrite("json", 512, time.Second, time.Now())

	path := filepath.Join(t.TempDir(), "datagen.prom")
	require.NoError(t, m.WriteTextfile(path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	out := string(b)
	assert.Contains(t, out, "datagen_records_generated_total 3")
	assert.Contains(t, out, "datagen_map_key_collisions_total 1")
	assert.Contains(t, out, `datagen_output_bytes{format="json"} 512`)
}

func TestMetrics_WriteTextfileWithoutGatherer(t *testing.T) {
	m := NewWithRegistry(nil, nil)

	err := m.WriteTextfile(filepath.Join(t.TempDir(), "x.prom"))
	assert.Error(t, err)
}
