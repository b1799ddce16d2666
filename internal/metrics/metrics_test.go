package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.AddRecords("Territory", 10)
	m.AddRecords("Territory", 2)
	m.IncrementName("Territory", false)
	m.IncrementName("Territory", true)
	m.IncrementName("Territory", true)
	m.AddSharingRules("Account", 3, 2)
	m.IncrementPlaceholder(true)
	m.IncrementPlaceholder(false)
	m.ObserveStage("analyze", 20*time.Millisecond)

	assert.InDelta(t, 12.0, testutil.ToFloat64(m.RecordsParsed.WithLabelValues("Territory")), 0)
	assert.InDelta(t, 2.0, testutil.ToFloat64(m.NamesAssigned.WithLabelValues("Territory", "true")), 0)
	assert.InDelta(t, 3.0, testutil.ToFloat64(m.SharingRules.WithLabelValues("Account", "kept")), 0)
	assert.InDelta(t, 2.0, testutil.ToFloat64(m.SharingRules.WithLabelValues("Account", "discarded")), 0)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.Placeholders.WithLabelValues("resolved")), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(m.StageLatency))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.AddRecords("Territory", 1)
		m.IncrementName("Territory", true)
		m.AddSharingRules("Account", 1, 1)
		m.IncrementPlaceholder(true)
		m.ObserveStage("analyze", time.Second)
	})
}

func TestWriteTextfile(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.AddRecords("UserTerritory", 4)

	path := filepath.Join(t.TempDir(), "run.prom")
	require.NoError(t, WriteTextfile(reg, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `tm_migrator_records_parsed_total{kind="UserTerritory"} 4`))
}
