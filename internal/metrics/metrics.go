package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tm_migrator"

// Metrics provides observability for a migration run.
type Metrics struct {
	// Rows decoded from extracts, by record kind
	RecordsParsed *prometheus.CounterVec

	// DeveloperNames handed out, by kind and whether a suffix was needed
	NamesAssigned *prometheus.CounterVec

	// Sharing rules seen in metadata, by object and kept/discarded
	SharingRules *prometheus.CounterVec

	// Placeholder tokens looked up during association building
	Placeholders *prometheus.CounterVec

	// Duration of each workflow stage
	StageLatency *prometheus.HistogramVec
}

// New registers the run metrics with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RecordsParsed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_parsed_total",
			Help:      "Rows decoded from extract files by record kind",
		}, []string{"kind"}),

		NamesAssigned: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "developer_names_assigned_total",
			Help:      "DeveloperNames assigned by kind and collision outcome",
		}, []string{"kind", "renamed"}), // renamed: "true", "false"

		SharingRules: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sharing_rules_total",
			Help:      "Sharing rules read from metadata by object and outcome",
		}, []string{"object", "outcome"}), // outcome: "kept", "discarded"

		Placeholders: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "placeholders_total",
			Help:      "Placeholder lookups during association building by outcome",
		}, []string{"outcome"}), // outcome: "resolved", "passthrough"

		StageLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Duration of workflow stages",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 15, 60},
		}, []string{"stage"}),
	}
}

// AddRecords records n rows of kind parsed.
func (m *Metrics) AddRecords(kind string, n int) {
	if m != nil {
		m.RecordsParsed.WithLabelValues(kind).Add(float64(n))
	}
}

// IncrementName records one DeveloperName assignment.
func (m *Metrics) IncrementName(kind string, renamed bool) {
	if m != nil {
		m.NamesAssigned.WithLabelValues(kind, fmt.Sprint(renamed)).Inc()
	}
}

// AddSharingRules records the kept and discarded rule counts of one object.
func (m *Metrics) AddSharingRules(object string, kept, discarded int) {
	if m != nil {
		m.SharingRules.WithLabelValues(object, "kept").Add(float64(kept))
		m.SharingRules.WithLabelValues(object, "discarded").Add(float64(discarded))
	}
}

// IncrementPlaceholder records one placeholder lookup.
func (m *Metrics) IncrementPlaceholder(resolved bool) {
	if m != nil {
		outcome := "passthrough"
		if resolved {
			outcome = "resolved"
		}

		m.Placeholders.WithLabelValues(outcome).Inc()
	}
}

// ObserveStage records how long a workflow stage took.
func (m *Metrics) ObserveStage(stage string, d time.Duration) {
	if m != nil {
		m.StageLatency.WithLabelValues(stage).Observe(d.Seconds())
	}
}

// WriteTextfile writes everything g gathers to path in the node-exporter
// textfile format.
func WriteTextfile(g prometheus.Gatherer, path string) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("metrics: write %q: %w", path, err)
	}

	return nil
}
