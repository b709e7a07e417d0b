package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	nameRequestsDesc = prometheus.NewDesc(
		"agelookup_name_requests_total",
		"Total lookup requests by normalized name",
		[]string{"name"},
		nil,
	)

	resolutions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "agelookup_resolutions_total",
		Help: "Age resolutions by source (local, remote, failed)",
	}, []string{"source"})

	predictorDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "agelookup_predictor_request_duration_seconds",
		Help:    "Latency of calls to the remote age prediction service",
		Buckets: prometheus.DefBuckets,
	}, []string{"result"})
)

// CountSource exposes the per-name request counts.
type CountSource interface {
	Snapshot() map[string]int
}

// NameCollector is a custom Prometheus collector that reads request counts
// from the tracker on each scrape.
type NameCollector struct {
	source CountSource
}

// NewNameCollector creates a collector over source.
func NewNameCollector(source CountSource) *NameCollector {
	return &NameCollector{source: source}
}

// Describe sends the metric descriptor to the channel.
func (c *NameCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- nameRequestsDesc
}

// Collect emits one counter per tracked name.
func (c *NameCollector) Collect(ch chan<- prometheus.Metric) {
	for name, count := range c.source.Snapshot() {
		ch <- prometheus.MustNewConstMetric(
			nameRequestsDesc,
			prometheus.CounterValue,
			float64(count),
			name,
		)
	}
}

var initOnce sync.Once

// Init registers the collectors with the default registry.
// Must be called once at startup; later calls are no-ops.
func Init(source CountSource) {
	initOnce.Do(func() {
		prometheus.MustRegister(NewNameCollector(source), resolutions, predictorDuration)
	})
}

// RecordResolution counts a resolution by its source.
func RecordResolution(source string) {
	resolutions.WithLabelValues(source).Inc()
}

// ObservePredictorRequest records how long a prediction call took.
func ObservePredictorRequest(d time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	predictorDuration.WithLabelValues(result).Observe(d.Seconds())
}
