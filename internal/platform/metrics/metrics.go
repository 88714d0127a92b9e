// Package metrics holds the prometheus collectors for the results panel
package metrics

import (
	"net/http"
	"time"

	"complaints/internal/core/displaystate"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "complaints"

var (
	bannersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "panel",
			Name:      "banners_total",
			Help:      "Resolved search banners, partitioned by kind.",
		},
		[]string{"kind"},
	)

	banner = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "panel",
			Name:      "banner",
			Help:      "1 for the banner the current dataset flags put on a populated page.",
		},
		[]string{"kind"},
	)

	searchSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "panel",
			Name:      "search_seconds",
			Help:      "Search latency in seconds, partitioned by resolved kind.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"kind"},
	)
)

// Register attaches the panel collectors to reg
func Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{bannersTotal, banner, searchSeconds}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
				continue
			}
			return err
		}
	}
	return nil
}

// Handler serves the default gatherer
func Handler() http.Handler { return promhttp.Handler() }

// ObserveSearch records a resolved search and its latency
func ObserveSearch(kind displaystate.Kind, elapsed time.Duration) {
	if elapsed < 0 {
		elapsed = 0
	}
	bannersTotal.WithLabelValues(kind.String()).Inc()
	searchSeconds.WithLabelValues(kind.String()).Observe(elapsed.Seconds())
}

// SetBanner flips the banner gauge so only kind reads 1
func SetBanner(kind displaystate.Kind) {
	for _, k := range displaystate.Kinds() {
		v := 0.0
		if k == kind {
			v = 1
		}
		banner.WithLabelValues(k.String()).Set(v)
	}
}

// Recorder satisfies the search observer seam with the package collectors
type Recorder struct{}

// SearchResolved records one search outcome
func (Recorder) SearchResolved(kind displaystate.Kind, elapsed time.Duration) {
	ObserveSearch(kind, elapsed)
}
