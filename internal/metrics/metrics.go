// Package metrics exposes Prometheus instrumentation for the detection pipeline.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all collectors, registered on an isolated registry.
type Metrics struct {
	registry *prometheus.Registry

	FramesProcessed prometheus.Counter
	Transitions     *prometheus.CounterVec
	Emergencies     prometheus.Counter

	EAR             prometheus.Gauge
	MAR             prometheus.Gauge
	InactiveSeconds prometheus.Gauge

	FrameLatency     prometheus.Histogram
	InferenceLatency prometheus.Histogram
}

// New creates and registers all pipeline metrics.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		FramesProcessed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "studywatch",
			Name:      "frames_processed_total",
			Help:      "Number of webcam frames run through the pipeline.",
		}),
		Transitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "studywatch",
			Name:      "status_transitions_total",
			Help:      "Status transitions by resulting status.",
		}, []string{"status"}),
		Emergencies: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "studywatch",
			Name:      "emergencies_total",
			Help:      "Emergency alerts triggered.",
		}),
		EAR: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "studywatch",
			Name:      "eye_aspect_ratio",
			Help:      "Smoothed eye aspect ratio of the last frame.",
		}),
		MAR: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "studywatch",
			Name:      "mouth_aspect_ratio",
			Help:      "Smoothed mouth aspect ratio of the last frame.",
		}),
		InactiveSeconds: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "studywatch",
			Name:      "inactive_seconds",
			Help:      "Seconds spent in the current inactive window, 0 while active.",
		}),
		FrameLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "studywatch",
			Name:      "frame_latency_seconds",
			Help:      "End-to-end per-frame processing time.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		}),
		InferenceLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "studywatch",
			Name:      "inference_latency_seconds",
			Help:      "Landmark inference round-trip time.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		}),
	}
}

// Handler returns an HTTP handler serving the registry for scraping.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
