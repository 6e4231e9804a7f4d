// Package metrics defines the Prometheus instruments exposed by the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles the service instruments with their registry.
type Metrics struct {
	Registry *prometheus.Registry

	// ParseTotal counts analyze requests by tagger engine and outcome.
	ParseTotal *prometheus.CounterVec

	// SentencesTotal counts sentences produced by segmentation.
	SentencesTotal prometheus.Counter

	// HTTPDuration observes request latency per route and status code.
	HTTPDuration *prometheus.HistogramVec
}

// New creates a fresh registry with all service instruments plus the
// standard Go and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)
	return &Metrics{
		Registry: reg,
		ParseTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "kotoba_parse_total",
			Help: "Analyze requests by engine and status.",
		}, []string{"engine", "status"}),
		SentencesTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "kotoba_sentences_total",
			Help: "Sentences produced by segmentation.",
		}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "kotoba_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status code.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "code"}),
	}
}
