// Package metrics exposes Prometheus counters for the content pipeline.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Custom registry to avoid the default Go collectors.
var registry = prometheus.NewRegistry()

var (
	resourceFetches = promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: "studio",
		Subsystem: "content",
		Name:      "resource_fetches_total",
		Help:      "Resource retrievals by outcome (hit, fetch, error).",
	}, []string{"outcome"})

	sectionOutcomes = promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: "studio",
		Subsystem: "sections",
		Name:      "loads_total",
		Help:      "Section load lifecycles by terminal state.",
	}, []string{"section", "outcome"})
)

// CacheHit records a retrieval served from the in-memory cache.
func CacheHit() { resourceFetches.WithLabelValues("hit").Inc() }

// FetchOK records a successful upstream retrieval.
func FetchOK() { resourceFetches.WithLabelValues("fetch").Inc() }

// FetchError records a failed upstream retrieval.
func FetchError() { resourceFetches.WithLabelValues("error").Inc() }

// SectionLoaded records a section reaching the loaded state.
func SectionLoaded(section string) { sectionOutcomes.WithLabelValues(section, "loaded").Inc() }

// SectionFailed records a section reaching the error state.
func SectionFailed(section string) { sectionOutcomes.WithLabelValues(section, "error").Inc() }

// Handler serves the registry for scraping.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
