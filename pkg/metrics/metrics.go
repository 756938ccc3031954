// Package metrics holds the prometheus collectors of the planning service.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "planning_studio"

// Metrics owns a private registry so tests can build as many as they need.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	extractions     *prometheus.CounterVec
	extractedChars  *prometheus.HistogramVec
	llmCalls        *prometheus.CounterVec
	llmDuration     *prometheus.HistogramVec
	planGenerations *prometheus.CounterVec
	planTasks       prometheus.Histogram
}

// New registers every collector on a fresh registry, together with the Go
// runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		}, []string{"method", "route"}),
		extractions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "document_extractions_total",
			Help:      "Document extractions by format and outcome (text, warning, truncated).",
		}, []string{"format", "outcome"}),
		extractedChars: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "document_extracted_chars",
			Help:      "Characters of text recovered per document.",
			Buckets:   prometheus.ExponentialBuckets(50, 4, 8),
		}, []string{"format"}),
		llmCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "llm_calls_total",
			Help:      "LLM provider calls by provider and outcome.",
		}, []string{"provider", "outcome"}),
		llmDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "llm_call_duration_seconds",
			Help:      "LLM provider call latency.",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 30, 60, 90},
		}, []string{"provider"}),
		planGenerations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "plan_generations_total",
			Help:      "Plan generation requests by outcome.",
		}, []string{"outcome"}),
		planTasks: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "plan_tasks",
			Help:      "Number of tasks per generated plan.",
			Buckets:   []float64{1, 5, 10, 15, 20, 25, 30, 40},
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests, m.httpDuration,
		m.extractions, m.extractedChars,
		m.llmCalls, m.llmDuration,
		m.planGenerations, m.planTasks,
	)
	return m
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method, route string, status int, seconds float64) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(seconds)
}

// ObserveExtraction records one extraction result.
func (m *Metrics) ObserveExtraction(format, outcome string, chars int) {
	m.extractions.WithLabelValues(format, outcome).Inc()
	m.extractedChars.WithLabelValues(format).Observe(float64(chars))
}

// ObserveLLMCall records one provider call. It satisfies llmprovider.Observer.
func (m *Metrics) ObserveLLMCall(provider, outcome string, seconds float64) {
	m.llmCalls.WithLabelValues(provider, outcome).Inc()
	m.llmDuration.WithLabelValues(provider).Observe(seconds)
}

// ObservePlan records one plan generation; tasks is ignored on failure.
func (m *Metrics) ObservePlan(outcome string, tasks int) {
	m.planGenerations.WithLabelValues(outcome).Inc()
	if outcome == "success" {
		m.planTasks.Observe(float64(tasks))
	}
}
