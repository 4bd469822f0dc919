// Package metrics exposes prometheus instrumentation for insight and provider events.
package metrics

import (
	"net/http"
	"time"

	"wastewise/internal/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector handles metrics collection and reporting. A nil *Collector is
// valid and records nothing.
type Collector struct {
	registry *prometheus.Registry
	metrics  map[string]prometheus.Collector
}

// NewCollector creates a collector backed by its own registry
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	predictions := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wastewise_predictions_total",
			Help: "Waste predictions computed, by trend",
		},
		[]string{"trend"},
	)

	predictedWaste := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "wastewise_predicted_waste_grams",
			Help: "Most recent predicted waste",
		},
		[]string{"horizon"},
	)

	efficiency := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "wastewise_efficiency_percent",
			Help: "Most recent eaten/cooked efficiency",
		},
	)

	suggestions := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wastewise_suggestions_total",
			Help: "Suggestions produced, by type",
		},
		[]string{"type"},
	)

	chats := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wastewise_chat_requests_total",
			Help: "Assistant messages answered, by intent",
		},
		[]string{"intent"},
	)

	insufficient := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wastewise_insufficient_data_total",
			Help: "Analyses rejected for empty or degenerate history",
		},
		[]string{"operation"},
	)

	fallbacks := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wastewise_fallback_total",
			Help: "Provider reads answered from the built-in dataset",
		},
		[]string{"dataset"},
	)

	fetchDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wastewise_provider_fetch_seconds",
			Help:    "Time spent reading from the data provider",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"dataset"},
	)

	metrics := map[string]prometheus.Collector{
		"predictions":     predictions,
		"predicted_waste": predictedWaste,
		"efficiency":      efficiency,
		"suggestions":     suggestions,
		"chats":           chats,
		"insufficient":    insufficient,
		"fallbacks":       fallbacks,
		"fetch_duration":  fetchDuration,
	}

	for _, metric := range metrics {
		registry.MustRegister(metric)
	}

	return &Collector{
		registry: registry,
		metrics:  metrics,
	}
}

// Registry returns the underlying prometheus registry
func (mc *Collector) Registry() *prometheus.Registry {
	return mc.registry
}

// Handler serves the registry in the prometheus exposition format
func (mc *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(mc.registry, promhttp.HandlerOpts{})
}

// RecordPrediction records a computed prediction
func (mc *Collector) RecordPrediction(p models.Prediction) {
	if mc == nil {
		return
	}
	if counter, ok := mc.metrics["predictions"].(*prometheus.CounterVec); ok {
		counter.WithLabelValues(string(p.WasteTrend)).Inc()
	}
	if gauge, ok := mc.metrics["predicted_waste"].(*prometheus.GaugeVec); ok {
		gauge.WithLabelValues("tomorrow").Set(float64(p.TomorrowWaste))
		gauge.WithLabelValues("week").Set(float64(p.WeeklyWaste))
	}
	if gauge, ok := mc.metrics["efficiency"].(prometheus.Gauge); ok {
		gauge.Set(p.Efficiency)
	}
}

// RecordSuggestions counts suggestions by type
func (mc *Collector) RecordSuggestions(suggestions []models.Suggestion) {
	if mc == nil {
		return
	}
	if counter, ok := mc.metrics["suggestions"].(*prometheus.CounterVec); ok {
		for _, s := range suggestions {
			counter.WithLabelValues(string(s.Type)).Inc()
		}
	}
}

// RecordChat counts an answered assistant message
func (mc *Collector) RecordChat(intent models.ChatIntent) {
	if mc == nil {
		return
	}
	if counter, ok := mc.metrics["chats"].(*prometheus.CounterVec); ok {
		counter.WithLabelValues(string(intent)).Inc()
	}
}

// RecordInsufficientData counts an analysis rejected for degenerate input
func (mc *Collector) RecordInsufficientData(operation string) {
	if mc == nil {
		return
	}
	if counter, ok := mc.metrics["insufficient"].(*prometheus.CounterVec); ok {
		counter.WithLabelValues(operation).Inc()
	}
}

// RecordFallback counts a read served from the built-in dataset
func (mc *Collector) RecordFallback(dataset string) {
	if mc == nil {
		return
	}
	if counter, ok := mc.metrics["fallbacks"].(*prometheus.CounterVec); ok {
		counter.WithLabelValues(dataset).Inc()
	}
}

// ObserveFetch records how long a provider read took
func (mc *Collector) ObserveFetch(dataset string, d time.Duration) {
	if mc == nil {
		return
	}
	if histogram, ok := mc.metrics["fetch_duration"].(*prometheus.HistogramVec); ok {
		histogram.WithLabelValues(dataset).Observe(d.Seconds())
	}
}
