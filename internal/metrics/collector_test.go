package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wastewise/internal/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCollector(t *testing.T) {
	collector := NewCollector()

	require.NotNil(t, collector)
	assert.NotNil(t, collector.registry)
	assert.Len(t, collector.metrics, 8)
}

func TestRecordPrediction(t *testing.T) {
	collector := NewCollector()

	collector.RecordPrediction(models.Prediction{
		TomorrowWaste: 21,
		WeeklyWaste:   145,
		WasteTrend:    models.TrendStable,
		Efficiency:    86.5,
	})

	counter := collector.metrics["predictions"].(*prometheus.CounterVec)
	assert.Equal(t, 1.0, testutil.ToFloat64(counter.WithLabelValues("stable")))

	gauge := collector.metrics["predicted_waste"].(*prometheus.GaugeVec)
	assert.Equal(t, 21.0, testutil.ToFloat64(gauge.WithLabelValues("tomorrow")))
	assert.Equal(t, 145.0, testutil.ToFloat64(gauge.WithLabelValues("week")))

	assert.Equal(t, 86.5, testutil.ToFloat64(collector.metrics["efficiency"]))
}

func TestRecordSuggestionsAndChat(t *testing.T) {
	collector := NewCollector()

	collector.RecordSuggestions([]models.Suggestion{
		{Type: models.SuggestionTip},
		{Type: models.SuggestionRecommendation},
		{Type: models.SuggestionTip},
	})
	collector.RecordChat(models.IntentPrediction)

	suggestions := collector.metrics["suggestions"].(*prometheus.CounterVec)
	assert.Equal(t, 2.0, testutil.ToFloat64(suggestions.WithLabelValues("tip")))
	assert.Equal(t, 1.0, testutil.ToFloat64(suggestions.WithLabelValues("recommendation")))

	chats := collector.metrics["chats"].(*prometheus.CounterVec)
	assert.Equal(t, 1.0, testutil.ToFloat64(chats.WithLabelValues("prediction")))
}

func TestRecordFallbackAndFetch(t *testing.T) {
	collector := NewCollector()

	collector.RecordFallback("weekly")
	collector.RecordFallback("weekly")
	collector.RecordInsufficientData("predict")
	collector.ObserveFetch("weekly", 15*time.Millisecond)

	fallbacks := collector.metrics["fallbacks"].(*prometheus.CounterVec)
	assert.Equal(t, 2.0, testutil.ToFloat64(fallbacks.WithLabelValues("weekly")))

	insufficient := collector.metrics["insufficient"].(*prometheus.CounterVec)
	assert.Equal(t, 1.0, testutil.ToFloat64(insufficient.WithLabelValues("predict")))

	assert.Equal(t, 1, testutil.CollectAndCount(collector.metrics["fetch_duration"]))
}

func TestNilCollectorIsNoop(t *testing.T) {
	var collector *Collector

	assert.NotPanics(t, func() {
		collector.RecordPrediction(models.Prediction{})
		collector.RecordSuggestions([]models.Suggestion{{Type: models.SuggestionTip}})
		collector.RecordChat(models.IntentGeneral)
		collector.RecordFallback("weekly")
		collector.RecordInsufficientData("suggest")
		collector.ObserveFetch("weekly", time.Second)
	})
}

func TestHandlerServesRegistry(t *testing.T) {
	collector := NewCollector()
	collector.RecordFallback("categories")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	collector.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `wastewise_fallback_total{dataset="categories"} 1`)
}
