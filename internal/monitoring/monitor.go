package monitoring

import (
	"sync"
	"time"

	"wastewise/internal/models"
)

// Monitor keeps an in-process view of recent insight activity for the
// dashboard's status panel
type Monitor struct {
	mu              sync.RWMutex
	counters        map[string]int64
	lastPrediction  *models.Prediction
	lastSuggestions int
	lastUpdated     time.Time
	startTime       time.Time
}

// Snapshot is a point-in-time copy of the monitor
type Snapshot struct {
	UptimeSeconds       float64            `json:"uptime_seconds"`
	Counters            map[string]int64   `json:"counters"`
	LastPrediction      *models.Prediction `json:"last_prediction,omitempty"`
	LastSuggestionCount int                `json:"last_suggestion_count"`
	LastUpdated         string             `json:"last_updated,omitempty"`
}

// NewMonitor creates a new monitoring instance
func NewMonitor() *Monitor {
	return &Monitor{
		counters:  make(map[string]int64),
		startTime: time.Now(),
	}
}

// Increment bumps a named counter
func (m *Monitor) Increment(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[name]++
}

// ObservePrediction remembers the latest prediction
func (m *Monitor) ObservePrediction(p models.Prediction) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastPrediction = &p
	m.counters["predictions"]++
	m.lastUpdated = time.Now()
}

// ObserveSuggestions remembers how many suggestions were last produced
func (m *Monitor) ObserveSuggestions(suggestions []models.Suggestion) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastSuggestions = len(suggestions)
	m.counters["suggestions"]++
	m.lastUpdated = time.Now()
}

// Snapshot returns a copy safe to serialize
func (m *Monitor) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	counters := make(map[string]int64, len(m.counters))
	for k, v := range m.counters {
		counters[k] = v
	}

	s := Snapshot{
		UptimeSeconds:       time.Since(m.startTime).Seconds(),
		Counters:            counters,
		LastSuggestionCount: m.lastSuggestions,
	}
	if m.lastPrediction != nil {
		p := *m.lastPrediction
		s.LastPrediction = &p
	}
	if !m.lastUpdated.IsZero() {
		s.LastUpdated = m.lastUpdated.Format(time.RFC3339)
	}
	return s
}

// Reset clears everything except uptime
func (m *Monitor) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters = make(map[string]int64)
	m.lastPrediction = nil
	m.lastSuggestions = 0
	m.lastUpdated = time.Time{}
}
