// Package analyzer turns daily kitchen records into waste predictions,
// suggestions and canned assistant replies.
package analyzer

import (
	"errors"
	"io"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"wastewise/internal/metrics"

	"github.com/tmc/langchaingo/prompts"
)

// ErrInsufficientData is returned when the history is empty or its averages
// cannot be divided safely.
var ErrInsufficientData = errors.New("insufficient data")

// DefaultChatDelay is the simulated thinking time before the assistant answers.
const DefaultChatDelay = time.Second

// Rand is the randomness source for prediction multipliers. *rand.Rand
// satisfies it.
type Rand interface {
	Float64() float64
}

// FixedRand always returns the same draw. FixedRand(0.5) turns the predictor
// into a plain historical-average estimator.
type FixedRand float64

func (f FixedRand) Float64() float64 {
	return float64(f)
}

// Analyzer computes predictions, suggestions and chat replies. It keeps no
// state between calls apart from its randomness source.
type Analyzer struct {
	mu        sync.Mutex
	rng       Rand
	chatDelay time.Duration
	logger    *slog.Logger
	metrics   *metrics.Collector

	predictionPrompt prompts.PromptTemplate
}

// Option configures an Analyzer
type Option func(*Analyzer)

// WithRand pins the randomness source
func WithRand(r Rand) Option {
	return func(a *Analyzer) {
		a.rng = r
	}
}

// WithSeed seeds a private math/rand source
func WithSeed(seed int64) Option {
	return func(a *Analyzer) {
		a.rng = rand.New(rand.NewSource(seed))
	}
}

// WithChatDelay overrides the simulated thinking time
func WithChatDelay(d time.Duration) Option {
	return func(a *Analyzer) {
		a.chatDelay = d
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) {
		a.logger = logger
	}
}

// WithMetrics sets the metrics collector
func WithMetrics(mc *metrics.Collector) Option {
	return func(a *Analyzer) {
		a.metrics = mc
	}
}

// New creates an analyzer. Without WithRand or WithSeed, predictions are
// seeded from the clock and differ between calls.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		chatDelay:        DefaultChatDelay,
		predictionPrompt: prompts.NewPromptTemplate(predictionTemplate, []string{"tomorrow_waste", "efficiency"}),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.rng == nil {
		a.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if a.logger == nil {
		a.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return a
}

// draw returns one value from the randomness source. *rand.Rand is not safe
// for concurrent use.
func (a *Analyzer) draw() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.rng.Float64()
}
