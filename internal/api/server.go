package api

import (
	"context"
	"log/slog"
	"net/http"

	"wastewise/internal/analyzer"
	"wastewise/internal/assistant"
	"wastewise/internal/models"
	"wastewise/internal/monitoring"

	"github.com/gin-gonic/gin"
)

// DataSource is what the handlers read from. Reads never fail; the
// fallback policy lives behind it. provider.Fallback satisfies it.
type DataSource interface {
	WeeklyData(ctx context.Context) []models.DailyRecord
	MonthlyStats(ctx context.Context) models.MonthlyStats
	FoodCategories(ctx context.Context) []models.FoodCategory
	Insert(ctx context.Context, records ...models.DailyRecord) error
}

// Server represents the wastewise HTTP API
type Server struct {
	router    *gin.Engine
	data      DataSource
	analyzer  *analyzer.Analyzer
	monitor   *monitoring.Monitor
	logger    *slog.Logger
	jwtSecret string
}

// Option configures a Server
type Option func(*Server)

// WithJWTSecret turns on bearer token auth for /api/v1 and /ws
func WithJWTSecret(secret string) Option {
	return func(s *Server) {
		s.jwtSecret = secret
	}
}

// WithMonitor shares a monitor with other components
func WithMonitor(m *monitoring.Monitor) Option {
	return func(s *Server) {
		if m != nil {
			s.monitor = m
		}
	}
}

// WithLogger sets the request and error logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewServer creates a new API server instance
func NewServer(data DataSource, a *analyzer.Analyzer, opts ...Option) *Server {
	s := &Server{
		router:   gin.New(),
		data:     data,
		analyzer: a,
		monitor:  monitoring.NewMonitor(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.router.Use(gin.Recovery(), RequestID(), RequestLogger(s.logger))
	s.setupRoutes()
	return s
}

// setupRoutes configures all API endpoints
func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "wastewise API is running"})
	})

	auth := AuthMiddleware(s.jwtSecret)

	v1 := s.router.Group("/api/v1", auth)
	{
		// Records
		v1.GET("/records", s.listRecords)
		v1.POST("/records", s.createRecords)
		v1.GET("/records/history", s.mealHistory)

		// Reference data
		v1.GET("/stats/monthly", s.monthlyStats)
		v1.GET("/categories", s.categories)

		// Insights
		v1.GET("/insights/predictions", s.predictions)
		v1.GET("/insights/suggestions", s.suggestions)
		v1.GET("/insights/dashboard", s.dashboard)

		// Assistant
		v1.POST("/assistant/chat", s.chat)

		v1.GET("/monitor", s.monitorSnapshot)
	}

	ws := assistant.NewHandler(s.analyzer, s.data, s.monitor, s.logger)
	s.router.GET("/ws/assistant", auth, gin.WrapH(ws))
}

// Router returns the Gin router
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Monitor returns the server's insight monitor
func (s *Server) Monitor() *monitoring.Monitor {
	return s.monitor
}
