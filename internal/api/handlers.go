package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"wastewise/internal/analyzer"
	"wastewise/internal/models"
	"wastewise/internal/provider"

	"github.com/gin-gonic/gin"
)

// Record handlers

func (s *Server) listRecords(c *gin.Context) {
	c.JSON(http.StatusOK, s.data.WeeklyData(c.Request.Context()))
}

// mealHistory splits each day into breakfast, lunch and dinner rows
func (s *Server) mealHistory(c *gin.Context) {
	c.JSON(http.StatusOK, analyzer.MealBreakdown(s.data.WeeklyData(c.Request.Context())))
}

// createRecords accepts a single record or an array of records
func (s *Server) createRecords(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	records, err := decodeRecords(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.data.Insert(c.Request.Context(), records...); err != nil {
		if errors.Is(err, provider.ErrInvalidRecord) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		s.logger.Error("inserting records", "error", err, "count", len(records))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "records could not be saved"})
		return
	}

	s.monitor.Increment("records_inserted")
	c.JSON(http.StatusCreated, gin.H{"inserted": len(records)})
}

func decodeRecords(body []byte) ([]models.DailyRecord, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, errors.New("request body is empty")
	}

	if trimmed[0] == '[' {
		var records []models.DailyRecord
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, err
		}
		return records, nil
	}

	var record models.DailyRecord
	if err := json.Unmarshal(trimmed, &record); err != nil {
		return nil, err
	}
	return []models.DailyRecord{record}, nil
}

// Reference data handlers

func (s *Server) monthlyStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.data.MonthlyStats(c.Request.Context()))
}

func (s *Server) categories(c *gin.Context) {
	c.JSON(http.StatusOK, s.data.FoodCategories(c.Request.Context()))
}

// Insight handlers

func (s *Server) predictions(c *gin.Context) {
	history := s.data.WeeklyData(c.Request.Context())

	p, err := s.analyzer.PredictOrDefault(history)
	if err != nil {
		s.logger.Error("predicting waste", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.monitor.ObservePrediction(p)
	c.JSON(http.StatusOK, p)
}

func (s *Server) suggestions(c *gin.Context) {
	history := s.data.WeeklyData(c.Request.Context())

	suggestions, err := s.analyzer.SuggestOrDefault(history)
	if err != nil {
		s.logger.Error("generating suggestions", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.monitor.ObserveSuggestions(suggestions)
	c.JSON(http.StatusOK, suggestions)
}

// dashboard bundles everything the dashboard page shows in one response
func (s *Server) dashboard(c *gin.Context) {
	ctx := c.Request.Context()
	history := s.data.WeeklyData(ctx)

	summary, err := s.analyzer.Summarize(history)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, analyzer.ErrInsufficientData) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	prediction, err := s.analyzer.PredictOrDefault(history)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	s.monitor.ObservePrediction(prediction)

	c.JSON(http.StatusOK, gin.H{
		"summary":    summary,
		"weekly":     history,
		"monthly":    s.data.MonthlyStats(ctx),
		"categories": s.data.FoodCategories(ctx),
		"prediction": prediction,
	})
}

// Assistant handlers

func (s *Server) chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	history := s.data.WeeklyData(c.Request.Context())
	reply := s.analyzer.Chat(req.Message, history)

	s.monitor.Increment("chats")
	c.JSON(http.StatusOK, reply)
}

func (s *Server) monitorSnapshot(c *gin.Context) {
	c.JSON(http.StatusOK, s.monitor.Snapshot())
}
