package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"wastewise/internal/models"
)

// Remote reads records from another wastewise API over HTTP
type Remote struct {
	httpClient *http.Client
	BaseURL    string
	Token      string
}

// NewRemote creates a remote provider for baseURL
func NewRemote(baseURL string, timeout time.Duration) *Remote {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Remote{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		BaseURL: strings.TrimRight(baseURL, "/"),
	}
}

// WeeklyData fetches GET /api/v1/records
func (r *Remote) WeeklyData(ctx context.Context) ([]models.DailyRecord, error) {
	var records []models.DailyRecord
	if err := r.get(ctx, "/api/v1/records", &records); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: weekly data: empty response", ErrUnavailable)
	}
	return records, nil
}

// MonthlyStats fetches GET /api/v1/stats/monthly
func (r *Remote) MonthlyStats(ctx context.Context) (models.MonthlyStats, error) {
	var stats models.MonthlyStats
	if err := r.get(ctx, "/api/v1/stats/monthly", &stats); err != nil {
		return models.MonthlyStats{}, err
	}
	return stats, nil
}

// FoodCategories fetches GET /api/v1/categories
func (r *Remote) FoodCategories(ctx context.Context) ([]models.FoodCategory, error) {
	var categories []models.FoodCategory
	if err := r.get(ctx, "/api/v1/categories", &categories); err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, fmt.Errorf("%w: food categories: empty response", ErrUnavailable)
	}
	return categories, nil
}

// InsertRecords posts records to POST /api/v1/records
func (r *Remote) InsertRecords(ctx context.Context, records ...models.DailyRecord) error {
	if err := ValidateRecords(records); err != nil {
		return err
	}

	body, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode records: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.BaseURL+"/api/v1/records", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build insert request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	r.authorize(req)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: insert: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: insert: status %d: %s", ErrUnavailable, resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	return nil
}

func (r *Remote) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.BaseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, path, err)
	}
	r.authorize(req)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s: status %d", ErrUnavailable, path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s: decode: %v", ErrUnavailable, path, err)
	}
	return nil
}

func (r *Remote) authorize(req *http.Request) {
	if r.Token != "" {
		req.Header.Set("Authorization", "Bearer "+r.Token)
	}
}
