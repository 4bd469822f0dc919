package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	summary, err := New().Summarize(week())
	require.NoError(t, err)

	assert.Equal(t, 7, summary.Days)
	assert.Equal(t, 1480.0, summary.TotalCooked)
	assert.Equal(t, 1281.0, summary.TotalEaten)
	assert.Equal(t, 199.0, summary.TotalLeftover)
	assert.Equal(t, 145.0, summary.TotalWaste)
	assert.Equal(t, 86.6, summary.Efficiency)
	assert.Equal(t, "Sun", summary.MostWastedDay)
	assert.Equal(t, "Thu", summary.LeastWastedDay)
}

func TestSummarizeEmpty(t *testing.T) {
	_, err := New().Summarize(nil)
	assert.ErrorIs(t, err, ErrInsufficientData)
}
