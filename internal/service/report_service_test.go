package service

import (
	"context"
	"testing"
	"time"

	"github.com/mindtrace/bpdscreen/config"
	"github.com/mindtrace/bpdscreen/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Without an API key the service must fall back to the deterministic
// template note instead of failing.
func TestSpecialistNoteTemplateFallback(t *testing.T) {
	svc, err := NewReportService(&config.Config{})
	require.NoError(t, err)

	result := &model.TestResult{
		ID:          "r-1",
		TotalScore:  36,
		Severity:    "moderate",
		CompletedAt: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		CategoryScores: model.ScoreMap{
			"anger":     6,
			"emptiness": 3,
		},
	}

	note, source, err := svc.SpecialistNote(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, "template", source)
	assert.Contains(t, note, "2026-03-14")
	assert.Contains(t, note, "36.0")
	assert.Contains(t, note, "moderate")
	assert.Contains(t, note, "anger: 6.0")
	assert.Contains(t, note, "not a diagnosis")
}

func TestSpecialistNoteDeterministicOrdering(t *testing.T) {
	svc, err := NewReportService(&config.Config{})
	require.NoError(t, err)

	result := &model.TestResult{
		Severity:       "mild",
		CompletedAt:    time.Now(),
		CategoryScores: model.ScoreMap{"b_cat": 1, "a_cat": 2, "c_cat": 3},
	}

	first, _, err := svc.SpecialistNote(context.Background(), result)
	require.NoError(t, err)
	second, _, err := svc.SpecialistNote(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
