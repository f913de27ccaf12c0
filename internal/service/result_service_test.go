package service

import (
	"testing"
	"time"

	"github.com/mindtrace/bpdscreen/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedResult(repo *fakeResultRepo, subjectID string, completedAt time.Time) *model.TestResult {
	r := &model.TestResult{
		ID:             "r-" + completedAt.Format("150405"),
		SubjectID:      subjectID,
		Variant:        "bpd",
		TotalScore:     36,
		CategoryScores: model.ScoreMap{"anger": 4},
		Severity:       "moderate",
		Answers:        model.AnswerSet{2, 2, 2},
		CompletedAt:    completedAt,
	}
	repo.results = append(repo.results, r)
	return r
}

func TestLatestNoResult(t *testing.T) {
	svc := NewResultService(newFakeResultRepo())

	summary, detail, err := svc.Latest("anon-1", false)
	require.NoError(t, err)
	assert.Nil(t, summary)
	assert.Nil(t, detail)
}

func TestLatestGatedWithoutEntitlement(t *testing.T) {
	repo := newFakeResultRepo()
	seedResult(repo, "u1", time.Now())
	svc := NewResultService(repo)

	summary, detail, err := svc.Latest("u1", false)
	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.True(t, summary.Locked)
	assert.Equal(t, "moderate", summary.Severity)
	assert.Nil(t, detail)
}

func TestLatestFullWhenEntitled(t *testing.T) {
	repo := newFakeResultRepo()
	seedResult(repo, "u1", time.Now())
	svc := NewResultService(repo)

	summary, detail, err := svc.Latest("u1", true)
	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.False(t, summary.Locked)
	require.NotNil(t, detail)
	assert.Equal(t, 36.0, detail.TotalScore)
	assert.Equal(t, map[string]float64{"anger": 4}, detail.CategoryScores)
	assert.Equal(t, []int{2, 2, 2}, detail.Answers)
}

func TestLatestPicksMostRecent(t *testing.T) {
	repo := newFakeResultRepo()
	seedResult(repo, "u1", time.Now().Add(-2*time.Hour))
	newest := seedResult(repo, "u1", time.Now())
	svc := NewResultService(repo)

	summary, _, err := svc.Latest("u1", false)
	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, newest.ID, summary.ID)
}
