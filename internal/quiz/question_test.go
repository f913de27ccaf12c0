package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBankCalibration pins the assumptions the severity thresholds were
// derived from: 18 questions, 5-option scale, uniform weight 1.0 (max total
// 72). If this test fails, the thresholds in scoring.go must be re-derived.
func TestBankCalibration(t *testing.T) {
	questions, err := Questions(VariantBPD)
	require.NoError(t, err)
	require.Len(t, questions, 18)

	maxTotal := 0.0
	for _, q := range questions {
		assert.Len(t, q.Options, 5)
		assert.Equal(t, 1.0, q.Weight)
		maxTotal += float64(len(q.Options)-1) * q.Weight
	}
	assert.Equal(t, 72.0, maxTotal)
}

func TestBankIntegrity(t *testing.T) {
	questions, err := Questions(VariantBPD)
	require.NoError(t, err)

	seenIDs := make(map[int]bool)
	perCategory := make(map[Category]int)
	for _, q := range questions {
		assert.False(t, seenIDs[q.ID], "duplicate question id %d", q.ID)
		seenIDs[q.ID] = true
		assert.NotEmpty(t, q.Text)
		perCategory[q.Category]++
	}

	for _, c := range Categories() {
		assert.Equal(t, 2, perCategory[c], "category %s", c)
	}
}

func TestQuestionsUnknownVariant(t *testing.T) {
	_, err := Questions("adhd")
	require.Error(t, err)
}

func TestQuestionsReturnsCopy(t *testing.T) {
	a, err := Questions(VariantBPD)
	require.NoError(t, err)
	a[0].Text = "mutated"

	b, err := Questions(VariantBPD)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", b[0].Text)
}
