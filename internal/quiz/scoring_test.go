package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func answeredAll(t *testing.T, option int) ([]int, []Question) {
	t.Helper()
	questions, err := Questions(VariantBPD)
	require.NoError(t, err)
	answers := make([]int, len(questions))
	for i := range answers {
		answers[i] = option
	}
	return answers, questions
}

// All answers "sometimes" (index 2) on the 18-question bank with weight 1.0
// must give a total of 36 and land in the moderate band.
func TestScoreAllSometimes(t *testing.T) {
	answers, questions := answeredAll(t, 2)
	categoryScores, total := Score(answers, questions)

	assert.Equal(t, 36.0, total)
	assert.Equal(t, SeverityModerate, SeverityFor(total))
	for _, c := range Categories() {
		assert.Equal(t, 4.0, categoryScores[c], "category %s", c)
	}
}

func TestScoreAllUnanswered(t *testing.T) {
	questions, err := Questions(VariantBPD)
	require.NoError(t, err)
	answers := make([]int, len(questions))
	for i := range answers {
		answers[i] = Unanswered
	}

	categoryScores, total := Score(answers, questions)
	assert.Equal(t, 0.0, total)
	assert.Equal(t, SeverityNone, SeverityFor(total))
	for _, c := range Categories() {
		assert.Equal(t, 0.0, categoryScores[c])
	}
}

// Unanswered slots contribute exactly zero; answered slots contribute
// optionIndex * weight.
func TestScorePartial(t *testing.T) {
	questions, err := Questions(VariantBPD)
	require.NoError(t, err)
	answers := make([]int, len(questions))
	for i := range answers {
		answers[i] = Unanswered
	}
	answers[0] = 4
	answers[5] = 3
	answers[17] = 1

	_, total := Score(answers, questions)
	assert.Equal(t, 8.0, total)
}

func TestSeverityBands(t *testing.T) {
	cases := []struct {
		total float64
		want  Severity
	}{
		{0, SeverityNone},
		{19.99, SeverityNone},
		{20, SeverityMild}, // boundary belongs to the higher band
		{39.99, SeverityMild},
		{40, SeverityModerate},
		{59.99, SeverityModerate},
		{60, SeveritySevere},
		{72, SeveritySevere},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, SeverityFor(c.total), "total %.2f", c.total)
	}
}

func TestSeverityMonotonic(t *testing.T) {
	order := map[Severity]int{SeverityNone: 0, SeverityMild: 1, SeverityModerate: 2, SeveritySevere: 3}
	prev := SeverityNone
	for total := 0.0; total <= 72.0; total += 0.5 {
		cur := SeverityFor(total)
		assert.GreaterOrEqual(t, order[cur], order[prev], "total %.1f", total)
		prev = cur
	}
}
