package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	questions, err := Questions(VariantBPD)
	require.NoError(t, err)
	return NewSession(questions)
}

func TestSessionInitialState(t *testing.T) {
	s := newTestSession(t)
	assert.Equal(t, 0, s.CurrentIndex())
	assert.False(t, s.Completed())
	assert.Equal(t, 0.0, s.TotalScore())
	for _, a := range s.Answers() {
		assert.Equal(t, Unanswered, a)
	}
}

func TestAnswerRecomputesScores(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.Answer(0, 3))
	assert.Equal(t, 3.0, s.TotalScore())
	assert.Equal(t, 3.0, s.CategoryScores()[CategoryAbandonment])

	// Changing the answer replaces the contribution, not adds to it.
	require.NoError(t, s.Answer(0, 1))
	assert.Equal(t, 1.0, s.TotalScore())
}

func TestAnswerValidation(t *testing.T) {
	s := newTestSession(t)

	var ve *ErrValidation
	err := s.Answer(-1, 0)
	require.ErrorAs(t, err, &ve)

	err = s.Answer(18, 0)
	require.ErrorAs(t, err, &ve)

	err = s.Answer(0, 5)
	require.ErrorAs(t, err, &ve)

	err = s.Answer(0, -2)
	require.ErrorAs(t, err, &ve)

	// Rejected input must not have touched the state.
	assert.Equal(t, 0.0, s.TotalScore())
	for _, a := range s.Answers() {
		assert.Equal(t, Unanswered, a)
	}
}

func TestNavigationClamps(t *testing.T) {
	s := newTestSession(t)

	require.NoError(t, s.Previous())
	assert.Equal(t, 0, s.CurrentIndex())

	for i := 0; i < 30; i++ {
		require.NoError(t, s.Next())
	}
	assert.Equal(t, 17, s.CurrentIndex())

	for i := 0; i < 30; i++ {
		require.NoError(t, s.Previous())
	}
	assert.Equal(t, 0, s.CurrentIndex())
}

func TestCompleteFreezesState(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.Answer(0, 2))
	require.NoError(t, s.Complete())

	assert.True(t, s.Completed())
	assert.Equal(t, 2.0, s.TotalScore())

	var ve *ErrValidation
	require.ErrorAs(t, s.Answer(1, 1), &ve)
	require.ErrorAs(t, s.Next(), &ve)
	require.ErrorAs(t, s.Previous(), &ve)
	require.ErrorAs(t, s.Complete(), &ve)
	assert.Equal(t, 2.0, s.TotalScore())
}

// Completion with nothing answered is tolerated: total 0, severity none.
func TestCompletePartial(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.Complete())
	assert.True(t, s.Completed())
	assert.Equal(t, 0.0, s.TotalScore())
	assert.Equal(t, SeverityNone, s.Severity())
}

func TestResetFromAnyState(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.Answer(0, 4))
	require.NoError(t, s.Next())
	require.NoError(t, s.Complete())

	s.Reset()

	assert.Equal(t, 0, s.CurrentIndex())
	assert.False(t, s.Completed())
	assert.Equal(t, 0.0, s.TotalScore())
	assert.Len(t, s.Answers(), 18)
	for _, a := range s.Answers() {
		assert.Equal(t, Unanswered, a)
	}
}

func TestAnswersReturnsCopy(t *testing.T) {
	s := newTestSession(t)
	answers := s.Answers()
	answers[0] = 4
	assert.Equal(t, Unanswered, s.Answers()[0])
}
