package quiz

import "fmt"

// ErrValidation marks rejected transition input (out-of-range indexes,
// transitions on a completed session). It is never silently clamped away.
type ErrValidation struct {
	Reason string
}

func (e *ErrValidation) Error() string { return e.Reason }

func validationErrorf(format string, args ...interface{}) error {
	return &ErrValidation{Reason: fmt.Sprintf(format, args...)}
}

// Session is the quiz state machine for one subject. It starts in progress at
// question 0 with every slot unanswered and moves to completed only through
// Complete. Category and total scores are recomputed on every Answer so a
// caller never observes a stale score after a transition returns.
type Session struct {
	questions      []Question
	currentIndex   int
	answers        []int
	completed      bool
	categoryScores map[Category]float64
	totalScore     float64
}

// NewSession creates the initial in-progress state for a question bank.
func NewSession(questions []Question) *Session {
	s := &Session{questions: questions}
	s.reset()
	return s
}

func (s *Session) reset() {
	s.currentIndex = 0
	s.completed = false
	s.answers = make([]int, len(s.questions))
	for i := range s.answers {
		s.answers[i] = Unanswered
	}
	s.categoryScores, s.totalScore = Score(s.answers, s.questions)
}

// Answer records an option for the question at index and recomputes the
// scores synchronously.
func (s *Session) Answer(index, optionIndex int) error {
	if s.completed {
		return validationErrorf("session is completed; reset to answer again")
	}
	if index < 0 || index >= len(s.questions) {
		return validationErrorf("question index %d out of range [0,%d)", index, len(s.questions))
	}
	if optionIndex < 0 || optionIndex >= len(s.questions[index].Options) {
		return validationErrorf("option index %d out of range [0,%d) for question %d",
			optionIndex, len(s.questions[index].Options), index)
	}
	s.answers[index] = optionIndex
	s.categoryScores, s.totalScore = Score(s.answers, s.questions)
	return nil
}

// Next advances the cursor, clamped to the last question. Navigation does not
// require the current question to be answered.
func (s *Session) Next() error {
	if s.completed {
		return validationErrorf("session is completed; cannot navigate")
	}
	if s.currentIndex < len(s.questions)-1 {
		s.currentIndex++
	}
	return nil
}

// Previous moves the cursor back, clamped to the first question.
func (s *Session) Previous() error {
	if s.completed {
		return validationErrorf("session is completed; cannot navigate")
	}
	if s.currentIndex > 0 {
		s.currentIndex--
	}
	return nil
}

// Complete freezes the session at its current answers and scores. Partial
// completion is tolerated: unanswered slots simply contribute zero.
func (s *Session) Complete() error {
	if s.completed {
		return validationErrorf("session is already completed")
	}
	s.completed = true
	return nil
}

// Reset returns to the initial in-progress state from any state.
func (s *Session) Reset() {
	s.reset()
}

func (s *Session) CurrentIndex() int { return s.currentIndex }
func (s *Session) Completed() bool   { return s.completed }
func (s *Session) TotalScore() float64 {
	return s.totalScore
}

// Answers returns a copy of the answer set; one slot per question.
func (s *Session) Answers() []int {
	out := make([]int, len(s.answers))
	copy(out, s.answers)
	return out
}

// CategoryScores returns a copy of the per-category buckets.
func (s *Session) CategoryScores() map[Category]float64 {
	out := make(map[Category]float64, len(s.categoryScores))
	for k, v := range s.categoryScores {
		out[k] = v
	}
	return out
}

// Questions returns the bank the session was created with.
func (s *Session) Questions() []Question { return s.questions }

// Severity classifies the session's current total score.
func (s *Session) Severity() Severity { return SeverityFor(s.totalScore) }
