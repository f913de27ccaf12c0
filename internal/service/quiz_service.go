package service

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mindtrace/bpdscreen/internal/dto"
	"github.com/mindtrace/bpdscreen/internal/model"
	"github.com/mindtrace/bpdscreen/internal/quiz"
	"github.com/mindtrace/bpdscreen/internal/repository"
	"github.com/rs/zerolog/log"
)

// QuizService owns the live quiz sessions, one per subject id. Sessions are
// in-memory and advisory until Complete persists a TestResult; losing one
// before completion matches the source behavior of navigating away mid-quiz.
type QuizService interface {
	Questions(variant string) ([]dto.QuestionDTO, error)
	State(subjectID string) (*dto.SessionStateDTO, error)
	Answer(subjectID string, questionIndex, optionIndex int) (*dto.SessionStateDTO, error)
	Next(subjectID string) (*dto.SessionStateDTO, error)
	Previous(subjectID string) (*dto.SessionStateDTO, error)
	Complete(subjectID string) (*dto.SessionStateDTO, error)
	Reset(subjectID string) (*dto.SessionStateDTO, error)
}

type quizService struct {
	resultRepo repository.ResultRepository

	mu       sync.Mutex
	sessions map[string]*quiz.Session
}

func NewQuizService(resultRepo repository.ResultRepository) QuizService {
	return &quizService{
		resultRepo: resultRepo,
		sessions:   make(map[string]*quiz.Session),
	}
}

func (s *quizService) Questions(variant string) ([]dto.QuestionDTO, error) {
	questions, err := quiz.Questions(variant)
	if err != nil {
		return nil, err
	}
	dtos := make([]dto.QuestionDTO, len(questions))
	for i, q := range questions {
		dtos[i] = dto.QuestionDTO{
			ID:       q.ID,
			Text:     q.Text,
			Options:  q.Options,
			Category: string(q.Category),
			Weight:   q.Weight,
		}
	}
	return dtos, nil
}

// sessionFor returns the subject's live session, creating the initial state
// lazily on first touch. Caller must hold s.mu.
func (s *quizService) sessionFor(subjectID string) (*quiz.Session, error) {
	if sess, ok := s.sessions[subjectID]; ok {
		return sess, nil
	}
	questions, err := quiz.Questions(quiz.VariantBPD)
	if err != nil {
		return nil, err
	}
	sess := quiz.NewSession(questions)
	s.sessions[subjectID] = sess
	return sess, nil
}

func stateDTO(sess *quiz.Session) *dto.SessionStateDTO {
	scores := sess.CategoryScores()
	out := make(map[string]float64, len(scores))
	for c, v := range scores {
		out[string(c)] = v
	}
	return &dto.SessionStateDTO{
		CurrentIndex:   sess.CurrentIndex(),
		QuestionCount:  len(sess.Questions()),
		Answers:        sess.Answers(),
		IsCompleted:    sess.Completed(),
		CategoryScores: out,
		TotalScore:     sess.TotalScore(),
		Severity:       string(sess.Severity()),
	}
}

func (s *quizService) State(subjectID string) (*dto.SessionStateDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.sessionFor(subjectID)
	if err != nil {
		return nil, err
	}
	return stateDTO(sess), nil
}

func (s *quizService) Answer(subjectID string, questionIndex, optionIndex int) (*dto.SessionStateDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.sessionFor(subjectID)
	if err != nil {
		return nil, err
	}
	if err := sess.Answer(questionIndex, optionIndex); err != nil {
		return nil, err
	}
	return stateDTO(sess), nil
}

func (s *quizService) Next(subjectID string) (*dto.SessionStateDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.sessionFor(subjectID)
	if err != nil {
		return nil, err
	}
	if err := sess.Next(); err != nil {
		return nil, err
	}
	return stateDTO(sess), nil
}

func (s *quizService) Previous(subjectID string) (*dto.SessionStateDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.sessionFor(subjectID)
	if err != nil {
		return nil, err
	}
	if err := sess.Previous(); err != nil {
		return nil, err
	}
	return stateDTO(sess), nil
}

// Complete freezes the session and persists the result. A failed save leaves
// the completed in-memory state intact so the submission can be retried
// (calling Complete again re-attempts the save), and a duplicate save (same
// subject, same answers) is treated as already saved.
func (s *quizService) Complete(subjectID string) (*dto.SessionStateDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.sessionFor(subjectID)
	if err != nil {
		return nil, err
	}
	if !sess.Completed() {
		if err := sess.Complete(); err != nil {
			return nil, err
		}
	}

	result := resultFromSession(subjectID, sess)
	if err := s.resultRepo.Create(result); err != nil {
		if errors.Is(err, repository.ErrDuplicateResult) {
			log.Info().Str("subjectID", subjectID).Msg("Complete: result already saved, continuing")
		} else {
			log.Error().Err(err).Str("subjectID", subjectID).Msg("Complete: failed to persist result")
			return nil, fmt.Errorf("failed to save result: %w", err)
		}
	}
	return stateDTO(sess), nil
}

func (s *quizService) Reset(subjectID string) (*dto.SessionStateDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.sessionFor(subjectID)
	if err != nil {
		return nil, err
	}
	sess.Reset()
	return stateDTO(sess), nil
}

func resultFromSession(subjectID string, sess *quiz.Session) *model.TestResult {
	answers := sess.Answers()
	scores := sess.CategoryScores()
	scoreMap := make(model.ScoreMap, len(scores))
	for c, v := range scores {
		scoreMap[string(c)] = v
	}
	return &model.TestResult{
		ID:             uuid.NewString(),
		SubjectID:      subjectID,
		Variant:        quiz.VariantBPD,
		TotalScore:     sess.TotalScore(),
		CategoryScores: scoreMap,
		Severity:       string(sess.Severity()),
		Answers:        answers,
		Fingerprint:    resultFingerprint(subjectID, quiz.VariantBPD, answers),
		CompletedAt:    time.Now(),
	}
}

// resultFingerprint hashes the identity-relevant content of a result so the
// unique index gives saves an at-most-once semantic. Completion time is
// deliberately excluded: resubmitting the same answers must collide.
func resultFingerprint(subjectID, variant string, answers []int) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%s|%v", subjectID, variant, answers)
	return hex.EncodeToString(h.Sum(nil))
}
