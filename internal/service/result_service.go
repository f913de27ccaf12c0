package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/mindtrace/bpdscreen/internal/dto"
	"github.com/mindtrace/bpdscreen/internal/model"
	"github.com/mindtrace/bpdscreen/internal/repository"
	"github.com/rs/zerolog/log"
)

// ResultService serves persisted results with entitlement gating: the
// severity band is always visible, the full breakdown only once paid.
type ResultService interface {
	Latest(subjectID string, entitled bool) (*dto.ResultSummaryDTO, *dto.ResultDetailDTO, error)
	LatestRecord(subjectID string) (*model.TestResult, error)
}

type resultService struct {
	resultRepo repository.ResultRepository
}

func NewResultService(resultRepo repository.ResultRepository) ResultService {
	return &resultService{resultRepo: resultRepo}
}

// Latest returns (nil, nil, nil) when the subject has no result yet. The
// detail DTO is only populated for entitled subjects; the summary carries a
// Locked flag so the client knows gating applied.
func (s *resultService) Latest(subjectID string, entitled bool) (*dto.ResultSummaryDTO, *dto.ResultDetailDTO, error) {
	result, err := s.resultRepo.FindLatestBySubject(subjectID)
	if err != nil {
		log.Error().Err(err).Str("subjectID", subjectID).Msg("Latest: failed to load result")
		return nil, nil, fmt.Errorf("failed to load latest result: %w", err)
	}
	if result == nil {
		return nil, nil, nil
	}

	summary := &dto.ResultSummaryDTO{
		ID:          result.ID,
		Severity:    result.Severity,
		CompletedAt: result.CompletedAt,
		Locked:      !entitled,
	}
	if !entitled {
		return summary, nil, nil
	}

	var detail dto.ResultDetailDTO
	if err := copier.Copy(&detail, result); err != nil {
		log.Error().Err(err).Str("resultID", result.ID).Msg("Latest: failed to map result to DTO")
		return nil, nil, fmt.Errorf("error preparing result response: %w", err)
	}
	detail.CategoryScores = map[string]float64(result.CategoryScores)
	detail.Answers = []int(result.Answers)
	return summary, &detail, nil
}

func (s *resultService) LatestRecord(subjectID string) (*model.TestResult, error) {
	return s.resultRepo.FindLatestBySubject(subjectID)
}
