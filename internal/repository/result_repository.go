package repository

import (
	"errors"
	"strings"

	"github.com/mindtrace/bpdscreen/internal/model"
	"gorm.io/gorm"
)

// ErrDuplicateResult reports that an identical result row already exists
// (same fingerprint). Callers treat it as "already saved", not a failure.
var ErrDuplicateResult = errors.New("result already saved")

type ResultRepository interface {
	Create(result *model.TestResult) error
	FindLatestBySubject(subjectID string) (*model.TestResult, error)
	Reown(fromAnonymousID, toUserID string) (int64, error)
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) Create(result *model.TestResult) error {
	err := r.db.Create(result).Error
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "duplicate key") {
		return ErrDuplicateResult
	}
	return err
}

// FindLatestBySubject returns (nil, nil) when the subject has no results yet;
// a non-nil error always means the lookup itself failed.
func (r *resultRepository) FindLatestBySubject(subjectID string) (*model.TestResult, error) {
	var result model.TestResult
	err := r.db.Where("subject_id = ?", subjectID).Order("completed_at DESC").First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Reown transfers every result tagged with an anonymous session id to the
// authenticated user id. Idempotent: zero matching rows is a normal outcome.
func (r *resultRepository) Reown(fromAnonymousID, toUserID string) (int64, error) {
	tx := r.db.Model(&model.TestResult{}).
		Where("subject_id = ?", fromAnonymousID).
		Update("subject_id", toUserID)
	return tx.RowsAffected, tx.Error
}
