package model

import (
	"time"

	"gorm.io/gorm"
)

// TestResult is the persisted record of one completed quiz session. Created
// once at completion and never mutated afterwards, except that SubjectID may
// be rewritten once when anonymous results are re-owned to an authenticated
// user. Fingerprint is a content hash giving the save an at-most-once
// semantic: a duplicate submission trips the unique index instead of
// inserting a second row.
type TestResult struct {
	ID             string         `gorm:"primarykey" json:"id"`
	SubjectID      string         `json:"subject_id" gorm:"not null;index"`
	Variant        string         `json:"variant" gorm:"not null;default:'bpd'"`
	TotalScore     float64        `json:"total_score"`
	CategoryScores ScoreMap       `json:"category_scores" gorm:"type:jsonb"`
	Severity       string         `json:"severity" gorm:"not null"`
	Answers        AnswerSet      `json:"answers" gorm:"type:jsonb"`
	Fingerprint    string         `json:"-" gorm:"not null;uniqueIndex"`
	CompletedAt    time.Time      `json:"completed_at"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
