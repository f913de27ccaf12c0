package dto

import "time"

// ResultSummaryDTO is the ungated view of a persisted result.
type ResultSummaryDTO struct {
	ID          string    `json:"id"`
	Severity    string    `json:"severity"`
	CompletedAt time.Time `json:"completed_at"`
	Locked      bool      `json:"locked"`
}

// ResultDetailDTO is the full, entitlement-gated view.
type ResultDetailDTO struct {
	ID             string             `json:"id"`
	SubjectID      string             `json:"subject_id"`
	Variant        string             `json:"variant"`
	TotalScore     float64            `json:"total_score"`
	CategoryScores map[string]float64 `json:"category_scores"`
	Severity       string             `json:"severity"`
	Answers        []int              `json:"answers"`
	CompletedAt    time.Time          `json:"completed_at"`
}

// SpecialistNoteDTO carries the generated clinician-facing summary.
type SpecialistNoteDTO struct {
	ResultID string `json:"result_id"`
	Note     string `json:"note"`
	Source   string `json:"source"` // "ai" or "template"
}
