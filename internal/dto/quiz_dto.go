package dto

// QuestionDTO is one inventory item as shown to the client.
type QuestionDTO struct {
	ID       int      `json:"id"`
	Text     string   `json:"text"`
	Options  []string `json:"options"`
	Category string   `json:"category"`
	Weight   float64  `json:"weight"`
}

// SessionStateDTO mirrors the live quiz state after every transition so the
// client never has to recompute a score itself.
type SessionStateDTO struct {
	CurrentIndex   int                `json:"current_index"`
	QuestionCount  int                `json:"question_count"`
	Answers        []int              `json:"answers"`
	IsCompleted    bool               `json:"is_completed"`
	CategoryScores map[string]float64 `json:"category_scores"`
	TotalScore     float64            `json:"total_score"`
	Severity       string             `json:"severity"`
}

// AnswerRequestDTO records one option choice for one question.
type AnswerRequestDTO struct {
	QuestionIndex int `json:"question_index" binding:"min=0"`
	OptionIndex   int `json:"option_index" binding:"min=0"`
}
