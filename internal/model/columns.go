package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// AnswerSet is the per-question option index list, one slot per question,
// with -1 marking an unanswered slot. Stored as a JSON column.
type AnswerSet []int

func (a AnswerSet) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *AnswerSet) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	case nil:
		*a = nil
		return nil
	default:
		return fmt.Errorf("unsupported type %T for AnswerSet", value)
	}
}

// ScoreMap maps category names to accumulated scores. Stored as a JSON column.
type ScoreMap map[string]float64

func (m ScoreMap) Value() (driver.Value, error) {
	return json.Marshal(m)
}

func (m *ScoreMap) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	case nil:
		*m = nil
		return nil
	default:
		return fmt.Errorf("unsupported type %T for ScoreMap", value)
	}
}
