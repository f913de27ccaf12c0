package quiz

// Unanswered is the sentinel value for a question slot with no answer yet.
const Unanswered = -1

// Severity is the band derived from the total score.
type Severity string

const (
	SeverityNone     Severity = "none"
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// Severity thresholds are calibrated to the shipped bank: 18 questions with a
// max option value of 4 and weight 1.0 give a max total of 72. If the bank is
// ever reconfigured the thresholds must be re-derived; TestBankCalibration
// pins this assumption.
const (
	thresholdMild     = 20.0
	thresholdModerate = 40.0
	thresholdSevere   = 60.0
)

// Score maps an answer set onto per-category scores and a total. For each
// answered question the option index times the question weight accumulates
// into its category bucket; unanswered slots (sentinel) contribute nothing.
// Pure and total: an all-unanswered input yields zeroed buckets.
func Score(answers []int, questions []Question) (map[Category]float64, float64) {
	categoryScores := make(map[Category]float64, len(Categories()))
	for _, c := range Categories() {
		categoryScores[c] = 0
	}

	total := 0.0
	for i, q := range questions {
		if i >= len(answers) || answers[i] == Unanswered {
			continue
		}
		contribution := float64(answers[i]) * q.Weight
		categoryScores[q.Category] += contribution
		total += contribution
	}
	return categoryScores, total
}

// SeverityFor classifies a total score into a band. Bands are left-closed:
// a score of exactly 20 is mild, not none.
func SeverityFor(total float64) Severity {
	switch {
	case total < thresholdMild:
		return SeverityNone
	case total < thresholdModerate:
		return SeverityMild
	case total < thresholdSevere:
		return SeverityModerate
	default:
		return SeveritySevere
	}
}
