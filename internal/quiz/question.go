package quiz

import "fmt"

// Category is one of the fixed symptom dimensions of the inventory. Every
// question belongs to exactly one category.
type Category string

const (
	CategoryAbandonment          Category = "fear_of_abandonment"
	CategoryUnstableRelations    Category = "unstable_relationships"
	CategoryIdentityDisturbance  Category = "identity_disturbance"
	CategoryImpulsivity          Category = "impulsivity"
	CategorySelfHarmIdeation     Category = "self_harm_ideation"
	CategoryAffectiveInstability Category = "affective_instability"
	CategoryEmptiness            Category = "emptiness"
	CategoryAnger                Category = "anger"
	CategoryParanoidIdeation     Category = "paranoid_ideation"
)

// Categories lists all symptom dimensions in presentation order.
func Categories() []Category {
	return []Category{
		CategoryAbandonment,
		CategoryUnstableRelations,
		CategoryIdentityDisturbance,
		CategoryImpulsivity,
		CategorySelfHarmIdeation,
		CategoryAffectiveInstability,
		CategoryEmptiness,
		CategoryAnger,
		CategoryParanoidIdeation,
	}
}

// Question is an immutable item of the inventory. Options are ordered on an
// ordinal scale: the option index is the severity contribution before
// weighting (0 = "never" ... 4 = "always").
type Question struct {
	ID       int      `json:"id"`
	Text     string   `json:"text"`
	Options  []string `json:"options"`
	Category Category `json:"category"`
	Weight   float64  `json:"weight"`
}

// VariantBPD is the only inventory variant currently shipped.
const VariantBPD = "bpd"

var likertOptions = []string{"Never", "Rarely", "Sometimes", "Often", "Always"}

var bpdQuestions = []Question{
	{ID: 1, Text: "I go to great lengths to avoid being abandoned by people close to me.", Category: CategoryAbandonment, Weight: 1.0},
	{ID: 2, Text: "I feel panic when someone important to me is late or unreachable.", Category: CategoryAbandonment, Weight: 1.0},
	{ID: 3, Text: "My close relationships swing between idealizing and devaluing the other person.", Category: CategoryUnstableRelations, Weight: 1.0},
	{ID: 4, Text: "People I care about seem wonderful one day and unbearable the next.", Category: CategoryUnstableRelations, Weight: 1.0},
	{ID: 5, Text: "My sense of who I am changes dramatically depending on who I am with.", Category: CategoryIdentityDisturbance, Weight: 1.0},
	{ID: 6, Text: "My goals, values, or career plans shift suddenly and completely.", Category: CategoryIdentityDisturbance, Weight: 1.0},
	{ID: 7, Text: "I act on impulse in ways that could harm me (spending, driving, substances).", Category: CategoryImpulsivity, Weight: 1.0},
	{ID: 8, Text: "I do risky things without thinking about the consequences.", Category: CategoryImpulsivity, Weight: 1.0},
	{ID: 9, Text: "I have thoughts of hurting myself when things go wrong.", Category: CategorySelfHarmIdeation, Weight: 1.0},
	{ID: 10, Text: "I threaten or attempt to hurt myself during conflicts with others.", Category: CategorySelfHarmIdeation, Weight: 1.0},
	{ID: 11, Text: "My mood shifts sharply within hours, from calm to despair or anxiety.", Category: CategoryAffectiveInstability, Weight: 1.0},
	{ID: 12, Text: "Small events can send my emotions into extremes for the rest of the day.", Category: CategoryAffectiveInstability, Weight: 1.0},
	{ID: 13, Text: "I feel empty inside, as if something essential is missing.", Category: CategoryEmptiness, Weight: 1.0},
	{ID: 14, Text: "I feel chronically bored or hollow even when life is going well.", Category: CategoryEmptiness, Weight: 1.0},
	{ID: 15, Text: "I have intense anger that feels out of proportion and hard to control.", Category: CategoryAnger, Weight: 1.0},
	{ID: 16, Text: "I get into physical fights or break things when I am angry.", Category: CategoryAnger, Weight: 1.0},
	{ID: 17, Text: "Under stress I become suspicious of other people's motives.", Category: CategoryParanoidIdeation, Weight: 1.0},
	{ID: 18, Text: "Under stress I feel detached from myself or from reality.", Category: CategoryParanoidIdeation, Weight: 1.0},
}

func init() {
	for i := range bpdQuestions {
		bpdQuestions[i].Options = likertOptions
	}
}

// Questions returns the ordered question list for a variant. An unknown
// variant is a configuration error, not an expected runtime condition.
func Questions(variant string) ([]Question, error) {
	switch variant {
	case VariantBPD:
		qs := make([]Question, len(bpdQuestions))
		copy(qs, bpdQuestions)
		return qs, nil
	default:
		return nil, fmt.Errorf("unknown quiz variant %q", variant)
	}
}
