// Package survey defines the lifestyle survey data model: question catalogs,
// typed answers, and basic-info validation. Answers are produced by the
// presentation layer and consumed read-only by the projection engine and the
// lifestyle classifier.
package survey

// QuestionType identifies the input widget and value shape for a question.
type QuestionType string

const (
	TypeStars      QuestionType = "stars"      // 1-5 rating
	TypeSlider     QuestionType = "slider"     // numeric range
	TypeCheckboxes QuestionType = "checkboxes" // single choice from options
	TypeText       QuestionType = "text"       // free text
	TypeNumber     QuestionType = "number"     // validated numeric entry
)

// ChoiceOption is one selectable option on a checkboxes question.
// Score is declared on the catalog but consumed nowhere yet; the projection
// and classification rules key off the option value only. Reserved.
type ChoiceOption struct {
	Label string
	Value string
	Score int
}

// Question describes one survey question.
type Question struct {
	ID      string
	Text    string
	Type    QuestionType
	Options []ChoiceOption // checkboxes only
	Min     float64
	Max     float64
	Step    float64
	Labels  []string // slider tick labels
	Optional bool
	Placeholder       string
	ValidationMessage string
}

// Answer is one response to a question. Exactly one of Number, Choice, or
// Text carries the value, according to the question's type. Checkbox answers
// are a single selected option value; there is no multi-select.
type Answer struct {
	Number  float64
	Choice  string
	Text    string
	Details string
}

// NumberAnswer builds a numeric answer (stars, slider, number).
func NumberAnswer(v float64) Answer { return Answer{Number: v} }

// ChoiceAnswer builds a single-choice answer (checkboxes).
func ChoiceAnswer(value string) Answer { return Answer{Choice: value} }

// TextAnswer builds a free-text answer.
func TextAnswer(s string) Answer { return Answer{Text: s} }

// Answers holds responses keyed by question id.
type Answers map[string]Answer

// Rating returns the numeric value for id, or def when unanswered.
func (a Answers) Rating(id string, def float64) float64 {
	ans, ok := a[id]
	if !ok {
		return def
	}
	return ans.Number
}

// Choice returns the selected option value for id, or "" when unanswered.
func (a Answers) Choice(id string) string {
	ans, ok := a[id]
	if !ok {
		return ""
	}
	return ans.Choice
}

// Has reports whether the question was answered at all.
func (a Answers) Has(id string) bool {
	_, ok := a[id]
	return ok
}

// Clone returns an independent copy, so callers can hand answers to the
// orchestrator without sharing mutable state.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}
