package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"futureself/internal/survey"
)

// surveyFlags carries the non-interactive survey inputs shared by the
// project, generate, and report subcommands.
type surveyFlags struct {
	age       float64
	height    float64
	weight    float64
	answers   string   // YAML file of question-id -> answer
	overrides []string // repeated key=value flags, applied after the file
}

func (f *surveyFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.age, "age", 0, "Current age in years (required)")
	cmd.Flags().Float64Var(&f.height, "height", 0, "Height in inches (required)")
	cmd.Flags().Float64Var(&f.weight, "weight", 0, "Weight in pounds (required)")
	cmd.Flags().StringVar(&f.answers, "answers", "", "YAML file of survey answers (question id -> value)")
	cmd.Flags().StringArrayVar(&f.overrides, "answer", nil, "Survey answer as id=value (repeatable, overrides the file)")
	_ = cmd.MarkFlagRequired("age")
	_ = cmd.MarkFlagRequired("height")
	_ = cmd.MarkFlagRequired("weight")
}

// parse validates the basic info and assembles the answer set.
func (f *surveyFlags) parse() (survey.BasicInfo, survey.Answers, error) {
	info, err := survey.ParseBasicInfo(f.age, f.height, f.weight)
	if err != nil {
		return survey.BasicInfo{}, nil, err
	}

	answers := survey.Answers{}
	if f.answers != "" {
		loaded, err := loadAnswersFile(f.answers)
		if err != nil {
			return survey.BasicInfo{}, nil, err
		}
		answers = loaded
	}
	for _, kv := range f.overrides {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			return survey.BasicInfo{}, nil, fmt.Errorf("malformed --answer %q, want id=value", kv)
		}
		if err := setAnswer(answers, strings.TrimSpace(key), strings.TrimSpace(value)); err != nil {
			return survey.BasicInfo{}, nil, err
		}
	}
	return info, answers, nil
}

// questionCatalog indexes every quiz question by id.
func questionCatalog() map[string]survey.Question {
	catalog := make(map[string]survey.Question)
	for _, q := range survey.InitialQuestions() {
		catalog[q.ID] = q
	}
	for _, q := range survey.AdditionalQuestions() {
		catalog[q.ID] = q
	}
	return catalog
}

// loadAnswersFile reads a YAML mapping of question id to answer value. A key
// with a "_details" suffix attaches free-text detail to its base answer
// (e.g. smoking_details).
func loadAnswersFile(path string) (survey.Answers, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read answers file %s: %w", path, err)
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse answers file %s: %w", path, err)
	}

	// Deterministic order so the first error is stable.
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	answers := survey.Answers{}
	for _, k := range keys {
		if strings.HasSuffix(k, "_details") {
			continue
		}
		if err := setAnswer(answers, k, stringify(raw[k])); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	for _, k := range keys {
		base, ok := strings.CutSuffix(k, "_details")
		if !ok {
			continue
		}
		ans, ok := answers[base]
		if !ok {
			return nil, fmt.Errorf("%s: %s has no matching %s answer", path, k, base)
		}
		ans.Details = stringify(raw[k])
		answers[base] = ans
	}
	return answers, nil
}

// setAnswer coerces a raw string to the typed answer the question expects.
func setAnswer(answers survey.Answers, id, value string) error {
	q, ok := questionCatalog()[id]
	if !ok {
		return fmt.Errorf("unknown question id %q", id)
	}

	switch q.Type {
	case survey.TypeCheckboxes:
		for _, opt := range q.Options {
			if opt.Value == value {
				answers[id] = survey.ChoiceAnswer(value)
				return nil
			}
		}
		return fmt.Errorf("question %q has no option %q", id, value)
	case survey.TypeText:
		answers[id] = survey.TextAnswer(value)
		return nil
	default:
		n, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("question %q wants a numeric answer, got %q", id, value)
		}
		answers[id] = survey.NumberAnswer(n)
		return nil
	}
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	default:
		return fmt.Sprintf("%v", t)
	}
}
