package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"futureself/internal/survey"
)

func writeAnswersFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "answers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAnswersFile(t *testing.T) {
	path := writeAnswersFile(t, `
diet: 4
exercise: 6
stress: 2
smoking: "no"
alcohol: rarely
summary: Feeling hopeful about the future.
smoking_details: quit five years ago
`)
	answers, err := loadAnswersFile(path)
	require.NoError(t, err)

	assert.Equal(t, 4.0, answers.Rating(survey.QDiet, 0))
	assert.Equal(t, 6.0, answers.Rating(survey.QExercise, 0))
	assert.Equal(t, 2.0, answers.Rating(survey.QStress, 0))
	assert.Equal(t, "no", answers.Choice(survey.QSmoking))
	assert.Equal(t, "rarely", answers.Choice(survey.QAlcohol))
	assert.Equal(t, "Feeling hopeful about the future.", answers[survey.QSummary].Text)
	assert.Equal(t, "quit five years ago", answers[survey.QSmoking].Details)
}

func TestLoadAnswersFileRejectsUnknownQuestion(t *testing.T) {
	path := writeAnswersFile(t, "favorite_color: blue\n")
	_, err := loadAnswersFile(path)
	assert.ErrorContains(t, err, "unknown question id")
}

func TestLoadAnswersFileRejectsBadChoice(t *testing.T) {
	path := writeAnswersFile(t, "smoking: sometimes\n")
	_, err := loadAnswersFile(path)
	assert.ErrorContains(t, err, "no option")
}

func TestLoadAnswersFileRejectsOrphanDetails(t *testing.T) {
	path := writeAnswersFile(t, "smoking_details: quit years ago\n")
	_, err := loadAnswersFile(path)
	assert.ErrorContains(t, err, "no matching")
}

func TestSetAnswerCoercion(t *testing.T) {
	answers := survey.Answers{}

	require.NoError(t, setAnswer(answers, survey.QDiet, "5"))
	assert.Equal(t, 5.0, answers.Rating(survey.QDiet, 0))

	assert.Error(t, setAnswer(answers, survey.QDiet, "high"))
	require.NoError(t, setAnswer(answers, survey.QOutdoor, "weekly"))
	assert.Equal(t, "weekly", answers.Choice(survey.QOutdoor))
}

func TestSurveyFlagsOverridesFile(t *testing.T) {
	path := writeAnswersFile(t, "diet: 2\n")
	f := surveyFlags{
		age:       30,
		height:    68,
		weight:    150,
		answers:   path,
		overrides: []string{"diet=5"},
	}
	info, answers, err := f.parse()
	require.NoError(t, err)
	assert.Equal(t, 30, info.Age)
	assert.Equal(t, 5.0, answers.Rating(survey.QDiet, 0))
}

func TestSurveyFlagsRejectsMalformedOverride(t *testing.T) {
	f := surveyFlags{age: 30, height: 68, weight: 150, overrides: []string{"diet"}}
	_, _, err := f.parse()
	assert.ErrorContains(t, err, "malformed")
}
