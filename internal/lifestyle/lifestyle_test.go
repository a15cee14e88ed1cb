package lifestyle

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"futureself/internal/survey"
)

func TestClassifyEmptyAnswers(t *testing.T) {
	f := Classify(survey.Answers{})

	if len(f.Positive) != 0 || len(f.Negative) != 0 {
		t.Errorf("expected no factors for empty answers, got +%v -%v", f.Positive, f.Negative)
	}
	if f.Mood != MoodNeutral {
		t.Errorf("expected neutral mood, got %s", f.Mood)
	}
}

func TestClassifyHealthyProfile(t *testing.T) {
	answers := survey.Answers{
		survey.QDiet:     survey.NumberAnswer(5),
		survey.QExercise: survey.NumberAnswer(7),
		survey.QSleep:    survey.NumberAnswer(4),
		survey.QStress:   survey.NumberAnswer(1),
		survey.QSocial:   survey.NumberAnswer(5),
		survey.QSmoking:  survey.ChoiceAnswer("no"),
		survey.QAlcohol:  survey.ChoiceAnswer("no"),
	}
	f := Classify(answers)

	wantPositive := []string{
		"Maintains a very healthy and balanced diet.",
		"Exercises frequently and consistently.",
		"Gets consistent, high-quality sleep.",
		"Manages stress effectively.",
	}
	if diff := cmp.Diff(wantPositive, f.Positive); diff != "" {
		t.Errorf("positive factors mismatch (-want +got):\n%s", diff)
	}
	if len(f.Negative) != 0 {
		t.Errorf("expected no negative factors, got %v", f.Negative)
	}
	// +1 +2 +1 +1 +2 = 7
	if f.Mood != MoodContent {
		t.Errorf("expected content mood, got %s", f.Mood)
	}
}

func TestClassifyUnhealthyProfile(t *testing.T) {
	answers := survey.Answers{
		survey.QDiet:      survey.NumberAnswer(1),
		survey.QExercise:  survey.NumberAnswer(0),
		survey.QSleep:     survey.NumberAnswer(1),
		survey.QSmoking:   survey.ChoiceAnswer("yes"),
		survey.QAlcohol:   survey.ChoiceAnswer("heavily"),
		survey.QHydration: survey.NumberAnswer(1),
		survey.QStress:    survey.NumberAnswer(5),
		survey.QSocial:    survey.NumberAnswer(1),
		survey.QSunscreen: survey.ChoiceAnswer("never"),
	}
	f := Classify(answers)

	// Fixed dimension-check order, not answer order.
	wantNegative := []string{
		"Has a poor diet, likely high in processed foods.",
		"Leads a sedentary lifestyle with little to no exercise.",
		"Suffers from poor sleep quality or insomnia.",
		"Is a regular smoker.",
		"Consumes alcohol heavily.",
		"Is often dehydrated.",
		"Experiences high levels of chronic stress.",
		"Never wears sunscreen, leading to significant sun damage.",
	}
	if diff := cmp.Diff(wantNegative, f.Negative); diff != "" {
		t.Errorf("negative factors mismatch (-want +got):\n%s", diff)
	}
	if f.Mood != MoodStrained {
		t.Errorf("expected strained mood, got %s", f.Mood)
	}
}

func TestClassifyModerateHabitsStillNegative(t *testing.T) {
	answers := survey.Answers{
		survey.QSmoking: survey.ChoiceAnswer("occasionally"),
		survey.QAlcohol: survey.ChoiceAnswer("moderately"),
	}
	f := Classify(answers)

	wantNegative := []string{
		"Is an occasional smoker.",
		"Consumes alcohol moderately.",
	}
	if diff := cmp.Diff(wantNegative, f.Negative); diff != "" {
		t.Errorf("negative factors mismatch (-want +got):\n%s", diff)
	}
	// Smoking and alcohol carry no mood delta.
	if f.Mood != MoodNeutral {
		t.Errorf("expected neutral mood, got %s", f.Mood)
	}
}

func TestMoodBoundaries(t *testing.T) {
	cases := []struct {
		name    string
		answers survey.Answers
		want    Mood
	}{
		{
			// +2 exercise, +1 diet = exactly 3
			"score three is content",
			survey.Answers{
				survey.QDiet:     survey.NumberAnswer(4),
				survey.QExercise: survey.NumberAnswer(5),
			},
			MoodContent,
		},
		{
			// -2 from poor sleep alone
			"score minus two is strained",
			survey.Answers{survey.QSleep: survey.NumberAnswer(1)},
			MoodStrained,
		},
		{
			// +2 from social alone stays neutral
			"score two is neutral",
			survey.Answers{survey.QSocial: survey.NumberAnswer(5)},
			MoodNeutral,
		},
		{
			// -1 from weak social stays neutral
			"score minus one is neutral",
			survey.Answers{survey.QSocial: survey.NumberAnswer(1)},
			MoodNeutral,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.answers).Mood; got != tc.want {
				t.Errorf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestMoodDescriptions(t *testing.T) {
	cases := map[Mood]string{
		MoodContent:  "a happy and content expression",
		MoodNeutral:  "a neutral expression",
		MoodStrained: "a sad, tired, or stressed expression",
	}
	for mood, want := range cases {
		if got := mood.Description(); got != want {
			t.Errorf("%s: expected %q, got %q", mood, want, got)
		}
	}
}
