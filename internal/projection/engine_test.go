package projection

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"futureself/internal/survey"
)

func neutralAnswers() survey.Answers {
	return survey.Answers{
		survey.QDiet:     survey.NumberAnswer(3),
		survey.QExercise: survey.NumberAnswer(3),
		survey.QStress:   survey.NumberAnswer(3),
		survey.QSmoking:  survey.ChoiceAnswer("no"),
		survey.QAlcohol:  survey.ChoiceAnswer("no"),
	}
}

func basicInfo() survey.BasicInfo {
	return survey.BasicInfo{Age: 30, Height: 68, Weight: 150}
}

func TestProjectNeutralBaseline(t *testing.T) {
	var e Engine
	snap := e.Project(basicInfo(), neutralAnswers(), 10)

	want := Snapshot{
		ProjectedWeight: 152, // +2 lbs metabolism slowdown over a decade
		ProjectedHeight: `5' 8"`,
		BMI:             23.1,
		CalorieIntake:   2127,
		LifeExpectancy:  80,
	}
	if diff := cmp.Diff(want, snap); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestProjectIsDeterministic(t *testing.T) {
	var e Engine
	info := basicInfo()
	answers := neutralAnswers()

	first := e.Project(info, answers, 25)
	for i := 0; i < 5; i++ {
		if diff := cmp.Diff(first, e.Project(info, answers, 25)); diff != "" {
			t.Fatalf("projection is not deterministic (-first +later):\n%s", diff)
		}
	}
}

func TestProjectZeroOffsetBaseline(t *testing.T) {
	var e Engine
	snap := e.Project(basicInfo(), neutralAnswers(), 0)

	if snap.ProjectedWeight != 150 {
		t.Errorf("expected present-day weight 150, got %d", snap.ProjectedWeight)
	}
	if snap.ProjectedHeight != `5' 8"` {
		t.Errorf("expected unchanged height, got %s", snap.ProjectedHeight)
	}
}

func TestProjectNegativeOffset(t *testing.T) {
	var e Engine
	snap := e.Project(basicInfo(), neutralAnswers(), -5)

	// Neutral diet/exercise contribute nothing; the metabolism term runs
	// backwards: 150 - 1 = 149.
	if snap.ProjectedWeight != 149 {
		t.Errorf("expected weight 149 at offset -5, got %d", snap.ProjectedWeight)
	}
}

func TestProjectWeightFloor(t *testing.T) {
	var e Engine
	answers := neutralAnswers()
	answers[survey.QDiet] = survey.NumberAnswer(5)
	answers[survey.QExercise] = survey.NumberAnswer(10)

	// -2 - 3.5 = -5.5 lbs/year over 70 years dwarfs the starting weight.
	snap := e.Project(basicInfo(), answers, 70)
	if snap.ProjectedWeight != MinProjectedWeight {
		t.Errorf("expected weight clamped to %d, got %d", MinProjectedWeight, snap.ProjectedWeight)
	}
}

func TestProjectCalorieFloor(t *testing.T) {
	var e Engine
	info := survey.BasicInfo{Age: 100, Height: 24, Weight: 50}

	snap := e.Project(info, survey.Answers{}, 0)
	if snap.CalorieIntake != MinCalorieIntake {
		t.Errorf("expected calories floored at %d, got %d", MinCalorieIntake, snap.CalorieIntake)
	}
}

func TestProjectHeightShrinksPastForty(t *testing.T) {
	var e Engine
	info := basicInfo()
	answers := neutralAnswers()

	cases := []struct {
		offset int
		want   string
	}{
		{10, `5' 8"`}, // age 40: no shrink yet
		{25, `5' 8"`}, // age 55: one decade past 40 -> 67.5, rounds back up
		{30, `5' 7"`}, // age 60: two decades -> 67
		{50, `5' 6"`}, // age 80: four decades -> 66
	}
	for _, tc := range cases {
		if got := e.Project(info, answers, tc.offset).ProjectedHeight; got != tc.want {
			t.Errorf("offset %d: expected height %s, got %s", tc.offset, tc.want, got)
		}
	}
}

func TestLifeExpectancyAdjustments(t *testing.T) {
	var e Engine
	info := basicInfo()

	cases := []struct {
		name    string
		mutate  func(survey.Answers)
		want    int
	}{
		{"neutral", func(survey.Answers) {}, 80},
		{"heavy smoker", func(a survey.Answers) { a[survey.QSmoking] = survey.ChoiceAnswer("yes") }, 70},
		{"occasional smoker", func(a survey.Answers) { a[survey.QSmoking] = survey.ChoiceAnswer("occasionally") }, 76},
		{"heavy drinker", func(a survey.Answers) { a[survey.QAlcohol] = survey.ChoiceAnswer("heavily") }, 75},
		{"poor diet", func(a survey.Answers) { a[survey.QDiet] = survey.NumberAnswer(1) }, 77},
		{"good diet", func(a survey.Answers) { a[survey.QDiet] = survey.NumberAnswer(5) }, 83},
		{"sedentary", func(a survey.Answers) { a[survey.QExercise] = survey.NumberAnswer(0) }, 76},
		{"very active", func(a survey.Answers) { a[survey.QExercise] = survey.NumberAnswer(6) }, 84},
		{"high stress", func(a survey.Answers) { a[survey.QStress] = survey.NumberAnswer(5) }, 78},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			answers := neutralAnswers()
			tc.mutate(answers)
			if got := e.Project(info, answers, 0).LifeExpectancy; got != tc.want {
				t.Errorf("expected life expectancy %d, got %d", tc.want, got)
			}
		})
	}
}

func TestLifeExpectancyAdjustmentsStack(t *testing.T) {
	var e Engine
	answers := survey.Answers{
		survey.QSmoking:  survey.ChoiceAnswer("yes"), // -10
		survey.QAlcohol:  survey.ChoiceAnswer("heavily"), // -5
		survey.QDiet:     survey.NumberAnswer(1),     // -3
		survey.QExercise: survey.NumberAnswer(0),     // -4
		survey.QStress:   survey.NumberAnswer(5),     // -2
	}
	if got := e.Project(basicInfo(), answers, 0).LifeExpectancy; got != 56 {
		t.Errorf("expected stacked life expectancy 56, got %d", got)
	}
}

func TestProjectMissingAnswersDefaultToMidpoints(t *testing.T) {
	var e Engine
	snap := e.Project(basicInfo(), survey.Answers{}, 10)

	// Absent diet/exercise are treated as the neutral midpoint for the weight
	// drift; absent exercise counts as sedentary for life expectancy.
	if snap.ProjectedWeight != 152 {
		t.Errorf("expected weight 152 with default answers, got %d", snap.ProjectedWeight)
	}
	if snap.LifeExpectancy != 76 {
		t.Errorf("expected life expectancy 76 with no exercise answer, got %d", snap.LifeExpectancy)
	}
}
