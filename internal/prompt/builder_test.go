package prompt

import (
	"strings"
	"testing"

	"futureself/internal/lifestyle"
	"futureself/internal/projection"
	"futureself/internal/survey"
)

var testInfo = survey.BasicInfo{Age: 30, Height: 68, Weight: 150}

var testSnap = projection.Snapshot{
	ProjectedWeight: 152,
	ProjectedHeight: `5' 8"`,
	BMI:             23.1,
	CalorieIntake:   2127,
	LifeExpectancy:  80,
}

func TestBuildIntervalContents(t *testing.T) {
	factors := lifestyle.Factors{
		Positive: []string{"Exercises frequently and consistently."},
		Negative: []string{"Is a regular smoker."},
		Mood:     lifestyle.MoodNeutral,
	}
	p := BuildInterval(testInfo, testSnap, factors, 10)

	for _, want := range []string{
		"10 years in the future (at age 40)",
		"- Current Age: 30",
		"- Future Age: 40",
		"Approximately 152 lbs.",
		"- Exercises frequently and consistently.",
		"- Is a regular smoker.",
		"neutral gray studio setting",
		"full-body shot",
		"Do not create any violent, graphic, or disturbing content.",
	} {
		if !strings.Contains(p, want) {
			t.Errorf("interval prompt missing %q", want)
		}
	}

	// Interval mode never mentions mood.
	if strings.Contains(p, "Mood/Expression") {
		t.Error("interval prompt should not carry a mood line")
	}
}

func TestBuildIntervalEmptyFactors(t *testing.T) {
	p := BuildInterval(testInfo, testSnap, lifestyle.Factors{Mood: lifestyle.MoodNeutral}, 5)

	if strings.Count(p, "- None specified.") != 2 {
		t.Error("expected a placeholder for both empty factor lists")
	}
}

func TestBuildCustomContents(t *testing.T) {
	factors := lifestyle.Factors{
		Positive: []string{"Maintains a very healthy and balanced diet."},
		Mood:     lifestyle.MoodContent,
	}
	p := BuildCustom(testInfo, testSnap, factors, 60, "playing soccer")

	for _, want := range []string{
		"at age 60",
		"depicted **playing soccer**",
		"- Future Age: 60",
		"- General Mood/Expression: a happy and content expression",
		"- Maintains a very healthy and balanced diet.",
		`setting that makes sense for the action "playing soccer"`,
		"full-body shot",
		"Do not create any violent, graphic, or disturbing content.",
	} {
		if !strings.Contains(p, want) {
			t.Errorf("custom prompt missing %q", want)
		}
	}

	if strings.Contains(p, "studio setting") {
		t.Error("custom prompt should not fix the studio backdrop")
	}
}

func TestBuildIsPure(t *testing.T) {
	factors := lifestyle.Factors{Mood: lifestyle.MoodStrained}
	a := BuildCustom(testInfo, testSnap, factors, 75, "hiking a mountain")
	b := BuildCustom(testInfo, testSnap, factors, 75, "hiking a mountain")
	if a != b {
		t.Error("identical inputs must produce identical prompts")
	}
}
