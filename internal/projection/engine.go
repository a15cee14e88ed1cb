// Package projection computes deterministic health-trajectory snapshots from
// survey answers. Project is pure: identical inputs always produce identical
// snapshots, and no input can make it fail; unanswered questions fall back
// to neutral midpoint values.
package projection

import (
	"fmt"
	"math"

	"futureself/internal/survey"
)

// BaselineLifeExpectancy is the starting point before lifestyle adjustments.
const BaselineLifeExpectancy = 80

// MinProjectedWeight clamps the weight projection to a realistic floor.
const MinProjectedWeight = 80

// MinCalorieIntake floors the daily calorie estimate.
const MinCalorieIntake = 1200

// Snapshot is an immutable health projection for one future offset.
type Snapshot struct {
	ProjectedWeight int     // pounds
	ProjectedHeight string  // formatted feet/inches, e.g. `5' 8"`
	BMI             float64 // one decimal
	CalorieIntake   int     // kcal/day
	LifeExpectancy  int     // years of age
}

// Engine projects future health state. It carries no state; the zero value is
// ready to use.
type Engine struct{}

// Project maps basic info plus survey answers to the snapshot at
// yearsOffset from the present. Offset 0 is the present-day baseline;
// negative offsets are accepted and follow the same formulas.
func (Engine) Project(info survey.BasicInfo, answers survey.Answers, yearsOffset int) Snapshot {
	futureAge := info.Age + yearsOffset

	life := lifeExpectancy(answers)

	// Weight drifts with diet and exercise relative to the neutral midpoint,
	// plus roughly 2 lbs per decade of slowing metabolism.
	dietScore := answers.Rating(survey.QDiet, 3) - 3
	exerciseScore := answers.Rating(survey.QExercise, 3) - 3
	metabolismSlowdown := float64(yearsOffset) / 10 * 2
	weightChangePerYear := -dietScore - 0.5*exerciseScore
	projectedWeight := info.Weight + weightChangePerYear*float64(yearsOffset) + metabolismSlowdown
	projectedWeight = math.Round(math.Max(MinProjectedWeight, projectedWeight))

	// Height holds until 40, then shrinks half an inch per completed decade.
	heightInches := info.Height
	if futureAge > 40 {
		heightInches -= math.Floor(float64(futureAge-40)/10) * 0.5
	}

	bmi := math.Round(projectedWeight/(heightInches*heightInches)*703*10) / 10

	// Mifflin-St Jeor BMR on metric conversions of the projected body, scaled
	// by an activity multiplier from weekly exercise hours.
	bmr := 10*(projectedWeight/2.2) + 6.25*(heightInches*2.54) - 5*float64(futureAge) + 5
	activity := 1.2 + 0.05*answers.Rating(survey.QExercise, 0)
	calories := math.Round(math.Max(MinCalorieIntake, bmr*activity))

	return Snapshot{
		ProjectedWeight: int(projectedWeight),
		ProjectedHeight: formatHeight(heightInches),
		BMI:             bmi,
		CalorieIntake:   int(calories),
		LifeExpectancy:  life,
	}
}

// lifeExpectancy sums the independent additive adjustments. The deltas are
// order-independent; each triggers on its own threshold.
func lifeExpectancy(answers survey.Answers) int {
	life := BaselineLifeExpectancy

	switch answers.Choice(survey.QSmoking) {
	case "yes":
		life -= 10
	case "occasionally":
		life -= 4
	}
	if answers.Choice(survey.QAlcohol) == "heavily" {
		life -= 5
	}
	if answers.Rating(survey.QDiet, 3) <= 2 {
		life -= 3
	}
	if answers.Rating(survey.QDiet, 3) >= 4 {
		life += 3
	}
	if answers.Rating(survey.QExercise, 0) <= 1 {
		life -= 4
	}
	if answers.Rating(survey.QExercise, 0) >= 5 {
		life += 4
	}
	if answers.Rating(survey.QStress, 3) >= 4 {
		life -= 2
	}

	return life
}

// formatHeight renders inches as a feet/inches string, e.g. `5' 8"`.
func formatHeight(inches float64) string {
	feet := int(math.Floor(inches / 12))
	rem := int(math.Round(math.Mod(inches, 12)))
	return fmt.Sprintf("%d' %d\"", feet, rem)
}
