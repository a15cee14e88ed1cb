// Package lifestyle classifies survey answers into positive and negative
// narrative factors plus a coarse mood bucket. Classification is pure and
// reproducible: factors always appear in the fixed dimension-check order
// (diet, exercise, sleep, smoking, alcohol, hydration, stress, social,
// sunscreen), never in survey-answer order.
package lifestyle

import "futureself/internal/survey"

// Mood is the net lifestyle sentiment bucket, used to steer generation tone.
type Mood string

const (
	MoodContent  Mood = "content"
	MoodNeutral  Mood = "neutral"
	MoodStrained Mood = "strained"
)

// Description returns the facial-expression phrase embedded in prompts.
func (m Mood) Description() string {
	switch m {
	case MoodContent:
		return "a happy and content expression"
	case MoodStrained:
		return "a sad, tired, or stressed expression"
	default:
		return "a neutral expression"
	}
}

// Factors is the classified narrative view of a set of survey answers.
type Factors struct {
	Positive []string
	Negative []string
	Mood     Mood
}

// Classify applies the fixed threshold rules to each recognized dimension.
// Unanswered dimensions contribute nothing. A mood score of >= +3 buckets to
// content, <= -2 to strained, otherwise neutral.
func Classify(answers survey.Answers) Factors {
	var f Factors
	score := 0

	if answers.Has(survey.QDiet) {
		switch v := answers.Rating(survey.QDiet, 3); {
		case v >= 4:
			f.Positive = append(f.Positive, "Maintains a very healthy and balanced diet.")
			score++
		case v <= 2:
			f.Negative = append(f.Negative, "Has a poor diet, likely high in processed foods.")
			score--
		}
	}

	if answers.Has(survey.QExercise) {
		switch v := answers.Rating(survey.QExercise, 0); {
		case v >= 5:
			f.Positive = append(f.Positive, "Exercises frequently and consistently.")
			score += 2
		case v <= 1:
			f.Negative = append(f.Negative, "Leads a sedentary lifestyle with little to no exercise.")
			score--
		}
	}

	if answers.Has(survey.QSleep) {
		switch v := answers.Rating(survey.QSleep, 3); {
		case v >= 4:
			f.Positive = append(f.Positive, "Gets consistent, high-quality sleep.")
			score++
		case v <= 2:
			f.Negative = append(f.Negative, "Suffers from poor sleep quality or insomnia.")
			score -= 2
		}
	}

	// Never-smokers and never-drinkers get no entry at all; any smoking or
	// drinking habit reads as a negative.
	switch answers.Choice(survey.QSmoking) {
	case "yes":
		f.Negative = append(f.Negative, "Is a regular smoker.")
	case "occasionally":
		f.Negative = append(f.Negative, "Is an occasional smoker.")
	}

	switch answers.Choice(survey.QAlcohol) {
	case "heavily":
		f.Negative = append(f.Negative, "Consumes alcohol heavily.")
	case "moderately":
		f.Negative = append(f.Negative, "Consumes alcohol moderately.")
	}

	if answers.Has(survey.QHydration) && answers.Rating(survey.QHydration, 3) <= 2 {
		f.Negative = append(f.Negative, "Is often dehydrated.")
	}

	if answers.Has(survey.QStress) {
		switch v := answers.Rating(survey.QStress, 3); {
		case v >= 4:
			f.Negative = append(f.Negative, "Experiences high levels of chronic stress.")
			score -= 2
		case v <= 2:
			f.Positive = append(f.Positive, "Manages stress effectively.")
			score++
		}
	}

	// Social connection moves the mood without a narrative entry.
	if answers.Has(survey.QSocial) {
		switch v := answers.Rating(survey.QSocial, 3); {
		case v >= 4:
			score += 2
		case v <= 2:
			score--
		}
	}

	if answers.Choice(survey.QSunscreen) == "never" {
		f.Negative = append(f.Negative, "Never wears sunscreen, leading to significant sun damage.")
	}

	switch {
	case score >= 3:
		f.Mood = MoodContent
	case score <= -2:
		f.Mood = MoodStrained
	default:
		f.Mood = MoodNeutral
	}

	return f
}
