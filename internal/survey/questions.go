package survey

// Question ids recognized by the projection engine and lifestyle classifier.
const (
	QAge       = "age"
	QHeight    = "height"
	QWeight    = "weight"
	QDiet      = "diet"
	QExercise  = "exercise"
	QSleep     = "sleep"
	QOutdoor   = "outdoor"
	QStress    = "stress"
	QHydration = "hydration"
	QSmoking   = "smoking"
	QAlcohol   = "alcohol"
	QSocial    = "social"
	QSummary   = "summary"
	QSunscreen = "sunscreen"
)

// BasicInfoQuestions collects the numeric facts the projection math needs.
func BasicInfoQuestions() []Question {
	return []Question{
		{
			ID:                QAge,
			Text:              "What is your current age?",
			Type:              TypeNumber,
			Placeholder:       "e.g., 30",
			Min:               MinAge,
			Max:               MaxAge,
			ValidationMessage: "Please enter an age between 13 and 100.",
		},
		{
			ID:                QHeight,
			Text:              "What is your height in inches?",
			Type:              TypeNumber,
			Placeholder:       "e.g., 68",
			Min:               MinHeight,
			Max:               MaxHeight,
			ValidationMessage: "Please enter a height between 24 and 96 inches.",
		},
		{
			ID:                QWeight,
			Text:              "What is your weight in pounds (lbs)?",
			Type:              TypeNumber,
			Placeholder:       "e.g., 150",
			Min:               MinWeight,
			Max:               MaxWeight,
			ValidationMessage: "Please enter a weight between 50 and 700 lbs.",
		},
	}
}

// InitialQuestions is the core wellness quiz.
func InitialQuestions() []Question {
	return []Question{
		{
			ID:   QDiet,
			Text: "How would you rate the typical healthiness of your diet?",
			Type: TypeStars,
		},
		{
			ID:     QExercise,
			Text:   "On average, how many hours per week do you engage in moderate to intense exercise?",
			Type:   TypeSlider,
			Min:    0,
			Max:    10,
			Step:   1,
			Labels: []string{"0 hours", "5 hours", "10+ hours"},
		},
		{
			ID:   QSleep,
			Text: "How would you rate your average sleep quality and duration?",
			Type: TypeStars,
		},
		{
			ID:   QOutdoor,
			Text: "How often do you engage in outdoor activities (e.g. walking, hiking, sports)?",
			Type: TypeCheckboxes,
			Options: []ChoiceOption{
				{Label: "Daily", Value: "daily", Score: 5},
				{Label: "A few times a week", Value: "weekly", Score: 3},
				{Label: "Rarely", Value: "rarely", Score: 1},
				{Label: "Never", Value: "never", Score: 0},
			},
		},
		{
			ID:     QStress,
			Text:   "How would you describe your typical stress levels?",
			Type:   TypeSlider,
			Min:    1,
			Max:    5,
			Step:   1,
			Labels: []string{"Very Low", "Moderate", "Very High"},
		},
		{
			ID:   QHydration,
			Text: "How well do you stay hydrated throughout the day?",
			Type: TypeStars,
		},
		{
			ID:   QSmoking,
			Text: "Do you smoke tobacco products?",
			Type: TypeCheckboxes,
			Options: []ChoiceOption{
				{Label: "Never", Value: "no", Score: 5},
				{Label: "Occasionally", Value: "occasionally", Score: 1},
				{Label: "Regularly", Value: "yes", Score: 0},
			},
		},
		{
			ID:   QAlcohol,
			Text: "How often do you consume alcohol?",
			Type: TypeCheckboxes,
			Options: []ChoiceOption{
				{Label: "Never", Value: "no", Score: 5},
				{Label: "1-2 drinks/week", Value: "rarely", Score: 3},
				{Label: "3-5 drinks/week", Value: "moderately", Score: 2},
				{Label: "5+ drinks/week", Value: "heavily", Score: 0},
			},
		},
		{
			ID:   QSocial,
			Text: "How strong is your social connection with friends and family?",
			Type: TypeStars,
		},
		{
			ID:       QSummary,
			Text:     "In a few sentences, describe your general outlook on life and your future.",
			Type:     TypeText,
			Optional: true,
		},
	}
}

// AdditionalQuestions is the optional extended pool the user can pull into the
// quiz for a more detailed picture.
func AdditionalQuestions() []Question {
	return []Question{
		{
			ID:   QSunscreen,
			Text: "How consistently do you use sunscreen on exposed skin?",
			Type: TypeCheckboxes,
			Options: []ChoiceOption{
				{Label: "Always", Value: "always", Score: 5},
				{Label: "Sometimes", Value: "sometimes", Score: 2},
				{Label: "Never", Value: "never", Score: 0},
			},
		},
		{
			ID:     "processed_food",
			Text:   "How much of your diet consists of processed foods?",
			Type:   TypeSlider,
			Min:    1,
			Max:    5,
			Step:   1,
			Labels: []string{"Very Little", "Moderate", "A Lot"},
		},
		{
			ID:   "mental_health",
			Text: "How do you prioritize your mental health?",
			Type: TypeStars,
		},
		{
			ID:   "checkups",
			Text: "How regularly do you attend preventative health checkups?",
			Type: TypeCheckboxes,
			Options: []ChoiceOption{
				{Label: "Yearly", Value: "yearly", Score: 5},
				{Label: "Every few years", Value: "sometimes", Score: 3},
				{Label: "Only when sick", Value: "rarely", Score: 1},
				{Label: "Never", Value: "never", Score: 0},
			},
		},
		{
			ID:   "hobbies",
			Text: "Do you actively engage in hobbies that you enjoy?",
			Type: TypeStars,
		},
		{
			ID:     "caffeine",
			Text:   "How many caffeinated beverages (coffee, tea, soda) do you consume daily?",
			Type:   TypeSlider,
			Min:    0,
			Max:    10,
			Step:   1,
			Labels: []string{"0", "5", "10+"},
		},
		{
			ID:     "screen_time",
			Text:   "How many hours a day do you spend in front of screens (work and leisure)?",
			Type:   TypeSlider,
			Min:    0,
			Max:    16,
			Step:   1,
			Labels: []string{"0-2", "8", "16+"},
		},
		{
			ID:   "relationships",
			Text: "How would you rate the quality of your close relationships?",
			Type: TypeStars,
		},
		{
			ID:   "mindfulness",
			Text: "Do you practice mindfulness or meditation?",
			Type: TypeCheckboxes,
			Options: []ChoiceOption{
				{Label: "Regularly", Value: "regularly", Score: 5},
				{Label: "Occasionally", Value: "occasionally", Score: 3},
				{Label: "Never", Value: "never", Score: 1},
			},
		},
		{
			ID:   "learning",
			Text: "Do you regularly engage in activities that challenge your mind (e.g., learning, puzzles)?",
			Type: TypeStars,
		},
	}
}
