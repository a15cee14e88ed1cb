package survey

import "fmt"

// Valid ranges for the basic-info answers. The projection engine assumes its
// inputs have already passed these checks.
const (
	MinAge    = 13
	MaxAge    = 100
	MinHeight = 24 // inches
	MaxHeight = 96
	MinWeight = 50 // pounds
	MaxWeight = 700
)

// BasicInfo holds the validated numeric facts about the subject.
type BasicInfo struct {
	Age    int     // years
	Height float64 // inches
	Weight float64 // pounds
}

// ValidationError reports an out-of-range basic-info field.
type ValidationError struct {
	Field   string
	Value   float64
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %g: %s", e.Field, e.Value, e.Message)
}

// ParseBasicInfo validates the three required numeric answers and returns the
// typed result. The first out-of-range field wins, checked in catalog order.
func ParseBasicInfo(age, height, weight float64) (BasicInfo, error) {
	if age < MinAge || age > MaxAge {
		return BasicInfo{}, &ValidationError{Field: "age", Value: age,
			Message: fmt.Sprintf("must be between %d and %d", MinAge, MaxAge)}
	}
	if height < MinHeight || height > MaxHeight {
		return BasicInfo{}, &ValidationError{Field: "height", Value: height,
			Message: fmt.Sprintf("must be between %d and %d inches", MinHeight, MaxHeight)}
	}
	if weight < MinWeight || weight > MaxWeight {
		return BasicInfo{}, &ValidationError{Field: "weight", Value: weight,
			Message: fmt.Sprintf("must be between %d and %d lbs", MinWeight, MaxWeight)}
	}
	return BasicInfo{Age: int(age), Height: height, Weight: weight}, nil
}
