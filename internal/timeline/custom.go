package timeline

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// CustomRequest is a user-specified age plus the action to depict.
type CustomRequest struct {
	TargetAge  int
	ActionText string
}

// MaxCustomAge caps custom requests at a reasonable human lifespan.
const MaxCustomAge = 110

var (
	agePattern      = regexp.MustCompile(`(?i)age (\d+)`)
	showMeAtPattern = regexp.MustCompile(`(?i)show me at age \d+`)
	atAgePattern    = regexp.MustCompile(`(?i)at age \d+`)
)

// ParseCustomRequest extracts the target age and action from free text like
// "playing soccer at age 60". Checks run in a fixed order: missing age, age
// not beyond the current age, age beyond life expectancy, age beyond
// MaxCustomAge, and finally an empty action.
func ParseCustomRequest(text string, currentAge, lifeExpectancy int) (CustomRequest, error) {
	m := agePattern.FindStringSubmatch(text)
	if m == nil {
		return CustomRequest{}, errors.New(`no age specified; include one, for example "at age 60"`)
	}
	age, err := strconv.Atoi(m[1])
	if err != nil || age == 0 {
		return CustomRequest{}, errors.New(`no age specified; include one, for example "at age 60"`)
	}

	if age <= currentAge {
		return CustomRequest{}, fmt.Errorf("age %d must be older than the current age of %d", age, currentAge)
	}
	if age > lifeExpectancy {
		return CustomRequest{}, fmt.Errorf("projected life expectancy is %d; cannot generate beyond that age", lifeExpectancy)
	}
	if age > MaxCustomAge {
		return CustomRequest{}, fmt.Errorf("choose an age of %d or younger", MaxCustomAge)
	}

	action := showMeAtPattern.ReplaceAllString(text, "")
	action = atAgePattern.ReplaceAllString(action, "")
	action = strings.TrimSpace(action)
	if action == "" {
		return CustomRequest{}, errors.New(`no activity specified; for example "playing soccer at age 60"`)
	}

	return CustomRequest{TargetAge: age, ActionText: action}, nil
}

// nearestOffsetIndex picks the slot whose offset minimizes the absolute
// difference to years. Ties break toward the lower index because only a
// strictly smaller distance replaces the current best.
func nearestOffsetIndex(offsets []int, years int) int {
	best := 0
	for i, offset := range offsets {
		if abs(offset-years) < abs(offsets[best]-years) {
			best = i
		}
	}
	return best
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
