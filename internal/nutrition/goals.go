package nutrition

import (
	"math"
	"time"
)

// Sentinel values for unset profile fields, shared with the profile decoder.
const (
	NotSet = "Not Set"

	ActivitySedentary       = "sedentary"
	ActivityLight           = "lightly active"
	ActivityModerate        = "moderately active"
	ActivityVery            = "very active"
	ActivityExtremelyActive = "extremely active"

	GoalLose     = "lose"
	GoalMaintain = "maintain"
	GoalGain     = "gain"

	SexMale   = "male"
	SexFemale = "female"
)

const (
	poundsToKg     = 0.45359237
	inchesToCm     = 2.54
	goalAdjustment = 300 // kcal, subtracted for lose, added for gain
)

var activityFactors = map[string]float64{
	ActivitySedentary:       1.2,
	ActivityLight:           1.375,
	ActivityModerate:        1.55,
	ActivityVery:            1.725,
	ActivityExtremelyActive: 1.9,
}

// DefaultGoals is the bundle used whenever any calculator input is missing.
var DefaultGoals = Goals{
	Calories: 2000,
	Protein:  150,
	Carbs:    200,
	Fat:      67,
}

// Goals are daily calorie and macro targets, whole kcal and grams.
type Goals struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

// Inputs are the profile attributes the calculator needs. Weight is in
// pounds, height in inches; string fields use the NotSet sentinel when the
// profile has no value yet.
type Inputs struct {
	DateOfBirth   time.Time
	WeightLb      float64
	HeightIn      float64
	Sex           string
	ActivityLevel string
	Goal          string
}

// Calculate derives daily calorie and macro targets from profile attributes
// via the Mifflin-St Jeor basal metabolic rate formula. It fails closed: any
// missing or unusable input yields DefaultGoals, never an error.
func Calculate(in Inputs, now time.Time) Goals {
	if in.WeightLb <= 0 || in.HeightIn <= 0 {
		return DefaultGoals
	}
	if isUnset(in.Sex) || isUnset(in.Goal) {
		return DefaultGoals
	}
	if in.DateOfBirth.IsZero() || !in.DateOfBirth.Before(now) {
		return DefaultGoals
	}
	activityFactor, ok := activityFactors[in.ActivityLevel]
	if !ok {
		return DefaultGoals
	}

	weightKg := in.WeightLb * poundsToKg
	heightCm := in.HeightIn * inchesToCm
	age := ageAt(in.DateOfBirth, now)

	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if in.Sex == SexFemale {
		bmr -= 161
	} else {
		bmr += 5
	}

	energy := bmr * activityFactor
	switch in.Goal {
	case GoalLose:
		energy -= goalAdjustment
	case GoalGain:
		energy += goalAdjustment
	}

	calories := int(math.Round(energy))
	return Goals{
		Calories: calories,
		// 30% protein / 30% fat / 40% carbs; 4 kcal per gram of protein
		// and carbs, 9 kcal per gram of fat
		Protein: int(math.Round(float64(calories) * 0.30 / 4)),
		Fat:     int(math.Round(float64(calories) * 0.30 / 9)),
		Carbs:   int(math.Round(float64(calories) * 0.40 / 4)),
	}
}

func isUnset(s string) bool {
	return s == "" || s == NotSet
}

func ageAt(dateOfBirth, now time.Time) int {
	age := now.Year() - dateOfBirth.Year()
	if now.YearDay() < dateOfBirth.YearDay() {
		age--
	}
	return age
}
