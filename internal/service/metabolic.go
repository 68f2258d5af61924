package service

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/catapou/contador/internal/model"
)

const goalCalorieOffset = 500

var activityFactors = map[model.ActivityLevel]float64{
	model.ActivitySedentary:        1.2,
	model.ActivityLightlyActive:    1.375,
	model.ActivityModeratelyActive: 1.55,
	model.ActivityVeryActive:       1.725,
	model.ActivityExtraActive:      1.9,
}

// BMR implements the Mifflin-St Jeor equation. Any gender other than Man or
// Woman yields 0.
func BMR(weightKg, heightCm float64, ageYears int, gender model.Gender) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*float64(ageYears)
	switch gender {
	case model.GenderMan:
		return base + 5
	case model.GenderWoman:
		return base - 161
	default:
		return 0
	}
}

// AgeFromDOB returns the calendar-year difference between today and the year
// of a DD/MM/YYYY date of birth. Whether the birthday already happened this
// year is not considered.
func AgeFromDOB(dob string, today time.Time) int {
	parts := strings.Split(dob, "/")
	if len(parts) != 3 {
		return 0
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return 0
	}
	return today.Year() - year
}

// ActivityFactor falls back to the sedentary factor for unknown levels.
func ActivityFactor(level model.ActivityLevel) float64 {
	if f, ok := activityFactors[level]; ok {
		return f
	}
	return activityFactors[model.ActivitySedentary]
}

func TDEE(bmr float64, level model.ActivityLevel) int {
	return roundHalfUp(bmr * ActivityFactor(level))
}

func RecommendedCalories(tdee int, goal model.WeightGoal) int {
	switch goal {
	case model.GoalLose:
		return tdee - goalCalorieOffset
	case model.GoalGain:
		return tdee + goalCalorieOffset
	default:
		return tdee
	}
}

// BMI returns false when weight or height is not positive.
func BMI(weightKg, heightCm float64) (float64, bool) {
	if weightKg <= 0 || heightCm <= 0 {
		return 0, false
	}
	m := heightCm / 100
	return weightKg / (m * m), true
}

func ClassifyBMI(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal weight"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}

// roundHalfUp saturates at the int range instead of wrapping.
func roundHalfUp(v float64) int {
	r := math.Floor(v + 0.5)
	switch {
	case math.IsNaN(r):
		return 0
	case r >= math.MaxInt:
		return math.MaxInt
	case r <= math.MinInt:
		return math.MinInt
	default:
		return int(r)
	}
}
