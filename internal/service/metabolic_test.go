package service_test

import (
	"math"
	"testing"
	"time"

	"github.com/catapou/contador/internal/model"
	"github.com/catapou/contador/internal/service"
)

func TestBMRMifflinStJeor(t *testing.T) {
	t.Parallel()

	if got := service.BMR(70, 175, 30, model.GenderMan); got != 1648.75 {
		t.Fatalf("expected man BMR 1648.75, got %v", got)
	}
	if got := service.BMR(70, 175, 30, model.GenderWoman); got != 1482.75 {
		t.Fatalf("expected woman BMR 1482.75, got %v", got)
	}
	if got := service.BMR(70, 175, 30, model.Gender("Other")); got != 0 {
		t.Fatalf("expected 0 for unknown gender, got %v", got)
	}
}

func TestTDEERoundsHalfUp(t *testing.T) {
	t.Parallel()

	if got := service.TDEE(1648.75, model.ActivitySedentary); got != 1979 {
		t.Fatalf("expected TDEE 1979, got %d", got)
	}
	cases := map[model.ActivityLevel]int{
		model.ActivityLightlyActive:    1375,
		model.ActivityModeratelyActive: 1550,
		model.ActivityVeryActive:       1725,
		model.ActivityExtraActive:      1900,
		model.ActivityLevel("Couch"):   1200,
	}
	for level, want := range cases {
		if got := service.TDEE(1000, level); got != want {
			t.Fatalf("TDEE(1000, %q) = %d, want %d", level, got, want)
		}
	}
}

func TestRecommendedCaloriesByGoal(t *testing.T) {
	t.Parallel()

	cases := map[model.WeightGoal]int{
		model.GoalLose:           1500,
		model.GoalGain:           2500,
		model.GoalMaintain:       2000,
		model.WeightGoal("Bulk"): 2000,
	}
	for goal, want := range cases {
		if got := service.RecommendedCalories(2000, goal); got != want {
			t.Fatalf("RecommendedCalories(2000, %q) = %d, want %d", goal, got, want)
		}
	}
}

func TestAgeFromDOBUsesCalendarYears(t *testing.T) {
	t.Parallel()

	today := time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)
	cases := map[string]int{
		"15/06/1996": 30,
		"01/01/2000": 26,
		"1996-06-15": 0,
		"15/06/abcd": 0,
		"":           0,
	}
	for dob, want := range cases {
		if got := service.AgeFromDOB(dob, today); got != want {
			t.Fatalf("AgeFromDOB(%q) = %d, want %d", dob, got, want)
		}
	}
}

func TestBMIFormulaAndInvalidInputs(t *testing.T) {
	t.Parallel()

	for _, w := range []float64{45, 70, 82.5, 120} {
		for _, h := range []float64{150, 175, 190.5} {
			got, ok := service.BMI(w, h)
			if !ok {
				t.Fatalf("BMI(%v, %v) unexpectedly invalid", w, h)
			}
			want := w / math.Pow(h/100, 2)
			if math.Abs(got-want) > 1e-9 {
				t.Fatalf("BMI(%v, %v) = %v, want %v", w, h, got, want)
			}
		}
	}
	if _, ok := service.BMI(0, 175); ok {
		t.Fatalf("expected no BMI for weight 0")
	}
	if _, ok := service.BMI(70, 0); ok {
		t.Fatalf("expected no BMI for height 0")
	}
}

func TestClassifyBMIBoundaries(t *testing.T) {
	t.Parallel()

	cases := []struct {
		bmi  float64
		want string
	}{
		{17.9, "Underweight"},
		{18.5, "Normal weight"},
		{24.99, "Normal weight"},
		{25, "Overweight"},
		{29.95, "Overweight"},
		{30, "Obese"},
	}
	for _, tc := range cases {
		if got := service.ClassifyBMI(tc.bmi); got != tc.want {
			t.Fatalf("ClassifyBMI(%v) = %q, want %q", tc.bmi, got, tc.want)
		}
	}
}
