package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/catapou/contador/internal/model"
)

const dobLayout = "02/01/2006"

// Upper bounds of the form fields.
const (
	maxGrams      = 10000
	maxWeightKg   = 650
	maxHeightCm   = 300
	maxAgeYears   = 150
	maxNutrient   = 100000
	maxDailyLimit = 100000
)

// MealForm carries the raw text fields of the meal and recipe forms.
type MealForm struct {
	Name     string
	Calories string
	Protein  string
	Carbs    string
	Fats     string
	Salt     string
	Fiber    string
	Polyols  string
	Starch   string
}

type ProfileForm struct {
	DOB           string
	Weight        string
	Height        string
	ActivityLevel string
	Gender        string
}

// BodyMetrics is the numeric view of a stored profile. Unparsable values are 0.
type BodyMetrics struct {
	WeightKg      float64
	HeightCm      float64
	AgeYears      int
	Gender        model.Gender
	ActivityLevel model.ActivityLevel
}

// Complete reports whether the metrics can feed the calorie recommendation.
// Out-of-range values read back from the store count as missing.
func (m BodyMetrics) Complete() bool {
	return m.WeightKg > 0 && m.WeightKg <= maxWeightKg &&
		m.HeightCm > 0 && m.HeightCm <= maxHeightCm &&
		m.AgeYears > 0 && m.AgeYears <= maxAgeYears &&
		strings.TrimSpace(string(m.Gender)) != ""
}

func ParseMealForm(f MealForm) model.Meal {
	return model.Meal{
		Name:            strings.TrimSpace(f.Name),
		NutrientProfile: parseNutrients(f),
	}
}

func ParseRecipeForm(f MealForm) model.Recipe {
	return model.Recipe{
		Name:            strings.TrimSpace(f.Name),
		NutrientProfile: parseNutrients(f),
	}
}

func parseNutrients(f MealForm) model.NutrientProfile {
	return model.NutrientProfile{
		Calories: intOrZero(f.Calories),
		Protein:  intOrZero(f.Protein),
		Carbs:    intOrZero(f.Carbs),
		Fats:     intOrZero(f.Fats),
		Salt:     floatOrZero(f.Salt),
		Fiber:    intOrZero(f.Fiber),
		Polyols:  intOrZero(f.Polyols),
		Starch:   intOrZero(f.Starch),
	}
}

// ValidateMeal is the gate applied before a meal is added or replaced.
func ValidateMeal(m model.Meal) error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("%w: meal name is required", ErrInvalidMeal)
	}
	if m.Calories <= 0 {
		return fmt.Errorf("%w: calories must be > 0", ErrInvalidMeal)
	}
	if m.Calories > maxNutrient {
		return fmt.Errorf("%w: calories must be <= %d", ErrInvalidMeal, maxNutrient)
	}
	return validateNutrients(ErrInvalidMeal, m.NutrientProfile)
}

func ValidateRecipe(r model.Recipe) error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: recipe name is required", ErrInvalidRecipe)
	}
	if r.Calories <= 0 {
		return fmt.Errorf("%w: calories must be > 0", ErrInvalidRecipe)
	}
	if r.Calories > maxNutrient {
		return fmt.Errorf("%w: calories must be <= %d", ErrInvalidRecipe, maxNutrient)
	}
	return validateNutrients(ErrInvalidRecipe, r.NutrientProfile)
}

func validateNutrients(kind error, p model.NutrientProfile) error {
	ints := []struct {
		name  string
		value int
	}{
		{"protein", p.Protein},
		{"carbs", p.Carbs},
		{"fats", p.Fats},
		{"fiber", p.Fiber},
		{"polyols", p.Polyols},
		{"starch", p.Starch},
	}
	for _, f := range ints {
		if err := validateNonNegativeInt(kind, f.name, f.value); err != nil {
			return err
		}
		if f.value > maxNutrient {
			return fmt.Errorf("%w: %s must be <= %d", kind, f.name, maxNutrient)
		}
	}
	if err := validateNonNegativeFloat(kind, "salt", p.Salt); err != nil {
		return err
	}
	if p.Salt > maxNutrient {
		return fmt.Errorf("%w: salt must be <= %d", kind, maxNutrient)
	}
	return nil
}

// ParseGrams parses the quantity field of the recipe quantity form.
func ParseGrams(text string) (float64, error) {
	g := floatOrZero(text)
	if g <= 0 {
		return 0, fmt.Errorf("%w: grams must be a number > 0, got %q", ErrInvalidQuantity, text)
	}
	if g > maxGrams {
		return 0, fmt.Errorf("%w: grams must be <= %d, got %q", ErrInvalidQuantity, maxGrams, text)
	}
	return g, nil
}

func ParseDailyLimit(text string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number", ErrInvalidLimit, text)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: limit must be >= 0", ErrInvalidLimit)
	}
	if v > maxDailyLimit {
		return 0, fmt.Errorf("%w: limit must be <= %d", ErrInvalidLimit, maxDailyLimit)
	}
	return v, nil
}

func ParseWeightGoal(text string) (model.WeightGoal, error) {
	n := normalizeName(text)
	for _, g := range model.WeightGoals {
		full := normalizeName(string(g))
		if n == full || n == strings.TrimSuffix(full, " weight") {
			return g, nil
		}
	}
	return "", fmt.Errorf("%w: %q (use maintain, lose or gain)", ErrInvalidGoal, text)
}

func ParseActivityLevel(text string) (model.ActivityLevel, error) {
	n := strings.ReplaceAll(normalizeName(text), "-", " ")
	n = strings.ReplaceAll(n, "_", " ")
	if n == "" {
		return model.ActivitySedentary, nil
	}
	for _, l := range model.ActivityLevels {
		if n == normalizeName(string(l)) {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: unknown activity level %q", ErrInvalidProfile, text)
}

func ParseGender(text string) (model.Gender, error) {
	n := normalizeName(text)
	for _, g := range model.Genders {
		if n == normalizeName(string(g)) {
			return g, nil
		}
	}
	return "", fmt.Errorf("%w: gender must be Man or Woman, got %q", ErrInvalidProfile, text)
}

// ParseProfileForm validates the onboarding form. A blank activity level
// selects Sedentary, the form's default choice.
func ParseProfileForm(f ProfileForm) (model.UserInfo, error) {
	dob := strings.TrimSpace(f.DOB)
	if len(dob) != len(dobLayout) || dob[2] != '/' || dob[5] != '/' {
		return model.UserInfo{}, fmt.Errorf("%w: date of birth %q (expected DD/MM/YYYY)", ErrInvalidProfile, f.DOB)
	}
	if _, err := time.Parse(dobLayout, dob); err != nil {
		return model.UserInfo{}, fmt.Errorf("%w: date of birth %q (expected DD/MM/YYYY)", ErrInvalidProfile, f.DOB)
	}
	weight := strings.TrimSpace(f.Weight)
	if w := floatOrZero(weight); w <= 0 || w > maxWeightKg {
		return model.UserInfo{}, fmt.Errorf("%w: weight must be a number in (0, %d] kg", ErrInvalidProfile, maxWeightKg)
	}
	height := strings.TrimSpace(f.Height)
	if h := floatOrZero(height); h <= 0 || h > maxHeightCm {
		return model.UserInfo{}, fmt.Errorf("%w: height must be a number in (0, %d] cm", ErrInvalidProfile, maxHeightCm)
	}
	level, err := ParseActivityLevel(f.ActivityLevel)
	if err != nil {
		return model.UserInfo{}, err
	}
	gender, err := ParseGender(f.Gender)
	if err != nil {
		return model.UserInfo{}, err
	}
	return model.UserInfo{
		DOB:           dob,
		Weight:        weight,
		Height:        height,
		ActivityLevel: string(level),
		Gender:        string(gender),
	}, nil
}

func MetricsFromProfile(info model.UserInfo, today time.Time) BodyMetrics {
	return BodyMetrics{
		WeightKg:      floatOrZero(info.Weight),
		HeightCm:      floatOrZero(info.Height),
		AgeYears:      AgeFromDOB(info.DOB, today),
		Gender:        model.Gender(info.Gender),
		ActivityLevel: model.ActivityLevel(info.ActivityLevel),
	}
}

func intOrZero(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}

func floatOrZero(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
