package service

import "github.com/catapou/contador/internal/model"

// SumNutrients returns the field-wise total of the given meals.
func SumNutrients(meals []model.Meal) model.NutrientProfile {
	var total model.NutrientProfile
	for _, m := range meals {
		total = total.Add(m.NutrientProfile)
	}
	return total
}

func SumCalories(meals []model.Meal) int {
	total := 0
	for _, m := range meals {
		total += m.Calories
	}
	return total
}

// NutrientLine is one row of the full nutrient summary view.
type NutrientLine struct {
	Label string
	Value float64
	Unit  string
	// Decimal marks values rendered with one decimal place.
	Decimal bool
}

func NutrientLines(p model.NutrientProfile) []NutrientLine {
	return []NutrientLine{
		{Label: "Calories", Value: float64(p.Calories), Unit: "Kcal"},
		{Label: "Protein", Value: float64(p.Protein), Unit: "g"},
		{Label: "Carbohydrates", Value: float64(p.Carbs), Unit: "g"},
		{Label: "Fats", Value: float64(p.Fats), Unit: "g"},
		{Label: "Salt", Value: p.Salt, Unit: "g", Decimal: true},
		{Label: "Fiber", Value: float64(p.Fiber), Unit: "g"},
		{Label: "Polyols", Value: float64(p.Polyols), Unit: "g"},
		{Label: "Starch", Value: float64(p.Starch), Unit: "g"},
	}
}
