package service

import (
	"fmt"

	"github.com/catapou/contador/internal/model"
)

// ScaleRecipe turns a per-100g recipe into an absolute meal for the given
// grams. Integer nutrients are rounded half up; salt is kept unrounded.
// The result has no identifier; the Tracker assigns one when logging it.
func ScaleRecipe(recipe model.Recipe, grams float64) model.Meal {
	scaleInt := func(v int) int {
		return roundHalfUp(float64(v) * grams / 100)
	}
	return model.Meal{
		Name: fmt.Sprintf("%s (%dg)", recipe.Name, roundHalfUp(grams)),
		NutrientProfile: model.NutrientProfile{
			Calories: scaleInt(recipe.Calories),
			Protein:  scaleInt(recipe.Protein),
			Carbs:    scaleInt(recipe.Carbs),
			Fats:     scaleInt(recipe.Fats),
			Salt:     recipe.Salt * grams / 100,
			Fiber:    scaleInt(recipe.Fiber),
			Polyols:  scaleInt(recipe.Polyols),
			Starch:   scaleInt(recipe.Starch),
		},
	}
}
