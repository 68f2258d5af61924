package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidMeal     = errors.New("invalid meal")
	ErrInvalidRecipe   = errors.New("invalid recipe")
	ErrInvalidProfile  = errors.New("invalid profile")
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrInvalidLimit    = errors.New("invalid daily limit")
	ErrInvalidGoal     = errors.New("invalid weight goal")
	ErrInvalidDate     = errors.New("invalid date")
	ErrMealNotFound    = errors.New("meal not found")
	ErrRecipeNotFound  = errors.New("recipe not found")
)

func validateNonNegativeInt(kind error, name string, value int) error {
	if value < 0 {
		return fmt.Errorf("%w: %s must be >= 0", kind, name)
	}
	return nil
}

func validateNonNegativeFloat(kind error, name string, value float64) error {
	if value < 0 {
		return fmt.Errorf("%w: %s must be >= 0", kind, name)
	}
	return nil
}

func normalizeName(name string) string {
	return strings.TrimSpace(strings.ToLower(name))
}
