package model

// NutrientProfile holds the nutrient quantities shared by meals and recipes.
// For a Recipe every field is per 100 grams; for a Meal it is absolute.
type NutrientProfile struct {
	Calories int     `json:"calories"`
	Protein  int     `json:"protein"`
	Carbs    int     `json:"carbs"`
	Fats     int     `json:"fats"`
	Salt     float64 `json:"salt"`
	Fiber    int     `json:"fiber"`
	Polyols  int     `json:"polyols"`
	Starch   int     `json:"starch"`
}

// Add returns the field-wise sum of p and o.
func (p NutrientProfile) Add(o NutrientProfile) NutrientProfile {
	return NutrientProfile{
		Calories: p.Calories + o.Calories,
		Protein:  p.Protein + o.Protein,
		Carbs:    p.Carbs + o.Carbs,
		Fats:     p.Fats + o.Fats,
		Salt:     p.Salt + o.Salt,
		Fiber:    p.Fiber + o.Fiber,
		Polyols:  p.Polyols + o.Polyols,
		Starch:   p.Starch + o.Starch,
	}
}

type Meal struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
	NutrientProfile
}

// SameContent reports whether m and o carry the same name and nutrients,
// ignoring identifiers.
func (m Meal) SameContent(o Meal) bool {
	return m.Name == o.Name && m.NutrientProfile == o.NutrientProfile
}

type Recipe struct {
	Name string `json:"name"`
	NutrientProfile
}

// UserInfo is stored as entered on the profile form.
type UserInfo struct {
	DOB           string `json:"dob"`
	Weight        string `json:"weight"`
	Height        string `json:"height"`
	ActivityLevel string `json:"activityLevel"`
	Gender        string `json:"gender"`
}

type Gender string

const (
	GenderMan   Gender = "Man"
	GenderWoman Gender = "Woman"
)

var Genders = []Gender{GenderMan, GenderWoman}

type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "Sedentary"
	ActivityLightlyActive    ActivityLevel = "Lightly Active"
	ActivityModeratelyActive ActivityLevel = "Moderately Active"
	ActivityVeryActive       ActivityLevel = "Very Active"
	ActivityExtraActive      ActivityLevel = "Extra Active"
)

var ActivityLevels = []ActivityLevel{
	ActivitySedentary,
	ActivityLightlyActive,
	ActivityModeratelyActive,
	ActivityVeryActive,
	ActivityExtraActive,
}

type WeightGoal string

const (
	GoalMaintain WeightGoal = "Maintain Weight"
	GoalLose     WeightGoal = "Lose Weight"
	GoalGain     WeightGoal = "Gain Weight"
)

var WeightGoals = []WeightGoal{GoalMaintain, GoalLose, GoalGain}
