package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/catapou/contador/internal/model"
	"github.com/catapou/contador/internal/store"
)

const DateLayout = "2006-01-02"

// LimitSource tells where the effective daily limit came from.
type LimitSource string

const (
	LimitManual      LimitSource = "manual"
	LimitRecommended LimitSource = "recommended"
	LimitNone        LimitSource = "none"
)

// Tracker owns the application state for one user: profile, goal, recipe
// catalog and the ledger of the selected date. Every mutation is written
// through to the store; write failures are logged and do not fail the call.
type Tracker struct {
	store store.Store
	log   *slog.Logger
	now   func() time.Time

	profile     model.UserInfo
	goal        model.WeightGoal
	recommended *int
	recipes     []model.Recipe

	date        string
	manualLimit *int
	ledger      *Ledger
}

type TrackerOptions struct {
	Log *slog.Logger
	// Now defaults to time.Now. It drives the default date and age.
	Now func() time.Time
}

// DayStatus is a rendered-ready snapshot of the selected date.
type DayStatus struct {
	Date        string
	Meals       []model.Meal
	Totals      model.NutrientProfile
	DailyLimit  int
	LimitSource LimitSource
	Remaining   int
	Exceeded    int
	Fraction    float64
	State       ProgressState
	Color       Color
}

// BMIResult is reported only when the profile has weight and height.
type BMIResult struct {
	Value float64
	Class string
}

// OpenTracker loads the global state and today's ledger from st.
func OpenTracker(ctx context.Context, st store.Store, opts TrackerOptions) (*Tracker, error) {
	t := &Tracker{store: st, log: opts.Log, now: opts.Now}
	if t.log == nil {
		t.log = slog.Default()
	}
	if t.now == nil {
		t.now = time.Now
	}

	var err error
	if t.profile, err = st.GetProfile(ctx); err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if t.goal, err = st.GetWeightGoal(ctx); err != nil {
		return nil, fmt.Errorf("load weight goal: %w", err)
	}
	if t.recommended, err = st.GetRecommendedCalories(ctx); err != nil {
		return nil, fmt.Errorf("load recommended calories: %w", err)
	}
	if t.recipes, err = st.GetRecipes(ctx); err != nil {
		return nil, fmt.Errorf("load recipes: %w", err)
	}
	if err := t.SelectDate(ctx, t.now().Format(DateLayout)); err != nil {
		return nil, err
	}
	return t, nil
}

// SelectDate switches the ledger to date (YYYY-MM-DD). A date with no stored
// meals starts empty.
func (t *Tracker) SelectDate(ctx context.Context, date string) error {
	date = strings.TrimSpace(date)
	if _, err := time.Parse(DateLayout, date); err != nil {
		return fmt.Errorf("%w %q (expected YYYY-MM-DD)", ErrInvalidDate, date)
	}
	meals, err := t.store.GetMealsForDate(ctx, date)
	if err != nil {
		return fmt.Errorf("load meals for %s: %w", date, err)
	}
	limit, err := t.store.GetDailyLimit(ctx, date)
	if err != nil {
		return fmt.Errorf("load daily limit for %s: %w", date, err)
	}
	t.date = date
	t.manualLimit = limit
	t.ledger = NewLedger(date, meals, 0)
	t.refreshLimit()
	return nil
}

func (t *Tracker) Date() string {
	return t.date
}

func (t *Tracker) Profile() model.UserInfo {
	return t.profile
}

func (t *Tracker) Goal() model.WeightGoal {
	return t.goal
}

func (t *Tracker) Recommended() (int, bool) {
	if t.recommended == nil {
		return 0, false
	}
	return *t.recommended, true
}

// NeedsOnboarding reports whether the profile form has never been submitted.
func (t *Tracker) NeedsOnboarding() bool {
	return t.profile == (model.UserInfo{})
}

func (t *Tracker) Metrics() BodyMetrics {
	return MetricsFromProfile(t.profile, t.now())
}

func (t *Tracker) BMI() (BMIResult, bool) {
	m := t.Metrics()
	v, ok := BMI(m.WeightKg, m.HeightCm)
	if !ok {
		return BMIResult{}, false
	}
	return BMIResult{Value: v, Class: ClassifyBMI(v)}, true
}

// SubmitProfile validates and stores the profile form, then recomputes the
// recommended calories.
func (t *Tracker) SubmitProfile(ctx context.Context, form ProfileForm) (model.UserInfo, error) {
	info, err := ParseProfileForm(form)
	if err != nil {
		return model.UserInfo{}, err
	}
	t.profile = info
	t.persist("profile", t.store.PutProfile(ctx, info))
	t.recompute(ctx)
	return info, nil
}

func (t *Tracker) SelectGoal(ctx context.Context, goal model.WeightGoal) error {
	valid := false
	for _, g := range model.WeightGoals {
		if g == goal {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("%w: %q", ErrInvalidGoal, goal)
	}
	t.goal = goal
	t.persist("weight goal", t.store.PutWeightGoal(ctx, goal))
	t.recompute(ctx)
	return nil
}

// recompute derives the recommended calories from the profile and goal. The
// value is cleared when either is incomplete.
func (t *Tracker) recompute(ctx context.Context) {
	m := t.Metrics()
	if !m.Complete() || t.goal == "" {
		t.recommended = nil
	} else {
		tdee := TDEE(BMR(m.WeightKg, m.HeightCm, m.AgeYears, m.Gender), m.ActivityLevel)
		v := RecommendedCalories(tdee, t.goal)
		t.recommended = &v
	}
	t.persist("recommended calories", t.store.PutRecommendedCalories(ctx, t.recommended))
	t.refreshLimit()
}

// SetDailyLimit overrides the calorie limit of the selected date.
func (t *Tracker) SetDailyLimit(ctx context.Context, text string) (int, error) {
	v, err := ParseDailyLimit(text)
	if err != nil {
		return 0, err
	}
	t.manualLimit = &v
	t.persist("daily limit", t.store.PutDailyLimit(ctx, t.date, t.manualLimit))
	t.refreshLimit()
	return v, nil
}

// ClearDailyLimit drops the override so the recommendation applies again.
func (t *Tracker) ClearDailyLimit(ctx context.Context) {
	t.manualLimit = nil
	t.persist("daily limit", t.store.PutDailyLimit(ctx, t.date, nil))
	t.refreshLimit()
}

func (t *Tracker) limit() (int, LimitSource) {
	switch {
	case t.manualLimit != nil:
		return *t.manualLimit, LimitManual
	case t.recommended != nil:
		return *t.recommended, LimitRecommended
	default:
		return 0, LimitNone
	}
}

func (t *Tracker) refreshLimit() {
	if t.ledger == nil {
		return
	}
	t.ledger.DailyLimit, _ = t.limit()
}

func (t *Tracker) Meals() []model.Meal {
	return t.ledger.Meals()
}

// ResolveMeal finds a meal of the selected date by 1-based position or id and
// returns its 0-based index.
func (t *Tracker) ResolveMeal(ref string) (model.Meal, int, error) {
	ref = strings.TrimSpace(ref)
	meals := t.ledger.Meals()
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(meals) {
			return model.Meal{}, -1, fmt.Errorf("%w: no meal #%d on %s", ErrMealNotFound, n, t.date)
		}
		return meals[n-1], n - 1, nil
	}
	for i, m := range meals {
		if ref != "" && m.ID == ref {
			return m, i, nil
		}
	}
	return model.Meal{}, -1, fmt.Errorf("%w: %q on %s", ErrMealNotFound, ref, t.date)
}

func (t *Tracker) AddMeal(ctx context.Context, form MealForm) (model.Meal, error) {
	meal := ParseMealForm(form)
	if err := ValidateMeal(meal); err != nil {
		return model.Meal{}, err
	}
	meal.ID = uuid.New().String()
	t.ledger.AddMeal(meal)
	t.persistMeals(ctx)
	return meal, nil
}

// EditMeal replaces the referenced meal in place, keeping its identifier.
func (t *Tracker) EditMeal(ctx context.Context, ref string, form MealForm) (model.Meal, error) {
	target, i, err := t.ResolveMeal(ref)
	if err != nil {
		return model.Meal{}, err
	}
	replacement := ParseMealForm(form)
	if err := ValidateMeal(replacement); err != nil {
		return model.Meal{}, err
	}
	replacement.ID = target.ID
	if replacement.ID == "" {
		replacement.ID = uuid.New().String()
	}
	if !t.ledger.ReplaceAt(i, replacement) {
		return model.Meal{}, fmt.Errorf("%w: %q on %s", ErrMealNotFound, ref, t.date)
	}
	t.persistMeals(ctx)
	return replacement, nil
}

func (t *Tracker) RemoveMeal(ctx context.Context, ref string) (model.Meal, error) {
	target, i, err := t.ResolveMeal(ref)
	if err != nil {
		return model.Meal{}, err
	}
	if !t.ledger.RemoveAt(i) {
		return model.Meal{}, fmt.Errorf("%w: %q on %s", ErrMealNotFound, ref, t.date)
	}
	t.persistMeals(ctx)
	return target, nil
}

// Recipes returns a copy of the catalog.
func (t *Tracker) Recipes() []model.Recipe {
	out := make([]model.Recipe, len(t.recipes))
	copy(out, t.recipes)
	return out
}

// ResolveRecipe finds a recipe by 1-based position or case-insensitive name.
func (t *Tracker) ResolveRecipe(ref string) (model.Recipe, int, error) {
	ref = strings.TrimSpace(ref)
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(t.recipes) {
			return model.Recipe{}, -1, fmt.Errorf("%w: no recipe #%d", ErrRecipeNotFound, n)
		}
		return t.recipes[n-1], n - 1, nil
	}
	want := normalizeName(ref)
	for i, r := range t.recipes {
		if want != "" && normalizeName(r.Name) == want {
			return r, i, nil
		}
	}
	return model.Recipe{}, -1, fmt.Errorf("%w: %q", ErrRecipeNotFound, ref)
}

func (t *Tracker) AddRecipe(ctx context.Context, form MealForm) (model.Recipe, error) {
	recipe := ParseRecipeForm(form)
	if err := ValidateRecipe(recipe); err != nil {
		return model.Recipe{}, err
	}
	t.recipes = append(t.recipes, recipe)
	t.persist("recipes", t.store.PutRecipes(ctx, t.recipes))
	return recipe, nil
}

func (t *Tracker) RemoveRecipe(ctx context.Context, ref string) (model.Recipe, error) {
	recipe, i, err := t.ResolveRecipe(ref)
	if err != nil {
		return model.Recipe{}, err
	}
	t.recipes = append(t.recipes[:i:i], t.recipes[i+1:]...)
	t.persist("recipes", t.store.PutRecipes(ctx, t.recipes))
	return recipe, nil
}

// LogRecipe scales a catalog recipe by the grams text and adds the result to
// the selected date.
func (t *Tracker) LogRecipe(ctx context.Context, ref, gramsText string) (model.Meal, error) {
	recipe, _, err := t.ResolveRecipe(ref)
	if err != nil {
		return model.Meal{}, err
	}
	grams, err := ParseGrams(gramsText)
	if err != nil {
		return model.Meal{}, err
	}
	meal := ScaleRecipe(recipe, grams)
	meal.ID = uuid.New().String()
	t.ledger.AddMeal(meal)
	t.persistMeals(ctx)
	return meal, nil
}

func (t *Tracker) Status() DayStatus {
	limit, source := t.limit()
	fraction := t.ledger.ProgressFraction()
	state := t.ledger.ProgressState()
	return DayStatus{
		Date:        t.date,
		Meals:       t.ledger.Meals(),
		Totals:      t.ledger.Totals(),
		DailyLimit:  limit,
		LimitSource: source,
		Remaining:   t.ledger.Remaining(),
		Exceeded:    t.ledger.Exceeded(),
		Fraction:    fraction,
		State:       state,
		Color:       ProgressColor(state, fraction),
	}
}

func (t *Tracker) persistMeals(ctx context.Context) {
	t.persist("meals", t.store.PutMealsForDate(ctx, t.date, t.ledger.Meals()))
}

func (t *Tracker) persist(what string, err error) {
	if err != nil {
		t.log.Warn("failed to persist "+what, "date", t.date, "error", err)
	}
}
