package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/catapou/contador/internal/logger"
	"github.com/catapou/contador/internal/model"
	"github.com/catapou/contador/internal/service"
	"github.com/catapou/contador/internal/store"
)

var sampleProfile = service.ProfileForm{DOB: "15/06/1996", Weight: "70", Height: "175", ActivityLevel: "Sedentary", Gender: "Man"}

func TestTrackerOnboardingComputesRecommendation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := newTestStore(t)
	tr := openTestTracker(t, st)

	if !tr.NeedsOnboarding() {
		t.Fatalf("fresh tracker should need onboarding")
	}
	if tr.Date() != "2026-02-20" {
		t.Fatalf("expected default date from clock, got %s", tr.Date())
	}
	if _, err := tr.SubmitProfile(ctx, sampleProfile); err != nil {
		t.Fatalf("submit profile: %v", err)
	}
	if _, ok := tr.Recommended(); ok {
		t.Fatalf("recommendation requires a goal")
	}
	if err := tr.SelectGoal(ctx, model.GoalLose); err != nil {
		t.Fatalf("select goal: %v", err)
	}
	kcal, ok := tr.Recommended()
	if !ok || kcal != 1479 {
		t.Fatalf("expected 1479 kcal, got %d ok=%v", kcal, ok)
	}
	status := tr.Status()
	if status.DailyLimit != 1479 || status.LimitSource != service.LimitRecommended {
		t.Fatalf("unexpected limit %d from %s", status.DailyLimit, status.LimitSource)
	}

	stored, err := st.GetRecommendedCalories(ctx)
	if err != nil || stored == nil || *stored != 1479 {
		t.Fatalf("expected stored recommendation, got %v err=%v", stored, err)
	}

	reopened := openTestTracker(t, st)
	if reopened.NeedsOnboarding() || reopened.Goal() != model.GoalLose {
		t.Fatalf("state not restored: profile=%+v goal=%q", reopened.Profile(), reopened.Goal())
	}
	if bmi, ok := reopened.BMI(); !ok || bmi.Class != "Normal weight" {
		t.Fatalf("unexpected bmi %+v ok=%v", bmi, ok)
	}
}

func TestTrackerGoalChangeRecomputes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	tr := openTestTracker(t, newTestStore(t))

	if err := tr.SelectGoal(ctx, model.GoalGain); err != nil {
		t.Fatalf("select goal: %v", err)
	}
	if _, ok := tr.Recommended(); ok {
		t.Fatalf("recommendation requires a profile")
	}
	if _, err := tr.SubmitProfile(ctx, sampleProfile); err != nil {
		t.Fatalf("submit profile: %v", err)
	}
	if kcal, _ := tr.Recommended(); kcal != 2479 {
		t.Fatalf("expected 2479 kcal, got %d", kcal)
	}
	if err := tr.SelectGoal(ctx, model.GoalMaintain); err != nil {
		t.Fatalf("select goal: %v", err)
	}
	if kcal, _ := tr.Recommended(); kcal != 1979 {
		t.Fatalf("expected 1979 kcal, got %d", kcal)
	}
	if err := tr.SelectGoal(ctx, model.WeightGoal("Bulk")); !errors.Is(err, service.ErrInvalidGoal) {
		t.Fatalf("expected ErrInvalidGoal, got %v", err)
	}
}

func TestTrackerRejectsInvalidProfile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := newTestStore(t)
	tr := openTestTracker(t, st)

	bad := sampleProfile
	bad.DOB = "1996"
	if _, err := tr.SubmitProfile(ctx, bad); !errors.Is(err, service.ErrInvalidProfile) {
		t.Fatalf("expected ErrInvalidProfile, got %v", err)
	}
	if info, _ := st.GetProfile(ctx); info != (model.UserInfo{}) {
		t.Fatalf("invalid profile must not be stored, got %+v", info)
	}
}

func TestTrackerMealLifecycle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := newTestStore(t)
	tr := openTestTracker(t, st)

	toast, err := tr.AddMeal(ctx, service.MealForm{Name: "Toast", Calories: "250", Carbs: "40"})
	if err != nil {
		t.Fatalf("add toast: %v", err)
	}
	if toast.ID == "" {
		t.Fatalf("expected generated meal id")
	}
	if _, err := tr.AddMeal(ctx, service.MealForm{Name: "Toast", Calories: "250", Carbs: "40"}); err != nil {
		t.Fatalf("add duplicate toast: %v", err)
	}
	if _, err := tr.AddMeal(ctx, service.MealForm{Name: "Nothing", Calories: "0"}); !errors.Is(err, service.ErrInvalidMeal) {
		t.Fatalf("expected ErrInvalidMeal, got %v", err)
	}

	edited, err := tr.EditMeal(ctx, "2", service.MealForm{Name: "Bagel", Calories: "300"})
	if err != nil {
		t.Fatalf("edit meal: %v", err)
	}
	meals := tr.Meals()
	if len(meals) != 2 || meals[0].ID != toast.ID || meals[1].Name != "Bagel" || meals[1].ID != edited.ID {
		t.Fatalf("edit must replace only the second duplicate: %+v", meals)
	}

	if _, err := tr.RemoveMeal(ctx, toast.ID); err != nil {
		t.Fatalf("remove by id: %v", err)
	}
	if _, err := tr.RemoveMeal(ctx, "5"); !errors.Is(err, service.ErrMealNotFound) {
		t.Fatalf("expected ErrMealNotFound, got %v", err)
	}

	stored, err := st.GetMealsForDate(ctx, "2026-02-20")
	if err != nil {
		t.Fatalf("get stored meals: %v", err)
	}
	if len(stored) != 1 || stored[0].Name != "Bagel" {
		t.Fatalf("unexpected stored meals %+v", stored)
	}
	if got := tr.Status(); got.Totals.Calories != 300 || got.State != service.NoLimitWithConsumption {
		t.Fatalf("unexpected status %+v", got)
	}
}

func TestTrackerEditLegacyMealAssignsID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := newTestStore(t)
	if err := st.PutMealsForDate(ctx, "2026-02-20", []model.Meal{{Name: "Soup", NutrientProfile: model.NutrientProfile{Calories: 120}}}); err != nil {
		t.Fatalf("seed meals: %v", err)
	}
	tr := openTestTracker(t, st)

	edited, err := tr.EditMeal(ctx, "1", service.MealForm{Name: "Soup", Calories: "140"})
	if err != nil {
		t.Fatalf("edit legacy meal: %v", err)
	}
	if edited.ID == "" || tr.Meals()[0].Calories != 140 {
		t.Fatalf("unexpected edit result %+v", tr.Meals())
	}
}

func TestTrackerDatesAreIndependent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	tr := openTestTracker(t, newTestStore(t))

	if _, err := tr.AddMeal(ctx, service.MealForm{Name: "Lunch", Calories: "700"}); err != nil {
		t.Fatalf("add meal: %v", err)
	}
	if _, err := tr.SetDailyLimit(ctx, "1500"); err != nil {
		t.Fatalf("set limit: %v", err)
	}
	if err := tr.SelectDate(ctx, "2026-02-21"); err != nil {
		t.Fatalf("select date: %v", err)
	}
	status := tr.Status()
	if len(status.Meals) != 0 || status.DailyLimit != 0 || status.State != service.NoLimitNoConsumption {
		t.Fatalf("new date should start empty, got %+v", status)
	}
	if err := tr.SelectDate(ctx, "2026-02-20"); err != nil {
		t.Fatalf("select date: %v", err)
	}
	status = tr.Status()
	if status.Totals.Calories != 700 || status.DailyLimit != 1500 || status.Remaining != 800 {
		t.Fatalf("first date not restored: %+v", status)
	}
	if status.LimitSource != service.LimitManual {
		t.Fatalf("expected manual limit, got %s", status.LimitSource)
	}
	if err := tr.SelectDate(ctx, "20/02/2026"); !errors.Is(err, service.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestTrackerManualLimitOverridesRecommendation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	tr := openTestTracker(t, newTestStore(t))
	if _, err := tr.SubmitProfile(ctx, sampleProfile); err != nil {
		t.Fatalf("submit profile: %v", err)
	}
	if err := tr.SelectGoal(ctx, model.GoalMaintain); err != nil {
		t.Fatalf("select goal: %v", err)
	}
	if _, err := tr.SetDailyLimit(ctx, "2000"); err != nil {
		t.Fatalf("set limit: %v", err)
	}
	if _, err := tr.AddMeal(ctx, service.MealForm{Name: "Feast", Calories: "2500"}); err != nil {
		t.Fatalf("add meal: %v", err)
	}
	status := tr.Status()
	if status.Remaining != -500 || status.Exceeded != 500 || status.State != service.OverLimit || status.Fraction != 1 {
		t.Fatalf("unexpected over-limit status %+v", status)
	}
	if status.Color != service.ColorAlert {
		t.Fatalf("expected alert colour, got %s", status.Color.Hex())
	}

	tr.ClearDailyLimit(ctx)
	status = tr.Status()
	if status.DailyLimit != 1979 || status.LimitSource != service.LimitRecommended {
		t.Fatalf("expected recommendation after clearing, got %d from %s", status.DailyLimit, status.LimitSource)
	}
	if _, err := tr.SetDailyLimit(ctx, "-1"); !errors.Is(err, service.ErrInvalidLimit) {
		t.Fatalf("expected ErrInvalidLimit, got %v", err)
	}
}

func TestTrackerRecipes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := newTestStore(t)
	tr := openTestTracker(t, st)

	if _, err := tr.AddRecipe(ctx, service.MealForm{Name: "Granola", Calories: "200", Protein: "10", Carbs: "20", Fats: "5", Salt: "1.2"}); err != nil {
		t.Fatalf("add recipe: %v", err)
	}
	if _, err := tr.AddRecipe(ctx, service.MealForm{Name: "Rice", Calories: "130"}); err != nil {
		t.Fatalf("add recipe: %v", err)
	}
	if _, err := tr.AddRecipe(ctx, service.MealForm{Name: "", Calories: "130"}); !errors.Is(err, service.ErrInvalidRecipe) {
		t.Fatalf("expected ErrInvalidRecipe, got %v", err)
	}

	meal, err := tr.LogRecipe(ctx, "granola", "150")
	if err != nil {
		t.Fatalf("log recipe: %v", err)
	}
	if meal.Name != "Granola (150g)" || meal.Calories != 300 || meal.Salt != 1.8 || meal.ID == "" {
		t.Fatalf("unexpected logged meal %+v", meal)
	}
	if _, err := tr.LogRecipe(ctx, "2", "0"); !errors.Is(err, service.ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if _, err := tr.LogRecipe(ctx, "pizza", "100"); !errors.Is(err, service.ErrRecipeNotFound) {
		t.Fatalf("expected ErrRecipeNotFound, got %v", err)
	}

	removed, err := tr.RemoveRecipe(ctx, "1")
	if err != nil || removed.Name != "Granola" {
		t.Fatalf("remove recipe: %+v err=%v", removed, err)
	}
	recipes, err := st.GetRecipes(ctx)
	if err != nil {
		t.Fatalf("get recipes: %v", err)
	}
	if len(recipes) != 1 || recipes[0].Name != "Rice" {
		t.Fatalf("unexpected stored catalog %+v", recipes)
	}
	if len(tr.Meals()) != 1 {
		t.Fatalf("removing a recipe must not touch logged meals")
	}
}

type failingKV struct{ store.MemoryKV }

func (failingKV) Set(context.Context, string, string) error { return errors.New("disk full") }
func (failingKV) Delete(context.Context, string) error      { return errors.New("disk full") }

func TestTrackerKeepsStateWhenWritesFail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	kv := &failingKV{MemoryKV: *store.NewMemoryKV()}
	tr := openTestTracker(t, store.New(kv, logger.Discard()))

	if _, err := tr.AddMeal(ctx, service.MealForm{Name: "Toast", Calories: "250"}); err != nil {
		t.Fatalf("write failures must not fail the mutation: %v", err)
	}
	if len(tr.Meals()) != 1 {
		t.Fatalf("in-memory ledger should keep the meal")
	}
}

func TestTrackerPositionalRefsHitTheirOwnSlot(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := newTestStore(t)
	egg := model.Meal{Name: "Egg", NutrientProfile: model.NutrientProfile{Calories: 80}}
	if err := st.PutMealsForDate(ctx, "2026-02-20", []model.Meal{egg, egg, egg}); err != nil {
		t.Fatalf("seed meals: %v", err)
	}
	tr := openTestTracker(t, st)

	if _, err := tr.EditMeal(ctx, "2", service.MealForm{Name: "Toast", Calories: "250"}); err != nil {
		t.Fatalf("edit meal: %v", err)
	}
	meals := tr.Meals()
	if meals[0].Name != "Egg" || meals[0].ID != "" || meals[1].Name != "Toast" || meals[2].Name != "Egg" {
		t.Fatalf("edit of #2 changed the wrong entry: %+v", meals)
	}

	removed, err := tr.RemoveMeal(ctx, "3")
	if err != nil || removed.Name != "Egg" {
		t.Fatalf("remove meal #3: %+v err=%v", removed, err)
	}
	meals = tr.Meals()
	if len(meals) != 2 || meals[0].Name != "Egg" || meals[1].Name != "Toast" {
		t.Fatalf("remove of #3 changed the wrong entry: %+v", meals)
	}
}

func TestTrackerRejectsOversizedInput(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := newTestStore(t)
	tr := openTestTracker(t, st)

	if _, err := tr.AddRecipe(ctx, service.MealForm{Name: "Oats", Calories: "380"}); err != nil {
		t.Fatalf("add recipe: %v", err)
	}
	if _, err := tr.LogRecipe(ctx, "oats", "1e300"); !errors.Is(err, service.ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if got := tr.Status(); len(got.Meals) != 0 || got.Totals.Calories != 0 {
		t.Fatalf("rejected portion must not be logged: %+v", got)
	}

	huge := sampleProfile
	huge.Weight = "1e300"
	if _, err := tr.SubmitProfile(ctx, huge); !errors.Is(err, service.ErrInvalidProfile) {
		t.Fatalf("expected ErrInvalidProfile, got %v", err)
	}

	if err := st.PutProfile(ctx, model.UserInfo{DOB: "15/06/1996", Weight: "1e300", Height: "175", ActivityLevel: "Sedentary", Gender: "Man"}); err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	reopened := openTestTracker(t, st)
	if err := reopened.SelectGoal(ctx, model.GoalMaintain); err != nil {
		t.Fatalf("select goal: %v", err)
	}
	if kcal, ok := reopened.Recommended(); ok {
		t.Fatalf("out-of-range stored profile must not yield a recommendation, got %d", kcal)
	}
}
