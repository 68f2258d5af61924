package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/catapou/contador/internal/model"
)

// Fixed logical keys. Per-date keys are namespaced by the ISO date.
const (
	KeyUserInfo            = "user_info"
	KeyWeightGoal          = "user_weight_goal"
	KeyRecommendedCalories = "recommended_calories"
	KeyRecipes             = "recipes_key"
	mealsKeyPrefix         = "MEALS_"
	dailyLimitKeyPrefix    = "DAILY_LIMIT_"
)

func MealsKey(date string) string      { return mealsKeyPrefix + date }
func DailyLimitKey(date string) string { return dailyLimitKeyPrefix + date }

// KV is a string-keyed, string-valued backend.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// KeyLister is implemented by backends that can enumerate keys.
type KeyLister interface {
	Keys(ctx context.Context, prefix string) ([]string, error)
}

type ProfileStore interface {
	GetProfile(ctx context.Context) (model.UserInfo, error)
	PutProfile(ctx context.Context, info model.UserInfo) error
	GetWeightGoal(ctx context.Context) (model.WeightGoal, error)
	PutWeightGoal(ctx context.Context, goal model.WeightGoal) error
	GetRecommendedCalories(ctx context.Context) (*int, error)
	PutRecommendedCalories(ctx context.Context, calories *int) error
}

type RecipeStore interface {
	GetRecipes(ctx context.Context) ([]model.Recipe, error)
	PutRecipes(ctx context.Context, recipes []model.Recipe) error
}

type MealStore interface {
	GetMealsForDate(ctx context.Context, date string) ([]model.Meal, error)
	PutMealsForDate(ctx context.Context, date string, meals []model.Meal) error
	GetDailyLimit(ctx context.Context, date string) (*int, error)
	PutDailyLimit(ctx context.Context, date string, limit *int) error
}

type Store interface {
	ProfileStore
	RecipeStore
	MealStore
}

// JSONStore serializes values as JSON text on top of a KV backend. Values
// that fail to decode are logged and treated as missing.
type JSONStore struct {
	kv  KV
	log *slog.Logger
}

func New(kv KV, log *slog.Logger) *JSONStore {
	if log == nil {
		log = slog.Default()
	}
	return &JSONStore{kv: kv, log: log}
}

// KV exposes the underlying backend.
func (s *JSONStore) KV() KV {
	return s.kv
}

func (s *JSONStore) GetProfile(ctx context.Context) (model.UserInfo, error) {
	var info model.UserInfo
	ok, err := s.getJSON(ctx, KeyUserInfo, &info)
	if err != nil {
		return model.UserInfo{}, err
	}
	if !ok {
		return model.UserInfo{}, nil
	}
	return info, nil
}

func (s *JSONStore) PutProfile(ctx context.Context, info model.UserInfo) error {
	return s.putJSON(ctx, KeyUserInfo, info)
}

func (s *JSONStore) GetWeightGoal(ctx context.Context) (model.WeightGoal, error) {
	v, ok, err := s.kv.Get(ctx, KeyWeightGoal)
	if err != nil {
		return "", fmt.Errorf("get %s: %w", KeyWeightGoal, err)
	}
	if !ok {
		return "", nil
	}
	return model.WeightGoal(v), nil
}

func (s *JSONStore) PutWeightGoal(ctx context.Context, goal model.WeightGoal) error {
	if err := s.kv.Set(ctx, KeyWeightGoal, string(goal)); err != nil {
		return fmt.Errorf("put %s: %w", KeyWeightGoal, err)
	}
	return nil
}

func (s *JSONStore) GetRecommendedCalories(ctx context.Context) (*int, error) {
	return s.getOptionalInt(ctx, KeyRecommendedCalories)
}

// PutRecommendedCalories clears the stored value when calories is nil.
func (s *JSONStore) PutRecommendedCalories(ctx context.Context, calories *int) error {
	return s.putOptionalInt(ctx, KeyRecommendedCalories, calories)
}

func (s *JSONStore) GetRecipes(ctx context.Context) ([]model.Recipe, error) {
	var recipes []model.Recipe
	ok, err := s.getJSON(ctx, KeyRecipes, &recipes)
	if err != nil {
		return nil, err
	}
	if !ok || recipes == nil {
		return make([]model.Recipe, 0), nil
	}
	return recipes, nil
}

func (s *JSONStore) PutRecipes(ctx context.Context, recipes []model.Recipe) error {
	if recipes == nil {
		recipes = make([]model.Recipe, 0)
	}
	return s.putJSON(ctx, KeyRecipes, recipes)
}

func (s *JSONStore) GetMealsForDate(ctx context.Context, date string) ([]model.Meal, error) {
	var meals []model.Meal
	ok, err := s.getJSON(ctx, MealsKey(date), &meals)
	if err != nil {
		return nil, err
	}
	if !ok || meals == nil {
		return make([]model.Meal, 0), nil
	}
	return meals, nil
}

func (s *JSONStore) PutMealsForDate(ctx context.Context, date string, meals []model.Meal) error {
	if meals == nil {
		meals = make([]model.Meal, 0)
	}
	return s.putJSON(ctx, MealsKey(date), meals)
}

func (s *JSONStore) GetDailyLimit(ctx context.Context, date string) (*int, error) {
	return s.getOptionalInt(ctx, DailyLimitKey(date))
}

func (s *JSONStore) PutDailyLimit(ctx context.Context, date string, limit *int) error {
	return s.putOptionalInt(ctx, DailyLimitKey(date), limit)
}

// MealDates lists the dates that have a stored meal list, oldest first.
// Backends without key enumeration yield no dates.
func (s *JSONStore) MealDates(ctx context.Context) ([]string, error) {
	lister, ok := s.kv.(KeyLister)
	if !ok {
		return []string{}, nil
	}
	keys, err := lister.Keys(ctx, mealsKeyPrefix)
	if err != nil {
		return nil, err
	}
	dates := make([]string, 0, len(keys))
	for _, k := range keys {
		dates = append(dates, strings.TrimPrefix(k, mealsKeyPrefix))
	}
	return dates, nil
}

// getJSON reports false when the key is missing or its value does not decode.
func (s *JSONStore) getJSON(ctx context.Context, key string, dst any) (bool, error) {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("get %s: %w", key, err)
	}
	if !ok || raw == "" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		s.log.Warn("discarding malformed stored value", "key", key, "error", err)
		return false, nil
	}
	return true, nil
}

func (s *JSONStore) putJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}

func (s *JSONStore) getOptionalInt(ctx context.Context, key string) (*int, error) {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	if !ok {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		s.log.Warn("discarding malformed stored value", "key", key, "error", err)
		return nil, nil
	}
	return &v, nil
}

func (s *JSONStore) putOptionalInt(ctx context.Context, key string, v *int) error {
	if v == nil {
		if err := s.kv.Delete(ctx, key); err != nil {
			return fmt.Errorf("clear %s: %w", key, err)
		}
		return nil
	}
	if err := s.kv.Set(ctx, key, strconv.Itoa(*v)); err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}
