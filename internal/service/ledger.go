package service

import "github.com/catapou/contador/internal/model"

type ProgressState int

const (
	UnderOrAtLimit ProgressState = iota
	OverLimit
	NoLimitNoConsumption
	NoLimitWithConsumption
)

func (s ProgressState) String() string {
	switch s {
	case OverLimit:
		return "over_limit"
	case NoLimitNoConsumption:
		return "no_limit"
	case NoLimitWithConsumption:
		return "no_limit_with_consumption"
	default:
		return "under_limit"
	}
}

// Ledger holds the meals logged on one date in insertion order together with
// that date's calorie limit. A limit of 0 means no limit is set.
type Ledger struct {
	Date       string
	DailyLimit int
	meals      []model.Meal
}

func NewLedger(date string, meals []model.Meal, limit int) *Ledger {
	l := &Ledger{Date: date, DailyLimit: limit}
	l.meals = append(l.meals, meals...)
	return l
}

// Meals returns a copy of the meal list.
func (l *Ledger) Meals() []model.Meal {
	out := make([]model.Meal, len(l.meals))
	copy(out, l.meals)
	return out
}

func (l *Ledger) Len() int {
	return len(l.meals)
}

func (l *Ledger) TotalCalories() int {
	return SumCalories(l.meals)
}

func (l *Ledger) Totals() model.NutrientProfile {
	return SumNutrients(l.meals)
}

// Remaining is negative once the limit is exceeded.
func (l *Ledger) Remaining() int {
	return l.DailyLimit - l.TotalCalories()
}

// Exceeded returns how far consumption is above the limit, or 0.
func (l *Ledger) Exceeded() int {
	if r := l.Remaining(); r < 0 {
		return -r
	}
	return 0
}

func (l *Ledger) ProgressFraction() float64 {
	if l.DailyLimit <= 0 {
		return 0
	}
	f := float64(l.TotalCalories()) / float64(l.DailyLimit)
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}

func (l *Ledger) ProgressState() ProgressState {
	total := l.TotalCalories()
	if l.DailyLimit == 0 {
		if total > 0 {
			return NoLimitWithConsumption
		}
		return NoLimitNoConsumption
	}
	if l.DailyLimit-total < 0 {
		return OverLimit
	}
	return UnderOrAtLimit
}

func (l *Ledger) AddMeal(m model.Meal) {
	l.meals = append(l.meals, m)
}

// ReplaceMeal swaps the first entry matching target for replacement, keeping
// its position. It reports false when nothing matched.
func (l *Ledger) ReplaceMeal(target, replacement model.Meal) bool {
	return l.ReplaceAt(l.indexOf(target), replacement)
}

// RemoveMeal drops the first entry matching target. It reports false when
// nothing matched.
func (l *Ledger) RemoveMeal(target model.Meal) bool {
	return l.RemoveAt(l.indexOf(target))
}

// ReplaceAt swaps the entry at 0-based index i. It reports false when i is
// out of range.
func (l *Ledger) ReplaceAt(i int, replacement model.Meal) bool {
	if i < 0 || i >= len(l.meals) {
		return false
	}
	l.meals[i] = replacement
	return true
}

func (l *Ledger) RemoveAt(i int) bool {
	if i < 0 || i >= len(l.meals) {
		return false
	}
	l.meals = append(l.meals[:i], l.meals[i+1:]...)
	return true
}

// indexOf matches on ID when target carries one, otherwise on content.
func (l *Ledger) indexOf(target model.Meal) int {
	for i, m := range l.meals {
		if target.ID != "" {
			if m.ID == target.ID {
				return i
			}
			continue
		}
		if m.SameContent(target) {
			return i
		}
	}
	return -1
}
