package contador

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/catapou/contador/internal/model"
	"github.com/catapou/contador/internal/service"
)

var mealCmd = &cobra.Command{
	Use:   "meal",
	Short: "Log, list, edit and remove meals of a day",
}

var (
	mealAddFlags  nutrientFlags
	mealEditFlags nutrientFlags
	mealAddDate   string
	mealListDate  string
	mealEditDate  string
	mealRmDate    string
)

var mealAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a custom meal",
	RunE: func(cmd *cobra.Command, args []string) error {
		form := mealAddFlags.form()
		return withTracker(cmd, mealAddDate, func(ctx context.Context, tr *service.Tracker) error {
			m, err := tr.AddMeal(ctx, form)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%d Kcal) to %s\n", m.Name, m.Calories, tr.Date())
			return nil
		})
	},
}

var mealListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the meals of a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, mealListDate, func(ctx context.Context, tr *service.Tracker) error {
			meals := tr.Meals()
			if len(meals) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No meals logged on %s\n", tr.Date())
				return nil
			}
			printMealTable(cmd.OutOrStdout(), meals)
			return nil
		})
	},
}

var mealEditCmd = &cobra.Command{
	Use:   "edit <number|id>",
	Short: "Replace a meal; fields without a flag keep their value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, mealEditDate, func(ctx context.Context, tr *service.Tracker) error {
			target, _, err := tr.ResolveMeal(args[0])
			if err != nil {
				return err
			}
			form := mealEditFlags.overlay(cmd, mealFormOf(target))
			m, err := tr.EditMeal(ctx, args[0], form)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated meal %s: %s (%d Kcal)\n", args[0], m.Name, m.Calories)
			return nil
		})
	},
}

var mealRemoveCmd = &cobra.Command{
	Use:     "remove <number|id>",
	Aliases: []string{"rm"},
	Short:   "Remove a meal from a day",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, mealRmDate, func(ctx context.Context, tr *service.Tracker) error {
			m, err := tr.RemoveMeal(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from %s\n", m.Name, tr.Date())
			return nil
		})
	},
}

func printMealTable(w io.Writer, meals []model.Meal) {
	fmt.Fprintln(w, "#\tNAME\tKCAL\tP\tC\tF\tSALT\tFIBER\tPOLYOLS\tSTARCH\tID")
	for i, m := range meals {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\t%d\t%s\t%d\t%d\t%d\t%s\n",
			i+1, m.Name, m.Calories, m.Protein, m.Carbs, m.Fats, formatSalt(m.Salt), m.Fiber, m.Polyols, m.Starch, m.ID)
	}
}

func mealFormOf(m model.Meal) service.MealForm {
	return service.MealForm{
		Name:     m.Name,
		Calories: strconv.Itoa(m.Calories),
		Protein:  strconv.Itoa(m.Protein),
		Carbs:    strconv.Itoa(m.Carbs),
		Fats:     strconv.Itoa(m.Fats),
		Salt:     strconv.FormatFloat(m.Salt, 'f', -1, 64),
		Fiber:    strconv.Itoa(m.Fiber),
		Polyols:  strconv.Itoa(m.Polyols),
		Starch:   strconv.Itoa(m.Starch),
	}
}

func init() {
	rootCmd.AddCommand(mealCmd)
	mealCmd.AddCommand(mealAddCmd, mealListCmd, mealEditCmd, mealRemoveCmd)

	mealAddFlags.register(mealAddCmd, "")
	_ = mealAddCmd.MarkFlagRequired("name")
	_ = mealAddCmd.MarkFlagRequired("calories")
	mealEditFlags.register(mealEditCmd, "")

	addDateFlag(mealAddCmd, &mealAddDate)
	addDateFlag(mealListCmd, &mealListDate)
	addDateFlag(mealEditCmd, &mealEditDate)
	addDateFlag(mealRemoveCmd, &mealRmDate)
}
