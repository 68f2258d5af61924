package contador

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/catapou/contador/internal/service"
)

var recipeCmd = &cobra.Command{
	Use:   "recipe",
	Short: "Manage per-100g recipes and log portions of them",
}

var (
	recipeAddFlags nutrientFlags
	recipeGrams    string
	recipeLogDate  string
)

var recipeAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a recipe with nutrients per 100 g",
	RunE: func(cmd *cobra.Command, args []string) error {
		form := recipeAddFlags.form()
		return withTracker(cmd, "", func(ctx context.Context, tr *service.Tracker) error {
			r, err := tr.AddRecipe(ctx, form)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added recipe %s (%d Kcal/100g)\n", r.Name, r.Calories)
			return nil
		})
	},
}

var recipeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved recipes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, "", func(ctx context.Context, tr *service.Tracker) error {
			recipes := tr.Recipes()
			if len(recipes) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No recipes saved")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "#\tNAME\tKCAL/100G\tP\tC\tF\tSALT")
			for i, r := range recipes {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%d\t%d\t%d\t%d\t%s\n", i+1, r.Name, r.Calories, r.Protein, r.Carbs, r.Fats, formatSalt(r.Salt))
			}
			return nil
		})
	},
}

var recipeShowCmd = &cobra.Command{
	Use:   "show <number|name>",
	Short: "Show the per-100g nutrients of a recipe",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, "", func(ctx context.Context, tr *service.Tracker) error {
			r, _, err := tr.ResolveRecipe(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (per 100g)\n", r.Name)
			printNutrientLines(cmd.OutOrStdout(), "", r.NutrientProfile)
			return nil
		})
	},
}

var recipeLogCmd = &cobra.Command{
	Use:   "log <number|name>",
	Short: "Log a portion of a recipe as a meal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, recipeLogDate, func(ctx context.Context, tr *service.Tracker) error {
			m, err := tr.LogRecipe(ctx, args[0], recipeGrams)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%d Kcal) to %s\n", m.Name, m.Calories, tr.Date())
			return nil
		})
	},
}

var recipeRemoveCmd = &cobra.Command{
	Use:     "remove <number|name>",
	Aliases: []string{"rm"},
	Short:   "Remove a recipe from the catalog",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, "", func(ctx context.Context, tr *service.Tracker) error {
			r, err := tr.RemoveRecipe(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed recipe %s\n", r.Name)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(recipeCmd)
	recipeCmd.AddCommand(recipeAddCmd, recipeListCmd, recipeShowCmd, recipeLogCmd, recipeRemoveCmd)

	recipeAddFlags.register(recipeAddCmd, " per 100g")
	_ = recipeAddCmd.MarkFlagRequired("name")
	_ = recipeAddCmd.MarkFlagRequired("calories")

	recipeLogCmd.Flags().StringVar(&recipeGrams, "grams", "", "Portion in grams")
	_ = recipeLogCmd.MarkFlagRequired("grams")
	addDateFlag(recipeLogCmd, &recipeLogDate)
}
