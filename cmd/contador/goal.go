package contador

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/catapou/contador/internal/service"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage the weight goal",
}

var goalSetCmd = &cobra.Command{
	Use:   "set <maintain|lose|gain>",
	Short: "Select the weight goal and recompute recommended calories",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		goal, err := service.ParseWeightGoal(args[0])
		if err != nil {
			return err
		}
		return withTracker(cmd, "", func(ctx context.Context, tr *service.Tracker) error {
			if err := tr.SelectGoal(ctx, goal); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Weight goal: %s\n", goal)
			if kcal, ok := tr.Recommended(); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "Recommended calories: %d Kcal\n", kcal)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Complete your profile to get a calorie recommendation")
			}
			return nil
		})
	},
}

var goalShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the weight goal and recommended calories",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, "", func(ctx context.Context, tr *service.Tracker) error {
			goal := tr.Goal()
			if goal == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "Weight goal: not set")
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Weight goal: %s\n", goal)
			}
			if kcal, ok := tr.Recommended(); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "Recommended calories: %d Kcal\n", kcal)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Recommended calories: not available")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(goalCmd)
	goalCmd.AddCommand(goalSetCmd, goalShowCmd)
}
