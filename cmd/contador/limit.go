package contador

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/catapou/contador/internal/service"
)

var limitCmd = &cobra.Command{
	Use:   "limit",
	Short: "Override the calorie limit of a day",
}

var (
	limitSetDate   string
	limitClearDate string
)

var limitSetCmd = &cobra.Command{
	Use:   "set <kcal>",
	Short: "Set the calorie limit for a date (0 means no limit)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, limitSetDate, func(ctx context.Context, tr *service.Tracker) error {
			v, err := tr.SetDailyLimit(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Daily limit for %s: %d Kcal\n", tr.Date(), v)
			return nil
		})
	},
}

var limitClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the override so the recommendation applies",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, limitClearDate, func(ctx context.Context, tr *service.Tracker) error {
			tr.ClearDailyLimit(ctx)
			st := tr.Status()
			if st.LimitSource == service.LimitNone {
				fmt.Fprintf(cmd.OutOrStdout(), "Cleared daily limit for %s; no limit set\n", tr.Date())
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared daily limit for %s; using %d Kcal (%s)\n", tr.Date(), st.DailyLimit, st.LimitSource)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(limitCmd)
	limitCmd.AddCommand(limitSetCmd, limitClearCmd)
	addDateFlag(limitSetCmd, &limitSetDate)
	addDateFlag(limitClearCmd, &limitClearDate)
}
