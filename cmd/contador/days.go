package contador

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/catapou/contador/internal/config"
	"github.com/catapou/contador/internal/service"
	"github.com/catapou/contador/internal/store"
)

var (
	daysFrom string
	daysTo   string
)

var daysCmd = &cobra.Command{
	Use:   "days",
	Short: "List per-date calorie totals of every logged day",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(ctx context.Context, _ *config.Config, st *store.JSONStore, log *slog.Logger) error {
			dates, err := st.MealDates(ctx)
			if err != nil {
				return err
			}
			tr, err := service.OpenTracker(ctx, st, service.TrackerOptions{Log: log})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "DATE\tMEALS\tKCAL\tLIMIT\tSTATE")
			shown := 0
			for _, d := range dates {
				if (daysFrom != "" && d < daysFrom) || (daysTo != "" && d > daysTo) {
					continue
				}
				if err := tr.SelectDate(ctx, d); err != nil {
					log.Warn("skipping stored date", "date", d, "error", err)
					continue
				}
				s := tr.Status()
				if len(s.Meals) == 0 {
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%d\t%d\t%s\n", s.Date, len(s.Meals), s.Totals.Calories, s.DailyLimit, s.State)
				shown++
			}
			if shown == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No logged days")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(daysCmd)
	daysCmd.Flags().StringVar(&daysFrom, "from", "", "First date YYYY-MM-DD")
	daysCmd.Flags().StringVar(&daysTo, "to", "", "Last date YYYY-MM-DD")
}
