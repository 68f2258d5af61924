package contador

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/catapou/contador/internal/model"
	"github.com/catapou/contador/internal/service"
)

var summaryDate string

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the daily macro summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, summaryDate, func(ctx context.Context, tr *service.Tracker) error {
			st := tr.Status()
			fmt.Fprintf(cmd.OutOrStdout(), "Daily Macro Summary (%s)\n", st.Date)
			printNutrientLines(cmd.OutOrStdout(), "Total ", st.Totals)
			return nil
		})
	},
}

func printNutrientLines(w io.Writer, prefix string, p model.NutrientProfile) {
	for _, line := range service.NutrientLines(p) {
		if line.Decimal {
			fmt.Fprintf(w, "%s%s: %.1f %s\n", prefix, line.Label, line.Value, line.Unit)
			continue
		}
		fmt.Fprintf(w, "%s%s: %.0f %s\n", prefix, line.Label, line.Value, line.Unit)
	}
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	addDateFlag(summaryCmd, &summaryDate)
}
