package contador

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/catapou/contador/internal/service"
)

const progressBarWidth = 30

var todayDate string

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show calories left or exceeded, progress and meals of a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, todayDate, func(ctx context.Context, tr *service.Tracker) error {
			out := cmd.OutOrStdout()
			st := tr.Status()
			fmt.Fprintf(out, "Date: %s\n", st.Date)
			if tr.NeedsOnboarding() {
				fmt.Fprintln(out, "Profile not set (run `contador profile set` for a calorie recommendation)")
			}
			if st.LimitSource == service.LimitNone {
				fmt.Fprintln(out, "Daily limit: not set")
			} else {
				fmt.Fprintf(out, "Daily limit: %d Kcal (%s)\n", st.DailyLimit, st.LimitSource)
			}
			fmt.Fprintf(out, "Calories consumed: %d Kcal\n", st.Totals.Calories)
			switch st.State {
			case service.OverLimit:
				fmt.Fprintf(out, "Calories exceeded by: %d Kcal\n", st.Exceeded)
			case service.UnderOrAtLimit:
				fmt.Fprintf(out, "Calories left to consume: %d Kcal\n", st.Remaining)
			}
			fmt.Fprintln(out, renderProgressBar(st, colorEnabled(out)))

			fmt.Fprintln(out)
			fmt.Fprintln(out, "Your Meals Today!")
			if len(st.Meals) == 0 {
				fmt.Fprintln(out, "No meals logged")
				return nil
			}
			printMealTable(out, st.Meals)
			return nil
		})
	},
}

func renderProgressBar(st service.DayStatus, color bool) string {
	filled := int(math.Round(st.Fraction * progressBarWidth))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", progressBarWidth-filled)
	if color {
		r, g, b := st.Color.RGB8()
		bar = fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", r, g, b, bar)
	}
	return fmt.Sprintf("[%s] %3.0f%% %s", bar, st.Fraction*100, st.Color.Hex())
}

// colorEnabled reports whether w is a terminal and NO_COLOR is unset.
func colorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func init() {
	rootCmd.AddCommand(todayCmd)
	addDateFlag(todayCmd, &todayDate)
}
