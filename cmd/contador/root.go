package contador

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	dbPath       string
	storeBackend string
)

var rootCmd = &cobra.Command{
	Use:           "contador",
	Short:         "contador tracks daily calories and nutrients from your terminal",
	Long:          "contador is a local-first calorie ledger: log meals or scaled recipes per day and compare them with a target derived from your body metrics and weight goal.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database (overrides CONTADOR_DB)")
	rootCmd.PersistentFlags().StringVar(&storeBackend, "store", "", "Store backend: sqlite, redis or memory (overrides CONTADOR_STORE)")
}
