package contador

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/catapou/contador/internal/config"
	"github.com/catapou/contador/internal/store"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the contador store",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(_ context.Context, cfg *config.Config, _ *store.JSONStore, _ *slog.Logger) error {
			switch cfg.Store {
			case store.BackendRedis:
				fmt.Fprintf(cmd.OutOrStdout(), "Connected to redis store at %s\n", cfg.Redis.Addr)
			case store.BackendMemory:
				fmt.Fprintln(cmd.OutOrStdout(), "Using in-memory store; nothing will be saved")
			default:
				fmt.Fprintf(cmd.OutOrStdout(), "Initialized contador database at %s\n", cfg.DBPath)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
