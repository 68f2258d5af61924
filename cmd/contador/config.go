package contador

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/catapou/contador/internal/store"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "store: %s\n", cfg.Store)
		switch cfg.Store {
		case store.BackendRedis:
			password := "(none)"
			if cfg.Redis.Password != "" {
				password = "(set)"
			}
			fmt.Fprintf(out, "redis_addr: %s\nredis_db: %d\nredis_prefix: %s\nredis_password: %s\n", cfg.Redis.Addr, cfg.Redis.DB, cfg.Redis.Prefix, password)
		case store.BackendMemory:
		default:
			fmt.Fprintf(out, "db: %s\n", cfg.DBPath)
		}
		fmt.Fprintf(out, "log_level: %s\nlog_format: %s\nlog_output: %s\n", cfg.Logger.Level, cfg.Logger.Format, cfg.Logger.OutputPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
