package contador

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/catapou/contador/internal/app"
	"github.com/catapou/contador/internal/config"
	"github.com/catapou/contador/internal/logger"
	"github.com/catapou/contador/internal/service"
	"github.com/catapou/contador/internal/store"
)

// resolveConfig applies the global flags on top of .env and the environment.
func resolveConfig() (*config.Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	if storeBackend != "" {
		cfg.Store = strings.ToLower(storeBackend)
	}
	if cfg.Store == "" || cfg.Store == store.BackendSQLite {
		if cfg.DBPath, err = app.ResolveDBPath(cfg.DBPath); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func storeOptions(cfg *config.Config) store.Options {
	return store.Options{
		Backend:    cfg.Store,
		SQLitePath: cfg.DBPath,
		Redis: store.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
		},
	}
}

func withStore(cmd *cobra.Command, run func(ctx context.Context, cfg *config.Config, st *store.JSONStore, log *slog.Logger) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	log, closeLog, err := logger.New(logger.Config{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
		AddSource:  cfg.Logger.Level == logger.LevelDebug,
	})
	if err != nil {
		return err
	}
	defer closeLog()

	st, closeStore, err := store.Open(ctx, storeOptions(cfg), log)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Warn("failed to close store", "error", err)
		}
	}()
	log.Debug("opened store", "backend", cfg.Store)
	return run(ctx, cfg, st, log)
}

// withTracker opens the store and a tracker positioned on date, or on today
// when date is empty.
func withTracker(cmd *cobra.Command, date string, run func(ctx context.Context, tr *service.Tracker) error) error {
	return withStore(cmd, func(ctx context.Context, _ *config.Config, st *store.JSONStore, log *slog.Logger) error {
		tr, err := service.OpenTracker(ctx, st, service.TrackerOptions{Log: log})
		if err != nil {
			return err
		}
		if date = strings.TrimSpace(date); date != "" {
			if err := tr.SelectDate(ctx, date); err != nil {
				return err
			}
		}
		return run(ctx, tr)
	})
}

// nutrientFlags binds the shared nutrient flags of the meal and recipe forms.
type nutrientFlags struct {
	name     string
	calories string
	protein  string
	carbs    string
	fats     string
	salt     string
	fiber    string
	polyols  string
	starch   string
}

func (f *nutrientFlags) register(cmd *cobra.Command, unit string) {
	cmd.Flags().StringVar(&f.name, "name", "", "Name")
	cmd.Flags().StringVar(&f.calories, "calories", "", "Calories (kcal"+unit+")")
	cmd.Flags().StringVar(&f.protein, "protein", "", "Protein grams"+unit)
	cmd.Flags().StringVar(&f.carbs, "carbs", "", "Carbohydrate grams"+unit)
	cmd.Flags().StringVar(&f.fats, "fats", "", "Fat grams"+unit)
	cmd.Flags().StringVar(&f.salt, "salt", "", "Salt grams"+unit+", decimals allowed")
	cmd.Flags().StringVar(&f.fiber, "fiber", "", "Fiber grams"+unit)
	cmd.Flags().StringVar(&f.polyols, "polyols", "", "Polyol grams"+unit)
	cmd.Flags().StringVar(&f.starch, "starch", "", "Starch grams"+unit)
}

func (f *nutrientFlags) form() service.MealForm {
	return service.MealForm{
		Name:     f.name,
		Calories: f.calories,
		Protein:  f.protein,
		Carbs:    f.carbs,
		Fats:     f.fats,
		Salt:     f.salt,
		Fiber:    f.fiber,
		Polyols:  f.polyols,
		Starch:   f.starch,
	}
}

// overlay starts from base and replaces the fields whose flags were set.
func (f *nutrientFlags) overlay(cmd *cobra.Command, base service.MealForm) service.MealForm {
	set := func(flag string, dst *string, v string) {
		if cmd.Flags().Changed(flag) {
			*dst = v
		}
	}
	set("name", &base.Name, f.name)
	set("calories", &base.Calories, f.calories)
	set("protein", &base.Protein, f.protein)
	set("carbs", &base.Carbs, f.carbs)
	set("fats", &base.Fats, f.fats)
	set("salt", &base.Salt, f.salt)
	set("fiber", &base.Fiber, f.fiber)
	set("polyols", &base.Polyols, f.polyols)
	set("starch", &base.Starch, f.starch)
	return base
}

func addDateFlag(cmd *cobra.Command, dst *string) {
	cmd.Flags().StringVar(dst, "date", "", "Date YYYY-MM-DD (default today)")
}

func formatSalt(v float64) string {
	return fmt.Sprintf("%.1f", v)
}
