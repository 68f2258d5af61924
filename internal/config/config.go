package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/catapou/contador/internal/logger"
)

const envPrefix = "CONTADOR_"

type Config struct {
	// DBPath is empty when the default location should be used.
	DBPath string
	Store  string
	Redis  RedisConfig
	Logger LoggerConfig
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

type LoggerConfig struct {
	Level      logger.LogLevel
	OutputPath string
	Format     string
}

// LoadDotEnv loads variables from the given .env files without overriding
// ones already set. Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	redisDB, err := strconv.Atoi(getEnvOrDefault("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("parse %sREDIS_DB: %w", envPrefix, err)
	}
	return &Config{
		DBPath: getEnvOrDefault("DB", ""),
		Store:  strings.ToLower(getEnvOrDefault("STORE", "sqlite")),
		Redis: RedisConfig{
			Addr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
			Password: getEnvOrDefault("REDIS_PASSWORD", ""),
			DB:       redisDB,
			Prefix:   getEnvOrDefault("REDIS_PREFIX", "contador:"),
		},
		Logger: LoggerConfig{
			Level:      logger.ParseLevel(getEnvOrDefault("LOG_LEVEL", "warn"), logger.LevelWarn),
			OutputPath: getEnvOrDefault("LOG_OUTPUT", "stderr"),
			Format:     getEnvOrDefault("LOG_FORMAT", "text"),
		},
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(envPrefix + key)); value != "" {
		return value
	}
	return defaultValue
}
