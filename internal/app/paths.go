package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	appDirName = "contador"
	dbFileName = "contador.db"
)

// ResolveDBPath returns override when set, after expanding a leading "~/"
// and making it absolute; otherwise the default location.
func ResolveDBPath(override string) (string, error) {
	override = strings.TrimSpace(override)
	if override == "" {
		return DefaultDBPath()
	}
	if override == "~" || strings.HasPrefix(override, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		override = filepath.Join(home, strings.TrimPrefix(override, "~"))
	}
	abs, err := filepath.Abs(override)
	if err != nil {
		return "", fmt.Errorf("resolve db path %q: %w", override, err)
	}
	return abs, nil
}

// DefaultDBPath places the database under the user's config directory,
// e.g. ~/.config/contador/contador.db on Linux.
func DefaultDBPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, appDirName, dbFileName), nil
}

// EnsureDBDir creates the parent directory of path, private to the user.
func EnsureDBDir(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create db directory: %w", err)
	}
	return nil
}
