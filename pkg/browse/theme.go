package browse

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Theme selects the color palette. The choice persists across runs.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// LoadTheme reads the persisted theme preference. A missing or unreadable
// preference falls back to the light theme.
func LoadTheme() Theme {
	path, err := themePath()
	if err != nil {
		return ThemeLight
	}
	return readTheme(path)
}

// SaveTheme persists the theme preference for the next run.
func SaveTheme(theme Theme) error {
	path, err := themePath()
	if err != nil {
		return err
	}
	return writeTheme(path, theme)
}

func themePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.WithStack(err)
	}
	return filepath.Join(dir, "showscope", "theme"), nil
}

func readTheme(path string) Theme {
	b, err := os.ReadFile(path)
	if err != nil {
		return ThemeLight
	}
	if Theme(strings.TrimSpace(string(b))) == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

func writeTheme(path string, theme Theme) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.WithStack(err)
	}
	if err := os.WriteFile(path, []byte(theme), 0o644); err != nil {
		return errors.WithStack(err)
	}
	return nil
}
