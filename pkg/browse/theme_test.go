package browse

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "showscope", "theme")

	require.NoError(t, writeTheme(path, ThemeDark))
	assert.Equal(t, ThemeDark, readTheme(path))

	require.NoError(t, writeTheme(path, ThemeLight))
	assert.Equal(t, ThemeLight, readTheme(path))
}

func TestReadThemeDefaultsToLight(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	// Missing file.
	assert.Equal(t, ThemeLight, readTheme(filepath.Join(dir, "theme")))

	// Garbage content.
	path := filepath.Join(dir, "garbage")
	require.NoError(t, os.WriteFile(path, []byte("solarized\n"), 0o644))
	assert.Equal(t, ThemeLight, readTheme(path))
}

func TestReadThemeTrimsWhitespace(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "theme")
	require.NoError(t, os.WriteFile(path, []byte("dark\n"), 0o644))
	assert.Equal(t, ThemeDark, readTheme(path))
}
