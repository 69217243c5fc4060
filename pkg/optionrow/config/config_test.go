package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/optionrow/pkg/optionrow/view"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("OPTIONROW_LOG_LEVEL", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	t.Setenv("OPTIONROW_LOG_LEVEL", "")

	path := writeFile(t, `
[ui]
accent_color = "#008080"
backend = "term"

[picker]
locales = ["en", "de"]
active = "de"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "term", cfg.UI.Backend)
	require.Equal(t, view.HexToColor(0x008080), cfg.Accent())
	require.Equal(t, []string{"en", "de"}, cfg.Picker.Locales)
	require.Equal(t, "de", cfg.Picker.Active)
	require.Equal(t, "single", cfg.Picker.Mode)
	require.Equal(t, DefaultConfig().UI.WindowTitle, cfg.UI.WindowTitle)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeFile(t, `
[picker]
langs = ["en"]
`)
	_, err := Load(path)
	require.ErrorContains(t, err, "picker.langs")
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("OPTIONROW_LOG_LEVEL", "")

	tests := map[string]string{
		"accent":  "[ui]\naccent_color = \"teal\"\n",
		"backend": "[ui]\nbackend = \"gtk\"\n",
		"mode":    "[picker]\nmode = \"some\"\n",
		"locales": "[picker]\nlocales = []\n",
		"level":   "[logging]\nlevel = \"loud\"\n",
		"syntax":  "[picker\n",
	}
	for name, content := range tests {
		_, err := Load(writeFile(t, content))
		require.Error(t, err, name)
	}
}

func TestLoadEnvOverridesLevel(t *testing.T) {
	t.Setenv("OPTIONROW_LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Logging.Level)
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("OPTIONROW_LOG_LEVEL", "")

	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := DefaultConfig()
	cfg.Picker.Active = "ja"
	cfg.Picker.Locales = []string{"en", "ja"}

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary file left behind")
}

func TestSavePreservesFileMode(t *testing.T) {
	t.Setenv("OPTIONROW_LOG_LEVEL", "")

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, Save(path, DefaultConfig()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0644), info.Mode().Perm())

	require.NoError(t, os.Chmod(path, 0640))
	require.NoError(t, Save(path, DefaultConfig()))

	info, err = os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0640), info.Mode().Perm())
}

func TestLoggingSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"Error", slog.LevelError},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			require.Equal(t, tt.want, LoggingConfig{Level: tt.level}.SlogLevel())
		})
	}

	cfg := DefaultConfig()
	cfg.Logging.Level = "warning"
	require.NoError(t, cfg.Validate())
}
