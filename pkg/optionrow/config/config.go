// Package config loads and saves the language picker's TOML configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/optionrow/pkg/optionrow/constants"
	"github.com/BrandonKowalski/optionrow/pkg/optionrow/view"
)

// Config holds all configuration settings.
type Config struct {
	UI      UIConfig      `toml:"ui"`
	Picker  PickerConfig  `toml:"picker"`
	Logging LoggingConfig `toml:"logging"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	WindowTitle string `toml:"window_title"`
	AccentColor string `toml:"accent_color"` // "#RRGGBB"
	FontPath    string `toml:"font_path"`
	Backend     string `toml:"backend"` // "sdl" or "term"
}

// PickerConfig holds the options shown and the current choice.
type PickerConfig struct {
	Locales    []string `toml:"locales"`
	Active     string   `toml:"active"`
	Mode       string   `toml:"mode"` // "single" or "multi"
	AllowEmpty bool     `toml:"allow_empty"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `toml:"level"` // "debug", "info", "warn", "error"
	Path  string `toml:"path"`  // Log file path; empty logs to stdout only
}

// Backends understood by the language picker command.
const (
	BackendSDL  = "sdl"
	BackendTerm = "term"
)

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		UI: UIConfig{
			WindowTitle: "Language",
			AccentColor: view.BrandColor.Hex(),
			FontPath:    "/mnt/SDCARD/System/fonts/Cannoli.ttf",
			Backend:     BackendSDL,
		},
		Picker: PickerConfig{
			Locales: []string{"en", "de", "es", "fr", "it", "ja", "ko", "pt-BR", "ru", "uk", "zh-Hans"},
			Active:  "en",
			Mode:    "single",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the TOML file at path on top of DefaultConfig. A missing file
// is not an error. OPTIONROW_LOG_LEVEL overrides logging.level.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("load config %s: %w", path, err)
		default:
			if undecoded := md.Undecoded(); len(undecoded) > 0 {
				keys := make([]string, len(undecoded))
				for i, k := range undecoded {
					keys[i] = k.String()
				}
				return cfg, fmt.Errorf("load config %s: unknown keys: %s", path, strings.Join(keys, ", "))
			}
		}
	}

	if level := os.Getenv(constants.LogLevelEnvVar); level != "" {
		cfg.Logging.Level = level
	}

	return cfg, cfg.Validate()
}

// Validate checks values that would otherwise fail later at runtime.
func (c Config) Validate() error {
	if _, err := view.ParseHexColor(c.UI.AccentColor); err != nil {
		return fmt.Errorf("ui.accent_color: %w", err)
	}
	switch c.UI.Backend {
	case BackendSDL, BackendTerm:
	default:
		return fmt.Errorf("ui.backend: unknown backend %q", c.UI.Backend)
	}
	switch c.Picker.Mode {
	case "single", "multi":
	default:
		return fmt.Errorf("picker.mode: unknown mode %q", c.Picker.Mode)
	}
	if len(c.Picker.Locales) == 0 {
		return errors.New("picker.locales: at least one locale is required")
	}
	if _, ok := logLevels[strings.ToLower(c.Logging.Level)]; !ok {
		return fmt.Errorf("logging.level: unknown level %q", c.Logging.Level)
	}
	return nil
}

var logLevels = map[string]slog.Level{
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
}

// SlogLevel returns the configured level, or Info for an unknown name.
func (l LoggingConfig) SlogLevel() slog.Level {
	if level, ok := logLevels[strings.ToLower(l.Level)]; ok {
		return level
	}
	return slog.LevelInfo
}

// Accent returns the parsed accent color.
func (c Config) Accent() view.Color {
	color, err := view.ParseHexColor(c.UI.AccentColor)
	if err != nil {
		return view.BrandColor
	}
	return color
}

// Save writes cfg to path, replacing the file atomically.
func Save(path string, cfg Config) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	mode := fs.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(dir, ".config-*.toml")
	if err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return fmt.Errorf("save config: %w", err)
	}
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("save config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return nil
}
