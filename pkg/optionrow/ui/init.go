// Package ui shows option lists in an SDL window on handheld Linux devices
// and desktops. It owns the event loop; rows come from optionrow and are
// rebuilt from the list's state on every frame.
package ui

import (
	"log/slog"
	"os"

	"github.com/BrandonKowalski/optionrow/pkg/optionrow"
	"github.com/BrandonKowalski/optionrow/pkg/optionrow/constants"
	"github.com/BrandonKowalski/optionrow/pkg/optionrow/internal"
	"github.com/BrandonKowalski/optionrow/pkg/optionrow/platform/cannoli"
	"github.com/BrandonKowalski/optionrow/pkg/optionrow/view"
)

// WindowOptions selects SDL window flags.
type WindowOptions = internal.WindowOptions

// Options configures SDL initialization.
type Options struct {
	WindowTitle   string        // Window title displayed in windowed mode
	WindowOptions WindowOptions // SDL window flags (borderless, resizable, etc.)
	FontPath      string        // UI font; defaults to the Cannoli system font
	IconFontPath  string        // Optional icon font for the checkmark glyph
	AccentColor   *view.Color   // Focus bar color override
	LogPath       string        // Full path for the log file; empty logs to stdout only
	LogLevel      string        // "debug", "info", "warn" or "error"
}

// Init initializes SDL, theming and input handling.
// Must be called before ShowOptionList.
func Init(options Options) error {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}
	internal.SetRawLogLevel(options.LogLevel)

	if os.Getenv(constants.EnvironmentEnvVar) == constants.Development {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	fontPath := options.FontPath
	if fontPath == "" {
		fontPath = cannoli.DefaultFontPath
	}
	theme := cannoli.InitCannoliTheme(fontPath)
	theme.IconFontPath = options.IconFontPath
	if options.AccentColor != nil {
		theme.AccentColor = *options.AccentColor
	}
	internal.SetTheme(theme)

	if err := internal.Init(options.WindowTitle, options.WindowOptions); err != nil {
		return optionrow.NewInfrastructureError("init", err)
	}
	return nil
}

// Close releases all SDL resources. Must be called before program exit.
func Close() {
	internal.Cleanup()
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}
