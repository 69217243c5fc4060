package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/BrandonKowalski/optionrow/pkg/optionrow"
	"github.com/BrandonKowalski/optionrow/pkg/optionrow/config"
	"github.com/BrandonKowalski/optionrow/pkg/optionrow/constants"
	"github.com/BrandonKowalski/optionrow/pkg/optionrow/term"
	"github.com/BrandonKowalski/optionrow/pkg/optionrow/ui"
)

func main() {
	configPath := flag.String("config", "languagepicker.toml", "Path to the TOML config file")
	backend := flag.String("backend", "", "Rendering backend: sdl or term (overrides ui.backend)")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn or error (overrides logging.level)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *backend != "" {
		cfg.UI.Backend = *backend
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	if err := run(*configPath, cfg); err != nil {
		if optionrow.IsCancelled(err) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "languagepicker: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, cfg config.Config) error {
	mode, err := optionrow.ParseSelectionMode(cfg.Picker.Mode)
	if err != nil {
		return err
	}

	if cfg.UI.Backend == config.BackendSDL {
		err := ui.Init(ui.Options{
			WindowTitle: cfg.UI.WindowTitle,
			FontPath:    cfg.UI.FontPath,
			AccentColor: ptr(cfg.Accent()),
			LogPath:     cfg.Logging.Path,
			LogLevel:    cfg.Logging.Level,
		})
		if err != nil {
			return err
		}
		defer ui.Close()
	}

	logger, closeLog := newLogger(cfg)
	defer closeLog()

	picker, err := optionrow.NewLanguagePicker(cfg.Picker.Locales, optionrow.NewPreferences(cfg.Picker.Active), logger)
	if err != nil {
		return err
	}

	// Multi mode edits which locales are offered instead of the active one.
	list := picker.List()
	if mode == optionrow.SelectionModeMulti {
		list = picker.LocaleSetList(cfg.Picker.AllowEmpty)
	}

	result, err := show(cfg, picker, list)
	if err != nil {
		return err
	}

	if mode == optionrow.SelectionModeMulti {
		if len(result.Selected) == 0 {
			return errors.New("no locales selected")
		}
		cfg.Picker.Locales = result.Selected
	} else {
		cfg.Picker.Active = picker.Preferences().Locale()
	}

	if err := config.Save(configPath, cfg); err != nil {
		return err
	}
	logger.Info("Saved language settings", "path", configPath, "active", cfg.Picker.Active, "locales", cfg.Picker.Locales)

	if mode == optionrow.SelectionModeMulti {
		for _, locale := range cfg.Picker.Locales {
			fmt.Println(locale)
		}
		return nil
	}
	fmt.Println(cfg.Picker.Active)
	return nil
}

func show(cfg config.Config, picker *optionrow.LanguagePicker, list *optionrow.OptionList[string]) (*optionrow.OptionListResult[string], error) {
	if cfg.UI.Backend == config.BackendTerm {
		return term.Run(list, term.Settings{
			Title:  picker.Title(),
			Accent: ptr(cfg.Accent()),
			Help: term.HelpText{
				Select:  picker.Localize(optionrow.MessageHelpSelect),
				Confirm: picker.Localize(optionrow.MessageHelpConfirm),
				Cancel:  picker.Localize(optionrow.MessageHelpBack),
			},
		})
	}

	return ui.ShowOptionList(picker.Title(), list, ui.ListScreenSettings{
		FooterHelpItems: []ui.FooterHelpItem{
			{ButtonName: constants.VirtualButtonB.GetName(), HelpText: picker.Localize(optionrow.MessageHelpBack)},
			{ButtonName: constants.VirtualButtonA.GetName(), HelpText: picker.Localize(optionrow.MessageHelpSelect)},
			{ButtonName: constants.VirtualButtonStart.GetName(), HelpText: picker.Localize(optionrow.MessageHelpConfirm)},
		},
	})
}

// newLogger returns the SDL backend's logger. The terminal backend logs JSON
// to logging.path, or stderr, so log lines stay out of the rendered screen.
func newLogger(cfg config.Config) (*slog.Logger, func()) {
	if cfg.UI.Backend == config.BackendSDL {
		return ui.GetLogger(), func() {}
	}

	level := new(slog.LevelVar)
	level.Set(cfg.Logging.SlogLevel())

	out, closeOut := os.Stderr, func() {}
	if cfg.Logging.Path != "" {
		f, err := os.OpenFile(cfg.Logging.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err == nil {
			out, closeOut = f, func() { f.Close() }
		}
	}
	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})), closeOut
}

func ptr[T any](v T) *T {
	return &v
}
