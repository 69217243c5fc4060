package optionrow

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/atomic"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

//go:embed translations/*.toml
var translationFS embed.FS

// Message IDs of the strings the language screen shows.
const (
	MessageLanguageScreenTitle = "LanguageScreenTitle"
	MessageHelpSelect          = "HelpSelect"
	MessageHelpConfirm         = "HelpConfirm"
	MessageHelpBack            = "HelpBack"
)

var defaultMessages = map[string]*i18n.Message{
	MessageLanguageScreenTitle: {ID: MessageLanguageScreenTitle, Other: "Language"},
	MessageHelpSelect:          {ID: MessageHelpSelect, Other: "Select"},
	MessageHelpConfirm:         {ID: MessageHelpConfirm, Other: "Save"},
	MessageHelpBack:            {ID: MessageHelpBack, Other: "Back"},
}

// Preferences holds settings other goroutines may read while the picker runs.
type Preferences struct {
	locale *atomic.String
}

// NewPreferences returns preferences with the given active locale.
func NewPreferences(locale string) *Preferences {
	return &Preferences{locale: atomic.NewString(locale)}
}

// Locale returns the active locale tag.
func (p *Preferences) Locale() string {
	return p.locale.Load()
}

// SetLocale replaces the active locale tag.
func (p *Preferences) SetLocale(locale string) {
	p.locale.Store(locale)
}

// LanguagePicker is a single-select OptionList of UI languages. Each row's
// title is the language's own name and its subtitle is the name in the
// currently active language.
type LanguagePicker struct {
	tags   []language.Tag
	bundle *i18n.Bundle
	prefs  *Preferences
	list   *OptionList[string]
	logger *slog.Logger
}

// NewLanguagePicker builds a picker over BCP 47 locale tags. The active
// locale in prefs is matched against the tags to pick the initial row.
func NewLanguagePicker(locales []string, prefs *Preferences, logger *slog.Logger) (*LanguagePicker, error) {
	if len(locales) == 0 {
		return nil, ErrNoOptions
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	tags := make([]language.Tag, 0, len(locales))
	for _, raw := range locales {
		tag, err := language.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: locale %q: %v", ErrUnknownKey, raw, err)
		}
		tags = append(tags, tag)
	}

	bundle, err := loadBundle(translationFS)
	if err != nil {
		return nil, NewInfrastructureError("load_translations", err)
	}

	p := &LanguagePicker{
		tags:   tags,
		bundle: bundle,
		prefs:  prefs,
		logger: logger,
	}

	var initial []string
	if active, err := language.Parse(prefs.Locale()); err == nil {
		_, idx, confidence := language.NewMatcher(tags).Match(active)
		if confidence != language.No {
			initial = []string{tags[idx].String()}
		}
	} else {
		logger.Warn("Active locale is not a valid tag", "locale", prefs.Locale(), "error", err)
	}

	p.list = NewOptionList(p.options(), ListSettings[string]{
		Mode:    SelectionModeSingle,
		Initial: initial,
		OnChange: func(itemKey string, selected bool) {
			if !selected {
				return
			}
			p.prefs.SetLocale(itemKey)
			p.list.SetOptions(p.options())
			p.logger.Info("Active locale changed", "locale", itemKey)
		},
		Logger: logger,
	})

	return p, nil
}

func loadBundle(fsys fs.FS) (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	paths, err := fs.Glob(fsys, "translations/*.toml")
	if err != nil {
		return nil, err
	}
	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, err
		}
		if _, err := bundle.ParseMessageFileBytes(data, path); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	return bundle, nil
}

func (p *LanguagePicker) uiTag() language.Tag {
	tag, err := language.Parse(p.prefs.Locale())
	if err != nil {
		return language.English
	}
	return tag
}

func (p *LanguagePicker) options() []Option[string] {
	namer := display.Tags(p.uiTag())
	opts := make([]Option[string], len(p.tags))
	for i, tag := range p.tags {
		opts[i] = Option[string]{
			Key:      tag.String(),
			Title:    display.Self.Name(tag),
			Subtitle: namer.Name(tag),
		}
	}
	return opts
}

// List returns the underlying option list.
func (p *LanguagePicker) List() *OptionList[string] {
	return p.list
}

// Preferences returns the preferences the picker writes to.
func (p *LanguagePicker) Preferences() *Preferences {
	return p.prefs
}

// Locales returns the canonical form of each configured tag, in order.
// These are the keys of the picker's rows.
func (p *LanguagePicker) Locales() []string {
	locales := make([]string, 0, len(p.tags))
	seen := make(map[string]bool, len(p.tags))
	for _, tag := range p.tags {
		key := tag.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		locales = append(locales, key)
	}
	return locales
}

// LocaleSetList returns a multi-select list over the same rows with every
// configured locale selected, for choosing which locales to offer.
func (p *LanguagePicker) LocaleSetList(allowEmpty bool) *OptionList[string] {
	return NewOptionList(p.options(), ListSettings[string]{
		Mode:       SelectionModeMulti,
		AllowEmpty: allowEmpty,
		Initial:    p.Locales(),
		Logger:     p.logger,
	})
}

// Localize returns the message in the active locale, falling back to English.
func (p *LanguagePicker) Localize(messageID string) string {
	def, ok := defaultMessages[messageID]
	if !ok {
		def = &i18n.Message{ID: messageID, Other: messageID}
	}

	localizer := i18n.NewLocalizer(p.bundle, p.prefs.Locale(), language.English.String())
	msg, err := localizer.Localize(&i18n.LocalizeConfig{DefaultMessage: def})
	if msg == "" {
		p.logger.Debug("Missing translation", "id", messageID, "locale", p.prefs.Locale(), "error", err)
		return def.Other
	}
	return msg
}

// Title returns the localized screen title.
func (p *LanguagePicker) Title() string {
	return p.Localize(MessageLanguageScreenTitle)
}
