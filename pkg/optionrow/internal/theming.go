package internal

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/optionrow/pkg/optionrow/view"
)

// Theme defines the visual appearance of option lists.
type Theme struct {
	HighlightColor       view.Color // Focused row background
	AccentColor          view.Color // Selection indicator
	TextColor            view.Color // Titles
	HighlightedTextColor view.Color // Text on the focused row
	HintColor            view.Color // Subtitles and footer help
	BackgroundColor      view.Color // Screen background
	FontPath             string     // Path to the primary UI font
	IconFontPath         string     // Optional icon font; the SVG checkmark is used without it
}

var currentTheme Theme

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// ToSDL converts a view color for the SDL renderer.
func ToSDL(c view.Color) sdl.Color {
	return sdl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
