// Package cannoli provides theming support for the Cannoli custom firmware.
// Cannoli is a community-developed CFW for retro handheld gaming devices.
package cannoli

import (
	"github.com/BrandonKowalski/optionrow/pkg/optionrow/internal"
	"github.com/BrandonKowalski/optionrow/pkg/optionrow/view"
)

// DefaultFontPath is where Cannoli ships its UI font.
const DefaultFontPath = "/mnt/SDCARD/System/fonts/Cannoli.ttf"

// InitCannoliTheme creates a theme with Cannoli's default colors and the specified font.
func InitCannoliTheme(fontPath string) internal.Theme {
	return internal.Theme{
		HighlightColor:       view.HexToColor(0xFFFFFF),
		AccentColor:          view.HexToColor(0x008080),
		TextColor:            view.HexToColor(0xFFFFFF),
		HighlightedTextColor: view.HexToColor(0x000000),
		HintColor:            view.HexToColor(0xB4B4B4),
		BackgroundColor:      view.HexToColor(0x000000),
		FontPath:             fontPath,
	}
}
