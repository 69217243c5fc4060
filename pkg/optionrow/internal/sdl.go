package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var window *Window

// Init starts SDL, opens the window and loads fonts for the current theme.
func Init(title string, winOpts WindowOptions) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}

	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return fmt.Errorf("ttf init: %w", err)
	}

	if err := img.Init(img.INIT_PNG); err != nil {
		GetInternalLogger().Warn("SDL_image unavailable", "error", err)
	}

	openControllers()

	if winOpts.IsZero() {
		winOpts = WindowOptions{Resizable: true}
	}

	w, err := initWindow(title, winOpts)
	if err != nil {
		Cleanup()
		return err
	}
	window = w

	if err := initFonts(GetTheme()); err != nil {
		Cleanup()
		return err
	}

	return nil
}

// GetWindow returns the window opened by Init, or nil.
func GetWindow() *Window {
	return window
}

// Cleanup releases everything Init acquired. Safe to call after a failed Init.
func Cleanup() {
	closeIcons()
	closeFonts()
	if window != nil {
		window.close()
		window = nil
	}
	closeControllers()
	img.Quit()
	ttf.Quit()
	sdl.Quit()
	CloseLogger()
}
