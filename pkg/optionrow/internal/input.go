package internal

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/optionrow/pkg/optionrow/constants"
)

// Event is an input event mapped to a virtual button.
type Event struct {
	Button  constants.VirtualButton
	Pressed bool
}

// PointerEvent is a completed click or tap in window pixels.
type PointerEvent struct {
	X, Y int32
}

var controllers []*sdl.GameController

func openControllers() {
	for i := 0; i < sdl.NumJoysticks(); i++ {
		if !sdl.IsGameController(i) {
			continue
		}
		if c := sdl.GameControllerOpen(i); c != nil {
			controllers = append(controllers, c)
		}
	}
	GetInternalLogger().Debug("Opened game controllers", "count", len(controllers))
}

func closeControllers() {
	for _, c := range controllers {
		c.Close()
	}
	controllers = nil
}

// ProcessSDLEvent maps keyboard and controller events to virtual buttons and
// left mouse releases to pointer events. Other events yield neither.
func ProcessSDLEvent(event sdl.Event) (*Event, *PointerEvent) {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return nil, nil
		}
		button := keyButton(e.Keysym.Sym)
		if button == constants.VirtualButtonUnassigned {
			return nil, nil
		}
		return &Event{Button: button, Pressed: e.State == sdl.PRESSED}, nil

	case *sdl.ControllerButtonEvent:
		button := controllerButton(int(e.Button))
		if button == constants.VirtualButtonUnassigned {
			return nil, nil
		}
		return &Event{Button: button, Pressed: e.State == sdl.PRESSED}, nil

	case *sdl.MouseButtonEvent:
		if e.Button != sdl.BUTTON_LEFT || e.State != sdl.RELEASED {
			return nil, nil
		}
		return nil, &PointerEvent{X: e.X, Y: e.Y}
	}
	return nil, nil
}

func keyButton(sym sdl.Keycode) constants.VirtualButton {
	switch sym {
	case sdl.K_UP:
		return constants.VirtualButtonUp
	case sdl.K_DOWN:
		return constants.VirtualButtonDown
	case sdl.K_LEFT:
		return constants.VirtualButtonLeft
	case sdl.K_RIGHT:
		return constants.VirtualButtonRight
	case sdl.K_RETURN, sdl.K_SPACE, sdl.K_a:
		return constants.VirtualButtonA
	case sdl.K_ESCAPE, sdl.K_BACKSPACE, sdl.K_b:
		return constants.VirtualButtonB
	case sdl.K_s:
		return constants.VirtualButtonStart
	case sdl.K_TAB:
		return constants.VirtualButtonSelect
	case sdl.K_h:
		return constants.VirtualButtonMenu
	}
	return constants.VirtualButtonUnassigned
}

func controllerButton(button int) constants.VirtualButton {
	switch button {
	case int(sdl.CONTROLLER_BUTTON_DPAD_UP):
		return constants.VirtualButtonUp
	case int(sdl.CONTROLLER_BUTTON_DPAD_DOWN):
		return constants.VirtualButtonDown
	case int(sdl.CONTROLLER_BUTTON_DPAD_LEFT):
		return constants.VirtualButtonLeft
	case int(sdl.CONTROLLER_BUTTON_DPAD_RIGHT):
		return constants.VirtualButtonRight
	// Nintendo-style layout: the east button confirms.
	case int(sdl.CONTROLLER_BUTTON_B):
		return constants.VirtualButtonA
	case int(sdl.CONTROLLER_BUTTON_A):
		return constants.VirtualButtonB
	case int(sdl.CONTROLLER_BUTTON_Y):
		return constants.VirtualButtonX
	case int(sdl.CONTROLLER_BUTTON_X):
		return constants.VirtualButtonY
	case int(sdl.CONTROLLER_BUTTON_START):
		return constants.VirtualButtonStart
	case int(sdl.CONTROLLER_BUTTON_BACK):
		return constants.VirtualButtonSelect
	case int(sdl.CONTROLLER_BUTTON_GUIDE):
		return constants.VirtualButtonMenu
	}
	return constants.VirtualButtonUnassigned
}
