package internal

import (
	"time"

	"github.com/BrandonKowalski/optionrow/pkg/optionrow/constants"
)

// DirectionalInput turns a held Up or Down button into repeated focus
// steps. Lists only scroll vertically, so Left and Right are ignored.
type DirectionalInput struct {
	up, down       bool
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
	now            func() time.Time
}

// NewDirectionalInput creates a DirectionalInput with the default timing.
func NewDirectionalInput() DirectionalInput {
	return NewDirectionalInputWithTiming(constants.DefaultRepeatDelay, constants.DefaultRepeatInterval)
}

// NewDirectionalInputWithTiming creates a DirectionalInput with custom timing.
func NewDirectionalInputWithTiming(delay, interval time.Duration) DirectionalInput {
	return DirectionalInput{
		repeatDelay:    delay,
		repeatInterval: interval,
		lastRepeatTime: time.Now(),
		now:            time.Now,
	}
}

// SetHeld records a press or release. Returns true if the button was Up or Down.
func (d *DirectionalInput) SetHeld(button constants.VirtualButton, held bool) bool {
	switch button {
	case constants.VirtualButtonUp:
		d.up = held
	case constants.VirtualButtonDown:
		d.down = held
	default:
		return false
	}
	if held {
		d.lastRepeatTime = d.now()
	}
	d.hasRepeated = false
	return true
}

// Update returns -1 or 1 when a held direction should repeat this frame,
// 0 otherwise. Call it once per frame. Up wins when both are held.
func (d *DirectionalInput) Update() int {
	if !d.up && !d.down {
		return 0
	}

	threshold := d.repeatInterval
	if !d.hasRepeated {
		threshold = d.repeatDelay
	}

	now := d.now()
	if now.Sub(d.lastRepeatTime) < threshold {
		return 0
	}
	d.lastRepeatTime = now
	d.hasRepeated = true

	if d.up {
		return -1
	}
	return 1
}

// Reset clears held directions and timing state.
func (d *DirectionalInput) Reset() {
	d.up, d.down = false, false
	d.hasRepeated = false
	d.lastRepeatTime = d.now()
}
