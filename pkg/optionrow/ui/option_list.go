package ui

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/optionrow/pkg/optionrow"
	"github.com/BrandonKowalski/optionrow/pkg/optionrow/constants"
	"github.com/BrandonKowalski/optionrow/pkg/optionrow/internal"
	"github.com/BrandonKowalski/optionrow/pkg/optionrow/view"
)

// FooterHelpItem is a button hint shown along the bottom of the screen.
type FooterHelpItem struct {
	ButtonName string
	HelpText   string
}

// ListScreenSettings configures ShowOptionList.
type ListScreenSettings struct {
	InitialFocus      int
	DisableBackButton bool
	FooterHelpItems   []FooterHelpItem
	ConfirmButton     constants.VirtualButton // Default: VirtualButtonStart
	Margins           view.Padding            // Default: 20 on every side
}

type listScreenController[K optionrow.ItemKey] struct {
	list     *optionrow.OptionList[K]
	title    string
	settings ListScreenSettings

	focus        int
	visibleStart int
	maxVisible   int

	directional   internal.DirectionalInput
	lastInputTime time.Time

	// Rows built at rowsRevision; rebuilt once the list changes.
	rows         []*view.Node
	rowsRevision uint64

	// Row roots and boxes of the last painted frame, for pointer hit tests.
	frameRows  []*view.Node
	frameBoxes []view.Box
}

func newListScreenController[K optionrow.ItemKey](title string, list *optionrow.OptionList[K], settings ListScreenSettings) *listScreenController[K] {
	if settings.ConfirmButton == constants.VirtualButtonUnassigned {
		settings.ConfirmButton = constants.VirtualButtonStart
	}
	if settings.Margins == (view.Padding{}) {
		settings.Margins = view.UniformPadding(20)
	}

	focus := settings.InitialFocus
	if focus <= 0 || focus >= list.Len() {
		focus = 0
		if selected := list.Selected(); len(selected) > 0 {
			focus = list.Index(selected[0])
		}
	}

	return &listScreenController[K]{
		list:          list,
		title:         title,
		settings:      settings,
		focus:         focus,
		maxVisible:    1,
		directional:   internal.NewDirectionalInput(),
		lastInputTime: time.Now(),
	}
}

// ShowOptionList presents list in the SDL window and blocks until the user
// confirms or backs out. Rows send their requests to list, which decides
// what changes; the screen redraws from list on the next frame.
// Returns ErrCancelled if the user presses the back button.
func ShowOptionList[K optionrow.ItemKey](title string, list *optionrow.OptionList[K], settings ListScreenSettings) (*optionrow.OptionListResult[K], error) {
	if list.Len() == 0 {
		return nil, optionrow.ErrNoOptions
	}

	window := internal.GetWindow()
	if window == nil {
		return nil, optionrow.NewInfrastructureError("show_option_list", errNotInitialized)
	}

	painter := internal.NewPainter(window)
	defer painter.Destroy()

	c := newListScreenController(title, list, settings)

	var action optionrow.ListAction
	running := true
	for running {
		if event := sdl.WaitEventTimeout(constants.FrameDelayMillis); event != nil {
			if _, quit := event.(*sdl.QuitEvent); quit {
				action = optionrow.ListActionCancelled
				break
			}

			button, pointer := internal.ProcessSDLEvent(event)
			switch {
			case pointer != nil:
				scale := painter.Scale()
				c.handlePointer(int32(float32(pointer.X)/scale), int32(float32(pointer.Y)/scale))
			case button != nil && button.Pressed:
				if done, a := c.handleButton(button.Button); done {
					action = a
					running = false
				}
			case button != nil:
				c.directional.SetHeld(button.Button, false)
			}
		}

		if step := c.directional.Update(); step != 0 {
			c.moveFocus(step)
		}

		c.render(window, painter)
		window.Present()
	}

	internal.GetInternalLogger().Debug("Option list closed", "title", title, "action", action.String())

	if action == optionrow.ListActionCancelled {
		return nil, optionrow.ErrCancelled
	}

	return &optionrow.OptionListResult[K]{
		Selected: list.Selected(),
		Action:   action,
		Focused:  c.focus,
	}, nil
}

// handleButton returns true when the screen should close.
func (c *listScreenController[K]) handleButton(button constants.VirtualButton) (bool, optionrow.ListAction) {
	switch button {
	case constants.VirtualButtonUp, constants.VirtualButtonDown:
		if time.Since(c.lastInputTime) < constants.DefaultInputDelay {
			return false, 0
		}
		c.lastInputTime = time.Now()
		c.directional.SetHeld(button, true)
		if button == constants.VirtualButtonUp {
			c.moveFocus(-1)
		} else {
			c.moveFocus(1)
		}

	case constants.VirtualButtonA:
		// Every press is forwarded; the list ignores redundant requests.
		c.activateFocused()

	case constants.VirtualButtonB:
		if !c.settings.DisableBackButton {
			return true, optionrow.ListActionCancelled
		}

	case c.settings.ConfirmButton:
		return true, optionrow.ListActionConfirmed
	}
	return false, 0
}

// currentRows returns the cached rows while the list's revision is unchanged.
func (c *listScreenController[K]) currentRows() []*view.Node {
	if revision := c.list.Revision(); c.rows == nil || c.rowsRevision != revision {
		c.rowsRevision = revision
		c.rows = c.list.Rows()
	}
	return c.rows
}

func (c *listScreenController[K]) activateFocused() {
	rows := c.currentRows()
	if c.focus >= 0 && c.focus < len(rows) {
		view.Activate(rows[c.focus])
	}
}

func (c *listScreenController[K]) handlePointer(x, y int32) {
	hit := view.HitTest(c.frameBoxes, x, y)
	if hit == nil {
		return
	}
	for i, row := range c.frameRows {
		if row == hit {
			c.focus = c.visibleStart + i
			break
		}
	}
	view.Activate(hit)
}

func (c *listScreenController[K]) moveFocus(step int) {
	n := c.list.Len()
	if n == 0 {
		return
	}
	c.focus = (c.focus + step + n) % n
	c.scrollTo(c.focus)
}

func (c *listScreenController[K]) scrollTo(index int) {
	if index < c.visibleStart {
		c.visibleStart = index
	} else if index >= c.visibleStart+c.maxVisible {
		c.visibleStart = index - c.maxVisible + 1
	}
	if c.visibleStart < 0 {
		c.visibleStart = 0
	}
}

func (c *listScreenController[K]) render(window *internal.Window, painter *internal.Painter) {
	window.Clear()

	theme := internal.GetTheme()
	width, height := painter.LogicalSize(window)
	margins := c.settings.Margins
	y := margins.Top

	if c.title != "" {
		painter.PaintText(c.title, constants.TitleFontSize+8, margins.Left, y, theme.TextColor)
		_, th := painter.MeasureText(c.title, view.Style{FontSize: constants.TitleFontSize + 8})
		y += th + constants.RowPaddingVertical
	}

	footerHeight := c.renderFooter(painter, width, height)
	bottom := height - margins.Bottom - footerHeight

	rows := c.currentRows()
	_, rowHeight := view.Measure(rows[0], painter)
	if rowHeight > 0 {
		c.maxVisible = max(int((bottom-y)/rowHeight), 1)
	}
	c.scrollTo(c.focus)

	c.frameRows = c.frameRows[:0]
	c.frameBoxes = c.frameBoxes[:0]
	rowWidth := width - margins.Horizontal()

	for i := c.visibleStart; i < len(rows) && i < c.visibleStart+c.maxVisible; i++ {
		bounds := view.Rect{X: margins.Left, Y: y, W: rowWidth, H: rowHeight}
		palette := internal.TextPalette{Primary: theme.TextColor, Secondary: theme.HintColor}

		if i == c.focus {
			painter.FillRect(bounds, theme.HighlightColor)
			painter.FillRect(view.Rect{X: bounds.X, Y: bounds.Y, W: 4, H: bounds.H}, theme.AccentColor)
			palette = internal.TextPalette{Primary: theme.HighlightedTextColor, Secondary: theme.HighlightedTextColor}
		}

		boxes := view.Layout(rows[i], bounds, painter)
		painter.Paint(boxes, palette)

		c.frameRows = append(c.frameRows, rows[i])
		c.frameBoxes = append(c.frameBoxes, boxes...)
		y += rowHeight
	}
}

func (c *listScreenController[K]) renderFooter(painter *internal.Painter, width, height int32) int32 {
	if len(c.settings.FooterHelpItems) == 0 {
		return 0
	}

	theme := internal.GetTheme()
	style := view.Style{FontSize: constants.SubtitleFontSize}
	margins := c.settings.Margins

	_, lineHeight := painter.MeasureText("Ag", style)
	y := height - margins.Bottom - lineHeight
	x := margins.Left

	for _, item := range c.settings.FooterHelpItems {
		text := item.ButtonName + " " + item.HelpText
		w, _ := painter.MeasureText(text, style)
		if x+w > width-margins.Right {
			break
		}
		painter.PaintText(text, constants.SubtitleFontSize, x, y, theme.HintColor)
		x += w + 2*constants.RowPaddingHorizontal
	}
	return lineHeight + constants.RowPaddingVertical
}
