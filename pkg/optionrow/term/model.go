package term

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/BrandonKowalski/optionrow/pkg/optionrow"
	"github.com/BrandonKowalski/optionrow/pkg/optionrow/view"
)

const defaultWidth = 60

// HelpText overrides the labels shown for the footer key hints.
type HelpText struct {
	Select  string
	Confirm string
	Cancel  string
}

// Settings configures a Model.
type Settings struct {
	Title        string
	Accent       *view.Color
	Help         HelpText
	InitialFocus int
}

// Model is a bubbletea model presenting an OptionList.
type Model[K optionrow.ItemKey] struct {
	list     *optionrow.OptionList[K]
	title    string
	renderer Renderer
	styles   Styles
	keys     keyMap
	help     help.Model

	focus  int
	width  int
	action optionrow.ListAction
	done   bool
}

// NewModel builds a Model over list. Focus starts on the first selected
// option unless settings.InitialFocus names a valid row.
func NewModel[K optionrow.ItemKey](list *optionrow.OptionList[K], settings Settings) *Model[K] {
	accent := view.BrandColor
	if settings.Accent != nil {
		accent = *settings.Accent
	}
	styles := DefaultStyles(accent)

	keys := defaultKeyMap()
	if settings.Help.Select != "" {
		keys.Select.SetHelp(keys.Select.Help().Key, settings.Help.Select)
	}
	if settings.Help.Confirm != "" {
		keys.Confirm.SetHelp(keys.Confirm.Help().Key, settings.Help.Confirm)
	}
	if settings.Help.Cancel != "" {
		keys.Cancel.SetHelp(keys.Cancel.Help().Key, settings.Help.Cancel)
	}

	focus := settings.InitialFocus
	if focus <= 0 || focus >= list.Len() {
		focus = 0
		if selected := list.Selected(); len(selected) > 0 {
			focus = max(list.Index(selected[0]), 0)
		}
	}

	return &Model[K]{
		list:     list,
		title:    settings.Title,
		renderer: NewRenderer(styles),
		styles:   styles,
		keys:     keys,
		help:     help.New(),
		focus:    focus,
		width:    defaultWidth,
		action:   optionrow.ListActionCancelled,
	}
}

func (m *Model[K]) Init() tea.Cmd {
	return nil
}

func (m *Model[K]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.move(-1)
		case key.Matches(msg, m.keys.Down):
			m.move(1)
		case key.Matches(msg, m.keys.Select):
			m.activateFocused()
		case key.Matches(msg, m.keys.Confirm):
			m.action = optionrow.ListActionConfirmed
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Cancel):
			m.action = optionrow.ListActionCancelled
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *Model[K]) View() string {
	var b strings.Builder
	if m.title != "" {
		b.WriteString(m.styles.Header.Render(m.title))
		b.WriteString("\n")
	}
	b.WriteString(m.renderer.RenderRows(m.list.Rows(), m.focus, m.width))
	b.WriteString("\n\n")
	b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	return b.String()
}

// Focus returns the index of the focused row.
func (m *Model[K]) Focus() int {
	return m.focus
}

// Done reports whether the user confirmed or cancelled.
func (m *Model[K]) Done() bool {
	return m.done
}

// Result reports the outcome. Returns ErrCancelled if the user backed out.
func (m *Model[K]) Result() (*optionrow.OptionListResult[K], error) {
	if m.action == optionrow.ListActionCancelled {
		return nil, optionrow.ErrCancelled
	}
	return &optionrow.OptionListResult[K]{
		Selected: m.list.Selected(),
		Action:   m.action,
		Focused:  m.focus,
	}, nil
}

func (m *Model[K]) move(delta int) {
	n := m.list.Len()
	if n == 0 {
		return
	}
	m.focus = (m.focus + delta + n) % n
}

func (m *Model[K]) activateFocused() {
	rows := m.list.Rows()
	if m.focus < 0 || m.focus >= len(rows) {
		return
	}
	view.Activate(rows[m.focus])
}

// Run runs a bubbletea program over list until the user confirms or cancels.
func Run[K optionrow.ItemKey](list *optionrow.OptionList[K], settings Settings, opts ...tea.ProgramOption) (*optionrow.OptionListResult[K], error) {
	if list.Len() == 0 {
		return nil, optionrow.ErrNoOptions
	}

	final, err := tea.NewProgram(NewModel(list, settings), opts...).Run()
	if err != nil {
		return nil, optionrow.NewInfrastructureError("run_terminal", err)
	}
	return final.(*Model[K]).Result()
}
