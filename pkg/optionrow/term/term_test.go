package term

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/optionrow/pkg/optionrow"
	"github.com/BrandonKowalski/optionrow/pkg/optionrow/view"
)

func newTestList(settings optionrow.ListSettings[string]) *optionrow.OptionList[string] {
	return optionrow.NewOptionList([]optionrow.Option[string]{
		{Key: "en", Title: "English", Subtitle: "English"},
		{Key: "de", Title: "Deutsch", Subtitle: "German"},
		{Key: "fr", Title: "français", Subtitle: "French"},
	}, settings)
}

func renderRow(selected bool, width int) string {
	row := optionrow.SelectableOptionRow(optionrow.RowProps[string]{
		ItemKey:                  "de",
		Title:                    "Deutsch",
		Subtitle:                 "German",
		Selected:                 selected,
		OnRequestSelectionChange: func(string, bool) {},
	})
	return NewRenderer(DefaultStyles(view.BrandColor)).Render(row, width)
}

func TestRenderSelectedRow(t *testing.T) {
	out := renderRow(true, 40)
	require.Contains(t, out, "Deutsch")
	require.Contains(t, out, "German")
	require.Contains(t, out, "✓")

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	require.Less(t, strings.Index(out, "Deutsch"), strings.Index(out, "German"))
}

func TestRenderUnselectedRowHasNoCheckmark(t *testing.T) {
	out := renderRow(false, 40)
	require.Contains(t, out, "Deutsch")
	require.NotContains(t, out, "✓")
}

func TestRenderRowFillsWidth(t *testing.T) {
	for _, selected := range []bool{true, false} {
		require.Equal(t, 40, lipgloss.Width(renderRow(selected, 40)))
	}
}

func TestRenderRowsMarksFocus(t *testing.T) {
	list := newTestList(optionrow.ListSettings[string]{})
	out := NewRenderer(DefaultStyles(view.BrandColor)).RenderRows(list.Rows(), 1, 40)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 6)
	require.NotContains(t, lines[0], "›")
	require.Contains(t, lines[2], "›")
	require.Contains(t, lines[2], "Deutsch")
}

func press(m *Model[string], msg tea.KeyMsg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelFocusFollowsSelection(t *testing.T) {
	m := NewModel(newTestList(optionrow.ListSettings[string]{Initial: []string{"fr"}}), Settings{})
	require.Equal(t, 2, m.Focus())

	m = NewModel(newTestList(optionrow.ListSettings[string]{Initial: []string{"fr"}}), Settings{InitialFocus: 1})
	require.Equal(t, 1, m.Focus())
}

func TestModelNavigationWraps(t *testing.T) {
	m := NewModel(newTestList(optionrow.ListSettings[string]{}), Settings{})

	press(m, tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, 2, m.Focus())

	press(m, runes("j"))
	require.Equal(t, 0, m.Focus())

	press(m, tea.KeyMsg{Type: tea.KeyDown})
	press(m, runes("k"))
	require.Equal(t, 0, m.Focus())
}

func TestModelEnterRequestsChange(t *testing.T) {
	var requests []bool
	list := newTestList(optionrow.ListSettings[string]{
		Initial:  []string{"en"},
		OnChange: func(_ string, v bool) { requests = append(requests, v) },
	})
	m := NewModel(list, Settings{})

	press(m, tea.KeyMsg{Type: tea.KeyDown})
	require.Nil(t, press(m, tea.KeyMsg{Type: tea.KeyEnter}))
	require.Equal(t, []string{"de"}, list.Selected())

	// Space activates too; the focused row is now selected so it asks to deselect.
	press(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	require.Equal(t, []string{"de"}, list.Selected())
	require.Equal(t, []bool{true}, requests)
}

func TestModelConfirm(t *testing.T) {
	list := newTestList(optionrow.ListSettings[string]{Mode: optionrow.SelectionModeMulti})
	m := NewModel(list, Settings{})

	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	press(m, tea.KeyMsg{Type: tea.KeyDown})
	press(m, tea.KeyMsg{Type: tea.KeyDown})
	press(m, tea.KeyMsg{Type: tea.KeyEnter})

	cmd := press(m, runes("s"))
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
	require.True(t, m.Done())

	result, err := m.Result()
	require.NoError(t, err)
	require.Equal(t, []string{"en", "fr"}, result.Selected)
	require.Equal(t, optionrow.ListActionConfirmed, result.Action)
	require.Equal(t, 2, result.Focused)
}

func TestModelCancel(t *testing.T) {
	for _, msg := range []tea.KeyMsg{{Type: tea.KeyEsc}, runes("q")} {
		m := NewModel(newTestList(optionrow.ListSettings[string]{}), Settings{})
		require.NotNil(t, press(m, msg))

		result, err := m.Result()
		require.Nil(t, result)
		require.ErrorIs(t, err, optionrow.ErrCancelled)
	}
}

func TestModelView(t *testing.T) {
	m := NewModel(newTestList(optionrow.ListSettings[string]{Initial: []string{"de"}}), Settings{
		Title: "Sprache",
		Help:  HelpText{Confirm: "Speichern"},
	})
	m.Update(tea.WindowSizeMsg{Width: 50, Height: 20})

	out := m.View()
	require.True(t, strings.HasPrefix(out, "Sprache"))
	require.Contains(t, out, "français")
	require.Contains(t, out, "✓")
	require.Contains(t, out, "Speichern")
}

func TestRunWithoutOptions(t *testing.T) {
	list := optionrow.NewOptionList[string](nil, optionrow.ListSettings[string]{})
	_, err := Run(list, Settings{})
	require.ErrorIs(t, err, optionrow.ErrNoOptions)
}
