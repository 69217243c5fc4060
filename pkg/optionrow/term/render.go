// Package term renders optionrow view trees in a terminal with lipgloss and
// drives option lists with a bubbletea program.
package term

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/BrandonKowalski/optionrow/pkg/optionrow/constants"
	"github.com/BrandonKowalski/optionrow/pkg/optionrow/view"
)

// Terminal cells are treated as 8x16 pixels when converting padding.
const (
	cellWidth  = 8
	cellHeight = 16
)

// glyphs maps icon-font code points to printable stand-ins.
var glyphs = map[string]string{
	constants.Done: "✓",
}

// Styles holds the lipgloss styles used to draw rows.
type Styles struct {
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Focused   lipgloss.Style
	Cursor    lipgloss.Style
	Header    lipgloss.Style
	Indicator lipgloss.Style
}

// DefaultStyles returns the default style configuration.
func DefaultStyles(accent view.Color) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			TabWidth(lipgloss.NoTabConversion),
		Subtitle: lipgloss.NewStyle().
			TabWidth(lipgloss.NoTabConversion).
			Faint(true),
		Focused: lipgloss.NewStyle().
			Bold(true),
		Cursor: lipgloss.NewStyle().
			Foreground(lipgloss.Color(accent.Hex())),
		Header: lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1),
		Indicator: lipgloss.NewStyle(),
	}
}

// Renderer draws view trees as styled text.
type Renderer struct {
	styles Styles
}

// NewRenderer returns a renderer using styles.
func NewRenderer(styles Styles) Renderer {
	return Renderer{styles: styles}
}

// Render draws n into at most width columns.
func (r Renderer) Render(n *view.Node, width int) string {
	switch n.Kind {
	case view.KindLabel:
		return r.label(n)
	case view.KindIcon:
		return r.icon(n)
	}

	pad := n.Style.Padding
	padV, padH := int(pad.Top)/cellHeight, int(pad.Left)/cellWidth
	padB, padR := int(pad.Bottom)/cellHeight, int(pad.Right)/cellWidth
	inner := max(width-padH-padR, 0)

	var body string
	if n.Style.FlexDirection == view.FlexRow {
		body = r.row(n, inner)
	} else {
		parts := make([]string, 0, len(n.Children))
		for _, c := range n.Children {
			parts = append(parts, r.Render(c, inner))
		}
		body = lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	if padV == 0 && padH == 0 && padB == 0 && padR == 0 {
		return body
	}
	return lipgloss.NewStyle().Padding(padV, padR, padB, padH).Render(body)
}

func (r Renderer) row(n *view.Node, width int) string {
	parts := make([]string, len(n.Children))

	fixed, flexTotal := 0, 0
	for i, c := range n.Children {
		if c.Style.Flex > 0 {
			flexTotal += c.Style.Flex
			continue
		}
		parts[i] = r.Render(c, width)
		fixed += lipgloss.Width(parts[i])
	}

	leftover := max(width-fixed, 0)
	flexSeen, flexUsed := 0, 0
	for i, c := range n.Children {
		if c.Style.Flex == 0 {
			continue
		}
		flexSeen += c.Style.Flex
		share := leftover * flexSeen / flexTotal
		w := share - flexUsed
		flexUsed = share
		parts[i] = lipgloss.NewStyle().Width(w).Render(r.Render(c, w))
	}

	align := lipgloss.Top
	if n.Style.AlignItems == view.AlignCenter {
		align = lipgloss.Center
	}
	return lipgloss.JoinHorizontal(align, parts...)
}

func (r Renderer) label(n *view.Node) string {
	style := r.styles.Title
	if n.Style.FontWeight != view.FontWeightDefault && n.Style.FontWeight < view.FontWeightRegular {
		style = r.styles.Subtitle
	}
	if n.Style.Color != nil {
		style = style.Foreground(lipgloss.Color(n.Style.Color.Hex()))
	}
	return style.Render(n.Text)
}

func (r Renderer) icon(n *view.Node) string {
	if n.Icon == nil {
		return ""
	}
	glyph, ok := glyphs[n.Icon.Glyph]
	if !ok {
		glyph = n.Icon.Glyph
	}
	return r.styles.Indicator.Foreground(lipgloss.Color(n.Icon.Color.Hex())).Render(glyph)
}

// RenderRows draws rows one under another with a cursor on the focused one.
func (r Renderer) RenderRows(rows []*view.Node, focus, width int) string {
	lines := make([]string, len(rows))
	for i, row := range rows {
		cursor := "  "
		rendered := r.Render(row, max(width-2, 0))
		if i == focus {
			cursor = r.styles.Cursor.Render("› ")
			rendered = r.styles.Focused.Render(rendered)
		}
		lines[i] = lipgloss.JoinHorizontal(lipgloss.Top, cursor, rendered)
	}
	return strings.Join(lines, "\n")
}
