package view

// FlexDirection is the main axis along which a View lays out its children.
type FlexDirection int

const (
	FlexColumn FlexDirection = iota // Children stacked top to bottom
	FlexRow                         // Children placed left to right
)

// Align controls placement of children on the cross axis.
type Align int

const (
	AlignStretch Align = iota // Fill the cross axis
	AlignStart
	AlignCenter
	AlignEnd
)

// FontWeight follows the usual 100-900 scale. Zero means the default weight.
type FontWeight int

const (
	FontWeightDefault FontWeight = 0
	FontWeightLight   FontWeight = 300
	FontWeightRegular FontWeight = 400
	FontWeightBold    FontWeight = 700
)

// Padding defines spacing on all four sides of an element.
type Padding struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(value int32) Padding {
	return Padding{
		Top:    value,
		Right:  value,
		Bottom: value,
		Left:   value,
	}
}

// SymmetricPadding creates a Padding from vertical and horizontal values.
func SymmetricPadding(vertical, horizontal int32) Padding {
	return Padding{
		Top:    vertical,
		Right:  horizontal,
		Bottom: vertical,
		Left:   horizontal,
	}
}

// Horizontal returns the combined left and right padding.
func (p Padding) Horizontal() int32 { return p.Left + p.Right }

// Vertical returns the combined top and bottom padding.
func (p Padding) Vertical() int32 { return p.Top + p.Bottom }

// Style holds layout and typography declarations for a node.
// Zero values mean "inherit the backend default".
type Style struct {
	FlexDirection FlexDirection
	AlignItems    Align
	Flex          int // Share of leftover main-axis space; 0 keeps the measured size
	Padding       Padding
	FontSize      int
	FontWeight    FontWeight
	Color         *Color // Text or glyph color override
}

// Merge returns s with every non-zero field of override applied on top.
func (s Style) Merge(override Style) Style {
	if override.FlexDirection != FlexColumn {
		s.FlexDirection = override.FlexDirection
	}
	if override.AlignItems != AlignStretch {
		s.AlignItems = override.AlignItems
	}
	if override.Flex != 0 {
		s.Flex = override.Flex
	}
	if override.Padding != (Padding{}) {
		s.Padding = override.Padding
	}
	if override.FontSize != 0 {
		s.FontSize = override.FontSize
	}
	if override.FontWeight != FontWeightDefault {
		s.FontWeight = override.FontWeight
	}
	if override.Color != nil {
		c := *override.Color
		s.Color = &c
	}
	return s
}

// StyleSheet is a resolved, read-only set of named styles.
type StyleSheet struct {
	styles map[string]Style
}

// CreateStyleSheet resolves a static map of named styles. The map is copied,
// so later changes to it do not affect the sheet.
func CreateStyleSheet(styles map[string]Style) StyleSheet {
	resolved := make(map[string]Style, len(styles))
	for name, style := range styles {
		resolved[name] = style
	}
	return StyleSheet{styles: resolved}
}

// Get returns the named style, or the zero Style when the name is unknown.
func (s StyleSheet) Get(name string) Style {
	return s.styles[name]
}

// Has reports whether the sheet declares name.
func (s StyleSheet) Has(name string) bool {
	_, ok := s.styles[name]
	return ok
}
