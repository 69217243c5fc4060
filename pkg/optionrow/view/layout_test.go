package view

import "testing"

// fixedMeasurer gives every rune the same width; FontSize scales height.
type fixedMeasurer struct{}

func (fixedMeasurer) MeasureText(text string, style Style) (int32, int32) {
	size := int32(style.FontSize)
	if size == 0 {
		size = 16
	}
	return int32(len([]rune(text))) * size / 2, size
}

func sampleRow(selected bool, onActivate func()) *Node {
	var indicator *Node
	if selected {
		indicator = Icon("check", 16, BrandColor)
	}
	return Pressable(onActivate,
		NewView(Style{FlexDirection: FlexRow, AlignItems: AlignCenter, Padding: SymmetricPadding(12, 16)},
			NewView(Style{Flex: 1},
				Label("English", Style{}),
				Label("English (US)", Style{FontSize: 12}),
			),
			NewView(Style{}, indicator),
		),
	)
}

func TestMeasureRow(t *testing.T) {
	w, h := Measure(sampleRow(true, nil), fixedMeasurer{})

	// Widest label is 12 runes * 6 = 72, plus icon 16, plus 32 horizontal padding.
	if w != 72+16+32 {
		t.Fatalf("width = %d", w)
	}
	// Labels stack 16 + 12, plus 24 vertical padding.
	if h != 16+12+24 {
		t.Fatalf("height = %d", h)
	}
}

func TestLayoutFlexAndCenter(t *testing.T) {
	row := sampleRow(true, nil)
	boxes := Layout(row, Rect{X: 0, Y: 100, W: 400, H: 52}, fixedMeasurer{})

	listItem := row.Children[0]
	wrapper := listItem.Children[0]
	indicator := listItem.Children[1]

	wr, _ := BoxOf(boxes, wrapper)
	ir, _ := BoxOf(boxes, indicator)

	if wr.X != 16 || wr.W != 400-32-16 {
		t.Fatalf("wrapper box = %+v", wr)
	}
	if ir.X != 16+wr.W || ir.W != 16 {
		t.Fatalf("indicator box = %+v", ir)
	}
	// Indicator is vertically centered in the 28px content height.
	if ir.Y != 100+12+(28-16)/2 {
		t.Fatalf("indicator y = %d", ir.Y)
	}
}

func TestHitTestWholeRow(t *testing.T) {
	activations := 0
	row := sampleRow(false, func() { activations++ })
	bounds := Rect{X: 10, Y: 10, W: 300, H: 60}
	boxes := Layout(row, bounds, fixedMeasurer{})

	points := [][2]int32{{10, 10}, {20, 30}, {300, 60}, {309, 69}}
	for _, p := range points {
		if !Activate(HitTest(boxes, p[0], p[1])) {
			t.Fatalf("point %v missed the row", p)
		}
	}
	if activations != len(points) {
		t.Fatalf("activations = %d", activations)
	}

	if HitTest(boxes, 310, 10) != nil || HitTest(boxes, 9, 10) != nil {
		t.Fatalf("points outside bounds must miss")
	}
}

func TestHitTestPicksCorrectRow(t *testing.T) {
	var hits []string
	first := sampleRow(true, func() { hits = append(hits, "first") })
	second := sampleRow(false, func() { hits = append(hits, "second") })
	list := NewView(Style{}, first, second)

	boxes := Layout(list, Rect{W: 200, H: 104}, fixedMeasurer{})
	secondBox, ok := BoxOf(boxes, second)
	if !ok {
		t.Fatalf("second row not laid out")
	}

	Activate(HitTest(boxes, 50, secondBox.Y+1))
	if len(hits) != 1 || hits[0] != "second" {
		t.Fatalf("hits = %v", hits)
	}
}

func TestCompactDropsNilChildren(t *testing.T) {
	n := NewView(Style{}, nil, Label("a", Style{}), nil)
	if len(n.Children) != 1 {
		t.Fatalf("children = %d", len(n.Children))
	}
	if got := FindAll(sampleRow(false, nil), KindIcon); len(got) != 0 {
		t.Fatalf("unexpected icons: %d", len(got))
	}
}

func TestActivateNonPressable(t *testing.T) {
	if Activate(Label("x", Style{})) || Activate(nil) || Activate(Pressable(nil)) {
		t.Fatalf("only pressables with handlers activate")
	}
}

func TestStyleMerge(t *testing.T) {
	red := HexToColor(0xFF0000)
	base := Style{FlexDirection: FlexRow, FontSize: 16}
	merged := base.Merge(Style{FontWeight: FontWeightLight, FontSize: 13, Color: &red})

	if merged.FlexDirection != FlexRow || merged.FontSize != 13 || merged.FontWeight != FontWeightLight {
		t.Fatalf("merged = %+v", merged)
	}
	if merged.Color == nil || *merged.Color != red {
		t.Fatalf("color not merged")
	}
	red.R = 0
	if merged.Color.R != 0xFF {
		t.Fatalf("merge must copy the color")
	}
}

func TestStyleSheetCopiesInput(t *testing.T) {
	src := map[string]Style{"title": {FontSize: 16}}
	sheet := CreateStyleSheet(src)
	src["title"] = Style{FontSize: 99}

	if sheet.Get("title").FontSize != 16 {
		t.Fatalf("sheet changed with its source map")
	}
	if sheet.Has("missing") || sheet.Get("missing") != (Style{}) {
		t.Fatalf("unknown names resolve to the zero style")
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#6492fe")
	if err != nil {
		t.Fatal(err)
	}
	if c != BrandColor || c.Hex() != "#6492FE" {
		t.Fatalf("got %+v", c)
	}
	for _, bad := range []string{"", "#fff", "zzzzzz", "#1234567"} {
		if _, err := ParseHexColor(bad); err == nil {
			t.Fatalf("%q should fail", bad)
		}
	}
}
