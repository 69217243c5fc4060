package view

// Rect is an axis-aligned rectangle in backend units (pixels or cells).
type Rect struct {
	X, Y, W, H int32
}

// Contains reports whether the point lies inside r.
func (r Rect) Contains(x, y int32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Inset shrinks r by p, never below zero size.
func (r Rect) Inset(p Padding) Rect {
	out := Rect{X: r.X + p.Left, Y: r.Y + p.Top, W: r.W - p.Horizontal(), H: r.H - p.Vertical()}
	if out.W < 0 {
		out.W = 0
	}
	if out.H < 0 {
		out.H = 0
	}
	return out
}

// Measurer reports the natural size of a text run in a given style.
// Backends implement it with their font metrics.
type Measurer interface {
	MeasureText(text string, style Style) (w, h int32)
}

// Box pairs a node with its absolute position after layout.
type Box struct {
	Node *Node
	Rect Rect
}

// Measure returns the natural size of n.
func Measure(n *Node, m Measurer) (w, h int32) {
	switch n.Kind {
	case KindLabel:
		return m.MeasureText(n.Text, n.Style)
	case KindIcon:
		if n.Icon == nil {
			return 0, 0
		}
		return n.Icon.Size, n.Icon.Size
	}

	for _, c := range n.Children {
		cw, ch := Measure(c, m)
		if n.Style.FlexDirection == FlexRow {
			w += cw
			h = max(h, ch)
		} else {
			w = max(w, cw)
			h += ch
		}
	}
	return w + n.Style.Padding.Horizontal(), h + n.Style.Padding.Vertical()
}

// Layout positions root inside bounds and returns every node's box in
// document order (parents before children).
func Layout(root *Node, bounds Rect, m Measurer) []Box {
	var boxes []Box
	place(root, bounds, m, &boxes)
	return boxes
}

func place(n *Node, r Rect, m Measurer, out *[]Box) {
	*out = append(*out, Box{Node: n, Rect: r})
	if len(n.Children) == 0 {
		return
	}

	inner := r.Inset(n.Style.Padding)
	row := n.Style.FlexDirection == FlexRow

	type size struct{ main, cross int32 }
	sizes := make([]size, len(n.Children))
	var fixed int32
	flexTotal := 0
	for i, c := range n.Children {
		cw, ch := Measure(c, m)
		if row {
			sizes[i] = size{main: cw, cross: ch}
		} else {
			sizes[i] = size{main: ch, cross: cw}
		}
		if c.Style.Flex > 0 {
			flexTotal += c.Style.Flex
		} else {
			fixed += sizes[i].main
		}
	}

	mainLen, crossLen := inner.H, inner.W
	if row {
		mainLen, crossLen = inner.W, inner.H
	}
	leftover := max(mainLen-fixed, 0)

	var cursor int32
	var flexUsed int32
	flexSeen := 0
	for i, c := range n.Children {
		mainSize := sizes[i].main
		if c.Style.Flex > 0 {
			flexSeen += c.Style.Flex
			share := leftover * int32(flexSeen) / int32(flexTotal)
			mainSize = share - flexUsed
			flexUsed = share
		}

		crossSize := sizes[i].cross
		var crossPos int32
		switch n.Style.AlignItems {
		case AlignStretch:
			crossSize = crossLen
		case AlignCenter:
			crossPos = (crossLen - crossSize) / 2
		case AlignEnd:
			crossPos = crossLen - crossSize
		}

		var child Rect
		if row {
			child = Rect{X: inner.X + cursor, Y: inner.Y + crossPos, W: mainSize, H: crossSize}
		} else {
			child = Rect{X: inner.X + crossPos, Y: inner.Y + cursor, W: crossSize, H: mainSize}
		}
		place(c, child, m, out)
		cursor += mainSize
	}
}

// HitTest returns the innermost pressable whose box contains the point,
// or nil when the point misses every pressable.
func HitTest(boxes []Box, x, y int32) *Node {
	var hit *Node
	for _, b := range boxes {
		if b.Node.Kind == KindPressable && b.Rect.Contains(x, y) {
			hit = b.Node
		}
	}
	return hit
}

// BoxOf returns the box laid out for n.
func BoxOf(boxes []Box, n *Node) (Rect, bool) {
	for _, b := range boxes {
		if b.Node == n {
			return b.Rect, true
		}
	}
	return Rect{}, false
}
