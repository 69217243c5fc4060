// Package view provides the backend-neutral presentation primitives that
// optionrow components compose: pressable surfaces, plain views, text labels
// and glyph icons. A component renders to a tree of Nodes; the SDL and
// terminal backends lay that tree out and draw it.
package view

// Kind identifies the primitive a Node represents.
type Kind int

const (
	KindView      Kind = iota // Layout container
	KindPressable             // Single interactive hit target
	KindLabel                 // Plain text
	KindIcon                  // Glyph icon
)

func (k Kind) String() string {
	switch k {
	case KindView:
		return "View"
	case KindPressable:
		return "Pressable"
	case KindLabel:
		return "Label"
	case KindIcon:
		return "Icon"
	default:
		return "Unknown"
	}
}

// IconSpec describes a glyph to draw.
type IconSpec struct {
	Glyph string // Icon font code point or a backend-known glyph name
	Size  int32
	Color Color
}

// Node is one element of a rendered tree. Nodes are built fresh on every
// render pass and are not retained by the component that produced them.
type Node struct {
	Kind       Kind
	Style      Style
	Text       string    // KindLabel only
	Icon       *IconSpec // KindIcon only
	OnActivate func()    // KindPressable only
	Children   []*Node
}

// NewView returns a layout container.
func NewView(style Style, children ...*Node) *Node {
	return &Node{Kind: KindView, Style: style, Children: compact(children)}
}

// Pressable returns an interactive surface that calls onActivate when
// activated anywhere inside its bounds.
func Pressable(onActivate func(), children ...*Node) *Node {
	return &Node{Kind: KindPressable, OnActivate: onActivate, Children: compact(children)}
}

// Label returns a text node. The text is kept verbatim.
func Label(text string, style Style) *Node {
	return &Node{Kind: KindLabel, Text: text, Style: style}
}

// Icon returns a glyph node.
func Icon(glyph string, size int32, color Color) *Node {
	return &Node{Kind: KindIcon, Icon: &IconSpec{Glyph: glyph, Size: size, Color: color}}
}

// compact drops nil children so conditional elements can be passed inline.
func compact(children []*Node) []*Node {
	out := children[:0:0]
	for _, c := range children {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

// Activate triggers the node's handler. It reports whether a handler ran.
func Activate(n *Node) bool {
	if n == nil || n.Kind != KindPressable || n.OnActivate == nil {
		return false
	}
	n.OnActivate()
	return true
}

// Walk visits n and its descendants depth-first. Returning false from fn
// skips the node's children.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, fn)
	}
}

// FindAll returns every node in the tree of the given kind, in document order.
func FindAll(root *Node, kind Kind) []*Node {
	var found []*Node
	Walk(root, func(n *Node) bool {
		if n.Kind == kind {
			found = append(found, n)
		}
		return true
	})
	return found
}

// Texts returns the text of every label in document order.
func Texts(root *Node) []string {
	labels := FindAll(root, KindLabel)
	texts := make([]string, len(labels))
	for i, l := range labels {
		texts[i] = l.Text
	}
	return texts
}
