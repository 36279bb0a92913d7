package quill

import "fmt"

// Direction controls how a box stacks its children.
type Direction uint8

const (
	DirColumn Direction = iota
	DirRow
)

// SizeKind tags a SizeMode variant.
type SizeKind uint8

const (
	// SizeContent sizes a box by measuring its rendered children.
	SizeContent SizeKind = iota
	// SizeFixed pins a box to an exact extent.
	SizeFixed
	// SizeFlex gives a box a weighted share of leftover space.
	SizeFlex
)

// SizeMode describes how a box claims space along its parent's axis.
// The zero value is content sizing.
type SizeMode struct {
	Kind  SizeKind
	Value uint16 // extent for SizeFixed, weight for SizeFlex
}

// Fixed pins the extent to exactly n cells.
func Fixed(n uint16) SizeMode {
	return SizeMode{Kind: SizeFixed, Value: n}
}

// Flex claims a weighted share of leftover space.
func Flex(weight uint16) SizeMode {
	return SizeMode{Kind: SizeFlex, Value: weight}
}

// ContentSized measures the rendered children to determine extent.
func ContentSized() SizeMode {
	return SizeMode{Kind: SizeContent}
}

// Padding is a per-edge inset, used for both padding and margin.
type Padding struct {
	Top, Right, Bottom, Left uint16
}

// Pad returns a uniform padding.
func Pad(all uint16) Padding {
	return Padding{Top: all, Right: all, Bottom: all, Left: all}
}

// PadXY returns a padding with the given horizontal and vertical edges.
func PadXY(x, y uint16) Padding {
	return Padding{Top: y, Right: x, Bottom: y, Left: x}
}

// Horizontal is the sum of the left and right edges.
func (p Padding) Horizontal() uint16 {
	return satAdd(p.Left, p.Right)
}

// Vertical is the sum of the top and bottom edges.
func (p Padding) Vertical() uint16 {
	return satAdd(p.Top, p.Bottom)
}

// Gap is the blank space inserted between siblings, per axis.
type Gap struct {
	Row uint16 // blank lines between column children
	Col uint16 // blank cells between row children
}

// NodeKind tags a Node variant.
type NodeKind uint8

const (
	KindEmpty NodeKind = iota
	KindText
	KindBox
	KindInput
	KindSpinner
	KindPopup
	KindStatic
	KindFragment
	KindFocusable
	KindErrorBoundary
	KindOverlay
	KindRaw
)

// Node is a single frame's worth of UI intent. It is a closed tagged union:
// Kind selects the variant and the variant's fields, everything else is
// ignored. Trees are built fresh each frame, are strictly acyclic, and are
// never mutated by the layout or render passes.
type Node struct {
	Kind NodeKind

	// KindText, KindRaw
	Content string
	Style   Style

	// KindBox
	Direction Direction
	Size      SizeMode
	Padding   Padding
	Margin    Padding
	Gap       Gap
	Border    *BorderStyle

	// KindBox, KindStatic, KindFragment. Wrapper kinds (Focusable,
	// Overlay) hold their single child in Children[0]; ErrorBoundary
	// holds the fallback in Children[1].
	Children []Node

	// KindInput
	Value       string
	Placeholder string
	Focused     bool
	Cursor      int

	// KindSpinner
	Frames []string
	Frame  int
	Label  string

	// KindPopup
	Items           []PopupItem
	Selected        int
	ViewportOffset  int
	MaxVisible      int
	SelectedStyle   Style
	UnselectedStyle Style

	// KindStatic
	Key string

	// KindRaw
	DisplayWidth  uint16
	DisplayHeight uint16
}

// Empty returns the node that renders nothing and occupies no space.
func Empty() Node {
	return Node{Kind: KindEmpty}
}

// Text creates an unstyled text node.
func Text(s string) Node {
	return Node{Kind: KindText, Content: s}
}

// Textf creates a text node with printf-style formatting.
func Textf(format string, args ...any) Node {
	return Text(fmt.Sprintf(format, args...))
}

// Styled creates a text node with the given style.
func Styled(s string, style Style) Node {
	return Node{Kind: KindText, Content: s, Style: style}
}

// Col creates a box stacking children top to bottom.
func Col(children ...Node) Node {
	return Node{Kind: KindBox, Direction: DirColumn, Children: children}
}

// Row creates a box placing children side by side.
func Row(children ...Node) Node {
	return Node{Kind: KindBox, Direction: DirRow, Children: children}
}

// FragmentOf stacks children sequentially with no box semantics: no gap,
// no insets, no sizing of its own.
func FragmentOf(children ...Node) Node {
	return Node{Kind: KindFragment, Children: children}
}

// Scrollback marks children as frozen content eligible for graduation.
// The key identifies the content so a render filter can omit it once it
// has been emitted to scrollback.
func Scrollback(key string, children ...Node) Node {
	return Node{Kind: KindStatic, Key: key, Children: children}
}

// NewInput creates a single-line input node. An empty value renders the
// placeholder in dim style.
func NewInput(value, placeholder string) Node {
	return Node{Kind: KindInput, Value: value, Placeholder: placeholder}
}

// Focus marks an input as focused with the cursor at the given position.
func (n Node) Focus(cursor int) Node {
	n.Focused = true
	n.Cursor = cursor
	return n
}

// NewSpinner creates a spinner node using the braille frame table.
func NewSpinner(label string) Node {
	return Node{Kind: KindSpinner, Frames: SpinnerBraille, Label: label}
}

// WithFrames replaces a spinner's frame table.
func (n Node) WithFrames(frames []string) Node {
	n.Frames = frames
	return n
}

// AtFrame sets a spinner's current frame index.
func (n Node) AtFrame(frame int) Node {
	n.Frame = frame
	return n
}

// NewPopup creates a popup node showing a window of items. maxVisible is
// the exact number of rows the popup occupies; missing rows are padded
// blank so the popup never jitters as the item count changes.
func NewPopup(items []PopupItem, selected, offset, maxVisible int) Node {
	return Node{
		Kind:           KindPopup,
		Items:          items,
		Selected:       selected,
		ViewportOffset: offset,
		MaxVisible:     maxVisible,
	}
}

// WithPopupStyles sets the selected and unselected row styles.
func (n Node) WithPopupStyles(selected, unselected Style) Node {
	n.SelectedStyle = selected
	n.UnselectedStyle = unselected
	return n
}

// Focusable wraps a child for focus bookkeeping. Layout and rendering
// pass straight through to the child.
func Focusable(child Node) Node {
	return Node{Kind: KindFocusable, Children: []Node{child}}
}

// Boundary wraps a child so that a panic while rendering it falls back to
// rendering the fallback node instead.
func Boundary(child, fallback Node) Node {
	return Node{Kind: KindErrorBoundary, Children: []Node{child, fallback}}
}

// OverlayOf wraps a child that is layout-opaque: the overlay contributes
// nothing to its siblings' layout and renders its child as-is.
func OverlayOf(child Node) Node {
	return Node{Kind: KindOverlay, Children: []Node{child}}
}

// Raw wraps pre-rendered content whose display size is declared by the
// caller rather than measured. The content is emitted verbatim.
func Raw(content string, width, height uint16) Node {
	return Node{Kind: KindRaw, Content: content, DisplayWidth: width, DisplayHeight: height}
}

// Chainable box modifiers. Each returns a copy, so shared subtrees are
// never mutated in place.

// WithSize sets how the box claims space along its parent's axis.
func (n Node) WithSize(size SizeMode) Node {
	n.Size = size
	return n
}

// WithGap sets the blank rows inserted between column children.
func (n Node) WithGap(rows uint16) Node {
	n.Gap.Row = rows
	return n
}

// WithPadding sets the box padding.
func (n Node) WithPadding(p Padding) Node {
	n.Padding = p
	return n
}

// WithMargin sets the box margin.
func (n Node) WithMargin(m Padding) Node {
	n.Margin = m
	return n
}

// WithBorder draws a one-cell border around the box.
func (n Node) WithBorder(b BorderStyle) Node {
	n.Border = &b
	return n
}

// WithStyle sets the node style (text style for text nodes, border style
// for boxes).
func (n Node) WithStyle(style Style) Node {
	n.Style = style
	return n
}

// WithKey sets the scrollback key on a static node.
func (n Node) WithKey(key string) Node {
	n.Key = key
	return n
}

// IsEmpty reports whether the node renders nothing: the Empty kind, or a
// container whose children are all empty.
func (n Node) IsEmpty() bool {
	switch n.Kind {
	case KindEmpty:
		return true
	case KindFragment:
		for _, c := range n.Children {
			if !c.IsEmpty() {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// sizeOf returns the SizeMode the flex solver should use for a node when
// it participates in a row. Only boxes carry an explicit size; everything
// else is content sized.
func sizeOf(n Node) SizeMode {
	if n.Kind == KindBox {
		return n.Size
	}
	return SizeMode{Kind: SizeContent}
}
