package quill

// Rect is a screen-space rectangle in cell units. All arithmetic on
// rects saturates instead of wrapping.
type Rect struct {
	X, Y, Width, Height uint16
}

func satAdd(a, b uint16) uint16 {
	if s := a + b; s >= a {
		return s
	}
	return ^uint16(0)
}

func satSub(a, b uint16) uint16 {
	if a < b {
		return 0
	}
	return a - b
}

// Inset returns the rect shrunk by the given per-edge insets. A rect too
// small for the insets collapses to zero extent rather than going
// negative.
func (r Rect) Inset(p Padding) Rect {
	return Rect{
		X:      satAdd(r.X, p.Left),
		Y:      satAdd(r.Y, p.Top),
		Width:  satSub(r.Width, p.Horizontal()),
		Height: satSub(r.Height, p.Vertical()),
	}
}

// LayoutBox is one positioned node of a resolved layout tree. Containers
// carry Children; leaves carry the node they were built from in Content.
type LayoutBox struct {
	Rect      Rect
	Direction Direction
	Gap       Gap
	Key       string
	Style     Style
	Border    *BorderStyle
	Content   Node
	Children  []LayoutBox
}

// popupHeight is the room a popup claims in layout: the item count,
// capped at the declared window size.
func popupHeight(n Node) uint16 {
	h := len(n.Items)
	if n.MaxVisible < h {
		h = n.MaxVisible
	}
	if h < 0 {
		h = 0
	}
	return uint16(h)
}

// MeasureTextHeight is the number of display rows s occupies when wrapped
// to width, computed per logical line as ceil(chars/width). Empty lines
// and width zero count one row per line. This estimates in character
// cells; the renderer wraps at the same width, with unbroken tokens
// hard-wrapped rather than overflowing.
func MeasureTextHeight(s string, width uint16) uint16 {
	var total uint16
	for _, line := range splitLines(s) {
		if line == "" || width == 0 {
			total = satAdd(total, 1)
			continue
		}
		chars := uint16(len([]rune(line)))
		h := (chars + width - 1) / width
		if h < 1 {
			h = 1
		}
		total = satAdd(total, h)
	}
	if total < 1 {
		total = 1
	}
	return total
}

// measureNode returns the intrinsic (width, height) of a node laid out in
// at most availWidth cells. Containers measure as a concatenation of
// their children; overlays measure as nothing.
func measureNode(n Node, availWidth uint16) (uint16, uint16) {
	switch n.Kind {
	case KindEmpty, KindOverlay:
		return 0, 0
	case KindText:
		w := uint16(maxLineWidth(n.Content))
		if availWidth > 0 && w > availWidth {
			w = availWidth
		}
		return w, MeasureTextHeight(n.Content, availWidth)
	case KindInput:
		return availWidth, 1
	case KindSpinner:
		w := uint16(VisibleWidth(spinnerFrame(n)))
		if n.Label != "" {
			w = satAdd(w, uint16(1+VisibleWidth(n.Label)))
		}
		return w, 1
	case KindPopup:
		return availWidth, popupHeight(n)
	case KindRaw:
		return n.DisplayWidth, n.DisplayHeight
	case KindFocusable:
		if len(n.Children) > 0 {
			return measureNode(n.Children[0], availWidth)
		}
		return 0, 0
	case KindErrorBoundary:
		if len(n.Children) > 0 {
			return measureNode(n.Children[0], availWidth)
		}
		return 0, 0
	case KindStatic, KindFragment:
		var w, h uint16
		for _, c := range n.Children {
			cw, ch := measureNode(c, availWidth)
			if cw > w {
				w = cw
			}
			h = satAdd(h, ch)
		}
		return w, h
	case KindBox:
		return measureBox(n, availWidth)
	default:
		return 0, 0
	}
}

func measureBox(n Node, availWidth uint16) (uint16, uint16) {
	chrome := n.Margin
	if n.Border != nil {
		chrome.Top++
		chrome.Right++
		chrome.Bottom++
		chrome.Left++
	}
	chrome.Top = satAdd(chrome.Top, n.Padding.Top)
	chrome.Right = satAdd(chrome.Right, n.Padding.Right)
	chrome.Bottom = satAdd(chrome.Bottom, n.Padding.Bottom)
	chrome.Left = satAdd(chrome.Left, n.Padding.Left)

	inner := satSub(availWidth, chrome.Horizontal())
	var w, h uint16
	switch n.Direction {
	case DirColumn:
		for i, c := range n.Children {
			cw, ch := measureNode(c, inner)
			if cw > w {
				w = cw
			}
			h = satAdd(h, ch)
			if i > 0 {
				h = satAdd(h, n.Gap.Row)
			}
		}
	case DirRow:
		for _, c := range n.Children {
			cw, ch := measureNode(c, inner)
			w = satAdd(w, cw)
			if ch > h {
				h = ch
			}
		}
	}
	return satAdd(w, chrome.Horizontal()), satAdd(h, chrome.Vertical())
}

// Build resolves a node tree into a positioned layout tree filling rect.
// The pass is pure: the same node tree and rect always produce the same
// layout tree, and the input nodes are never mutated.
func Build(n Node, rect Rect) LayoutBox {
	switch n.Kind {
	case KindEmpty:
		return LayoutBox{Rect: Rect{X: rect.X, Y: rect.Y}, Content: n}
	case KindText:
		w, h := measureNode(n, rect.Width)
		return LayoutBox{
			Rect:    Rect{X: rect.X, Y: rect.Y, Width: w, Height: h},
			Style:   n.Style,
			Content: n,
		}
	case KindInput:
		return LayoutBox{Rect: Rect{X: rect.X, Y: rect.Y, Width: rect.Width, Height: 1}, Content: n}
	case KindSpinner:
		w, _ := measureNode(n, rect.Width)
		return LayoutBox{Rect: Rect{X: rect.X, Y: rect.Y, Width: w, Height: 1}, Content: n}
	case KindPopup:
		return LayoutBox{
			Rect:    Rect{X: rect.X, Y: rect.Y, Width: rect.Width, Height: popupHeight(n)},
			Content: n,
		}
	case KindRaw:
		return LayoutBox{
			Rect:    Rect{X: rect.X, Y: rect.Y, Width: n.DisplayWidth, Height: n.DisplayHeight},
			Content: n,
		}
	case KindFocusable, KindErrorBoundary:
		if len(n.Children) == 0 {
			return LayoutBox{Rect: Rect{X: rect.X, Y: rect.Y}, Content: Empty()}
		}
		child := Build(n.Children[0], rect)
		return LayoutBox{Rect: child.Rect, Content: n, Children: []LayoutBox{child}}
	case KindOverlay:
		// layout-opaque: the child is built but the box claims no space
		box := LayoutBox{Rect: Rect{X: rect.X, Y: rect.Y}, Content: n}
		if len(n.Children) > 0 {
			box.Children = []LayoutBox{Build(n.Children[0], rect)}
		}
		return box
	case KindStatic, KindFragment:
		return buildStack(n, rect)
	case KindBox:
		return buildBox(n, rect)
	default:
		return LayoutBox{Rect: Rect{X: rect.X, Y: rect.Y}, Content: Empty()}
	}
}

// buildStack lays fragment and static children top to bottom with no
// insets or gaps of their own.
func buildStack(n Node, rect Rect) LayoutBox {
	box := LayoutBox{Key: n.Key, Content: Node{Kind: n.Kind, Key: n.Key}}
	y := rect.Y
	var maxW, totalH uint16
	for _, c := range n.Children {
		child := Build(c, Rect{X: rect.X, Y: y, Width: rect.Width, Height: satSub(rect.Height, totalH)})
		y = satAdd(y, child.Rect.Height)
		totalH = satAdd(totalH, child.Rect.Height)
		if child.Rect.Width > maxW {
			maxW = child.Rect.Width
		}
		box.Children = append(box.Children, child)
	}
	box.Rect = Rect{X: rect.X, Y: rect.Y, Width: maxW, Height: totalH}
	return box
}

func buildBox(n Node, rect Rect) LayoutBox {
	outer := rect.Inset(n.Margin)
	// a fixed size is the box's final extent, chrome included
	if n.Size.Kind == SizeFixed {
		outer.Height = n.Size.Value
	}
	inner := outer
	if n.Border != nil {
		inner = inner.Inset(Padding{Top: 1, Right: 1, Bottom: 1, Left: 1})
	}
	inner = inner.Inset(n.Padding)

	box := LayoutBox{
		Direction: n.Direction,
		Gap:       n.Gap,
		Style:     n.Style,
		Border:    n.Border,
		Content:   Node{Kind: KindBox, Direction: n.Direction, Padding: n.Padding},
	}

	switch n.Direction {
	case DirColumn:
		box.Children = buildColumn(n, inner)
	case DirRow:
		box.Children = buildRow(n, inner)
	}

	var contentH uint16
	for i, c := range box.Children {
		contentH = satAdd(contentH, c.Rect.Height)
		if i > 0 && n.Direction == DirColumn {
			contentH = satAdd(contentH, n.Gap.Row)
		}
	}
	if n.Direction == DirRow {
		contentH = 0
		for _, c := range box.Children {
			if c.Rect.Height > contentH {
				contentH = c.Rect.Height
			}
		}
	}

	chromeV := n.Padding.Vertical()
	if n.Border != nil {
		chromeV = satAdd(chromeV, 2)
	}
	height := satAdd(contentH, chromeV)
	switch n.Size.Kind {
	case SizeFixed:
		height = n.Size.Value
	case SizeFlex:
		height = satAdd(inner.Height, chromeV)
	}
	box.Rect = Rect{
		X:      outer.X,
		Y:      outer.Y,
		Width:  outer.Width,
		Height: height,
	}
	return box
}

// buildColumn distributes the inner height across the children with the
// flex solver: fixed children keep their stated heights, content children
// their measured heights, and flex children split whatever remains after
// fixed uses and inter-child gaps. Each child's height is force-set to
// its allocation.
func buildColumn(n Node, inner Rect) []LayoutBox {
	count := len(n.Children)
	if count == 0 {
		return nil
	}

	gapTotal := uint16(0)
	if count > 1 {
		gapTotal = n.Gap.Row * uint16(count-1)
	}
	avail := int(satSub(inner.Height, gapTotal))

	measurements := make([]ChildMeasurement, count)
	for i, c := range n.Children {
		switch size := sizeOf(c); size.Kind {
		case SizeFixed:
			measurements[i] = FixedChild(int(size.Value))
		case SizeFlex:
			measurements[i] = FlexChild(int(size.Value))
		default:
			_, h := measureNode(c, inner.Width)
			measurements[i] = ContentChild(int(h))
		}
	}
	result := CalculateRowWidths(avail, measurements)

	children := make([]LayoutBox, 0, count)
	y := inner.Y
	for i, c := range n.Children {
		h := uint16(result.Widths[i])
		child := Build(c, Rect{X: inner.X, Y: y, Width: inner.Width, Height: h})
		child.Rect.Height = h
		children = append(children, child)
		y = satAdd(y, satAdd(h, n.Gap.Row))
	}
	return children
}

// buildRow divides the inner width equally among the children, dropping
// the remainder. The row is as tall as its tallest child.
func buildRow(n Node, inner Rect) []LayoutBox {
	count := len(n.Children)
	if count == 0 {
		return nil
	}
	each := inner.Width / uint16(count)

	children := make([]LayoutBox, 0, count)
	x := inner.X
	for _, c := range n.Children {
		child := Build(c, Rect{X: x, Y: inner.Y, Width: each, Height: inner.Height})
		child.Rect.Width = each
		children = append(children, child)
		x = satAdd(x, each)
	}
	return children
}
