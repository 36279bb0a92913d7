package quill

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// lineSep is the line separator for raw-mode terminals, where a bare
// newline moves down without returning to column zero.
const lineSep = "\r\n"

// SkipFunc decides whether a static subtree identified by key should be
// omitted from the frame, typically because it has already been emitted
// to scrollback.
type SkipFunc func(key string) bool

// NoSkip renders every static subtree.
func NoSkip(string) bool { return false }

// CursorInfo locates the hardware cursor within rendered output.
// RowFromEnd counts from the last output row, so the host can position
// the cursor by moving up from where drawing finished.
type CursorInfo struct {
	Col        int
	RowFromEnd int
	Visible    bool
}

// RenderResult is a rendered frame plus cursor placement.
type RenderResult struct {
	Content string
	Cursor  CursorInfo
}

// Render lays out and renders a node tree at the given width. The output
// is content-driven: flex children collapse and the frame is as tall as
// its content.
func Render(n Node, width uint16) string {
	box := Build(n, Rect{Width: width})
	return RenderTree(box, NoSkip)
}

// RenderPlain renders like Render but with all escape sequences removed,
// for logs and tests.
func RenderPlain(n Node, width uint16) string {
	return StripANSI(Render(n, width))
}

// RenderTree renders a resolved layout tree to a terminal string. The
// same tree and skip function always produce identical output.
func RenderTree(root LayoutBox, skip SkipFunc) string {
	r := &renderer{skip: skip}
	return r.render(root, 0, 0)
}

// RenderTreeWithCursor renders the tree and reports where the cursor of
// the focused input landed. If no focused input rendered, the cursor is
// reported not visible.
func RenderTreeWithCursor(root LayoutBox, skip SkipFunc) RenderResult {
	r := &renderer{skip: skip}
	content := r.render(root, 0, 0)
	result := RenderResult{Content: content}
	if r.cursorSet {
		total := lineCount(content)
		result.Cursor = CursorInfo{
			Col:        r.cursorCol,
			RowFromEnd: total - 1 - r.cursorLine,
			Visible:    true,
		}
	}
	return result
}

type renderer struct {
	skip       SkipFunc
	cursorSet  bool
	cursorCol  int
	cursorLine int
}

// render dispatches on the layout box content. baseLine and baseCol are
// the box's position within the final output, used only for cursor
// bookkeeping.
func (r *renderer) render(box LayoutBox, baseLine, baseCol int) string {
	switch box.Content.Kind {
	case KindEmpty:
		return ""
	case KindText:
		return r.renderText(box)
	case KindInput:
		return r.renderInput(box, baseLine, baseCol)
	case KindSpinner:
		return r.renderSpinner(box)
	case KindPopup:
		return r.renderPopup(box)
	case KindRaw:
		return box.Content.Content
	case KindStatic:
		if r.skip(box.Key) {
			return ""
		}
		return r.renderStack(box, baseLine, baseCol)
	case KindFragment:
		return r.renderStack(box, baseLine, baseCol)
	case KindFocusable:
		if len(box.Children) == 0 {
			return ""
		}
		return r.render(box.Children[0], baseLine, baseCol)
	case KindErrorBoundary:
		return r.renderBoundary(box, baseLine, baseCol)
	case KindOverlay:
		if len(box.Children) == 0 {
			return ""
		}
		return r.render(box.Children[0], baseLine, baseCol)
	case KindBox:
		return r.renderBox(box, baseLine, baseCol)
	default:
		return ""
	}
}

// renderText wraps to the box width and applies the style to each line
// separately, so the escape state survives line splitting downstream.
// Word wrap alone leaves tokens longer than the width intact, so a hard
// wrap runs after it to keep every line within the box.
func (r *renderer) renderText(box LayoutBox) string {
	content := box.Content.Content
	if box.Rect.Width > 0 {
		limit := int(box.Rect.Width)
		content = wrap.String(wordwrap.String(content, limit), limit)
	}
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = box.Style.Apply(line)
	}
	return strings.Join(lines, lineSep)
}

func (r *renderer) renderInput(box LayoutBox, baseLine, baseCol int) string {
	n := box.Content
	if n.Value == "" && !n.Focused {
		return NewStyle().Dim().Apply(n.Placeholder)
	}
	if n.Focused {
		cursor := n.Cursor
		if cursor < 0 {
			cursor = 0
		}
		if cursor > len(n.Value) {
			cursor = len(n.Value)
		}
		r.cursorSet = true
		r.cursorLine = baseLine
		r.cursorCol = baseCol + VisibleWidth(n.Value[:cursor])
	}
	if n.Value == "" {
		return NewStyle().Dim().Apply(n.Placeholder)
	}
	return box.Style.Apply(n.Value)
}

func (r *renderer) renderSpinner(box LayoutBox) string {
	n := box.Content
	s := spinnerFrame(n)
	if n.Label != "" {
		s += " " + n.Label
	}
	return box.Style.Apply(s)
}

// renderPopup draws exactly MaxVisible rows. Blank padding rows come
// first so a bottom-anchored popup keeps its items against the input,
// then the item window [offset, offset+maxVisible). The selected row
// carries a pointer marker; descriptions render dim and only when
// enough width remains after the label.
func (r *renderer) renderPopup(box LayoutBox) string {
	n := box.Content
	popupWidth := int(box.Rect.Width) - 2
	if popupWidth <= 0 {
		return ""
	}

	start := n.ViewportOffset
	if start < 0 {
		start = 0
	}
	if start > len(n.Items) {
		start = len(n.Items)
	}
	end := start + n.MaxVisible
	if end > len(n.Items) {
		end = len(n.Items)
	}
	visible := n.Items[start:end]

	rows := make([]string, 0, n.MaxVisible)
	for i := 0; i < n.MaxVisible-len(visible); i++ {
		rows = append(rows, "")
	}

	for i, item := range visible {
		style := n.UnselectedStyle
		line := "   "
		if start+i == n.Selected {
			style = n.SelectedStyle
			line = " ▸ "
		}

		labelMax := popupWidth - VisibleWidth(line) - 2
		label := item.Label
		if labelMax > 4 && VisibleWidth(label) > labelMax {
			label = truncateToWidth(label, labelMax)
		}
		line += label
		lineWidth := VisibleWidth(line)

		if avail := popupWidth - lineWidth - 3; item.Description != "" && avail > 10 {
			desc := truncateToWidth(item.Description, avail)
			row := style.Apply(line + "  ")
			tail := padToWidth(desc, popupWidth-lineWidth-2) + " "
			row += style.Dim().Apply(tail)
			rows = append(rows, row)
			continue
		}

		rows = append(rows, style.Apply(padToWidth(line, popupWidth)+" "))
	}
	return strings.Join(rows, lineSep)
}

// renderStack renders fragment and static children in order with no gap.
// Empty children vanish without contributing a separator.
func (r *renderer) renderStack(box LayoutBox, baseLine, baseCol int) string {
	var parts []string
	line := baseLine
	for _, child := range box.Children {
		s := r.render(child, line, baseCol)
		if s == "" {
			continue
		}
		parts = append(parts, s)
		line += lineCount(s)
	}
	return strings.Join(parts, lineSep)
}

func (r *renderer) renderBoundary(box LayoutBox, baseLine, baseCol int) (out string) {
	if len(box.Children) == 0 {
		return ""
	}
	defer func() {
		if rec := recover(); rec != nil {
			fallback := Empty()
			if len(box.Content.Children) > 1 {
				fallback = box.Content.Children[1]
			}
			out = RenderTree(Build(fallback, box.Rect), r.skip)
		}
	}()
	return r.render(box.Children[0], baseLine, baseCol)
}

func (r *renderer) renderBox(box LayoutBox, baseLine, baseCol int) string {
	pad := box.Content.Padding
	innerLine := baseLine + int(pad.Top)
	innerCol := baseCol + int(pad.Left)
	if box.Border != nil {
		innerLine++
		innerCol++
	}

	var content string
	switch box.Direction {
	case DirColumn:
		content = r.renderColumn(box, innerLine, innerCol)
	case DirRow:
		content = r.renderRow(box, innerLine, innerCol)
	}

	content = applyPadding(content, pad)
	if box.Border != nil {
		content = renderBordered(content, box)
	}
	return content
}

// applyPadding indents every content line by the left inset and adds
// blank rows above and below. Right padding needs no output of its own;
// it only narrowed the inner rect.
func applyPadding(content string, p Padding) string {
	if p == (Padding{}) {
		return content
	}
	var lines []string
	if content != "" {
		lines = strings.Split(content, lineSep)
	}
	indent := strings.Repeat(" ", int(p.Left))
	padded := make([]string, 0, len(lines)+int(p.Vertical()))
	for i := uint16(0); i < p.Top; i++ {
		padded = append(padded, "")
	}
	for _, line := range lines {
		padded = append(padded, indent+line)
	}
	for i := uint16(0); i < p.Bottom; i++ {
		padded = append(padded, "")
	}
	return strings.Join(padded, lineSep)
}

// renderColumn joins children with 1+gap separators. An empty child is
// dropped entirely rather than leaving a blank run where it would have
// been.
func (r *renderer) renderColumn(box LayoutBox, baseLine, baseCol int) string {
	sep := strings.Repeat(lineSep, 1+int(box.Gap.Row))
	var parts []string
	line := baseLine
	for _, child := range box.Children {
		s := r.render(child, line, baseCol)
		if s == "" {
			continue
		}
		parts = append(parts, s)
		line += lineCount(s) + int(box.Gap.Row)
	}
	return strings.Join(parts, sep)
}

// renderRow renders each child into its allotted width, pads every line
// of every segment to that width, and merges the segments line by line.
// The row is as tall as its tallest segment; shorter segments are padded
// with blank lines.
func (r *renderer) renderRow(box LayoutBox, baseLine, baseCol int) string {
	type segment struct {
		lines []string
		width int
	}
	segments := make([]segment, 0, len(box.Children))
	maxLines := 0
	col := baseCol
	for _, child := range box.Children {
		s := r.render(child, baseLine, col)
		w := int(child.Rect.Width)
		col += w
		lines := strings.Split(s, lineSep)
		if s == "" {
			lines = nil
		}
		for i, line := range lines {
			lines[i] = padToWidth(line, w)
		}
		if len(lines) > maxLines {
			maxLines = len(lines)
		}
		segments = append(segments, segment{lines: lines, width: w})
	}

	merged := make([]string, 0, maxLines)
	for i := 0; i < maxLines; i++ {
		var sb strings.Builder
		for _, seg := range segments {
			if i < len(seg.lines) {
				sb.WriteString(seg.lines[i])
			} else {
				sb.WriteString(strings.Repeat(" ", seg.width))
			}
		}
		merged = append(merged, strings.TrimRight(sb.String(), " "))
	}
	return strings.Join(merged, lineSep)
}

// renderBordered frames content with the box border, padding every
// content line to the inner width so the right edge lines up.
func renderBordered(content string, box LayoutBox) string {
	b := BorderSingle
	if box.Border != nil {
		b = *box.Border
	}
	innerW := int(satSub(box.Rect.Width, 2))

	edge := func(s string) string { return box.Style.Apply(s) }

	// an empty box still shows one blank interior row
	lines := []string{""}
	if content != "" {
		lines = strings.Split(content, lineSep)
	}

	var sb strings.Builder
	sb.WriteString(edge(string(b.TopLeft) + strings.Repeat(string(b.Horizontal), innerW) + string(b.TopRight)))
	for _, line := range lines {
		sb.WriteString(lineSep)
		sb.WriteString(edge(string(b.Vertical)))
		sb.WriteString(padToWidth(line, innerW))
		sb.WriteString(edge(string(b.Vertical)))
	}
	sb.WriteString(lineSep)
	sb.WriteString(edge(string(b.BottomLeft) + strings.Repeat(string(b.Horizontal), innerW) + string(b.BottomRight)))
	return sb.String()
}
