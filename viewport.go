package quill

import (
	"fmt"
	"time"
)

// The viewport splits the terminal into a mutable content zone, a
// bordered input area, and a status line. Content that no longer fits is
// emitted to terminal scrollback as plain text and the terminal's own
// wrapping takes over.

// Height reserved for the input area (border + content + border).
const InputHeight uint16 = 3

// Height reserved for the status line.
const StatusHeight uint16 = 1

// ContentKind tags the source of a content block.
type ContentKind uint8

const (
	UserMessage ContentKind = iota
	AssistantMessage
	SystemMessage
	ToolCallMessage
)

// ToolStatus is the lifecycle state of a tool invocation.
type ToolStatus uint8

const (
	ToolPending ToolStatus = iota
	ToolRunning
	ToolComplete
	ToolFailed
)

func (s ToolStatus) String() string {
	switch s {
	case ToolPending:
		return "pending"
	case ToolRunning:
		return "running"
	case ToolComplete:
		return "complete"
	case ToolFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ContentBlock is one message in the viewport buffer. Blocks are moved to
// scrollback whole, never split.
type ContentBlock struct {
	ID        uint64
	Kind      ContentKind
	Text      string
	Complete  bool       // assistant messages only
	Status    ToolStatus // tool calls only
	Timestamp time.Time

	cachedWidth  uint16
	cachedHeight uint16
	cached       bool
}

// NewContentBlock creates a block with no cached height.
func NewContentBlock(id uint64, kind ContentKind, text string) ContentBlock {
	return ContentBlock{ID: id, Kind: kind, Text: text, Timestamp: time.Now()}
}

// ContentText returns the raw text without any display prefix.
func (b *ContentBlock) ContentText() string {
	return b.Text
}

// FormatForViewport returns the display form with the per-kind prefix.
func (b *ContentBlock) FormatForViewport() string {
	switch b.Kind {
	case UserMessage:
		return "You: " + b.Text
	case AssistantMessage:
		return "Assistant: " + b.Text
	case SystemMessage:
		return "* " + b.Text
	case ToolCallMessage:
		return fmt.Sprintf("Tool: %s (%s)", b.Text, b.Status)
	default:
		return b.Text
	}
}

// FormatForScrollback returns the plain-text form emitted to terminal
// scrollback. Scrollback must stay free of escape sequences so the
// terminal can rewrap it natively.
func (b *ContentBlock) FormatForScrollback() string {
	return StripANSI(b.FormatForViewport())
}

// Height is the number of display rows the block occupies when wrapped
// to width, computed per logical line as ceil(chars/width) with empty
// lines counting as one row. The result is cached per width.
func (b *ContentBlock) Height(width uint16) uint16 {
	if b.cached && b.cachedWidth == width {
		return b.cachedHeight
	}

	total := MeasureTextHeight(b.FormatForViewport(), width)

	b.cachedWidth = width
	b.cachedHeight = total
	b.cached = true
	return total
}

// InvalidateHeight drops the cached height. Called when the terminal is
// resized or the block text changes.
func (b *ContentBlock) InvalidateHeight() {
	b.cached = false
}

// HasCachedHeight reports whether a height is currently cached.
func (b *ContentBlock) HasCachedHeight() bool {
	return b.cached
}

// LayoutMode determines how the content, input, and status zones are
// positioned.
type LayoutMode uint8

const (
	// LayoutTopDown places the input directly after the content while
	// everything still fits.
	LayoutTopDown LayoutMode = iota
	// LayoutBottomAnchored pins the input and status to the bottom once
	// content fills the viewport.
	LayoutBottomAnchored
)

// LayoutZones are the rectangles the three viewport components render
// into.
type LayoutZones struct {
	Content Rect
	Input   Rect
	Status  Rect
}

// ViewportState owns the mutable content buffer and the terminal
// dimensions.
type ViewportState struct {
	buffer            []ContentBlock
	nextID            uint64
	width             uint16
	height            uint16
	contentZoneHeight uint16
}

// NewViewportState creates an empty viewport for the given terminal size.
func NewViewportState(width, height uint16) *ViewportState {
	return &ViewportState{
		nextID:            1,
		width:             width,
		height:            height,
		contentZoneHeight: satSub(satSub(height, InputHeight), StatusHeight),
	}
}

func (v *ViewportState) Width() uint16  { return v.width }
func (v *ViewportState) Height() uint16 { return v.height }

// ContentZoneHeight is the rows available to content blocks.
func (v *ViewportState) ContentZoneHeight() uint16 { return v.contentZoneHeight }

// ContentCount is the number of blocks in the buffer.
func (v *ViewportState) ContentCount() int { return len(v.buffer) }

// ContentBlocks returns the buffered blocks, oldest first. The slice
// aliases the buffer and is valid until the next mutation.
func (v *ViewportState) ContentBlocks() []ContentBlock { return v.buffer }

func (v *ViewportState) push(kind ContentKind, text string) *ContentBlock {
	block := NewContentBlock(v.nextID, kind, text)
	v.nextID++
	v.buffer = append(v.buffer, block)
	return &v.buffer[len(v.buffer)-1]
}

// PushUserMessage appends a user message.
func (v *ViewportState) PushUserMessage(text string) {
	v.push(UserMessage, text)
}

// PushAssistantMessage appends an assistant message. Incomplete messages
// are still streaming.
func (v *ViewportState) PushAssistantMessage(text string, complete bool) {
	b := v.push(AssistantMessage, text)
	b.Complete = complete
}

// PushSystemMessage appends a system notice.
func (v *ViewportState) PushSystemMessage(text string) {
	v.push(SystemMessage, text)
}

// PushToolCall appends a tool invocation with its initial status.
func (v *ViewportState) PushToolCall(name string, status ToolStatus) {
	b := v.push(ToolCallMessage, name)
	b.Status = status
}

// UpdateToolStatus updates the status of the most recent tool call with
// the given name. Returns false if no such block is buffered.
func (v *ViewportState) UpdateToolStatus(name string, status ToolStatus) bool {
	for i := len(v.buffer) - 1; i >= 0; i-- {
		b := &v.buffer[i]
		if b.Kind == ToolCallMessage && b.Text == name {
			b.Status = status
			b.InvalidateHeight()
			return true
		}
	}
	return false
}

// AppendToLastAssistant appends streamed text to the newest assistant
// message, creating one if the buffer ends with something else.
func (v *ViewportState) AppendToLastAssistant(text string) {
	if n := len(v.buffer); n > 0 && v.buffer[n-1].Kind == AssistantMessage && !v.buffer[n-1].Complete {
		b := &v.buffer[n-1]
		b.Text += text
		b.InvalidateHeight()
		return
	}
	v.PushAssistantMessage(text, false)
}

// TotalContentHeight sums the wrapped heights of all buffered blocks at
// the current width.
func (v *ViewportState) TotalContentHeight() uint16 {
	var total uint16
	for i := range v.buffer {
		total = satAdd(total, v.buffer[i].Height(v.width))
	}
	return total
}

// MaybeOverflowToScrollback removes oldest blocks while the buffered
// content exceeds the content zone, returning them oldest first for
// emission to terminal scrollback. The newest block always stays, even
// when it alone exceeds the zone, and blocks move as complete units.
func (v *ViewportState) MaybeOverflowToScrollback() []ContentBlock {
	var overflow []ContentBlock
	if len(v.buffer) == 0 {
		return overflow
	}
	for len(v.buffer) > 1 && v.TotalContentHeight() > v.contentZoneHeight {
		overflow = append(overflow, v.buffer[0])
		v.buffer = v.buffer[1:]
	}
	return overflow
}

// Mode reports whether the content still fits above the input or the
// input has anchored to the bottom.
func (v *ViewportState) Mode() LayoutMode {
	if v.TotalContentHeight()+InputHeight+StatusHeight < v.height {
		return LayoutTopDown
	}
	return LayoutBottomAnchored
}

// Zones computes the rectangles for the content, input, and status
// areas under the current layout mode.
func (v *ViewportState) Zones() LayoutZones {
	switch v.Mode() {
	case LayoutTopDown:
		contentHeight := v.TotalContentHeight()
		return LayoutZones{
			Content: Rect{Width: v.width, Height: contentHeight},
			Input:   Rect{Y: contentHeight, Width: v.width, Height: InputHeight},
			Status:  Rect{Y: contentHeight + InputHeight, Width: v.width, Height: StatusHeight},
		}
	default:
		inputY := satSub(satSub(v.height, InputHeight), StatusHeight)
		statusY := satSub(v.height, StatusHeight)
		return LayoutZones{
			Content: Rect{Width: v.width, Height: inputY},
			Input:   Rect{Y: inputY, Width: v.width, Height: InputHeight},
			Status:  Rect{Y: statusY, Width: v.width, Height: StatusHeight},
		}
	}
}

// HandleResize updates the dimensions, drops every cached height, and
// returns any blocks the smaller zone can no longer hold.
func (v *ViewportState) HandleResize(width, height uint16) []ContentBlock {
	v.width = width
	v.height = height
	v.contentZoneHeight = satSub(satSub(height, InputHeight), StatusHeight)
	for i := range v.buffer {
		v.buffer[i].InvalidateHeight()
	}
	return v.MaybeOverflowToScrollback()
}

// ContentNodes converts the buffered blocks into styled text nodes using
// the theme's per-kind styles, ready to hand to Render.
func (v *ViewportState) ContentNodes(theme *Theme) []Node {
	nodes := make([]Node, 0, len(v.buffer))
	for i := range v.buffer {
		b := &v.buffer[i]
		nodes = append(nodes, Styled(b.FormatForViewport(), theme.StyleFor(b.Kind)))
	}
	return nodes
}
