// Package quill is the rendering core of a terminal chat UI toolkit: a
// node-tree layout engine, an ANSI compositor, and a bounded viewport that
// virtualizes unbounded chat history into a small live render region plus
// an append-only scrollback.
package quill

import (
	"github.com/charmbracelet/lipgloss"
)

// Attribute represents text styling attributes that can be combined.
type Attribute uint8

const (
	AttrNone          Attribute = 0
	AttrBold          Attribute = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrInverse
	AttrStrikethrough
)

// Has returns true if the attribute set contains the given attribute.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// With returns a new attribute set with the given attribute added.
func (a Attribute) With(attr Attribute) Attribute {
	return a | attr
}

// Without returns a new attribute set with the given attribute removed.
func (a Attribute) Without(attr Attribute) Attribute {
	return a &^ attr
}

// Color is a terminal color in any form lipgloss understands: an ANSI
// palette index ("0".."255") or a hex string ("#ff5500"). The empty string
// is the terminal default.
type Color string

// Standard basic colors for convenience.
const (
	Black   Color = "0"
	Red     Color = "1"
	Green   Color = "2"
	Yellow  Color = "3"
	Blue    Color = "4"
	Magenta Color = "5"
	Cyan    Color = "6"
	White   Color = "7"

	// Bright variants
	BrightBlack   Color = "8"
	BrightRed     Color = "9"
	BrightGreen   Color = "10"
	BrightYellow  Color = "11"
	BrightBlue    Color = "12"
	BrightMagenta Color = "13"
	BrightCyan    Color = "14"
	BrightWhite   Color = "15"
)

// Style combines foreground, background colors and attributes. The zero
// value is the unstyled style: Apply returns its input verbatim.
type Style struct {
	FG   Color
	BG   Color
	Attr Attribute
}

// NewStyle returns a style with default colors and no attributes.
func NewStyle() Style {
	return Style{}
}

// Foreground returns a new style with the given foreground color.
func (s Style) Foreground(c Color) Style {
	s.FG = c
	return s
}

// Background returns a new style with the given background color.
func (s Style) Background(c Color) Style {
	s.BG = c
	return s
}

// Bold returns a new style with bold enabled.
func (s Style) Bold() Style {
	s.Attr = s.Attr.With(AttrBold)
	return s
}

// Dim returns a new style with dim enabled.
func (s Style) Dim() Style {
	s.Attr = s.Attr.With(AttrDim)
	return s
}

// Italic returns a new style with italic enabled.
func (s Style) Italic() Style {
	s.Attr = s.Attr.With(AttrItalic)
	return s
}

// Underline returns a new style with underline enabled.
func (s Style) Underline() Style {
	s.Attr = s.Attr.With(AttrUnderline)
	return s
}

// Inverse returns a new style with inverse enabled.
func (s Style) Inverse() Style {
	s.Attr = s.Attr.With(AttrInverse)
	return s
}

// Strikethrough returns a new style with strikethrough enabled.
func (s Style) Strikethrough() Style {
	s.Attr = s.Attr.With(AttrStrikethrough)
	return s
}

// Equal returns true if two styles are equal.
func (s Style) Equal(other Style) bool {
	return s == other
}

// IsZero reports whether the style would render text unchanged.
func (s Style) IsZero() bool {
	return s == Style{}
}

// Apply renders content with this style's escape sequences. The zero style
// short-circuits so unstyled text stays byte-identical to its input.
func (s Style) Apply(content string) string {
	if s.IsZero() {
		return content
	}
	ls := lipgloss.NewStyle()
	if s.FG != "" {
		ls = ls.Foreground(lipgloss.Color(s.FG))
	}
	if s.BG != "" {
		ls = ls.Background(lipgloss.Color(s.BG))
	}
	if s.Attr.Has(AttrBold) {
		ls = ls.Bold(true)
	}
	if s.Attr.Has(AttrDim) {
		ls = ls.Faint(true)
	}
	if s.Attr.Has(AttrItalic) {
		ls = ls.Italic(true)
	}
	if s.Attr.Has(AttrUnderline) {
		ls = ls.Underline(true)
	}
	if s.Attr.Has(AttrInverse) {
		ls = ls.Reverse(true)
	}
	if s.Attr.Has(AttrStrikethrough) {
		ls = ls.Strikethrough(true)
	}
	return ls.Render(content)
}

// BorderStyle defines the characters used for drawing borders.
type BorderStyle struct {
	Horizontal  rune
	Vertical    rune
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
}

// Standard border styles.
var (
	BorderSingle = BorderStyle{
		Horizontal:  '─',
		Vertical:    '│',
		TopLeft:     '┌',
		TopRight:    '┐',
		BottomLeft:  '└',
		BottomRight: '┘',
	}
	BorderRounded = BorderStyle{
		Horizontal:  '─',
		Vertical:    '│',
		TopLeft:     '╭',
		TopRight:    '╮',
		BottomLeft:  '╰',
		BottomRight: '╯',
	}
	BorderDouble = BorderStyle{
		Horizontal:  '═',
		Vertical:    '║',
		TopLeft:     '╔',
		TopRight:    '╗',
		BottomLeft:  '╚',
		BottomRight: '╝',
	}
)
