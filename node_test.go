package quill

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructorsSetKinds(t *testing.T) {
	assert.Equal(t, KindEmpty, Empty().Kind)
	assert.Equal(t, KindText, Text("x").Kind)
	assert.Equal(t, KindBox, Col().Kind)
	assert.Equal(t, DirRow, Row().Direction)
	assert.Equal(t, KindFragment, FragmentOf().Kind)
	assert.Equal(t, KindStatic, Scrollback("k").Kind)
	assert.Equal(t, KindInput, NewInput("", "").Kind)
	assert.Equal(t, KindSpinner, NewSpinner("").Kind)
	assert.Equal(t, KindPopup, NewPopup(nil, 0, 0, 3).Kind)
	assert.Equal(t, KindFocusable, Focusable(Empty()).Kind)
	assert.Equal(t, KindErrorBoundary, Boundary(Empty(), Empty()).Kind)
	assert.Equal(t, KindOverlay, OverlayOf(Empty()).Kind)
	assert.Equal(t, KindRaw, Raw("x", 1, 1).Kind)
}

func TestTextf(t *testing.T) {
	assert.Equal(t, "3 items", Textf("%d items", 3).Content)
}

func TestModifiersCopyNotMutate(t *testing.T) {
	base := Col(Text("a"))
	sized := base.WithSize(Fixed(5)).WithGap(2)

	assert.Equal(t, SizeContent, base.Size.Kind)
	assert.Equal(t, uint16(0), base.Gap.Row)
	assert.Equal(t, uint16(5), sized.Size.Value)
	assert.Equal(t, uint16(2), sized.Gap.Row)
}

func TestWithBorderDoesNotShareState(t *testing.T) {
	a := Col().WithBorder(BorderSingle)
	b := Col().WithBorder(BorderDouble)
	assert.Equal(t, '─', a.Border.Horizontal)
	assert.Equal(t, '═', b.Border.Horizontal)
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, Empty().IsEmpty())
	assert.True(t, FragmentOf(Empty(), Empty()).IsEmpty())
	assert.False(t, FragmentOf(Empty(), Text("x")).IsEmpty())
	assert.False(t, Text("").IsEmpty())
}

func TestPaddingSums(t *testing.T) {
	p := PadXY(2, 1)
	assert.Equal(t, uint16(4), p.Horizontal())
	assert.Equal(t, uint16(2), p.Vertical())
}
