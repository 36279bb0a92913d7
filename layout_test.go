package quill

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSaturatingRectInset(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 4, Height: 2}
	inner := r.Inset(Pad(3))
	assert.Equal(t, uint16(0), inner.Width)
	assert.Equal(t, uint16(0), inner.Height)
}

func TestMeasureTextHeightWraps(t *testing.T) {
	assert.Equal(t, uint16(1), MeasureTextHeight("hello", 80))
	assert.Equal(t, uint16(3), MeasureTextHeight("one\ntwo\nthree", 80))
	assert.Equal(t, uint16(3), MeasureTextHeight(strings.Repeat("a", 44), 20))
	assert.Equal(t, uint16(1), MeasureTextHeight("", 20))
	// zero width disables wrapping rather than dividing by zero
	assert.Equal(t, uint16(1), MeasureTextHeight("a long line of text", 0))
}

func TestMeasuredHeightMonotoneInWidth(t *testing.T) {
	text := "the quick brown fox jumps over the lazy dog"
	prev := MeasureTextHeight(text, 60)
	for _, w := range []uint16{40, 20, 10, 5, 1} {
		h := MeasureTextHeight(text, w)
		assert.GreaterOrEqual(t, h, prev)
		prev = h
	}
}

func TestBuildTextSizesToContent(t *testing.T) {
	box := Build(Text("hello"), Rect{Width: 80, Height: 24})
	assert.Equal(t, uint16(5), box.Rect.Width)
	assert.Equal(t, uint16(1), box.Rect.Height)
}

func TestColumnFixedHeightIsForced(t *testing.T) {
	root := Build(Col(
		Col(Text("a")).WithSize(Fixed(5)),
		Col(Text("b")).WithSize(Fixed(2)),
	), Rect{Width: 20, Height: 24})

	assert.Len(t, root.Children, 2)
	assert.Equal(t, uint16(5), root.Children[0].Rect.Height)
	assert.Equal(t, uint16(2), root.Children[1].Rect.Height)
}

func TestColumnFlexFillsRemainingHeight(t *testing.T) {
	root := Build(Col(
		Col(Text("header")).WithSize(Fixed(3)),
		Col(Text("body")).WithSize(Flex(1)),
	), Rect{Width: 20, Height: 20})

	assert.Equal(t, uint16(3), root.Children[0].Rect.Height)
	assert.Equal(t, uint16(17), root.Children[1].Rect.Height)
}

func TestFixedSizePinsOuterExtent(t *testing.T) {
	box := Build(
		Col(Col(Text("x")).WithSize(Flex(1))).WithBorder(BorderSingle).WithSize(Fixed(5)),
		Rect{Width: 20, Height: 24},
	)

	// the stated height is the box's final extent, border included
	assert.Equal(t, uint16(5), box.Rect.Height)
	assert.Equal(t, uint16(3), box.Children[0].Rect.Height)
}

func TestColumnGapOffsetsSiblings(t *testing.T) {
	root := Build(Col(
		Text("a"),
		Text("b"),
	).WithGap(2), Rect{Width: 20, Height: 24})

	assert.Equal(t, uint16(0), root.Children[0].Rect.Y)
	assert.Equal(t, uint16(3), root.Children[1].Rect.Y)
}

func TestRowDividesWidthEqually(t *testing.T) {
	root := Build(Row(Text("a"), Text("b"), Text("c")), Rect{Width: 10, Height: 5})

	for _, child := range root.Children {
		assert.Equal(t, uint16(3), child.Rect.Width)
	}
	assert.Equal(t, uint16(0), root.Children[0].Rect.X)
	assert.Equal(t, uint16(3), root.Children[1].Rect.X)
	assert.Equal(t, uint16(6), root.Children[2].Rect.X)
}

func TestBorderAndPaddingShrinkInnerRect(t *testing.T) {
	root := Build(
		Col(Col(Text("x"))).WithBorder(BorderSingle).WithPadding(PadXY(2, 1)),
		Rect{Width: 20, Height: 10},
	)

	child := root.Children[0]
	// 1 border + 2 padding on the left
	assert.Equal(t, uint16(3), child.Rect.X)
	assert.Equal(t, uint16(2), child.Rect.Y)
	assert.Equal(t, uint16(14), child.Rect.Width)
}

func TestMarginOffsetsOuterRect(t *testing.T) {
	root := Build(Col(Text("x")).WithMargin(Pad(2)), Rect{Width: 20, Height: 10})
	assert.Equal(t, uint16(2), root.Rect.X)
	assert.Equal(t, uint16(2), root.Rect.Y)
	assert.Equal(t, uint16(16), root.Rect.Width)
}

func TestPopupHeightCappedAtMaxVisible(t *testing.T) {
	items := []PopupItem{{Label: "one"}, {Label: "two"}}
	box := Build(NewPopup(items, 0, 0, 6), Rect{Width: 40, Height: 24})
	assert.Equal(t, uint16(2), box.Rect.Height)

	many := make([]PopupItem, 20)
	box = Build(NewPopup(many, 0, 0, 6), Rect{Width: 40, Height: 24})
	assert.Equal(t, uint16(6), box.Rect.Height)
}

func TestFragmentStacksWithoutGap(t *testing.T) {
	root := Build(FragmentOf(Text("a"), Text("b")), Rect{Width: 20, Height: 10})
	assert.Equal(t, uint16(0), root.Children[0].Rect.Y)
	assert.Equal(t, uint16(1), root.Children[1].Rect.Y)
	assert.Equal(t, uint16(2), root.Rect.Height)
}

func TestOverlayClaimsNoSpace(t *testing.T) {
	root := Build(Col(
		Text("a"),
		OverlayOf(Text("floating")),
		Text("b"),
	), Rect{Width: 20, Height: 10})

	assert.Equal(t, uint16(0), root.Children[1].Rect.Height)
	// the sibling after the overlay is not displaced
	assert.Equal(t, uint16(1), root.Children[2].Rect.Y)
}

func TestDegenerateZeroSizeRect(t *testing.T) {
	box := Build(Col(Text("hello")).WithBorder(BorderSingle), Rect{})
	assert.Equal(t, uint16(0), box.Rect.Width)
}

func TestBuildIsPure(t *testing.T) {
	node := Col(Text("a"), Col(Text("b")).WithSize(Flex(1))).WithGap(1)
	rect := Rect{Width: 30, Height: 12}
	first := Build(node, rect)
	second := Build(node, rect)
	assert.Equal(t, first, second)
}
