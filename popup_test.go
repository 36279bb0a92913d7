package quill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testItems = []PopupItem{
	{Kind: ItemCommand, Label: "/help"},
	{Kind: ItemCommand, Label: "/history"},
	{Kind: ItemCommand, Label: "/clear"},
	{Kind: ItemFile, Label: "main.go"},
}

func TestFilterItemsEmptyQueryKeepsAll(t *testing.T) {
	assert.Equal(t, testItems, FilterItems(testItems, ""))
}

func TestFilterItemsMatchesSubsequence(t *testing.T) {
	got := FilterItems(testItems, "hlp")
	require.NotEmpty(t, got)
	assert.Equal(t, "/help", got[0].Label)
}

func TestFilterItemsDropsNonMatches(t *testing.T) {
	got := FilterItems(testItems, "zzz")
	assert.Empty(t, got)
}

func TestClampSelectionKeepsSelectionVisible(t *testing.T) {
	// selection below the window pulls the window down
	sel, off := ClampSelection(10, 7, 0, 4)
	assert.Equal(t, 7, sel)
	assert.Equal(t, 4, off)

	// selection above the window pulls it back up
	sel, off = ClampSelection(10, 2, 5, 4)
	assert.Equal(t, 2, sel)
	assert.Equal(t, 2, off)
}

func TestClampSelectionBounds(t *testing.T) {
	sel, off := ClampSelection(3, -1, 0, 4)
	assert.Equal(t, 0, sel)
	assert.Equal(t, 0, off)

	sel, off = ClampSelection(3, 99, 0, 4)
	assert.Equal(t, 2, sel)
	assert.Equal(t, 0, off)

	sel, off = ClampSelection(0, 5, 5, 4)
	assert.Equal(t, 0, sel)
	assert.Equal(t, 0, off)
}
