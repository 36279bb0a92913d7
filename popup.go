package quill

import "github.com/sahilm/fuzzy"

// PopupItemKind distinguishes the sources a popup item can come from.
type PopupItemKind uint8

const (
	ItemCommand PopupItemKind = iota
	ItemFile
	ItemHistory
)

// PopupItem is one selectable row in a popup.
type PopupItem struct {
	Kind        PopupItemKind
	Label       string
	Description string
}

type itemSource []PopupItem

func (s itemSource) String(i int) string { return s[i].Label }
func (s itemSource) Len() int            { return len(s) }

// FilterItems ranks items against a fuzzy query, best match first. An
// empty query returns the items unchanged.
func FilterItems(items []PopupItem, query string) []PopupItem {
	if query == "" {
		return items
	}
	matches := fuzzy.FindFrom(query, itemSource(items))
	out := make([]PopupItem, 0, len(matches))
	for _, m := range matches {
		out = append(out, items[m.Index])
	}
	return out
}

// ClampSelection returns selected and offset adjusted so the selection is
// in range and visible within the maxVisible-row window.
func ClampSelection(itemCount, selected, offset, maxVisible int) (int, int) {
	if itemCount == 0 {
		return 0, 0
	}
	if selected < 0 {
		selected = 0
	}
	if selected >= itemCount {
		selected = itemCount - 1
	}
	if maxVisible <= 0 {
		return selected, 0
	}
	if selected < offset {
		offset = selected
	}
	if selected >= offset+maxVisible {
		offset = selected - maxVisible + 1
	}
	if offset < 0 {
		offset = 0
	}
	return selected, offset
}
