package quill

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// StripANSI removes escape sequences, leaving only printable content.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// VisibleWidth is the number of terminal cells s occupies, ignoring
// escape sequences and accounting for wide runes.
func VisibleWidth(s string) int {
	return runewidth.StringWidth(ansi.Strip(s))
}

// maxLineWidth is the widest visible line in a multi-line string.
func maxLineWidth(s string) int {
	max := 0
	for _, line := range strings.Split(s, "\n") {
		if w := VisibleWidth(line); w > max {
			max = w
		}
	}
	return max
}

// splitLines splits on "\n" without a trailing empty entry, so a string
// ending in a newline yields the same rows it displays.
func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

// lineCount counts display lines: one plus the number of separators.
func lineCount(s string) int {
	if s == "" {
		return 1
	}
	return strings.Count(s, "\n") + 1
}

// padToWidth pads s with spaces on the right until it occupies width
// cells. Content already at or past width is returned unchanged.
func padToWidth(s string, width int) string {
	w := VisibleWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// truncateToWidth cuts s to at most width cells, appending an ellipsis
// when anything was removed. Escape sequences are not preserved.
func truncateToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	plain := ansi.Strip(s)
	if runewidth.StringWidth(plain) <= width {
		return plain
	}
	if width == 1 {
		return "…"
	}
	return runewidth.Truncate(plain, width-1, "") + "…"
}
