package quill

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Theme provides a set of styles for consistent chat UI appearance.
type Theme struct {
	User       Style // user messages
	Assistant  Style // assistant messages
	System     Style // system notices
	Tool       Style // tool call lines
	Muted      Style // placeholders, status line
	Border     Style // input and popup borders
	Selected   Style // highlighted popup row
	Unselected Style // other popup rows
}

// Pre-defined themes

// ThemeDark is the default theme for dark terminals.
var ThemeDark = Theme{
	User:       Style{FG: Cyan},
	Assistant:  Style{FG: Green},
	System:     Style{FG: Yellow},
	Tool:       Style{FG: Magenta},
	Muted:      Style{Attr: AttrDim},
	Border:     Style{FG: BrightBlack},
	Selected:   Style{FG: Black, BG: Cyan},
	Unselected: Style{FG: White},
}

// ThemeLight adjusts the accents for light backgrounds.
var ThemeLight = Theme{
	User:       Style{FG: Blue},
	Assistant:  Style{FG: Green},
	System:     Style{FG: Magenta},
	Tool:       Style{FG: Red},
	Muted:      Style{Attr: AttrDim},
	Border:     Style{FG: Black},
	Selected:   Style{FG: White, BG: Blue},
	Unselected: Style{FG: Black},
}

// ThemeMonochrome uses only attributes, for terminals without color.
var ThemeMonochrome = Theme{
	User:       Style{Attr: AttrBold},
	Assistant:  Style{},
	System:     Style{Attr: AttrItalic},
	Tool:       Style{Attr: AttrDim},
	Muted:      Style{Attr: AttrDim},
	Border:     Style{Attr: AttrDim},
	Selected:   Style{Attr: AttrInverse},
	Unselected: Style{},
}

// StyleFor maps a content kind to its theme style.
func (t *Theme) StyleFor(kind ContentKind) Style {
	switch kind {
	case UserMessage:
		return t.User
	case AssistantMessage:
		return t.Assistant
	case SystemMessage:
		return t.System
	case ToolCallMessage:
		return t.Tool
	default:
		return Style{}
	}
}

// themeFile is the on-disk TOML shape. Each entry is a color name or
// ANSI index plus optional attribute flags.
type themeFile struct {
	User       styleSpec `toml:"user"`
	Assistant  styleSpec `toml:"assistant"`
	System     styleSpec `toml:"system"`
	Tool       styleSpec `toml:"tool"`
	Muted      styleSpec `toml:"muted"`
	Border     styleSpec `toml:"border"`
	Selected   styleSpec `toml:"selected"`
	Unselected styleSpec `toml:"unselected"`
}

type styleSpec struct {
	FG        string `toml:"fg"`
	BG        string `toml:"bg"`
	Bold      bool   `toml:"bold"`
	Dim       bool   `toml:"dim"`
	Italic    bool   `toml:"italic"`
	Underline bool   `toml:"underline"`
	Inverse   bool   `toml:"inverse"`
}

var namedColors = map[string]Color{
	"black": Black, "red": Red, "green": Green, "yellow": Yellow,
	"blue": Blue, "magenta": Magenta, "cyan": Cyan, "white": White,
	"brightblack": BrightBlack, "brightred": BrightRed,
	"brightgreen": BrightGreen, "brightyellow": BrightYellow,
	"brightblue": BrightBlue, "brightmagenta": BrightMagenta,
	"brightcyan": BrightCyan, "brightwhite": BrightWhite,
}

func (s styleSpec) style(base Style) (Style, error) {
	out := base
	if s.FG != "" {
		c, err := parseColor(s.FG)
		if err != nil {
			return out, err
		}
		out.FG = c
	}
	if s.BG != "" {
		c, err := parseColor(s.BG)
		if err != nil {
			return out, err
		}
		out.BG = c
	}
	if s.Bold {
		out.Attr = out.Attr.With(AttrBold)
	}
	if s.Dim {
		out.Attr = out.Attr.With(AttrDim)
	}
	if s.Italic {
		out.Attr = out.Attr.With(AttrItalic)
	}
	if s.Underline {
		out.Attr = out.Attr.With(AttrUnderline)
	}
	if s.Inverse {
		out.Attr = out.Attr.With(AttrInverse)
	}
	return out, nil
}

func parseColor(name string) (Color, error) {
	if c, ok := namedColors[name]; ok {
		return c, nil
	}
	// bare ANSI indexes and hex colors pass through
	if name != "" && (name[0] == '#' || (name[0] >= '0' && name[0] <= '9')) {
		return Color(name), nil
	}
	return "", fmt.Errorf("unknown color %q", name)
}

// LoadTheme reads a TOML theme file, layering its entries over ThemeDark
// so a partial file only overrides what it names.
func LoadTheme(path string) (Theme, error) {
	var file themeFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return ThemeDark, fmt.Errorf("load theme: %w", err)
	}
	return applyThemeFile(file)
}

// ParseTheme decodes a TOML theme from a string. Used for embedded and
// test themes.
func ParseTheme(data string) (Theme, error) {
	var file themeFile
	if _, err := toml.Decode(data, &file); err != nil {
		return ThemeDark, fmt.Errorf("parse theme: %w", err)
	}
	return applyThemeFile(file)
}

func applyThemeFile(file themeFile) (Theme, error) {
	t := ThemeDark
	specs := []struct {
		spec styleSpec
		dst  *Style
	}{
		{file.User, &t.User},
		{file.Assistant, &t.Assistant},
		{file.System, &t.System},
		{file.Tool, &t.Tool},
		{file.Muted, &t.Muted},
		{file.Border, &t.Border},
		{file.Selected, &t.Selected},
		{file.Unselected, &t.Unselected},
	}
	for _, s := range specs {
		styled, err := s.spec.style(*s.dst)
		if err != nil {
			return t, err
		}
		*s.dst = styled
	}
	return t, nil
}
