package quill

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseThemeOverridesNamedEntries(t *testing.T) {
	theme, err := ParseTheme(`
[user]
fg = "brightgreen"
bold = true

[selected]
fg = "black"
bg = "yellow"
`)
	require.NoError(t, err)

	assert.Equal(t, BrightGreen, theme.User.FG)
	assert.True(t, theme.User.Attr.Has(AttrBold))
	assert.Equal(t, Yellow, theme.Selected.BG)

	// entries the file does not name keep their defaults
	assert.Equal(t, ThemeDark.Assistant, theme.Assistant)
	assert.Equal(t, ThemeDark.Border, theme.Border)
}

func TestParseThemeAcceptsIndexAndHexColors(t *testing.T) {
	theme, err := ParseTheme(`
[tool]
fg = "213"

[system]
fg = "#ff8800"
`)
	require.NoError(t, err)
	assert.Equal(t, Color("213"), theme.Tool.FG)
	assert.Equal(t, Color("#ff8800"), theme.System.FG)
}

func TestParseThemeRejectsUnknownColor(t *testing.T) {
	_, err := ParseTheme(`
[user]
fg = "chartreuse-ish"
`)
	assert.Error(t, err)
}

func TestParseThemeRejectsBadTOML(t *testing.T) {
	_, err := ParseTheme("not [valid toml")
	assert.Error(t, err)
}

func TestLoadThemeFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	require.NoError(t, os.WriteFile(path, []byte("[muted]\ndim = true\nitalic = true\n"), 0o644))

	theme, err := LoadTheme(path)
	require.NoError(t, err)
	assert.True(t, theme.Muted.Attr.Has(AttrItalic))
}

func TestLoadThemeMissingFile(t *testing.T) {
	_, err := LoadTheme(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestStyleForMapsEveryKind(t *testing.T) {
	theme := ThemeDark
	assert.Equal(t, theme.User, theme.StyleFor(UserMessage))
	assert.Equal(t, theme.Assistant, theme.StyleFor(AssistantMessage))
	assert.Equal(t, theme.System, theme.StyleFor(SystemMessage))
	assert.Equal(t, theme.Tool, theme.StyleFor(ToolCallMessage))
}
