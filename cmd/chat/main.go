// Command chat is a demo chat session showing viewport overflow, the
// command popup, and streaming assistant output.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"quill"
)

var commands = []quill.PopupItem{
	{Kind: quill.ItemCommand, Label: "/help", Description: "show available commands"},
	{Kind: quill.ItemCommand, Label: "/clear", Description: "clear the conversation"},
	{Kind: quill.ItemCommand, Label: "/theme", Description: "cycle the color theme"},
	{Kind: quill.ItemCommand, Label: "/tools", Description: "list registered tools"},
	{Kind: quill.ItemCommand, Label: "/quit", Description: "exit the session"},
}

const popupRows = 4

type tickMsg time.Time

type streamMsg string

type model struct {
	vp      *quill.ViewportState
	theme   quill.Theme
	input   string
	cursor  int
	frame   int
	busy    bool
	popup   bool
	items   []quill.PopupItem
	sel     int
	offset  int
	pending []string
}

func newModel(width, height int) model {
	return model{
		vp:    quill.NewViewportState(uint16(width), uint16(height)),
		theme: pickTheme(),
		items: commands,
	}
}

func pickTheme() quill.Theme {
	if termenv.DefaultOutput().Profile == termenv.Ascii {
		return quill.ThemeMonochrome
	}
	return quill.ThemeDark
}

func (m model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.flush(m.vp.HandleResize(uint16(msg.Width), uint16(msg.Height)))

	case tickMsg:
		m.frame++
		if m.busy && len(m.pending) > 0 {
			word := m.pending[0]
			m.pending = m.pending[1:]
			m.vp.AppendToLastAssistant(word)
			if len(m.pending) == 0 {
				m.busy = false
				m.vp.UpdateToolStatus("search", quill.ToolComplete)
			}
		}
		next, cmd := m.flush(m.vp.MaybeOverflowToScrollback())
		return next, tea.Batch(cmd, tick())

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.popup {
		switch msg.String() {
		case "esc":
			m.popup = false
			return m, nil
		case "up":
			m.sel, m.offset = quill.ClampSelection(len(m.items), m.sel-1, m.offset, popupRows)
			return m, nil
		case "down":
			m.sel, m.offset = quill.ClampSelection(len(m.items), m.sel+1, m.offset, popupRows)
			return m, nil
		case "enter":
			m.popup = false
			if m.sel < len(m.items) {
				return m.runCommand(m.items[m.sel].Label)
			}
			return m, nil
		}
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "enter":
		return m.submit()
	case "backspace":
		if m.cursor > 0 {
			m.input = m.input[:m.cursor-1] + m.input[m.cursor:]
			m.cursor--
		}
		m.refilter()
		return m, nil
	case "left":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "right":
		if m.cursor < len(m.input) {
			m.cursor++
		}
		return m, nil
	default:
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
			s := string(msg.Runes)
			if msg.Type == tea.KeySpace {
				s = " "
			}
			m.input = m.input[:m.cursor] + s + m.input[m.cursor:]
			m.cursor += len(s)
			if strings.HasPrefix(m.input, "/") {
				m.popup = true
			}
			m.refilter()
		}
		return m, nil
	}
}

func (m *model) refilter() {
	if !strings.HasPrefix(m.input, "/") {
		m.popup = false
		return
	}
	m.items = quill.FilterItems(commands, strings.TrimPrefix(m.input, "/"))
	m.sel, m.offset = quill.ClampSelection(len(m.items), m.sel, m.offset, popupRows)
}

func (m model) submit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input)
	if text == "" {
		return m, nil
	}
	m.input = ""
	m.cursor = 0
	m.popup = false

	if strings.HasPrefix(text, "/") {
		return m.runCommand(text)
	}

	m.vp.PushUserMessage(text)
	m.vp.PushToolCall("search", quill.ToolRunning)
	m.vp.PushAssistantMessage("", false)
	m.pending = strings.SplitAfter("Here is a streamed reply to: "+text, " ")
	m.busy = true
	return m.flush(m.vp.MaybeOverflowToScrollback())
}

func (m model) runCommand(cmd string) (tea.Model, tea.Cmd) {
	switch cmd {
	case "/quit":
		return m, tea.Quit
	case "/clear":
		m.vp = quill.NewViewportState(m.vp.Width(), m.vp.Height())
		return m, nil
	case "/theme":
		if m.theme == quill.ThemeDark {
			m.theme = quill.ThemeLight
		} else {
			m.theme = quill.ThemeDark
		}
		return m, nil
	default:
		m.vp.PushSystemMessage("ran " + cmd)
		return m.flush(m.vp.MaybeOverflowToScrollback())
	}
}

// flush emits graduated blocks to terminal scrollback, oldest first.
func (m model) flush(blocks []quill.ContentBlock) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	for _, b := range blocks {
		cmds = append(cmds, tea.Println(b.FormatForScrollback()))
	}
	return m, tea.Batch(cmds...)
}

func (m model) View() string {
	width := m.vp.Width()

	var children []quill.Node
	for _, n := range m.vp.ContentNodes(&m.theme) {
		children = append(children, n)
	}

	if m.popup {
		children = append(children,
			quill.NewPopup(m.items, m.sel, m.offset, popupRows).
				WithPopupStyles(m.theme.Selected, m.theme.Unselected))
	}

	status := "Ready"
	if m.busy {
		status = "Thinking"
	}

	children = append(children,
		quill.Col(quill.NewInput(m.input, "Type a message, / for commands").Focus(m.cursor)).
			WithBorder(quill.BorderRounded).
			WithStyle(m.theme.Border),
		quill.Row(
			quill.NewSpinner("").AtFrame(m.frame),
			quill.Styled(status, m.theme.Muted),
		),
	)

	out := quill.Render(quill.Col(children...), width)
	// bubbletea renders its own frames; plain newlines keep alignment
	return strings.ReplaceAll(out, "\r\n", "\n")
}

func main() {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		width, height = 80, 24
	}

	p := tea.NewProgram(newModel(width, height))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "chat:", err)
		os.Exit(1)
	}
}
