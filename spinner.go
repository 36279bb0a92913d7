package quill

import "github.com/charmbracelet/bubbles/spinner"

// Spinner frame tables. SpinnerBraille is the default; the bubbles presets
// are re-exported so callers driving a spinner from a bubbletea tick can
// share the same frames.
var (
	SpinnerBraille = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	SpinnerDots    = spinner.Dot.Frames
	SpinnerLine    = spinner.Line.Frames
	SpinnerMini    = spinner.MiniDot.Frames
)

// spinnerFrame returns the glyph for the node's current frame, wrapping
// the index so any integer is a valid frame counter.
func spinnerFrame(n Node) string {
	frames := n.Frames
	if len(frames) == 0 {
		frames = SpinnerBraille
	}
	i := n.Frame % len(frames)
	if i < 0 {
		i += len(frames)
	}
	return frames[i]
}
