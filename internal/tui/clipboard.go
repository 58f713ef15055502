package tui

import (
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

const noticeTTL = 3 * time.Second

// writeClipboard is swapped in tests, the system clipboard is not available
// on CI machines.
var writeClipboard = clipboard.WriteAll

func cmdCopy(what, value string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{what: what, err: writeClipboard(value)}
	}
}

// notice is a one-line status that disappears after noticeTTL.
type notice struct {
	text   string
	failed bool
}

func (n *notice) update(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case copiedMsg:
		if msg.err != nil {
			n.text, n.failed = "Copy failed: "+msg.err.Error(), true
		} else {
			n.text, n.failed = msg.what+" copied to clipboard", false
		}
		return tea.Tick(noticeTTL, func(time.Time) tea.Msg { return clearStatusMsg{} }), true
	case clearStatusMsg:
		n.text = ""
		return nil, true
	}
	return nil, false
}

func (n notice) View() string {
	switch {
	case n.text == "":
		return ""
	case n.failed:
		return errorStyle.Render(n.text)
	default:
		return successStyle.Render(n.text)
	}
}
