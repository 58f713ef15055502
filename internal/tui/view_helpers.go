package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("  ctrl+c: quit"))

	return b.String()
}

// renderFields lays labeled inputs out as a two-column table.
func renderFields(labels []string, inputs []textinput.Model) string {
	width := 0
	for _, l := range labels {
		width = max(width, lipgloss.Width(l))
	}

	var b strings.Builder
	b.WriteString(padRight("Field", width))
	b.WriteString(" │ Value\n")
	b.WriteString(strings.Repeat("─", width))
	b.WriteString("─┼────────────────────────────────────────────\n")
	for i, l := range labels {
		b.WriteString(padRight(l, width))
		b.WriteString(" │ [")
		b.WriteString(inputs[i].View())
		b.WriteString("]\n")
	}
	return b.String()
}

// renderTabs draws a tab bar with the active tab underlined.
func renderTabs(tabs []string, active int) string {
	parts := make([]string, len(tabs))
	for i, t := range tabs {
		if i == active {
			parts[i] = activeTabStyle.Render(t)
		} else {
			parts[i] = helpStyle.Render(t)
		}
	}
	return strings.Join(parts, "  │  ")
}

func cursor(selected bool) string {
	if selected {
		return selectedStyle.Render(">")
	}
	return " "
}

func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// fitText shortens v to max runes, keeping both ends so that hashes and
// addresses stay recognizable.
func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	head := (max - 1) / 2
	tail := max - 1 - head
	return string(r[:head]) + "…" + string(r[len(r)-tail:])
}

func newInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 48
	return in
}

func newPasswordInput(placeholder string) textinput.Model {
	in := newInput(placeholder, 256)
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '*'
	return in
}

// focusInput moves focus from inputs[from] to inputs[to].
func focusInput(inputs []textinput.Model, from, to int) int {
	inputs[from].Blur()
	to = (to + len(inputs)) % len(inputs)
	inputs[to].Focus()
	return to
}

func resetInputs(inputs []textinput.Model) {
	for i := range inputs {
		inputs[i].Reset()
	}
}
