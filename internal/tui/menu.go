package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-cred-keeper/models"
)

type menuItem struct {
	title string
	nav   NavigateTo
}

// MenuModel is the role picker every session starts from.
type MenuModel struct {
	items  []menuItem
	idx    int
	status string
	failed bool
}

func NewMenuModel() *MenuModel {
	return &MenuModel{
		items: []menuItem{
			{title: "Student portal", nav: NavigateTo{Page: pageLogin, Payload: roleSelected{role: models.RoleStudent}}},
			{title: "University portal", nav: NavigateTo{Page: pageLogin, Payload: roleSelected{role: models.RoleUniversity}}},
			{title: "Government admin", nav: NavigateTo{Page: pageAdminLogin}},
			{title: "Verify a document", nav: NavigateTo{Page: pageVerifier}},
			{title: "Recover wallet", nav: NavigateTo{Page: pageRecover}},
			{title: "Chat assistant", nav: NavigateTo{Page: pageChat}},
		},
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(loggedOut); ok {
		m.failed = result.err != nil
		if m.failed {
			m.status = "Logout failed: " + result.err.Error()
		} else {
			m.status = "Logged out"
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		m.status = ""
		nav := m.items[m.idx].nav
		return m, func() tea.Msg { return nav }
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder
	idColWidth := lipgloss.Width("ID")
	if w := lipgloss.Width(fmt.Sprintf("%d", len(m.items))); w > idColWidth {
		idColWidth = w
	}
	idColWidth += 2 // "<marker> <id>"

	actionColWidth := lipgloss.Width("Portal")
	for _, item := range m.items {
		actionColWidth = max(actionColWidth, lipgloss.Width(item.title))
	}

	switch {
	case m.status != "" && m.failed:
		b.WriteString(errorStyle.Render("Error: " + m.status))
		b.WriteString("\n\n")
	case m.status != "":
		b.WriteString(successStyle.Render("OK: " + m.status))
		b.WriteString("\n\n")
	}

	b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, "ID", actionColWidth, "Portal"))
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range m.items {
		idCell := fmt.Sprintf("%s %d", cursor(i == m.idx), i+1)
		b.WriteString(padRight(idCell, idColWidth))
		b.WriteString(fmt.Sprintf(" │ %-*s\n", actionColWidth, item.title))
	}

	return renderPage("CREDKEEPER", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: move │ v: version")
}
