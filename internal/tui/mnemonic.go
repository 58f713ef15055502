package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-cred-keeper/models"
)

// MnemonicModel shows the recovery phrase of a fresh account. It is the only
// time the phrase is displayed.
type MnemonicModel struct {
	role         models.Role
	registration models.Registration
	notice       notice
}

func NewMnemonicModel() *MnemonicModel {
	return &MnemonicModel{}
}

func (m *MnemonicModel) Init() tea.Cmd {
	return nil
}

func (m *MnemonicModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd, ok := m.notice.update(msg); ok {
		return m, cmd
	}

	switch msg := msg.(type) {
	case registrationShown:
		m.role = msg.role
		m.registration = msg.registration
		m.notice = notice{}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.copy):
			if m.registration.Mnemonic == "" {
				return m, nil
			}
			return m, cmdCopy("Recovery phrase", m.registration.Mnemonic)
		case key.Matches(msg, keys.enter):
			role := m.role
			m.registration = models.Registration{}
			return m, func() tea.Msg { return NavigateTo{Page: pageLogin, Payload: roleSelected{role: role}} }
		}
	}
	return m, nil
}

func (m *MnemonicModel) View() string {
	var b strings.Builder
	if m.registration.Message != "" {
		b.WriteString(successStyle.Render(m.registration.Message))
		b.WriteString("\n\n")
	}
	b.WriteString("Wallet address: ")
	b.WriteString(m.registration.Address)
	b.WriteString("\n\nRecovery phrase:\n")
	b.WriteString(numberedWords(m.registration.Mnemonic))
	b.WriteString("\n")
	b.WriteString(errorStyle.Render("Write the phrase down. It is shown only once."))
	if v := m.notice.View(); v != "" {
		b.WriteString("\n\n")
		b.WriteString(v)
	}

	return renderPage("ACCOUNT CREATED", b.String(), "c: copy phrase │ enter: continue to login")
}

// numberedWords lays a mnemonic out four words per line.
func numberedWords(mnemonic string) string {
	words := strings.Fields(mnemonic)
	var b strings.Builder
	for i, w := range words {
		b.WriteString(padRight(strconv.Itoa(i+1)+". "+w, 16))
		if (i+1)%4 == 0 || i == len(words)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
