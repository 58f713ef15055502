package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-cred-keeper/internal/app"
	"github.com/MKhiriev/go-cred-keeper/internal/service"
	"github.com/MKhiriev/go-cred-keeper/models"
)

// RecoverModel derives a wallet from its recovery phrase.
type RecoverModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	input   textinput.Model
	account models.NewAccount
	form    formState
	notice  notice
}

func NewRecoverModel(ctx context.Context, auth service.ClientAuthService) *RecoverModel {
	in := newInput("twelve words separated by spaces", 512)
	in.Width = 64
	in.Focus()

	return &RecoverModel{ctx: ctx, auth: auth, input: in, form: newFormState()}
}

func (m *RecoverModel) Init() tea.Cmd {
	m.input.Reset()
	m.account = models.NewAccount{}
	m.form.reset()
	return textinput.Blink
}

func (m *RecoverModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd, ok := m.notice.update(msg); ok {
		return m, cmd
	}

	switch msg := msg.(type) {
	case recoveredMsg:
		m.form.finish(msg.err, "Wallet recovered", app.MsgRecoverFailed)
		if msg.err == nil {
			m.account = msg.account
			m.input.Reset()
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.account = models.NewAccount{}
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(msg, keys.enter):
			if m.form.busy() {
				return m, nil
			}
			mnemonic := m.input.Value()
			if strings.TrimSpace(mnemonic) == "" {
				m.form.fail(app.MsgMissingMnemonic)
				return m, nil
			}
			return m, tea.Batch(m.form.start(), m.cmdRecover(mnemonic))
		case m.account.PrivateKey != "" && m.input.Value() == "" && key.Matches(msg, keys.copy):
			return m, cmdCopy("Private key", m.account.PrivateKey)
		}
	}

	if cmd := m.form.update(msg); cmd != nil {
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *RecoverModel) View() string {
	var b strings.Builder
	b.WriteString("Recovery phrase\n[")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if v := m.form.View(); v != "" {
		b.WriteString("\n")
		b.WriteString(v)
		b.WriteString("\n")
	}
	if m.account.Address != "" {
		b.WriteString("\nWallet address: ")
		b.WriteString(m.account.Address)
		b.WriteString("\nPrivate key:    ")
		b.WriteString(fitText(m.account.PrivateKey, 20))
		b.WriteString("\n")
	}
	if v := m.notice.View(); v != "" {
		b.WriteString("\n")
		b.WriteString(v)
	}

	hotKeys := "esc: back │ enter: recover"
	if m.account.PrivateKey != "" {
		hotKeys += " │ c: copy private key"
	}
	return renderPage("RECOVER WALLET", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *RecoverModel) cmdRecover(mnemonic string) tea.Cmd {
	ctx, auth := m.ctx, m.auth
	return func() tea.Msg {
		account, err := auth.Recover(ctx, mnemonic)
		return recoveredMsg{account: account, err: err}
	}
}
