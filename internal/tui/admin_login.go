package tui

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-cred-keeper/internal/app"
	"github.com/MKhiriev/go-cred-keeper/internal/service"
)

const (
	adminKeyFile = iota
	adminPassword
)

// readKeyFile is replaced in tests.
var readKeyFile = os.ReadFile

// AdminLoginModel unlocks the government wallet from a password protected
// key file.
type AdminLoginModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	inputs []textinput.Model
	focus  int
	form   formState
}

func NewAdminLoginModel(ctx context.Context, auth service.ClientAuthService) *AdminLoginModel {
	path := newInput("path/to/admin-keyfile.json", 1024)
	path.Focus()

	return &AdminLoginModel{
		ctx:    ctx,
		auth:   auth,
		inputs: []textinput.Model{path, newPasswordInput("decryption password")},
		form:   newFormState(),
	}
}

func (m *AdminLoginModel) Init() tea.Cmd {
	m.form.reset()
	return textinput.Blink
}

func (m *AdminLoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoginResult:
		m.form.finish(msg.Err, "", app.MsgAdminLoginFailed)
		if msg.Err == nil {
			resetInputs(m.inputs)
			m.form.reset()
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.form.reset()
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(msg, keys.tab):
			m.focus = focusInput(m.inputs, m.focus, m.focus+1)
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.focus = focusInput(m.inputs, m.focus, m.focus-1)
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.form.busy() {
				return m, nil
			}
			if m.focus == adminKeyFile {
				m.focus = focusInput(m.inputs, m.focus, adminPassword)
				return m, nil
			}
			return m, m.submit()
		}
	}

	if cmd := m.form.update(msg); cmd != nil {
		return m, cmd
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *AdminLoginModel) submit() tea.Cmd {
	path := strings.TrimSpace(m.inputs[adminKeyFile].Value())
	password := m.inputs[adminPassword].Value()

	switch {
	case path == "":
		m.form.fail(app.MsgKeyFileMissing)
		return nil
	case password == "":
		m.form.fail(app.MsgKeyFilePassword)
		return nil
	}

	content, err := readKeyFile(path)
	if err != nil {
		m.form.fail(fmt.Sprintf("Cannot read key file: %v", err))
		return nil
	}

	return tea.Batch(m.form.start(), m.cmdAdminLogin(string(content), password))
}

func (m *AdminLoginModel) View() string {
	var b strings.Builder
	b.WriteString(renderFields([]string{"Key file", "Password"}, m.inputs))

	if m.form.busy() {
		b.WriteString("\n[Unlock...]\n")
	} else {
		b.WriteString("\n[Unlock]\n")
	}
	if v := m.form.View(); v != "" {
		b.WriteString("\n")
		b.WriteString(v)
		b.WriteString("\n")
	}

	return renderPage("GOVERNMENT ADMIN", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: unlock")
}

func (m *AdminLoginModel) cmdAdminLogin(content, password string) tea.Cmd {
	ctx, auth := m.ctx, m.auth
	return func() tea.Msg {
		identity, err := auth.AdminLogin(ctx, content, password)
		return LoginResult{Identity: identity, Err: err}
	}
}
