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

const (
	registerName = iota
	registerUsername
	registerPassword
	registerConfirm
)

// RegisterModel creates a student or university account. The wallet the
// server returns is saved in the local vault under the chosen username; the
// recovery phrase is shown once on the next page.
type RegisterModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	role   models.Role
	inputs []textinput.Model
	focus  int
	form   formState
}

func NewRegisterModel(ctx context.Context, auth service.ClientAuthService) *RegisterModel {
	name := newInput("name", 128)
	name.Focus()

	return &RegisterModel{
		ctx:  ctx,
		auth: auth,
		role: models.RoleStudent,
		inputs: []textinput.Model{
			name,
			newInput("username", 64),
			newPasswordInput("password"),
			newPasswordInput("repeat password"),
		},
		form: newFormState(),
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case roleSelected:
		m.role = msg.role
		resetInputs(m.inputs)
		m.focus = focusInput(m.inputs, m.focus, registerName)
		m.form.reset()
		return m, textinput.Blink
	case RegisterResult:
		if msg.Err != nil {
			m.form.finish(msg.Err, "", app.MsgRegistrationFailed)
			return m, nil
		}
		m.form.reset()
		resetInputs(m.inputs)
		shown := registrationShown{role: msg.Role, registration: msg.Registration}
		return m, func() tea.Msg { return NavigateTo{Page: pageMnemonic, Payload: shown} }
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			role := m.role
			m.form.reset()
			return m, func() tea.Msg { return NavigateTo{Page: pageLogin, Payload: roleSelected{role: role}} }
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
			if m.focus < registerConfirm {
				m.focus = focusInput(m.inputs, m.focus, m.focus+1)
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

func (m *RegisterModel) submit() tea.Cmd {
	name := strings.TrimSpace(m.inputs[registerName].Value())
	username := strings.TrimSpace(m.inputs[registerUsername].Value())
	password := m.inputs[registerPassword].Value()

	switch {
	case name == "":
		m.form.fail(app.MsgMissingName)
		return nil
	case username == "" || password == "":
		m.form.fail(app.MsgMissingCredentials)
		return nil
	case password != m.inputs[registerConfirm].Value():
		m.form.fail("Passwords do not match")
		return nil
	}

	return tea.Batch(m.form.start(), m.cmdRegister(name, username, password))
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	nameLabel := "Student name"
	if m.role == models.RoleUniversity {
		nameLabel = "University name"
	}
	b.WriteString(renderFields([]string{nameLabel, "Username", "Password", "Repeat"}, m.inputs))

	if m.form.busy() {
		b.WriteString("\n[Create account...]\n")
	} else {
		b.WriteString("\n[Create account]\n")
	}
	if v := m.form.View(); v != "" {
		b.WriteString("\n")
		b.WriteString(v)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("The wallet key is stored on this machine, encrypted with your password."))

	title := strings.ToUpper(portalName(m.role)) + " REGISTRATION"
	return renderPage(title, b.String(), "esc: back │ tab: next field │ enter: next / submit")
}

func (m *RegisterModel) cmdRegister(name, username, password string) tea.Cmd {
	ctx, auth, role := m.ctx, m.auth, m.role
	return func() tea.Msg {
		registration, err := auth.Register(ctx, role, name, username, password)
		return RegisterResult{Role: role, Registration: registration, Err: err}
	}
}
