// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

// LoginModel is the login screen of the student and university portals. It
// renders two text inputs (username and password) and dispatches an async
// login command on submission. On success a [LoginResult] is produced and
// handled by [RootModel], which opens the dashboard of the role.
type LoginModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	role   models.Role
	inputs []textinput.Model
	focus  int
	form   formState
}

// NewLoginModel creates a [LoginModel]. The role is set by the
// [roleSelected] message that opens the page.
func NewLoginModel(ctx context.Context, auth service.ClientAuthService) *LoginModel {
	username := newInput("username", 64)
	username.Focus()

	return &LoginModel{
		ctx:    ctx,
		auth:   auth,
		role:   models.RoleStudent,
		inputs: []textinput.Model{username, newPasswordInput("password")},
		form:   newFormState(),
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the
// active input.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [roleSelected] resets the form for the chosen portal.
//   - [LoginResult] finishes submission; errors are shown in the form.
//   - esc goes back to the menu, ctrl+n opens registration.
//   - tab and shift+tab move focus, enter submits.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case roleSelected:
		m.role = msg.role
		resetInputs(m.inputs)
		m.focus = focusInput(m.inputs, m.focus, 0)
		m.form.reset()
		return m, textinput.Blink
	case LoginResult:
		m.form.finish(msg.Err, "", app.MsgLoginFailed)
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
		case key.Matches(msg, keys.register):
			role := m.role
			m.form.reset()
			return m, func() tea.Msg { return NavigateTo{Page: pageRegister, Payload: roleSelected{role: role}} }
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
			username := strings.TrimSpace(m.inputs[0].Value())
			password := m.inputs[1].Value()
			if username == "" || password == "" {
				m.form.fail(app.MsgMissingCredentials)
				return m, nil
			}
			return m, tea.Batch(m.form.start(), m.cmdLogin(username, password))
		}
	}

	if cmd := m.form.update(msg); cmd != nil {
		return m, cmd
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString(renderFields([]string{"Username", "Password"}, m.inputs))

	if m.form.busy() {
		b.WriteString("\n[Login...]\n")
	} else {
		b.WriteString("\n[Login]\n")
	}
	if v := m.form.View(); v != "" {
		b.WriteString("\n")
		b.WriteString(v)
		b.WriteString("\n")
	}

	title := strings.ToUpper(portalName(m.role)) + " LOGIN"
	return renderPage(title, strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: login │ ctrl+n: create account")
}

func (m *LoginModel) cmdLogin(username, password string) tea.Cmd {
	ctx, auth, role := m.ctx, m.auth, m.role
	return func() tea.Msg {
		identity, err := auth.Login(ctx, role, username, password)
		return LoginResult{Identity: identity, Err: err}
	}
}

func portalName(role models.Role) string {
	switch role {
	case models.RoleUniversity:
		return "University"
	case models.RoleGov:
		return "Government"
	default:
		return "Student"
	}
}
