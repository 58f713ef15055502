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

// VerifierModel checks a document against the ledger. No login needed.
type VerifierModel struct {
	ctx         context.Context
	credentials service.ClientCredentialService

	input  textinput.Model
	result *models.VerifyResult
	form   formState
	notice notice
}

func NewVerifierModel(ctx context.Context, credentials service.ClientCredentialService) *VerifierModel {
	in := newInput("path/to/document.pdf", 1024)
	in.Focus()
	return &VerifierModel{ctx: ctx, credentials: credentials, input: in, form: newFormState()}
}

func (m *VerifierModel) Init() tea.Cmd {
	m.result = nil
	m.form.reset()
	return textinput.Blink
}

func (m *VerifierModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd, ok := m.notice.update(msg); ok {
		return m, cmd
	}

	switch msg := msg.(type) {
	case verifiedMsg:
		m.form.finish(msg.err, "", app.MsgVerifyFailed)
		if msg.err == nil {
			result := msg.result
			m.result = &result
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.input.Reset()
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(msg, keys.enter):
			if m.form.busy() {
				return m, nil
			}
			path := strings.TrimSpace(m.input.Value())
			if path == "" {
				m.form.fail(app.MsgMissingFile)
				return m, nil
			}
			m.result = nil
			return m, tea.Batch(m.form.start(), m.cmdVerify(path))
		case key.Matches(msg, keys.copyID) && m.result != nil:
			return m, cmdCopy("Credential ID", m.result.Hash)
		}
	}

	if cmd := m.form.update(msg); cmd != nil {
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *VerifierModel) View() string {
	var b strings.Builder
	b.WriteString(renderFields([]string{"Document"}, []textinput.Model{m.input}))

	if v := m.form.View(); v != "" {
		b.WriteString("\n")
		b.WriteString(v)
		b.WriteString("\n")
	}
	if m.result != nil {
		b.WriteString("\n")
		b.WriteString(m.renderResult(*m.result))
	}
	if v := m.notice.View(); v != "" {
		b.WriteString("\n\n")
		b.WriteString(v)
	}

	hotKeys := "esc: back │ enter: verify"
	if m.result != nil {
		hotKeys += " │ ctrl+y: copy ID"
	}
	return renderPage("VERIFY A DOCUMENT", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *VerifierModel) renderResult(r models.VerifyResult) string {
	var b strings.Builder
	switch {
	case r.Valid:
		b.WriteString(successStyle.Render(app.MsgCredentialValid))
	case r.Revoked:
		b.WriteString(errorStyle.Render(app.MsgCredentialRevoked))
	default:
		b.WriteString(errorStyle.Render(app.MsgCredentialUnknown))
	}
	b.WriteString("\n\nCredential ID: ")
	b.WriteString(r.Hash)

	if c := r.Credential; c != nil {
		b.WriteString("\nIssuer:        ")
		b.WriteString(c.Issuer)
		b.WriteString("\nHolder:        ")
		b.WriteString(c.Holder)
		b.WriteString("\nIssued:        ")
		b.WriteString(issuedOn(*c))
		if c.CID != "" {
			b.WriteString("\nDocument:      ")
			b.WriteString(m.credentials.Link(c.CID))
		}
	}
	return b.String()
}

func (m *VerifierModel) cmdVerify(path string) tea.Cmd {
	ctx, credentials := m.ctx, m.credentials
	return func() tea.Msg {
		result, err := credentials.Verify(ctx, path)
		return verifiedMsg{result: result, err: err}
	}
}
