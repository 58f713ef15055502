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
	tabIssue = iota
	tabRevoke
	tabIssued
)

var issuerTabs = []string{"Issue", "Revoke", "Issued"}

const (
	issueHolder = iota
	issuePath
)

type issuedMsg struct {
	issued models.IssuedCredential
	err    error
}

type revokedMsg struct {
	err error
}

// IssuerModel is the university dashboard. Each tab has its own form so a
// running issuance does not block revocation.
type IssuerModel struct {
	ctx         context.Context
	credentials service.ClientCredentialService

	identity models.Identity
	tab      int

	issueInputs []textinput.Model
	issueFocus  int
	issueForm   formState

	revokeInput textinput.Model
	revokeForm  formState

	items    []models.Credential
	idx      int
	listForm formState

	notice notice
}

func NewIssuerModel(ctx context.Context, credentials service.ClientCredentialService) *IssuerModel {
	holder := newInput("0x... student wallet", 42)
	holder.Focus()
	hash := newInput("64 character credential ID", 64)
	hash.Width = 66

	return &IssuerModel{
		ctx:         ctx,
		credentials: credentials,
		issueInputs: []textinput.Model{holder, newInput("path/to/document.pdf", 1024)},
		issueForm:   newFormState(),
		revokeInput: hash,
		revokeForm:  newFormState(),
		listForm:    newFormState(),
	}
}

func (m *IssuerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *IssuerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd, ok := m.notice.update(msg); ok {
		return m, cmd
	}

	switch msg := msg.(type) {
	case sessionStarted:
		m.identity = msg.identity
		m.items, m.idx = nil, 0
		resetInputs(m.issueInputs)
		m.revokeInput.Reset()
		m.issueForm.reset()
		m.revokeForm.reset()
		m.notice = notice{}
		return m, tea.Batch(m.switchTab(tabIssue), m.load())
	case issuedMsg:
		if msg.err == nil {
			m.issueForm.succeed(app.MsgIssueSuccess + ". Credential ID: " + msg.issued.Hash)
			resetInputs(m.issueInputs)
			return m, m.load()
		}
		m.issueForm.finish(msg.err, "", app.MsgIssueFailed)
		return m, nil
	case revokedMsg:
		m.revokeForm.finish(msg.err, app.MsgRevokeSuccess, app.MsgRevokeFailed)
		if msg.err == nil {
			m.revokeInput.Reset()
			return m, m.load()
		}
		return m, nil
	case credentialsLoadedMsg:
		m.listForm.finish(msg.err, "", app.MsgListFailed)
		if msg.err == nil {
			m.items = msg.items
			m.idx = moveCursor(m.idx, 0, len(m.items))
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.logout):
			return m, func() tea.Msg { return logoutRequested{} }
		case key.Matches(msg, keys.nextTab):
			return m, m.switchTab(m.tab + 1)
		}
		switch m.tab {
		case tabIssue:
			return m, m.updateIssue(msg)
		case tabRevoke:
			return m, m.updateRevoke(msg)
		default:
			return m, m.updateIssued(msg)
		}
	}

	return m, tea.Batch(m.issueForm.update(msg), m.revokeForm.update(msg), m.listForm.update(msg), m.updateInput(msg))
}

func (m *IssuerModel) updateIssue(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.tab):
		m.issueFocus = focusInput(m.issueInputs, m.issueFocus, m.issueFocus+1)
		return nil
	case key.Matches(msg, keys.backtab):
		m.issueFocus = focusInput(m.issueInputs, m.issueFocus, m.issueFocus-1)
		return nil
	case key.Matches(msg, keys.enter):
		if m.issueForm.busy() {
			return nil
		}
		if m.issueFocus == issueHolder {
			m.issueFocus = focusInput(m.issueInputs, m.issueFocus, issuePath)
			return nil
		}
		holder := strings.TrimSpace(m.issueInputs[issueHolder].Value())
		path := strings.TrimSpace(m.issueInputs[issuePath].Value())
		if holder == "" || path == "" {
			m.issueForm.fail(app.MsgMissingHolderOrFile)
			return nil
		}
		return tea.Batch(m.issueForm.start(), m.cmdIssue(holder, path))
	}
	return m.updateInput(msg)
}

func (m *IssuerModel) updateRevoke(msg tea.KeyMsg) tea.Cmd {
	if !key.Matches(msg, keys.enter) {
		return m.updateInput(msg)
	}
	if m.revokeForm.busy() {
		return nil
	}
	hash := strings.TrimSpace(m.revokeInput.Value())
	if hash == "" {
		m.revokeForm.fail(app.MsgMissingCredentialID)
		return nil
	}
	return tea.Batch(m.revokeForm.start(), m.cmdRevoke(hash))
}

func (m *IssuerModel) updateIssued(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.up):
		m.idx = moveCursor(m.idx, -1, len(m.items))
	case key.Matches(msg, keys.down):
		m.idx = moveCursor(m.idx, 1, len(m.items))
	case key.Matches(msg, keys.refresh):
		if !m.listForm.busy() {
			return m.load()
		}
	case key.Matches(msg, keys.copyHash):
		if c, ok := m.selected(); ok {
			return cmdCopy("Credential ID", c.Hash)
		}
	case key.Matches(msg, keys.copy):
		if c, ok := m.selected(); ok {
			return cmdCopy("Document link", m.credentials.Link(c.CID))
		}
	case key.Matches(msg, keys.enter):
		if c, ok := m.selected(); ok && !c.Revoked {
			m.revokeInput.SetValue(c.Hash)
			m.revokeForm.reset()
			return m.switchTab(tabRevoke)
		}
	}
	return nil
}

// updateInput forwards msg to the focused input of the active tab.
func (m *IssuerModel) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.tab {
	case tabIssue:
		m.issueInputs[m.issueFocus], cmd = m.issueInputs[m.issueFocus].Update(msg)
	case tabRevoke:
		m.revokeInput, cmd = m.revokeInput.Update(msg)
	}
	return cmd
}

func (m *IssuerModel) switchTab(tab int) tea.Cmd {
	m.tab = tab % len(issuerTabs)
	m.issueInputs[m.issueFocus].Blur()
	m.revokeInput.Blur()

	switch m.tab {
	case tabIssue:
		m.issueInputs[m.issueFocus].Focus()
		return textinput.Blink
	case tabRevoke:
		m.revokeInput.Focus()
		return textinput.Blink
	}
	return nil
}

func (m *IssuerModel) selected() (models.Credential, bool) {
	if len(m.items) == 0 {
		return models.Credential{}, false
	}
	return m.items[m.idx], true
}

func (m *IssuerModel) load() tea.Cmd {
	return tea.Batch(m.listForm.start(), cmdLoadCredentials(m.ctx, m.credentials))
}

func (m *IssuerModel) View() string {
	var b strings.Builder
	b.WriteString(renderTabs(issuerTabs, m.tab))
	b.WriteString("\n\n")

	var form formState
	hotKeys := "ctrl+t: next tab │ ctrl+l: logout"
	switch m.tab {
	case tabIssue:
		b.WriteString(renderFields([]string{"Student wallet", "Document"}, m.issueInputs))
		form = m.issueForm
		hotKeys = "tab: next field │ enter: issue │ " + hotKeys
	case tabRevoke:
		b.WriteString(renderFields([]string{"Credential ID"}, []textinput.Model{m.revokeInput}))
		form = m.revokeForm
		hotKeys = "enter: revoke │ " + hotKeys
	default:
		b.WriteString(renderCredentials(m.items, m.idx, "Holder", func(c models.Credential) string { return c.Holder }))
		form = m.listForm
		hotKeys = "↑/↓: move │ enter: revoke │ h: copy ID │ c: copy link │ r: refresh │ " + hotKeys
	}

	if v := form.View(); v != "" {
		b.WriteString("\n\n")
		b.WriteString(v)
	}
	if v := m.notice.View(); v != "" {
		b.WriteString("\n\n")
		b.WriteString(v)
	}

	title := "UNIVERSITY PORTAL"
	if m.identity.Name != "" {
		title += " · " + m.identity.Name
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *IssuerModel) cmdIssue(holder, path string) tea.Cmd {
	ctx, credentials := m.ctx, m.credentials
	return func() tea.Msg {
		issued, err := credentials.Issue(ctx, holder, path)
		return issuedMsg{issued: issued, err: err}
	}
}

func (m *IssuerModel) cmdRevoke(hash string) tea.Cmd {
	ctx, credentials := m.ctx, m.credentials
	return func() tea.Msg {
		return revokedMsg{err: credentials.Revoke(ctx, hash)}
	}
}
