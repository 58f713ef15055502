// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-cred-keeper/internal/app"
	"github.com/MKhiriev/go-cred-keeper/internal/service"
	"github.com/MKhiriev/go-cred-keeper/models"
)

// HolderModel is the student dashboard: the credentials issued to the
// logged-in wallet, with their gateway links and a local download.
type HolderModel struct {
	ctx         context.Context
	credentials service.ClientCredentialService

	identity    models.Identity
	items       []models.Credential
	idx         int
	downloadDir string

	form   formState
	notice notice
}

func NewHolderModel(ctx context.Context, credentials service.ClientCredentialService, downloadDir string) *HolderModel {
	return &HolderModel{
		ctx:         ctx,
		credentials: credentials,
		downloadDir: downloadDir,
		form:        newFormState(),
	}
}

func (m *HolderModel) Init() tea.Cmd {
	return nil
}

func (m *HolderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd, ok := m.notice.update(msg); ok {
		return m, cmd
	}

	switch msg := msg.(type) {
	case sessionStarted:
		m.identity = msg.identity
		m.items, m.idx = nil, 0
		m.notice = notice{}
		return m, m.load()
	case credentialsLoadedMsg:
		m.form.finish(msg.err, "", app.MsgListFailed)
		if msg.err == nil {
			m.items = msg.items
			m.idx = moveCursor(m.idx, 0, len(m.items))
		}
		return m, nil
	case actionDoneMsg:
		m.form.finish(msg.err, msg.message, app.MsgFileNotAvailable)
		return m, nil
	case tea.KeyMsg:
		if m.form.busy() {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.logout):
			return m, func() tea.Msg { return logoutRequested{} }
		case key.Matches(msg, keys.up):
			m.idx = moveCursor(m.idx, -1, len(m.items))
		case key.Matches(msg, keys.down):
			m.idx = moveCursor(m.idx, 1, len(m.items))
		case key.Matches(msg, keys.refresh):
			return m, m.load()
		case key.Matches(msg, keys.copy):
			if c, ok := m.selected(); ok {
				return m, cmdCopy("Document link", m.credentials.Link(c.CID))
			}
		case key.Matches(msg, keys.copyHash):
			if c, ok := m.selected(); ok {
				return m, cmdCopy("Credential ID", c.Hash)
			}
		case key.Matches(msg, keys.download):
			if c, ok := m.selected(); ok {
				return m, tea.Batch(m.form.start(), m.cmdDownload(c.CID))
			}
		}
		return m, nil
	}

	return m, m.form.update(msg)
}

func (m *HolderModel) selected() (models.Credential, bool) {
	if len(m.items) == 0 {
		return models.Credential{}, false
	}
	return m.items[m.idx], true
}

func (m *HolderModel) load() tea.Cmd {
	return tea.Batch(m.form.start(), cmdLoadCredentials(m.ctx, m.credentials))
}

func (m *HolderModel) View() string {
	var b strings.Builder
	b.WriteString("Wallet: ")
	b.WriteString(m.identity.Wallet)
	b.WriteString("\n\n")
	b.WriteString(renderCredentials(m.items, m.idx, "Issuer", func(c models.Credential) string { return c.Issuer }))

	if c, ok := m.selected(); ok {
		b.WriteString("\n\nLink: ")
		b.WriteString(m.credentials.Link(c.CID))
	}
	if v := m.form.View(); v != "" {
		b.WriteString("\n\n")
		b.WriteString(v)
	}
	if v := m.notice.View(); v != "" {
		b.WriteString("\n\n")
		b.WriteString(v)
	}

	title := "STUDENT PORTAL"
	if m.identity.Name != "" {
		title += " · " + m.identity.Name
	}
	return renderPage(title, b.String(), "↑/↓: move │ c: copy link │ h: copy ID │ d: download │ r: refresh │ ctrl+l: logout")
}

func (m *HolderModel) cmdDownload(cid string) tea.Cmd {
	ctx, credentials, dir := m.ctx, m.credentials, m.downloadDir
	return func() tea.Msg {
		path, err := credentials.Download(ctx, cid, dir)
		return actionDoneMsg{message: "Saved to " + path, err: err}
	}
}

func cmdLoadCredentials(ctx context.Context, credentials service.ClientCredentialService) tea.Cmd {
	return func() tea.Msg {
		items, err := credentials.List(ctx)
		return credentialsLoadedMsg{items: items, err: err}
	}
}
