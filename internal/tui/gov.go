package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-cred-keeper/internal/app"
	"github.com/MKhiriev/go-cred-keeper/internal/service"
	"github.com/MKhiriev/go-cred-keeper/models"
)

const (
	tabPending = iota
	tabApproved
)

var govTabs = []string{"Pending", "Approved"}

// GovModel is the admin dashboard for university issuer requests.
type GovModel struct {
	ctx     context.Context
	issuers service.ClientIssuerService

	identity models.Identity
	tab      int
	pending  []models.IssuerRequest
	approved []models.IssuerRequest
	idx      int
	form     formState

	// decided is shown once the list reloaded after a decision.
	decided string
}

func NewGovModel(ctx context.Context, issuers service.ClientIssuerService) *GovModel {
	return &GovModel{ctx: ctx, issuers: issuers, form: newFormState()}
}

func (m *GovModel) Init() tea.Cmd {
	return nil
}

func (m *GovModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionStarted:
		m.identity = msg.identity
		m.tab, m.idx = tabPending, 0
		m.pending, m.approved = nil, nil
		return m, m.load()
	case requestsLoadedMsg:
		m.form.finish(msg.err, m.decided, app.MsgRequestsFailed)
		m.decided = ""
		if msg.err == nil {
			m.pending, m.approved = msg.pending, msg.approved
			m.idx = moveCursor(m.idx, 0, len(m.rows()))
		}
		return m, nil
	case actionDoneMsg:
		if msg.err != nil {
			m.form.finish(msg.err, "", app.MsgDecisionFailed)
			return m, nil
		}
		m.decided = msg.message
		return m, m.load()
	case tea.KeyMsg:
		if m.form.busy() {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.logout):
			return m, func() tea.Msg { return logoutRequested{} }
		case key.Matches(msg, keys.nextTab):
			m.tab = (m.tab + 1) % len(govTabs)
			m.idx = 0
		case key.Matches(msg, keys.up):
			m.idx = moveCursor(m.idx, -1, len(m.rows()))
		case key.Matches(msg, keys.down):
			m.idx = moveCursor(m.idx, 1, len(m.rows()))
		case key.Matches(msg, keys.refresh):
			return m, m.load()
		case key.Matches(msg, keys.approve):
			if r, ok := m.selectedPending(); ok {
				return m, tea.Batch(m.form.start(), m.cmdDecide(r.UniversityName, true))
			}
		case key.Matches(msg, keys.reject):
			if r, ok := m.selectedPending(); ok {
				return m, tea.Batch(m.form.start(), m.cmdDecide(r.UniversityName, false))
			}
		}
		return m, nil
	}

	return m, m.form.update(msg)
}

func (m *GovModel) rows() []models.IssuerRequest {
	if m.tab == tabApproved {
		return m.approved
	}
	return m.pending
}

func (m *GovModel) selectedPending() (models.IssuerRequest, bool) {
	if m.tab != tabPending || len(m.pending) == 0 {
		return models.IssuerRequest{}, false
	}
	return m.pending[m.idx], true
}

func (m *GovModel) load() tea.Cmd {
	ctx, issuers := m.ctx, m.issuers
	return tea.Batch(m.form.start(), func() tea.Msg {
		pending, err := issuers.Pending(ctx)
		if err != nil {
			return requestsLoadedMsg{err: err}
		}
		approved, err := issuers.Approved(ctx)
		return requestsLoadedMsg{pending: pending, approved: approved, err: err}
	})
}

func (m *GovModel) View() string {
	var b strings.Builder
	b.WriteString(renderTabs(govTabs, m.tab))
	b.WriteString("\n\n")
	b.WriteString(renderRequests(m.rows(), m.idx))

	if v := m.form.View(); v != "" {
		b.WriteString("\n\n")
		b.WriteString(v)
	}

	hotKeys := "↑/↓: move │ r: refresh │ ctrl+t: next tab │ ctrl+l: logout"
	if m.tab == tabPending {
		hotKeys = "a: approve │ x: reject │ " + hotKeys
	}
	return renderPage("GOVERNMENT ADMIN", b.String(), hotKeys)
}

func (m *GovModel) cmdDecide(name string, approve bool) tea.Cmd {
	ctx, issuers := m.ctx, m.issuers
	return func() tea.Msg {
		if approve {
			return actionDoneMsg{message: app.MsgApproveSuccess + ": " + name, err: issuers.Approve(ctx, name)}
		}
		return actionDoneMsg{message: app.MsgRejectSuccess + ": " + name, err: issuers.Reject(ctx, name)}
	}
}

func renderRequests(rows []models.IssuerRequest, idx int) string {
	if len(rows) == 0 {
		return "No requests."
	}

	nameWidth := len("University")
	for _, r := range rows {
		nameWidth = max(nameWidth, len([]rune(r.UniversityName)))
	}
	nameWidth = min(nameWidth, 32)
	idWidth := max(len("ID"), len(fmt.Sprintf("%d", len(rows)))) + 2

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-*s │ %-*s │ %-*s │ %s\n", idWidth, "ID", nameWidth, "University", partyColWidth, "Wallet", "Requested"))
	b.WriteString(strings.Repeat("─", idWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", nameWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", partyColWidth))
	b.WriteString("─┼───────────\n")

	for i, r := range rows {
		b.WriteString(padRight(fmt.Sprintf("%s %d", cursor(i == idx), i+1), idWidth))
		b.WriteString(" │ ")
		b.WriteString(padRight(fitText(r.UniversityName, nameWidth), nameWidth))
		b.WriteString(" │ ")
		b.WriteString(padRight(fitText(r.Address, partyColWidth), partyColWidth))
		b.WriteString(" │ ")
		if r.CreatedAt.IsZero() {
			b.WriteString("-")
		} else {
			b.WriteString(r.CreatedAt.Format(dateLayout))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
