package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-cred-keeper/internal/service"
	"github.com/MKhiriev/go-cred-keeper/models"
)

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global ctrl+c quit
// 3) handles NavigateTo messages
// 4) turns login and logout results into page changes
// 5) delegates all other messages to the active page
type RootModel struct {
	ctx   context.Context
	auth  service.ClientAuthService
	pages map[string]tea.Model

	current     tea.Model
	currentName string

	identity   models.Identity
	quitByUser bool
	buildInfo  models.AppBuildInfo

	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(ctx context.Context, auth service.ClientAuthService, pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		ctx:         ctx,
		auth:        auth,
		pages:       pages,
		current:     pages[startPage],
		currentName: startPage,
		buildInfo:   buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case key.Matches(keyMsg, keys.version) && r.currentName == pageMenu:
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case key.Matches(keyMsg, keys.esc) && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		return r.navigate(msg)
	case LoginResult:
		if msg.Err == nil {
			if r.current != nil {
				r.current, _ = r.current.Update(msg)
			}
			r.identity = msg.Identity
			return r.navigate(NavigateTo{Page: dashboardFor(msg.Identity.Role), Payload: sessionStarted{identity: msg.Identity}})
		}
	case logoutRequested:
		return r, r.cmdLogout()
	case LogoutResult:
		r.identity = models.Identity{}
		return r.navigate(NavigateTo{Page: pageMenu, Payload: loggedOut{err: msg.Err}})
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.current == nil {
		return renderPage("CREDKEEPER", "", "")
	}
	return r.current.View()
}

func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, exists := r.pages[nav.Page]
	if !exists {
		return r, nil
	}

	r.showBuildInfo = false
	r.current = next
	r.currentName = nav.Page

	if nav.Payload != nil {
		payload := nav.Payload
		return r, func() tea.Msg { return payload }
	}
	return r, r.current.Init()
}

func (r RootModel) cmdLogout() tea.Cmd {
	ctx, auth := r.ctx, r.auth
	return func() tea.Msg {
		return LogoutResult{Err: auth.Logout(ctx)}
	}
}

func dashboardFor(role models.Role) string {
	switch role {
	case models.RoleGov:
		return pageGov
	case models.RoleUniversity:
		return pageIssuer
	default:
		return pageHolder
	}
}
