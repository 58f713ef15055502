// Package tui is the terminal client: a bubbletea program with one page per
// portal screen, routed by [RootModel].
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/MKhiriev/go-cred-keeper/internal/service"
	"github.com/MKhiriev/go-cred-keeper/models"
)

// TUI owns the client services the pages call.
type TUI struct {
	services    *service.ClientServices
	buildInfo   models.AppBuildInfo
	downloadDir string
	logger      *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, downloadDir string, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, fmt.Errorf("tui: client services are required")
	}
	if downloadDir == "" {
		downloadDir = "."
	}
	return &TUI{services: services, buildInfo: buildInfo, downloadDir: downloadDir, logger: logger}, nil
}

// Pages builds every page of the client keyed by its name.
func (t *TUI) Pages(ctx context.Context) map[string]tea.Model {
	s := t.services
	return map[string]tea.Model{
		pageMenu:       NewMenuModel(),
		pageLogin:      NewLoginModel(ctx, s.AuthService),
		pageRegister:   NewRegisterModel(ctx, s.AuthService),
		pageAdminLogin: NewAdminLoginModel(ctx, s.AuthService),
		pageMnemonic:   NewMnemonicModel(),
		pageRecover:    NewRecoverModel(ctx, s.AuthService),
		pageHolder:     NewHolderModel(ctx, s.CredentialService, t.downloadDir),
		pageIssuer:     NewIssuerModel(ctx, s.CredentialService),
		pageGov:        NewGovModel(ctx, s.IssuerService),
		pageVerifier:   NewVerifierModel(ctx, s.CredentialService),
		pageChat:       NewChatModel(ctx, s.Chat),
	}
}

// Run blocks until the user quits. Returns [ErrUserQuit] on ctrl+c.
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(ctx, t.services.AuthService, t.Pages(ctx), pageMenu, t.buildInfo)

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		t.logger.Info().Msg("user quit")
		return ErrUserQuit
	}
	return nil
}
