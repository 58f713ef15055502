package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/MKhiriev/go-cred-keeper/internal/service"
)

// UI is the interactive front end the App drives.
type UI interface {
	Run(ctx context.Context) error
}

type App struct {
	services *service.ClientServices
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app: services and ui are required")
	}
	return &App{services: services, ui: ui, logger: logger}, nil
}

// Run clears a session left over by an earlier run, then hands the
// terminal to the UI. The session is cleared again on exit, so a bearer
// token never outlives the process.
func (a *App) Run(ctx context.Context) error {
	if token, err := a.services.Session.Token(ctx); err == nil && token != "" {
		a.logger.Info().Msg("dropping session of a previous run")
	}
	if err := a.services.AuthService.Logout(ctx); err != nil {
		return fmt.Errorf("clear stale session: %w", err)
	}

	defer func() {
		if err := a.services.AuthService.Logout(context.WithoutCancel(ctx)); err != nil {
			a.logger.Err(err).Msg("clear session on exit")
		}
	}()

	return a.ui.Run(ctx)
}
