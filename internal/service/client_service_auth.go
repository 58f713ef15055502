package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-cred-keeper/internal/adapter"
	"github.com/MKhiriev/go-cred-keeper/internal/app"
	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/MKhiriev/go-cred-keeper/internal/vault"
	"github.com/MKhiriev/go-cred-keeper/models"
)

const govDisplayName = "Government"

type clientAuthService struct {
	vault   *vault.Vault
	session *vault.Session
	adapter adapter.ServerAdapter

	logger *logger.Logger
}

func NewClientAuthService(v *vault.Vault, session *vault.Session, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{vault: v, session: session, adapter: serverAdapter, logger: logger}
}

func (a *clientAuthService) Register(ctx context.Context, role models.Role, name, username, password string) (models.Registration, error) {
	if !role.CanRegister() {
		return models.Registration{}, ErrInvalidRole
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Registration{}, ErrMissingName
	}
	if strings.TrimSpace(username) == "" || password == "" {
		return models.Registration{}, ErrMissingCredentials
	}

	req := models.RegisterRequest{Role: role}
	if role == models.RoleUniversity {
		req.UniversityName = name
	} else {
		req.StudentName = name
	}

	resp, err := a.adapter.Register(ctx, req)
	if err != nil {
		return models.Registration{}, fmt.Errorf("register on server: %w", err)
	}
	if resp.Account == nil || resp.Account.Address == "" {
		return models.Registration{}, ErrRegisterOnServer
	}

	wallet := models.WalletData{
		Address:    resp.Account.Address,
		PrivateKey: resp.Account.PrivateKey,
		Role:       role,
	}
	if err = a.vault.Save(ctx, username, name, wallet, password); err != nil {
		return models.Registration{}, err
	}

	message := app.MsgRegistrationSuccess
	if role == models.RoleUniversity {
		message = app.MsgRegistrationPending
	}

	a.logger.Info().Str("role", role.String()).Str("wallet", wallet.Address).Msg("account registered")
	return models.Registration{Address: wallet.Address, Mnemonic: resp.Mnemonic, Message: message}, nil
}

func (a *clientAuthService) Login(ctx context.Context, role models.Role, username, password string) (models.Identity, error) {
	if !role.CanRegister() {
		return models.Identity{}, ErrInvalidRole
	}
	if strings.TrimSpace(username) == "" || password == "" {
		return models.Identity{}, ErrMissingCredentials
	}

	record, err := a.vault.Load(ctx, username, password)
	if err != nil {
		return models.Identity{}, err
	}
	if record.Wallet.Role != role {
		return models.Identity{}, &RoleMismatchError{Registered: record.Wallet.Role, Requested: role}
	}

	if err = a.startSession(ctx, record.Wallet.Address, role); err != nil {
		return models.Identity{}, err
	}

	return models.Identity{Wallet: record.Wallet.Address, Name: record.DisplayName, Role: role}, nil
}

func (a *clientAuthService) AdminLogin(ctx context.Context, keyFile, password string) (models.Identity, error) {
	if strings.TrimSpace(keyFile) == "" {
		return models.Identity{}, ErrMissingKeyFile
	}
	if password == "" {
		return models.Identity{}, ErrMissingKeyPassword
	}

	address, err := vault.OpenKeyFile(keyFile, password)
	if err != nil {
		return models.Identity{}, err
	}

	if err = a.startSession(ctx, address, models.RoleGov); err != nil {
		return models.Identity{}, err
	}

	return models.Identity{Wallet: address, Name: govDisplayName, Role: models.RoleGov}, nil
}

func (a *clientAuthService) Recover(ctx context.Context, mnemonic string) (models.NewAccount, error) {
	mnemonic = strings.Join(strings.Fields(mnemonic), " ")
	if mnemonic == "" {
		return models.NewAccount{}, ErrMissingMnemonic
	}

	resp, err := a.adapter.Recover(ctx, mnemonic)
	if err != nil {
		return models.NewAccount{}, fmt.Errorf("recover on server: %w", err)
	}
	if resp.Account == nil {
		return models.NewAccount{}, ErrInvalidMnemonic
	}
	return *resp.Account, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	return a.session.Clear(ctx)
}

// startSession logs address in and stores the session. The server's role
// must match the expected one.
func (a *clientAuthService) startSession(ctx context.Context, address string, role models.Role) error {
	resp, err := a.adapter.Login(ctx, address)
	if err != nil {
		if role == models.RoleGov {
			return fmt.Errorf("%w: %w", ErrAdminLogin, err)
		}
		return fmt.Errorf("login on server: %w", err)
	}

	if resp.Role != role {
		if role == models.RoleGov {
			return ErrAdminLogin
		}
		return &RoleMismatchError{Registered: resp.Role, Requested: role}
	}

	if err = a.session.Store(ctx, resp.Token, resp.Role, address); err != nil {
		return fmt.Errorf("store session: %w", err)
	}

	a.logger.Info().Str("role", role.String()).Str("wallet", address).Msg("logged in")
	return nil
}
