// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-cred-keeper/internal/config"
	"github.com/MKhiriev/go-cred-keeper/internal/events"
	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/MKhiriev/go-cred-keeper/internal/store"
	"github.com/MKhiriev/go-cred-keeper/internal/utils"
	"github.com/MKhiriev/go-cred-keeper/models"
)

// authService registers accounts, resolves the role of a wallet at login
// and issues the access tokens the API is guarded with.
type authService struct {
	tx       store.Transactor
	accounts store.AccountRepository
	requests store.IssuerRequestRepository
	wallets  WalletService
	events   events.Publisher

	// govAddress is the administrator wallet. It has no account row.
	govAddress string

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService from the storages and the
// security parameters of cfg.
func NewAuthService(storages *store.Storages, wallets WalletService, publisher events.Publisher, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		tx:            storages.Transactor,
		accounts:      storages.Accounts,
		requests:      storages.Requests,
		wallets:       wallets,
		events:        publisher,
		govAddress:    cfg.GovAddress,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// Register creates a wallet and an account for role. Only University and
// Student may register. A university needs a name and starts with a pending
// issuer request; both rows are written in one transaction.
//
// Returns the new wallet including its private key and mnemonic, or:
//   - ErrInvalidRole for Gov or unknown roles.
//   - ErrInvalidDataProvided for a university without a name.
//   - ErrUniversityExists if the name is taken.
func (a *authService) Register(ctx context.Context, role models.Role, name string) (models.Wallet, error) {
	log := logger.FromContext(ctx)

	if !role.CanRegister() {
		log.Error().Str("role", role.String()).Msg("registration with invalid role")
		return models.Wallet{}, ErrInvalidRole
	}

	name = strings.TrimSpace(name)
	if role == models.RoleUniversity && name == "" {
		return models.Wallet{}, fmt.Errorf("%w: universityName is required", ErrInvalidDataProvided)
	}

	wallet, err := a.wallets.NewWallet()
	if err != nil {
		log.Err(err).Msg("error creating wallet")
		return models.Wallet{}, fmt.Errorf("error creating wallet: %w", err)
	}

	err = a.tx.InTx(ctx, func(ctx context.Context) error {
		if _, err := a.accounts.CreateAccount(ctx, models.Account{Address: wallet.Address, Role: role, Name: name}); err != nil {
			return err
		}
		if role != models.RoleUniversity {
			return nil
		}
		_, err := a.requests.CreateRequest(ctx, models.IssuerRequest{
			UniversityName: name,
			Address:        wallet.Address,
			Status:         models.RequestPending,
		})
		return err
	})
	switch {
	case errors.Is(err, store.ErrRequestExists):
		return models.Wallet{}, ErrUniversityExists
	case errors.Is(err, store.ErrAccountExists):
		return models.Wallet{}, ErrAccountExists
	case err != nil:
		log.Err(err).Str("role", role.String()).Msg("account creation ended with error")
		return models.Wallet{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	log.Info().Str("address", wallet.Address).Str("role", role.String()).Msg("account registered")
	publish(ctx, a.events, events.AccountRegistered, wallet.Address, wallet.Address)

	return wallet, nil
}

// Login resolves the account of address. The configured administrator
// address logs in as Gov without an account row.
func (a *authService) Login(ctx context.Context, address string) (models.Account, error) {
	address = strings.TrimSpace(address)
	if !common.IsHexAddress(address) {
		return models.Account{}, fmt.Errorf("%w: malformed wallet address", ErrInvalidDataProvided)
	}

	if a.govAddress != "" && strings.EqualFold(address, a.govAddress) {
		return models.Account{Address: common.HexToAddress(a.govAddress).Hex(), Role: models.RoleGov}, nil
	}

	account, err := a.accounts.FindAccount(ctx, address)
	if errors.Is(err, store.ErrAccountNotFound) {
		return models.Account{}, ErrAccountNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("address", address).Msg("error finding account")
		return models.Account{}, fmt.Errorf("error finding account: %w", err)
	}

	return account, nil
}

// Recover rebuilds the wallet of a mnemonic.
func (a *authService) Recover(ctx context.Context, mnemonic string) (models.Wallet, error) {
	wallet, err := a.wallets.RecoverWallet(mnemonic)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("wallet recovery failed")
		return models.Wallet{}, err
	}
	return wallet, nil
}

// CreateToken issues an access token whose subject is the account address
// and whose role claim is the account role.
func (a *authService) CreateToken(ctx context.Context, account models.Account) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, account.Address, account.Role, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("address", account.Address).Msg("error generating token")
		return models.Token{}, fmt.Errorf("error generating token: %w", err)
	}
	return token, nil
}

// ParseToken validates tokenString. Expired tokens yield ErrTokenIsExpired,
// every other failure ErrInvalidToken.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return models.Token{}, ErrTokenIsExpired
	}
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return token, nil
}
