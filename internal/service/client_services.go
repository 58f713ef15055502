package service

import (
	"github.com/MKhiriev/go-cred-keeper/internal/adapter"
	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/MKhiriev/go-cred-keeper/internal/vault"
)

// ClientServices bundles what the terminal views call.
type ClientServices struct {
	AuthService       ClientAuthService
	CredentialService ClientCredentialService
	IssuerService     ClientIssuerService
	Chat              adapter.ChatClient
	Session           *vault.Session
}

func NewClientServices(v *vault.Vault, session *vault.Session, serverAdapter adapter.ServerAdapter, chat adapter.ChatClient, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:       NewClientAuthService(v, session, serverAdapter, logger),
		CredentialService: NewClientCredentialService(serverAdapter, logger),
		IssuerService:     NewClientIssuerService(serverAdapter, logger),
		Chat:              chat,
		Session:           session,
	}
}
