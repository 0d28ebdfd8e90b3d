package auth

import (
	"database/sql"

	"github.com/ferdiebergado/accountkit/internal/config"
	"github.com/ferdiebergado/accountkit/internal/platform/db"
	"github.com/ferdiebergado/accountkit/internal/platform/email"
	"github.com/ferdiebergado/accountkit/internal/platform/hash"
	"github.com/ferdiebergado/accountkit/internal/platform/jwt"
	"github.com/ferdiebergado/accountkit/internal/user"
)

type Provider struct {
	Cfg     *config.Config
	DB      *sql.DB
	Hasher  hash.Hasher
	Signer  jwt.Signer
	Mailer  email.Mailer
	UserSvc user.UserService
	TxMgr   db.TxManager
}

type Module struct {
	svc     *Service
	handler *Handler
}

func (m *Module) Handler() *Handler {
	return m.handler
}

func (m *Module) Service() *Service {
	return m.svc
}

func NewModule(provider *Provider) *Module {
	repo := NewRepository(provider.DB)
	providers := &Providers{
		Hasher: provider.Hasher,
		Signer: provider.Signer,
		Mailer: provider.Mailer,
	}
	svc := NewService(repo, provider.UserSvc, providers, provider.TxMgr, provider.Cfg)
	handler := NewHandler(svc)
	return &Module{
		svc:     svc,
		handler: handler,
	}
}
