package avatar

import (
	"github.com/ferdiebergado/accountkit/internal/config"
	"github.com/ferdiebergado/accountkit/internal/user"
)

type Provider struct {
	Cfg     *config.Config
	UserSvc user.UserService
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
	processor := NewImagingProcessor()
	svc := NewService(provider.UserSvc, processor, provider.Cfg.Avatar)
	handler := NewHandler(svc, provider.Cfg.Avatar)
	return &Module{
		svc:     svc,
		handler: handler,
	}
}
