package user

import "database/sql"

type Provider struct {
	DB *sql.DB
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
	svc := NewService(repo)
	handler := NewHandler(svc)
	return &Module{
		svc:     svc,
		handler: handler,
	}
}
