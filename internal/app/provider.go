package app

import (
	"database/sql"
	"fmt"

	"github.com/ferdiebergado/accountkit/internal/config"
	"github.com/ferdiebergado/accountkit/internal/platform/db"
	"github.com/ferdiebergado/accountkit/internal/platform/email"
	"github.com/ferdiebergado/accountkit/internal/platform/hash"
	"github.com/ferdiebergado/accountkit/internal/platform/jwt"
	"github.com/ferdiebergado/accountkit/internal/platform/router"
	"github.com/ferdiebergado/accountkit/internal/platform/validation"
)

type Provider struct {
	DB        *sql.DB
	Signer    jwt.Signer
	Mailer    email.Mailer
	Validator validation.Validator
	Hasher    hash.Hasher
	Router    router.Router
	TxMgr     db.TxManager
}

func newProvider(cfg *config.Config, securityKey string, dbConn *sql.DB) (*Provider, error) {
	signer := jwt.NewGolangJWTSigner(cfg.JWT, securityKey)

	smtpCfg, err := email.NewSMTPConfig()
	if err != nil {
		return nil, fmt.Errorf("new smtp config: %w", err)
	}

	mailer, err := email.NewSMTPMailer(smtpCfg, cfg.Email)
	if err != nil {
		return nil, fmt.Errorf("new smtp mailer: %w", err)
	}

	hasher := hash.NewArgon2Hasher(cfg.Argon2, securityKey)
	appRouter := router.NewGoexpressRouter()
	validator := validation.NewGoPlaygroundValidator()
	txMgr := db.NewSQLTxManager(dbConn)

	return &Provider{
		DB:        dbConn,
		Signer:    signer,
		Hasher:    hasher,
		Mailer:    mailer,
		Router:    appRouter,
		Validator: validator,
		TxMgr:     txMgr,
	}, nil
}
