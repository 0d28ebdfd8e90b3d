package app

import (
	"net/http"

	"github.com/ferdiebergado/accountkit/internal/auth"
	"github.com/ferdiebergado/accountkit/internal/avatar"
	"github.com/ferdiebergado/accountkit/internal/middleware"
	"github.com/ferdiebergado/accountkit/internal/pkg/web"
	"github.com/ferdiebergado/accountkit/internal/user"
)

func (a *App) setupRoutes() {
	userModule := user.NewModule(&user.Provider{DB: a.provider.DB})

	authModule := auth.NewModule(&auth.Provider{
		Cfg:     a.config,
		DB:      a.provider.DB,
		Hasher:  a.provider.Hasher,
		Signer:  a.provider.Signer,
		Mailer:  a.provider.Mailer,
		UserSvc: userModule.Service(),
		TxMgr:   a.provider.TxMgr,
	})

	avatarModule := avatar.NewModule(&avatar.Provider{
		Cfg:     a.config,
		UserSvc: userModule.Service(),
	})

	r := a.provider.Router
	maxBodySize := a.config.Server.MaxBodyBytes
	validator := a.provider.Validator
	requireSession := auth.RequireSession(a.provider.Signer, userModule.Service())

	authHandler := authModule.Handler()
	r.Post("/register", authHandler.RegisterUser,
		middleware.DecodePayload[auth.RegisterUserRequest](maxBodySize),
		middleware.ValidateInput[auth.RegisterUserRequest](validator))
	r.Post("/login", authHandler.LoginUser,
		middleware.DecodePayload[auth.LoginUserRequest](maxBodySize),
		middleware.ValidateInput[auth.LoginUserRequest](validator))
	r.Get("/logout", authHandler.LogoutUser, requireSession)
	r.Get("/verify/{token}", authHandler.VerifyEmail)
	r.Post("/verify", authHandler.ResendVerification,
		middleware.DecodePayload[auth.ResendVerificationRequest](maxBodySize),
		middleware.ValidateInput[auth.ResendVerificationRequest](validator))

	r.Get("/current", userModule.Handler().CurrentUser, requireSession)

	avatarHandler := avatarModule.Handler()
	r.Patch("/avatars", avatarHandler.UpdateAvatar, requireSession)
	r.Get("/avatars/{file}", avatarHandler.ServeAvatar)

	r.Get("/healthz", a.handleHealth)
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := a.provider.DB.PingContext(r.Context()); err != nil {
		web.RespondInternalServerError(w, err)
		return
	}
	web.OK[struct{}](w, http.StatusOK, nil, nil)
}
