package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ferdiebergado/accountkit/internal/pkg/message"
	"github.com/ferdiebergado/accountkit/internal/pkg/web"
	"github.com/ferdiebergado/accountkit/internal/user"
)

const maskChar = "*"

var errMissingToken = errors.New("missing verification token")

type AuthService interface {
	RegisterUser(ctx context.Context, params RegisterUserParams) (user.User, error)
	LoginUser(ctx context.Context, params LoginUserParams) (token string, err error)
	LogoutUser(ctx context.Context, userID string) error
	VerifyEmail(ctx context.Context, token string) error
	ResendVerification(ctx context.Context, email string) error
}

type Handler struct {
	svc AuthService
}

func NewHandler(svc AuthService) *Handler {
	return &Handler{svc: svc}
}

type RegisterUserRequest struct {
	Email    string `json:"email,omitempty" validate:"required,email"`
	Password string `json:"password,omitempty" validate:"required,min=6"`
}

func (r *RegisterUserRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", maskChar),
		slog.String("password", maskChar),
	)
}

type RegisterUserResponse struct {
	Email        string            `json:"email"`
	Subscription user.Subscription `json:"subscription"`
	AvatarURL    string            `json:"avatar_url"`
}

func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[RegisterUserRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	params := RegisterUserParams(req)
	newUser, err := h.svc.RegisterUser(r.Context(), params)
	if err != nil {
		if errors.Is(err, ErrUserExists) {
			web.RespondConflict(w, err, MsgUserExists, nil)
			return
		}

		web.RespondInternalServerError(w, err)
		return
	}

	msg := MsgRegisterSuccess
	data := &RegisterUserResponse{
		Email:        newUser.Email,
		Subscription: newUser.Subscription,
		AvatarURL:    newUser.AvatarURL,
	}
	web.OK(w, http.StatusCreated, &msg, data)
}

type LoginUserRequest struct {
	Email    string `json:"email,omitempty" validate:"required,email"`
	Password string `json:"password,omitempty" validate:"required,min=6"`
}

func (r *LoginUserRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", maskChar),
		slog.String("password", maskChar),
	)
}

type LoginUserResponse struct {
	Token string `json:"token"`
}

func (h *Handler) LoginUser(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[LoginUserRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	params := LoginUserParams(req)
	token, err := h.svc.LoginUser(r.Context(), params)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			web.RespondUnauthorized(w, err, message.InvalidCredentials, nil)
			return
		}

		web.RespondInternalServerError(w, err)
		return
	}

	data := &LoginUserResponse{Token: token}
	web.OK(w, http.StatusOK, nil, data)
}

func (h *Handler) LogoutUser(w http.ResponseWriter, r *http.Request) {
	userID, err := user.FromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.InvalidSession, nil)
		return
	}

	if err := h.svc.LogoutUser(r.Context(), userID); err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	web.RespondNoContent(w)
}

func (h *Handler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")
	if token == "" {
		web.RespondBadRequest(w, errMissingToken, message.InvalidInput, nil)
		return
	}

	if err := h.svc.VerifyEmail(r.Context(), token); err != nil {
		if errors.Is(err, ErrTokenNotFound) {
			web.RespondNotFound(w, err, MsgUserNotFound, nil)
			return
		}
		web.RespondInternalServerError(w, err)
		return
	}

	msg := MsgVerifySuccess
	web.OK[struct{}](w, http.StatusOK, &msg, nil)
}

type ResendVerificationRequest struct {
	Email string `json:"email,omitempty" validate:"required,email"`
}

func (r *ResendVerificationRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", maskChar),
	)
}

func (h *Handler) ResendVerification(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[ResendVerificationRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	if err := h.svc.ResendVerification(r.Context(), req.Email); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			web.RespondNotFound(w, err, MsgUserNotFound, nil)
			return
		}
		if errors.Is(err, ErrAlreadyVerified) {
			web.RespondBadRequest(w, err, MsgAlreadyVerified, nil)
			return
		}
		web.RespondInternalServerError(w, err)
		return
	}

	msg := MsgReVerifySuccess
	web.OK[struct{}](w, http.StatusOK, &msg, nil)
}
