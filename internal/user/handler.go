package user

import (
	"context"
	"net/http"

	"github.com/ferdiebergado/accountkit/internal/pkg/message"
	"github.com/ferdiebergado/accountkit/internal/pkg/web"
)

// UserService is the behavior the handler (and sibling modules) depend on.
type UserService interface {
	CreateUser(ctx context.Context, params CreateUserParams) (User, error)
	FindUser(ctx context.Context, userID string) (User, error)
	FindUserByEmail(ctx context.Context, email string) (*User, error)
	UpdateUserAvatar(ctx context.Context, userID, avatarURL string) error
}

type Handler struct {
	svc UserService
}

func NewHandler(svc UserService) *Handler {
	return &Handler{svc: svc}
}

type CurrentUserResponse struct {
	Email        string       `json:"email"`
	Subscription Subscription `json:"subscription"`
}

// CurrentUser returns the profile of the authenticated user.
func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, err := FromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.InvalidSession, nil)
		return
	}

	u, err := h.svc.FindUser(r.Context(), userID)
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	data := &CurrentUserResponse{
		Email:        u.Email,
		Subscription: u.Subscription,
	}
	web.OK(w, http.StatusOK, nil, data)
}
