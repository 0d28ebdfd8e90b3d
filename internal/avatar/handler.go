package avatar

import (
	"context"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/ferdiebergado/accountkit/internal/config"
	"github.com/ferdiebergado/accountkit/internal/pkg/message"
	"github.com/ferdiebergado/accountkit/internal/pkg/web"
	"github.com/ferdiebergado/accountkit/internal/user"
)

const formFieldAvatar = "avatar"

var errInvalidFilename = errors.New("invalid avatar filename")

type AvatarService interface {
	UpdateAvatar(ctx context.Context, userID, originalName string, src io.Reader) (string, error)
}

type Handler struct {
	svc AvatarService
	cfg *config.Avatar
}

func NewHandler(svc AvatarService, cfg *config.Avatar) *Handler {
	return &Handler{svc: svc, cfg: cfg}
}

type UpdateAvatarResponse struct {
	AvatarURL string `json:"avatar_url"`
}

// UpdateAvatar accepts a multipart upload in the "avatar" field and replaces
// the authenticated user's avatar with its thumbnail.
func (h *Handler) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	userID, err := user.FromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.InvalidSession, nil)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadBytes)
	file, header, err := r.FormFile(formFieldAvatar)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			web.RespondRequestEntityTooLarge(w, err, message.InvalidInput, nil)
			return
		}
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}
	defer file.Close()

	avatarURL, err := h.svc.UpdateAvatar(r.Context(), userID, header.Filename, file)
	if err != nil {
		if errors.Is(err, ErrProcessingFailed) {
			web.RespondBadRequest(w, err, "Unsupported or corrupt image.", nil)
			return
		}
		web.RespondInternalServerError(w, err)
		return
	}

	data := &UpdateAvatarResponse{AvatarURL: avatarURL}
	web.OK(w, http.StatusCreated, nil, data)
}

// ServeAvatar serves a stored avatar file by name.
func (h *Handler) ServeAvatar(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("file")
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		web.RespondNotFound(w, errInvalidFilename, "Not found.", nil)
		return
	}

	http.ServeFile(w, r, filepath.Join(h.cfg.Dir, name))
}
