package avatar

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ferdiebergado/accountkit/internal/config"
	"github.com/google/uuid"
)

// PublicPathPrefix is the URL prefix under which stored avatars are served.
const PublicPathPrefix = "/avatars/"

// UserProvider is the slice of the user service the avatar flow needs.
type UserProvider interface {
	UpdateUserAvatar(ctx context.Context, userID, avatarURL string) error
}

type Service struct {
	users     UserProvider
	processor Processor
	cfg       *config.Avatar
}

func NewService(users UserProvider, processor Processor, cfg *config.Avatar) *Service {
	return &Service{
		users:     users,
		processor: processor,
		cfg:       cfg,
	}
}

// UpdateAvatar stages the upload, resizes it to the configured thumbnail
// size, stores it under the public avatar dir as <userID><ext>, and points
// the user record at the new public path. Whatever goes wrong, the staged
// temp file is removed before the error propagates.
func (s *Service) UpdateAvatar(ctx context.Context, userID, originalName string, src io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" {
		return "", fmt.Errorf("%w: file %q has no extension", ErrProcessingFailed, originalName)
	}

	staged, err := s.stage(src, ext)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := os.Remove(staged); err != nil && !os.IsNotExist(err) {
			slog.Error("failed to remove staged upload", "path", staged, "reason", err)
		}
	}()

	data, err := os.ReadFile(staged)
	if err != nil {
		return "", fmt.Errorf("read staged upload %q: %w", staged, err)
	}

	resized, err := s.processor.Resize(data, s.cfg.Size, s.cfg.Size)
	if err != nil {
		return "", err
	}

	name := userID + ext
	finalPath := filepath.Join(s.cfg.Dir, name)
	if err := os.WriteFile(finalPath, resized, 0o644); err != nil {
		return "", fmt.Errorf("write avatar %q: %w", finalPath, err)
	}

	publicPath := PublicPathPrefix + name
	if err := s.users.UpdateUserAvatar(ctx, userID, publicPath); err != nil {
		return "", fmt.Errorf("update avatar url for user %s: %w", userID, err)
	}

	return publicPath, nil
}

// stage copies the upload into the temp dir and returns the staged path.
func (s *Service) stage(src io.Reader, ext string) (string, error) {
	if err := os.MkdirAll(s.cfg.TempDir, 0o755); err != nil {
		return "", fmt.Errorf("create temp dir %q: %w", s.cfg.TempDir, err)
	}

	tmp, err := os.CreateTemp(s.cfg.TempDir, "upload-"+uuid.NewString()+"-*"+ext)
	if err != nil {
		return "", fmt.Errorf("create staged upload: %w", err)
	}

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("stage upload: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("close staged upload: %w", err)
	}

	return tmp.Name(), nil
}
