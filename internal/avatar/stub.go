package avatar

import (
	"context"
	"errors"
	"io"
)

type StubService struct {
	UpdateAvatarFunc func(ctx context.Context, userID, originalName string, src io.Reader) (string, error)
}

var _ AvatarService = (*StubService)(nil)

func (s *StubService) UpdateAvatar(ctx context.Context, userID, originalName string, src io.Reader) (string, error) {
	if s.UpdateAvatarFunc == nil {
		return "", errors.New("UpdateAvatar() not implemented by stub")
	}
	return s.UpdateAvatarFunc(ctx, userID, originalName, src)
}

type StubProcessor struct {
	ResizeFunc func(data []byte, width, height int) ([]byte, error)
}

var _ Processor = (*StubProcessor)(nil)

func (p *StubProcessor) Resize(data []byte, width, height int) ([]byte, error) {
	if p.ResizeFunc == nil {
		return nil, errors.New("Resize() not implemented by stub")
	}
	return p.ResizeFunc(data, width, height)
}
