package user

import (
	"context"
	"fmt"
)

// UserRepository is the persistence surface the service composes.
type UserRepository interface {
	Create(ctx context.Context, params CreateUserParams) (User, error)
	Find(ctx context.Context, userID string) (User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	UpdateAvatarURL(ctx context.Context, userID, avatarURL string) error
}

type Service struct {
	repo UserRepository
}

var _ UserService = (*Service)(nil)

func NewService(repo UserRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateUser(ctx context.Context, params CreateUserParams) (User, error) {
	u, err := s.repo.Create(ctx, params)
	if err != nil {
		return u, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func (s *Service) FindUser(ctx context.Context, userID string) (User, error) {
	u, err := s.repo.Find(ctx, userID)
	if err != nil {
		return u, fmt.Errorf("find user with id %s: %w", userID, err)
	}
	return u, nil
}

func (s *Service) FindUserByEmail(ctx context.Context, email string) (*User, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) UpdateUserAvatar(ctx context.Context, userID, avatarURL string) error {
	if err := s.repo.UpdateAvatarURL(ctx, userID, avatarURL); err != nil {
		return fmt.Errorf("update avatar for user %s: %w", userID, err)
	}
	return nil
}
