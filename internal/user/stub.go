package user

import (
	"context"
	"errors"
)

type StubService struct {
	CreateUserFunc       func(ctx context.Context, params CreateUserParams) (User, error)
	FindUserFunc         func(ctx context.Context, userID string) (User, error)
	FindUserByEmailFunc  func(ctx context.Context, email string) (*User, error)
	UpdateUserAvatarFunc func(ctx context.Context, userID, avatarURL string) error
}

var _ UserService = (*StubService)(nil)

func (s *StubService) CreateUser(ctx context.Context, params CreateUserParams) (User, error) {
	if s.CreateUserFunc == nil {
		return User{}, errors.New("CreateUser() not implemented by stub")
	}
	return s.CreateUserFunc(ctx, params)
}

func (s *StubService) FindUser(ctx context.Context, userID string) (User, error) {
	if s.FindUserFunc == nil {
		return User{}, errors.New("FindUser() not implemented by stub")
	}
	return s.FindUserFunc(ctx, userID)
}

func (s *StubService) FindUserByEmail(ctx context.Context, email string) (*User, error) {
	if s.FindUserByEmailFunc == nil {
		return nil, errors.New("FindUserByEmail() not implemented by stub")
	}
	return s.FindUserByEmailFunc(ctx, email)
}

func (s *StubService) UpdateUserAvatar(ctx context.Context, userID, avatarURL string) error {
	if s.UpdateUserAvatarFunc == nil {
		return errors.New("UpdateUserAvatar() not implemented by stub")
	}
	return s.UpdateUserAvatarFunc(ctx, userID, avatarURL)
}

type StubRepo struct {
	CreateFunc          func(ctx context.Context, params CreateUserParams) (User, error)
	FindFunc            func(ctx context.Context, userID string) (User, error)
	FindByEmailFunc     func(ctx context.Context, email string) (*User, error)
	UpdateAvatarURLFunc func(ctx context.Context, userID, avatarURL string) error
}

var _ UserRepository = (*StubRepo)(nil)

func (r *StubRepo) Create(ctx context.Context, params CreateUserParams) (User, error) {
	if r.CreateFunc == nil {
		return User{}, errors.New("Create() not implemented by stub")
	}
	return r.CreateFunc(ctx, params)
}

func (r *StubRepo) Find(ctx context.Context, userID string) (User, error) {
	if r.FindFunc == nil {
		return User{}, errors.New("Find() not implemented by stub")
	}
	return r.FindFunc(ctx, userID)
}

func (r *StubRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	if r.FindByEmailFunc == nil {
		return nil, errors.New("FindByEmail() not implemented by stub")
	}
	return r.FindByEmailFunc(ctx, email)
}

func (r *StubRepo) UpdateAvatarURL(ctx context.Context, userID, avatarURL string) error {
	if r.UpdateAvatarURLFunc == nil {
		return errors.New("UpdateAvatarURL() not implemented by stub")
	}
	return r.UpdateAvatarURLFunc(ctx, userID, avatarURL)
}
