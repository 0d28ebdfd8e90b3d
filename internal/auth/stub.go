package auth

import (
	"context"
	"errors"

	"github.com/ferdiebergado/accountkit/internal/user"
)

type StubService struct {
	RegisterUserFunc       func(ctx context.Context, params RegisterUserParams) (user.User, error)
	LoginUserFunc          func(ctx context.Context, params LoginUserParams) (string, error)
	LogoutUserFunc         func(ctx context.Context, userID string) error
	VerifyEmailFunc        func(ctx context.Context, token string) error
	ResendVerificationFunc func(ctx context.Context, email string) error
}

var _ AuthService = (*StubService)(nil)

func (s *StubService) RegisterUser(ctx context.Context, params RegisterUserParams) (user.User, error) {
	if s.RegisterUserFunc == nil {
		return user.User{}, errors.New("RegisterUser() not implemented by stub")
	}
	return s.RegisterUserFunc(ctx, params)
}

func (s *StubService) LoginUser(ctx context.Context, params LoginUserParams) (string, error) {
	if s.LoginUserFunc == nil {
		return "", errors.New("LoginUser() not implemented by stub")
	}
	return s.LoginUserFunc(ctx, params)
}

func (s *StubService) LogoutUser(ctx context.Context, userID string) error {
	if s.LogoutUserFunc == nil {
		return errors.New("LogoutUser() not implemented by stub")
	}
	return s.LogoutUserFunc(ctx, userID)
}

func (s *StubService) VerifyEmail(ctx context.Context, token string) error {
	if s.VerifyEmailFunc == nil {
		return errors.New("VerifyEmail() not implemented by stub")
	}
	return s.VerifyEmailFunc(ctx, token)
}

func (s *StubService) ResendVerification(ctx context.Context, email string) error {
	if s.ResendVerificationFunc == nil {
		return errors.New("ResendVerification() not implemented by stub")
	}
	return s.ResendVerificationFunc(ctx, email)
}

type StubRepo struct {
	SaveSessionTokenFunc            func(ctx context.Context, userID, token string) error
	ClearSessionTokenFunc           func(ctx context.Context, userID string) error
	FindUserByVerificationTokenFunc func(ctx context.Context, token string) (user.User, error)
	MarkVerifiedFunc                func(ctx context.Context, userID string) error
}

var _ AuthRepository = (*StubRepo)(nil)

func (r *StubRepo) SaveSessionToken(ctx context.Context, userID, token string) error {
	if r.SaveSessionTokenFunc == nil {
		return errors.New("SaveSessionToken() not implemented by stub")
	}
	return r.SaveSessionTokenFunc(ctx, userID, token)
}

func (r *StubRepo) ClearSessionToken(ctx context.Context, userID string) error {
	if r.ClearSessionTokenFunc == nil {
		return errors.New("ClearSessionToken() not implemented by stub")
	}
	return r.ClearSessionTokenFunc(ctx, userID)
}

func (r *StubRepo) FindUserByVerificationToken(ctx context.Context, token string) (user.User, error) {
	if r.FindUserByVerificationTokenFunc == nil {
		return user.User{}, errors.New("FindUserByVerificationToken() not implemented by stub")
	}
	return r.FindUserByVerificationTokenFunc(ctx, token)
}

func (r *StubRepo) MarkVerified(ctx context.Context, userID string) error {
	if r.MarkVerifiedFunc == nil {
		return errors.New("MarkVerified() not implemented by stub")
	}
	return r.MarkVerifiedFunc(ctx, userID)
}
