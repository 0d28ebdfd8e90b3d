package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ferdiebergado/accountkit/internal/config"
	"github.com/ferdiebergado/accountkit/internal/pkg/gravatar"
	"github.com/ferdiebergado/accountkit/internal/platform/db"
	"github.com/ferdiebergado/accountkit/internal/platform/email"
	"github.com/ferdiebergado/accountkit/internal/platform/hash"
	"github.com/ferdiebergado/accountkit/internal/platform/jwt"
	"github.com/ferdiebergado/accountkit/internal/user"
	"github.com/google/uuid"
)

var _ AuthService = (*Service)(nil)

var (
	ErrUserExists         = errors.New("auth service: user already exists")
	ErrInvalidCredentials = errors.New("auth service: invalid credentials")
	ErrAlreadyVerified    = errors.New("auth service: email already verified")
)

// AuthRepository covers the session and verification mutations of the user
// record.
type AuthRepository interface {
	SaveSessionToken(ctx context.Context, userID, token string) error
	ClearSessionToken(ctx context.Context, userID string) error
	FindUserByVerificationToken(ctx context.Context, token string) (user.User, error)
	MarkVerified(ctx context.Context, userID string) error
}

type Providers struct {
	Hasher hash.Hasher
	Signer jwt.Signer
	Mailer email.Mailer
}

type Service struct {
	repo    AuthRepository
	userSvc user.UserService
	hasher  hash.Hasher
	signer  jwt.Signer
	mailer  email.Mailer
	txMgr   db.TxManager
	cfg     *config.Config
}

func NewService(repo AuthRepository, userSvc user.UserService, providers *Providers, txMgr db.TxManager, cfg *config.Config) *Service {
	return &Service{
		repo:    repo,
		userSvc: userSvc,
		hasher:  providers.Hasher,
		signer:  providers.Signer,
		mailer:  providers.Mailer,
		txMgr:   txMgr,
		cfg:     cfg,
	}
}

type RegisterUserParams struct {
	Email    string
	Password string
}

func (p *RegisterUserParams) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", maskChar),
		slog.String("password", maskChar),
	)
}

type LoginUserParams struct {
	Email    string
	Password string
}

func (p *LoginUserParams) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", maskChar),
		slog.String("password", maskChar),
	)
}

// RegisterUser creates an unverified account: the password is hashed, the
// avatar starts as the gravatar for the address, and a single-use
// verification token is minted and mailed out.
func (s *Service) RegisterUser(ctx context.Context, params RegisterUserParams) (user.User, error) {
	u := user.User{}
	addr := params.Email
	existing, err := s.userSvc.FindUserByEmail(ctx, addr)
	if err != nil && !errors.Is(err, user.ErrNotFound) {
		return u, fmt.Errorf("find user with email %s: %w", addr, err)
	}

	if existing != nil {
		return u, ErrUserExists
	}

	passwordHash, err := s.hasher.Hash(params.Password)
	if err != nil {
		return u, fmt.Errorf("hasher hash: %w", err)
	}

	verificationToken := uuid.NewString()
	newUser, err := s.userSvc.CreateUser(ctx, user.CreateUserParams{
		Email:             addr,
		PasswordHash:      passwordHash,
		AvatarURL:         gravatar.URL(addr, s.cfg.Avatar.Size),
		VerificationToken: verificationToken,
	})
	if err != nil {
		// A concurrent registration can lose the race to the unique index.
		if errors.Is(err, user.ErrDuplicateEmail) {
			return u, ErrUserExists
		}
		return u, fmt.Errorf("create user %s: %w", addr, err)
	}

	if err := s.sendVerificationEmail(newUser.Email, verificationToken); err != nil {
		return u, fmt.Errorf("send verification email to %s: %w", addr, err)
	}

	return newUser, nil
}

// LoginUser checks the credentials and issues a fresh bearer token, storing
// it as the account's only live session. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *Service) LoginUser(ctx context.Context, params LoginUserParams) (string, error) {
	u, err := s.userSvc.FindUserByEmail(ctx, params.Email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			// Do not attempt a hash comparison against a missing record.
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("find user by email %q: %w", params.Email, err)
	}

	ok, err := s.hasher.Verify(params.Password, u.PasswordHash)
	if err != nil {
		return "", fmt.Errorf("verify password for user %q: %w", u.Email, err)
	}

	if !ok {
		return "", ErrInvalidCredentials
	}

	token, err := s.signer.Sign(u.ID, s.cfg.JWT.TTL.Duration)
	if err != nil {
		return "", fmt.Errorf("sign token for user %q: %w", u.Email, err)
	}

	if err := s.repo.SaveSessionToken(ctx, u.ID, token); err != nil {
		return "", fmt.Errorf("save session token: %w", err)
	}

	return token, nil
}

// LogoutUser clears the session slot unconditionally.
func (s *Service) LogoutUser(ctx context.Context, userID string) error {
	if err := s.repo.ClearSessionToken(ctx, userID); err != nil {
		return fmt.Errorf("clear session token: %w", err)
	}
	return nil
}

// VerifyEmail completes the verification flow for the account holding the
// token. The lookup and the flag flip run in one transaction; a second call
// with the same token fails because the token was cleared.
func (s *Service) VerifyEmail(ctx context.Context, token string) error {
	err := s.txMgr.RunInTx(ctx, func(txCtx context.Context) error {
		u, err := s.repo.FindUserByVerificationToken(txCtx, token)
		if err != nil {
			return err
		}

		if err := s.repo.MarkVerified(txCtx, u.ID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrTokenNotFound) {
			return ErrTokenNotFound
		}
		return fmt.Errorf("verify email: %w", err)
	}
	return nil
}

// ResendVerification re-dispatches the verification email with the stored
// token. The token is not rotated on resend.
func (s *Service) ResendVerification(ctx context.Context, addr string) error {
	u, err := s.userSvc.FindUserByEmail(ctx, addr)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.ErrNotFound
		}
		return fmt.Errorf("find user by email %q: %w", addr, err)
	}

	if u.Verified {
		return ErrAlreadyVerified
	}

	if err := s.sendVerificationEmail(u.Email, u.VerificationToken); err != nil {
		return fmt.Errorf("resend verification email to %s: %w", addr, err)
	}

	return nil
}

func (s *Service) sendVerificationEmail(addr, token string) error {
	slog.Info("Sending verification email...")

	const subject = "Verify your email"
	link := s.cfg.Server.URL + s.cfg.Email.VerifyPath + "/" + token
	data := map[string]string{
		"Title":  "Email verification",
		"Header": subject,
		"Link":   link,
	}
	return s.mailer.SendHTML([]string{addr}, subject, "verification", data)
}
