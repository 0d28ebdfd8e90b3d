package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ferdiebergado/accountkit/internal/auth"
	"github.com/ferdiebergado/accountkit/internal/config"
	"github.com/ferdiebergado/accountkit/internal/pkg/timex"
	"github.com/ferdiebergado/accountkit/internal/platform/db"
	"github.com/ferdiebergado/accountkit/internal/platform/email"
	"github.com/ferdiebergado/accountkit/internal/platform/hash"
	"github.com/ferdiebergado/accountkit/internal/platform/jwt"
	"github.com/ferdiebergado/accountkit/internal/user"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: &config.Server{URL: "http://localhost:8000"},
		JWT:    &config.JWT{Issuer: "accountkit", TTL: timex.Duration{Duration: time.Hour}},
		Email:  &config.Email{VerifyPath: "/verify"},
		Avatar: &config.Avatar{Size: 250},
	}
}

func okHasher() *hash.StubHasher {
	return &hash.StubHasher{
		HashFunc: func(plain string) (string, error) {
			return "hashed:" + plain, nil
		},
		VerifyFunc: func(plain, hashed string) (bool, error) {
			return "hashed:"+plain == hashed, nil
		},
	}
}

func TestService_RegisterUser(t *testing.T) {
	t.Parallel()

	const testEmail = "abc@example.com"

	t.Run("Creates an unverified user and sends the verification email", func(t *testing.T) {
		t.Parallel()

		var (
			created  user.CreateUserParams
			mailedTo []string
			mailData map[string]string
		)
		userSvc := &user.StubService{
			FindUserByEmailFunc: func(_ context.Context, _ string) (*user.User, error) {
				return nil, user.ErrNotFound
			},
			CreateUserFunc: func(_ context.Context, params user.CreateUserParams) (user.User, error) {
				created = params
				return user.User{ID: "1", Email: params.Email, AvatarURL: params.AvatarURL}, nil
			},
		}
		mailer := &email.StubMailer{
			SendHTMLFunc: func(to []string, _, _ string, data map[string]string) error {
				mailedTo = to
				mailData = data
				return nil
			},
		}
		providers := &auth.Providers{Hasher: okHasher(), Signer: &jwt.StubSigner{}, Mailer: mailer}
		svc := auth.NewService(&auth.StubRepo{}, userSvc, providers, &db.StubTxManager{}, testConfig())

		newUser, err := svc.RegisterUser(context.Background(), auth.RegisterUserParams{
			Email:    testEmail,
			Password: "secret1",
		})
		if err != nil {
			t.Fatalf("RegisterUser() error = %v", err)
		}

		if newUser.Email != testEmail {
			t.Errorf("newUser.Email = %q, want: %q", newUser.Email, testEmail)
		}
		if created.PasswordHash != "hashed:secret1" {
			t.Errorf("created.PasswordHash = %q, want the hasher output", created.PasswordHash)
		}
		if created.VerificationToken == "" {
			t.Error("created.VerificationToken is empty, want a minted token")
		}
		if created.AvatarURL == "" {
			t.Error("created.AvatarURL is empty, want a gravatar URL")
		}
		if len(mailedTo) != 1 || mailedTo[0] != testEmail {
			t.Errorf("mailedTo = %v, want: [%s]", mailedTo, testEmail)
		}
		wantLink := "http://localhost:8000/verify/" + created.VerificationToken
		if mailData["Link"] != wantLink {
			t.Errorf("mailData[Link] = %q, want: %q", mailData["Link"], wantLink)
		}
	})

	t.Run("Rejects a taken email", func(t *testing.T) {
		t.Parallel()

		userSvc := &user.StubService{
			FindUserByEmailFunc: func(_ context.Context, addr string) (*user.User, error) {
				return &user.User{ID: "1", Email: addr}, nil
			},
		}
		providers := &auth.Providers{Hasher: okHasher(), Signer: &jwt.StubSigner{}, Mailer: &email.StubMailer{}}
		svc := auth.NewService(&auth.StubRepo{}, userSvc, providers, &db.StubTxManager{}, testConfig())

		_, err := svc.RegisterUser(context.Background(), auth.RegisterUserParams{
			Email:    testEmail,
			Password: "secret1",
		})
		if !errors.Is(err, auth.ErrUserExists) {
			t.Errorf("RegisterUser() error = %v, want: %v", err, auth.ErrUserExists)
		}
	})

	t.Run("Maps a duplicate insert race to the same conflict", func(t *testing.T) {
		t.Parallel()

		userSvc := &user.StubService{
			FindUserByEmailFunc: func(_ context.Context, _ string) (*user.User, error) {
				return nil, user.ErrNotFound
			},
			CreateUserFunc: func(_ context.Context, _ user.CreateUserParams) (user.User, error) {
				return user.User{}, user.ErrDuplicateEmail
			},
		}
		providers := &auth.Providers{Hasher: okHasher(), Signer: &jwt.StubSigner{}, Mailer: &email.StubMailer{}}
		svc := auth.NewService(&auth.StubRepo{}, userSvc, providers, &db.StubTxManager{}, testConfig())

		_, err := svc.RegisterUser(context.Background(), auth.RegisterUserParams{
			Email:    testEmail,
			Password: "secret1",
		})
		if !errors.Is(err, auth.ErrUserExists) {
			t.Errorf("RegisterUser() error = %v, want: %v", err, auth.ErrUserExists)
		}
	})

	t.Run("Propagates a mailer failure", func(t *testing.T) {
		t.Parallel()

		sendErr := errors.New("smtp unreachable")
		userSvc := &user.StubService{
			FindUserByEmailFunc: func(_ context.Context, _ string) (*user.User, error) {
				return nil, user.ErrNotFound
			},
			CreateUserFunc: func(_ context.Context, params user.CreateUserParams) (user.User, error) {
				return user.User{ID: "1", Email: params.Email}, nil
			},
		}
		mailer := &email.StubMailer{
			SendHTMLFunc: func(_ []string, _, _ string, _ map[string]string) error {
				return sendErr
			},
		}
		providers := &auth.Providers{Hasher: okHasher(), Signer: &jwt.StubSigner{}, Mailer: mailer}
		svc := auth.NewService(&auth.StubRepo{}, userSvc, providers, &db.StubTxManager{}, testConfig())

		_, err := svc.RegisterUser(context.Background(), auth.RegisterUserParams{
			Email:    testEmail,
			Password: "secret1",
		})
		if !errors.Is(err, sendErr) {
			t.Errorf("RegisterUser() error = %v, want wrapped %v", err, sendErr)
		}
	})
}

func TestService_LoginUser(t *testing.T) {
	t.Parallel()

	const (
		testEmail = "abc@example.com"
		testID    = "user-1"
	)

	knownUser := &user.User{ID: testID, Email: testEmail, PasswordHash: "hashed:secret1"}

	t.Run("Issues a token and stores it as the live session", func(t *testing.T) {
		t.Parallel()

		var savedUserID, savedToken string
		userSvc := &user.StubService{
			FindUserByEmailFunc: func(_ context.Context, _ string) (*user.User, error) {
				return knownUser, nil
			},
		}
		signer := &jwt.StubSigner{
			SignFunc: func(subject string, _ time.Duration) (string, error) {
				return "token-for-" + subject, nil
			},
		}
		repo := &auth.StubRepo{
			SaveSessionTokenFunc: func(_ context.Context, userID, token string) error {
				savedUserID = userID
				savedToken = token
				return nil
			},
		}
		providers := &auth.Providers{Hasher: okHasher(), Signer: signer, Mailer: &email.StubMailer{}}
		svc := auth.NewService(repo, userSvc, providers, &db.StubTxManager{}, testConfig())

		token, err := svc.LoginUser(context.Background(), auth.LoginUserParams{
			Email:    testEmail,
			Password: "secret1",
		})
		if err != nil {
			t.Fatalf("LoginUser() error = %v", err)
		}

		want := "token-for-" + testID
		if token != want {
			t.Errorf("token = %q, want: %q", token, want)
		}
		if savedUserID != testID {
			t.Errorf("savedUserID = %q, want: %q", savedUserID, testID)
		}
		if savedToken != want {
			t.Errorf("savedToken = %q, want: %q", savedToken, want)
		}
	})

	t.Run("Unknown email and wrong password fail identically", func(t *testing.T) {
		t.Parallel()

		hashCompared := false
		hasher := &hash.StubHasher{
			VerifyFunc: func(plain, hashed string) (bool, error) {
				hashCompared = true
				return "hashed:"+plain == hashed, nil
			},
		}

		tests := []struct {
			name     string
			findFunc func(ctx context.Context, email string) (*user.User, error)
			password string
		}{
			{
				name: "unknown email",
				findFunc: func(_ context.Context, _ string) (*user.User, error) {
					return nil, user.ErrNotFound
				},
				password: "secret1",
			},
			{
				name: "wrong password",
				findFunc: func(_ context.Context, _ string) (*user.User, error) {
					return knownUser, nil
				},
				password: "not-the-password",
			},
		}

		for _, tt := range tests {
			userSvc := &user.StubService{FindUserByEmailFunc: tt.findFunc}
			providers := &auth.Providers{Hasher: hasher, Signer: &jwt.StubSigner{}, Mailer: &email.StubMailer{}}
			svc := auth.NewService(&auth.StubRepo{}, userSvc, providers, &db.StubTxManager{}, testConfig())

			hashCompared = false
			_, err := svc.LoginUser(context.Background(), auth.LoginUserParams{
				Email:    testEmail,
				Password: tt.password,
			})
			if !errors.Is(err, auth.ErrInvalidCredentials) {
				t.Errorf("%s: LoginUser() error = %v, want: %v", tt.name, err, auth.ErrInvalidCredentials)
			}
			if tt.name == "unknown email" && hashCompared {
				t.Error("unknown email: hasher was invoked, want a short-circuit before the compare")
			}
		}
	})
}

func TestService_LogoutUser(t *testing.T) {
	t.Parallel()

	var clearedUserID string
	repo := &auth.StubRepo{
		ClearSessionTokenFunc: func(_ context.Context, userID string) error {
			clearedUserID = userID
			return nil
		},
	}
	providers := &auth.Providers{Hasher: okHasher(), Signer: &jwt.StubSigner{}, Mailer: &email.StubMailer{}}
	svc := auth.NewService(repo, &user.StubService{}, providers, &db.StubTxManager{}, testConfig())

	if err := svc.LogoutUser(context.Background(), "user-1"); err != nil {
		t.Fatalf("LogoutUser() error = %v", err)
	}
	if clearedUserID != "user-1" {
		t.Errorf("clearedUserID = %q, want: %q", clearedUserID, "user-1")
	}
}

func TestService_VerifyEmail(t *testing.T) {
	t.Parallel()

	const testToken = "token-1"

	t.Run("Marks the matching user verified", func(t *testing.T) {
		t.Parallel()

		var verifiedUserID string
		repo := &auth.StubRepo{
			FindUserByVerificationTokenFunc: func(_ context.Context, token string) (user.User, error) {
				if token != testToken {
					return user.User{}, auth.ErrTokenNotFound
				}
				return user.User{ID: "user-1", VerificationToken: token}, nil
			},
			MarkVerifiedFunc: func(_ context.Context, userID string) error {
				verifiedUserID = userID
				return nil
			},
		}
		providers := &auth.Providers{Hasher: okHasher(), Signer: &jwt.StubSigner{}, Mailer: &email.StubMailer{}}
		svc := auth.NewService(repo, &user.StubService{}, providers, &db.StubTxManager{}, testConfig())

		if err := svc.VerifyEmail(context.Background(), testToken); err != nil {
			t.Fatalf("VerifyEmail() error = %v", err)
		}
		if verifiedUserID != "user-1" {
			t.Errorf("verifiedUserID = %q, want: %q", verifiedUserID, "user-1")
		}
	})

	t.Run("Unknown or spent token is not found", func(t *testing.T) {
		t.Parallel()

		repo := &auth.StubRepo{
			FindUserByVerificationTokenFunc: func(_ context.Context, _ string) (user.User, error) {
				return user.User{}, auth.ErrTokenNotFound
			},
		}
		providers := &auth.Providers{Hasher: okHasher(), Signer: &jwt.StubSigner{}, Mailer: &email.StubMailer{}}
		svc := auth.NewService(repo, &user.StubService{}, providers, &db.StubTxManager{}, testConfig())

		if err := svc.VerifyEmail(context.Background(), "spent"); !errors.Is(err, auth.ErrTokenNotFound) {
			t.Errorf("VerifyEmail() error = %v, want: %v", err, auth.ErrTokenNotFound)
		}
	})
}

func TestService_ResendVerification(t *testing.T) {
	t.Parallel()

	const (
		testEmail = "abc@example.com"
		testToken = "stored-token"
	)

	t.Run("Resends the stored token without rotating it", func(t *testing.T) {
		t.Parallel()

		var mailData map[string]string
		userSvc := &user.StubService{
			FindUserByEmailFunc: func(_ context.Context, _ string) (*user.User, error) {
				return &user.User{ID: "user-1", Email: testEmail, VerificationToken: testToken}, nil
			},
		}
		mailer := &email.StubMailer{
			SendHTMLFunc: func(_ []string, _, _ string, data map[string]string) error {
				mailData = data
				return nil
			},
		}
		providers := &auth.Providers{Hasher: okHasher(), Signer: &jwt.StubSigner{}, Mailer: mailer}
		svc := auth.NewService(&auth.StubRepo{}, userSvc, providers, &db.StubTxManager{}, testConfig())

		if err := svc.ResendVerification(context.Background(), testEmail); err != nil {
			t.Fatalf("ResendVerification() error = %v", err)
		}

		wantLink := "http://localhost:8000/verify/" + testToken
		if mailData["Link"] != wantLink {
			t.Errorf("mailData[Link] = %q, want: %q", mailData["Link"], wantLink)
		}
	})

	t.Run("Unknown email is not found", func(t *testing.T) {
		t.Parallel()

		userSvc := &user.StubService{
			FindUserByEmailFunc: func(_ context.Context, _ string) (*user.User, error) {
				return nil, user.ErrNotFound
			},
		}
		providers := &auth.Providers{Hasher: okHasher(), Signer: &jwt.StubSigner{}, Mailer: &email.StubMailer{}}
		svc := auth.NewService(&auth.StubRepo{}, userSvc, providers, &db.StubTxManager{}, testConfig())

		if err := svc.ResendVerification(context.Background(), testEmail); !errors.Is(err, user.ErrNotFound) {
			t.Errorf("ResendVerification() error = %v, want: %v", err, user.ErrNotFound)
		}
	})

	t.Run("Verified account is rejected", func(t *testing.T) {
		t.Parallel()

		userSvc := &user.StubService{
			FindUserByEmailFunc: func(_ context.Context, _ string) (*user.User, error) {
				return &user.User{ID: "user-1", Email: testEmail, Verified: true}, nil
			},
		}
		providers := &auth.Providers{Hasher: okHasher(), Signer: &jwt.StubSigner{}, Mailer: &email.StubMailer{}}
		svc := auth.NewService(&auth.StubRepo{}, userSvc, providers, &db.StubTxManager{}, testConfig())

		if err := svc.ResendVerification(context.Background(), testEmail); !errors.Is(err, auth.ErrAlreadyVerified) {
			t.Errorf("ResendVerification() error = %v, want: %v", err, auth.ErrAlreadyVerified)
		}
	})
}
