package auth_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ferdiebergado/accountkit/internal/auth"
	"github.com/ferdiebergado/accountkit/internal/pkg/message"
	"github.com/ferdiebergado/accountkit/internal/platform/jwt"
	"github.com/ferdiebergado/accountkit/internal/user"
)

func TestRequireSession(t *testing.T) {
	t.Parallel()

	const (
		testUserID = "user-1"
		liveToken  = "live-token"
	)

	verifyOK := func(tokenString string) (*jwt.Claims, error) {
		return &jwt.Claims{UserID: testUserID}, nil
	}
	findWithSession := func(sessionToken string) func(ctx context.Context, userID string) (user.User, error) {
		return func(_ context.Context, userID string) (user.User, error) {
			return user.User{ID: userID, SessionToken: sessionToken}, nil
		}
	}

	tests := []struct {
		name       string
		authHeader string
		verifyFunc func(tokenString string) (*jwt.Claims, error)
		findFunc   func(ctx context.Context, userID string) (user.User, error)
		code       int
	}{
		{
			name:       "Token matching the stored session passes",
			authHeader: "Bearer " + liveToken,
			verifyFunc: verifyOK,
			findFunc:   findWithSession(liveToken),
			code:       http.StatusOK,
		},
		{
			name: "Missing header is unauthorized",
			code: http.StatusUnauthorized,
		},
		{
			name:       "Malformed header is unauthorized",
			authHeader: "Basic abc123",
			code:       http.StatusUnauthorized,
		},
		{
			name:       "Token that fails verification is unauthorized",
			authHeader: "Bearer " + liveToken,
			verifyFunc: func(_ string) (*jwt.Claims, error) {
				return nil, errors.New("token is expired")
			},
			code: http.StatusUnauthorized,
		},
		{
			name:       "Token for a logged-out user is unauthorized",
			authHeader: "Bearer " + liveToken,
			verifyFunc: verifyOK,
			findFunc:   findWithSession(""),
			code:       http.StatusUnauthorized,
		},
		{
			name:       "Token superseded by a newer login is unauthorized",
			authHeader: "Bearer " + liveToken,
			verifyFunc: verifyOK,
			findFunc:   findWithSession("newer-token"),
			code:       http.StatusUnauthorized,
		},
		{
			name:       "Unknown subject is unauthorized",
			authHeader: "Bearer " + liveToken,
			verifyFunc: verifyOK,
			findFunc: func(_ context.Context, _ string) (user.User, error) {
				return user.User{}, user.ErrNotFound
			},
			code: http.StatusUnauthorized,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			signer := &jwt.StubSigner{VerifyFunc: tt.verifyFunc}
			users := &user.StubService{FindUserFunc: tt.findFunc}

			var ctxUserID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				userID, err := user.FromContext(r.Context())
				if err != nil {
					t.Errorf("user.FromContext() error = %v", err)
				}
				ctxUserID = userID
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/current", http.NoBody)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			auth.RequireSession(signer, users)(next).ServeHTTP(rec, req)

			if rec.Code != tt.code {
				t.Errorf(message.FmtErrStatusCode, rec.Code, tt.code)
			}

			if tt.code == http.StatusOK && ctxUserID != testUserID {
				t.Errorf("ctxUserID = %q, want: %q", ctxUserID, testUserID)
			}
		})
	}
}
