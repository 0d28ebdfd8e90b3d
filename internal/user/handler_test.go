package user_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ferdiebergado/accountkit/internal/pkg/message"
	"github.com/ferdiebergado/accountkit/internal/pkg/web"
	"github.com/ferdiebergado/accountkit/internal/user"
)

func TestHandler_CurrentUser(t *testing.T) {
	t.Parallel()

	const (
		testUserID = "user-1"
		testEmail  = "test@example.com"
	)

	t.Run("Returns the authenticated user's profile", func(t *testing.T) {
		t.Parallel()

		svc := &user.StubService{
			FindUserFunc: func(_ context.Context, userID string) (user.User, error) {
				return user.User{
					ID:           userID,
					Email:        testEmail,
					Subscription: user.SubscriptionPro,
				}, nil
			},
		}
		handler := user.NewHandler(svc)

		userCtx := user.ContextWithUser(context.Background(), testUserID)
		req := httptest.NewRequestWithContext(userCtx, http.MethodGet, "/current", http.NoBody)
		rec := httptest.NewRecorder()
		handler.CurrentUser(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf(message.FmtErrStatusCode, rec.Code, http.StatusOK)
		}

		var apiRes web.OKResponse[*user.CurrentUserResponse]
		if err := json.NewDecoder(rec.Body).Decode(&apiRes); err != nil {
			t.Fatal(err)
		}
		if apiRes.Data.Email != testEmail {
			t.Errorf("apiRes.Data.Email = %q, want: %q", apiRes.Data.Email, testEmail)
		}
		if apiRes.Data.Subscription != user.SubscriptionPro {
			t.Errorf("apiRes.Data.Subscription = %q, want: %q", apiRes.Data.Subscription, user.SubscriptionPro)
		}
	})

	t.Run("Missing identity is unauthorized", func(t *testing.T) {
		t.Parallel()

		handler := user.NewHandler(&user.StubService{})

		req := httptest.NewRequest(http.MethodGet, "/current", http.NoBody)
		rec := httptest.NewRecorder()
		handler.CurrentUser(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf(message.FmtErrStatusCode, rec.Code, http.StatusUnauthorized)
		}
	})

	t.Run("Lookup failure is a server error", func(t *testing.T) {
		t.Parallel()

		svc := &user.StubService{
			FindUserFunc: func(_ context.Context, _ string) (user.User, error) {
				return user.User{}, errors.New("connection reset")
			},
		}
		handler := user.NewHandler(svc)

		userCtx := user.ContextWithUser(context.Background(), testUserID)
		req := httptest.NewRequestWithContext(userCtx, http.MethodGet, "/current", http.NoBody)
		rec := httptest.NewRecorder()
		handler.CurrentUser(rec, req)

		if rec.Code != http.StatusInternalServerError {
			t.Errorf(message.FmtErrStatusCode, rec.Code, http.StatusInternalServerError)
		}
	})
}
