package auth

import (
	"errors"
	"net/http"

	"github.com/ferdiebergado/accountkit/internal/pkg/message"
	"github.com/ferdiebergado/accountkit/internal/pkg/security"
	"github.com/ferdiebergado/accountkit/internal/pkg/web"
	"github.com/ferdiebergado/accountkit/internal/platform/jwt"
	"github.com/ferdiebergado/accountkit/internal/user"
)

var ErrSessionRevoked = errors.New("token does not match the stored session")

// RequireSession authenticates the request from its bearer token. The token
// must verify cryptographically AND match the account's stored session slot:
// a logged-out or superseded token is rejected here even though its signature
// and expiry are still valid.
func RequireSession(signer jwt.Signer, users user.UserService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := security.ExtractBearerToken(r)
			if err != nil || token == "" {
				web.RespondUnauthorized(w, err, message.InvalidSession, nil)
				return
			}

			claims, err := signer.Verify(token)
			if err != nil {
				web.RespondUnauthorized(w, err, message.InvalidSession, nil)
				return
			}

			u, err := users.FindUser(r.Context(), claims.UserID)
			if err != nil {
				web.RespondUnauthorized(w, err, message.InvalidSession, nil)
				return
			}

			if u.SessionToken == "" || !security.ConstantTimeCompareStr(token, u.SessionToken) {
				web.RespondUnauthorized(w, ErrSessionRevoked, message.InvalidSession, nil)
				return
			}

			ctx := user.ContextWithUser(r.Context(), u.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
