package jwt

import (
	"time"
)

// Claims represents the token claims processed for authentication.
type Claims struct {
	UserID string
}

// Signer defines methods for issuing and verifying bearer tokens.
type Signer interface {
	Sign(subject string, ttl time.Duration) (token string, err error)
	Verify(tokenString string) (*Claims, error)
}
