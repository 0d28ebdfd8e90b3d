package jwt_test

import (
	"testing"
	"time"

	"github.com/ferdiebergado/accountkit/internal/config"
	"github.com/ferdiebergado/accountkit/internal/platform/jwt"
)

func newTestSigner(t *testing.T, key string) jwt.Signer {
	t.Helper()

	cfg := &config.JWT{
		JTILength: 16,
		Issuer:    "accountkit-test",
	}
	return jwt.NewGolangJWTSigner(cfg, key)
}

func TestGolangJWTSigner_SignAndVerify(t *testing.T) {
	t.Parallel()

	const (
		key    = "test-key"
		userID = "f47ac10b-58cc-4372-a567-0e02b2c3d479"
	)

	signer := newTestSigner(t, key)

	token, err := signer.Sign(userID, time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	if token == "" {
		t.Errorf("token = %q, want: non-empty", token)
	}

	claims, err := signer.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned an error: %v", err)
	}

	if claims.UserID != userID {
		t.Errorf("claims.UserID = %q, want: %q", claims.UserID, userID)
	}
}

func TestGolangJWTSigner_VerifyExpired(t *testing.T) {
	t.Parallel()

	signer := newTestSigner(t, "test-key")

	token, err := signer.Sign("1", -time.Minute)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := signer.Verify(token); err == nil {
		t.Error("Verify(expired token) returned nil error, want: error")
	}
}

func TestGolangJWTSigner_VerifyWrongKey(t *testing.T) {
	t.Parallel()

	signer := newTestSigner(t, "test-key")
	other := newTestSigner(t, "other-key")

	token, err := signer.Sign("1", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := other.Verify(token); err == nil {
		t.Error("Verify(token signed with another key) returned nil error, want: error")
	}
}

func TestGolangJWTSigner_VerifyMalformed(t *testing.T) {
	t.Parallel()

	signer := newTestSigner(t, "test-key")

	if _, err := signer.Verify("not-a-token"); err == nil {
		t.Error("Verify(malformed token) returned nil error, want: error")
	}
}
