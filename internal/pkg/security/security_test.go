package security_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ferdiebergado/accountkit/internal/pkg/security"
)

func TestGenerateRandomBytesURLEncoded(t *testing.T) {
	t.Parallel()

	a, err := security.GenerateRandomBytesURLEncoded(16)
	if err != nil {
		t.Fatalf("GenerateRandomBytesURLEncoded() error = %v", err)
	}
	if a == "" {
		t.Error("generated value is empty")
	}

	b, err := security.GenerateRandomBytesURLEncoded(16)
	if err != nil {
		t.Fatalf("GenerateRandomBytesURLEncoded() error = %v", err)
	}
	if a == b {
		t.Error("two generated values are equal, want distinct output")
	}
}

func TestConstantTimeCompareStr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"Equal strings", "token", "token", true},
		{"Different strings", "token", "other", false},
		{"Different lengths", "token", "tok", false},
		{"Both empty", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := security.ConstantTimeCompareStr(tt.a, tt.b); got != tt.want {
				t.Errorf("ConstantTimeCompareStr(%q, %q) = %t, want: %t", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestExtractBearerToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"Well-formed header", "Bearer abc123", "abc123", false},
		{"Missing header", "", "", true},
		{"Wrong scheme", "Basic abc123", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			got, err := security.ExtractBearerToken(req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExtractBearerToken() error = %v, wantErr: %t", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ExtractBearerToken() = %q, want: %q", got, tt.want)
			}
		})
	}
}
