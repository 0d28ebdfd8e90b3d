// Package gravatar derives deterministic avatar URLs from email addresses.
package gravatar

import (
	"crypto/md5" //nolint:gosec // gravatar addressing requires md5, not used for security
	"fmt"
	"strings"
)

const baseURL = "https://www.gravatar.com/avatar"

// URL returns the gravatar URL for email at the given pixel size. The address
// is trimmed and lowercased before hashing, per the gravatar spec.
func URL(email string, size int) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := md5.Sum([]byte(normalized)) //nolint:gosec
	return fmt.Sprintf("%s/%x?s=%d&d=identicon", baseURL, sum, size)
}
