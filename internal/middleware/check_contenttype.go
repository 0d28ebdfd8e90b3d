package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/ferdiebergado/accountkit/internal/pkg/message"
	"github.com/ferdiebergado/accountkit/internal/pkg/web"
)

const mimeMultipart = "multipart/form-data"

// CheckContentType rejects request bodies that are neither JSON nor multipart
// uploads. Bodyless methods pass through.
func CheckContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
			contentType := r.Header.Get(web.HeaderContentType)
			if !strings.HasPrefix(contentType, web.MimeJSON) && !strings.HasPrefix(contentType, mimeMultipart) {
				web.Fail(w, http.StatusNotAcceptable, fmt.Errorf("invalid content-type: %s", contentType), message.InvalidInput, nil)
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}
