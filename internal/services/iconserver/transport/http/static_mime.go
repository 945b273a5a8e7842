package http

import (
	"net/http"
	"strings"

	"github.com/botprofile/personaicons/icons"
)

// WithStaticMime attaches explicit content-type hints for icon payloads and
// definitions.
func WithStaticMime(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch path := strings.ToLower(r.URL.Path); {
		case strings.HasSuffix(path, ".svg"):
			w.Header().Set("Content-Type", icons.MIMEType)
		case strings.HasSuffix(path, ".json"):
			w.Header().Set("Content-Type", "application/json")
		}
		next.ServeHTTP(w, r)
	})
}
