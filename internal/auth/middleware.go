package auth

import (
	"net/http"
	"strings"

	"github.com/osse101/SceneIt_Go/internal/logger"
)

// BearerToken extracts the token from an "Authorization: Bearer" header
func BearerToken(r *http.Request) string {
	header := r.Header.Get(HeaderAuthorization)
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, BearerScheme) {
		return ""
	}
	return strings.TrimSpace(token)
}

// Require rejects requests without a valid bearer token before any handler runs
func Require(v Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := v.Verify(r.Context(), BearerToken(r))
			if err != nil {
				logger.FromContext(r.Context()).Debug(LogMsgTokenRejected, "path", r.URL.Path, "error", err)
				writeUnauthorized(w)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

// Optional attaches the caller's identity when a valid token is present and
// never rejects the request
func Optional(v Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := BearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			identity, err := v.Verify(r.Context(), token)
			if err != nil {
				logger.FromContext(r.Context()).Debug(LogMsgTokenRejected, "path", r.URL.Path, "error", err)
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", BearerScheme)
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(UnauthorizedBody))
}
