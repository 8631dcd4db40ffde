package middleware

import (
	"net/http"

	"github.com/mateovidal/streamhaus-backend/pkg/auth/session"
	"github.com/mateovidal/streamhaus-backend/pkg/config"
	"github.com/mateovidal/streamhaus-backend/pkg/logger"
)

// OptionalAuth seeds the context with the caller's identity when a token is
// present but lets anonymous requests straight through. A token that is
// present but invalid is still rejected; silently downgrading it to
// anonymous would mask expired sessions from clients.
func OptionalAuth(cfg config.JWTConfig, verifier session.AccessSessionChecker, logg *logger.Logger) func(http.Handler) http.Handler {
	authed := Auth(cfg, verifier, logg)
	return func(next http.Handler) http.Handler {
		withAuth := authed(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if BearerToken(r) == "" {
				next.ServeHTTP(w, r)
				return
			}
			withAuth.ServeHTTP(w, r)
		})
	}
}
