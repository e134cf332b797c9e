package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/buffalosolar/admin-center/pkg/jwtx"
	"github.com/buffalosolar/admin-center/pkg/slogx"
)

// AuthnMiddleware verifies the identity provider's Bearer session token and
// injects only the verified email into the request context. Role claims the
// token might carry are deliberately not read; authorization happens in the
// service's own guard.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				writeBearerError(w, "missing bearer token")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.Verify(raw)
			if err != nil {
				writeBearerError(w, "token verification failed")
				log.Warn("session token verify failed", "err", err)
				return
			}

			if err := claims.ValidateExpiry(); err != nil {
				writeBearerError(w, "token expired")
				return
			}

			email := strings.ToLower(strings.TrimSpace(claims.Email))
			ctx = context.WithValue(ctx, CtxKeyEmail, email)
			ctx = slogx.WithActor(ctx, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	w.WriteHeader(http.StatusUnauthorized)
}
