package http

import (
	"context"
	"net/http"

	"github.com/buffalosolar/admin-center/internal/admin/rbac"
	"github.com/buffalosolar/admin-center/internal/admin/service"
	"github.com/buffalosolar/admin-center/pkg/adminsdk"
	"github.com/buffalosolar/admin-center/pkg/httpx"
)

// RequirePermission resolves the authenticated caller's effective role and
// rejects the request unless that role holds perm. The resolved role is
// stored in the request context so handlers do not resolve it twice.
//
// Must run after AuthnMiddleware: it relies on the email placed in the
// context by the bearer token check.
func RequirePermission(admins *service.AdminService, perm rbac.Permission) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			email := httpx.EmailFromCtx(ctx)
			if email == "" {
				adminsdk.ErrInvalidToken.WriteError(w)
				return
			}

			role := admins.EffectiveRole(ctx, email)
			if !rbac.HasPermission(role, perm) {
				adminsdk.ErrAccessDenied.WriteError(w)
				return
			}

			ctx = context.WithValue(ctx, httpx.CtxKeyRole, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// roleFromCtx returns the role resolved by RequirePermission. Handlers
// behind the guard can assume it is present; the fallback keeps a missing
// value from silently elevating anyone.
func roleFromCtx(ctx context.Context) rbac.Role {
	if role, ok := ctx.Value(httpx.CtxKeyRole).(rbac.Role); ok {
		return role
	}
	return rbac.RoleOperations
}
