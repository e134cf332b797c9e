package httpx

import "context"

type ctxKey string

const (
	// CtxKeyEmail is the canonical email of the authenticated caller.
	CtxKeyEmail ctxKey = "email"
	// CtxKeyRole is the caller's effective role, set by the authorization
	// middleware after resolution.
	CtxKeyRole ctxKey = "role"
)

// EmailFromCtx returns the authenticated caller's canonical email, or "".
func EmailFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyEmail).(string); ok {
		return v
	}
	return ""
}
