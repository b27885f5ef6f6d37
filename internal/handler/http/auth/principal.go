// Package auth validates session tokens on incoming requests and exposes
// the authenticated principal to handlers. Sessions are issued elsewhere;
// this package is only the guard side.
package auth

import "context"

// Principal is the authenticated caller of a request.
type Principal struct {
	ID   string // user ID, an opaque UUID
	Name string // display name at session-issue time
}

type ctxKey string

const ctxPrincipal ctxKey = "principal"

// NewContext returns a copy of ctx carrying the principal.
func NewContext(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, ctxPrincipal, p)
}

// PrincipalFromContext returns the principal the guard stored for this
// request. ok is false when the request never passed the guard.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(ctxPrincipal).(Principal)
	return p, ok
}
