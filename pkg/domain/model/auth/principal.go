package auth

import (
	"context"

	"github.com/courtside-dev/courtside/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Principal is the authenticated identity threaded through every use case
// call. It is always passed explicitly, never read from ambient state.
type Principal struct {
	UserID int64
	Email  string
	Role   types.Role
}

// IsAdmin reports whether the principal has the admin role
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == types.RoleAdmin
}

type ctxKey struct{}

var ErrNoPrincipal = goerr.New("no principal in context")

// ContextWithPrincipal returns a context carrying the principal
func ContextWithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// PrincipalFromContext extracts the principal stored by the auth middleware
func PrincipalFromContext(ctx context.Context) (*Principal, error) {
	p, ok := ctx.Value(ctxKey{}).(*Principal)
	if !ok || p == nil {
		return nil, ErrNoPrincipal
	}
	return p, nil
}
