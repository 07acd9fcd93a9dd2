package auth

import "context"

type contextKey string

const callerContextKey contextKey = "auth_caller"

// WithCaller stores the caller in ctx.
func WithCaller(ctx context.Context, c *Caller) context.Context {
	return context.WithValue(ctx, callerContextKey, c)
}

// CallerFromContext returns the caller stored in ctx or the anonymous caller.
func CallerFromContext(ctx context.Context) *Caller {
	c, ok := ctx.Value(callerContextKey).(*Caller)
	if !ok || c == nil {
		return AnonymousCaller()
	}

	return c
}
