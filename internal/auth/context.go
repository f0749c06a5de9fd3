package auth

import "context"

type actorKey struct{}

// WithActorID returns a context carrying the authenticated employee id.
// The middleware sets it; write paths read it for audit fields.
func WithActorID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, actorKey{}, id)
}

// ActorID extracts the authenticated employee id from ctx.
func ActorID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(actorKey{}).(int64)
	return id, ok
}
