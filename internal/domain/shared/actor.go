package shared

import "context"

type actorKey struct{}

// WithActor returns a copy of ctx carrying the authenticated username.
func WithActor(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, actorKey{}, username)
}

// ActorFrom returns the authenticated username stored in ctx.
func ActorFrom(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(actorKey{}).(string)
	return username, ok && username != ""
}
