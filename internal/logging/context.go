package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext returns the logger carried by ctx, or a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// With returns ctx carrying a child logger with fields added.
func With(ctx context.Context, fields map[string]any) context.Context {
	return WithContext(ctx, FromContext(ctx).With().Fields(fields).Logger())
}

// WithComponent tags every entry logged through the returned ctx with the
// subsystem that wrote it.
func WithComponent(ctx context.Context, component string) context.Context {
	return withStr(ctx, "component", component)
}

func WithWorkspaceID(ctx context.Context, workspaceID string) context.Context {
	return withStr(ctx, "workspace_id", workspaceID)
}

func WithItemID(ctx context.Context, itemID string) context.Context {
	return withStr(ctx, "item_id", itemID)
}

func withStr(ctx context.Context, key, value string) context.Context {
	return WithContext(ctx, FromContext(ctx).With().Str(key, value).Logger())
}
