package userctx

import "context"

// Context key type
type contextKey string

const usernameKey contextKey = "username"
const displayNameKey contextKey = "display_name"

// SetUsername adds the logged-in username to request context
func SetUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameKey, username)
}

// GetUsername retrieves the username from request context
func GetUsername(ctx context.Context) string {
	username, ok := ctx.Value(usernameKey).(string)
	if !ok {
		return ""
	}
	return username
}

// SetDisplayName adds the user's display name to request context
func SetDisplayName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, displayNameKey, name)
}

// GetDisplayName retrieves the display name, falling back to the username
func GetDisplayName(ctx context.Context) string {
	if name, ok := ctx.Value(displayNameKey).(string); ok && name != "" {
		return name
	}
	if username := GetUsername(ctx); username != "" {
		return username
	}
	return "anonymous"
}
