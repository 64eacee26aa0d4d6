package userctx

import "context"

// Context key type
type contextKey string

const userEmailKey contextKey = "user_email"

// Anonymous is reported for requests without an authenticated session
const Anonymous = "anonymous"

// SetUserEmail adds user email to request context
func SetUserEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, userEmailKey, email)
}

// GetUserEmail retrieves user email from request context
func GetUserEmail(ctx context.Context) string {
	email, ok := ctx.Value(userEmailKey).(string)
	if !ok || email == "" {
		return Anonymous
	}
	return email
}

// IsAuthenticated reports whether an authenticated user was attached to ctx
func IsAuthenticated(ctx context.Context) bool {
	email, ok := ctx.Value(userEmailKey).(string)
	return ok && email != ""
}
