package context

import (
	"context"

	"github.com/google/uuid"
)

const (
	ContextKeyCorrelationID ContextKey = "Correlation-Id"
	ContextKeyStaffID       ContextKey = "Staff-Id"
)

type ContextKey string

// WithCorrelationID tags ctx with id, generating one when id is empty.
// The id actually stored is returned alongside the context.
func WithCorrelationID(ctx context.Context, id string) (context.Context, string) {
	if ctx == nil {
		ctx = context.Background()
	}
	if id == "" {
		id = uuid.NewString()
	}
	return context.WithValue(ctx, ContextKeyCorrelationID, id), id
}

func CorrelationID(ctx context.Context) string {
	return GetContextValue(ctx, ContextKeyCorrelationID)
}

func SetContextWithValue(ctx context.Context, key ContextKey, value string) context.Context {
	return context.WithValue(ctx, key, value)
}

func GetContextValue(ctx context.Context, key ContextKey) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(key).(string); ok {
		return v
	}
	return ""
}

// StaffID returns the authenticated gate staff member attached by the session middleware.
func StaffID(ctx context.Context) string {
	return GetContextValue(ctx, ContextKeyStaffID)
}
