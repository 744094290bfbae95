// Package utils provides general-purpose helpers shared by the client
// packages: context keys, the HTTP client wrapper, request id generation and
// API token inspection.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// RequestIDCtxKey is the key used to carry a caller-chosen request id.
// The adapter sends it as X-Request-ID instead of generating a fresh one.
//
//	ctx := utils.WithRequestID(ctx, "refresh-customers")
var RequestIDCtxKey = contextKey("requestID")

// WithRequestID returns a copy of ctx carrying id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDCtxKey, id)
}

// GetRequestIDFromContext retrieves the request id stored by WithRequestID.
// ok is false when the value is missing, empty or has an unexpected type.
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(RequestIDCtxKey).(string)
	return id, ok && id != ""
}
