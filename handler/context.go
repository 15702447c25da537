package handler

import (
	"context"
	"net/http"
)

// Type contextKey is a custom contextKey type, with the underlying type string.
// This is necessary to prevent name collisions with external packages.
type contextKey string

// requestIDContextKey is the key for getting and setting the request id in
// the request context.
const requestIDContextKey = contextKey("request_id")

// contextSetRequestID returns a new copy of the request with the given
// request id added to the context.
func (h *Handler) contextSetRequestID(r *http.Request, id string) *http.Request {
	ctx := context.WithValue(r.Context(), requestIDContextKey, id)
	return r.WithContext(ctx)
}

// contextGetRequestID retrieves the request id from the request context. It
// returns an empty string for requests that never passed through the
// requestID middleware.
func (h *Handler) contextGetRequestID(r *http.Request) string {
	id, ok := r.Context().Value(requestIDContextKey).(string)
	if !ok {
		return ""
	}
	return id
}
