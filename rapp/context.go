package rapp

import (
	"context"
	"net/http"

	"github.com/advdv/rhttp"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ctxKey is the key type for context values.
type ctxKey int

const (
	ctxKeyLogger ctxKey = iota
	ctxKeyRequestID
)

// RequestIDHeader carries the request id on both request and response.
const RequestIDHeader = "X-Request-Id"

// withRequestID assigns every request an id, preferring one the client or a
// proxy already set. The id is echoed on the response and stored on the
// context together with a logger field.
func withRequestID(logger *zap.Logger) rhttp.Middleware {
	return func(next rhttp.BareHandler) rhttp.BareHandler {
		return rhttp.BareHandlerFunc(func(w rhttp.ResponseWriter, r *http.Request) error {
			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}

			w.Header().Set(RequestIDHeader, id)

			ctx := r.Context()
			ctx = context.WithValue(ctx, ctxKeyRequestID, id)
			ctx = context.WithValue(ctx, ctxKeyLogger, logger.With(zap.String("request_id", id)))

			return next.ServeBareBHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestID returns the id assigned to the request, empty when the middleware
// did not run.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKeyRequestID).(string)
	return id
}

// Log returns the request-scoped logger, falling back to a no-op logger so
// callers never need to nil-check.
func Log(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(ctxKeyLogger).(*zap.Logger); ok {
		return l
	}

	return zap.NewNop()
}
