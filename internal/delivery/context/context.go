// Package context carries the request id, the request logger and the authenticated
// caller from the echo layer down to the use cases.
package context

import (
	"context"
	"log/slog"

	"harvest/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	loggerKey
	actorKey
)

// HeaderXRequestID is read from incoming requests and echoed on every response.
const HeaderXRequestID = echo.HeaderXRequestID

// WithRequest returns ctx carrying requestID and a logger tagged with it.
func WithRequest(ctx context.Context, requestID string, logger *slog.Logger) context.Context {
	ctx = context.WithValue(ctx, requestIDKey, requestID)

	return WithLogger(ctx, logger.With(slog.String("request_id", requestID)))
}

// WithLogger returns ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// WithActor returns ctx carrying the authenticated caller.
func WithActor(ctx context.Context, actor *entity.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// GetRequestIDFromContext returns the request id, or "" outside a request.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// GetLoggerOrDefault returns the request logger, or fallback outside a request.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// GetActorFromContext returns the authenticated caller, or nil for anonymous requests.
func GetActorFromContext(ctx context.Context) *entity.Actor {
	actor, _ := ctx.Value(actorKey).(*entity.Actor)

	return actor
}

// The echo helpers below keep every value on the request context so use cases
// see the same values as handlers.

// GetRequestID returns the id of the request being served.
func GetRequestID(c echo.Context) string {
	return GetRequestIDFromContext(c.Request().Context())
}

// SetActor attaches the authenticated caller to the request.
func SetActor(c echo.Context, actor *entity.Actor) {
	c.SetRequest(c.Request().WithContext(WithActor(c.Request().Context(), actor)))
}

// GetActor returns the authenticated caller, or nil for anonymous requests.
func GetActor(c echo.Context) *entity.Actor {
	return GetActorFromContext(c.Request().Context())
}
